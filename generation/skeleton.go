package generation

import (
	"math/rand"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"dungeon-layout/geometry"
)

// RemovableEdges returns the triangulation edges that are not part of the
// spanning tree, in triangulation order. Comparison ignores direction.
func RemovableEdges(triangulation, spanning []geometry.Segment) []geometry.Segment {
	inTree := mapset.New[geometry.Segment]()
	for _, e := range spanning {
		inTree.Put(e.Canonical())
	}

	var removable []geometry.Segment
	for _, e := range triangulation {
		if !inTree.Has(e.Canonical()) {
			removable = append(removable, e)
		}
	}
	return removable
}

// ReduceSkeleton returns the spanning tree edges followed by reAdd edges
// picked at random from the removable set, which reintroduce loops. Every
// other removable edge is dropped.
func ReduceSkeleton(triangulation, spanning []geometry.Segment, reAdd int, rng *rand.Rand) []geometry.Segment {
	removable := RemovableEdges(triangulation, spanning)

	skeleton := make([]geometry.Segment, 0, len(spanning)+reAdd)
	skeleton = append(skeleton, spanning...)

	if reAdd > len(removable) {
		reAdd = len(removable)
	}
	if reAdd <= 0 {
		return skeleton
	}

	picked := rng.Perm(len(removable))[:reAdd]
	sort.Ints(picked)
	for _, i := range picked {
		skeleton = append(skeleton, removable[i])
	}
	return skeleton
}
