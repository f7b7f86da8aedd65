// Package geometry holds the 2-D primitives the layout generator is built on:
// points used as vectors, direction-agnostic segments, axis-aligned rectangles
// described by their center and half extents, and triangles with a cached
// circumcircle.
//
// Every operation here is side-effect free. Degenerate input (zero-length
// vectors, parallel segments, collinear triangles) is reported through a
// boolean or a Degenerate flag instead of producing NaN coordinates.
package geometry

const (
	// Epsilon is the tolerance used for zero-length checks
	Epsilon = 1e-9

	// ParallelEpsilon is the minimum cross product magnitude for two segment
	// directions to be considered non parallel
	ParallelEpsilon = 1e-3
)
