package generation

import "sort"

// SelectMainRooms picks up to count rooms to serve as anchors.
//
// Rooms are ranked by area, largest first, ties broken by lower ID. A room is
// accepted when its center is at least minSpacing away from every room
// accepted so far. Selection stops once count rooms are accepted or the
// candidates run out, so fewer than count rooms may be returned. A minSpacing
// of zero simply takes the count largest rooms.
func SelectMainRooms(rooms []Room, count int, minSpacing float64) []RoomID {
	if count <= 0 || len(rooms) == 0 {
		return nil
	}

	ranked := make([]Room, len(rooms))
	copy(ranked, rooms)
	sort.SliceStable(ranked, func(i, j int) bool {
		ai, aj := ranked[i].Area(), ranked[j].Area()
		if ai != aj {
			return ai > aj
		}
		return ranked[i].ID < ranked[j].ID
	})

	minSpacingSq := minSpacing * minSpacing
	selected := make([]RoomID, 0, count)
	accepted := make([]Room, 0, count)

	for _, candidate := range ranked {
		if len(selected) == count {
			break
		}
		spaced := true
		for _, a := range accepted {
			if candidate.Center.DistanceSq(a.Center) < minSpacingSq {
				spaced = false
				break
			}
		}
		if !spaced {
			continue
		}
		selected = append(selected, candidate.ID)
		accepted = append(accepted, candidate)
	}
	return selected
}
