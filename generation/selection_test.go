package generation

import "testing"

func TestSelectMainRoomsTakesLargestSpacedRooms(t *testing.T) {
	rooms := []Room{
		room(0, 0, 0, 10, 10),   // 100
		room(1, 5, 0, 40, 40),   // 1600
		room(2, 10, 0, 30, 30),  // 900, too close to 1
		room(3, 100, 0, 20, 20), // 400
		room(4, 200, 0, 20, 20), // 400
	}

	got := SelectMainRooms(rooms, 3, 50)
	want := []RoomID{1, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

func TestSelectMainRoomsLargestVariant(t *testing.T) {
	rooms := []Room{
		room(0, 0, 0, 10, 10),
		room(1, 1, 0, 40, 40),
		room(2, 2, 0, 30, 30),
	}
	got := SelectMainRooms(rooms, 2, 0)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestSelectMainRoomsStopsWhenCandidatesRunOut(t *testing.T) {
	rooms := []Room{
		room(0, 0, 0, 20, 20),
		room(1, 1, 0, 30, 30),
		room(2, 2, 0, 10, 10),
	}
	got := SelectMainRooms(rooms, 3, 1000)
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("got %v, want [1]", got)
	}
}

func TestSelectMainRoomsTieBreaksOnID(t *testing.T) {
	rooms := []Room{
		room(7, 0, 0, 20, 20),
		room(3, 100, 0, 20, 20),
	}
	got := SelectMainRooms(rooms, 1, 0)
	if len(got) != 1 || got[0] != 3 {
		t.Errorf("got %v, want [3]", got)
	}
}

func TestSelectMainRoomsEmpty(t *testing.T) {
	if got := SelectMainRooms(nil, 3, 10); len(got) != 0 {
		t.Errorf("got %v from no rooms", got)
	}
}
