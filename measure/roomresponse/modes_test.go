package roomresponse

import (
	"math"
	"testing"
)

// TestRoomModesTenByTwelveByEight checks that a 10x12x8 ft room's axial
// fundamentals are 56.27, 46.89, 70.30 Hz; after sorting and thinning
// at 1/6 octave the kept list starts [46.89, 56.27, 70.30, ...] with
// consecutive ratio >= 2^(1/6).
func TestRoomModesTenByTwelveByEight(t *testing.T) {
	room := Room{LengthFt: 10, WidthFt: 12, HeightFt: 8}

	got := RoomModes(room, 5, 1.0/6)

	if len(got) == 0 {
		t.Fatal("RoomModes returned no modes")
	}
	if len(got) > 5 {
		t.Fatalf("len(got) = %d, want <= 5", len(got))
	}

	want := []float64{46.89, 56.27, 70.30}
	for i := 0; i < len(want) && i < len(got); i++ {
		if math.Abs(got[i]-want[i]) > 0.1 {
			t.Fatalf("got[%d] = %v, want approximately %v", i, got[i], want[i])
		}
	}

	minRatio := math.Pow(2, 1.0/6)
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("modes not strictly ascending at %d: %v <= %v", i, got[i], got[i-1])
		}
		if got[i]/got[i-1] < minRatio-1e-9 {
			t.Fatalf("consecutive ratio %v < minimum %v at index %d", got[i]/got[i-1], minRatio, i)
		}
	}
}

// TestRoomModesDegenerateRoom checks that a room with length=0,
// height=0 yields a single axial mode from the remaining width
// dimension.
func TestRoomModesDegenerateRoom(t *testing.T) {
	room := Room{LengthFt: 0, WidthFt: 12, HeightFt: 0}

	got := RoomModes(room, 5, 1.0/6)

	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}
	if math.Abs(got[0]-46.89) > 0.1 {
		t.Fatalf("got[0] = %v, want approximately 46.89", got[0])
	}
}

// TestRoomModesZeroDimensionsYieldEmpty checks that missing or zero
// room dimensions yield an empty list.
func TestRoomModesZeroDimensionsYieldEmpty(t *testing.T) {
	room := Room{LengthFt: 0, WidthFt: 0, HeightFt: 0}

	got := RoomModes(room, 5, 1.0/6)

	if len(got) != 0 {
		t.Fatalf("len(got) = %d, want 0", len(got))
	}
}

func TestRoomModesAllInRange(t *testing.T) {
	room := Room{LengthFt: 40, WidthFt: 25, HeightFt: 9}

	got := RoomModes(room, 20, 1.0/6)

	for i, f := range got {
		if f < modeLowHz || f > modeHighHz {
			t.Fatalf("got[%d] = %v, out of [%v, %v]", i, f, modeLowHz, modeHighHz)
		}
	}
}
