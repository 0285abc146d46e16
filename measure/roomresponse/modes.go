package roomresponse

import (
	"math"
	"sort"
)

// speedOfSoundMPS is the speed of sound used for room-mode
// calculation.
const speedOfSoundMPS = 343.0

const feetToMeters = 0.3048

const (
	modeLowHz  = 20.0
	modeHighHz = 300.0
)

// Room describes a rectangular room's dimensions in feet. A zero
// dimension means "unknown/absent" and suppresses every mode that
// would require it. Callers supplying meters must convert before
// constructing a Room.
type Room struct {
	LengthFt float64
	WidthFt  float64
	HeightFt float64
}

// RoomModes computes the theoretical axial, tangential, and oblique
// modal frequencies for room, filters them to [20, 300] Hz, sorts them
// ascending, and thins them by minimum octave spacing. Malformed or
// missing dimensions yield an empty (not nil-error) list: room-mode
// calculation never fails.
func RoomModes(room Room, maxModes int, minSpacingOctaves float64) []float64 {
	l := room.LengthFt * feetToMeters
	w := room.WidthFt * feetToMeters
	h := room.HeightFt * feetToMeters

	var candidates []float64

	axial := func(d float64) float64 { return speedOfSoundMPS / (2 * d) }
	diag2 := func(a, b float64) float64 { return speedOfSoundMPS / (2 * math.Hypot(a, b)) }
	diag3 := func(a, b, c float64) float64 {
		return speedOfSoundMPS / (2 * math.Sqrt(a*a+b*b+c*c))
	}

	if l > 0 {
		candidates = append(candidates, axial(l))
	}
	if w > 0 {
		candidates = append(candidates, axial(w))
	}
	if h > 0 {
		candidates = append(candidates, axial(h))
	}

	if l > 0 && w > 0 {
		candidates = append(candidates, diag2(l, w))
	}
	if l > 0 && h > 0 {
		candidates = append(candidates, diag2(l, h))
	}
	if w > 0 && h > 0 {
		candidates = append(candidates, diag2(w, h))
	}

	if l > 0 && w > 0 && h > 0 {
		candidates = append(candidates, diag3(l, w, h))
	}

	filtered := candidates[:0:0]
	for _, f := range candidates {
		if f >= modeLowHz && f <= modeHighHz {
			filtered = append(filtered, f)
		}
	}

	sort.Float64s(filtered)

	if maxModes <= 0 || minSpacingOctaves <= 0 {
		return filtered
	}

	minRatio := math.Pow(2, minSpacingOctaves)

	kept := make([]float64, 0, maxModes)
	for _, f := range filtered {
		if len(kept) == 0 {
			kept = append(kept, f)
			continue
		}
		if f/kept[len(kept)-1] >= minRatio {
			kept = append(kept, f)
			if len(kept) >= maxModes {
				break
			}
		}
	}

	return kept
}
