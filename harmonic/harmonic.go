// Package harmonic decides which candidates at one timestamp are
// fundamentals. Pitch detectors over polyphonic audio report strong
// overtones as independent pitches; the pairwise tests below strip the
// three most common spurious relations (octave, fifth, major third)
// without modeling the full harmonic series.
package harmonic

import (
	"sort"

	"github.com/RickG2005/Audio-to-MIDI-Converter/model"
	"github.com/RickG2005/Audio-to-MIDI-Converter/pitch"
)

// Fundamentals filters one frame's pitch set down to the pitches judged not
// to be harmonics of a lower pitch in the same frame. The scan is a single
// pass over all ordered pairs of the original list: a pitch that is itself
// suppressed still suppresses pitches above it, so stacked harmonics all
// fall to the lowest member. The lowest pitch always survives. Ratios are
// computed from the quantized pitches, not the raw detected frequencies.
func Fundamentals(notes []model.PitchName, ratioTolerance float64) []model.PitchName {
	sorted := make([]model.PitchName, len(notes))
	copy(sorted, notes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Pitch < sorted[j].Pitch
	})

	isFundamental := make([]bool, len(sorted))
	for i := range isFundamental {
		isFundamental[i] = true
	}

	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			lower := sorted[i].Pitch
			higher := sorted[j].Pitch
			ratio := pitch.HzFromMidi(higher) / pitch.HzFromMidi(lower)
			switch {
			case (higher-lower)%12 == 0:
				isFundamental[j] = false
			case abs(ratio-1.5) < ratioTolerance:
				isFundamental[j] = false
			case abs(ratio-1.25) < ratioTolerance:
				isFundamental[j] = false
			}
		}
	}

	var res []model.PitchName
	for i, n := range sorted {
		if isFundamental[i] {
			res = append(res, n)
		}
	}
	return res
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
