package pitch

import (
	"fmt"
	"math"

	"github.com/RickG2005/Audio-to-MIDI-Converter/model"
)

var noteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// MidiFromHz converts a frequency to the nearest equal-tempered MIDI pitch,
// A4 = 440 Hz = 69. Rounding is half-away-from-zero; pitch identity is
// integer-based everywhere downstream.
func MidiFromHz(hz float64) int {
	return int(math.Round(69 + 12*math.Log2(hz/440.0)))
}

// HzFromMidi is the inverse of MidiFromHz for integer pitches.
func HzFromMidi(midi int) float64 {
	return 440.0 * math.Pow(2, float64(midi-69)/12.0)
}

// Name returns the canonical pitch-class+octave string, e.g. 60 -> "C4".
func Name(midi int) string {
	octave := midi/12 - 1
	class := midi % 12
	if class < 0 {
		class += 12
		octave--
	}
	return fmt.Sprintf("%s%d", noteNames[class], octave)
}

// Quantize turns one detection into a Candidate. It is total: detections
// at or below the magnitude threshold, outside the band, or with
// non-finite/non-positive values are dropped, never reported as errors.
func Quantize(time float64, d model.Detection, opts model.Options) (model.Candidate, bool) {
	var none model.Candidate
	if math.IsNaN(time) || math.IsInf(time, 0) {
		return none, false
	}
	if math.IsNaN(d.Hz) || math.IsInf(d.Hz, 0) || d.Hz <= 0 {
		return none, false
	}
	if math.IsNaN(d.Magnitude) || d.Magnitude <= opts.MagnitudeThreshold {
		return none, false
	}
	if d.Hz < opts.FMin || d.Hz > opts.FMax {
		return none, false
	}
	midi := MidiFromHz(d.Hz)
	return model.Candidate{
		Time:      time,
		Pitch:     midi,
		Hz:        d.Hz,
		Magnitude: d.Magnitude,
		Name:      Name(midi),
	}, true
}
