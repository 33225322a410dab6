// Package pipeline wires the note-synthesis stages together: quantize,
// suppress harmonics, group in time, drop short events. Each stage is a
// pure function over the previous stage's output.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/RickG2005/Audio-to-MIDI-Converter/harmonic"
	"github.com/RickG2005/Audio-to-MIDI-Converter/model"
	"github.com/RickG2005/Audio-to-MIDI-Converter/note"
	"github.com/RickG2005/Audio-to-MIDI-Converter/pitch"
)

// Run transforms an ordered frame sequence into final note events. An
// empty or fully-filtered input yields zero events, not an error.
func Run(frames []model.Frame, opts model.Options) []model.NoteEvent {
	var cands []model.Candidate
	for _, frame := range frames {
		for _, d := range frame.Detections {
			if c, ok := pitch.Quantize(frame.Time, d, opts); ok {
				cands = append(cands, c)
			}
		}
	}

	buckets := note.Bucketize(cands)
	for i := range buckets {
		buckets[i].Pitches = harmonic.Fundamentals(buckets[i].Pitches, opts.RatioTolerance)
	}

	events := note.Group(buckets, opts.GapTolerance)
	return note.FilterShort(events, opts.MinDuration)
}

// PrintEvents writes the human-readable per-event summary.
func PrintEvents(events []model.NoteEvent) {
	for _, ev := range events {
		fmt.Printf("Notes: %v -> Start: %.2fs, Duration: %.2fs\n",
			strings.Join(ev.Names(), ", "), ev.Start, ev.Duration())
	}
}
