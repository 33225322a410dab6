package midi

import (
	"math"
	"sort"

	"github.com/RickG2005/Audio-to-MIDI-Converter/model"
)

type Kind uint8

const (
	NoteOn Kind = iota
	NoteOff
)

// Message is one note on/off in the output stream. Delta is the tick
// distance to the previous message, never negative.
type Message struct {
	Kind     Kind
	Pitch    uint8
	Velocity uint8
	Delta    uint32
}

// SecondsToTicks converts a timestamp to absolute ticks under a fixed
// tempo. Mirrors the usual beats = sec / (microseconds_per_beat / 1e6)
// conversion with the tempo itself rounded to whole microseconds.
func SecondsToTicks(sec float64, bpm float64, ppq uint16) int64 {
	microsPerBeat := math.Round(60_000_000.0 / bpm)
	beats := sec / (microsPerBeat / 1_000_000.0)
	return int64(math.Round(beats * float64(ppq)))
}

// Encode serializes note events into a flat message stream. It is a pure
// fold: a tick cursor starts at 0 and only ever moves forward. Events are
// re-sorted by start time first so timing stays monotonic even if the
// caller's order isn't. Per event: one NoteOn per pitch ascending (only
// the first carries the start delta, clamped at 0 since rounding at chord
// boundaries can land a start before the cursor), then one NoteOff per
// pitch (the first carries the duration, floored at 1 tick so every
// NoteOn gets an audible NoteOff).
func Encode(events []model.NoteEvent, opts model.Options) []Message {
	sorted := make([]model.NoteEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var msgs []Message
	var currentTick int64

	for _, ev := range sorted {
		pitches := make([]model.PitchName, len(ev.Pitches))
		copy(pitches, ev.Pitches)
		sort.Slice(pitches, func(i, j int) bool {
			return pitches[i].Pitch < pitches[j].Pitch
		})

		startTick := SecondsToTicks(ev.Start, opts.BPM, opts.PPQ)
		endTick := SecondsToTicks(ev.End, opts.BPM, opts.PPQ)

		// deltas are clamped non-negative and bounded by the input's total
		// ticks; uint32 holds over a month of audio at 480 PPQ / 120 BPM
		deltaStart := startTick - currentTick
		if deltaStart < 0 {
			deltaStart = 0
		}
		for i, p := range pitches {
			var delta uint32
			if i == 0 {
				delta = uint32(deltaStart)
			}
			msgs = append(msgs, Message{Kind: NoteOn, Pitch: uint8(p.Pitch), Velocity: opts.Velocity, Delta: delta})
		}

		durationTicks := endTick - startTick
		if durationTicks < 1 {
			durationTicks = 1
		}
		for i, p := range pitches {
			var delta uint32
			if i == 0 {
				delta = uint32(durationTicks)
			}
			msgs = append(msgs, Message{Kind: NoteOff, Pitch: uint8(p.Pitch), Velocity: opts.Velocity, Delta: delta})
		}

		currentTick = endTick
	}
	return msgs
}
