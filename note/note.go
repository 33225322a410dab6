package note

import (
	"fmt"
	"math"
	"sort"

	"github.com/RickG2005/Audio-to-MIDI-Converter/constants"
	"github.com/RickG2005/Audio-to-MIDI-Converter/model"
	"github.com/RickG2005/Audio-to-MIDI-Converter/util"
)

// Bucket holds every distinct pitch detected inside one time bucket.
// Start keeps the true (unrounded) time of the first detection so note
// onsets are not shifted by the quantization.
type Bucket struct {
	Key     int64
	Start   float64
	Pitches []model.PitchName
}

// TimeKey quantizes a timestamp into a fixed-point bucket. This is the
// grouping key: an explicit centisecond grid, not a float map key.
func TimeKey(t float64) int64 {
	return int64(math.Round(t * constants.TimeKeysPerSecond))
}

// Time is the bucket's position on the grid, in seconds.
func (b Bucket) Time() float64 {
	return float64(b.Key) / constants.TimeKeysPerSecond
}

// SetKey canonicalizes a pitch set for order-independent comparison,
// e.g. [64 60 67] -> "60-64-67".
func SetKey(notes []model.PitchName) string {
	pitches := make([]int, 0, len(notes))
	for _, n := range notes {
		pitches = append(pitches, n.Pitch)
	}
	sort.Ints(pitches)
	var res string
	for i, p := range pitches {
		res += fmt.Sprintf("%v", p)
		if i < len(pitches)-1 {
			res += "-"
		}
	}
	return res
}

// Bucketize groups candidates by time bucket, collapsing duplicate pitches
// within a bucket. Buckets come back ordered by key, pitches ordered
// ascending.
func Bucketize(cands []model.Candidate) []Bucket {
	byKey := make(map[int64]*Bucket)
	for _, c := range cands {
		key := TimeKey(c.Time)
		b, ok := byKey[key]
		if !ok {
			b = &Bucket{Key: key, Start: c.Time}
			byKey[key] = b
		}
		dup := false
		for _, p := range b.Pitches {
			if p.Pitch == c.Pitch {
				dup = true
				break
			}
		}
		if !dup {
			b.Pitches = append(b.Pitches, model.PitchName{Pitch: c.Pitch, Name: c.Name})
		}
	}

	var res []Bucket
	for _, key := range util.SortedKeys(byKey) {
		b := *byKey[key]
		sort.Slice(b.Pitches, func(i, j int) bool {
			return b.Pitches[i].Pitch < b.Pitches[j].Pitch
		})
		res = append(res, b)
	}
	return res
}

// Group collapses consecutive buckets sharing a pitch set into NoteEvents.
// A new event starts when the pitch set changes or when the bucket gap
// strictly exceeds gapTolerance; the latter reflects dropped detections
// (silence), not a sustained note. Events never overlap: each closes at
// the bucket preceding the split.
func Group(buckets []Bucket, gapTolerance float64) []model.NoteEvent {
	if len(buckets) == 0 {
		return nil
	}

	gapKeys := int64(math.Round(gapTolerance * constants.TimeKeysPerSecond))

	var events []model.NoteEvent
	current := buckets[0].Pitches
	currentKey := SetKey(current)
	start := buckets[0].Start
	prev := buckets[0]

	for _, b := range buckets[1:] {
		if SetKey(b.Pitches) != currentKey || b.Key-prev.Key > gapKeys {
			events = append(events, model.NoteEvent{
				Pitches: current,
				Start:   start,
				End:     prev.Time(),
			})
			current = b.Pitches
			currentKey = SetKey(current)
			start = b.Start
		}
		prev = b
	}

	events = append(events, model.NoteEvent{
		Pitches: current,
		Start:   start,
		End:     prev.Time(),
	})
	return events
}

// FilterShort drops events that do not strictly exceed minDuration.
// Order is preserved.
func FilterShort(events []model.NoteEvent, minDuration float64) []model.NoteEvent {
	var res []model.NoteEvent
	for _, e := range events {
		if e.Duration() > minDuration {
			res = append(res, e)
		}
	}
	return res
}
