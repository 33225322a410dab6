package model

// Candidate is a quantized detection: one pitch at one frame, before
// harmonic suppression.
type Candidate struct {
	Time      float64
	Pitch     int
	Hz        float64
	Magnitude float64
	Name      string
}

// PitchName pairs an integer MIDI pitch with its canonical name.
type PitchName struct {
	Pitch int    `json:"pitch"`
	Name  string `json:"name"`
}

// NoteEvent is a contiguous interval during which a fixed set of pitches
// sounds. Pitches are kept sorted ascending by MIDI number.
type NoteEvent struct {
	Pitches []PitchName `json:"pitches"`
	Start   float64     `json:"start"`
	End     float64     `json:"end"`
}

// Duration in seconds.
func (e NoteEvent) Duration() float64 {
	return e.End - e.Start
}

// Names returns the note names in pitch order.
func (e NoteEvent) Names() []string {
	names := make([]string, 0, len(e.Pitches))
	for _, p := range e.Pitches {
		names = append(names, p.Name)
	}
	return names
}
