package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/RickG2005/Audio-to-MIDI-Converter/model"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Render builds a single-track SMF: one tempo meta message followed by the
// encoded note stream.
func Render(events []model.NoteEvent, opts model.Options) *smf.SMF {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(opts.PPQ)

	var track smf.Track
	track.Add(0, smf.MetaTempo(opts.BPM))
	for _, m := range Encode(events, opts) {
		switch m.Kind {
		case NoteOn:
			track.Add(m.Delta, gomidi.NoteOn(0, m.Pitch, m.Velocity))
		case NoteOff:
			track.Add(m.Delta, gomidi.NoteOffVelocity(0, m.Pitch, m.Velocity))
		}
	}
	track.Close(0)
	s.Add(track)
	return s
}

// RenderBytes renders to an in-memory MIDI byte stream.
func RenderBytes(events []model.NoteEvent, opts model.Options) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Render(events, opts).WriteTo(&buf); err != nil {
		return nil, errors.New("Error rendering midi: " + err.Error())
	}
	return buf.Bytes(), nil
}

// WriteNoteEvents renders the events and writes <outputDir>/<base>.mid,
// where base comes from the source audio path. The directory is created if
// absent. Nothing is left behind on a failed write.
func WriteNoteEvents(events []model.NoteEvent, audioPath string, opts model.Options) (string, error) {
	if err := os.MkdirAll(opts.OutputDir, 0777); err != nil {
		return "", errors.New("Could not create output dir: " + err.Error())
	}

	base := filepath.Base(audioPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	outPath := filepath.Join(opts.OutputDir, base+".mid")

	dat, err := RenderBytes(events, opts)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(outPath, dat, 0666); err != nil {
		os.Remove(outPath)
		return "", errors.New("Could not write midi file: " + err.Error())
	}
	return outPath, nil
}

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}
