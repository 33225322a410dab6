package pitch

import (
	"math"
	"testing"

	"github.com/RickG2005/Audio-to-MIDI-Converter/model"
	"github.com/stretchr/testify/assert"
)

func TestMidiFromHz(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(69, MidiFromHz(440.0))
	assert.Equal(60, MidiFromHz(261.63))
	assert.Equal(81, MidiFromHz(880.0))
	assert.Equal(57, MidiFromHz(220.0))
}

func TestMidiFromHzRoundsToNearestSemitone(t *testing.T) {
	// quarter tone above A4 rounds up, just below stays
	up := 440.0 * math.Pow(2, 0.5/12)
	assert.Equal(t, 70, MidiFromHz(up+0.01))
	down := 440.0 * math.Pow(2, 0.4/12)
	assert.Equal(t, 69, MidiFromHz(down))
}

func TestHzFromMidiInvertsQuantization(t *testing.T) {
	assert := assert.New(t)
	assert.InDelta(440.0, HzFromMidi(69), 1e-9)
	for m := 36; m <= 96; m++ {
		assert.Equal(m, MidiFromHz(HzFromMidi(m)))
	}
}

func TestName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C4", Name(60))
	assert.Equal("C#4", Name(61))
	assert.Equal("A4", Name(69))
	assert.Equal("B3", Name(59))
	assert.Equal("C-1", Name(0))
	assert.Equal("G9", Name(127))
}

func TestQuantize(t *testing.T) {
	opts := model.DefaultOptions()
	c, ok := Quantize(1.5, model.Detection{Hz: 440, Magnitude: 1.0}, opts)

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal(69, c.Pitch)
	assert.Equal("A4", c.Name)
	assert.Equal(1.5, c.Time)
	assert.Equal(440.0, c.Hz)
}

func TestQuantizeDropsWeakDetections(t *testing.T) {
	opts := model.DefaultOptions()
	// threshold is strict: magnitude equal to it is dropped
	if _, ok := Quantize(0, model.Detection{Hz: 440, Magnitude: opts.MagnitudeThreshold}, opts); ok {
		t.Error("magnitude at threshold should be dropped")
	}
	if _, ok := Quantize(0, model.Detection{Hz: 440, Magnitude: opts.MagnitudeThreshold + 0.01}, opts); !ok {
		t.Error("magnitude above threshold should survive")
	}
}

func TestQuantizeDropsOutOfBand(t *testing.T) {
	opts := model.DefaultOptions()
	if _, ok := Quantize(0, model.Detection{Hz: opts.FMin - 1, Magnitude: 1}, opts); ok {
		t.Error("below fmin should be dropped")
	}
	if _, ok := Quantize(0, model.Detection{Hz: opts.FMax + 1, Magnitude: 1}, opts); ok {
		t.Error("above fmax should be dropped")
	}
}

func TestQuantizeIsTotalOnMalformedInput(t *testing.T) {
	opts := model.DefaultOptions()
	bad := []model.Detection{
		{Hz: 0, Magnitude: 1},
		{Hz: -440, Magnitude: 1},
		{Hz: math.NaN(), Magnitude: 1},
		{Hz: math.Inf(1), Magnitude: 1},
		{Hz: 440, Magnitude: math.NaN()},
	}
	for _, d := range bad {
		if _, ok := Quantize(0, d, opts); ok {
			t.Errorf("detection %v should be dropped", d)
		}
	}
	if _, ok := Quantize(math.NaN(), model.Detection{Hz: 440, Magnitude: 1}, opts); ok {
		t.Error("NaN time should be dropped")
	}
}
