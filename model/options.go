package model

import "github.com/RickG2005/Audio-to-MIDI-Converter/constants"

// Options is the configuration surface of the pipeline, threaded by value
// through every stage.
type Options struct {
	MagnitudeThreshold float64
	FMin               float64
	FMax               float64
	RatioTolerance     float64
	GapTolerance       float64
	MinDuration        float64
	BPM                float64
	PPQ                uint16
	Velocity           uint8
	OutputDir          string
}

func DefaultOptions() Options {
	return Options{
		MagnitudeThreshold: constants.MagnitudeThreshold,
		FMin:               constants.FMin,
		FMax:               constants.FMax,
		RatioTolerance:     constants.RatioTolerance,
		GapTolerance:       constants.GapTolerance,
		MinDuration:        constants.MinDuration,
		BPM:                constants.BPM,
		PPQ:                constants.PPQ,
		Velocity:           constants.Velocity,
		OutputDir:          constants.GetOutputDir(),
	}
}
