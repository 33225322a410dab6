package constants

import "os"

func GetOutputDir() string {
	path := os.Getenv("OUTPUT_PATH")
	if path != "" {
		return path
	}
	return "midi_output"
}

// Amplitude below which a detection is treated as noise.
const MagnitudeThreshold = 0.5

// Candidate band, C2..C7 in Hz.
const (
	FMin = 65.41
	FMax = 2093.0
)

// Absolute tolerance on the fifth/third frequency-ratio tests.
const RatioTolerance = 0.05

// Frames further apart than this start a new note even if the pitch set
// is unchanged.
const GapTolerance = 0.1

// Events at or under this length are discarded.
const MinDuration = 0.1

const (
	BPM      = 120.0
	PPQ      = 480
	Velocity = 80
)

// Time bucket width: keys per second. Two timestamps that land in the same
// centisecond bucket are treated as simultaneous.
const TimeKeysPerSecond = 100

// STFT geometry used by the tracker.
const (
	WindowSize = 2048
	HopSize    = 256
)
