package cmd

import (
	"fmt"
	"runtime"

	"github.com/remeh/sizedwaitgroup"
	"github.com/spf13/cobra"

	"github.com/RickG2005/Audio-to-MIDI-Converter/midi"
	"github.com/RickG2005/Audio-to-MIDI-Converter/model"
	"github.com/RickG2005/Audio-to-MIDI-Converter/pipeline"
	"github.com/RickG2005/Audio-to-MIDI-Converter/tracker"
)

var convertOpts = model.DefaultOptions()
var convertJobs int

func init() {
	f := convertCmd.Flags()
	f.Float64Var(&convertOpts.MagnitudeThreshold, "threshold", convertOpts.MagnitudeThreshold, "ignore detections at or below this magnitude")
	f.Float64Var(&convertOpts.FMin, "fmin", convertOpts.FMin, "lowest candidate frequency in Hz")
	f.Float64Var(&convertOpts.FMax, "fmax", convertOpts.FMax, "highest candidate frequency in Hz")
	f.Float64Var(&convertOpts.RatioTolerance, "ratio-tolerance", convertOpts.RatioTolerance, "tolerance on the fifth/third harmonic ratio tests")
	f.Float64Var(&convertOpts.GapTolerance, "gap", convertOpts.GapTolerance, "max gap in seconds bridged within one note")
	f.Float64Var(&convertOpts.MinDuration, "min-duration", convertOpts.MinDuration, "drop notes at or under this many seconds")
	f.Float64Var(&convertOpts.BPM, "bpm", convertOpts.BPM, "tempo of the output file")
	f.Uint16Var(&convertOpts.PPQ, "ppq", convertOpts.PPQ, "ticks per quarter note")
	f.Uint8Var(&convertOpts.Velocity, "velocity", convertOpts.Velocity, "velocity for all notes")
	f.StringVar(&convertOpts.OutputDir, "out", convertOpts.OutputDir, "output directory")
	f.IntVar(&convertJobs, "jobs", runtime.NumCPU(), "number of files converted in parallel")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <wav file> [wav files...]",
	Short: "Converts wav files to midi",
	Long:  `Converts wav files to midi`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convertAll(args)
	},
}

// Distinct input files share no state, so batch conversion runs them in a
// bounded pool.
func convertAll(paths []string) error {
	jobs := convertJobs
	if jobs < 1 {
		jobs = 1
	}
	swg := sizedwaitgroup.New(jobs)
	errs := make([]error, len(paths))
	for i, path := range paths {
		swg.Add()
		go func(i int, path string) {
			defer swg.Done()
			errs[i] = convertOne(path)
		}(i, path)
	}
	swg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func convertOne(path string) error {
	frames, err := tracker.ReadWavFrames(path, convertOpts)
	if err != nil {
		return err
	}
	events := pipeline.Run(frames, convertOpts)
	pipeline.PrintEvents(events)

	outPath, err := midi.WriteNoteEvents(events, path, convertOpts)
	if err != nil {
		return err
	}
	fmt.Printf("MIDI file saved at: %v\n", outPath)
	return nil
}
