package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RickG2005/Audio-to-MIDI-Converter/midi"
	"github.com/RickG2005/Audio-to-MIDI-Converter/pitch"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <midi file>",
	Short: "Prints the events of a midi file",
	Long:  `Prints the events of a midi file`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("timeFormat: %v\n", s.TimeFormat)
	for i, track := range s.Tracks {
		fmt.Printf("track %v:\n", i)
		var absTicks uint64
		for _, ev := range track {
			absTicks += uint64(ev.Delta)
			var ch, key, vel uint8
			var bpm float64
			switch {
			case ev.Message.GetMetaTempo(&bpm):
				fmt.Printf("  tick %v: tempo %v bpm\n", absTicks, bpm)
			case ev.Message.GetNoteOn(&ch, &key, &vel):
				fmt.Printf("  tick %v: note on  %v (%v) vel %v\n", absTicks, key, pitch.Name(int(key)), vel)
			case ev.Message.GetNoteOff(&ch, &key, &vel):
				fmt.Printf("  tick %v: note off %v (%v)\n", absTicks, key, pitch.Name(int(key)))
			}
		}
	}
	return nil
}
