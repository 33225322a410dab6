package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "audio2midi",
	Short: "Converts polyphonic audio into MIDI",
	Long:  `Turns frame-level pitch detections from wav files into clean note events and writes them as standard MIDI files.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
