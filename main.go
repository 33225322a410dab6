package main

import "github.com/RickG2005/Audio-to-MIDI-Converter/cmd"

func main() {
	cmd.Execute()
}
