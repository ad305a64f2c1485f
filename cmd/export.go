package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/chordcraft/chordcraft/builder"
	"github.com/chordcraft/chordcraft/constants"
	"github.com/chordcraft/chordcraft/midifile"
	"github.com/chordcraft/chordcraft/progression"
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output .mid path (default: random name)")
	rootCmd.AddCommand(exportCmd)
}

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <key> <numerals...>",
	Short: "Writes a progression to a MIDI file",
	Long:  `Writes a progression's spread voicings to a MIDI file, one bar per chord`,
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		chords := progression.Realize(args[0], args[1:])
		if len(chords) == 0 {
			fmt.Printf("Could not realize progression in %v\n", args[0])
			return
		}

		out := exportOut
		if out == "" {
			out = uuid.New().String() + ".mid"
		}
		voicings := builder.GetProgressionVoicings(chords)
		if err := midifile.WriteProgression(voicings, constants.ExportBPM, out); err != nil {
			panic("Could not write midi file: " + err.Error())
		}
		fmt.Printf("Wrote %v (%v)\n", out, chords)
	},
}
