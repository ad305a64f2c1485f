package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chordcraft/chordcraft/builder"
	"github.com/chordcraft/chordcraft/progression"
)

func init() {
	rootCmd.AddCommand(progressionCmd)
}

var progressionCmd = &cobra.Command{
	Use:   "progression <key> <numerals...>",
	Short: "Realizes roman numerals into chords",
	Long:  `Realizes roman numerals into chords, e.g. "progression C ii7 V7 I"`,
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]
		chords := progression.Realize(key, args[1:])
		if len(chords) == 0 {
			fmt.Printf("Could not realize progression in %v\n", key)
			return
		}
		voicings := builder.GetProgressionVoicings(chords)
		for i, name := range chords {
			fmt.Printf("%-6v %v -> %v\n", args[1:][i], name, strings.Join(voicings[i], " "))
		}
	},
}
