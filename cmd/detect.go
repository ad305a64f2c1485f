package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chordcraft/chordcraft/detect"
)

func init() {
	rootCmd.AddCommand(detectCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect <notes...>",
	Short: "Detects chords from note names",
	Long:  `Detects chords from note names, e.g. "detect C E G" or "detect C4 E4 G4"`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		candidates := detect.Detect(strings.Join(args, " "))
		if len(candidates) == 0 {
			fmt.Println("No chord detected")
			return
		}
		for _, c := range candidates {
			printChordData(c)
		}
	},
}
