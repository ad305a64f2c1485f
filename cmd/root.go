package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chordcraft/chordcraft/model"
)

var rootCmd = &cobra.Command{
	Use:   "chordcraft",
	Short: "Chord voicing and symbol toolkit",
	Long:  `Builds, detects, resolves and voices chords from the command line or over HTTP.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func printChordData(data model.ChordData) {
	label := data.Root + data.Symbol
	if data.Name != "" {
		label = data.Name
	}
	fmt.Printf("%v\n", label)
	fmt.Printf("  root:      %v\n", data.Root)
	fmt.Printf("  symbol:    %q\n", data.Symbol)
	fmt.Printf("  notes:     %v\n", strings.Join(data.Notes, " "))
	fmt.Printf("  intervals: %v\n", strings.Join(data.Intervals, " "))
}
