package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chordcraft/chordcraft/detect"
	"github.com/chordcraft/chordcraft/midifile"
)

func init() {
	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan <file.mid>",
	Short: "Detects chords in a MIDI file",
	Long:  `Detects chords in a MIDI file by reducing note events to held-note snapshots`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parsed, err := midifile.ReadFile(args[0])
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", args[0], err)
			return
		}

		var last string
		for _, snapshot := range midifile.Snapshots(parsed) {
			if len(snapshot.Notes) < 3 {
				continue
			}
			candidates := detect.Detect(strings.Join(snapshot.Notes, " "))
			if len(candidates) == 0 {
				continue
			}
			best := candidates[0]
			label := best.Root + best.Symbol
			if label == last {
				continue
			}
			last = label
			fmt.Printf("%8.2fs  %-8v %v\n", float64(snapshot.OffsetMS)/1000, label, strings.Join(snapshot.Notes, " "))
		}
	},
}
