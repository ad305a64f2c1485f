package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chordcraft/chordcraft/builder"
)

func init() {
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <root> [symbol]",
	Short: "Shows a chord's notes and voicing",
	Long:  `Shows a chord's notes and voicing`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := args[0]
		symbol := strings.Join(args[1:], "")

		data := builder.BuildChordData(root, symbol)
		if data == nil {
			fmt.Printf("No chord for %v%v\n", root, symbol)
			return
		}
		printChordData(*data)
		fmt.Printf("  play:      %v\n", strings.Join(builder.GetVoicing(data.Root+data.Symbol), " "))
	},
}
