package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chordcraft/chordcraft/resolve"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <root> [symbol]",
	Short: "Suggests resolution chords",
	Long:  `Suggests resolution chords`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := args[0]
		symbol := strings.Join(args[1:], "")

		candidates := resolve.Resolve(root, symbol)
		if len(candidates) == 0 {
			fmt.Printf("No resolutions for %v%v\n", root, symbol)
			return
		}
		fmt.Printf("%v%v -> %v\n", root, symbol, strings.Join(candidates, ", "))
	},
}
