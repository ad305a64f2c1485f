package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chordcraft/chordcraft/builder"
	"github.com/chordcraft/chordcraft/db"
	"github.com/chordcraft/chordcraft/model"
	"github.com/chordcraft/chordcraft/util"
)

func init() {
	featuredCmd.Flags().BoolVar(&featuredRemote, "remote", false, "fetch definitions from DynamoDB instead of the built-in set")
	rootCmd.AddCommand(featuredCmd)
}

var featuredRemote bool

// The built-in showcase set. Custom notes are literal voicings and are
// never re-sorted or re-octaved.
var builtinFeatured = []model.FeaturedChord{
	{Root: "C", Symbol: "maj7", Name: "Cmaj7"},
	{Root: "D", Symbol: "m9", Name: "Dm9"},
	{Root: "G", Symbol: "13", Name: "G13"},
	{Root: "E", Symbol: "mmaj9", Name: "Em(maj9)",
		CustomNotes: []model.Note{"E3", "G3", "B3", "D#4", "F#4"}},
	{Root: "F", Symbol: "maj7#11", Name: "Fmaj7(#11)",
		CustomNotes: []model.Note{"F3", "A3", "C4", "E4", "B4"}},
	{Root: "A", Symbol: "sus4", Name: "Asus4"},
}

var featuredCmd = &cobra.Command{
	Use:   "featured",
	Short: "Shows the curated showcase chords",
	Long:  `Shows the curated showcase chords`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, f := range loadFeatured() {
			data := builder.BuildFeaturedChordData(f)
			if data == nil {
				fmt.Printf("Skipping %v: does not resolve\n", f.Name)
				continue
			}
			printChordData(*data)
		}
	},
}

func loadFeatured() []model.FeaturedChord {
	if !featuredRemote {
		return builtinFeatured
	}

	names := make([]string, 0, len(builtinFeatured))
	for _, f := range builtinFeatured {
		names = append(names, f.Name)
	}
	remote, err := db.GetFeaturedChords(names)
	if err != nil {
		fmt.Printf("Falling back to built-in set because: %v\n", err)
		return builtinFeatured
	}

	var res []model.FeaturedChord
	for _, name := range util.GetKeysSorted(remote) {
		res = append(res, remote[name])
	}
	return res
}
