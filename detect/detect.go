package detect

import (
	"regexp"
	"sort"
	"strings"

	"github.com/chordcraft/chordcraft/model"
	"github.com/chordcraft/chordcraft/theory"
	"github.com/chordcraft/chordcraft/voicing"
)

var rootPrefixRegex = regexp.MustCompile(`^[A-G](#|b)?`)

// Detect parses free-form note input ("C E G", "C4, E4, G4") and returns
// candidate chords in the order the matcher produced them. Invalid tokens
// are dropped silently; no input condition produces an error.
func Detect(freeText string) []model.ChordData {
	tokens := strings.Fields(strings.ReplaceAll(freeText, ",", " "))

	var valid []string
	anyOctave := false
	for _, t := range tokens {
		if !theory.IsNote(t) {
			continue
		}
		valid = append(valid, t)
		if theory.HasOctave(t) {
			anyOctave = true
		}
	}
	if len(valid) == 0 {
		return []model.ChordData{}
	}

	// Octave-qualified tokens sort by pitch; the rest keep relative order.
	sort.SliceStable(valid, func(i, j int) bool {
		mi, iok := theory.Midi(valid[i])
		mj, jok := theory.Midi(valid[j])
		return iok && jok && mi < mj
	})

	candidates := theory.Detect(valid)
	res := make([]model.ChordData, 0, len(candidates))
	for _, candidate := range candidates {
		c := theory.GetChord(candidate)

		root := c.Tonic
		if root == "" {
			root = rootPrefixRegex.FindString(candidate)
		}

		var notes []model.Note
		if anyOctave {
			notes = append([]model.Note(nil), valid...)
		} else {
			notes = voicing.StandardVoicing(root, c.Intervals)
		}

		name := c.Name
		if name == "" {
			name = candidate
		}

		intervals := c.Intervals
		if intervals == nil {
			intervals = []string{}
		}

		res = append(res, model.ChordData{
			Root:      root,
			Symbol:    displaySymbol(candidate, root, c.Symbol),
			Notes:     notes,
			Intervals: intervals,
			Name:      name,
		})
	}
	return res
}

// displaySymbol strips the root off the full candidate name, with the same
// accidental-boundary guard the sanitizer uses, then blanks major aliases.
// Kept inline because slash-chord boundaries differ from the sanitizer's.
func displaySymbol(candidate string, root string, librarySymbol string) string {
	s := librarySymbol
	if root != "" && strings.HasPrefix(candidate, root) {
		rest := candidate[len(root):]
		if strings.ContainsAny(root, "#b") || rest == "" || (rest[0] != '#' && rest[0] != 'b') {
			s = rest
		}
	}

	switch s {
	case "M", "Major", "major":
		return ""
	}
	for _, prefix := range []string{"M/", "Major/"} {
		if strings.HasPrefix(s, prefix) {
			return s[len(prefix)-1:]
		}
	}
	return s
}
