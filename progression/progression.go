package progression

import (
	"strings"
	"unicode"

	"github.com/chordcraft/chordcraft/theory"
)

// Realize expands roman numerals in a key into chord names. The expander
// takes explicit suffixes literally, so a lowercase numeral like "v7" comes
// back major; those get rewritten to their minor quality here. Uppercase
// numerals pass through untouched.
func Realize(key string, numerals []string) []string {
	chords := theory.ExpandRomanNumerals(key, numerals)

	for i, numeral := range numerals {
		if i >= len(chords) {
			break
		}
		letters := strings.TrimLeft(strings.TrimSpace(numeral), "b#")
		if letters == "" || !unicode.IsLower(rune(letters[0])) {
			continue
		}
		c := theory.GetChord(chords[i])
		if c.Empty() {
			continue
		}
		rendered := false
		for _, iv := range c.Intervals {
			if iv == "3M" {
				rendered = true
				break
			}
		}
		if !rendered {
			continue
		}
		switch c.Symbol {
		case "M":
			chords[i] = c.Tonic + "m"
		case "7", "maj7":
			chords[i] = c.Tonic + "m7"
		}
	}
	return chords
}
