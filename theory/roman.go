package theory

import (
	"regexp"
	"strings"
	"unicode"
)

// Degrees are measured against the major scale of the key's root; flat and
// sharp prefixes shift from there ("bVII" in A is G).
var degreeSemitones = map[string]int{
	"I": 0, "II": 2, "III": 4, "IV": 5, "V": 7, "VI": 9, "VII": 11,
}

var numeralRegex = regexp.MustCompile(`^(b+|#+)?(vii|vi|v|iv|iii|ii|i|VII|VI|V|IV|III|II|I)(.*)$`)

// ExpandRomanNumerals turns roman numerals in a key into chord names.
// The quality comes from the numeral's suffix verbatim; only a bare
// lowercase numeral implies minor. Unparseable numerals pass through
// unchanged so callers can surface them.
func ExpandRomanNumerals(key string, numerals []string) []string {
	keyRoot := PitchClass(strings.TrimSuffix(strings.TrimSpace(key), "m"))
	keyIdx, ok := pitchIndex(keyRoot)
	if !ok {
		return nil
	}

	res := make([]string, 0, len(numerals))
	for _, numeral := range numerals {
		m := numeralRegex.FindStringSubmatch(strings.TrimSpace(numeral))
		if m == nil {
			res = append(res, numeral)
			continue
		}
		shift := 0
		for _, r := range m[1] {
			if r == 'b' {
				shift--
			} else {
				shift++
			}
		}
		degree := degreeSemitones[strings.ToUpper(m[2])]
		idx := ((keyIdx+degree+shift)%12 + 12) % 12

		names := sharpNames
		if strings.HasPrefix(m[1], "b") || strings.Contains(keyRoot, "b") {
			names = flatNames
		}
		root := names[idx]

		suffix := m[3]
		if suffix == "" && unicode.IsLower(rune(m[2][0])) {
			suffix = "m"
		}
		res = append(res, root+suffix)
	}
	return res
}
