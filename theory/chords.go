package theory

import (
	"regexp"
	"strings"
)

// Chord is the resolved identity of a chord name: its tonic, canonical
// symbol, interval set and pitch classes. The zero value means "no chord".
type Chord struct {
	Tonic     string
	Symbol    string
	Name      string
	Intervals []string
	Notes     []string
}

func (c Chord) Empty() bool {
	return c.Tonic == ""
}

type quality struct {
	symbol    string
	name      string
	intervals []string
}

// Canonical qualities in detection preference order: triads first, then
// sevenths, then extensions.
var qualities = []quality{
	{"M", "major", []string{"1P", "3M", "5P"}},
	{"m", "minor", []string{"1P", "3m", "5P"}},
	{"dim", "diminished", []string{"1P", "3m", "5d"}},
	{"aug", "augmented", []string{"1P", "3M", "5A"}},
	{"sus2", "suspended second", []string{"1P", "2M", "5P"}},
	{"sus4", "suspended fourth", []string{"1P", "4P", "5P"}},
	{"6", "sixth", []string{"1P", "3M", "5P", "6M"}},
	{"m6", "minor sixth", []string{"1P", "3m", "5P", "6M"}},
	{"7", "dominant seventh", []string{"1P", "3M", "5P", "7m"}},
	{"maj7", "major seventh", []string{"1P", "3M", "5P", "7M"}},
	{"m7", "minor seventh", []string{"1P", "3m", "5P", "7m"}},
	{"mmaj7", "minor/major seventh", []string{"1P", "3m", "5P", "7M"}},
	{"m7b5", "half-diminished", []string{"1P", "3m", "5d", "7m"}},
	{"dim7", "diminished seventh", []string{"1P", "3m", "5d", "7d"}},
	{"7sus4", "dominant seventh suspended fourth", []string{"1P", "4P", "5P", "7m"}},
	{"add9", "added ninth", []string{"1P", "3M", "5P", "9M"}},
	{"9", "dominant ninth", []string{"1P", "3M", "5P", "7m", "9M"}},
	{"maj9", "major ninth", []string{"1P", "3M", "5P", "7M", "9M"}},
	{"m9", "minor ninth", []string{"1P", "3m", "5P", "7m", "9M"}},
	{"11", "dominant eleventh", []string{"1P", "3M", "5P", "7m", "9M", "11P"}},
	{"m11", "minor eleventh", []string{"1P", "3m", "5P", "7m", "9M", "11P"}},
	{"13", "dominant thirteenth", []string{"1P", "3M", "5P", "7m", "9M", "13M"}},
	{"maj13", "major thirteenth", []string{"1P", "3M", "5P", "7M", "9M", "13M"}},
}

var qualityAliases = map[string]string{
	"":      "M",
	"maj":   "M",
	"Maj":   "M",
	"major": "M",
	"Major": "M",
	"min":   "m",
	"minor": "m",
	"-":     "m",
	"°":     "dim",
	"+":     "aug",
	"mM7":   "mmaj7",
	"mMaj7": "mmaj7",
	"min7":  "m7",
	"ø":     "m7b5",
	"dom7":  "7",
}

var qualityBySymbol = map[string]quality{}

func init() {
	for _, q := range qualities {
		qualityBySymbol[q.symbol] = q
		if _, ok := qualityAliases[q.symbol]; !ok {
			qualityAliases[q.symbol] = q.symbol
		}
	}
}

var chordNameRegex = regexp.MustCompile(`^([A-G](?:#|b)?)(.*)$`)

// GetChord resolves a chord name like "Gm7" or "C/E" to its identity.
// Unknown roots or qualities yield the empty Chord, never an error.
func GetChord(name string) Chord {
	m := chordNameRegex.FindStringSubmatch(strings.TrimSpace(name))
	if m == nil {
		return Chord{}
	}
	tonic := m[1]
	rest := m[2]

	var bass string
	if i := strings.Index(rest, "/"); i >= 0 {
		bass = rest[i:]
		rest = rest[:i]
	}

	canonical, ok := qualityAliases[rest]
	if !ok {
		return Chord{}
	}
	q := qualityBySymbol[canonical]

	notes := make([]string, 0, len(q.intervals))
	for _, iv := range q.intervals {
		n, err := Transpose(tonic, iv)
		if err != nil {
			return Chord{}
		}
		notes = append(notes, n)
	}

	return Chord{
		Tonic:     tonic,
		Symbol:    q.symbol + bass,
		Name:      tonic + " " + q.name,
		Intervals: append([]string(nil), q.intervals...),
		Notes:     notes,
	}
}

func pitchSet(root string, intervals []string) ([12]bool, bool) {
	var set [12]bool
	rootIdx, ok := pitchIndex(root)
	if !ok {
		return set, false
	}
	for _, iv := range intervals {
		semis, ok := intervalSemitones[iv]
		if !ok {
			return set, false
		}
		set[(rootIdx+semis)%12] = true
	}
	return set, true
}

// Detect returns the chord names whose pitch-class set matches the given
// notes exactly. Each input note is tried as a candidate root, in order.
func Detect(notes []string) []string {
	var pcs []string
	seen := make(map[int]bool)
	var input [12]bool
	for _, n := range notes {
		idx, ok := pitchIndex(PitchClass(n))
		if !ok {
			continue
		}
		input[idx] = true
		if !seen[idx] {
			seen[idx] = true
			pcs = append(pcs, PitchClass(n))
		}
	}
	if len(pcs) == 0 {
		return nil
	}

	var res []string
	for _, root := range pcs {
		for _, q := range qualities {
			set, ok := pitchSet(root, q.intervals)
			if ok && set == input {
				res = append(res, root+q.symbol)
			}
		}
	}
	return res
}
