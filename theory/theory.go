package theory

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

var letterSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// SupportedRoots is every root spelling the engine recognizes.
var SupportedRoots = []string{
	"C", "C#", "Db", "D", "D#", "Eb", "E", "F", "F#", "Gb",
	"G", "G#", "Ab", "A", "A#", "Bb", "B",
}

var enharmonics = map[string]string{
	"C#": "Db", "Db": "C#",
	"D#": "Eb", "Eb": "D#",
	"F#": "Gb", "Gb": "F#",
	"G#": "Ab", "Ab": "G#",
	"A#": "Bb", "Bb": "A#",
}

var noteRegex = regexp.MustCompile(`^([A-G])(#|b)?(-?\d+)?$`)

// Enharmonic returns the alternate spelling of a pitch class, if one exists.
func Enharmonic(pitchClass string) (string, bool) {
	alt, ok := enharmonics[pitchClass]
	return alt, ok
}

// IsNote reports whether s is a valid note name, with or without octave.
func IsNote(s string) bool {
	return noteRegex.MatchString(s)
}

// PitchClass strips any octave digits, e.g. "C#4" -> "C#".
func PitchClass(note string) string {
	m := noteRegex.FindStringSubmatch(note)
	if m == nil {
		return note
	}
	return m[1] + m[2]
}

// HasOctave reports whether the note carries an explicit octave.
func HasOctave(note string) bool {
	m := noteRegex.FindStringSubmatch(note)
	return m != nil && m[3] != ""
}

func pitchIndex(pitchClass string) (int, bool) {
	m := noteRegex.FindStringSubmatch(pitchClass)
	if m == nil {
		return 0, false
	}
	idx := letterSemitones[m[1][0]]
	switch m[2] {
	case "#":
		idx++
	case "b":
		idx--
	}
	return (idx + 12) % 12, true
}

// Midi converts an octave-qualified note to its MIDI number (C4 = 60).
// The second return is false for pitch-class-only or invalid input.
func Midi(note string) (int, bool) {
	m := noteRegex.FindStringSubmatch(note)
	if m == nil || m[3] == "" {
		return 0, false
	}
	idx, _ := pitchIndex(m[1] + m[2])
	oct, err := strconv.Atoi(m[3])
	if err != nil {
		return 0, false
	}
	return (oct+1)*12 + idx, true
}

var intervalSemitones = map[string]int{
	"1P": 0, "2m": 1, "2M": 2, "3m": 3, "3M": 4,
	"4P": 5, "4A": 6, "5d": 6, "5P": 7, "5A": 8,
	"6m": 8, "6M": 9, "7d": 9, "7m": 10, "7M": 11,
	"8P": 12, "9m": 13, "9M": 14, "10m": 15, "10M": 16,
	"11P": 17, "11A": 18, "12P": 19, "13m": 20, "13M": 21,
}

// IntervalNumber extracts the degree number of an interval, e.g. "11P" -> 11.
// Returns 0 for malformed input.
func IntervalNumber(interval string) int {
	i := 0
	for i < len(interval) && interval[i] >= '0' && interval[i] <= '9' {
		i++
	}
	n, err := strconv.Atoi(interval[:i])
	if err != nil {
		return 0
	}
	return n
}

// Transpose moves a note up by the named interval. The flat/sharp spelling
// preference of the input is preserved. Octave arithmetic applies only when
// the input carries an octave.
func Transpose(note string, interval string) (string, error) {
	m := noteRegex.FindStringSubmatch(note)
	if m == nil {
		return "", errors.New("invalid note: " + note)
	}
	semis, ok := intervalSemitones[interval]
	if !ok {
		return "", errors.New("invalid interval: " + interval)
	}

	idx, _ := pitchIndex(m[1] + m[2])
	names := sharpNames
	if m[2] == "b" {
		names = flatNames
	}
	name := names[(idx+semis)%12]

	if m[3] == "" {
		return name, nil
	}
	oct, err := strconv.Atoi(m[3])
	if err != nil {
		return "", errors.New("invalid octave: " + note)
	}
	midi := (oct+1)*12 + idx + semis
	return name + strconv.Itoa(midi/12-1), nil
}

// MidiToNote names a MIDI number with sharp spelling, e.g. 61 -> "C#4".
func MidiToNote(midi int) string {
	return sharpNames[((midi%12)+12)%12] + strconv.Itoa(midi/12-1)
}

// WithOctave pins a pitch class to an octave, passing through notes that
// already carry one.
func WithOctave(pitchClass string, octave int) string {
	if HasOctave(pitchClass) {
		return pitchClass
	}
	return pitchClass + strconv.Itoa(octave)
}

// PitchDistance returns the interval name spanning from one pitch class up
// to another, preferring major/perfect spellings.
func PitchDistance(from string, to string) (string, error) {
	fromIdx, ok := pitchIndex(PitchClass(from))
	if !ok {
		return "", errors.New("invalid note: " + from)
	}
	toIdx, ok := pitchIndex(PitchClass(to))
	if !ok {
		return "", errors.New("invalid note: " + to)
	}
	semis := (toIdx - fromIdx + 12) % 12
	names := [12]string{"1P", "2m", "2M", "3m", "3M", "4P", "4A", "5P", "6m", "6M", "7m", "7M"}
	return names[semis], nil
}

// NormalizeRoot uppercases the letter of a hand-typed root, e.g. "bb" -> "Bb".
func NormalizeRoot(root string) string {
	root = strings.TrimSpace(root)
	if root == "" {
		return root
	}
	return strings.ToUpper(root[:1]) + root[1:]
}
