package voicing

import (
	"sort"
	"strconv"

	"github.com/chordcraft/chordcraft/model"
	"github.com/chordcraft/chordcraft/theory"
)

// Strategy selects how abstract chord tones get assigned to octaves.
type Strategy int

const (
	// Standard packs every tone near the treble clef for readability.
	Standard Strategy = iota
	// Spread opens the chord across registers for progression playback.
	Spread
	// Natural lays out a bass note plus a block chord, keyboard style.
	Natural
)

const (
	standardOctave = 4
	spreadOctave   = 3

	lowBassOctave   = 2
	lowChordOctave  = 3
	highBassOctave  = 3
	highChordOctave = 4
)

// Apply runs the chosen strategy over a pitch-class root and interval set.
func Apply(s Strategy, root string, intervals []string) []model.Note {
	switch s {
	case Spread:
		return SpreadVoicing(root, intervals)
	case Natural:
		return NaturalVoicing(root, intervals)
	default:
		return StandardVoicing(root, intervals)
	}
}

func sortByPitch(notes []model.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		mi, iok := theory.Midi(notes[i])
		mj, jok := theory.Midi(notes[j])
		return iok && jok && mi < mj
	})
}

// StandardVoicing anchors the root at octave 4 and transposes every
// interval from there, ascending.
func StandardVoicing(root string, intervals []string) []model.Note {
	if root == "" {
		return []model.Note{}
	}
	anchored := theory.WithOctave(theory.PitchClass(root), standardOctave)

	notes := make([]model.Note, 0, len(intervals))
	for _, iv := range intervals {
		n, err := theory.Transpose(anchored, iv)
		if err != nil {
			continue
		}
		notes = append(notes, n)
	}
	sortByPitch(notes)
	return notes
}

func findByNumber(intervals []string, numbers ...int) string {
	for _, want := range numbers {
		for _, iv := range intervals {
			if theory.IntervalNumber(iv) == want {
				return iv
			}
		}
	}
	return ""
}

func octaveUp(note model.Note) model.Note {
	up, err := theory.Transpose(note, "8P")
	if err != nil {
		return note
	}
	return up
}

// SpreadVoicing builds a shell from a low root: root, fifth, seventh (or
// sixth), then the third (or sus tone) and the first extension an octave up.
func SpreadVoicing(root string, intervals []string) []model.Note {
	if root == "" {
		return []model.Note{}
	}
	low := theory.WithOctave(theory.PitchClass(root), spreadOctave)
	notes := []model.Note{low}

	if iv := findByNumber(intervals, 5); iv != "" {
		if n, err := theory.Transpose(low, iv); err == nil {
			notes = append(notes, n)
		}
	}
	if iv := findByNumber(intervals, 7, 6); iv != "" {
		if n, err := theory.Transpose(low, iv); err == nil {
			notes = append(notes, n)
		}
	}
	if iv := findByNumber(intervals, 3, 2, 4); iv != "" {
		if n, err := theory.Transpose(low, iv); err == nil {
			notes = append(notes, octaveUp(n))
		}
	}
	for _, iv := range intervals {
		if theory.IntervalNumber(iv) > 7 {
			if n, err := theory.Transpose(low, iv); err == nil {
				notes = append(notes, octaveUp(n))
			}
			break
		}
	}

	sortByPitch(notes)
	return notes
}

// Roots from E up get a lower register so the block chord doesn't crowd
// the bass.
func isLowRoot(pitchClass string) bool {
	low := map[string]bool{
		"E": true, "F": true, "F#": true, "Gb": true,
		"G": true, "G#": true, "Ab": true, "A": true,
		"A#": true, "Bb": true, "B": true,
	}
	return low[pitchClass]
}

func hasInterval(intervals []string, want string) bool {
	for _, iv := range intervals {
		if iv == want {
			return true
		}
	}
	return false
}

// NaturalVoicing plays a bass note under a block chord. Major-seventh
// chords get a fixed five-note stack with the third on top; everything
// else keeps the interval-set order, unsorted.
func NaturalVoicing(root string, intervals []string) []model.Note {
	if root == "" {
		return []model.Note{}
	}
	pc := theory.PitchClass(root)

	bassOctave, chordOctave := highBassOctave, highChordOctave
	if isLowRoot(pc) {
		bassOctave, chordOctave = lowBassOctave, lowChordOctave
	}
	bass := pc + strconv.Itoa(bassOctave)
	chordRoot := pc + strconv.Itoa(chordOctave)

	if hasInterval(intervals, "3M") && hasInterval(intervals, "7M") {
		notes := []model.Note{bass, chordRoot}
		if iv := findByNumber(intervals, 5); iv != "" {
			if n, err := theory.Transpose(chordRoot, iv); err == nil {
				notes = append(notes, n)
			}
		}
		if iv := findByNumber(intervals, 7); iv != "" {
			if n, err := theory.Transpose(chordRoot, iv); err == nil {
				notes = append(notes, n)
			}
		}
		if n, err := theory.Transpose(chordRoot, "10M"); err == nil {
			notes = append(notes, n)
		}
		return notes
	}

	notes := []model.Note{bass}
	for _, iv := range intervals {
		n, err := theory.Transpose(chordRoot, iv)
		if err != nil {
			continue
		}
		notes = append(notes, n)
	}
	return notes
}
