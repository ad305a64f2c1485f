package builder

import (
	"github.com/chordcraft/chordcraft/model"
	"github.com/chordcraft/chordcraft/symbol"
	"github.com/chordcraft/chordcraft/theory"
	"github.com/chordcraft/chordcraft/voicing"
)

// BuildChordData resolves (root, symbol) into a display/playback record
// using the standard closed voicing. Returns nil when the identity doesn't
// resolve; callers treat that as "nothing to show".
func BuildChordData(root string, sym string) *model.ChordData {
	c := theory.GetChord(theory.NormalizeRoot(root) + sym)
	if c.Empty() {
		return nil
	}
	return &model.ChordData{
		Root:      c.Tonic,
		Symbol:    symbol.Sanitize(c.Symbol, c.Tonic),
		Notes:     voicing.StandardVoicing(c.Tonic, c.Intervals),
		Intervals: c.Intervals,
		Name:      c.Name,
	}
}

// BuildFeaturedChordData builds the record for a curated chord. A custom
// note list is authoritative: notes are kept verbatim (no resort, no octave
// reassignment) and intervals are recomputed by pitch-class distance from
// the root. Without custom notes it delegates to chord resolution with the
// spread voicing for showcase richness.
func BuildFeaturedChordData(featured model.FeaturedChord) *model.ChordData {
	if len(featured.CustomNotes) > 0 {
		intervals := make([]string, 0, len(featured.CustomNotes))
		for _, n := range featured.CustomNotes {
			iv, err := theory.PitchDistance(featured.Root, n)
			if err != nil {
				continue
			}
			intervals = append(intervals, iv)
		}
		return &model.ChordData{
			Root:      featured.Root,
			Symbol:    featured.Symbol,
			Notes:     append([]model.Note(nil), featured.CustomNotes...),
			Intervals: intervals,
			Name:      featured.Name,
		}
	}

	c := theory.GetChord(featured.Root + featured.Symbol)
	if c.Empty() {
		return nil
	}
	name := featured.Name
	if name == "" {
		name = c.Name
	}
	return &model.ChordData{
		Root:      c.Tonic,
		Symbol:    symbol.Sanitize(c.Symbol, c.Tonic),
		Notes:     voicing.SpreadVoicing(c.Tonic, c.Intervals),
		Intervals: c.Intervals,
		Name:      name,
	}
}

// GetVoicing returns the natural (bass + block) voicing for a single chord
// name, used for click-to-play feedback.
func GetVoicing(chordName string) []model.Note {
	c := theory.GetChord(chordName)
	if c.Empty() {
		return []model.Note{}
	}
	return voicing.NaturalVoicing(c.Tonic, c.Intervals)
}

// GetProgressionVoicings returns one spread voicing per chord name.
// Unresolvable names yield an empty voicing at their position.
func GetProgressionVoicings(chordNames []string) [][]model.Note {
	res := make([][]model.Note, 0, len(chordNames))
	for _, name := range chordNames {
		c := theory.GetChord(name)
		if c.Empty() {
			res = append(res, []model.Note{})
			continue
		}
		res = append(res, voicing.SpreadVoicing(c.Tonic, c.Intervals))
	}
	return res
}

type ParsedChord struct {
	Root   string `json:"root"`
	Symbol string `json:"symbol"`
}

func isSupportedRoot(root string) bool {
	for _, r := range theory.SupportedRoots {
		if r == root {
			return true
		}
	}
	return false
}

// ParseChordName splits a chord name into root and sanitized symbol. The
// root is confirmed against the supported root set, falling back through
// enharmonic equivalence before giving up and returning the raw root.
func ParseChordName(chordName string) *ParsedChord {
	c := theory.GetChord(chordName)
	if c.Empty() {
		return nil
	}
	root := c.Tonic
	if !isSupportedRoot(root) {
		if alt, ok := theory.Enharmonic(root); ok && isSupportedRoot(alt) {
			root = alt
		}
	}
	return &ParsedChord{
		Root:   root,
		Symbol: symbol.Sanitize(c.Symbol, c.Tonic),
	}
}
