package model

// Note is a pitch class plus an optional octave, e.g. "C#" or "C#4".
type Note = string

type ChordData struct {
	Root      string   `json:"root"`
	Symbol    string   `json:"symbol"`
	Notes     []Note   `json:"notes"`
	Intervals []string `json:"intervals"`
	Name      string   `json:"name,omitempty"`
}

type FeaturedChord struct {
	Root   string `json:"root"`
	Symbol string `json:"symbol"`
	Name   string `json:"name,omitempty"`

	// When set, this exact voicing is authoritative: notes are used
	// verbatim and intervals are recomputed from them.
	CustomNotes []Note `json:"custom_notes,omitempty"`
}
