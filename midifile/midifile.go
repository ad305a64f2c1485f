package midifile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/chordcraft/chordcraft/model"
	"github.com/chordcraft/chordcraft/theory"
)

// ReadFile parses a Standard MIDI File.
func ReadFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("error reading midi file... %s", err.Error())
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("error parsing midi file... %s", err.Error())
	}

	return res, nil
}

// Snapshot is the set of notes sounding together after some note event.
type Snapshot struct {
	OffsetMS uint32
	Notes    []model.Note
}

type reducedEvent struct {
	offset    int64
	isNoteOff bool
	note      uint8
}

// Snapshots reduces note on/off events across all tracks to the held-note
// sets a listener would hear, one per note-on boundary.
func Snapshots(s *smf.SMF) []Snapshot {
	var reduced []reducedEvent
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			absTime := s.TimeAt(absTicks)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				reduced = append(reduced, reducedEvent{offset: absTime, note: key})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				reduced = append(reduced, reducedEvent{offset: absTime, isNoteOff: true, note: key})
			}
		}
	}

	// prioritize smaller offsets, then note offs
	sort.Slice(reduced, func(i, j int) bool {
		if reduced[i].offset != reduced[j].offset {
			return reduced[i].offset < reduced[j].offset
		}
		return reduced[i].isNoteOff
	})

	var res []Snapshot
	pressed := make(map[uint8]bool)
	for _, evt := range reduced {
		if evt.isNoteOff {
			delete(pressed, evt.note)
			continue
		}
		pressed[evt.note] = true

		keys := make([]int, 0, len(pressed))
		for k := range pressed {
			keys = append(keys, int(k))
		}
		sort.Ints(keys)
		notes := make([]model.Note, 0, len(keys))
		for _, k := range keys {
			notes = append(notes, theory.MidiToNote(k))
		}
		// micros to millis
		res = append(res, Snapshot{OffsetMS: uint32(evt.offset / 1000), Notes: notes})
	}
	return res
}

const (
	ticksPerQuarter = 960
	chordVelocity   = 90
)

// WriteProgression renders each voicing as a whole-note block chord, one
// bar per chord, into a format-0 SMF.
func WriteProgression(voicings [][]model.Note, bpm float64, path string) error {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(bpm))

	barTicks := uint32(ticksPerQuarter * 4)
	for _, notes := range voicings {
		var keys []uint8
		for _, n := range notes {
			m, ok := theory.Midi(n)
			if !ok || m < 0 || m > 127 {
				continue
			}
			keys = append(keys, uint8(m))
		}
		if len(keys) == 0 {
			continue
		}
		for _, k := range keys {
			tr.Add(0, midi.NoteOn(0, k, chordVelocity))
		}
		for i, k := range keys {
			delta := uint32(0)
			if i == 0 {
				delta = barTicks
			}
			tr.Add(delta, midi.NoteOff(0, k))
		}
	}
	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return err
	}
	return s.WriteFile(path)
}
