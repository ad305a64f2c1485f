package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNote(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsNote("C"))
	assert.True(IsNote("C#"))
	assert.True(IsNote("Bb3"))
	assert.True(IsNote("A-1"))
	assert.False(IsNote("H"))
	assert.False(IsNote("c"))
	assert.False(IsNote("C##"))
	assert.False(IsNote(""))
}

func TestPitchClass(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C#", PitchClass("C#4"))
	assert.Equal("Bb", PitchClass("Bb"))
	assert.Equal("G", PitchClass("G10"))
}

func TestMidi(t *testing.T) {
	assert := assert.New(t)

	m, ok := Midi("C4")
	assert.True(ok)
	assert.Equal(60, m)

	m, ok = Midi("A4")
	assert.True(ok)
	assert.Equal(69, m)

	_, ok = Midi("C")
	assert.False(ok)
	_, ok = Midi("X4")
	assert.False(ok)
}

func TestMidiToNote(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C4", MidiToNote(60))
	assert.Equal("C#4", MidiToNote(61))
	assert.Equal("A0", MidiToNote(21))
}

func TestTranspose(t *testing.T) {
	cases := []struct {
		note     string
		interval string
		want     string
	}{
		{"C", "3M", "E"},
		{"C", "1P", "C"},
		{"A", "4P", "D"},
		{"G", "5P", "D"},
		{"C4", "5P", "G4"},
		{"C4", "10M", "E5"},
		{"A3", "4P", "D4"},
		{"B3", "2m", "C4"},
		{"Bb", "5P", "F"},
		{"Eb3", "3M", "G3"},
		{"F#", "3M", "A#"},
	}
	for _, c := range cases {
		got, err := Transpose(c.note, c.interval)
		assert.NoError(t, err)
		assert.Equal(t, c.want, got, "%v + %v", c.note, c.interval)
	}
}

func TestTransposeErrors(t *testing.T) {
	assert := assert.New(t)
	_, err := Transpose("", "3M")
	assert.Error(err)
	_, err = Transpose("C", "3X")
	assert.Error(err)
	_, err = Transpose("H", "3M")
	assert.Error(err)
}

func TestIntervalNumber(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(11, IntervalNumber("11P"))
	assert.Equal(3, IntervalNumber("3m"))
	assert.Equal(0, IntervalNumber("P"))
}

func TestPitchDistance(t *testing.T) {
	cases := []struct {
		from string
		to   string
		want string
	}{
		{"C", "E", "3M"},
		{"C", "C", "1P"},
		{"E", "B", "5P"},
		{"E3", "D#4", "7M"},
		{"E", "F#4", "2M"},
	}
	for _, c := range cases {
		got, err := PitchDistance(c.from, c.to)
		assert.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestEnharmonic(t *testing.T) {
	assert := assert.New(t)

	alt, ok := Enharmonic("C#")
	assert.True(ok)
	assert.Equal("Db", alt)

	_, ok = Enharmonic("C")
	assert.False(ok)
}
