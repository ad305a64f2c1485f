package voicing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chordcraft/chordcraft/theory"
)

func TestStandardVoicingMatchesIntervalCount(t *testing.T) {
	intervals := []string{"1P", "3M", "5P", "7m", "9M"}
	notes := StandardVoicing("C", intervals)
	assert.Equal(t, len(intervals), len(notes))
}

func TestStandardVoicingIsAscending(t *testing.T) {
	notes := StandardVoicing("E", []string{"1P", "3m", "5P", "7m", "9M", "11P"})
	for i := 1; i < len(notes); i++ {
		prev, _ := theory.Midi(notes[i-1])
		curr, _ := theory.Midi(notes[i])
		assert.LessOrEqual(t, prev, curr)
	}
}

func TestStandardVoicingAnchorsAtOctave4(t *testing.T) {
	assert.Equal(t, []string{"C4", "E4", "G4"}, StandardVoicing("C", []string{"1P", "3M", "5P"}))
}

func TestStandardVoicingEmptyRoot(t *testing.T) {
	assert.Empty(t, StandardVoicing("", []string{"1P", "3M", "5P"}))
}

func TestSpreadVoicingDegenerateCase(t *testing.T) {
	assert.Equal(t, []string{"C3"}, SpreadVoicing("C", []string{"1P"}))
}

func TestSpreadVoicingShellOrder(t *testing.T) {
	// root, fifth, seventh low; third up an octave
	notes := SpreadVoicing("C", []string{"1P", "3M", "5P", "7M"})
	assert.Equal(t, []string{"C3", "G3", "B3", "E4"}, notes)
}

func TestSpreadVoicingPrefersSeventhOverSixth(t *testing.T) {
	notes := SpreadVoicing("C", []string{"1P", "3M", "5P", "6M", "7m"})
	assert.Contains(t, notes, "A#3")
	assert.NotContains(t, notes, "A3")
}

func TestSpreadVoicingUsesSusToneWhenNoThird(t *testing.T) {
	notes := SpreadVoicing("C", []string{"1P", "4P", "5P"})
	assert.Equal(t, []string{"C3", "G3", "F4"}, notes)
}

func TestSpreadVoicingLiftsFirstExtension(t *testing.T) {
	notes := SpreadVoicing("C", []string{"1P", "3M", "5P", "7m", "9M"})
	assert.Equal(t, []string{"C3", "G3", "A#3", "E4", "D5"}, notes)
}

func TestNaturalVoicingMajorSeventhStack(t *testing.T) {
	// fixed order: bass, root, fifth, seventh, compound third
	notes := NaturalVoicing("C", []string{"1P", "3M", "5P", "7M"})
	assert.Equal(t, []string{"C3", "C4", "G4", "B4", "E5"}, notes)
}

func TestNaturalVoicingLowRootRegister(t *testing.T) {
	notes := NaturalVoicing("E", []string{"1P", "3M", "5P", "7M"})
	assert.Equal(t, []string{"E2", "E3", "B3", "D#4", "G#4"}, notes)
}

func TestNaturalVoicingGenericKeepsIntervalOrder(t *testing.T) {
	notes := NaturalVoicing("G", []string{"1P", "3m", "5P", "7m"})
	assert.Equal(t, []string{"G2", "G3", "A#3", "D4", "F4"}, notes)
}

func TestNaturalVoicingHighRootRegister(t *testing.T) {
	notes := NaturalVoicing("D", []string{"1P", "3m", "5P"})
	assert.Equal(t, []string{"D3", "D4", "F4", "A4"}, notes)
}

func TestApplySelectsStrategy(t *testing.T) {
	intervals := []string{"1P", "3M", "5P"}
	assert := assert.New(t)
	assert.Equal(StandardVoicing("C", intervals), Apply(Standard, "C", intervals))
	assert.Equal(SpreadVoicing("C", intervals), Apply(Spread, "C", intervals))
	assert.Equal(NaturalVoicing("C", intervals), Apply(Natural, "C", intervals))
}

func TestEmptyRootAlwaysEmpty(t *testing.T) {
	assert := assert.New(t)
	assert.Empty(SpreadVoicing("", []string{"1P"}))
	assert.Empty(NaturalVoicing("", []string{"1P"}))
}
