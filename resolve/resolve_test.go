package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyRootGuard(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{}, Resolve("", "7"))
	assert.Equal([]string{}, Resolve("  ", "m"))
}

func TestSusResolvesToOwnRoot(t *testing.T) {
	assert.Equal(t, []string{"D", "Dm"}, Resolve("D", "sus4"))
}

func TestDominantResolvesUpAFourth(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"C", "Cm"}, Resolve("G", "7"))
	assert.Equal([]string{"F", "Fm"}, Resolve("C", "9"))
	assert.Equal([]string{"A", "Am"}, Resolve("E", "13"))
}

func TestHalfDiminishedBeatsMinorRule(t *testing.T) {
	// m7b5 starts with "m" too; rule order decides
	assert.Equal(t, []string{"C7"}, Resolve("G", "m7b5"))
}

func TestMinorFamily(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"C", "Dm", "E"}, Resolve("A", "m"))
	assert.Equal([]string{"G", "Am", "B"}, Resolve("E", "m7"))
}

func TestMinorMajorSeventhIsNotMinorFamily(t *testing.T) {
	// "mmaj7" contains "maj", so it falls through to the major default
	assert.Equal(t, []string{"F", "G", "Am"}, Resolve("C", "mmaj7"))
}

func TestDiminishedResolvesUpHalfStep(t *testing.T) {
	assert.Equal(t, []string{"C", "Cm"}, Resolve("B", "dim"))
}

func TestAugmentedResolvesUpAFourth(t *testing.T) {
	assert.Equal(t, []string{"F"}, Resolve("C", "aug"))
}

func TestMajorDefault(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"F", "G", "Am"}, Resolve("C", ""))
	assert.Equal([]string{"F", "G", "Am"}, Resolve("C", "maj7"))
	assert.Equal([]string{"F", "G", "Am"}, Resolve("C", "add9"))
}

func TestIgnoresBassAnnotation(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Resolve("G", "7"), Resolve("G", "7/B"))
	assert.Equal(Resolve("C", ""), Resolve("C", "/E"))
}

func TestStripsOctaveFromRoot(t *testing.T) {
	assert.Equal(t, Resolve("G", "7"), Resolve("G4", "7"))
}
