package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectMajorTriadRoundTrip(t *testing.T) {
	candidates := Detect("C E G")

	assert := assert.New(t)
	assert.Len(candidates, 1)
	assert.Equal("C", candidates[0].Root)
	assert.Equal("", candidates[0].Symbol)
	assert.Equal([]string{"C4", "E4", "G4"}, candidates[0].Notes)
}

func TestDetectPreservesExplicitOctaves(t *testing.T) {
	candidates := Detect("G3 C4 E4")

	assert := assert.New(t)
	assert.Len(candidates, 1)
	assert.Equal([]string{"G3", "C4", "E4"}, candidates[0].Notes)
}

func TestDetectSortsOctaveInput(t *testing.T) {
	candidates := Detect("G4 E4 C4")

	assert := assert.New(t)
	assert.Len(candidates, 1)
	assert.Equal([]string{"C4", "E4", "G4"}, candidates[0].Notes)
}

func TestDetectAcceptsCommas(t *testing.T) {
	candidates := Detect("C, E, G")
	assert.Len(t, candidates, 1)
}

func TestDetectDropsInvalidTokensSilently(t *testing.T) {
	candidates := Detect("C xx E yy G")

	assert := assert.New(t)
	assert.Len(candidates, 1)
	assert.Equal("C", candidates[0].Root)
}

func TestDetectAllInvalid(t *testing.T) {
	assert := assert.New(t)
	assert.Empty(Detect("xx yy"))
	assert.Empty(Detect(""))
	assert.Empty(Detect("   "))
}

func TestDetectNoMatch(t *testing.T) {
	assert.Empty(t, Detect("C C# D"))
}

func TestDetectMinorSeventh(t *testing.T) {
	candidates := Detect("A C E G")

	var names []string
	for _, c := range candidates {
		names = append(names, c.Root+c.Symbol)
	}
	// the same four notes read as C6 from the other root
	assert := assert.New(t)
	assert.Contains(names, "Am7")
	assert.Contains(names, "C6")
}

func TestDetectSymbolBlanking(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("", displaySymbol("CM", "C", "M"))
	assert.Equal("", displaySymbol("CMajor", "C", "Major"))
	assert.Equal("/E", displaySymbol("CM/E", "C", "M/E"))
	assert.Equal("m7", displaySymbol("Am7", "A", "m7"))
	assert.Equal("maj7", displaySymbol("Abmaj7", "Ab", "maj7"))
}

func TestDetectSymbolAccidentalBoundary(t *testing.T) {
	// root "A" must not bite into "Abmaj7"
	assert.Equal(t, "maj7", displaySymbol("Abmaj7", "A", "maj7"))
}
