package resolve

import (
	"log"
	"regexp"
	"strings"

	"github.com/chordcraft/chordcraft/theory"
)

var dominantRegex = regexp.MustCompile(`^(7|9|11|13)`)

func up(root string, interval string) (string, bool) {
	target, err := theory.Transpose(root, interval)
	if err != nil {
		return "", false
	}
	return target, true
}

// Resolve proposes 1-3 chords the given chord wants to move to, from a
// fixed table of tonal-function rules evaluated top to bottom. Returns an
// empty list on an empty root or any transposition failure; never panics
// out of this boundary.
func Resolve(root string, symbol string) (candidates []string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("resolve: recovered while resolving %v%v: %v", root, symbol, r)
			candidates = []string{}
		}
	}()

	root = theory.PitchClass(strings.TrimSpace(root))
	if root == "" {
		return []string{}
	}
	// Inversions don't change where a chord wants to go.
	if i := strings.Index(symbol, "/"); i >= 0 {
		symbol = symbol[:i]
	}

	switch {
	case strings.Contains(symbol, "sus"):
		return []string{root, root + "m"}

	case dominantRegex.MatchString(symbol) && !strings.Contains(symbol, "m"):
		target, ok := up(root, "4P")
		if !ok {
			return []string{}
		}
		return []string{target, target + "m"}

	case symbol == "m7b5":
		target, ok := up(root, "4P")
		if !ok {
			return []string{}
		}
		return []string{target + "7"}

	case strings.HasPrefix(symbol, "m") && !strings.Contains(symbol, "maj"):
		var res []string
		if target, ok := up(root, "3m"); ok {
			res = append(res, target)
		}
		if target, ok := up(root, "4P"); ok {
			res = append(res, target+"m")
		}
		if target, ok := up(root, "5P"); ok {
			res = append(res, target)
		}
		return res

	case strings.Contains(symbol, "dim"):
		target, ok := up(root, "2m")
		if !ok {
			return []string{}
		}
		return []string{target, target + "m"}

	case strings.Contains(symbol, "aug"):
		target, ok := up(root, "4P")
		if !ok {
			return []string{}
		}
		return []string{target}

	default:
		var res []string
		if target, ok := up(root, "4P"); ok {
			res = append(res, target)
		}
		if target, ok := up(root, "5P"); ok {
			res = append(res, target)
		}
		if target, ok := up(root, "6M"); ok {
			res = append(res, target+"m")
		}
		return res
	}
}
