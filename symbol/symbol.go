package symbol

import (
	"strings"
)

var majorAliases = []string{"M", "major", "Major", "Maj", "maj"}

func isMajorAlias(s string) bool {
	for _, alias := range majorAliases {
		if s == alias {
			return true
		}
	}
	return false
}

// Sanitize strips a redundant root prefix and major qualifiers from a raw
// chord symbol so the displayed quality string is minimal. Idempotent.
func Sanitize(rawSymbol string, root string) string {
	s := rawSymbol
	if root != "" && strings.HasPrefix(s, root) {
		rest := s[len(root):]
		// Stripping "A" off "Abmaj7" would leave an accidental that
		// belongs to a different root. Only strip when the root carries
		// its own accidental or the remainder doesn't start with one.
		rootHasAccidental := strings.ContainsAny(root, "#b")
		if rootHasAccidental || rest == "" || (rest[0] != '#' && rest[0] != 'b') {
			s = rest
		}
	}

	if isMajorAlias(s) {
		return ""
	}
	if i := strings.Index(s, "/"); i >= 0 && isMajorAlias(s[:i]) {
		return s[i:]
	}
	return s
}
