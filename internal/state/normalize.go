package state

import (
	"strings"
	"unicode"
)

// NormalizeKey derives the store key for an application identity or
// name: lowercase, runs of non-alphanumeric characters collapsed to a
// single hyphen, leading and trailing hyphens stripped. An input that
// normalizes to nothing maps to a reserved fallback key. Idempotent:
// NormalizeKey(NormalizeKey(x)) == NormalizeKey(x).
func NormalizeKey(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	pendingHyphen := false
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		pendingHyphen = true
	}

	key := b.String()
	if key == "" {
		return fallbackKey
	}
	return key
}
