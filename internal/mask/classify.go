// Package mask classifies and matches glob masks against a filesystem.
//
// The mask syntax is doublestar's: `*`, `**`, `?`, character classes (`[...]`) and alternatives
// (`{a,b}`), with `\` escaping the following character.
package mask

// metaChars are the runes which start a glob construct.
const metaChars = "*?[{"

// IsMask returns true iff spec contains an unescaped glob metacharacter. A spec for which it
// returns false matches at most the single path it names.
func IsMask(spec string) bool {
	escaped := false
	for _, c := range spec {
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case isMeta(c):
			return true
		}
	}
	return false
}

// IsAllMasks returns true iff every spec is a mask. It is vacuously true for an empty list.
func IsAllMasks(specs []string) bool {
	for _, spec := range specs {
		if !IsMask(spec) {
			return false
		}
	}
	return true
}

func isMeta(c rune) bool {
	for _, m := range metaChars {
		if c == m {
			return true
		}
	}
	return false
}
