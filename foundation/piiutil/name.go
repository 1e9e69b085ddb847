package piiutil

import (
	"strings"
	"unicode"
)

// MaskName keeps the first letter of every word and masks the rest.
//
//	"Alice Smith" -> "A**** S****"
//	"Al"          -> "A*"
//	"X"           -> "X"
func MaskName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	runes := []rune(name)
	wordStart := true
	for i, r := range runes {
		if unicode.IsSpace(r) {
			wordStart = true
			continue
		}
		if wordStart {
			wordStart = false
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			runes[i] = '*'
		}
	}
	return string(runes)
}
