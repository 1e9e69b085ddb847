package piiutil

import "strings"

// keepPhoneDigits is how many trailing digits MaskPhone leaves readable.
const keepPhoneDigits = 4

// MaskPhone hides every digit of a display phone except the last four and
// keeps the separators. A value with four digits or fewer is masked whole.
//
//	"555-123-4567" -> "***-***-4567"
//	"555-1234"     -> "***-1234"
//	"1234"         -> "****"
func MaskPhone(phone string) string {
	b := []byte(strings.TrimSpace(phone))

	total := 0
	for _, c := range b {
		if isDigit(c) {
			total++
		}
	}
	keep := keepPhoneDigits
	if total <= keepPhoneDigits {
		keep = 0
	}

	masked := total - keep
	for i := 0; i < len(b) && masked > 0; i++ {
		if isDigit(b[i]) {
			b[i] = '*'
			masked--
		}
	}
	return string(b)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
