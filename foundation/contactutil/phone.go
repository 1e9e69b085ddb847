package contactutil

import (
	"errors"
	"strings"
)

var ErrInvalidPhone = errors.New("invalid phone number: expected 7 or 10 digits")

const (
	localDigits    = 7
	nationalDigits = 10
)

// PhoneDigits returns only the ASCII digits of s, in order.
func PhoneDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// NormalizePhone strips every non-digit and formats the rest for display:
//
//	"5551234"        -> "555-1234"
//	"(555) 123-4567" -> "555-123-4567"
//	"12"             -> ErrInvalidPhone
func NormalizePhone(raw string) (string, error) {
	d := PhoneDigits(raw)
	switch len(d) {
	case localDigits:
		return d[:3] + "-" + d[3:], nil
	case nationalDigits:
		return d[:3] + "-" + d[3:6] + "-" + d[6:], nil
	default:
		return "", ErrInvalidPhone
	}
}

// IsDisplayPhone reports whether s is already in NormalizePhone output form.
func IsDisplayPhone(s string) bool {
	n, err := NormalizePhone(s)
	return err == nil && n == s
}
