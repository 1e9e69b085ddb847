package textutil

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var ErrInvalidPolicy = errors.New("invalid policy")

type TextPolicy struct {
	MinRunes int
	MaxRunes int
	MaxBytes int

	NormalizeNFKC bool
	AllowEmpty    bool

	// ForbiddenRunes lists characters that may not appear anywhere in the text.
	ForbiddenRunes string
}

func (p TextPolicy) Validate() error {
	if p.MaxRunes <= 0 {
		return ErrInvalidPolicy
	}
	if p.MinRunes < 0 || p.MinRunes > p.MaxRunes {
		return ErrInvalidPolicy
	}
	if p.AllowEmpty && p.MinRunes != 0 {
		return ErrInvalidPolicy
	}
	if !p.AllowEmpty && p.MinRunes == 0 {
		return ErrInvalidPolicy
	}
	if p.MaxBytes < 0 {
		return ErrInvalidPolicy
	}
	return nil
}

// NormalizeText validates and canonicalizes text according to the policy.
func NormalizeText(s string, p TextPolicy) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	if p.NormalizeNFKC {
		s = norm.NFKC.String(s)
	}

	out, err := CanonicalizeStrict(s, CanonicalPolicy{
		MaxRunes:   p.MaxRunes,
		AllowEmpty: p.AllowEmpty,
	})
	if err != nil {
		return "", err
	}

	if utf8.RuneCountInString(out) < p.MinRunes {
		return "", ErrInvalidText
	}
	if p.MaxBytes > 0 && len(out) > p.MaxBytes {
		return "", ErrInvalidText
	}
	if p.ForbiddenRunes != "" && strings.ContainsAny(out, p.ForbiddenRunes) {
		return "", ErrInvalidText
	}

	return out, nil
}
