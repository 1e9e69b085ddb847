package contacts

import (
	"errors"

	ferrors "github.com/Mireles-OConnor/CLI-project/foundation/errors"
)

var (
	// ErrMalformedLine marks a line that is not "name | phone".
	ErrMalformedLine = errors.New("invalid line")

	// ErrInvalidContact marks a well-shaped line with an empty name or a bad phone.
	ErrInvalidContact = errors.New("invalid contact")

	ErrInvalidName  = ferrors.DomainInvariant("name", "invalid_name")
	ErrInvalidPhone = ferrors.DomainInvariant("phone", "invalid_phone")

	// ErrPersistence wraps every failure to read or write the contacts file.
	ErrPersistence = ferrors.StateInvariant(nil, "file", "persistence_failure")
)
