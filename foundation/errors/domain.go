package errors

import (
	"fmt"
)

// InvariantKind is the kind of a broken invariant.
type InvariantKind string

const (
	KindDomain InvariantKind = "domain"
	KindState  InvariantKind = "state"
)

// InvariantError is the single error type for field-level and state-level
// invariants. It is comparable, so package-level values work as sentinels.
type InvariantError struct {
	Kind   InvariantKind
	Base   error
	Field  string
	Reason string
}

func (e InvariantError) Error() string {
	switch e.Kind {
	case KindState:
		if e.Reason == "" {
			if e.Base == nil {
				return "state: invalid"
			}
			return fmt.Sprintf("state: %v", e.Base)
		}
		if e.Base == nil {
			return fmt.Sprintf("state: %s", e.Reason)
		}
		return fmt.Sprintf("state: %v: %s", e.Base, e.Reason)
	default:
		if e.Field == "" {
			return e.Reason
		}
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
}

// Unwrap supports errors.Is / errors.As.
func (e InvariantError) Unwrap() error {
	return e.Base
}

// DomainInvariant builds a field-level invariant error.
// Example: "name: invalid_name"
func DomainInvariant(field, reason string) error {
	return InvariantError{Kind: KindDomain, Field: field, Reason: reason}
}

// StateInvariant builds a state invariant error.
// Example: "state: write contacts.txt: permission denied: persistence_failure"
func StateInvariant(base error, field, reason string) error {
	return InvariantError{Kind: KindState, Base: base, Field: field, Reason: reason}
}
