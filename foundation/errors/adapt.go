package errors

import (
	"context"
	"errors"
)

// ReasonOf maps any error to a stable machine-readable reason, suitable for
// log fields and metric labels.
func ReasonOf(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.Canceled) {
		return "canceled"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "deadline_exceeded"
	}

	if _, ok := AsValidation(err); ok {
		return "validation_failed"
	}

	var ie InvariantError
	if errors.As(err, &ie) && ie.Reason != "" {
		return ie.Reason
	}

	return "unexpected_error"
}
