package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	play "github.com/go-playground/validator/v10"
)

func TestDomainInvariant(t *testing.T) {
	de := DomainInvariant("name", "invalid_name")
	if de.Error() != "name: invalid_name" {
		t.Fatalf("unexpected DomainInvariant string: %s", de.Error())
	}
}

func TestDomainInvariantWithoutField(t *testing.T) {
	de := DomainInvariant("", "empty")
	if de.Error() != "empty" {
		t.Fatalf("unexpected DomainInvariant string: %s", de.Error())
	}
}

func TestStateInvariant(t *testing.T) {
	base := errors.New("disk full")
	se := StateInvariant(base, "file", "persistence_failure")
	if se.Error() != "state: disk full: persistence_failure" {
		t.Fatalf("unexpected StateInvariant string: %s", se.Error())
	}
	var ie InvariantError
	if !errors.As(se, &ie) || ie.Kind != KindState || ie.Field != "file" {
		t.Fatalf("StateInvariant should be an InvariantError, got %#v", se)
	}
	if !errors.Is(se, base) {
		t.Fatalf("StateInvariant should unwrap to base error")
	}
}

func TestStateInvariantMessages(t *testing.T) {
	cases := map[string]error{
		"state: invalid":     StateInvariant(nil, "", ""),
		"state: boom":        StateInvariant(errors.New("boom"), "", ""),
		"state: stale":       StateInvariant(nil, "", "stale"),
		"state: boom: stale": StateInvariant(errors.New("boom"), "", "stale"),
	}
	for want, err := range cases {
		if err.Error() != want {
			t.Fatalf("got %q, want %q", err.Error(), want)
		}
	}
}

func TestInvariantSentinelThroughWrap(t *testing.T) {
	sentinel := DomainInvariant("name", "invalid_name")
	err := fmt.Errorf("%w: %q", sentinel, "a|b")
	if !errors.Is(err, sentinel) {
		t.Fatalf("wrapped invariant must match its sentinel")
	}
	if errors.Is(err, DomainInvariant("phone", "invalid_phone")) {
		t.Fatalf("wrapped invariant must not match a different sentinel")
	}
}

func TestValidationFields(t *testing.T) {
	if ValidationFields(nil) != nil {
		t.Fatalf("empty map must yield nil error")
	}

	err := ValidationFields(map[string]string{"Phone": "invalid_phone", "Name": "required"})
	ve, ok := AsValidation(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(ve.Violations) != 2 || ve.Violations[0].Field != "Name" {
		t.Fatalf("violations must be sorted by field: %+v", ve.Violations)
	}
	if err.Error() != "validation failed: Name: required; Phone: invalid_phone" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

type nestedReq struct {
	Log struct {
		Env string `validate:"required"`
	}
}

func TestFromPlaygroundStructNamespace(t *testing.T) {
	v := play.New()

	err := v.Struct(nestedReq{})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	ves := err.(play.ValidationErrors)

	ve := FromPlayground(ves, map[string]string{"required": "required"})
	if len(ve.Violations) != 1 {
		t.Fatalf("expected one violation, got %+v", ve.Violations)
	}
	if ve.Violations[0].Field != "Log.Env" || ve.Violations[0].Reason != "required" {
		t.Fatalf("unexpected violation: %+v", ve.Violations[0])
	}
}

func TestFromPlaygroundUnknownTag(t *testing.T) {
	v := play.New()
	type req struct {
		Name string `validate:"max=2"`
	}
	err := v.Struct(req{Name: "long"})
	ve := FromPlayground(err.(play.ValidationErrors), nil)
	if ve.Violations[0].Reason != "invalid" {
		t.Fatalf("unknown tags must map to invalid, got %+v", ve.Violations[0])
	}
}

func TestReasonOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "canceled", err: fmt.Errorf("save: %w", context.Canceled), want: "canceled"},
		{name: "deadline", err: context.DeadlineExceeded, want: "deadline_exceeded"},
		{name: "validation", err: ValidationFields(map[string]string{"Name": "required"}), want: "validation_failed"},
		{name: "domain", err: DomainInvariant("phone", "invalid_phone"), want: "invalid_phone"},
		{name: "state", err: StateInvariant(errors.New("x"), "file", "persistence_failure"), want: "persistence_failure"},
		{name: "other", err: errors.New("boom"), want: "unexpected_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReasonOf(tt.err); got != tt.want {
				t.Fatalf("ReasonOf(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
