package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	defaultAttempts        = 3
	defaultInitialInterval = 50 * time.Millisecond
	defaultMaxInterval     = 500 * time.Millisecond
	defaultMultiplier      = 2.0
	defaultRandomization   = 0.5
	defaultMaxElapsed      = 5 * time.Second
)

// Policy bounds a retry loop. Zero fields fall back to defaults.
type Policy struct {
	Attempts        int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		Attempts:        defaultAttempts,
		InitialInterval: defaultInitialInterval,
		MaxInterval:     defaultMaxInterval,
	}
}

func (p Policy) withDefaults() Policy {
	d := DefaultPolicy()
	if p.Attempts <= 0 {
		p.Attempts = d.Attempts
	}
	if p.InitialInterval <= 0 {
		p.InitialInterval = d.InitialInterval
	}
	if p.MaxInterval < p.InitialInterval {
		p.MaxInterval = p.InitialInterval
	}
	return p
}

// PermanentError wraps a non-retryable error.
type PermanentError struct {
	err error
}

func (e PermanentError) Error() string {
	if e.err == nil {
		return "permanent error"
	}
	return e.err.Error()
}

func (e PermanentError) Unwrap() error { return e.err }

// Permanent marks an error as non-retryable.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	if IsPermanent(err) {
		return err
	}
	return PermanentError{err: err}
}

// IsPermanent reports whether err is marked as non-retryable.
func IsPermanent(err error) bool {
	var pe PermanentError
	if errors.As(err, &pe) {
		return true
	}

	var bpe *backoff.PermanentError
	return errors.As(err, &bpe)
}

// Notify is called after every failed attempt that will be retried.
type Notify func(err error, next time.Duration)

// Do runs fn until it succeeds, returns a permanent error, the context is
// done, or p.Attempts tries have been made. The last error is returned.
func Do(ctx context.Context, p Policy, fn func() error, notify Notify) error {
	p = p.withDefaults()

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.InitialInterval
	exp.MaxInterval = p.MaxInterval
	exp.Multiplier = defaultMultiplier
	exp.RandomizationFactor = defaultRandomization
	exp.Reset()

	type unit struct{}
	op := func() (unit, error) {
		if err := ctx.Err(); err != nil {
			return unit{}, backoff.Permanent(err)
		}

		err := fn()
		if IsPermanent(err) {
			var bpe *backoff.PermanentError
			if errors.As(err, &bpe) {
				return unit{}, err
			}
			return unit{}, backoff.Permanent(err)
		}
		return unit{}, err
	}

	opts := []backoff.RetryOption{
		backoff.WithBackOff(exp),
		backoff.WithMaxTries(uint(p.Attempts)),
		backoff.WithMaxElapsedTime(defaultMaxElapsed),
	}
	if notify != nil {
		opts = append(opts, backoff.WithNotify(backoff.Notify(notify)))
	}

	_, err := backoff.Retry(ctx, op, opts...)
	return err
}
