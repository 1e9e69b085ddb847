package contacts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/Mireles-OConnor/CLI-project/foundation/contactutil"
	ferrors "github.com/Mireles-OConnor/CLI-project/foundation/errors"
	"github.com/Mireles-OConnor/CLI-project/foundation/logger"
	"github.com/Mireles-OConnor/CLI-project/foundation/piiutil"
	"github.com/Mireles-OConnor/CLI-project/foundation/retry"
	"github.com/Mireles-OConnor/CLI-project/foundation/validator"
)

const fileMode fs.FileMode = 0o644

// Recorder receives store activity. metrics.PromMetrics implements it.
type Recorder interface {
	ObserveOperation(op, outcome string)
	IncSaveFailure(reason string)
	AddSkippedLines(n int)
	SetRecords(n int)
}

type nopRecorder struct{}

func (nopRecorder) ObserveOperation(string, string) {}
func (nopRecorder) IncSaveFailure(string)           {}
func (nopRecorder) AddSkippedLines(int)             {}
func (nopRecorder) SetRecords(int)                  {}

// Store is the in-memory contact list bound to one file.
type Store struct {
	path     string
	contacts []Contact

	log    logger.LoggerInterface
	rec    Recorder
	policy retry.Policy
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l logger.LoggerInterface) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRecorder sets the metrics sink; nil keeps the no-op default.
func WithRecorder(r Recorder) Option {
	return func(s *Store) {
		if r != nil {
			s.rec = r
		}
	}
}

// WithRetryPolicy bounds how hard Save tries before reporting a failure.
func WithRetryPolicy(p retry.Policy) Option {
	return func(s *Store) { s.policy = p }
}

// New returns an empty store bound to path without touching the file.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		log:    logger.Nop(),
		rec:    nopRecorder{},
		policy: retry.DefaultPolicy(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open loads the store from path. A missing or unreadable file yields an
// empty store, and a read that fails partway keeps the contacts read before
// it. Every problem is reported as a Diagnostic.
func Open(path string, opts ...Option) (*Store, []Diagnostic) {
	s := New(path, opts...)

	cs, diags, err := readFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.log.Infow("contacts file not found, starting empty", "path", path)
		diags = []Diagnostic{{Err: fmt.Errorf("no contacts file at %s, starting with an empty list: %w", path, fs.ErrNotExist)}}
	case err != nil && len(cs) == 0:
		err = fmt.Errorf("%w: could not read %s, starting with an empty list: %w", ErrPersistence, path, err)
		s.log.Errorw("contacts load failed", "path", path, "error", err)
		diags = append(diags, Diagnostic{Err: err})
	case err != nil:
		err = fmt.Errorf("%w: could not finish reading %s, keeping the %d contacts read: %w", ErrPersistence, path, len(cs), err)
		s.log.Errorw("contacts load incomplete", "path", path, "records", len(cs), "error", err)
		diags = append(diags, Diagnostic{Err: err})
	}

	s.contacts = cs
	s.rec.AddSkippedLines(countLineDiagnostics(diags))
	s.rec.SetRecords(len(s.contacts))
	s.log.Debugw("contacts loaded", "path", path, "records", len(s.contacts), "diagnostics", len(diags))
	return s, diags
}

func countLineDiagnostics(diags []Diagnostic) int {
	n := 0
	for _, d := range diags {
		if d.Line > 0 {
			n++
		}
	}
	return n
}

func readFile(path string) ([]Contact, []Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Path is the file the store loads from and saves to.
func (s *Store) Path() string { return s.path }

// Len reports how many contacts are held in memory.
func (s *Store) Len() int { return len(s.contacts) }

// List returns a copy of the contacts in store order.
func (s *Store) List() []Contact {
	s.rec.ObserveOperation("list", "ok")
	return slices.Clone(s.contacts)
}

// Find returns the first contact whose name matches case-insensitively.
func (s *Store) Find(name string) (Contact, bool) {
	i := s.index(name)
	if i < 0 {
		s.rec.ObserveOperation("search", NotFound.String())
		return Contact{}, false
	}
	s.rec.ObserveOperation("search", "found")
	return s.contacts[i], true
}

func (s *Store) index(name string) int {
	return slices.IndexFunc(s.contacts, func(c Contact) bool { return sameName(c.Name, name) })
}

// AddOrUpdate stores name with rawPhone normalized. When the name is already
// taken confirm decides whether its phone is overwritten in place; a nil
// confirm declines. Added and Updated are saved before returning; a save
// failure is returned alongside the outcome and the change stays in memory.
func (s *Store) AddOrUpdate(ctx context.Context, name, rawPhone string, confirm ConfirmFunc) (Outcome, error) {
	phone, err := contactutil.NormalizePhone(rawPhone)
	if err != nil {
		s.rec.ObserveOperation("add", Rejected.String())
		return Rejected, fmt.Errorf("%w: %w", ErrInvalidPhone, err)
	}

	canonical, err := CanonicalName(name)
	if err != nil {
		s.rec.ObserveOperation("add", Rejected.String())
		return Rejected, err
	}

	c := Contact{Name: canonical, Phone: phone}
	if err := validator.Check(c); err != nil {
		s.rec.ObserveOperation("add", Rejected.String())
		return Rejected, err
	}

	var outcome Outcome
	if i := s.index(canonical); i >= 0 {
		if confirm == nil || !confirm(s.contacts[i]) {
			s.rec.ObserveOperation("add", Cancelled.String())
			return Cancelled, nil
		}
		s.contacts[i].Phone = phone
		c = s.contacts[i]
		outcome = Updated
	} else {
		s.contacts = append(s.contacts, c)
		outcome = Added
	}

	s.rec.ObserveOperation("add", outcome.String())
	s.rec.SetRecords(len(s.contacts))
	s.log.Infow("contact stored",
		"outcome", outcome.String(),
		"name", piiutil.MaskName(c.Name),
		"phone", piiutil.MaskPhone(c.Phone),
	)

	if err := s.Save(ctx); err != nil {
		return outcome, err
	}
	return outcome, nil
}

// Delete removes the first contact matching name. It does not save.
func (s *Store) Delete(name string) Outcome {
	i := s.index(name)
	if i < 0 {
		s.rec.ObserveOperation("delete", NotFound.String())
		return NotFound
	}

	removed := s.contacts[i]
	s.contacts = slices.Delete(s.contacts, i, i+1)

	s.rec.ObserveOperation("delete", Deleted.String())
	s.rec.SetRecords(len(s.contacts))
	s.log.Infow("contact deleted", "name", piiutil.MaskName(removed.Name))
	return Deleted
}

// Save overwrites the file with the current contacts. The write goes to a
// temporary file in the same directory which is then renamed over the
// target, so a failed save never truncates the previous file.
func (s *Store) Save(ctx context.Context) error {
	snapshot := slices.Clone(s.contacts)

	err := retry.Do(ctx, s.policy, func() error {
		return writeFile(s.path, snapshot)
	}, func(err error, next time.Duration) {
		s.log.Warnw("save attempt failed, retrying", "path", s.path, "error", err, "retry_in", next)
	})
	if err != nil {
		s.rec.IncSaveFailure(failureReason(err))
		err = fmt.Errorf("%w: save %s: %w", ErrPersistence, s.path, err)
		s.log.Errorw("contacts save failed", "path", s.path, "records", len(snapshot), "error", err)
		return err
	}

	s.log.Debugw("contacts saved", "path", s.path, "records", len(snapshot))
	return nil
}

func writeFile(path string, cs []Contact) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return classify(err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, cs); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Chmod(fileMode); err != nil {
		return classify(err)
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return classify(err)
	}
	return nil
}

// failureReason labels a failed save by its underlying cause.
func failureReason(err error) string {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return "permission"
	case errors.Is(err, fs.ErrNotExist):
		return "not_exist"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ferrors.ReasonOf(err)
	default:
		return "io"
	}
}

// classify marks failures that another attempt cannot fix.
func classify(err error) error {
	if errors.Is(err, fs.ErrPermission) || errors.Is(err, fs.ErrNotExist) {
		return retry.Permanent(err)
	}
	return err
}
