// Package shell runs the interactive contact book menu over a line-based
// reader and writer. All prompting and printing lives here; the store only
// sees already-read strings.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Mireles-OConnor/CLI-project/foundation/contactutil"
	"github.com/Mireles-OConnor/CLI-project/foundation/logger"
	"github.com/Mireles-OConnor/CLI-project/internal/contacts"
)

const (
	optList = iota + 1
	optAdd
	optSearch
	optDelete
	optExit
)

const (
	rowFormat = "%-20s | %s\n"
	separator = "---------------------|------"
)

// maxInputBytes bounds one answer. Longer lines are discarded and asked again.
const maxInputBytes = 4096

var (
	// errEndOfInput is returned by readLine when the input is exhausted.
	errEndOfInput = errors.New("end of input")

	errInputTooLong = errors.New("input too long")
)

// Session is one interactive run against a store.
type Session struct {
	store *contacts.Store
	in    *bufio.Reader
	out   io.Writer
	log   logger.LoggerInterface
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l logger.LoggerInterface) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// New returns a session that reads answers from in and writes the menu and
// results to out.
func New(store *contacts.Store, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		store: store,
		in:    bufio.NewReaderSize(in, maxInputBytes),
		out:   out,
		log:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run prints diags, then serves the menu until the user exits or the input
// ends. Either way the store is saved once more before Run returns. The
// returned error reports a failure to read input, never a failed save.
func (s *Session) Run(ctx context.Context, diags []contacts.Diagnostic) error {
	for _, d := range diags {
		s.println(d.String())
	}

	var err error
	for {
		var opt int
		opt, err = s.menu()
		if err != nil || opt == optExit {
			break
		}

		switch opt {
		case optList:
			s.list()
		case optAdd:
			err = s.add(ctx)
		case optSearch:
			err = s.search()
		case optDelete:
			err = s.delete(ctx)
		}
		if err != nil {
			break
		}
	}

	s.save(ctx)

	if errors.Is(err, errEndOfInput) {
		s.log.Debugw("input closed, leaving menu")
		return nil
	}
	return err
}

func (s *Session) menu() (int, error) {
	for {
		s.println("\n--- Contacts Manager ---")
		s.println("1. View All Contacts")
		s.println("2. Add New Contact")
		s.println("3. Search Contact by Name")
		s.println("4. Delete an existing contact")
		s.println("5. Exit")
		s.println("Enter an option (1, 2, 3, 4 or 5):")

		line, err := s.readLine()
		if err != nil && !errors.Is(err, errInputTooLong) {
			return 0, err
		}
		opt, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || opt < optList || opt > optExit {
			s.println("Invalid input. Please enter a number between 1 and 5.")
			continue
		}
		return opt, nil
	}
}

func (s *Session) list() {
	fmt.Fprintf(s.out, rowFormat, "Name", "Phone number")
	s.println(separator)
	for _, c := range s.store.List() {
		fmt.Fprintf(s.out, rowFormat, c.Name, c.Phone)
	}
}

func (s *Session) add(ctx context.Context) error {
	name, err := s.prompt("Enter name:")
	if err != nil {
		return err
	}
	phone, err := s.prompt("Enter phone number:")
	if err != nil {
		return err
	}

	var confirmErr error
	confirm := func(existing contacts.Contact) bool {
		ok, err := s.confirm(fmt.Sprintf("A contact named %s already exists. Do you want to overwrite it? (Yes/No)", existing.Name))
		confirmErr = err
		return ok
	}

	for {
		outcome, err := s.store.AddOrUpdate(ctx, name, phone, confirm)
		if confirmErr != nil {
			return confirmErr
		}

		switch {
		case errors.Is(err, contactutil.ErrInvalidPhone):
			s.println("Invalid phone number. Please enter a 7 or 10 digit number.")
			if phone, err = s.prompt("Enter phone number:"); err != nil {
				return err
			}
			continue
		case errors.Is(err, contacts.ErrInvalidName):
			fmt.Fprintf(s.out, "Invalid name. Names must be non-empty, at most %d characters, and must not contain '|'.\n", contacts.MaxNameRunes)
			if name, err = s.prompt("Enter name:"); err != nil {
				return err
			}
			continue
		case errors.Is(err, contacts.ErrPersistence):
			s.println("Could not save contacts.")
		case err != nil:
			s.log.Warnw("add rejected", "error", err)
			s.println("Contact not added.")
			return nil
		}

		switch outcome {
		case contacts.Added:
			s.println("Contact added.")
		case contacts.Updated:
			s.println("Contact updated.")
		case contacts.Cancelled:
			s.println("Contact not updated.")
		}
		return nil
	}
}

func (s *Session) search() error {
	name, err := s.prompt("Enter the name of the contact to search:")
	if err != nil {
		return err
	}
	c, ok := s.store.Find(name)
	if !ok {
		s.println("Contact not found.")
		return nil
	}
	fmt.Fprintf(s.out, rowFormat, c.Name, c.Phone)
	return nil
}

func (s *Session) delete(ctx context.Context) error {
	s.println("\n--- Delete Contact ---")
	name, err := s.prompt("Enter name to delete:")
	if err != nil {
		return err
	}
	ok, err := s.confirm(fmt.Sprintf("Are you sure you want to delete %s? (Yes/No)", strings.TrimSpace(name)))
	if err != nil {
		return err
	}
	if !ok {
		s.println("Deletion cancelled.")
		return nil
	}

	switch s.store.Delete(name) {
	case contacts.Deleted:
		s.println("Contact deleted.")
		s.save(ctx)
	default:
		s.println("Contact not found.")
	}
	return nil
}

func (s *Session) save(ctx context.Context) {
	if err := s.store.Save(ctx); err != nil {
		s.println("Could not save contacts.")
	}
}

// confirm asks question and reports whether the answer is yes, in any case.
func (s *Session) confirm(question string) (bool, error) {
	answer, err := s.prompt(question)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "yes"), nil
}

func (s *Session) prompt(text string) (string, error) {
	for {
		s.println(text)
		line, err := s.readLine()
		if errors.Is(err, errInputTooLong) {
			s.println("Input too long. Please try again.")
			continue
		}
		return line, err
	}
}

// readLine returns the next line without its line ending. A line that does
// not fit the reader buffer is consumed whole and reported as errInputTooLong.
func (s *Session) readLine() (string, error) {
	line, isPrefix, err := s.in.ReadLine()
	if err != nil {
		return "", readErr(err)
	}
	if !isPrefix {
		return string(line), nil
	}

	for isPrefix {
		if _, isPrefix, err = s.in.ReadLine(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", readErr(err)
		}
	}
	s.log.Debugw("discarded overlong input line")
	return "", errInputTooLong
}

func readErr(err error) error {
	if errors.Is(err, io.EOF) {
		return errEndOfInput
	}
	return fmt.Errorf("read input: %w", err)
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}
