package contacts

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Mireles-OConnor/CLI-project/foundation/contactutil"
)

// Delimiter separates name and phone on a line of the contacts file.
const Delimiter = " | "

// maxDiagnosticRunes bounds how much of a skipped line a Diagnostic prints.
const maxDiagnosticRunes = 80

// Diagnostic reports a problem that did not stop loading.
// Line is 1-based; it is zero for file-level problems.
type Diagnostic struct {
	Line int
	Text string
	Err  error
}

func (d Diagnostic) String() string {
	if d.Line == 0 {
		return d.Err.Error()
	}
	return fmt.Sprintf("Skipping %v on line %d: %s", d.Err, d.Line, clip(d.Text, maxDiagnosticRunes))
}

func clip(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max]) + "..."
}

// ParseLine parses a single "name | phone" record.
// The error is ErrMalformedLine or ErrInvalidContact.
func ParseLine(line string) (Contact, error) {
	parts := strings.Split(line, Delimiter)
	if len(parts) != 2 {
		return Contact{}, ErrMalformedLine
	}

	name := strings.TrimSpace(parts[0])
	phone, err := contactutil.NormalizePhone(strings.TrimSpace(parts[1]))
	if name == "" || err != nil {
		return Contact{}, ErrInvalidContact
	}
	return Contact{Name: name, Phone: phone}, nil
}

// Decode reads contacts from r in file order. Lines have no length limit.
// Bad lines, blank ones included, are skipped and reported. The error is
// non-nil only when r itself fails, in which case the contacts read so far
// are still returned.
func Decode(r io.Reader) ([]Contact, []Diagnostic, error) {
	var (
		out   []Contact
		diags []Diagnostic
	)

	br := bufio.NewReader(r)
	n := 0
	for {
		raw, err := br.ReadString('\n')
		if raw != "" {
			n++
			line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
			if c, perr := ParseLine(line); perr != nil {
				diags = append(diags, Diagnostic{Line: n, Text: line, Err: perr})
			} else {
				out = append(out, c)
			}
		}

		switch {
		case errors.Is(err, io.EOF):
			return out, diags, nil
		case err != nil:
			return out, diags, fmt.Errorf("read line %d: %w", n+1, err)
		}
	}
}

// Encode writes one "name | phone" line per contact.
func Encode(w io.Writer, cs []Contact) error {
	bw := bufio.NewWriter(w)
	for _, c := range cs {
		if _, err := bw.WriteString(c.Name + Delimiter + c.Phone + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
