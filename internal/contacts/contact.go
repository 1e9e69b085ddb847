package contacts

import (
	"fmt"
	"strings"

	"github.com/Mireles-OConnor/CLI-project/foundation/textutil"
)

// MaxNameRunes bounds the length of a contact name.
const MaxNameRunes = 128

// Contact is one name and phone pair. Phone is always in display form.
type Contact struct {
	Name  string `validate:"required,contact_name,excludesall=0x7C,max=128"`
	Phone string `validate:"required,phone_display"`
}

func (c Contact) String() string {
	return c.Name + Delimiter + c.Phone
}

// Outcome is the result of a store mutation.
type Outcome int

const (
	Added Outcome = iota + 1
	Updated
	Rejected
	Cancelled
	Deleted
	NotFound
)

func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case Updated:
		return "updated"
	case Rejected:
		return "rejected"
	case Cancelled:
		return "cancelled"
	case Deleted:
		return "deleted"
	case NotFound:
		return "not_found"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// ConfirmFunc is asked before an existing contact is overwritten.
type ConfirmFunc func(existing Contact) bool

var namePolicy = textutil.TextPolicy{
	MinRunes:       1,
	MaxRunes:       MaxNameRunes,
	NormalizeNFKC:  true,
	ForbiddenRunes: "|",
}

// CanonicalName returns the form a name is stored under: NFKC normalized,
// trimmed, inner whitespace collapsed. Empty names, names containing '|',
// line breaks or control characters, and names over MaxNameRunes are
// rejected with ErrInvalidName.
func CanonicalName(name string) (string, error) {
	out, err := textutil.NormalizeText(name, namePolicy)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return out, nil
}

// sameName compares a stored name with a query case-insensitively. Only the
// surrounding whitespace of either side is ignored.
func sameName(stored, query string) bool {
	return strings.EqualFold(strings.TrimSpace(stored), strings.TrimSpace(query))
}
