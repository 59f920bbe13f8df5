package kernel

import (
	"fmt"

	"github.com/google/uuid"

	"warehouse/internal/pkg/errs"
)

// Tag is the category prefix of an identifier. The core assumes no structure
// beyond process uniqueness; tags exist purely to make logs and reports
// readable.
type Tag string

const (
	// TagOrder prefixes order identifiers.
	TagOrder Tag = "OR"
	// TagWorker prefixes picker and courier identifiers.
	TagWorker Tag = "WR"
	// TagWarehouse prefixes warehouse identifiers.
	TagWarehouse Tag = "WH"
	// TagSupplier prefixes supplier identifiers.
	TagSupplier Tag = "PR"
	// TagCustomer prefixes customer identifiers.
	TagCustomer Tag = "US"
)

// ErrIDIsNotConstructed indicates that an ID was not created through NewID
// or IDFromString. This error is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError(
	"ID must be created via NewID or IDFromString")

// ID is a category-tagged unique identifier. It wraps a random UUID with a
// short tag prefix and renders as "<TAG>-<uuid>". IDs are opaque tokens:
// only equality matters to the core, and because generation is the sole
// source of randomness in a run, IDs are excluded from determinism checks.
//
// The zero value is invalid; use NewID or IDFromString.
type ID struct {
	tag Tag
	id  uuid.UUID
}

// NewID generates a new process-unique identifier for the given category.
//
// Example:
//
//	orderID := kernel.NewID(kernel.TagOrder)
//	fmt.Println(orderID) // e.g. "OR-550e8400-e29b-41d4-a716-446655440000"
func NewID(tag Tag) ID {
	return ID{tag: tag, id: uuid.New()}
}

// IDFromString parses the "<TAG>-<uuid>" form produced by String.
// Returns an error when the token does not match that shape.
func IDFromString(s string) (ID, error) {
	var tag Tag
	for i, r := range s {
		if r == '-' {
			tag = Tag(s[:i])
			s = s[i+1:]
			break
		}
	}
	if tag == "" {
		return ID{}, errs.NewValueIsInvalidError("ID has no category tag")
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("ID", err)
	}

	return ID{tag: tag, id: id}, nil
}

// Tag returns the category prefix of the identifier.
func (i ID) Tag() Tag {
	return i.tag
}

// String returns the identifier as "<TAG>-<uuid>".
// This method implements the fmt.Stringer interface.
func (i ID) String() string {
	return fmt.Sprintf("%s-%s", i.tag, i.id)
}

// IsEqual compares two identifiers for equality of tag and UUID.
func (i ID) IsEqual(other ID) bool {
	return i.tag == other.tag && i.id == other.id
}

// Validate checks that the ID was created through a constructor.
// Returns ErrIDIsNotConstructed for the zero value.
func (i ID) Validate() error {
	if i.id == uuid.Nil || i.tag == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
