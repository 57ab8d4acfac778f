package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound means no document exists for the identifier.
	ErrNotFound = errors.New("not found")
	// ErrMalformed means a document exists but is not valid JSON or is
	// missing a required field.
	ErrMalformed = errors.New("malformed document")
	// ErrInvalidID means a caller-supplied identifier cannot be used as a
	// storage key.
	ErrInvalidID = errors.New("invalid identifier")
)

// ID is a storage identifier. Every value that ends up in a file name goes
// through ParseID, so caller input cannot escape the data directory.
type ID string

func ParseID(s string) (ID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidID)
	}
	if strings.ContainsAny(s, `/\`) || strings.Contains(s, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return ID(s), nil
}

func (id ID) String() string { return string(id) }
