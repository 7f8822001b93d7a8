package template

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName: an attribute was given no name
	ErrEmptyName = errors.New("attribute name is empty")
	// ErrDuplicateName: the name is already used in this template
	ErrDuplicateName = errors.New("attribute name already used")
	// ErrInvalidNumber: a coordinate or page field does not parse
	ErrInvalidNumber = errors.New("invalid number")
	// ErrInvalidPattern: a remove/select expression does not compile
	ErrInvalidPattern = errors.New("invalid pattern")
)

// ValidationError rejects one attribute during template creation
type ValidationError struct {
	Field string // name, remove or select
	Name  string // attribute name as entered
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("attribute %q: %s: %v", e.Name, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// EntryError rejects one entry while decoding a template file
type EntryError struct {
	Index int    // 0-based position in the file
	Name  string // may be empty
	Field string // element name, e.g. x-start
	Err   error
}

func (e *EntryError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("entry %d (%s): %s: %v", e.Index+1, e.Name, e.Field, e.Err)
	}
	return fmt.Sprintf("entry %d: %s: %v", e.Index+1, e.Field, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
