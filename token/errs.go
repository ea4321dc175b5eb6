package token

import (
	"errors"
	"fmt"
)

// The syntax error kinds a parse can fail with. Each is fatal to the
// whole parse; there is no resynchronization to a later line.
var (
	// ErrKeyEnclosure: an expected opening or closing quote was not
	// found around a key or value.
	ErrKeyEnclosure = errors.New("invalid key enclosure")

	// ErrKeyCharacter: a key body contains the path separator.
	ErrKeyCharacter = errors.New("invalid key character")

	// ErrEmptyKey: a key body has zero length.
	ErrEmptyKey = errors.New("empty key")

	// ErrSeparator: the key/value separator was expected but something
	// else was found.
	ErrSeparator = errors.New("invalid separator")

	// ErrTrailingCharacter: non-whitespace content remains after the
	// value's closing quote.
	ErrTrailingCharacter = errors.New("invalid trailing character")
)

// SyntaxError is a positioned syntax error. Err is one of the sentinel
// kinds above.
type SyntaxError struct {
	Err error
	Pos Pos
}

func NewSyntaxError(err error, pos Pos) *SyntaxError {
	return &SyntaxError{Err: err, Pos: pos}
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos)
}
