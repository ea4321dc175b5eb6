// Package format defines the reserved characters and shared constants of
// the tabkv storage format.
package format

import (
	"errors"
	"fmt"
)

// Reserved characters of the text form.
const (
	// CommentPrefix marks a comment line. It is only recognized in
	// column 1.
	CommentPrefix = '#'

	// PathSeparator joins local keys into a global key. It may not
	// appear inside a key.
	PathSeparator = '.'

	// KeyValueSeparator separates a key from its value.
	KeyValueSeparator = '='

	// KeyValuePerimeter encloses keys and values.
	KeyValuePerimeter = '"'

	// Tab is the depth marker. The depth of an entry is the number of
	// leading tabs on its line.
	Tab = '\t'
)

// RootDepth is the depth of the sentinel root entry, one above depth 0.
const RootDepth = -1

// Wire record type bytes.
const (
	// WireDummy marks a record with no value.
	WireDummy byte = 0
	// WireValue marks a record carrying a value.
	WireValue byte = 1
)

// IntSize is the width in bytes of every integer in the wire form.
const IntSize = 4

type Format int

const (
	TextFormat Format = iota
	WireFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":    TextFormat,
		"text": TextFormat,
		"w":    WireFormat,
		"wire": WireFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TextFormat:
		return []byte("text"), nil
	case WireFormat:
		return []byte("wire"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsText() bool { return f == TextFormat }
func (f Format) IsWire() bool { return f == WireFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case TextFormat:
		return ".tabkv"
	case WireFormat:
		return ".tkw"
	default:
		return ""
	}
}
