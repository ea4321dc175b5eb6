// Package tabkv reads and writes tabkv storage files: a hierarchical
// key/value store with a human-editable text form and an equivalent
// compact wire form.
//
// # Text form
//
//	# connection settings
//	"db"
//		"host"="db1"
//		"port"="5432"
//	"name"="example"
//
// Depth is marked by leading tabs, keys and values are quoted, `#` in
// column 1 starts a comment that attaches to the next entry, and `=`
// separates a key from its value. An entry without a value groups its
// children. Entries are addressed by dotted global keys: "db.host".
//
// # Usage
//
//	s, err := tabkv.Open("app.tabkv")
//	if err != nil {
//	    return err
//	}
//	host, ok := s.Get("db.host")
//	s.Set("db.user", "app")
//	if err := s.Save(); err != nil {
//	    return err
//	}
package tabkv

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tabkv/go-tabkv/encode"
	"github.com/tabkv/go-tabkv/parse"
	"github.com/tabkv/go-tabkv/record"
	"github.com/tabkv/go-tabkv/tree"
	"github.com/tabkv/go-tabkv/wire"
)

var (
	ErrIsDirectory = errors.New("path is a directory")
	ErrNoPath      = errors.New("store has no path")
)

// Store is a loaded storage file. It is not safe for concurrent use with
// a writer; the format assumes single-writer, single-process access.
type Store struct {
	path string
	tree *tree.Tree
}

// New returns an empty store with no backing path.
func New() *Store {
	return &Store{tree: tree.New()}
}

// Open reads the text file at path. A missing file yields an empty store
// that Save will create; a directory is an error.
func Open(path string) (*Store, error) {
	fi, err := os.Stat(path)
	switch {
	case err == nil && fi.IsDir():
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	case errors.Is(err, os.ErrNotExist):
		return &Store{path: path, tree: tree.New()}, nil
	case err != nil:
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := load(f, parse.WithFilename(path))
	if err != nil {
		return nil, err
	}
	s.path = path
	return s, nil
}

// Load reads a store from tabkv text.
func Load(r io.Reader) (*Store, error) {
	return load(r)
}

func load(r io.Reader, opts ...parse.Option) (*Store, error) {
	recs, err := parse.Parse(r, opts...)
	if err != nil {
		return nil, err
	}
	t, err := tree.Load(recs)
	if err != nil {
		return nil, err
	}
	return &Store{tree: t}, nil
}

// LoadWire reads a store from its wire form.
func LoadWire(r io.Reader) (*Store, error) {
	recs, err := wire.Read(r)
	if err != nil {
		return nil, err
	}
	t, err := tree.Load(recs)
	if err != nil {
		return nil, err
	}
	return &Store{tree: t}, nil
}

// Get returns the value at the dotted key. ok is false when the entry is
// missing or is a dummy entry.
func (s *Store) Get(key string) (string, bool) {
	e, ok := s.tree.Resolve(key, false)
	if !ok {
		return "", false
	}
	return e.Value()
}

// Set stores value at the dotted key, creating any missing entries on
// the path as dummies. It never removes an entry.
func (s *Store) Set(key, value string) {
	e, _ := s.tree.Resolve(key, true)
	e.SetValue(value)
}

// Contains reports whether an entry exists at the dotted key, value or
// dummy.
func (s *Store) Contains(key string) bool {
	_, ok := s.tree.Resolve(key, false)
	return ok
}

// Path returns the file path the store was opened from, if any.
func (s *Store) Path() string {
	return s.path
}

// Tree returns the store's entry tree.
func (s *Store) Tree() *tree.Tree {
	return s.tree
}

// Records returns the store's entries as flat pre-order records.
func (s *Store) Records() []record.Record {
	return s.tree.Records()
}

// Save writes the text form to the path the store was opened from.
func (s *Store) Save() error {
	if s.path == "" {
		return ErrNoPath
	}
	return s.SaveAs(s.path)
}

// SaveAs writes the text form to the given path, creating the file if
// needed.
func (s *Store) SaveAs(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if err := encode.Encode(s.tree, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SaveWire writes the wire form to w.
func (s *Store) SaveWire(w io.Writer) error {
	return wire.Write(w, s.tree.Records())
}

// String returns the text form, exactly what Save writes.
func (s *Store) String() string {
	return encode.MustString(s.tree)
}
