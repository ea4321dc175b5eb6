// Package encode renders an entry tree in the text form of the format.
package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/tabkv/go-tabkv/format"
	"github.com/tabkv/go-tabkv/tree"
)

type EncState struct {
	colors *Colors
}

func (es *EncState) color(attr ColorAttr, s string) string {
	if es.colors == nil {
		return s
	}
	f, ok := es.colors.Map[attr]
	if !ok {
		return es.colors.Default("%s", s)
	}
	return f("%s", s)
}

// Encode writes the tree in text form: comments, tab depth, quoted key,
// and the separator and quoted value only when a value is present.
// Parsing the output reproduces the tree.
func Encode(t *tree.Tree, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	for _, c := range t.Root().Children() {
		if err := encodeEntry(c, w, 0, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeEntry(e tree.Ref, w io.Writer, depth int, es *EncState) error {
	for _, c := range e.Comments() {
		line := string(format.CommentPrefix) + c
		if err := writeString(w, es.color(CommentColor, line)+"\n"); err != nil {
			return err
		}
	}
	var sb strings.Builder
	sb.WriteString(strings.Repeat(string(format.Tab), depth))
	sb.WriteString(es.color(KeyColor, quote(e.LocalKey())))
	if v, ok := e.Value(); ok {
		sb.WriteString(es.color(SepColor, string(format.KeyValueSeparator)))
		sb.WriteString(es.color(ValueColor, quote(v)))
	}
	sb.WriteByte('\n')
	if err := writeString(w, sb.String()); err != nil {
		return err
	}
	for _, c := range e.Children() {
		if err := encodeEntry(c, w, depth+1, es); err != nil {
			return err
		}
	}
	return nil
}

func quote(s string) string {
	return fmt.Sprintf("%c%s%c", format.KeyValuePerimeter, s, format.KeyValuePerimeter)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
