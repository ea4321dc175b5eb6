package parse

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tabkv/go-tabkv/debug"
	"github.com/tabkv/go-tabkv/format"
	"github.com/tabkv/go-tabkv/record"
	"github.com/tabkv/go-tabkv/token"
)

// errValueAbsent signals that the value form failed because the line
// ended where the separator would begin. It is the only failure that
// triggers a retry with the no-value form; every other error aborts the
// parse.
var errValueAbsent = errors.New("entry has no value part")

// maxLine caps the length of a single input line. The grammar puts no
// bound on value length, so the cap is well above any plausible line
// rather than the bufio.Scanner default.
const maxLine = 16 * 1024 * 1024

// Parse reads tabkv text from r and returns its records in document
// order. The first syntax error aborts the parse; no records are
// returned alongside an error.
func Parse(r io.Reader, opts ...Option) ([]record.Record, error) {
	pOpts := newParseOpts(opts)
	p := &parser{opts: pOpts}
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, maxLine)
	for sc.Scan() {
		p.line++
		if err := p.parseLine(sc.Text()); err != nil {
			return nil, pOpts.wrap(err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, pOpts.wrap(fmt.Errorf("reading line %d: %w", p.line+1, err))
	}
	if debug.Parse() {
		debug.Logf("parse: %d lines, %d records\n", p.line, len(p.recs))
	}
	return p.recs, nil
}

// ParseBytes parses tabkv text from a byte slice.
func ParseBytes(d []byte, opts ...Option) ([]record.Record, error) {
	return Parse(bytes.NewReader(d), opts...)
}

// ParseString parses tabkv text from a string.
func ParseString(s string, opts ...Option) ([]record.Record, error) {
	return Parse(strings.NewReader(s), opts...)
}

type parser struct {
	opts *parseOpts
	line int

	// comments buffered for the next record. The buffer survives blank
	// lines and is cleared only after a record is successfully
	// attached.
	comments []string

	recs []record.Record
}

// entryAcc accumulates one entry while the grammar rules consume its
// line.
type entryAcc struct {
	depth int
	key   strings.Builder
	value strings.Builder
}

func (p *parser) parseLine(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if text[0] == format.CommentPrefix {
		p.comments = append(p.comments, text[1:])
		return nil
	}
	rec, err := p.entry(text)
	if err != nil {
		return err
	}
	rec.Line = p.line
	if p.opts.comments {
		rec.Comments = p.comments
	}
	p.comments = nil
	p.recs = append(p.recs, *rec)
	return nil
}

// entry parses one non-blank, non-comment line. The value form is tried
// first; if it fails exactly because the line ends where the separator
// would begin, the same line is retried from a fresh cursor as the
// no-value form.
func (p *parser) entry(text string) (*record.Record, error) {
	ln := token.NewLine(text)
	acc := &entryAcc{}
	err := p.valueEntry(ln, acc)
	if err == nil {
		v := acc.value.String()
		return &record.Record{Depth: acc.depth, Key: acc.key.String(), Value: &v}, nil
	}
	if !errors.Is(err, errValueAbsent) {
		return nil, err
	}
	ln = token.NewLine(text)
	acc = &entryAcc{}
	if err := p.noValueEntry(ln, acc); err != nil {
		return nil, err
	}
	return &record.Record{Depth: acc.depth, Key: acc.key.String()}, nil
}

// valueEntry := leading_tabs key ws "=" ws value ws EOL
func (p *parser) valueEntry(ln *token.Line, acc *entryAcc) error {
	if err := p.entryStart(ln, acc); err != nil {
		return err
	}
	anyWhitespace(ln)
	if err := p.separator(ln); err != nil {
		return err
	}
	anyWhitespace(ln)
	if err := p.value(ln, acc); err != nil {
		return err
	}
	anyWhitespace(ln)
	return p.lineEnd(ln)
}

// noValueEntry := leading_tabs key ws EOL
func (p *parser) noValueEntry(ln *token.Line, acc *entryAcc) error {
	if err := p.entryStart(ln, acc); err != nil {
		return err
	}
	anyWhitespace(ln)
	return p.lineEnd(ln)
}

func (p *parser) entryStart(ln *token.Line, acc *entryAcc) error {
	leadingTabs(ln, acc)
	return p.key(ln, acc)
}

// leadingTabs consumes any number of leading tabs; their count is the
// entry's depth. Leading spaces are not depth and fall through to the
// key enclosure check, which rejects them.
func leadingTabs(ln *token.Line, acc *entryAcc) {
	for {
		c, ok := ln.Peek()
		if !ok || c != format.Tab {
			return
		}
		ln.Pop()
		acc.depth++
	}
}

// key := '"' key_body '"' where key_body is non-empty and free of the
// path separator.
func (p *parser) key(ln *token.Line, acc *entryAcc) error {
	if err := p.enclosure(ln); err != nil {
		return err
	}
	if err := p.keyBody(ln, acc); err != nil {
		return err
	}
	return p.enclosure(ln)
}

// enclosure consumes a single quote character. It is shared by keys and
// values; hitting end of line here is an enclosure error, never a retry
// trigger.
func (p *parser) enclosure(ln *token.Line) error {
	c, ok := ln.Peek()
	if !ok || c != format.KeyValuePerimeter {
		return p.syntaxErr(token.ErrKeyEnclosure, ln)
	}
	ln.Pop()
	return nil
}

func (p *parser) keyBody(ln *token.Line, acc *entryAcc) error {
	for {
		c, ok := ln.Peek()
		if !ok {
			// Unterminated key; report the missing closing quote.
			return p.syntaxErr(token.ErrKeyEnclosure, ln)
		}
		if c == format.KeyValuePerimeter {
			break
		}
		if c == format.PathSeparator {
			return p.syntaxErr(token.ErrKeyCharacter, ln)
		}
		ln.Pop()
		acc.key.WriteByte(c)
	}
	if acc.key.Len() == 0 {
		return p.syntaxErr(token.ErrEmptyKey, ln)
	}
	return nil
}

// separator consumes the key/value separator. End of line here means the
// entry has no value part and the no-value form should be tried instead.
func (p *parser) separator(ln *token.Line) error {
	c, ok := ln.Peek()
	if !ok {
		return errValueAbsent
	}
	if c != format.KeyValueSeparator {
		return p.syntaxErr(token.ErrSeparator, ln)
	}
	ln.Pop()
	return nil
}

// value := '"' any_string '"'
func (p *parser) value(ln *token.Line, acc *entryAcc) error {
	if err := p.enclosure(ln); err != nil {
		return err
	}
	for {
		c, ok := ln.Peek()
		if !ok {
			return p.syntaxErr(token.ErrKeyEnclosure, ln)
		}
		if c == format.KeyValuePerimeter {
			break
		}
		ln.Pop()
		acc.value.WriteByte(c)
	}
	return p.enclosure(ln)
}

func (p *parser) lineEnd(ln *token.Line) error {
	if !ln.Empty() {
		return p.syntaxErr(token.ErrTrailingCharacter, ln)
	}
	return nil
}

func anyWhitespace(ln *token.Line) {
	for {
		c, ok := ln.Peek()
		if !ok || (c != ' ' && c != format.Tab) {
			return
		}
		ln.Pop()
	}
}

func (p *parser) syntaxErr(kind error, ln *token.Line) error {
	return token.NewSyntaxError(kind, ln.Pos(p.line))
}
