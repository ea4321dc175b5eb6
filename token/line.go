// Package token provides the per-line character cursor and the positioned
// syntax errors used by the text grammar parser.
package token

// Line is a FIFO cursor over the characters of one source line. The
// grammar rules of the parser consume it left to right; a rule that fails
// leaves the cursor where the failure was found, which is how error
// columns are computed.
type Line struct {
	src string
	pos int
}

func NewLine(s string) *Line {
	return &Line{src: s}
}

// Peek returns the next character without consuming it. ok is false at
// end of line.
func (l *Line) Peek() (byte, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

// Pop consumes and returns the next character. ok is false at end of
// line.
func (l *Line) Pop() (byte, bool) {
	c, ok := l.Peek()
	if ok {
		l.pos++
	}
	return c, ok
}

// Remaining returns the number of unconsumed characters.
func (l *Line) Remaining() int {
	return len(l.src) - l.pos
}

// Empty reports whether the whole line has been consumed.
func (l *Line) Empty() bool {
	return l.pos >= len(l.src)
}

// Col returns the 1-based column of the character under inspection,
// computed as line length minus remaining plus one.
func (l *Line) Col() int {
	return len(l.src) - l.Remaining() + 1
}

// Pos returns the position of the character under inspection on source
// line ln.
func (l *Line) Pos(ln int) Pos {
	c, _ := l.Peek()
	return Pos{Line: ln, Col: l.Col(), Char: c}
}
