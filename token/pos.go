package token

import "fmt"

// Pos locates a character within a parsed document. Line and Col are
// 1-based. Char is the character under inspection when the position was
// taken; it is 0 when the position is the end of a line.
type Pos struct {
	Line int
	Col  int
	Char byte
}

func (p Pos) String() string {
	if p.Char == 0 {
		return fmt.Sprintf("line %d, col %d (end of line)", p.Line, p.Col)
	}
	return fmt.Sprintf("line %d, col %d (%q)", p.Line, p.Col, p.Char)
}
