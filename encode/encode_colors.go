package encode

import "github.com/fatih/color"

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	KeyColor
	SepColor
	ValueColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[CommentColor] = color.BlueString
	colors.Map[KeyColor] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[SepColor] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[ValueColor] = color.RGB(8, 196, 16).SprintfFunc()
	return colors
}

func colorDefault(msg string, args ...any) string {
	return color.WhiteString(msg, args...)
}
