package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color is a terminal color as written in theme files: a color name
// ("blue", "lightmagenta", "reset"), an ANSI-256 index ("240") or a hex
// triplet ("#9d87ae").
type Color string

const (
	Reset        Color = "reset"
	Black        Color = "black"
	Red          Color = "red"
	Green        Color = "green"
	Yellow       Color = "yellow"
	Blue         Color = "blue"
	Magenta      Color = "magenta"
	Cyan         Color = "cyan"
	Gray         Color = "gray"
	DarkGray     Color = "darkgray"
	LightRed     Color = "lightred"
	LightGreen   Color = "lightgreen"
	LightYellow  Color = "lightyellow"
	LightBlue    Color = "lightblue"
	LightMagenta Color = "lightmagenta"
	LightCyan    Color = "lightcyan"
	White        Color = "white"
)

var ansiByName = map[Color]string{
	Black:        "0",
	Red:          "1",
	Green:        "2",
	Yellow:       "3",
	Blue:         "4",
	Magenta:      "5",
	Cyan:         "6",
	Gray:         "7",
	DarkGray:     "8",
	LightRed:     "9",
	LightGreen:   "10",
	LightYellow:  "11",
	LightBlue:    "12",
	LightMagenta: "13",
	LightCyan:    "14",
	White:        "15",
}

func (c Color) normalized() Color {
	return Color(strings.ToLower(strings.TrimSpace(string(c))))
}

// IsReset reports whether c leaves the terminal's own color in place.
func (c Color) IsReset() bool {
	n := c.normalized()
	return n == "" || n == Reset
}

// Code returns the lipgloss color string for c: an ANSI index for named
// colors, the value itself otherwise, and "" for reset.
func (c Color) Code() string {
	if c.IsReset() {
		return ""
	}
	if code, ok := ansiByName[c.normalized()]; ok {
		return code
	}
	return strings.TrimSpace(string(c))
}

// Terminal converts c for lipgloss. Unrecognized values are handed to
// lipgloss untouched.
func (c Color) Terminal() lipgloss.TerminalColor {
	code := c.Code()
	if code == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(code)
}
