// Package keys models key events, the configurable key bindings and key
// display symbols, and renders key events as short hints for command bars.
package keys

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Code is the category of a key.
type Code uint8

const (
	CodeNull Code = iota
	CodeChar
	CodeF
	CodeEnter
	CodeLeft
	CodeRight
	CodeUp
	CodeDown
	CodeBackspace
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodeTab
	CodeBackTab
	CodeDelete
	CodeInsert
	CodeEsc
	CodeCapsLock
	CodeScrollLock
	CodeNumLock
	CodePrintScreen
	CodePause
	CodeMenu
	CodeKeypadBegin
)

var codeNames = map[Code]string{
	CodeNull:        "none",
	CodeEnter:       "enter",
	CodeLeft:        "left",
	CodeRight:       "right",
	CodeUp:          "up",
	CodeDown:        "down",
	CodeBackspace:   "backspace",
	CodeHome:        "home",
	CodeEnd:         "end",
	CodePageUp:      "pageup",
	CodePageDown:    "pagedown",
	CodeTab:         "tab",
	CodeBackTab:     "backtab",
	CodeDelete:      "delete",
	CodeInsert:      "insert",
	CodeEsc:         "esc",
	CodeCapsLock:    "capslock",
	CodeScrollLock:  "scrolllock",
	CodeNumLock:     "numlock",
	CodePrintScreen: "printscreen",
	CodePause:       "pause",
	CodeMenu:        "menu",
	CodeKeypadBegin: "begin",
}

var codeAliases = map[string]Code{
	"null":   CodeNull,
	"return": CodeEnter,
	"bs":     CodeBackspace,
	"pgup":   CodePageUp,
	"pgdown": CodePageDown,
	"pgdn":   CodePageDown,
	"del":    CodeDelete,
	"ins":    CodeInsert,
	"escape": CodeEsc,
}

func (c Code) String() string {
	switch c {
	case CodeChar:
		return "char"
	case CodeF:
		return "f"
	}
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("code(%d)", uint8(c))
}

// Modifiers is a set of modifier keys.
type Modifiers uint8

const (
	Shift Modifiers = 1 << iota
	Control
	Alt

	NoModifiers Modifiers = 0
)

var modifierNames = []struct {
	mod   Modifiers
	names []string
}{
	{Control, []string{"ctrl", "control", "c"}},
	{Shift, []string{"shift", "s"}},
	{Alt, []string{"alt", "meta", "a", "m"}},
}

// Has reports whether every modifier in m2 is set in m.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

func (m Modifiers) String() string {
	if m == NoModifiers {
		return "none"
	}
	parts := make([]string, 0, 3)
	for _, entry := range modifierNames {
		if m.Has(entry.mod) {
			parts = append(parts, entry.names[0])
		}
	}
	return strings.Join(parts, "+")
}

// KeyEvent is a key together with the modifiers held while it was pressed.
// Rune is set for CodeChar and Num for CodeF.
type KeyEvent struct {
	Code Code
	Rune rune
	Num  uint8
	Mods Modifiers
}

// Key returns an unmodified event for a non-character key.
func Key(code Code) KeyEvent {
	return KeyEvent{Code: code}
}

// Char returns the event for a printable character. An upper-case letter
// carries Shift, matching what terminals report.
func Char(r rune) KeyEvent {
	return KeyEvent{Code: CodeChar, Rune: r}.Normalize()
}

// F returns the event for function key n.
func F(n int) KeyEvent {
	return KeyEvent{Code: CodeF, Num: uint8(n)}
}

// With returns a copy of e with mods added.
func (e KeyEvent) With(mods Modifiers) KeyEvent {
	e.Mods |= mods
	return e.Normalize()
}

// Normalize folds the implied Shift of upper-case characters into Mods and
// upper-cases a shifted letter, so "B", "shift+B" and "shift+b" are one event.
func (e KeyEvent) Normalize() KeyEvent {
	if e.Code != CodeChar {
		return e
	}
	if unicode.IsUpper(e.Rune) {
		e.Mods |= Shift
	} else if e.Mods.Has(Shift) && unicode.IsLower(e.Rune) {
		e.Rune = unicode.ToUpper(e.Rune)
	}
	return e
}

// String renders e in its text form, e.g. "ctrl+c", "shift+B", "alt+left",
// "f5" or "space".
func (e KeyEvent) String() string {
	var b strings.Builder
	if e.Mods != NoModifiers {
		b.WriteString(e.Mods.String())
		b.WriteByte('+')
	}
	b.WriteString(e.keyName())
	return b.String()
}

func (e KeyEvent) keyName() string {
	switch e.Code {
	case CodeChar:
		if e.Rune == ' ' {
			return "space"
		}
		return string(e.Rune)
	case CodeF:
		return "f" + strconv.Itoa(int(e.Num))
	default:
		return e.Code.String()
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e KeyEvent) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *KeyEvent) UnmarshalText(text []byte) error {
	ev, err := ParseKeyEvent(string(text))
	if err != nil {
		return err
	}
	*e = ev
	return nil
}

// ParseKeyEvent parses the text form of a key event. Modifier and key names
// are case-insensitive; a single character is taken literally. "+" on its
// own, or as the last element ("ctrl++"), is the plus key.
func ParseKeyEvent(raw string) (KeyEvent, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return KeyEvent{}, fmt.Errorf("empty key")
	}
	var modPart, keyPart string
	switch {
	case text == "+":
		keyPart = "+"
	case strings.HasSuffix(text, "++"):
		modPart, keyPart = text[:len(text)-2], "+"
	default:
		if i := strings.LastIndex(text, "+"); i >= 0 {
			modPart, keyPart = text[:i], text[i+1:]
		} else {
			keyPart = text
		}
	}
	mods, err := parseModifiers(modPart)
	if err != nil {
		return KeyEvent{}, fmt.Errorf("key %q: %w", raw, err)
	}
	ev, err := parseKeyName(keyPart)
	if err != nil {
		return KeyEvent{}, fmt.Errorf("key %q: %w", raw, err)
	}
	return ev.With(mods), nil
}

func parseModifiers(text string) (Modifiers, error) {
	var mods Modifiers
	if text == "" {
		return mods, nil
	}
	for _, part := range strings.Split(text, "+") {
		name := strings.ToLower(strings.TrimSpace(part))
		found := false
		for _, entry := range modifierNames {
			for _, candidate := range entry.names {
				if name == candidate {
					mods |= entry.mod
					found = true
				}
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown modifier %q", part)
		}
	}
	return mods, nil
}

func parseKeyName(text string) (KeyEvent, error) {
	if text == "" {
		return KeyEvent{}, fmt.Errorf("missing key name")
	}
	if runes := []rune(text); len(runes) == 1 {
		return Char(runes[0]), nil
	}
	name := strings.ToLower(text)
	if name == "space" {
		return Char(' '), nil
	}
	if code, ok := codeAliases[name]; ok {
		return Key(code), nil
	}
	for code, candidate := range codeNames {
		if candidate == name {
			return Key(code), nil
		}
	}
	if strings.HasPrefix(name, "f") {
		if n, err := strconv.Atoi(name[1:]); err == nil && n >= 1 && n <= 24 {
			return F(n), nil
		}
	}
	return KeyEvent{}, fmt.Errorf("unknown key %q", text)
}
