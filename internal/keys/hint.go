package keys

import "strconv"

// SpaceSymbol stands in for the space bar in hints.
const SpaceSymbol = "\u02fd" // ˽

var symbolFor = map[Code]func(KeySymbols) string{
	CodeEnter:     func(s KeySymbols) string { return s.Enter },
	CodeLeft:      func(s KeySymbols) string { return s.Left },
	CodeRight:     func(s KeySymbols) string { return s.Right },
	CodeUp:        func(s KeySymbols) string { return s.Up },
	CodeDown:      func(s KeySymbols) string { return s.Down },
	CodeBackspace: func(s KeySymbols) string { return s.Backspace },
	CodeHome:      func(s KeySymbols) string { return s.Home },
	CodeEnd:       func(s KeySymbols) string { return s.End },
	CodePageUp:    func(s KeySymbols) string { return s.PageUp },
	CodePageDown:  func(s KeySymbols) string { return s.PageDown },
	CodeTab:       func(s KeySymbols) string { return s.Tab },
	CodeBackTab:   func(s KeySymbols) string { return s.BackTab },
	CodeDelete:    func(s KeySymbols) string { return s.Delete },
	CodeInsert:    func(s KeySymbols) string { return s.Insert },
	CodeEsc:       func(s KeySymbols) string { return s.Esc },
}

// Hint renders ev for display. At most one modifier glyph is shown, and only
// when exactly one modifier is held. The space bar always renders as
// SpaceSymbol. Keys without a display form render as the empty string.
func Hint(ev KeyEvent, symbols KeySymbols) string {
	prefix := modifierHint(ev.Mods, symbols)
	switch ev.Code {
	case CodeNull:
		return prefix
	case CodeChar:
		if ev.Rune == ' ' {
			return SpaceSymbol
		}
		return prefix + string(ev.Rune)
	case CodeF:
		return prefix + "F" + strconv.Itoa(int(ev.Num))
	}
	if symbol, ok := symbolFor[ev.Code]; ok {
		return prefix + symbol(symbols)
	}
	return ""
}

func modifierHint(mods Modifiers, symbols KeySymbols) string {
	switch mods {
	case Control:
		return symbols.Control
	case Shift:
		return symbols.Shift
	case Alt:
		return symbols.Alt
	default:
		return ""
	}
}
