package keys

import tea "github.com/charmbracelet/bubbletea"

var teaKeys = map[tea.KeyType]KeyEvent{
	tea.KeySpace:          Char(' '),
	tea.KeyEnter:          Key(CodeEnter),
	tea.KeyTab:            Key(CodeTab),
	tea.KeyShiftTab:       Key(CodeBackTab).With(Shift),
	tea.KeyEsc:            Key(CodeEsc),
	tea.KeyBackspace:      Key(CodeBackspace),
	tea.KeyUp:             Key(CodeUp),
	tea.KeyDown:           Key(CodeDown),
	tea.KeyLeft:           Key(CodeLeft),
	tea.KeyRight:          Key(CodeRight),
	tea.KeyHome:           Key(CodeHome),
	tea.KeyEnd:            Key(CodeEnd),
	tea.KeyPgUp:           Key(CodePageUp),
	tea.KeyPgDown:         Key(CodePageDown),
	tea.KeyDelete:         Key(CodeDelete),
	tea.KeyInsert:         Key(CodeInsert),
	tea.KeyShiftUp:        Key(CodeUp).With(Shift),
	tea.KeyShiftDown:      Key(CodeDown).With(Shift),
	tea.KeyShiftLeft:      Key(CodeLeft).With(Shift),
	tea.KeyShiftRight:     Key(CodeRight).With(Shift),
	tea.KeyShiftHome:      Key(CodeHome).With(Shift),
	tea.KeyShiftEnd:       Key(CodeEnd).With(Shift),
	tea.KeyCtrlUp:         Key(CodeUp).With(Control),
	tea.KeyCtrlDown:       Key(CodeDown).With(Control),
	tea.KeyCtrlLeft:       Key(CodeLeft).With(Control),
	tea.KeyCtrlRight:      Key(CodeRight).With(Control),
	tea.KeyCtrlHome:       Key(CodeHome).With(Control),
	tea.KeyCtrlEnd:        Key(CodeEnd).With(Control),
	tea.KeyCtrlPgUp:       Key(CodePageUp).With(Control),
	tea.KeyCtrlPgDown:     Key(CodePageDown).With(Control),
	tea.KeyCtrlShiftUp:    Key(CodeUp).With(Control | Shift),
	tea.KeyCtrlShiftDown:  Key(CodeDown).With(Control | Shift),
	tea.KeyCtrlShiftLeft:  Key(CodeLeft).With(Control | Shift),
	tea.KeyCtrlShiftRight: Key(CodeRight).With(Control | Shift),
	tea.KeyNull:           Key(CodeNull).With(Control),
	tea.KeyF1:             F(1),
	tea.KeyF2:             F(2),
	tea.KeyF3:             F(3),
	tea.KeyF4:             F(4),
	tea.KeyF5:             F(5),
	tea.KeyF6:             F(6),
	tea.KeyF7:             F(7),
	tea.KeyF8:             F(8),
	tea.KeyF9:             F(9),
	tea.KeyF10:            F(10),
	tea.KeyF11:            F(11),
	tea.KeyF12:            F(12),
}

// FromTea converts a bubbletea key message. Pasted text and keys without a
// counterpart convert to an unmodified CodeNull event.
func FromTea(msg tea.KeyMsg) KeyEvent {
	var mods Modifiers
	if msg.Alt {
		mods |= Alt
	}
	if msg.Type == tea.KeyRunes {
		if msg.Paste || len(msg.Runes) != 1 {
			return KeyEvent{}
		}
		return Char(msg.Runes[0]).With(mods)
	}
	if ev, ok := teaKeys[msg.Type]; ok {
		return ev.With(mods)
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		return Char(rune('a' + int(msg.Type-tea.KeyCtrlA))).With(Control | mods)
	}
	return KeyEvent{}
}
