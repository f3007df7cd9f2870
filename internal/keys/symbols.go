package keys

import "lazyhf/internal/patch"

// KeySymbols are the glyphs shown in hints for keys that have no printable
// form of their own.
type KeySymbols struct {
	Enter     string `json:"enter" toml:"enter" yaml:"enter"`
	Left      string `json:"left" toml:"left" yaml:"left"`
	Right     string `json:"right" toml:"right" yaml:"right"`
	Up        string `json:"up" toml:"up" yaml:"up"`
	Down      string `json:"down" toml:"down" yaml:"down"`
	Backspace string `json:"backspace" toml:"backspace" yaml:"backspace"`
	Home      string `json:"home" toml:"home" yaml:"home"`
	End       string `json:"end" toml:"end" yaml:"end"`
	PageUp    string `json:"page_up" toml:"page_up" yaml:"page_up"`
	PageDown  string `json:"page_down" toml:"page_down" yaml:"page_down"`
	Tab       string `json:"tab" toml:"tab" yaml:"tab"`
	BackTab   string `json:"back_tab" toml:"back_tab" yaml:"back_tab"`
	Delete    string `json:"delete" toml:"delete" yaml:"delete"`
	Insert    string `json:"insert" toml:"insert" yaml:"insert"`
	Esc       string `json:"esc" toml:"esc" yaml:"esc"`
	Control   string `json:"control" toml:"control" yaml:"control"`
	Shift     string `json:"shift" toml:"shift" yaml:"shift"`
	Alt       string `json:"alt" toml:"alt" yaml:"alt"`
}

// DefaultKeySymbols returns the compiled-in symbols.
func DefaultKeySymbols() KeySymbols {
	return KeySymbols{
		Enter:     "\u23ce", // ⏎
		Left:      "\u2190", // ←
		Right:     "\u2192", // →
		Up:        "\u2191", // ↑
		Down:      "\u2193", // ↓
		Backspace: "\u232b", // ⌫
		Home:      "\u2912", // ⤒
		End:       "\u2913", // ⤓
		PageUp:    "\u21de", // ⇞
		PageDown:  "\u21df", // ⇟
		Tab:       "\u21e5", // ⇥
		BackTab:   "\u21e4", // ⇤
		Delete:    "\u2326", // ⌦
		Insert:    "\u2380", // ⎀
		Esc:       "\u238b", // ⎋
		Control:   "^",
		Shift:     "\u21e7", // ⇧
		Alt:       "\u2325", // ⌥
	}
}

// SymbolsPatch is the sparse form of KeySymbols stored in key_symbols.toml.
type SymbolsPatch struct {
	Enter     *string `toml:"enter,omitempty"`
	Left      *string `toml:"left,omitempty"`
	Right     *string `toml:"right,omitempty"`
	Up        *string `toml:"up,omitempty"`
	Down      *string `toml:"down,omitempty"`
	Backspace *string `toml:"backspace,omitempty"`
	Home      *string `toml:"home,omitempty"`
	End       *string `toml:"end,omitempty"`
	PageUp    *string `toml:"page_up,omitempty"`
	PageDown  *string `toml:"page_down,omitempty"`
	Tab       *string `toml:"tab,omitempty"`
	BackTab   *string `toml:"back_tab,omitempty"`
	Delete    *string `toml:"delete,omitempty"`
	Insert    *string `toml:"insert,omitempty"`
	Esc       *string `toml:"esc,omitempty"`
	Control   *string `toml:"control,omitempty"`
	Shift     *string `toml:"shift,omitempty"`
	Alt       *string `toml:"alt,omitempty"`
}

func DiffSymbols(value, base KeySymbols) SymbolsPatch {
	var p SymbolsPatch
	patch.DiffField(&p.Enter, value.Enter, base.Enter)
	patch.DiffField(&p.Left, value.Left, base.Left)
	patch.DiffField(&p.Right, value.Right, base.Right)
	patch.DiffField(&p.Up, value.Up, base.Up)
	patch.DiffField(&p.Down, value.Down, base.Down)
	patch.DiffField(&p.Backspace, value.Backspace, base.Backspace)
	patch.DiffField(&p.Home, value.Home, base.Home)
	patch.DiffField(&p.End, value.End, base.End)
	patch.DiffField(&p.PageUp, value.PageUp, base.PageUp)
	patch.DiffField(&p.PageDown, value.PageDown, base.PageDown)
	patch.DiffField(&p.Tab, value.Tab, base.Tab)
	patch.DiffField(&p.BackTab, value.BackTab, base.BackTab)
	patch.DiffField(&p.Delete, value.Delete, base.Delete)
	patch.DiffField(&p.Insert, value.Insert, base.Insert)
	patch.DiffField(&p.Esc, value.Esc, base.Esc)
	patch.DiffField(&p.Control, value.Control, base.Control)
	patch.DiffField(&p.Shift, value.Shift, base.Shift)
	patch.DiffField(&p.Alt, value.Alt, base.Alt)
	return p
}

func (p SymbolsPatch) Apply(base KeySymbols) KeySymbols {
	patch.ApplyField(&base.Enter, p.Enter)
	patch.ApplyField(&base.Left, p.Left)
	patch.ApplyField(&base.Right, p.Right)
	patch.ApplyField(&base.Up, p.Up)
	patch.ApplyField(&base.Down, p.Down)
	patch.ApplyField(&base.Backspace, p.Backspace)
	patch.ApplyField(&base.Home, p.Home)
	patch.ApplyField(&base.End, p.End)
	patch.ApplyField(&base.PageUp, p.PageUp)
	patch.ApplyField(&base.PageDown, p.PageDown)
	patch.ApplyField(&base.Tab, p.Tab)
	patch.ApplyField(&base.BackTab, p.BackTab)
	patch.ApplyField(&base.Delete, p.Delete)
	patch.ApplyField(&base.Insert, p.Insert)
	patch.ApplyField(&base.Esc, p.Esc)
	patch.ApplyField(&base.Control, p.Control)
	patch.ApplyField(&base.Shift, p.Shift)
	patch.ApplyField(&base.Alt, p.Alt)
	return base
}

func (p SymbolsPatch) IsEmpty() bool {
	return p == SymbolsPatch{}
}

// SymbolsKind is the patch descriptor for key_symbols files.
var SymbolsKind = patch.Kind[KeySymbols, SymbolsPatch]{
	Name:    "key_symbols",
	Default: DefaultKeySymbols,
	Diff:    DiffSymbols,
}
