package keys

import (
	"fmt"
	"strings"

	"lazyhf/internal/patch"
)

// KeysList is the full set of configurable key bindings.
type KeysList struct {
	TabStatus        KeyEvent `json:"tab_status" toml:"tab_status" yaml:"tab_status"`
	TabLog           KeyEvent `json:"tab_log" toml:"tab_log" yaml:"tab_log"`
	TabFiles         KeyEvent `json:"tab_files" toml:"tab_files" yaml:"tab_files"`
	TabToggle        KeyEvent `json:"tab_toggle" toml:"tab_toggle" yaml:"tab_toggle"`
	TabToggleReverse KeyEvent `json:"tab_toggle_reverse" toml:"tab_toggle_reverse" yaml:"tab_toggle_reverse"`
	ToggleWorkarea   KeyEvent `json:"toggle_workarea" toml:"toggle_workarea" yaml:"toggle_workarea"`
	Exit             KeyEvent `json:"exit" toml:"exit" yaml:"exit"`
	Quit             KeyEvent `json:"quit" toml:"quit" yaml:"quit"`
	ExitPopup        KeyEvent `json:"exit_popup" toml:"exit_popup" yaml:"exit_popup"`
	OpenHelp         KeyEvent `json:"open_help" toml:"open_help" yaml:"open_help"`
	OpenOptions      KeyEvent `json:"open_options" toml:"open_options" yaml:"open_options"`
	MoveLeft         KeyEvent `json:"move_left" toml:"move_left" yaml:"move_left"`
	MoveRight        KeyEvent `json:"move_right" toml:"move_right" yaml:"move_right"`
	MoveUp           KeyEvent `json:"move_up" toml:"move_up" yaml:"move_up"`
	MoveDown         KeyEvent `json:"move_down" toml:"move_down" yaml:"move_down"`
	PopupUp          KeyEvent `json:"popup_up" toml:"popup_up" yaml:"popup_up"`
	PopupDown        KeyEvent `json:"popup_down" toml:"popup_down" yaml:"popup_down"`
	PageUp           KeyEvent `json:"page_up" toml:"page_up" yaml:"page_up"`
	PageDown         KeyEvent `json:"page_down" toml:"page_down" yaml:"page_down"`
	Home             KeyEvent `json:"home" toml:"home" yaml:"home"`
	End              KeyEvent `json:"end" toml:"end" yaml:"end"`
	ShiftUp          KeyEvent `json:"shift_up" toml:"shift_up" yaml:"shift_up"`
	ShiftDown        KeyEvent `json:"shift_down" toml:"shift_down" yaml:"shift_down"`
	Enter            KeyEvent `json:"enter" toml:"enter" yaml:"enter"`
	Blame            KeyEvent `json:"blame" toml:"blame" yaml:"blame"`
	FileHistory      KeyEvent `json:"file_history" toml:"file_history" yaml:"file_history"`
	EditFile         KeyEvent `json:"edit_file" toml:"edit_file" yaml:"edit_file"`
	Copy             KeyEvent `json:"copy" toml:"copy" yaml:"copy"`
	CmdBarToggle     KeyEvent `json:"cmd_bar_toggle" toml:"cmd_bar_toggle" yaml:"cmd_bar_toggle"`
	LogTagCommit     KeyEvent `json:"log_tag_commit" toml:"log_tag_commit" yaml:"log_tag_commit"`
	LogFind          KeyEvent `json:"log_find" toml:"log_find" yaml:"log_find"`
	FindCommitSha    KeyEvent `json:"find_commit_sha" toml:"find_commit_sha" yaml:"find_commit_sha"`
}

// DefaultKeysList returns the compiled-in bindings.
func DefaultKeysList() KeysList {
	return KeysList{
		TabStatus:        Char('1'),
		TabLog:           Char('2'),
		TabFiles:         Char('3'),
		TabToggle:        Key(CodeTab),
		TabToggleReverse: Key(CodeBackTab).With(Shift),
		ToggleWorkarea:   Char('w'),
		Exit:             Char('c').With(Control),
		Quit:             Char('q'),
		ExitPopup:        Key(CodeEsc),
		OpenHelp:         Char('?'),
		OpenOptions:      Char('o'),
		MoveLeft:         Key(CodeLeft),
		MoveRight:        Key(CodeRight),
		MoveUp:           Key(CodeUp),
		MoveDown:         Key(CodeDown),
		PopupUp:          Char('p').With(Control),
		PopupDown:        Char('n').With(Control),
		PageUp:           Key(CodePageUp),
		PageDown:         Key(CodePageDown),
		Home:             Key(CodeHome),
		End:              Key(CodeEnd),
		ShiftUp:          Key(CodeUp).With(Shift),
		ShiftDown:        Key(CodeDown).With(Shift),
		Enter:            Key(CodeEnter),
		Blame:            Char('B'),
		FileHistory:      Char('H'),
		EditFile:         Char('e'),
		Copy:             Char('y'),
		CmdBarToggle:     Char('.'),
		LogTagCommit:     Char('t'),
		LogFind:          Char('f'),
		FindCommitSha:    Char('j').With(Control),
	}
}

// KeysPatch is the sparse form of KeysList stored in key_bindings.toml.
type KeysPatch struct {
	TabStatus        *KeyEvent `toml:"tab_status,omitempty"`
	TabLog           *KeyEvent `toml:"tab_log,omitempty"`
	TabFiles         *KeyEvent `toml:"tab_files,omitempty"`
	TabToggle        *KeyEvent `toml:"tab_toggle,omitempty"`
	TabToggleReverse *KeyEvent `toml:"tab_toggle_reverse,omitempty"`
	ToggleWorkarea   *KeyEvent `toml:"toggle_workarea,omitempty"`
	Exit             *KeyEvent `toml:"exit,omitempty"`
	Quit             *KeyEvent `toml:"quit,omitempty"`
	ExitPopup        *KeyEvent `toml:"exit_popup,omitempty"`
	OpenHelp         *KeyEvent `toml:"open_help,omitempty"`
	OpenOptions      *KeyEvent `toml:"open_options,omitempty"`
	MoveLeft         *KeyEvent `toml:"move_left,omitempty"`
	MoveRight        *KeyEvent `toml:"move_right,omitempty"`
	MoveUp           *KeyEvent `toml:"move_up,omitempty"`
	MoveDown         *KeyEvent `toml:"move_down,omitempty"`
	PopupUp          *KeyEvent `toml:"popup_up,omitempty"`
	PopupDown        *KeyEvent `toml:"popup_down,omitempty"`
	PageUp           *KeyEvent `toml:"page_up,omitempty"`
	PageDown         *KeyEvent `toml:"page_down,omitempty"`
	Home             *KeyEvent `toml:"home,omitempty"`
	End              *KeyEvent `toml:"end,omitempty"`
	ShiftUp          *KeyEvent `toml:"shift_up,omitempty"`
	ShiftDown        *KeyEvent `toml:"shift_down,omitempty"`
	Enter            *KeyEvent `toml:"enter,omitempty"`
	Blame            *KeyEvent `toml:"blame,omitempty"`
	FileHistory      *KeyEvent `toml:"file_history,omitempty"`
	EditFile         *KeyEvent `toml:"edit_file,omitempty"`
	Copy             *KeyEvent `toml:"copy,omitempty"`
	CmdBarToggle     *KeyEvent `toml:"cmd_bar_toggle,omitempty"`
	LogTagCommit     *KeyEvent `toml:"log_tag_commit,omitempty"`
	LogFind          *KeyEvent `toml:"log_find,omitempty"`
	FindCommitSha    *KeyEvent `toml:"find_commit_sha,omitempty"`
}

func DiffKeys(value, base KeysList) KeysPatch {
	var p KeysPatch
	patch.DiffField(&p.TabStatus, value.TabStatus, base.TabStatus)
	patch.DiffField(&p.TabLog, value.TabLog, base.TabLog)
	patch.DiffField(&p.TabFiles, value.TabFiles, base.TabFiles)
	patch.DiffField(&p.TabToggle, value.TabToggle, base.TabToggle)
	patch.DiffField(&p.TabToggleReverse, value.TabToggleReverse, base.TabToggleReverse)
	patch.DiffField(&p.ToggleWorkarea, value.ToggleWorkarea, base.ToggleWorkarea)
	patch.DiffField(&p.Exit, value.Exit, base.Exit)
	patch.DiffField(&p.Quit, value.Quit, base.Quit)
	patch.DiffField(&p.ExitPopup, value.ExitPopup, base.ExitPopup)
	patch.DiffField(&p.OpenHelp, value.OpenHelp, base.OpenHelp)
	patch.DiffField(&p.OpenOptions, value.OpenOptions, base.OpenOptions)
	patch.DiffField(&p.MoveLeft, value.MoveLeft, base.MoveLeft)
	patch.DiffField(&p.MoveRight, value.MoveRight, base.MoveRight)
	patch.DiffField(&p.MoveUp, value.MoveUp, base.MoveUp)
	patch.DiffField(&p.MoveDown, value.MoveDown, base.MoveDown)
	patch.DiffField(&p.PopupUp, value.PopupUp, base.PopupUp)
	patch.DiffField(&p.PopupDown, value.PopupDown, base.PopupDown)
	patch.DiffField(&p.PageUp, value.PageUp, base.PageUp)
	patch.DiffField(&p.PageDown, value.PageDown, base.PageDown)
	patch.DiffField(&p.Home, value.Home, base.Home)
	patch.DiffField(&p.End, value.End, base.End)
	patch.DiffField(&p.ShiftUp, value.ShiftUp, base.ShiftUp)
	patch.DiffField(&p.ShiftDown, value.ShiftDown, base.ShiftDown)
	patch.DiffField(&p.Enter, value.Enter, base.Enter)
	patch.DiffField(&p.Blame, value.Blame, base.Blame)
	patch.DiffField(&p.FileHistory, value.FileHistory, base.FileHistory)
	patch.DiffField(&p.EditFile, value.EditFile, base.EditFile)
	patch.DiffField(&p.Copy, value.Copy, base.Copy)
	patch.DiffField(&p.CmdBarToggle, value.CmdBarToggle, base.CmdBarToggle)
	patch.DiffField(&p.LogTagCommit, value.LogTagCommit, base.LogTagCommit)
	patch.DiffField(&p.LogFind, value.LogFind, base.LogFind)
	patch.DiffField(&p.FindCommitSha, value.FindCommitSha, base.FindCommitSha)
	return p
}

func (p KeysPatch) Apply(base KeysList) KeysList {
	patch.ApplyField(&base.TabStatus, p.TabStatus)
	patch.ApplyField(&base.TabLog, p.TabLog)
	patch.ApplyField(&base.TabFiles, p.TabFiles)
	patch.ApplyField(&base.TabToggle, p.TabToggle)
	patch.ApplyField(&base.TabToggleReverse, p.TabToggleReverse)
	patch.ApplyField(&base.ToggleWorkarea, p.ToggleWorkarea)
	patch.ApplyField(&base.Exit, p.Exit)
	patch.ApplyField(&base.Quit, p.Quit)
	patch.ApplyField(&base.ExitPopup, p.ExitPopup)
	patch.ApplyField(&base.OpenHelp, p.OpenHelp)
	patch.ApplyField(&base.OpenOptions, p.OpenOptions)
	patch.ApplyField(&base.MoveLeft, p.MoveLeft)
	patch.ApplyField(&base.MoveRight, p.MoveRight)
	patch.ApplyField(&base.MoveUp, p.MoveUp)
	patch.ApplyField(&base.MoveDown, p.MoveDown)
	patch.ApplyField(&base.PopupUp, p.PopupUp)
	patch.ApplyField(&base.PopupDown, p.PopupDown)
	patch.ApplyField(&base.PageUp, p.PageUp)
	patch.ApplyField(&base.PageDown, p.PageDown)
	patch.ApplyField(&base.Home, p.Home)
	patch.ApplyField(&base.End, p.End)
	patch.ApplyField(&base.ShiftUp, p.ShiftUp)
	patch.ApplyField(&base.ShiftDown, p.ShiftDown)
	patch.ApplyField(&base.Enter, p.Enter)
	patch.ApplyField(&base.Blame, p.Blame)
	patch.ApplyField(&base.FileHistory, p.FileHistory)
	patch.ApplyField(&base.EditFile, p.EditFile)
	patch.ApplyField(&base.Copy, p.Copy)
	patch.ApplyField(&base.CmdBarToggle, p.CmdBarToggle)
	patch.ApplyField(&base.LogTagCommit, p.LogTagCommit)
	patch.ApplyField(&base.LogFind, p.LogFind)
	patch.ApplyField(&base.FindCommitSha, p.FindCommitSha)
	return base
}

func (p KeysPatch) IsEmpty() bool {
	return p == KeysPatch{}
}

// KeysKind is the patch descriptor for key_bindings files.
var KeysKind = patch.Kind[KeysList, KeysPatch]{
	Name:    "key_bindings",
	Default: DefaultKeysList,
	Diff:    DiffKeys,
}

// Slot is one named binding of a KeysList.
type Slot struct {
	Name  string
	Event KeyEvent
}

// Slots lists every binding in declaration order.
func (l KeysList) Slots() []Slot {
	return []Slot{
		{"tab_status", l.TabStatus},
		{"tab_log", l.TabLog},
		{"tab_files", l.TabFiles},
		{"tab_toggle", l.TabToggle},
		{"tab_toggle_reverse", l.TabToggleReverse},
		{"toggle_workarea", l.ToggleWorkarea},
		{"exit", l.Exit},
		{"quit", l.Quit},
		{"exit_popup", l.ExitPopup},
		{"open_help", l.OpenHelp},
		{"open_options", l.OpenOptions},
		{"move_left", l.MoveLeft},
		{"move_right", l.MoveRight},
		{"move_up", l.MoveUp},
		{"move_down", l.MoveDown},
		{"popup_up", l.PopupUp},
		{"popup_down", l.PopupDown},
		{"page_up", l.PageUp},
		{"page_down", l.PageDown},
		{"home", l.Home},
		{"end", l.End},
		{"shift_up", l.ShiftUp},
		{"shift_down", l.ShiftDown},
		{"enter", l.Enter},
		{"blame", l.Blame},
		{"file_history", l.FileHistory},
		{"edit_file", l.EditFile},
		{"copy", l.Copy},
		{"cmd_bar_toggle", l.CmdBarToggle},
		{"log_tag_commit", l.LogTagCommit},
		{"log_find", l.LogFind},
		{"find_commit_sha", l.FindCommitSha},
	}
}

// Lookup returns the binding stored under name.
func (l KeysList) Lookup(name string) (KeyEvent, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, slot := range l.Slots() {
		if slot.Name == name {
			return slot.Event, nil
		}
	}
	return KeyEvent{}, fmt.Errorf("unknown key binding %q", name)
}
