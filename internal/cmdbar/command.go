// Package cmdbar lays out the quick-command bar shown at the bottom of the
// screen and renders it with the resolved theme and key hints.
package cmdbar

import (
	"lazyhf/internal/keys"
)

// CommandText is the user-facing text of a command.
type CommandText struct {
	Name     string
	Desc     string
	Group    string
	HideHelp bool
}

// CommandInfo is a command together with its current state.
type CommandInfo struct {
	Text      CommandText
	Enabled   bool
	Quick     bool
	Available bool
	Order     int
}

// NewCommand returns a quick command shown in the bar.
func NewCommand(text CommandText, enabled, available bool) CommandInfo {
	return CommandInfo{Text: text, Enabled: enabled, Quick: true, Available: available}
}

// Hidden excludes the command from the bar while keeping it in help.
func (c CommandInfo) Hidden() CommandInfo {
	c.Quick = false
	return c
}

func (c CommandInfo) WithOrder(order int) CommandInfo {
	c.Order = order
	return c
}

// ShowInBar reports whether the command belongs in the quick bar.
func (c CommandInfo) ShowInBar() bool {
	return c.Quick && c.Available
}

// Text builds the text of a command whose name carries the hint of the key
// bound to slot, e.g. "Quit [q]".
func Text(kc *keys.KeyConfig, label, slot, desc, group string) CommandText {
	name := label
	if hint := kc.HintFor(slot); hint != "" {
		name += " [" + hint + "]"
	}
	return CommandText{Name: name, Desc: desc, Group: group}
}
