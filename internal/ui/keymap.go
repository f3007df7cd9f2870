package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"lazyhf/internal/keys"
)

var slotDescriptions = map[string]string{
	"tab_status":         "status tab",
	"tab_log":            "log tab",
	"tab_files":          "key bindings tab",
	"tab_toggle":         "next tab",
	"tab_toggle_reverse": "previous tab",
	"toggle_workarea":    "toggle work area",
	"exit":               "exit",
	"quit":               "quit",
	"exit_popup":         "close popup",
	"open_help":          "help",
	"open_options":       "options",
	"move_left":          "move left",
	"move_right":         "move right",
	"move_up":            "move up",
	"move_down":          "move down",
	"popup_up":           "scroll popup up",
	"popup_down":         "scroll popup down",
	"page_up":            "page up",
	"page_down":          "page down",
	"home":               "first item",
	"end":                "last item",
	"shift_up":           "extend selection up",
	"shift_down":         "extend selection down",
	"enter":              "confirm",
	"blame":              "blame file",
	"file_history":       "file history",
	"edit_file":          "edit file",
	"copy":               "copy",
	"cmd_bar_toggle":     "more commands",
	"log_tag_commit":     "tag commit",
	"log_find":           "find commit",
	"find_commit_sha":    "find commit by sha",
}

// keyMap exposes the configured bindings as bubbles key bindings so the help
// views can render them. Help keys show the configured hint.
type keyMap struct {
	slots    []keys.Slot
	bindings map[string]key.Binding
}

func newKeyMap(kc *keys.KeyConfig) keyMap {
	km := keyMap{slots: kc.Keys.Slots(), bindings: map[string]key.Binding{}}
	for _, slot := range km.slots {
		desc := slotDescriptions[slot.Name]
		if desc == "" {
			desc = slot.Name
		}
		km.bindings[slot.Name] = key.NewBinding(
			key.WithKeys(slot.Event.String()),
			key.WithHelp(kc.Hint(slot.Event), desc),
		)
	}
	return km
}

func (k keyMap) binding(slot string) key.Binding {
	return k.bindings[slot]
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.binding("exit_popup"),
		k.binding("popup_up"),
		k.binding("popup_down"),
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	all := make([]key.Binding, 0, len(k.slots))
	for _, slot := range k.slots {
		all = append(all, k.bindings[slot.Name])
	}
	return [][]key.Binding{all}
}
