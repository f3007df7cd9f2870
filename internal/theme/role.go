package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Role names a styled UI element for callers that carry roles as data, such
// as the command bar or the layout descriptions of the demo shell.
type Role int

const (
	RoleText Role = iota
	RoleBlock
	RoleTitle
	RoleTab
	RoleBranch
	RoleTags
	RoleFileTreeItem
	RoleDiffHunkMarker
	RoleCommitHash
	RoleCommitTime
	RoleCommitAuthor
	RoleLogMarker
	RoleDanger
	RolePushGauge
	RoleScrollBar
	RoleAttention
)

var roleNames = map[Role]string{
	RoleText:           "text",
	RoleBlock:          "block",
	RoleTitle:          "title",
	RoleTab:            "tab",
	RoleBranch:         "branch",
	RoleTags:           "tags",
	RoleFileTreeItem:   "file_tree_item",
	RoleDiffHunkMarker: "diff_hunk_marker",
	RoleCommitHash:     "commit_hash",
	RoleCommitTime:     "commit_time",
	RoleCommitAuthor:   "commit_author",
	RoleLogMarker:      "log_marker",
	RoleDanger:         "danger",
	RolePushGauge:      "push_gauge",
	RoleScrollBar:      "scroll_bar",
	RoleAttention:      "attention",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// ParseRole maps a role name back to its Role.
func ParseRole(raw string) (Role, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for role, candidate := range roleNames {
		if candidate == name {
			return role, nil
		}
	}
	return 0, fmt.Errorf("unknown style role %q", raw)
}

// StyleFor resolves the style of role in the given widget state. Blocks and
// titles follow focus directly; every other role is drawn in disabled_fg while
// its widget is unfocused.
func (t Theme) StyleFor(role Role, focused, selected, enabled bool) lipgloss.Style {
	switch role {
	case RoleBlock:
		return t.Block(focused)
	case RoleTitle:
		return t.Title(focused)
	}
	style := t.roleStyle(role, selected, enabled)
	if !focused {
		style = style.Foreground(t.DisabledFg.Terminal())
	}
	return style
}

func (t Theme) roleStyle(role Role, selected, enabled bool) lipgloss.Style {
	switch role {
	case RoleTab:
		return t.Tab(selected)
	case RoleBranch:
		return t.Branch(selected, false)
	case RoleTags:
		return t.Tags(selected)
	case RoleFileTreeItem:
		return t.FileTreeItem(false, selected)
	case RoleDiffHunkMarker:
		return t.DiffHunkMarker(selected)
	case RoleCommitHash:
		return t.CommitHash(selected)
	case RoleCommitTime:
		return t.CommitTime(selected)
	case RoleCommitAuthor:
		return t.CommitAuthor(selected)
	case RoleLogMarker:
		return t.LogMarker(selected)
	case RoleDanger:
		return t.TextDanger()
	case RolePushGauge:
		return t.PushGauge()
	case RoleScrollBar:
		return t.ScrollBarPos()
	case RoleAttention:
		return AttentionBlock()
	default:
		return t.Text(enabled, selected)
	}
}
