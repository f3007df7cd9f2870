package theme

import "github.com/charmbracelet/lipgloss"

// FileStatus classifies a changed file for diff coloring.
type FileStatus int

const (
	FileAdded FileStatus = iota
	FileRemoved
	FileMoved
	FileModified
)

func fg(c Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c.Terminal())
}

func bg(c Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(c.Terminal())
}

// applySelect gives a selected element the selection background and, when the
// theme asks for it, the selection foreground. Unselected styles pass through.
func (t Theme) applySelect(style lipgloss.Style, selected bool) lipgloss.Style {
	if !selected {
		return style
	}
	style = style.Background(t.SelectionBg.Terminal())
	if t.UseSelectionFg {
		style = style.Foreground(t.SelectionFg.Terminal())
	}
	return style
}

func (t Theme) ScrollBarPos() lipgloss.Style {
	return fg(t.SelectionBg)
}

// Block styles a block border: full color when focused, grayed otherwise.
func (t Theme) Block(focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle()
	}
	return fg(t.DisabledFg)
}

func (t Theme) Title(focused bool) lipgloss.Style {
	if focused {
		return fg(t.BlockTitleFocused).Bold(true)
	}
	return fg(t.DisabledFg)
}

// Branch styles a branch label; the checked-out branch is bold.
func (t Theme) Branch(selected, head bool) lipgloss.Style {
	style := fg(t.BranchFg)
	if head {
		style = style.Bold(true)
	}
	return t.applySelect(style, selected)
}

func (t Theme) Tab(selected bool) lipgloss.Style {
	if selected {
		return t.Text(true, false).Foreground(t.SelectedTab.Terminal()).Underline(true)
	}
	return t.Text(false, false)
}

func (t Theme) Tags(selected bool) lipgloss.Style {
	return t.applySelect(fg(t.TagFg).Bold(true), selected)
}

// Text styles generic text. Disabled text is grayed out; a disabled selected
// row only gets the selection background.
func (t Theme) Text(enabled, selected bool) lipgloss.Style {
	switch {
	case !enabled && !selected:
		return fg(t.DisabledFg)
	case !enabled && selected:
		return bg(t.SelectionBg)
	case enabled && !selected:
		return lipgloss.NewStyle()
	default:
		return t.applySelect(fg(t.CommandFg), true)
	}
}

func (t Theme) FileTreeItem(folder, selected bool) lipgloss.Style {
	style := lipgloss.NewStyle()
	if !folder {
		style = fg(t.DiffFileModified)
	}
	return t.applySelect(style, selected)
}

// Option colors an on/off toggle.
func (t Theme) Option(on bool) lipgloss.Style {
	if on {
		return fg(t.DiffLineAdd)
	}
	return fg(t.DiffLineDelete)
}

func (t Theme) DiffHunkMarker(selected bool) lipgloss.Style {
	if selected {
		return t.applySelect(lipgloss.NewStyle(), true)
	}
	return fg(t.DisabledFg)
}

func (t Theme) DiffLine(add bool) lipgloss.Style {
	return t.Option(add)
}

func (t Theme) DiffFile(status FileStatus) lipgloss.Style {
	switch status {
	case FileAdded:
		return fg(t.DiffFileAdded)
	case FileRemoved:
		return fg(t.DiffFileRemoved)
	case FileMoved:
		return fg(t.DiffFileMoved)
	default:
		return fg(t.DiffFileModified)
	}
}

func (t Theme) TextDanger() lipgloss.Style {
	return fg(t.DangerFg)
}

// CommandBar styles line n of the command bar. The first line and the extra
// lines shown when the bar is expanded use separate backgrounds.
func (t Theme) CommandBar(enabled bool, line int) lipgloss.Style {
	style := fg(t.DisabledFg)
	if enabled {
		style = fg(t.CommandFg)
	}
	if line == 0 {
		return style.Background(t.CmdbarBg.Terminal())
	}
	return style.Background(t.CmdbarExtraLinesBg.Terminal())
}

func (t Theme) CommitHash(selected bool) lipgloss.Style {
	return t.applySelect(fg(t.CommitHashFg), selected)
}

func (t Theme) CommitUnhighlighted() lipgloss.Style {
	return fg(t.DisabledFg)
}

func (t Theme) LogMarker(selected bool) lipgloss.Style {
	return t.applySelect(fg(t.CommitAuthorFg).Bold(true), selected)
}

func (t Theme) CommitTime(selected bool) lipgloss.Style {
	return t.applySelect(fg(t.CommitTimeFg), selected)
}

func (t Theme) CommitAuthor(selected bool) lipgloss.Style {
	return t.applySelect(fg(t.CommitAuthorFg), selected)
}

func (t Theme) CommitHashInBlame(blamed bool) lipgloss.Style {
	style := fg(t.CommitHashFg)
	if blamed {
		style = style.Bold(true)
	}
	return style
}

func (t Theme) PushGauge() lipgloss.Style {
	return fg(t.PushGaugeFg).Background(t.PushGaugeBg.Terminal())
}

// AttentionBlock is fixed and not themable.
func AttentionBlock() lipgloss.Style {
	return fg(Yellow)
}

func (t Theme) LineBreak() string {
	return t.LineBreakSymbol
}

func (t Theme) Syntax() string {
	return t.SyntaxTheme
}
