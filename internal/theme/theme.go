// Package theme holds the visual theme of the terminal UI and the pure style
// functions that turn widget state into lipgloss styles.
package theme

import "lazyhf/internal/patch"

// DefaultSyntax is the syntax-highlighting theme used when none is configured.
const DefaultSyntax = "base16-eighties.dark"

// Theme is the resolved, fully populated color theme. It is built once at
// startup and never mutated afterwards.
type Theme struct {
	SelectedTab        Color  `json:"selected_tab" toml:"selected_tab" yaml:"selected_tab"`
	CommandFg          Color  `json:"command_fg" toml:"command_fg" yaml:"command_fg"`
	SelectionBg        Color  `json:"selection_bg" toml:"selection_bg" yaml:"selection_bg"`
	SelectionFg        Color  `json:"selection_fg" toml:"selection_fg" yaml:"selection_fg"`
	UseSelectionFg     bool   `json:"use_selection_fg" toml:"use_selection_fg" yaml:"use_selection_fg"`
	CmdbarBg           Color  `json:"cmdbar_bg" toml:"cmdbar_bg" yaml:"cmdbar_bg"`
	CmdbarExtraLinesBg Color  `json:"cmdbar_extra_lines_bg" toml:"cmdbar_extra_lines_bg" yaml:"cmdbar_extra_lines_bg"`
	DisabledFg         Color  `json:"disabled_fg" toml:"disabled_fg" yaml:"disabled_fg"`
	DiffLineAdd        Color  `json:"diff_line_add" toml:"diff_line_add" yaml:"diff_line_add"`
	DiffLineDelete     Color  `json:"diff_line_delete" toml:"diff_line_delete" yaml:"diff_line_delete"`
	DiffFileAdded      Color  `json:"diff_file_added" toml:"diff_file_added" yaml:"diff_file_added"`
	DiffFileRemoved    Color  `json:"diff_file_removed" toml:"diff_file_removed" yaml:"diff_file_removed"`
	DiffFileMoved      Color  `json:"diff_file_moved" toml:"diff_file_moved" yaml:"diff_file_moved"`
	DiffFileModified   Color  `json:"diff_file_modified" toml:"diff_file_modified" yaml:"diff_file_modified"`
	CommitHashFg       Color  `json:"commit_hash" toml:"commit_hash" yaml:"commit_hash"`
	CommitTimeFg       Color  `json:"commit_time" toml:"commit_time" yaml:"commit_time"`
	CommitAuthorFg     Color  `json:"commit_author" toml:"commit_author" yaml:"commit_author"`
	DangerFg           Color  `json:"danger_fg" toml:"danger_fg" yaml:"danger_fg"`
	PushGaugeBg        Color  `json:"push_gauge_bg" toml:"push_gauge_bg" yaml:"push_gauge_bg"`
	PushGaugeFg        Color  `json:"push_gauge_fg" toml:"push_gauge_fg" yaml:"push_gauge_fg"`
	TagFg              Color  `json:"tag_fg" toml:"tag_fg" yaml:"tag_fg"`
	BranchFg           Color  `json:"branch_fg" toml:"branch_fg" yaml:"branch_fg"`
	LineBreakSymbol    string `json:"line_break" toml:"line_break" yaml:"line_break"`
	BlockTitleFocused  Color  `json:"block_title_focused" toml:"block_title_focused" yaml:"block_title_focused"`
	SyntaxTheme        string `json:"syntax" toml:"syntax" yaml:"syntax"`
}

// Default returns the compiled-in theme.
func Default() Theme {
	return Theme{
		SelectedTab:        Reset,
		CommandFg:          White,
		SelectionBg:        Blue,
		SelectionFg:        White,
		UseSelectionFg:     true,
		CmdbarBg:           Blue,
		CmdbarExtraLinesBg: Blue,
		DisabledFg:         DarkGray,
		DiffLineAdd:        Green,
		DiffLineDelete:     Red,
		DiffFileAdded:      LightGreen,
		DiffFileRemoved:    LightRed,
		DiffFileMoved:      LightMagenta,
		DiffFileModified:   Yellow,
		CommitHashFg:       Magenta,
		CommitTimeFg:       LightCyan,
		CommitAuthorFg:     Green,
		DangerFg:           Red,
		PushGaugeBg:        Blue,
		PushGaugeFg:        Reset,
		TagFg:              LightMagenta,
		BranchFg:           LightYellow,
		LineBreakSymbol:    "¶",
		BlockTitleFocused:  Reset,
		SyntaxTheme:        DefaultSyntax,
	}
}

// Patch is the sparse form of Theme stored in theme files.
type Patch struct {
	SelectedTab        *Color  `toml:"selected_tab,omitempty"`
	CommandFg          *Color  `toml:"command_fg,omitempty"`
	SelectionBg        *Color  `toml:"selection_bg,omitempty"`
	SelectionFg        *Color  `toml:"selection_fg,omitempty"`
	UseSelectionFg     *bool   `toml:"use_selection_fg,omitempty"`
	CmdbarBg           *Color  `toml:"cmdbar_bg,omitempty"`
	CmdbarExtraLinesBg *Color  `toml:"cmdbar_extra_lines_bg,omitempty"`
	DisabledFg         *Color  `toml:"disabled_fg,omitempty"`
	DiffLineAdd        *Color  `toml:"diff_line_add,omitempty"`
	DiffLineDelete     *Color  `toml:"diff_line_delete,omitempty"`
	DiffFileAdded      *Color  `toml:"diff_file_added,omitempty"`
	DiffFileRemoved    *Color  `toml:"diff_file_removed,omitempty"`
	DiffFileMoved      *Color  `toml:"diff_file_moved,omitempty"`
	DiffFileModified   *Color  `toml:"diff_file_modified,omitempty"`
	CommitHashFg       *Color  `toml:"commit_hash,omitempty"`
	CommitTimeFg       *Color  `toml:"commit_time,omitempty"`
	CommitAuthorFg     *Color  `toml:"commit_author,omitempty"`
	DangerFg           *Color  `toml:"danger_fg,omitempty"`
	PushGaugeBg        *Color  `toml:"push_gauge_bg,omitempty"`
	PushGaugeFg        *Color  `toml:"push_gauge_fg,omitempty"`
	TagFg              *Color  `toml:"tag_fg,omitempty"`
	BranchFg           *Color  `toml:"branch_fg,omitempty"`
	LineBreakSymbol    *string `toml:"line_break,omitempty"`
	BlockTitleFocused  *Color  `toml:"block_title_focused,omitempty"`
	SyntaxTheme        *string `toml:"syntax,omitempty"`
}

// Diff returns the fields of value that differ from base.
func Diff(value, base Theme) Patch {
	var p Patch
	patch.DiffField(&p.SelectedTab, value.SelectedTab, base.SelectedTab)
	patch.DiffField(&p.CommandFg, value.CommandFg, base.CommandFg)
	patch.DiffField(&p.SelectionBg, value.SelectionBg, base.SelectionBg)
	patch.DiffField(&p.SelectionFg, value.SelectionFg, base.SelectionFg)
	patch.DiffField(&p.UseSelectionFg, value.UseSelectionFg, base.UseSelectionFg)
	patch.DiffField(&p.CmdbarBg, value.CmdbarBg, base.CmdbarBg)
	patch.DiffField(&p.CmdbarExtraLinesBg, value.CmdbarExtraLinesBg, base.CmdbarExtraLinesBg)
	patch.DiffField(&p.DisabledFg, value.DisabledFg, base.DisabledFg)
	patch.DiffField(&p.DiffLineAdd, value.DiffLineAdd, base.DiffLineAdd)
	patch.DiffField(&p.DiffLineDelete, value.DiffLineDelete, base.DiffLineDelete)
	patch.DiffField(&p.DiffFileAdded, value.DiffFileAdded, base.DiffFileAdded)
	patch.DiffField(&p.DiffFileRemoved, value.DiffFileRemoved, base.DiffFileRemoved)
	patch.DiffField(&p.DiffFileMoved, value.DiffFileMoved, base.DiffFileMoved)
	patch.DiffField(&p.DiffFileModified, value.DiffFileModified, base.DiffFileModified)
	patch.DiffField(&p.CommitHashFg, value.CommitHashFg, base.CommitHashFg)
	patch.DiffField(&p.CommitTimeFg, value.CommitTimeFg, base.CommitTimeFg)
	patch.DiffField(&p.CommitAuthorFg, value.CommitAuthorFg, base.CommitAuthorFg)
	patch.DiffField(&p.DangerFg, value.DangerFg, base.DangerFg)
	patch.DiffField(&p.PushGaugeBg, value.PushGaugeBg, base.PushGaugeBg)
	patch.DiffField(&p.PushGaugeFg, value.PushGaugeFg, base.PushGaugeFg)
	patch.DiffField(&p.TagFg, value.TagFg, base.TagFg)
	patch.DiffField(&p.BranchFg, value.BranchFg, base.BranchFg)
	patch.DiffField(&p.LineBreakSymbol, value.LineBreakSymbol, base.LineBreakSymbol)
	patch.DiffField(&p.BlockTitleFocused, value.BlockTitleFocused, base.BlockTitleFocused)
	patch.DiffField(&p.SyntaxTheme, value.SyntaxTheme, base.SyntaxTheme)
	return p
}

// Apply overwrites the present fields of p onto a copy of base.
func (p Patch) Apply(base Theme) Theme {
	patch.ApplyField(&base.SelectedTab, p.SelectedTab)
	patch.ApplyField(&base.CommandFg, p.CommandFg)
	patch.ApplyField(&base.SelectionBg, p.SelectionBg)
	patch.ApplyField(&base.SelectionFg, p.SelectionFg)
	patch.ApplyField(&base.UseSelectionFg, p.UseSelectionFg)
	patch.ApplyField(&base.CmdbarBg, p.CmdbarBg)
	patch.ApplyField(&base.CmdbarExtraLinesBg, p.CmdbarExtraLinesBg)
	patch.ApplyField(&base.DisabledFg, p.DisabledFg)
	patch.ApplyField(&base.DiffLineAdd, p.DiffLineAdd)
	patch.ApplyField(&base.DiffLineDelete, p.DiffLineDelete)
	patch.ApplyField(&base.DiffFileAdded, p.DiffFileAdded)
	patch.ApplyField(&base.DiffFileRemoved, p.DiffFileRemoved)
	patch.ApplyField(&base.DiffFileMoved, p.DiffFileMoved)
	patch.ApplyField(&base.DiffFileModified, p.DiffFileModified)
	patch.ApplyField(&base.CommitHashFg, p.CommitHashFg)
	patch.ApplyField(&base.CommitTimeFg, p.CommitTimeFg)
	patch.ApplyField(&base.CommitAuthorFg, p.CommitAuthorFg)
	patch.ApplyField(&base.DangerFg, p.DangerFg)
	patch.ApplyField(&base.PushGaugeBg, p.PushGaugeBg)
	patch.ApplyField(&base.PushGaugeFg, p.PushGaugeFg)
	patch.ApplyField(&base.TagFg, p.TagFg)
	patch.ApplyField(&base.BranchFg, p.BranchFg)
	patch.ApplyField(&base.LineBreakSymbol, p.LineBreakSymbol)
	patch.ApplyField(&base.BlockTitleFocused, p.BlockTitleFocused)
	patch.ApplyField(&base.SyntaxTheme, p.SyntaxTheme)
	return base
}

// IsEmpty reports whether p overrides nothing.
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// Kind is the patch descriptor used by the config store.
var Kind = patch.Kind[Theme, Patch]{
	Name:    "theme",
	Default: Default,
	Diff:    Diff,
}
