// Package ui is a small terminal shell that shows the resolved configuration
// and exercises the key bindings, hints and styles.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lazyhf/internal/clipboard"
	"lazyhf/internal/cmdbar"
	"lazyhf/internal/config"
	"lazyhf/internal/keys"
	"lazyhf/internal/logging"
	"lazyhf/internal/state"
	"lazyhf/internal/theme"
)

type Tab int

const (
	TabStatus Tab = iota
	TabLog
	TabFiles
	tabCount
)

var tabTitles = [tabCount]string{"Status", "Log", "Key bindings"}

// tabIDs name the tabs in saved UI state.
var tabIDs = [tabCount]string{"status", "log", "files"}

const (
	pageSize    = 10
	copyTimeout = 2 * time.Second
)

var copyToClipboard = clipboard.Copy

type copyResultMsg struct {
	text   string
	method clipboard.Method
	err    error
}

// Options carries what the shell displays.
type Options struct {
	Theme    theme.Theme
	Keys     *keys.KeyConfig
	Outcomes []config.Outcome
	LogPath  string
	CacheDir string
	WorkDir  string
	Logger   logging.Logger
	Restore  *state.UIState
}

// Model is the bubbletea model of the shell.
type Model struct {
	theme    theme.Theme
	keys     *keys.KeyConfig
	keymap   keyMap
	logger   logging.Logger
	bar      *cmdbar.Bar
	help     help.Model
	helpView viewport.Model
	showHelp bool

	tab      Tab
	rows     [tabCount][]string
	selected [tabCount]int
	offset   [tabCount]int
	status   string
	statusOK bool
	width    int
	height   int
}

func New(opts Options) *Model {
	kc := opts.Keys
	if kc == nil {
		kc = keys.DefaultKeyConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	m := &Model{
		theme:    opts.Theme,
		keys:     kc,
		keymap:   newKeyMap(kc),
		logger:   logger,
		bar:      cmdbar.New(opts.Theme, kc),
		help:     help.New(),
		helpView: viewport.New(0, 0),
		statusOK: true,
	}
	m.rows[TabStatus] = statusRows(opts.Outcomes)
	m.rows[TabLog] = logRows(opts.LogPath, opts.WorkDir, opts.CacheDir)
	m.rows[TabFiles] = bindingRows(kc)
	m.restore(opts.Restore)
	m.refreshCommands()
	return m
}

func (m *Model) restore(saved *state.UIState) {
	if saved == nil {
		return
	}
	for i, id := range tabIDs {
		if id == saved.Tab {
			m.tab = Tab(i)
		}
		if sel, ok := saved.Selected[id]; ok && sel > 0 && sel < len(m.rows[i]) {
			m.selected[i] = sel
		}
	}
	if saved.CmdBarExpanded != m.bar.Expanded() {
		m.bar.Toggle()
	}
}

// State is the UI state to save for the next start.
func (m *Model) State() *state.UIState {
	saved := &state.UIState{
		Tab:            tabIDs[m.tab],
		Selected:       map[string]int{},
		CmdBarExpanded: m.bar.Expanded(),
	}
	for i, id := range tabIDs {
		if m.selected[i] > 0 {
			saved.Selected[id] = m.selected[i]
		}
	}
	return saved
}

func statusRows(outcomes []config.Outcome) []string {
	rows := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		row := fmt.Sprintf("%-8s %s", o.Origin, o.Path)
		if o.Migrated {
			row += " (converted)"
		}
		if o.Err != nil {
			row += " error: " + o.Err.Error()
		}
		rows = append(rows, row)
	}
	return rows
}

func logRows(logPath, workDir, cacheDir string) []string {
	rows := []string{"work dir: " + workDir}
	if cacheDir != "" {
		rows = append(rows, "cache dir: "+cacheDir)
	}
	if logPath == "" {
		return append(rows, "logging disabled")
	}
	return append(rows, "log file: "+logPath)
}

func bindingRows(kc *keys.KeyConfig) []string {
	slots := kc.Keys.Slots()
	rows := make([]string, 0, len(slots))
	for _, slot := range slots {
		rows = append(rows, fmt.Sprintf("%-20s %-16s %s", slot.Name, slot.Event, kc.Hint(slot.Event)))
	}
	return rows
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) refreshCommands() {
	kc := m.keys
	cmds := []cmdbar.CommandInfo{
		cmdbar.NewCommand(cmdbar.Text(kc, "Status", "tab_status", "show config files", "tabs"), m.tab != TabStatus, true),
		cmdbar.NewCommand(cmdbar.Text(kc, "Log", "tab_log", "show logging", "tabs"), m.tab != TabLog, true),
		cmdbar.NewCommand(cmdbar.Text(kc, "Keys", "tab_files", "show key bindings", "tabs"), m.tab != TabFiles, true),
		cmdbar.NewCommand(cmdbar.Text(kc, "Copy", "copy", "copy selected line", "general"), len(m.rows[m.tab]) > 0, true),
		cmdbar.NewCommand(cmdbar.Text(kc, "Help", "open_help", "show key bindings", "general"), true, true),
		cmdbar.NewCommand(cmdbar.Text(kc, "Close", "exit_popup", "close help", "general"), true, m.showHelp),
		cmdbar.NewCommand(cmdbar.Text(kc, "Quit", "quit", "quit", "general"), true, true).WithOrder(1),
	}
	m.bar.Set(cmds)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.bar.SetWidth(msg.Width)
		m.help.Width = msg.Width
		m.resizeHelp()
		return m, nil
	case copyResultMsg:
		if msg.err != nil {
			m.setStatus("copy failed: "+msg.err.Error(), false)
			m.logger.Warn("copy failed", logging.Err(msg.err))
		} else {
			m.setStatus(fmt.Sprintf("copied via %s: %s", msg.method, msg.text), true)
		}
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(keys.FromTea(msg))
	}
	return m, nil
}

func (m *Model) handleKey(ev keys.KeyEvent) tea.Cmd {
	k := m.keys.Keys
	switch {
	case keys.Matches(ev, k.Exit):
		return tea.Quit
	case m.showHelp:
		return m.handleHelpKey(ev)
	case keys.Matches(ev, k.Quit):
		return tea.Quit
	case keys.Matches(ev, k.OpenHelp):
		m.showHelp = true
		m.resizeHelp()
	case keys.Matches(ev, k.TabStatus):
		m.tab = TabStatus
	case keys.Matches(ev, k.TabLog):
		m.tab = TabLog
	case keys.Matches(ev, k.TabFiles):
		m.tab = TabFiles
	case keys.Matches(ev, k.TabToggle):
		m.tab = (m.tab + 1) % tabCount
	case keys.Matches(ev, k.TabToggleReverse):
		m.tab = (m.tab + tabCount - 1) % tabCount
	case keys.Matches(ev, k.MoveUp):
		m.moveSelection(-1)
	case keys.Matches(ev, k.MoveDown):
		m.moveSelection(1)
	case keys.Matches(ev, k.PageUp):
		m.moveSelection(-pageSize)
	case keys.Matches(ev, k.PageDown):
		m.moveSelection(pageSize)
	case keys.Matches(ev, k.Home):
		m.moveSelection(-len(m.rows[m.tab]))
	case keys.Matches(ev, k.End):
		m.moveSelection(len(m.rows[m.tab]))
	case keys.Matches(ev, k.CmdBarToggle):
		m.bar.Toggle()
	case keys.Matches(ev, k.Copy):
		return m.copySelected()
	default:
		return nil
	}
	m.refreshCommands()
	return nil
}

func (m *Model) handleHelpKey(ev keys.KeyEvent) tea.Cmd {
	k := m.keys.Keys
	switch {
	case keys.Matches(ev, k.ExitPopup), keys.Matches(ev, k.OpenHelp), keys.Matches(ev, k.Quit):
		m.showHelp = false
		m.refreshCommands()
	case keys.Matches(ev, k.PopupUp), keys.Matches(ev, k.MoveUp):
		m.helpView.SetYOffset(m.helpView.YOffset - 1)
	case keys.Matches(ev, k.PopupDown), keys.Matches(ev, k.MoveDown):
		m.helpView.SetYOffset(m.helpView.YOffset + 1)
	}
	return nil
}

func (m *Model) moveSelection(delta int) {
	rows := len(m.rows[m.tab])
	if rows == 0 {
		return
	}
	sel := m.selected[m.tab] + delta
	if sel < 0 {
		sel = 0
	}
	if sel >= rows {
		sel = rows - 1
	}
	m.selected[m.tab] = sel
}

func (m *Model) copySelected() tea.Cmd {
	rows := m.rows[m.tab]
	if len(rows) == 0 {
		return nil
	}
	text := strings.TrimSpace(rows[m.selected[m.tab]])
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), copyTimeout)
		defer cancel()
		method, err := copyToClipboard(ctx, text)
		return copyResultMsg{text: text, method: method, err: err}
	}
}

func (m *Model) setStatus(text string, ok bool) {
	m.status = text
	m.statusOK = ok
}

func (m *Model) resizeHelp() {
	// leave room for the border and the short help line
	w, h := m.width-4, m.bodyHeight()
	if w < 10 {
		w = 10
	}
	if h > 1 {
		h--
	}
	m.helpView.Width = w
	m.helpView.Height = h
	m.helpView.SetContent(renderMarkdown(helpMarkdown(m.keys), w, m.theme))
}

func (m *Model) bodyHeight() int {
	// tabs line, status line and the box border
	h := m.height - m.bar.Height() - 4
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}
	sections := []string{m.viewTabs(), m.viewBody(), m.viewStatus()}
	if bar := m.bar.View(); bar != "" {
		sections = append(sections, bar)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) viewTabs() string {
	parts := make([]string, 0, len(tabTitles))
	for i, title := range tabTitles {
		label := fmt.Sprintf("%s [%s]", title, m.keys.Hint(m.tabKey(Tab(i))))
		style := m.theme.StyleFor(theme.RoleTab, !m.showHelp, Tab(i) == m.tab, true)
		parts = append(parts, style.Render(label))
	}
	sep := m.theme.Text(false, false).Render(" | ")
	return strings.Join(parts, sep)
}

func (m *Model) tabKey(tab Tab) keys.KeyEvent {
	switch tab {
	case TabLog:
		return m.keys.Keys.TabLog
	case TabFiles:
		return m.keys.Keys.TabFiles
	default:
		return m.keys.Keys.TabStatus
	}
}

func (m *Model) viewBody() string {
	height := m.bodyHeight()
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Block(true).GetForeground()).
		Width(m.width - 2).
		Height(height)

	if m.showHelp {
		content := m.helpView.View() + "\n" + m.help.ShortHelpView(m.keymap.ShortHelp())
		return box.Render(content)
	}

	lines := []string{m.theme.Title(true).Render(tabTitles[m.tab])}
	visible := height - 1
	if visible < 1 {
		visible = 1
	}
	rows := m.rows[m.tab]
	sel := m.selected[m.tab]
	off := m.offset[m.tab]
	if sel < off {
		off = sel
	}
	if sel >= off+visible {
		off = sel - visible + 1
	}
	m.offset[m.tab] = off

	for i := off; i < len(rows) && i < off+visible; i++ {
		lines = append(lines, m.theme.Text(true, i == sel).Render(rows[i]))
	}
	if len(rows) == 0 {
		lines = append(lines, m.theme.Text(false, false).Render("nothing to show"))
	}
	return box.Render(strings.Join(lines, "\n"))
}

func (m *Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusOK {
		return m.theme.Text(true, false).Render(m.status)
	}
	return m.theme.TextDanger().Render(m.status)
}
