package cmdbar

import (
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"lazyhf/internal/keys"
	"lazyhf/internal/theme"
)

type entry struct {
	text    string
	enabled bool
}

// Bar is the command bar. It shows the first line of commands and, once
// expanded, every line.
type Bar struct {
	theme    theme.Theme
	keys     *keys.KeyConfig
	cmds     []CommandInfo
	width    int
	expanded bool
	lines    [][]entry
}

func New(th theme.Theme, kc *keys.KeyConfig) *Bar {
	return &Bar{theme: th, keys: kc}
}

// Set replaces the commands. Commands that do not belong in the bar are
// dropped; the rest keep their order, sorted by Order.
func (b *Bar) Set(cmds []CommandInfo) {
	b.cmds = b.cmds[:0]
	for _, cmd := range cmds {
		if cmd.ShowInBar() {
			b.cmds = append(b.cmds, cmd)
		}
	}
	sort.SliceStable(b.cmds, func(i, j int) bool {
		return b.cmds[i].Order < b.cmds[j].Order
	})
	b.layout()
}

func (b *Bar) SetWidth(width int) {
	if width == b.width {
		return
	}
	b.width = width
	b.layout()
}

// Toggle expands or collapses the bar.
func (b *Bar) Toggle() {
	b.expanded = !b.expanded
}

func (b *Bar) Expanded() bool {
	return b.expanded
}

// Height is the number of terminal lines the bar occupies.
func (b *Bar) Height() int {
	switch {
	case len(b.lines) == 0:
		return 0
	case b.expanded:
		return len(b.lines)
	default:
		return 1
	}
}

func (b *Bar) overflows() bool {
	return len(b.lines) > 1
}

func (b *Bar) toggleText() string {
	label := "more"
	if b.expanded {
		label = "less"
	}
	if hint := b.keys.HintFor("cmd_bar_toggle"); hint != "" {
		label += " [" + hint + "]"
	}
	return label
}

func (b *Bar) layout() {
	b.lines = nil
	if b.width <= 0 || len(b.cmds) == 0 {
		return
	}
	avail := b.width
	if fitsOneLine(b.cmds, b.width) {
		b.lines = wrap(b.cmds, avail)
		return
	}
	avail -= runewidth.StringWidth(b.toggleText()) + 1
	if avail < 1 {
		avail = 1
	}
	b.lines = wrap(b.cmds, avail)
}

func fitsOneLine(cmds []CommandInfo, width int) bool {
	total := 0
	for i, cmd := range cmds {
		if i > 0 {
			total++
		}
		total += runewidth.StringWidth(cmd.Text.Name)
	}
	return total <= width
}

func wrap(cmds []CommandInfo, width int) [][]entry {
	var lines [][]entry
	var current []entry
	x := 0
	for _, cmd := range cmds {
		w := runewidth.StringWidth(cmd.Text.Name)
		if len(current) > 0 && x+1+w > width {
			lines = append(lines, current)
			current, x = nil, 0
		}
		if len(current) > 0 {
			x++
		}
		current = append(current, entry{text: cmd.Text.Name, enabled: cmd.Enabled})
		x += w
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// View renders the visible lines, each exactly as wide as the bar.
func (b *Bar) View() string {
	height := b.Height()
	if height == 0 {
		return ""
	}
	out := make([]string, 0, height)
	for i := 0; i < height; i++ {
		out = append(out, b.renderLine(i))
	}
	return strings.Join(out, "\n")
}

func (b *Bar) renderLine(i int) string {
	spacer := b.theme.CommandBar(false, i).Render(" ")
	parts := make([]string, 0, len(b.lines[i]))
	used := 0
	for j, e := range b.lines[i] {
		if j > 0 {
			used++
		}
		parts = append(parts, b.theme.CommandBar(e.enabled, i).Render(e.text))
		used += runewidth.StringWidth(e.text)
	}
	line := strings.Join(parts, spacer)

	tail := ""
	if i == 0 && b.overflows() {
		tail = b.toggleText()
	}
	gap := b.width - used - runewidth.StringWidth(tail)
	if gap > 0 {
		line += b.theme.CommandBar(false, i).Render(strings.Repeat(" ", gap))
	}
	if tail != "" {
		line += b.theme.CommandBar(true, i).Render(tail)
	}
	return ansi.Truncate(line, b.width, "")
}
