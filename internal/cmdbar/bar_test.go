package cmdbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"lazyhf/internal/keys"
	"lazyhf/internal/theme"
)

func testCommands(kc *keys.KeyConfig) []CommandInfo {
	return []CommandInfo{
		NewCommand(Text(kc, "Status", "tab_status", "show status", "tabs"), true, true),
		NewCommand(Text(kc, "Log", "tab_log", "show log", "tabs"), true, true),
		NewCommand(Text(kc, "Files", "tab_files", "show files", "tabs"), true, true),
		NewCommand(Text(kc, "Blame", "blame", "blame file", "files"), false, true),
		NewCommand(Text(kc, "History", "file_history", "file history", "files"), true, true),
		NewCommand(Text(kc, "Quit", "quit", "quit", "global"), true, true),
	}
}

func TestTextCarriesKeyHint(t *testing.T) {
	kc := keys.DefaultKeyConfig()
	if got := Text(kc, "Quit", "quit", "", "").Name; got != "Quit [q]" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := Text(kc, "Blame", "blame", "", "").Name; got != "Blame [⇧B]" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := Text(kc, "Nothing", "unknown", "", "").Name; got != "Nothing" {
		t.Fatalf("unexpected name %q", got)
	}
}

func TestSetDropsCommandsOutsideTheBar(t *testing.T) {
	kc := keys.DefaultKeyConfig()
	bar := New(theme.Default(), kc)
	bar.SetWidth(200)
	cmds := testCommands(kc)
	cmds[1] = cmds[1].Hidden()
	cmds[2].Available = false
	bar.Set(cmds)
	if got := len(bar.lines[0]); got != 4 {
		t.Fatalf("expected 4 commands in bar, got %d", got)
	}
	view := bar.View()
	if strings.Contains(view, "Log") || strings.Contains(view, "Files") {
		t.Fatalf("hidden commands rendered: %q", view)
	}
}

func TestSetOrdersByOrder(t *testing.T) {
	kc := keys.DefaultKeyConfig()
	bar := New(theme.Default(), kc)
	bar.SetWidth(200)
	cmds := testCommands(kc)
	cmds[5] = cmds[5].WithOrder(-1)
	bar.Set(cmds)
	if first := bar.lines[0][0].text; first != "Quit [q]" {
		t.Fatalf("expected quit first, got %q", first)
	}
}

func TestWideBarFitsOnOneLine(t *testing.T) {
	kc := keys.DefaultKeyConfig()
	kc.Symbols.Shift = "S-"
	bar := New(theme.Default(), kc)
	bar.SetWidth(200)
	bar.Set(testCommands(kc))
	if bar.Height() != 1 || bar.overflows() {
		t.Fatalf("expected a single line, got %d lines", len(bar.lines))
	}
	view := bar.View()
	if strings.Contains(view, "more") {
		t.Fatalf("unexpected toggle in %q", view)
	}
	if got := ansi.StringWidth(view); got != 200 {
		t.Fatalf("expected line padded to 200 cells, got %d", got)
	}
}

func TestNarrowBarWrapsAndToggles(t *testing.T) {
	kc := keys.DefaultKeyConfig()
	bar := New(theme.Default(), kc)
	bar.SetWidth(30)
	bar.Set(testCommands(kc))

	if !bar.overflows() {
		t.Fatal("expected overflow at width 30")
	}
	if bar.Height() != 1 {
		t.Fatalf("collapsed bar should be one line, got %d", bar.Height())
	}
	first := bar.View()
	if !strings.Contains(first, "more [.]") {
		t.Fatalf("expected toggle on first line, got %q", first)
	}

	bar.Toggle()
	if bar.Height() != len(bar.lines) {
		t.Fatalf("expanded bar should show all %d lines, got %d", len(bar.lines), bar.Height())
	}
	view := bar.View()
	if !strings.Contains(view, "less [.]") {
		t.Fatalf("expected collapse toggle, got %q", view)
	}
	for i, line := range strings.Split(view, "\n") {
		if w := ansi.StringWidth(line); w > 30 {
			t.Fatalf("line %d is %d cells wide: %q", i, w, line)
		}
	}
	for _, name := range []string{"Status [1]", "Log [2]", "Files [3]", "Quit [q]"} {
		if !strings.Contains(view, name) {
			t.Fatalf("missing %q in expanded bar:\n%s", name, view)
		}
	}
}

func TestEmptyBarHasNoHeight(t *testing.T) {
	bar := New(theme.Default(), keys.DefaultKeyConfig())
	bar.SetWidth(80)
	if bar.Height() != 0 || bar.View() != "" {
		t.Fatal("expected empty bar")
	}
}
