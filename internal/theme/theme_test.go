package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"lazyhf/internal/patch"
)

func TestSelectionUsesSelectionForegroundWhenEnabled(t *testing.T) {
	th := Default()
	th.UseSelectionFg = true
	style := th.Branch(true, false)
	if got := style.GetBackground(); got != lipgloss.Color("4") {
		t.Fatalf("expected selection background, got %#v", got)
	}
	if got := style.GetForeground(); got != lipgloss.Color("15") {
		t.Fatalf("expected selection foreground, got %#v", got)
	}
}

func TestSelectionKeepsForegroundWhenDisabled(t *testing.T) {
	th := Default()
	th.UseSelectionFg = false
	style := th.Branch(true, false)
	if got := style.GetBackground(); got != lipgloss.Color("4") {
		t.Fatalf("expected selection background, got %#v", got)
	}
	if got := style.GetForeground(); got != lipgloss.Color("11") {
		t.Fatalf("expected branch foreground to survive selection, got %#v", got)
	}
}

func TestUnselectedStyleHasNoSelectionBackground(t *testing.T) {
	style := Default().CommitHash(false)
	if _, ok := style.GetBackground().(lipgloss.NoColor); !ok {
		t.Fatalf("expected no background, got %#v", style.GetBackground())
	}
	if got := style.GetForeground(); got != lipgloss.Color("5") {
		t.Fatalf("expected magenta, got %#v", got)
	}
}

func TestBlockAndTitleFollowFocus(t *testing.T) {
	th := Default()
	if got := th.Block(false).GetForeground(); got != lipgloss.Color("8") {
		t.Fatalf("expected unfocused block in disabled color, got %#v", got)
	}
	if !th.Title(true).GetBold() {
		t.Fatal("expected focused title to be bold")
	}
	if th.Title(false).GetBold() {
		t.Fatal("expected unfocused title not to be bold")
	}
}

func TestTextStates(t *testing.T) {
	th := Default()
	cases := []struct {
		name     string
		enabled  bool
		selected bool
		fg       lipgloss.TerminalColor
		bg       lipgloss.TerminalColor
	}{
		{name: "disabled", fg: lipgloss.Color("8"), bg: lipgloss.NoColor{}},
		{name: "disabled selected", selected: true, fg: lipgloss.NoColor{}, bg: lipgloss.Color("4")},
		{name: "enabled", enabled: true, fg: lipgloss.NoColor{}, bg: lipgloss.NoColor{}},
		{name: "enabled selected", enabled: true, selected: true, fg: lipgloss.Color("15"), bg: lipgloss.Color("4")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			style := th.Text(tc.enabled, tc.selected)
			if got := style.GetForeground(); got != tc.fg {
				t.Fatalf("foreground: got %#v want %#v", got, tc.fg)
			}
			if got := style.GetBackground(); got != tc.bg {
				t.Fatalf("background: got %#v want %#v", got, tc.bg)
			}
		})
	}
}

func TestCommandBarLineBackgrounds(t *testing.T) {
	th := Default()
	th.CmdbarExtraLinesBg = "240"
	if got := th.CommandBar(true, 0).GetBackground(); got != lipgloss.Color("4") {
		t.Fatalf("first line background: %#v", got)
	}
	if got := th.CommandBar(false, 2).GetBackground(); got != lipgloss.Color("240") {
		t.Fatalf("extra line background: %#v", got)
	}
	if got := th.CommandBar(false, 2).GetForeground(); got != lipgloss.Color("8") {
		t.Fatalf("disabled command foreground: %#v", got)
	}
}

func TestColorTerminal(t *testing.T) {
	cases := map[Color]lipgloss.TerminalColor{
		"reset":        lipgloss.NoColor{},
		"":             lipgloss.NoColor{},
		"LightMagenta": lipgloss.Color("13"),
		" blue ":       lipgloss.Color("4"),
		"#9d87ae":      lipgloss.Color("#9d87ae"),
		"240":          lipgloss.Color("240"),
	}
	for in, want := range cases {
		if got := in.Terminal(); got != want {
			t.Fatalf("%q: got %#v want %#v", in, got, want)
		}
	}
}

func TestStyleForUnfocusedUsesDisabledForeground(t *testing.T) {
	th := Default()
	style := th.StyleFor(RoleCommitAuthor, false, false, true)
	if got := style.GetForeground(); got != lipgloss.Color("8") {
		t.Fatalf("expected disabled foreground, got %#v", got)
	}
	style = th.StyleFor(RoleCommitAuthor, true, false, true)
	if got := style.GetForeground(); got != lipgloss.Color("2") {
		t.Fatalf("expected author foreground, got %#v", got)
	}
}

func TestParseRoleRoundTrip(t *testing.T) {
	for role := range roleNames {
		got, err := ParseRole(strings.ToUpper(role.String()))
		if err != nil {
			t.Fatalf("ParseRole(%s): %v", role, err)
		}
		if got != role {
			t.Fatalf("got %s want %s", got, role)
		}
	}
	if _, err := ParseRole("nope"); err == nil {
		t.Fatal("expected unknown role error")
	}
}

func TestThemeDiffApplyRoundTrip(t *testing.T) {
	value := Default()
	value.SelectionBg = "#336699"
	value.UseSelectionFg = false
	value.LineBreakSymbol = "↵"

	p := Kind.DiffDefault(value)
	if p.SelectionBg == nil || p.UseSelectionFg == nil || p.LineBreakSymbol == nil {
		t.Fatalf("expected changed fields in patch: %+v", p)
	}
	if p.CommandFg != nil {
		t.Fatal("unchanged field present in patch")
	}
	if got := Kind.Resolve(p); got != value {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", got, value)
	}
	if !Kind.DiffDefault(Default()).IsEmpty() {
		t.Fatal("diff of default should be empty")
	}
}

func TestThemeFileRoundTrip(t *testing.T) {
	value := Default()
	value.BranchFg = "lightblue"
	data, err := Kind.Encode(value)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(string(data), "branch_fg") || !strings.Contains(string(data), "lightblue") {
		t.Fatalf("unexpected patch file:\n%s", data)
	}
	got, err := Kind.Decode("theme.toml", data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != value {
		t.Fatalf("got %+v", got)
	}
}

func TestLegacyThemeDecodes(t *testing.T) {
	value := Default()
	value.TagFg = "cyan"
	data, err := patch.EncodeLegacy(value)
	if err != nil {
		t.Fatalf("EncodeLegacy: %v", err)
	}
	got, err := Kind.DecodeLegacy("theme.toml", data)
	if err != nil {
		t.Fatalf("DecodeLegacy: %v", err)
	}
	if got != value {
		t.Fatalf("got %+v", got)
	}
}
