package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	xansi "github.com/charmbracelet/x/ansi"

	"lazyhf/internal/keys"
	"lazyhf/internal/theme"
)

var (
	rendererMu     sync.Mutex
	renderersByKey = map[rendererKey]*glamour.TermRenderer{}
)

type rendererKey struct {
	width   int
	heading string
}

// renderMarkdown renders input for a terminal of the given width. Rendering
// failures fall back to the raw text.
func renderMarkdown(input string, width int, th theme.Theme) string {
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := getRenderer(width, th.BlockTitleFocused.Code())
	if r == nil {
		return input
	}
	out, err := r.Render(input)
	if err != nil {
		return input
	}
	out = xansi.Hardwrap(strings.TrimRight(out, "\n"), width, true)
	return strings.TrimRight(out, "\n")
}

func getRenderer(width int, heading string) *glamour.TermRenderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	key := rendererKey{width: width, heading: heading}
	if r, ok := renderersByKey[key]; ok {
		return r
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(buildStyleConfig(heading)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderersByKey[key] = r
	return r
}

func buildStyleConfig(heading string) glamouransi.StyleConfig {
	base := styles.DarkStyleConfig
	base.Document.StylePrimitive.BlockPrefix = ""
	base.Document.StylePrimitive.BlockSuffix = ""
	zero := uint(0)
	base.Document.Margin = &zero
	if heading != "" {
		base.Heading.StylePrimitive.Color = &heading
	}
	return base
}

// helpMarkdown lists every binding with its hint and its text form.
func helpMarkdown(kc *keys.KeyConfig) string {
	var b strings.Builder
	b.WriteString("# Key bindings\n\n")
	b.WriteString("| Key | Binding | Action |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, slot := range kc.Keys.Slots() {
		desc := slotDescriptions[slot.Name]
		if desc == "" {
			desc = slot.Name
		}
		fmt.Fprintf(&b, "| %s | `%s` | %s |\n",
			escapeCell(kc.Hint(slot.Event)), escapeCell(slot.Event.String()), escapeCell(desc))
	}
	return b.String()
}

func escapeCell(text string) string {
	text = strings.ReplaceAll(text, "|", "\\|")
	return strings.ReplaceAll(text, "`", "\\`")
}
