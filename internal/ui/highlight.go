package ui

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter renders palette JSON with syntax colors for terminal
// display.
type Highlighter struct {
	style *chroma.Style
}

// NewHighlighter creates a highlighter with the default color style.
func NewHighlighter() *Highlighter {
	return &Highlighter{
		style: styles.Get("catppuccin-mocha"),
	}
}

// HighlightJSON returns source with JSON syntax highlighting applied.
// On any tokenization problem the source comes back unstyled.
func (h *Highlighter) HighlightJSON(source string) string {
	lexer := lexers.Get("json")
	if lexer == nil {
		return source
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var result strings.Builder
	for token := iterator(); token != chroma.EOF; token = iterator() {
		entry := h.style.Get(token.Type)
		if !entry.Colour.IsSet() {
			result.WriteString(token.Value)
			continue
		}
		styled := lipgloss.NewStyle().Foreground(lipgloss.Color(entry.Colour.String()))
		if entry.Bold == chroma.Yes {
			styled = styled.Bold(true)
		}
		if entry.Italic == chroma.Yes {
			styled = styled.Italic(true)
		}
		result.WriteString(styled.Render(token.Value))
	}
	return result.String()
}
