package render

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/flowmaster/internal/cli/styles"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var (
	rendererCache sync.Map // map[int]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// Description renders a task description as markdown wrapped to width.
// It falls back to the raw text if rendering fails.
func Description(description string, width int) string {
	if strings.TrimSpace(description) == "" {
		return styles.SubtitleStyle.Italic(true).Render("No description")
	}

	renderer, err := getRenderer(width)
	if err != nil {
		return description
	}
	rendered, err := renderer.Render(description)
	if err != nil {
		return description
	}
	return strings.TrimSpace(rendered)
}
