// Package render draws workflows and tasks for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/flowmaster/internal/cli/styles"
	"github.com/thenoetrevino/flowmaster/internal/models"
)

// Column is one stage with its tasks in display order.
type Column struct {
	Stage *models.Stage
	Tasks []*models.Task
}

// BoardOptions controls board layout.
type BoardOptions struct {
	StageWidth int

	// Preview marks where a dragged task would land in PreviewStageID.
	Preview        models.TaskPreview
	PreviewStageID string
}

// Board renders a workflow's stages side by side.
func Board(wf *models.Workflow, columns []Column, opts BoardOptions) string {
	width := opts.StageWidth
	if width <= 0 {
		width = 28
	}

	header := styles.TitleStyle.Render(workflowName(wf))
	if len(columns) == 0 {
		return header + "\n" + styles.SubtitleStyle.Render("This workflow has no stages.") + "\n"
	}

	rendered := make([]string, 0, len(columns))
	for _, col := range columns {
		rendered = append(rendered, stageColumn(col, width, opts))
	}
	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, rendered...) + "\n"
}

func stageColumn(col Column, width int, opts BoardOptions) string {
	inner := width - 4
	cardStyle := styles.BoardCardStyle.Width(inner)

	var b strings.Builder
	b.WriteString(styles.StageTitleStyle.Render(truncate(col.Stage.Title, inner)))
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf(" (%d)", len(col.Tasks))))

	previewAt := -1
	if opts.Preview.Active() && opts.PreviewStageID == col.Stage.ID {
		previewAt = *opts.Preview.Index
	}

	for i, t := range col.Tasks {
		if i == previewAt {
			b.WriteString("\n" + placeholder(inner))
		}
		b.WriteString("\n" + cardStyle.Render(card(t, inner-4)))
	}
	if previewAt >= len(col.Tasks) {
		b.WriteString("\n" + placeholder(inner))
	}
	if len(col.Tasks) == 0 && previewAt < 0 {
		b.WriteString("\n" + styles.SubtitleStyle.Render("No tasks"))
	}

	return styles.StageStyle.Width(width).Render(b.String())
}

func card(t *models.Task, width int) string {
	lines := []string{truncate(t.Title, width)}
	if t.DueDate != "" && t.DueDate != "//" {
		lines = append(lines, styles.SubtitleStyle.Render("due "+t.DueDate))
	}
	lines = append(lines, styles.SubtitleStyle.Render(ShortID(t.ID)))
	return strings.Join(lines, "\n")
}

func placeholder(width int) string {
	return styles.PlaceholderStyle.Width(width).Render("drop here")
}

func workflowName(wf *models.Workflow) string {
	if wf.Name == "" {
		return "(untitled workflow)"
	}
	return wf.Name
}

// ShortID returns the first block of a UUID for compact display.
func ShortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
