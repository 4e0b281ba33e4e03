package task

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowmaster/internal/app"
	"github.com/thenoetrevino/flowmaster/internal/cli"
	"github.com/thenoetrevino/flowmaster/internal/cli/render"
	"github.com/thenoetrevino/flowmaster/internal/cli/styles"
	"github.com/thenoetrevino/flowmaster/internal/models"
)

const showWidth = 72

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show task details",
		Long:  "Display all details of a task including its stage, dates, assignees and rendered description.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().String("id", "", "Task ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	a, formatter, err := cli.RequireAuth(cmd)
	if err != nil {
		return err
	}

	taskID, _ := cmd.Flags().GetString("id")
	if len(args) > 0 {
		taskID = args[0]
	}
	if taskID == "" {
		return formatter.Fail(cli.ExitUsage, "INVALID_TASK_ID", "task ID is required",
			"Usage: flowmaster task show <id> or flowmaster task show --id=<id>")
	}

	task, err := cli.RequireTask(a, formatter, taskID)
	if err != nil {
		return err
	}

	return formatter.Success(task, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, detail(a, task))
		return err
	})
}

func detail(a *app.App, t *models.Task) string {
	var b strings.Builder

	title := t.Title
	if title == "" {
		title = "(untitled)"
	}
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(t.ID))
	b.WriteString("\n\n")

	location := t.StageID
	if st, ok := a.Store.Stage(t.StageID); ok {
		location = st.Title
	}
	if wf, ok := a.Store.Workflow(t.WorkflowID); ok {
		location = wf.Name + " / " + location
	}
	field(&b, "Stage:", location)
	field(&b, "Start:", orDash(t.StartDate))
	field(&b, "Due:", orDash(t.DueDate))
	field(&b, "Assigned:", orDash(assignees(a, t.AssignedUsers)))
	if len(t.Attachments) > 0 {
		names := make([]string, len(t.Attachments))
		for i, att := range t.Attachments {
			names[i] = att.Name
		}
		field(&b, "Files:", strings.Join(names, ", "))
	}
	field(&b, "Updated:", t.UpdatedAt.Local().Format("Jan 2, 2006 3:04 PM"))

	if strings.TrimSpace(t.Description) != "" {
		b.WriteString("\n")
		b.WriteString(styles.SectionStyle.Render("Description"))
		b.WriteString("\n")
		b.WriteString(render.Description(t.Description, showWidth))
	}

	return styles.CardStyle.Width(showWidth).Render(b.String())
}

func field(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s %s\n", styles.LabelStyle.Render(label), styles.ValueStyle.Render(value))
}

func assignees(a *app.App, ids []string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if u, ok := a.Store.User(id); ok {
			names = append(names, u.Name)
			continue
		}
		names = append(names, id)
	}
	return strings.Join(names, ", ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
