package cli

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"task-planner/internal/api"
	"task-planner/internal/errors"
)

// Export formats
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ExportCommand writes every project and task in a machine-readable format
type ExportCommand struct {
	planner *api.Planner
	out     io.Writer
}

// NewExportCommand creates a new export command handler
func NewExportCommand(planner *api.Planner, out io.Writer) *ExportCommand {
	return &ExportCommand{planner: planner, out: out}
}

// Execute exports in the given format
func (c *ExportCommand) Execute(ctx context.Context, format string) error {
	switch format {
	case FormatCSV:
		return c.outputCSV(ctx)
	case FormatJSON:
		return c.outputJSON(ctx)
	default:
		return errors.NewInvalidInputError("format", format, "unsupported format")
	}
}

// outputCSV writes one row per task
func (c *ExportCommand) outputCSV(ctx context.Context) error {
	boards, err := c.planner.ProjectBoards(ctx)
	if err != nil {
		return err
	}
	names, err := c.planner.MemberNames(ctx)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(c.out)

	header := []string{"Task ID", "Project", "Title", "Status", "Due Date", "Assignee", "Created At", "Completed At"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, board := range boards {
		for _, task := range board.Tasks {
			var completedAt string
			if task.CompletedAt != nil {
				completedAt = task.CompletedAt.Format(time.RFC3339)
			}
			row := []string{
				task.ID.String(),
				board.Project.Name,
				task.Title,
				task.Status.String(),
				task.DueDate.Format("2006-01-02"),
				assigneeName(task.AssignedMemberID, names),
				task.CreatedAt.Format(time.RFC3339),
				completedAt,
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// outputJSON writes the project boards as an indented JSON array
func (c *ExportCommand) outputJSON(ctx context.Context) error {
	boards, err := c.planner.ProjectBoards(ctx)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(c.out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(boards); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

func assigneeName(id *uuid.UUID, names map[uuid.UUID]string) string {
	if id == nil {
		return ""
	}
	if name, ok := names[*id]; ok {
		return name
	}
	return id.String()
}

func (r *RootCommand) newExportCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export projects and tasks",
		Long: `Export all tasks with their project in the specified format.

Supported formats:
  csv  - one row per task
  json - projects with their tasks

Example:
  tp export --format csv > tasks.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			if err := NewExportCommand(r.planner, r.out).Execute(ctx, format); err != nil {
				return r.errHandler.Handle("export", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", FormatCSV, "Output format: csv or json")
	return cmd
}
