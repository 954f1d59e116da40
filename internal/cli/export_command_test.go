package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-planner/internal/api"
	apperrors "task-planner/internal/errors"
	"task-planner/internal/services"
)

func TestExportCommand_Execute(t *testing.T) {
	planner := setupTestPlanner(t)
	s := seedPlanner(t, planner, true)
	ctx := context.Background()

	task := seedTask(t, planner, s.project.ID, "Write report", 3)
	_, err := planner.Tasks().AssignTask(ctx, services.AssignTaskRequest{TaskID: task.ID, MemberID: s.member.ID})
	require.NoError(t, err)
	seedTask(t, planner, s.project.ID, "Review, then ship", 5)

	t.Run("csv", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, NewExportCommand(planner, &out).Execute(ctx, FormatCSV))

		records, err := csv.NewReader(&out).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, []string{"Task ID", "Project", "Title", "Status", "Due Date", "Assignee", "Created At", "Completed At"}, records[0])

		byTitle := map[string][]string{}
		for _, row := range records[1:] {
			byTitle[row[2]] = row
		}
		report := byTitle["Write report"]
		require.NotNil(t, report)
		assert.Equal(t, task.ID.String(), report[0])
		assert.Equal(t, "Apollo", report[1])
		assert.Equal(t, "Planned", report[3])
		assert.Equal(t, "2025-06-04", report[4])
		assert.Equal(t, "Ada Lovelace", report[5])
		assert.Equal(t, "", report[7])

		review := byTitle["Review, then ship"]
		require.NotNil(t, review)
		assert.Equal(t, "", review[5])
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, NewExportCommand(planner, &out).Execute(ctx, FormatJSON))

		var boards []api.ProjectBoard
		require.NoError(t, json.Unmarshal(out.Bytes(), &boards))
		require.Len(t, boards, 1)
		assert.Equal(t, "Apollo", boards[0].Project.Name)
		assert.Len(t, boards[0].Tasks, 2)
	})

	t.Run("unsupported format", func(t *testing.T) {
		err := NewExportCommand(planner, &bytes.Buffer{}).Execute(ctx, "xml")
		require.Error(t, err)
		assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))
		assert.Contains(t, err.Error(), "unsupported format")
	})
}

func TestExportCommand_EmptyPlanner(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewExportCommand(setupTestPlanner(t), &out).Execute(context.Background(), FormatCSV))
	assert.Equal(t, "Task ID,Project,Title,Status,Due Date,Assignee,Created At,Completed At\n", out.String())
}

func TestRootCommand_Export(t *testing.T) {
	h := newHarness(t)
	projectID := idFrom(t, h.mustRun("project", "create", "Apollo"))
	h.mustRun("task", "create", projectID.String(), "Write report", "2025-06-04")

	out := h.mustRun("export")
	assert.Contains(t, out, "Apollo,Write report,Planned,2025-06-04")

	out = h.mustRun("export", "--format", "json")
	assert.Contains(t, out, `"title": "Write report"`)

	_, err := h.run("export", "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, "failed to export: invalid input for format: unsupported format", err.Error())
}
