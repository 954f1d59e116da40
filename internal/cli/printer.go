package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"task-planner/internal/api"
	"task-planner/internal/services"
)

// Printer renders snapshots as text lines
type Printer struct {
	out        io.Writer
	dateFormat string
	verbose    bool
}

// NewPrinter creates a printer. Verbose output adds timestamps and
// member ids.
func NewPrinter(out io.Writer, dateFormat string, verbose bool) *Printer {
	return &Printer{out: out, dateFormat: dateFormat, verbose: verbose}
}

func (p *Printer) date(t time.Time) string {
	return t.Format(p.dateFormat)
}

func (p *Printer) stamp(t time.Time) string {
	return t.Format(time.RFC3339)
}

// Member prints one member line
func (p *Printer) Member(m services.MemberSnapshot) {
	fmt.Fprintf(p.out, "%s  %s <%s>\n", m.ID, m.FullName, m.Email)
	if p.verbose {
		fmt.Fprintf(p.out, "  joined: %s\n", p.stamp(m.JoinedAt))
	}
}

// Members prints every member or a placeholder
func (p *Printer) Members(members []services.MemberSnapshot) {
	if len(members) == 0 {
		fmt.Fprintln(p.out, "No members registered.")
		return
	}
	for _, m := range members {
		p.Member(m)
	}
}

// Project prints one project header
func (p *Printer) Project(project services.ProjectSnapshot) {
	fmt.Fprintf(p.out, "Project: %s (%s)\n", project.Name, project.ID)
	if project.Description != "" {
		fmt.Fprintf(p.out, "  %s\n", project.Description)
	}
	fmt.Fprintf(p.out, "  Members: %d\n", len(project.MemberIDs))
	if p.verbose {
		for _, id := range project.MemberIDs {
			fmt.Fprintf(p.out, "    - %s\n", id)
		}
		fmt.Fprintf(p.out, "  created: %s\n", p.stamp(project.CreatedAt))
	}
}

// Projects prints project headers without tasks
func (p *Printer) Projects(projects []services.ProjectSnapshot) {
	if len(projects) == 0 {
		fmt.Fprintln(p.out, "No projects.")
		return
	}
	for _, project := range projects {
		p.Project(project)
	}
}

// Task prints one task line, resolving the assignee through names
func (p *Printer) Task(task services.TaskSnapshot, names map[uuid.UUID]string) {
	fmt.Fprintf(p.out, "    - %s [%s] due %s (%s)%s\n",
		task.Title, task.Status, p.date(task.DueDate), task.ID, p.assignee(task.AssignedMemberID, names))
	if p.verbose {
		fmt.Fprintf(p.out, "      created: %s\n", p.stamp(task.CreatedAt))
		if task.CompletedAt != nil {
			fmt.Fprintf(p.out, "      completed: %s\n", p.stamp(*task.CompletedAt))
		}
	}
}

func (p *Printer) assignee(id *uuid.UUID, names map[uuid.UUID]string) string {
	if id == nil {
		return ""
	}
	return " -> " + assigneeName(id, names)
}

// Tasks prints a task list under a heading or a placeholder
func (p *Printer) Tasks(tasks []services.TaskSnapshot, names map[uuid.UUID]string) {
	if len(tasks) == 0 {
		fmt.Fprintln(p.out, "  No tasks.")
		return
	}
	fmt.Fprintln(p.out, "  Tasks:")
	for _, task := range tasks {
		p.Task(task, names)
	}
}

// Boards prints every project followed by its tasks
func (p *Printer) Boards(boards []api.ProjectBoard, names map[uuid.UUID]string) {
	if len(boards) == 0 {
		fmt.Fprintln(p.out, "No projects.")
		return
	}
	for _, board := range boards {
		p.Project(board.Project)
		p.Tasks(board.Tasks, names)
	}
}

// Upcoming prints the upcoming-work listing
func (p *Printer) Upcoming(rows []services.UpcomingTaskSummary, days int) {
	if len(rows) == 0 {
		fmt.Fprintf(p.out, "No tasks due in the next %d days.\n", days)
		return
	}
	fmt.Fprintln(p.out, "Upcoming tasks:")
	for _, row := range rows {
		assigned := "(unassigned)"
		if row.AssignedToName != nil {
			assigned = "(" + *row.AssignedToName + ")"
		}
		fmt.Fprintf(p.out, "[%s] %s: %s %s - %s\n", p.date(row.DueDate), row.ProjectName, row.Title, assigned, row.Status)
	}
}
