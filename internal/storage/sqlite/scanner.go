package sqlite

import (
	"database/sql"

	"task-planner/internal/storage"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...any) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// projectMember is one row of the project_members table
type projectMember struct {
	ProjectID string
	MemberID  string
}

// ScanProject scans a project row without its member ids
func ScanProject(scanner Scanner) (storage.ProjectRecord, error) {
	var p storage.ProjectRecord
	if err := scanner.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt); err != nil {
		return storage.ProjectRecord{}, err
	}
	p.MemberIDs = []string{}
	return p, nil
}

// ScanTask scans a task row; NULL optional columns become nil pointers
func ScanTask(scanner Scanner) (storage.TaskRecord, error) {
	var t storage.TaskRecord
	var assigned, completed sql.NullString

	err := scanner.Scan(
		&t.ID,
		&t.ProjectID,
		&t.Title,
		&t.Description,
		&t.DueDate,
		&t.Status,
		&assigned,
		&t.CreatedAt,
		&completed,
	)
	if err != nil {
		return storage.TaskRecord{}, err
	}

	if assigned.Valid {
		t.AssignedMemberID = &assigned.String
	}
	if completed.Valid {
		t.CompletedAt = &completed.String
	}
	return t, nil
}

// ScanMember scans a member row
func ScanMember(scanner Scanner) (storage.MemberRecord, error) {
	var m storage.MemberRecord
	if err := scanner.Scan(&m.ID, &m.FullName, &m.Email, &m.JoinedAt); err != nil {
		return storage.MemberRecord{}, err
	}
	return m, nil
}

func scanProjectMember(scanner Scanner) (projectMember, error) {
	var pm projectMember
	if err := scanner.Scan(&pm.ProjectID, &pm.MemberID); err != nil {
		return projectMember{}, err
	}
	return pm, nil
}

// ScanProjects scans multiple projects from database rows
func ScanProjects(rows Rows) ([]storage.ProjectRecord, error) {
	return scanAll(rows, ScanProject)
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]storage.TaskRecord, error) {
	return scanAll(rows, ScanTask)
}

// ScanMembers scans multiple members from database rows
func ScanMembers(rows Rows) ([]storage.MemberRecord, error) {
	return scanAll(rows, ScanMember)
}

func scanProjectMembers(rows Rows) ([]projectMember, error) {
	return scanAll(rows, scanProjectMember)
}

func scanAll[T any](rows Rows, scan func(Scanner) (T, error)) ([]T, error) {
	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
