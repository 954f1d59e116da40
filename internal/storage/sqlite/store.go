// Package sqlite stores the planner document in a SQLite database, one table
// per collection. Row order is kept in a position column so a load returns
// records in the order they were written.
package sqlite

import (
	"context"
	"database/sql"
	"sync"

	apperrors "task-planner/internal/errors"
	"task-planner/internal/logging"
	"task-planner/internal/storage"
	"task-planner/internal/storage/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// Store is a storage.DocumentStore backed by SQLite
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

var _ storage.DocumentStore = (*Store)(nil)

// New opens the database at dbPath and runs pending migrations
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, apperrors.NewStorageError("open database", err)
	}
	// Each connection to :memory: is a separate database, and SQLite
	// serializes writers anyway.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, apperrors.NewStorageError("run migrations", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads every collection
func (s *Store) Load(ctx context.Context) (*storage.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, apperrors.FromContext("load document", err)
	}
	return readDocument(ctx, s.db)
}

// Replace overwrites every collection with doc in one transaction
func (s *Store) Replace(ctx context.Context, doc *storage.Document) error {
	return s.Update(ctx, func(current *storage.Document) error {
		*current = *doc.Clone()
		return nil
	})
}

// Update loads the document, applies fn and writes the result back in one
// transaction. Nothing is written if fn fails.
func (s *Store) Update(ctx context.Context, fn func(doc *storage.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return apperrors.FromContext("update document", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin transaction", err)
	}
	defer tx.Rollback()

	doc, err := readDocument(ctx, tx)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	if err := writeDocument(ctx, tx, doc.Normalize()); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit transaction", err)
	}
	logging.Debugf("sqlite: wrote %d projects, %d tasks, %d members\n",
		len(doc.Projects), len(doc.Tasks), len(doc.Members))
	return nil
}

func readDocument(ctx context.Context, q querier) (*storage.Document, error) {
	projects, err := QueryMultiple(ctx, q, `
	SELECT id, name, description, created_at
	FROM projects
	ORDER BY position ASC`, ScanProjects, "projects")
	if err != nil {
		return nil, err
	}

	links, err := QueryMultiple(ctx, q, `
	SELECT project_id, member_id
	FROM project_members
	ORDER BY project_id, position ASC`, scanProjectMembers, "project members")
	if err != nil {
		return nil, err
	}
	byProject := make(map[string][]string)
	for _, link := range links {
		byProject[link.ProjectID] = append(byProject[link.ProjectID], link.MemberID)
	}
	for i := range projects {
		if ids, ok := byProject[projects[i].ID]; ok {
			projects[i].MemberIDs = ids
		}
	}

	tasks, err := QueryMultiple(ctx, q, `
	SELECT id, project_id, title, description, due_date, status, assigned_member_id, created_at, completed_at
	FROM tasks
	ORDER BY position ASC`, ScanTasks, "tasks")
	if err != nil {
		return nil, err
	}

	members, err := QueryMultiple(ctx, q, `
	SELECT id, full_name, email, joined_at
	FROM members
	ORDER BY position ASC`, ScanMembers, "members")
	if err != nil {
		return nil, err
	}

	doc := &storage.Document{Projects: projects, Tasks: tasks, Members: members}
	return doc.Normalize(), nil
}

func writeDocument(ctx context.Context, q querier, doc *storage.Document) error {
	for _, table := range []string{"project_members", "projects", "tasks", "members"} {
		if _, err := q.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return HandleDatabaseError("clear "+table, err)
		}
	}

	var projectRows, memberLinks [][]any
	for i, p := range doc.Projects {
		projectRows = append(projectRows, []any{p.ID, i, p.Name, p.Description, p.CreatedAt})
		for j, memberID := range p.MemberIDs {
			memberLinks = append(memberLinks, []any{p.ID, j, memberID})
		}
	}
	if err := ExecuteBatch(ctx, q, `
	INSERT INTO projects (id, position, name, description, created_at)
	VALUES (?, ?, ?, ?, ?)`, "projects", projectRows); err != nil {
		return err
	}
	if err := ExecuteBatch(ctx, q, `
	INSERT INTO project_members (project_id, position, member_id)
	VALUES (?, ?, ?)`, "project members", memberLinks); err != nil {
		return err
	}

	taskRows := make([][]any, 0, len(doc.Tasks))
	for i, t := range doc.Tasks {
		taskRows = append(taskRows, []any{
			t.ID, i, t.ProjectID, t.Title, t.Description, t.DueDate, t.Status,
			nullString(t.AssignedMemberID), t.CreatedAt, nullString(t.CompletedAt),
		})
	}
	if err := ExecuteBatch(ctx, q, `
	INSERT INTO tasks (id, position, project_id, title, description, due_date, status, assigned_member_id, created_at, completed_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, "tasks", taskRows); err != nil {
		return err
	}

	memberRows := make([][]any, 0, len(doc.Members))
	for i, m := range doc.Members {
		memberRows = append(memberRows, []any{m.ID, i, m.FullName, m.Email, m.JoinedAt})
	}
	return ExecuteBatch(ctx, q, `
	INSERT INTO members (id, position, full_name, email, joined_at)
	VALUES (?, ?, ?, ?, ?)`, "members", memberRows)
}
