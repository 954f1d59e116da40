// Package jsonfile stores the planner document as a single indented JSON file.
package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	apperrors "task-planner/internal/errors"
	"task-planner/internal/logging"
	"task-planner/internal/storage"
)

// Store is a storage.DocumentStore backed by one JSON file. A single mutex
// guards every read and write of the file.
type Store struct {
	mu       sync.Mutex
	path     string
	filePerm os.FileMode
}

var _ storage.DocumentStore = (*Store)(nil)

// New creates the parent directory of path if needed and returns a store.
// The file itself is created on first write.
func New(path string, dirPerm os.FileMode) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return nil, apperrors.NewStorageError("create data directory", err)
		}
	}
	return &Store{path: path, filePerm: 0o644}, nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored document, or an empty document if the file does not exist yet.
func (s *Store) Load(ctx context.Context) (*storage.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

// Replace overwrites the file with doc.
func (s *Store) Replace(ctx context.Context, doc *storage.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx, doc)
}

// Update runs a read-modify-write cycle under the store lock.
func (s *Store) Update(ctx context.Context, fn func(doc *storage.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.loadLocked(ctx)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.saveLocked(ctx, doc)
}

// Close is a no-op; the file is not held open between calls.
func (s *Store) Close() error {
	return nil
}

func (s *Store) loadLocked(ctx context.Context) (*storage.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.FromContext("load document", err)
	}

	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return storage.NewDocument(), nil
		}
		return nil, apperrors.NewStorageError("read document", err)
	}
	if len(b) == 0 {
		return storage.NewDocument(), nil
	}

	var doc storage.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, apperrors.NewStorageError("decode document", err)
	}
	logging.Debugf("jsonfile: loaded %d projects, %d tasks, %d members from %s\n",
		len(doc.Projects), len(doc.Tasks), len(doc.Members), s.path)
	return doc.Normalize(), nil
}

// saveLocked writes to a temp file in the same directory and renames it over
// the target, so a failed write leaves the previous document in place.
func (s *Store) saveLocked(ctx context.Context, doc *storage.Document) error {
	if err := ctx.Err(); err != nil {
		return apperrors.FromContext("save document", err)
	}

	b, err := json.MarshalIndent(doc.Clone().Normalize(), "", "  ")
	if err != nil {
		return apperrors.NewStorageError("encode document", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return apperrors.NewStorageError("create temp file", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return apperrors.NewStorageError("write document", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return apperrors.NewStorageError("sync document", err)
	}
	if err := tmp.Close(); err != nil {
		return apperrors.NewStorageError("close document", err)
	}
	if err := os.Chmod(tmpName, s.filePerm); err != nil {
		return apperrors.NewStorageError("chmod document", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return apperrors.NewStorageError("replace document", err)
	}
	return nil
}
