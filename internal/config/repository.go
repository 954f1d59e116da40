package config

import (
	"fmt"
	"os"
	"path/filepath"

	"task-planner/internal/logging"
	"task-planner/internal/storage"
	"task-planner/internal/storage/jsonfile"
	"task-planner/internal/storage/sqlite"
)

// CreateStore opens the document store selected by the configuration:
// testing uses an in-memory database, development a file in the working
// directory, production the configured data directory.
func CreateStore(config *Config) (storage.DocumentStore, error) {
	switch config.Application.Environment {
	case Testing:
		return CreateTestStore()
	case Development:
		return openStore(config.Storage.Backend, config.DataFilename(), os.FileMode(config.Storage.DirPermissions))
	default:
		return openStore(config.Storage.Backend, config.GetDataPath(), os.FileMode(config.Storage.DirPermissions))
	}
}

// CreateTestStore creates an in-memory store for testing
func CreateTestStore() (storage.DocumentStore, error) {
	store, err := sqlite.New(sqlite.MemoryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test store: %w", err)
	}
	return store, nil
}

func openStore(backend, path string, dirPerm os.FileMode) (storage.DocumentStore, error) {
	logging.Debugf("config: opening %s store at %s\n", backend, path)

	switch backend {
	case BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		store, err := sqlite.New(path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return store, nil
	default:
		store, err := jsonfile.New(path, dirPerm)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize data file: %w", err)
		}
		return store, nil
	}
}
