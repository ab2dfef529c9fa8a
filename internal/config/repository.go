package config

import (
	"context"
	"os"
	"path/filepath"

	"todo/internal/errors"
	"todo/internal/repository/sqlite"
)

// CreateRepository opens the SQLite repository the configuration points at,
// creating its directory first when needed
func CreateRepository(ctx context.Context, config *Config) (sqlite.Repository, error) {
	dbPath := config.GetDatabasePath()

	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, os.FileMode(config.Database.DirPermissions)); err != nil {
			return nil, errors.NewStorageUnavailableError(dbPath, err)
		}
	}

	repo, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return nil, err
	}

	return repo, nil
}
