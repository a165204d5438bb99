package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/teacher-dashboard/internal/config"
	"github.com/MKhiriev/teacher-dashboard/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	StudentRepository StudentRepository
}

// NewStorages opens the SQLite database described by cfg, runs the embedded
// migrations, and wires the repositories on top of the live connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		StudentRepository: NewStudentRepository(db, log),
	}, nil
}
