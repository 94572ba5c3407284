// Package infrastructure assembles the systems every domain package depends on.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/image-processing/internal/config"
	"github.com/JaimeStill/image-processing/internal/migrations"
	"github.com/JaimeStill/image-processing/pkg/database"
	"github.com/JaimeStill/image-processing/pkg/lifecycle"
	"github.com/JaimeStill/image-processing/pkg/logging"
	"github.com/JaimeStill/image-processing/pkg/storage"
)

// Infrastructure holds lifecycle coordination, logging, the connection pool,
// and the upload blob store.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
}

// New creates an Infrastructure from the application configuration.
// Nothing connects or touches disk until Start.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, migrations.FS, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Storage:   store,
	}, nil
}

// Start brings up the database and storage and registers them with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := i.Storage.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}
	return nil
}
