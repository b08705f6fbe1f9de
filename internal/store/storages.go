package store

import (
	"github.com/gchalakovmmi/nap/internal/config"
	"github.com/gchalakovmmi/nap/internal/logger"
)

// Storages aggregates every repository the service layer needs.
type Storages struct {
	GroupRepository    GroupRepository
	SettingsRepository SettingsRepository
}

// NewStorages opens the SQLite database described by cfg, runs migrations,
// and wires all repositories over the shared connection.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewSQLiteDB(cfg.DB.Path, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		GroupRepository:    NewGroupRepository(db, logger),
		SettingsRepository: NewSettingsRepository(db, logger),
	}, nil
}
