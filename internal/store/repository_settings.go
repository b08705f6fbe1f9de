package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gchalakovmmi/nap/internal/logger"
)

// settingsRepository is the SQLite-backed implementation of
// [SettingsRepository] over the "settings" key/value table.
type settingsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSettingsRepository constructs a [SettingsRepository] backed by the
// provided database connection and logger.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// Get returns the stored value for key or [ErrSettingNotFound].
func (r *settingsRepository) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	if err := r.db.QueryRowContext(ctx, selectSetting, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSettingNotFound
		}
		log.Err(err).Str("func", "*settingsRepository.Get").Str("key", key).Msg("error scanning row")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

// Set stores value under key, replacing any previous value (upsert).
func (r *settingsRepository) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, upsertSetting, key, value); err != nil {
		log.Err(err).Str("func", "*settingsRepository.Set").Str("key", key).Msg("error executing upsert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
