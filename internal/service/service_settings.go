package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gchalakovmmi/nap/internal/logger"
	"github.com/gchalakovmmi/nap/internal/store"
)

// settingsService is the concrete implementation of SettingsService.
type settingsService struct {
	settings store.SettingsRepository

	// catalog is notified when the table path changes so its cache never
	// serves records from the previous file.
	catalog CatalogInvalidator

	logger *logger.Logger
}

// NewSettingsService constructs a SettingsService that invalidates catalog on
// every db_path update.
func NewSettingsService(settings store.SettingsRepository, catalog CatalogInvalidator, logger *logger.Logger) SettingsService {
	return &settingsService{
		settings: settings,
		catalog:  catalog,
		logger:   logger,
	}
}

func (s *settingsService) DBPath(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	path, err := s.settings.Get(ctx, dbPathKey)
	if errors.Is(err, store.ErrSettingNotFound) {
		return "", nil
	}
	if err != nil {
		log.Err(err).Msg("reading db_path setting ended with error")
		return "", fmt.Errorf("reading db_path setting ended with error: %w", err)
	}

	return path, nil
}

func (s *settingsService) SetDBPath(ctx context.Context, path string) error {
	log := logger.FromContext(ctx)

	if err := s.settings.Set(ctx, dbPathKey, path); err != nil {
		log.Err(err).Str("path", path).Msg("storing db_path setting ended with error")
		return fmt.Errorf("storing db_path setting ended with error: %w", err)
	}

	s.catalog.Invalidate()
	log.Info().Str("path", path).Msg("catalog table path updated")
	return nil
}
