package service

import (
	"github.com/gchalakovmmi/nap/internal/config"
	"github.com/gchalakovmmi/nap/internal/logger"
	"github.com/gchalakovmmi/nap/internal/store"
)

type Services struct {
	CatalogService  CatalogService
	GroupService    GroupService
	SettingsService SettingsService
	ExportService   ExportService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	catalogService, err := NewCatalogService(storages.SettingsRepository, cfg.Catalog, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		CatalogService:  catalogService,
		GroupService:    NewGroupService(storages.GroupRepository, logger),
		SettingsService: NewSettingsService(storages.SettingsRepository, catalogService, logger),
		ExportService:   NewExportService(storages.GroupRepository, catalogService, cfg.Export, logger),
	}, nil
}
