package service

import (
	"context"

	"github.com/gchalakovmmi/nap/models"
)

// CatalogService serves the Paradox price catalog through a TTL cache.
type CatalogService interface {
	// Items returns the current catalog snapshot, rereading the table file
	// when the cached one has expired. An unreadable table yields an empty
	// catalog, not an error; the failure is logged.
	Items(ctx context.Context) ([]models.Item, error)

	// Search filters the catalog by a case-insensitive substring query and
	// returns one page of results. An empty query matches everything.
	Search(ctx context.Context, query string, page int) (models.SearchResponse, error)

	// Refresh rereads the table file unconditionally and replaces the cached
	// snapshot. Unlike Items it reports read failures to the caller.
	Refresh(ctx context.Context) error

	// Invalidate drops the cached snapshot so the next read hits the file.
	Invalidate()
}

// GroupService manages named item groups and their membership.
type GroupService interface {
	CreateGroup(ctx context.Context, name string) (models.Group, error)
	GetGroups(ctx context.Context) ([]models.Group, error)
	GetGroupByID(ctx context.Context, groupID int64) (models.Group, error)
	RenameGroup(ctx context.Context, groupID int64, newName string) error
	DeleteGroup(ctx context.Context, groupID int64) error
	AddItem(ctx context.Context, groupID, itemID int64) error
	RemoveItem(ctx context.Context, groupID, itemID int64) error
	GetItems(ctx context.Context, groupID int64) ([]int64, error)
}

// SettingsService exposes the persisted application settings.
type SettingsService interface {
	// DBPath returns the stored catalog table path, or the empty string when
	// none has been saved yet.
	DBPath(ctx context.Context) (string, error)

	// SetDBPath stores a new catalog table path and invalidates the catalog
	// cache so the next read uses it.
	SetDBPath(ctx context.Context, path string) error
}

// ExportService renders all groups into the price protocol appendix.
type ExportService interface {
	// BuildDocument composes the Word document and returns its download
	// filename and content. Returns ErrNoGroupsFound when no groups exist.
	BuildDocument(ctx context.Context) (filename string, content []byte, err error)
}

// CatalogInvalidator is the slice of CatalogService the settings service
// needs: dropping the cache after the table path changes.
type CatalogInvalidator interface {
	Invalidate()
}
