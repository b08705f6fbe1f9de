// Package adapter provides an HTTP client for the price catalog server's
// JSON API. It is used by napctl to drive the server from the command line.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use errors.Is for transport-agnostic
// error handling (e.g. ErrNotFound for 404).
package adapter

import (
	"context"

	"github.com/gchalakovmmi/nap/models"
)

// ServerAdapter defines the client-side view of the server's JSON API.
// Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// GetGroups lists all groups ordered by name.
	GetGroups(ctx context.Context) ([]models.Group, error)

	// CreateGroup creates a group and returns it with its assigned ID.
	CreateGroup(ctx context.Context, name string) (models.Group, error)

	// GetGroup returns one group by ID.
	GetGroup(ctx context.Context, groupID int64) (models.Group, error)

	// RenameGroup changes a group's name.
	RenameGroup(ctx context.Context, groupID int64, newName string) error

	// DeleteGroup removes a group and its memberships.
	DeleteGroup(ctx context.Context, groupID int64) error

	// GetGroupItems returns the catalog item IDs linked to a group.
	GetGroupItems(ctx context.Context, groupID int64) ([]int64, error)

	// AddItem links a catalog item to a group.
	AddItem(ctx context.Context, groupID, itemID int64) error

	// RemoveItem unlinks a catalog item from a group.
	RemoveItem(ctx context.Context, groupID, itemID int64) error

	// Search runs a catalog search and returns one page of results.
	Search(ctx context.Context, query string, page int) (models.SearchResponse, error)

	// GetSettings returns the stored settings.
	GetSettings(ctx context.Context) (models.SettingsResponse, error)

	// SetDBPath updates the catalog table path setting.
	SetDBPath(ctx context.Context, path string) error

	// DownloadExport fetches the Word export and returns its filename and
	// content.
	DownloadExport(ctx context.Context) (filename string, content []byte, err error)
}
