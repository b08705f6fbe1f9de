package store

import (
	"context"

	"github.com/gchalakovmmi/nap/models"
)

// GroupRepository persists named item groups and their membership.
type GroupRepository interface {
	// CreateGroup inserts a new group and returns it with its assigned ID.
	// Returns ErrGroupAlreadyExists if the name is taken.
	CreateGroup(ctx context.Context, name string) (models.Group, error)

	// GetGroups returns all groups ordered by name.
	GetGroups(ctx context.Context) ([]models.Group, error)

	// GetGroupByID returns one group or ErrGroupNotFound.
	GetGroupByID(ctx context.Context, groupID int64) (models.Group, error)

	// RenameGroup changes a group's name. Returns ErrGroupAlreadyExists if
	// the new name is taken and ErrGroupNotFound if the group does not exist.
	RenameGroup(ctx context.Context, groupID int64, newName string) error

	// DeleteGroup removes a group and all of its memberships in one
	// transaction. Deleting a missing group is not an error.
	DeleteGroup(ctx context.Context, groupID int64) error

	// AddItem links an item to a group. Returns ErrItemAlreadyInGroup when
	// the pair already exists.
	AddItem(ctx context.Context, groupID, itemID int64) error

	// RemoveItem unlinks an item from a group. Removing a missing pair is
	// not an error.
	RemoveItem(ctx context.Context, groupID, itemID int64) error

	// GetItems returns the item IDs linked to a group, in insertion order.
	GetItems(ctx context.Context, groupID int64) ([]int64, error)
}

// SettingsRepository persists key/value application settings.
type SettingsRepository interface {
	// Get returns the stored value for key or ErrSettingNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
