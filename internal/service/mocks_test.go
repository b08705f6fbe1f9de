package service

import (
	"context"

	"github.com/gchalakovmmi/nap/internal/store"
	"github.com/gchalakovmmi/nap/models"
)

// settingsRepoStub is an in-memory store.SettingsRepository.
type settingsRepoStub struct {
	values map[string]string
	getErr error
	setErr error
}

func newSettingsRepoStub(values map[string]string) *settingsRepoStub {
	if values == nil {
		values = map[string]string{}
	}
	return &settingsRepoStub{values: values}
}

func (s *settingsRepoStub) Get(_ context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	value, ok := s.values[key]
	if !ok {
		return "", store.ErrSettingNotFound
	}
	return value, nil
}

func (s *settingsRepoStub) Set(_ context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	return nil
}

// groupRepoMock is a store.GroupRepository with per-method overrides.
type groupRepoMock struct {
	createGroupFn  func(ctx context.Context, name string) (models.Group, error)
	getGroupsFn    func(ctx context.Context) ([]models.Group, error)
	getGroupByIDFn func(ctx context.Context, groupID int64) (models.Group, error)
	renameGroupFn  func(ctx context.Context, groupID int64, newName string) error
	deleteGroupFn  func(ctx context.Context, groupID int64) error
	addItemFn      func(ctx context.Context, groupID, itemID int64) error
	removeItemFn   func(ctx context.Context, groupID, itemID int64) error
	getItemsFn     func(ctx context.Context, groupID int64) ([]int64, error)
}

func (m *groupRepoMock) CreateGroup(ctx context.Context, name string) (models.Group, error) {
	return m.createGroupFn(ctx, name)
}

func (m *groupRepoMock) GetGroups(ctx context.Context) ([]models.Group, error) {
	return m.getGroupsFn(ctx)
}

func (m *groupRepoMock) GetGroupByID(ctx context.Context, groupID int64) (models.Group, error) {
	return m.getGroupByIDFn(ctx, groupID)
}

func (m *groupRepoMock) RenameGroup(ctx context.Context, groupID int64, newName string) error {
	return m.renameGroupFn(ctx, groupID, newName)
}

func (m *groupRepoMock) DeleteGroup(ctx context.Context, groupID int64) error {
	return m.deleteGroupFn(ctx, groupID)
}

func (m *groupRepoMock) AddItem(ctx context.Context, groupID, itemID int64) error {
	return m.addItemFn(ctx, groupID, itemID)
}

func (m *groupRepoMock) RemoveItem(ctx context.Context, groupID, itemID int64) error {
	return m.removeItemFn(ctx, groupID, itemID)
}

func (m *groupRepoMock) GetItems(ctx context.Context, groupID int64) ([]int64, error) {
	return m.getItemsFn(ctx, groupID)
}

// catalogStub is a CatalogService serving a fixed snapshot.
type catalogStub struct {
	items       []models.Item
	itemsErr    error
	invalidated int
}

func (c *catalogStub) Items(context.Context) ([]models.Item, error) {
	return c.items, c.itemsErr
}

func (c *catalogStub) Search(context.Context, string, int) (models.SearchResponse, error) {
	return models.SearchResponse{}, nil
}

func (c *catalogStub) Refresh(context.Context) error { return nil }

func (c *catalogStub) Invalidate() { c.invalidated++ }
