package http

import (
	"context"

	"github.com/gchalakovmmi/nap/models"
)

// catalogServiceMock implements service.CatalogService.
type catalogServiceMock struct {
	searchFn func(ctx context.Context, query string, page int) (models.SearchResponse, error)
}

func (m *catalogServiceMock) Items(context.Context) ([]models.Item, error) { return nil, nil }

func (m *catalogServiceMock) Search(ctx context.Context, query string, page int) (models.SearchResponse, error) {
	return m.searchFn(ctx, query, page)
}

func (m *catalogServiceMock) Refresh(context.Context) error { return nil }

func (m *catalogServiceMock) Invalidate() {}

// groupServiceMock implements service.GroupService.
type groupServiceMock struct {
	createGroupFn  func(ctx context.Context, name string) (models.Group, error)
	getGroupsFn    func(ctx context.Context) ([]models.Group, error)
	getGroupByIDFn func(ctx context.Context, groupID int64) (models.Group, error)
	renameGroupFn  func(ctx context.Context, groupID int64, newName string) error
	deleteGroupFn  func(ctx context.Context, groupID int64) error
	addItemFn      func(ctx context.Context, groupID, itemID int64) error
	removeItemFn   func(ctx context.Context, groupID, itemID int64) error
	getItemsFn     func(ctx context.Context, groupID int64) ([]int64, error)
}

func (m *groupServiceMock) CreateGroup(ctx context.Context, name string) (models.Group, error) {
	return m.createGroupFn(ctx, name)
}

func (m *groupServiceMock) GetGroups(ctx context.Context) ([]models.Group, error) {
	return m.getGroupsFn(ctx)
}

func (m *groupServiceMock) GetGroupByID(ctx context.Context, groupID int64) (models.Group, error) {
	return m.getGroupByIDFn(ctx, groupID)
}

func (m *groupServiceMock) RenameGroup(ctx context.Context, groupID int64, newName string) error {
	return m.renameGroupFn(ctx, groupID, newName)
}

func (m *groupServiceMock) DeleteGroup(ctx context.Context, groupID int64) error {
	return m.deleteGroupFn(ctx, groupID)
}

func (m *groupServiceMock) AddItem(ctx context.Context, groupID, itemID int64) error {
	return m.addItemFn(ctx, groupID, itemID)
}

func (m *groupServiceMock) RemoveItem(ctx context.Context, groupID, itemID int64) error {
	return m.removeItemFn(ctx, groupID, itemID)
}

func (m *groupServiceMock) GetItems(ctx context.Context, groupID int64) ([]int64, error) {
	return m.getItemsFn(ctx, groupID)
}

// settingsServiceMock implements service.SettingsService.
type settingsServiceMock struct {
	dbPathFn    func(ctx context.Context) (string, error)
	setDBPathFn func(ctx context.Context, path string) error
}

func (m *settingsServiceMock) DBPath(ctx context.Context) (string, error) {
	return m.dbPathFn(ctx)
}

func (m *settingsServiceMock) SetDBPath(ctx context.Context, path string) error {
	return m.setDBPathFn(ctx, path)
}

// exportServiceMock implements service.ExportService.
type exportServiceMock struct {
	buildDocumentFn func(ctx context.Context) (string, []byte, error)
}

func (m *exportServiceMock) BuildDocument(ctx context.Context) (string, []byte, error) {
	return m.buildDocumentFn(ctx)
}
