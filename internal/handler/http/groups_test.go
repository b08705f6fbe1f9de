package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gchalakovmmi/nap/internal/service"
	"github.com/gchalakovmmi/nap/internal/store"
	"github.com/gchalakovmmi/nap/internal/validators"
	"github.com/gchalakovmmi/nap/models"
)

func TestGetGroups(t *testing.T) {
	router := newTestHandler(&service.Services{
		GroupService: &groupServiceMock{
			getGroupsFn: func(context.Context) ([]models.Group, error) {
				return []models.Group{{ID: 1, Name: "Кафета"}}, nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/groups", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Кафета"}]`, rec.Body.String())
}

func TestGetGroups_EmptyIsJSONArray(t *testing.T) {
	router := newTestHandler(&service.Services{
		GroupService: &groupServiceMock{
			getGroupsFn: func(context.Context) ([]models.Group, error) { return nil, nil },
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/groups", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateGroup(t *testing.T) {
	router := newTestHandler(&service.Services{
		GroupService: &groupServiceMock{
			createGroupFn: func(_ context.Context, name string) (models.Group, error) {
				return models.Group{ID: 5, Name: name}, nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/groups", `{"name":"Цигари"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":5,"name":"Цигари"}`, rec.Body.String())
}

func TestCreateGroup_MissingName(t *testing.T) {
	router := newTestHandler(&service.Services{
		GroupService: &groupServiceMock{
			createGroupFn: func(context.Context, string) (models.Group, error) {
				return models.Group{}, validators.ErrGroupNameRequired
			},
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/groups", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Group name is required"}`, rec.Body.String())
}

func TestCreateGroup_Duplicate(t *testing.T) {
	router := newTestHandler(&service.Services{
		GroupService: &groupServiceMock{
			createGroupFn: func(context.Context, string) (models.Group, error) {
				return models.Group{}, store.ErrGroupAlreadyExists
			},
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/groups", `{"name":"Цигари"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Group already exists"}`, rec.Body.String())
}

func TestCreateGroup_InvalidJSON(t *testing.T) {
	router := newTestHandler(&service.Services{GroupService: &groupServiceMock{}})

	rec := doRequest(t, router, http.MethodPost, "/groups", `{"name":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid JSON was passed"}`, rec.Body.String())
}

func TestGetGroup(t *testing.T) {
	router := newTestHandler(&service.Services{
		GroupService: &groupServiceMock{
			getGroupByIDFn: func(_ context.Context, groupID int64) (models.Group, error) {
				assert.Equal(t, int64(3), groupID)
				return models.Group{ID: 3, Name: "Чайове"}, nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/groups/3", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":3,"name":"Чайове"}`, rec.Body.String())
}

func TestGetGroup_NotFound(t *testing.T) {
	router := newTestHandler(&service.Services{
		GroupService: &groupServiceMock{
			getGroupByIDFn: func(context.Context, int64) (models.Group, error) {
				return models.Group{}, store.ErrGroupNotFound
			},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/groups/999", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Group not found"}`, rec.Body.String())
}

func TestGetGroup_NonNumericIDDoesNotMatchRoute(t *testing.T) {
	router := newTestHandler(&service.Services{GroupService: &groupServiceMock{}})

	rec := doRequest(t, router, http.MethodGet, "/groups/abc", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateGroup(t *testing.T) {
	router := newTestHandler(&service.Services{
		GroupService: &groupServiceMock{
			renameGroupFn: func(_ context.Context, groupID int64, newName string) error {
				assert.Equal(t, int64(3), groupID)
				assert.Equal(t, "Ново име", newName)
				return nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodPut, "/groups/3", `{"name":"Ново име"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Group updated"}`, rec.Body.String())
}

func TestUpdateGroup_NameConflict(t *testing.T) {
	router := newTestHandler(&service.Services{
		GroupService: &groupServiceMock{
			renameGroupFn: func(context.Context, int64, string) error {
				return store.ErrGroupAlreadyExists
			},
		},
	})

	rec := doRequest(t, router, http.MethodPut, "/groups/3", `{"name":"Заето"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Group name already exists"}`, rec.Body.String())
}

func TestDeleteGroup(t *testing.T) {
	deleted := int64(0)
	router := newTestHandler(&service.Services{
		GroupService: &groupServiceMock{
			deleteGroupFn: func(_ context.Context, groupID int64) error {
				deleted = groupID
				return nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodDelete, "/groups/7", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Group deleted"}`, rec.Body.String())
	assert.Equal(t, int64(7), deleted)
}

func TestGetGroupItems(t *testing.T) {
	router := newTestHandler(&service.Services{
		GroupService: &groupServiceMock{
			getItemsFn: func(context.Context, int64) ([]int64, error) {
				return []int64{10, 20}, nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/groups/1/items", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[10,20]`, rec.Body.String())
}

func TestGetGroupItems_EmptyIsJSONArray(t *testing.T) {
	router := newTestHandler(&service.Services{
		GroupService: &groupServiceMock{
			getItemsFn: func(context.Context, int64) ([]int64, error) { return nil, nil },
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/groups/1/items", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAddItemToGroup(t *testing.T) {
	router := newTestHandler(&service.Services{
		GroupService: &groupServiceMock{
			addItemFn: func(_ context.Context, groupID, itemID int64) error {
				assert.Equal(t, int64(1), groupID)
				assert.Equal(t, int64(42), itemID)
				return nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/groups/items", `{"group_id":1,"item_id":42}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Item added to group"}`, rec.Body.String())
}

func TestAddItemToGroup_MissingIDs(t *testing.T) {
	router := newTestHandler(&service.Services{
		GroupService: &groupServiceMock{
			addItemFn: func(context.Context, int64, int64) error {
				return validators.ErrMissingGroupOrItem
			},
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/groups/items", `{"group_id":1}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing group_id or item_id"}`, rec.Body.String())
}

func TestAddItemToGroup_Duplicate(t *testing.T) {
	router := newTestHandler(&service.Services{
		GroupService: &groupServiceMock{
			addItemFn: func(context.Context, int64, int64) error {
				return store.ErrItemAlreadyInGroup
			},
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/groups/items", `{"group_id":1,"item_id":42}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Item already in group"}`, rec.Body.String())
}

func TestRemoveItemFromGroup(t *testing.T) {
	router := newTestHandler(&service.Services{
		GroupService: &groupServiceMock{
			removeItemFn: func(_ context.Context, groupID, itemID int64) error {
				assert.Equal(t, int64(1), groupID)
				assert.Equal(t, int64(42), itemID)
				return nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodDelete, "/groups/1/items/42", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Item removed from group"}`, rec.Body.String())
}

func TestGroups_StoreFailureIsInternalError(t *testing.T) {
	router := newTestHandler(&service.Services{
		GroupService: &groupServiceMock{
			getGroupsFn: func(context.Context) ([]models.Group, error) {
				return nil, store.ErrExecutingQuery
			},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/groups", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
