package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gchalakovmmi/nap/internal/service"
)

func TestHomePage(t *testing.T) {
	router := newTestHandler(&service.Services{})

	rec := doRequest(t, router, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Търсене в каталога")
}

func TestManageGroupsPage(t *testing.T) {
	router := newTestHandler(&service.Services{})

	rec := doRequest(t, router, http.MethodGet, "/manage_groups", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Управление на групи")
}

func TestEditGroupPage_InjectsGroupID(t *testing.T) {
	router := newTestHandler(&service.Services{})

	rec := doRequest(t, router, http.MethodGet, "/edit_group/42", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "const groupId = 42;")
}

func TestEditGroupPage_NonNumericIDDoesNotMatchRoute(t *testing.T) {
	router := newTestHandler(&service.Services{})

	rec := doRequest(t, router, http.MethodGet, "/edit_group/abc", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSettingsPage_ShowsStoredPath(t *testing.T) {
	router := newTestHandler(&service.Services{
		SettingsService: &settingsServiceMock{
			dbPathFn: func(context.Context) (string, error) { return "items.DB", nil },
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/settings", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="items.DB"`)
}
