package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gchalakovmmi/nap/internal/logger"
	"github.com/gchalakovmmi/nap/internal/service"
	"github.com/gchalakovmmi/nap/models"
)

// newTestHandler builds a Handler over the given service mocks and returns
// its initialized router.
func newTestHandler(services *service.Services) http.Handler {
	return NewHandler(services, logger.Nop()).Init()
}

// doRequest runs one request through the router and returns the recorder.
func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_TraceIDHeaderIsSet(t *testing.T) {
	services := &service.Services{
		GroupService: &groupServiceMock{
			getGroupsFn: func(context.Context) ([]models.Group, error) { return nil, nil },
		},
	}
	router := newTestHandler(services)

	rec := doRequest(t, router, http.MethodGet, "/groups", "")
	require.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}
