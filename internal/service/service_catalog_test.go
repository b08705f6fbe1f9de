package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gchalakovmmi/nap/internal/config"
	"github.com/gchalakovmmi/nap/internal/logger"
	"github.com/gchalakovmmi/nap/internal/paradox"
	"github.com/gchalakovmmi/nap/models"
)

func testCatalogRecords() []paradox.Record {
	return []paradox.Record{
		{"id": int32(1), "Code": "A-1", "Item": "Кафе Нова", "ClientPrice": 4.5, "Vendor": "Роснет", "VendorPrice": 3.1},
		{"id": int32(2), "Code": "B-2", "Item": "Чай Билков", "ClientPrice": 2.25, "Vendor": "Билкови", "VendorPrice": 1.8},
		{"id": int32(3), "Code": "C-3", "Item": "Кафе Мока", "ClientPrice": nil, "Vendor": "Роснет", "VendorPrice": 5.0},
	}
}

func newTestCatalog(reads *int, records []paradox.Record, readErr error) *catalogService {
	return &catalogService{
		settings:    newSettingsRepoStub(map[string]string{dbPathKey: "items.DB"}),
		defaultPath: "items.DB",
		ttl:         time.Minute,
		readTable: func(string) ([]paradox.Record, error) {
			if reads != nil {
				*reads++
			}
			return records, readErr
		},
		logger: logger.Nop(),
	}
}

func TestCatalogItems_ProjectsRecords(t *testing.T) {
	s := newTestCatalog(nil, testCatalogRecords(), nil)

	items, err := s.Items(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, models.Item{
		ID:          "1",
		Code:        "A-1",
		Name:        "Кафе Нова",
		ClientPrice: "4.5",
		Vendor:      "Роснет",
		VendorPrice: "3.1",
	}, items[0])

	// null price renders empty
	assert.Equal(t, "", items[2].ClientPrice)
}

func TestCatalogItems_CachesUntilTTL(t *testing.T) {
	reads := 0
	s := newTestCatalog(&reads, testCatalogRecords(), nil)

	_, err := s.Items(context.Background())
	require.NoError(t, err)
	_, err = s.Items(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, reads)

	// age the snapshot past the TTL
	s.mu.Lock()
	s.loadedAt = time.Now().Add(-2 * time.Minute)
	s.mu.Unlock()

	_, err = s.Items(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, reads)
}

func TestCatalogItems_UnreadableTableServesEmptyAndRetries(t *testing.T) {
	reads := 0
	s := newTestCatalog(&reads, nil, errors.New("no such file"))

	items, err := s.Items(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)

	// the failed read is not cached
	_, err = s.Items(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, reads)
}

func TestCatalogItems_FallsBackToDefaultPath(t *testing.T) {
	var gotPath string
	s := &catalogService{
		settings:    newSettingsRepoStub(nil),
		defaultPath: "fallback.DB",
		ttl:         time.Minute,
		readTable: func(path string) ([]paradox.Record, error) {
			gotPath = path
			return nil, nil
		},
		logger: logger.Nop(),
	}

	_, err := s.Items(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fallback.DB", gotPath)
}

func TestCatalogItems_SettingsErrorPropagates(t *testing.T) {
	s := newTestCatalog(nil, nil, nil)
	s.settings = &settingsRepoStub{getErr: errors.New("db locked")}

	_, err := s.Items(context.Background())
	require.Error(t, err)
}

func TestCatalogInvalidate_ForcesReread(t *testing.T) {
	reads := 0
	s := newTestCatalog(&reads, testCatalogRecords(), nil)

	_, err := s.Items(context.Background())
	require.NoError(t, err)

	s.Invalidate()

	_, err = s.Items(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, reads)
}

func TestCatalogRefresh_ReportsReadError(t *testing.T) {
	s := newTestCatalog(nil, nil, errors.New("no such file"))

	err := s.Refresh(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such file")
}

func TestCatalogSearch_FiltersCaseInsensitive(t *testing.T) {
	s := newTestCatalog(nil, testCatalogRecords(), nil)

	resp, err := s.Search(context.Background(), "КАФЕ", 1)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "Кафе Нова", resp.Results[0].Name)
	assert.Equal(t, "Кафе Мока", resp.Results[1].Name)
}

func TestCatalogSearch_MatchesAnySearchableField(t *testing.T) {
	s := newTestCatalog(nil, testCatalogRecords(), nil)

	for _, query := range []string{"b-2", "2.25", "билкови", "2"} {
		resp, err := s.Search(context.Background(), query, 1)
		require.NoError(t, err)
		assert.NotZero(t, resp.Total, "query %q", query)
	}
}

func TestCatalogSearch_EmptyQueryReturnsEverything(t *testing.T) {
	s := newTestCatalog(nil, testCatalogRecords(), nil)

	resp, err := s.Search(context.Background(), "", 1)
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 1, resp.TotalPages)
	assert.Equal(t, searchPerPage, resp.PerPage)
}

func TestCatalogSearch_Paginates(t *testing.T) {
	records := make([]paradox.Record, 0, 120)
	for i := 1; i <= 120; i++ {
		records = append(records, paradox.Record{
			"id": int32(i), "Code": fmt.Sprintf("C%d", i), "Item": "Стока",
			"ClientPrice": 1.0, "Vendor": "В", "VendorPrice": 1.0,
		})
	}
	s := newTestCatalog(nil, records, nil)

	resp, err := s.Search(context.Background(), "", 2)
	require.NoError(t, err)

	assert.Equal(t, 120, resp.Total)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 2, resp.Page)
	require.Len(t, resp.Results, 50)
	assert.Equal(t, "51", resp.Results[0].ID)

	resp, err = s.Search(context.Background(), "", 3)
	require.NoError(t, err)
	assert.Len(t, resp.Results, 20)
}

func TestCatalogSearch_PageBeyondRangeIsEmptyNotNil(t *testing.T) {
	s := newTestCatalog(nil, testCatalogRecords(), nil)

	resp, err := s.Search(context.Background(), "", 10)
	require.NoError(t, err)

	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
	assert.Equal(t, 3, resp.Total)
}

func TestNewCatalogService_RejectsUnknownEncoding(t *testing.T) {
	_, err := NewCatalogService(newSettingsRepoStub(nil), config.Catalog{Encoding: "no-such-charset"}, logger.Nop())
	require.Error(t, err)
}

func TestFieldText(t *testing.T) {
	assert.Equal(t, "", fieldText(nil))
	assert.Equal(t, "текст", fieldText("текст"))
	assert.Equal(t, "4.5", fieldText(4.5))
	assert.Equal(t, "-7", fieldText(int16(-7)))
	assert.Equal(t, "42", fieldText(int32(42)))
	assert.Equal(t, "true", fieldText(true))
	assert.Equal(t, "2025-03-01", fieldText(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
}
