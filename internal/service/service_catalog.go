package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gchalakovmmi/nap/internal/config"
	"github.com/gchalakovmmi/nap/internal/logger"
	"github.com/gchalakovmmi/nap/internal/paradox"
	"github.com/gchalakovmmi/nap/internal/store"
	"github.com/gchalakovmmi/nap/models"
)

// dbPathKey is the settings key holding the catalog table path.
const dbPathKey = "db_path"

// searchPerPage is the fixed page size of catalog search results.
const searchPerPage = 50

// catalogService is the concrete implementation of CatalogService. It keeps
// one decoded snapshot of the Paradox table in memory and rereads the file
// once the snapshot is older than the configured TTL.
type catalogService struct {
	// settings resolves the current table path (the "db_path" setting).
	settings store.SettingsRepository

	// defaultPath is used when no db_path setting has been stored.
	defaultPath string

	// ttl is how long a loaded snapshot stays fresh.
	ttl time.Duration

	// readTable loads and decodes one table file. Overridable in tests.
	readTable func(path string) ([]paradox.Record, error)

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger

	mu       sync.Mutex
	items    []models.Item
	loadedAt time.Time
}

// NewCatalogService constructs a CatalogService reading Alpha fields with the
// configured encoding. Returns an error for an unknown encoding name.
func NewCatalogService(settings store.SettingsRepository, cfg config.Catalog, logger *logger.Logger) (CatalogService, error) {
	enc, err := paradox.EncodingByName(cfg.Encoding)
	if err != nil {
		return nil, err
	}

	return &catalogService{
		settings:    settings,
		defaultPath: cfg.TablePath,
		ttl:         cfg.CacheTTL,
		readTable: func(path string) ([]paradox.Record, error) {
			table, err := paradox.Open(path, enc)
			if err != nil {
				return nil, err
			}
			return table.ReadAll()
		},
		logger: logger,
	}, nil
}

// Items returns the cached snapshot when fresh, otherwise rereads the table.
// A failed read is logged and served as an empty catalog so the UI keeps
// working while the table path is wrong; the failed read is not cached, so
// the next call retries.
func (s *catalogService) Items(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loadedAt.IsZero() && time.Since(s.loadedAt) < s.ttl {
		return s.items, nil
	}

	path, err := s.tablePath(ctx)
	if err != nil {
		log.Err(err).Msg("resolving catalog table path failed")
		return nil, fmt.Errorf("resolving catalog table path failed: %w", err)
	}

	records, err := s.readTable(path)
	if err != nil {
		log.Err(err).Str("path", path).Msg("reading catalog table failed")
		return []models.Item{}, nil
	}

	s.items = itemsFromRecords(records)
	s.loadedAt = time.Now()
	return s.items, nil
}

// Search filters the snapshot and returns page (1-based) of the matches.
func (s *catalogService) Search(ctx context.Context, query string, page int) (models.SearchResponse, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return models.SearchResponse{}, err
	}

	filtered := items
	if q := strings.ToLower(query); q != "" {
		filtered = make([]models.Item, 0)
		for _, item := range items {
			searchText := strings.ToLower(strings.Join(
				[]string{item.ID, item.Code, item.Name, item.ClientPrice, item.Vendor}, " "))
			if strings.Contains(searchText, q) {
				filtered = append(filtered, item)
			}
		}
	}

	if page < 1 {
		page = 1
	}
	total := len(filtered)
	start := min((page-1)*searchPerPage, total)
	end := min(start+searchPerPage, total)

	results := filtered[start:end]
	if results == nil {
		results = []models.Item{}
	}

	return models.SearchResponse{
		Results:    results,
		Total:      total,
		Page:       page,
		PerPage:    searchPerPage,
		TotalPages: (total + searchPerPage - 1) / searchPerPage,
	}, nil
}

// Refresh rereads the table and replaces the snapshot. Used by the background
// refresh job to keep the cache warm.
func (s *catalogService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.tablePath(ctx)
	if err != nil {
		return fmt.Errorf("resolving catalog table path failed: %w", err)
	}

	records, err := s.readTable(path)
	if err != nil {
		return fmt.Errorf("reading catalog table %q failed: %w", path, err)
	}

	s.items = itemsFromRecords(records)
	s.loadedAt = time.Now()
	return nil
}

// Invalidate drops the snapshot. Called after the table path setting changes.
func (s *catalogService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.loadedAt = time.Time{}
}

// tablePath resolves the current table path from settings, falling back to
// the configured default when none is stored.
func (s *catalogService) tablePath(ctx context.Context) (string, error) {
	path, err := s.settings.Get(ctx, dbPathKey)
	if errors.Is(err, store.ErrSettingNotFound) || (err == nil && path == "") {
		return s.defaultPath, nil
	}
	if err != nil {
		return "", err
	}
	return path, nil
}

// itemsFromRecords projects decoded Paradox records onto the catalog item
// model. Every field is carried as text.
func itemsFromRecords(records []paradox.Record) []models.Item {
	items := make([]models.Item, 0, len(records))
	for _, rec := range records {
		items = append(items, models.Item{
			ID:          fieldText(rec["id"]),
			Code:        fieldText(rec["Code"]),
			Name:        fieldText(rec["Item"]),
			ClientPrice: fieldText(rec["ClientPrice"]),
			Vendor:      fieldText(rec["Vendor"]),
			VendorPrice: fieldText(rec["VendorPrice"]),
		})
	}
	return items
}

// fieldText renders one decoded field value as text. Null fields render
// empty; floats keep the shortest exact representation.
func fieldText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format("2006-01-02")
	default:
		return fmt.Sprint(v)
	}
}
