package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/url"
	"strings"
	"time"

	"github.com/gchalakovmmi/nap/internal/logger"
	"github.com/gchalakovmmi/nap/internal/utils"
	"github.com/gchalakovmmi/nap/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// ServerAdapter. It normalises and validates the base URL and configures the
// underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) GetGroups(ctx context.Context) ([]models.Group, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/groups")
	if err != nil {
		return nil, fmt.Errorf("list groups request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var groups []models.Group
	if err = json.Unmarshal(resp.Body(), &groups); err != nil {
		return nil, fmt.Errorf("decode groups response: %w", err)
	}
	return groups, nil
}

func (h *httpServerAdapter) CreateGroup(ctx context.Context, name string) (models.Group, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.NameRequest{Name: name}).
		Post("/groups")
	if err != nil {
		return models.Group{}, fmt.Errorf("create group request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Group{}, err
	}

	var group models.Group
	if err = json.Unmarshal(resp.Body(), &group); err != nil {
		return models.Group{}, fmt.Errorf("decode group response: %w", err)
	}
	return group, nil
}

func (h *httpServerAdapter) GetGroup(ctx context.Context, groupID int64) (models.Group, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/groups/%d", groupID))
	if err != nil {
		return models.Group{}, fmt.Errorf("get group request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Group{}, err
	}

	var group models.Group
	if err = json.Unmarshal(resp.Body(), &group); err != nil {
		return models.Group{}, fmt.Errorf("decode group response: %w", err)
	}
	return group, nil
}

func (h *httpServerAdapter) RenameGroup(ctx context.Context, groupID int64, newName string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.NameRequest{Name: newName}).
		Put(fmt.Sprintf("/groups/%d", groupID))
	if err != nil {
		return fmt.Errorf("rename group request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteGroup(ctx context.Context, groupID int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/groups/%d", groupID))
	if err != nil {
		return fmt.Errorf("delete group request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetGroupItems(ctx context.Context, groupID int64) ([]int64, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/groups/%d/items", groupID))
	if err != nil {
		return nil, fmt.Errorf("list group items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var itemIDs []int64
	if err = json.Unmarshal(resp.Body(), &itemIDs); err != nil {
		return nil, fmt.Errorf("decode group items response: %w", err)
	}
	return itemIDs, nil
}

func (h *httpServerAdapter) AddItem(ctx context.Context, groupID, itemID int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AddItemRequest{GroupID: groupID, ItemID: itemID}).
		Post("/groups/items")
	if err != nil {
		return fmt.Errorf("add item request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) RemoveItem(ctx context.Context, groupID, itemID int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/groups/%d/items/%d", groupID, itemID))
	if err != nil {
		return fmt.Errorf("remove item request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Search(ctx context.Context, query string, page int) (models.SearchResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		SetQueryParam("page", fmt.Sprintf("%d", page)).
		Get("/search")
	if err != nil {
		return models.SearchResponse{}, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SearchResponse{}, err
	}

	var result models.SearchResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.SearchResponse{}, fmt.Errorf("decode search response: %w", err)
	}
	return result, nil
}

func (h *httpServerAdapter) GetSettings(ctx context.Context) (models.SettingsResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/settings")
	if err != nil {
		return models.SettingsResponse{}, fmt.Errorf("get settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SettingsResponse{}, err
	}

	var settings models.SettingsResponse
	if err = json.Unmarshal(resp.Body(), &settings); err != nil {
		return models.SettingsResponse{}, fmt.Errorf("decode settings response: %w", err)
	}
	return settings, nil
}

func (h *httpServerAdapter) SetDBPath(ctx context.Context, path string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UpdateSettingsRequest{DBPath: &path}).
		Post("/settings")
	if err != nil {
		return fmt.Errorf("update settings request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DownloadExport(ctx context.Context) (string, []byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/export_word")
	if err != nil {
		return "", nil, fmt.Errorf("export request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", nil, err
	}

	filename := "export.docx"
	if disposition := resp.Header().Get("Content-Disposition"); disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil && params["filename"] != "" {
			filename = params["filename"]
		}
	}

	return filename, resp.Body(), nil
}
