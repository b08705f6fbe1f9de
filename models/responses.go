package models

// SearchResponse is the paginated payload returned by GET /search.
type SearchResponse struct {
	Results    []Item `json:"results"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	TotalPages int    `json:"total_pages"`
}

// MessageResponse carries a human-readable confirmation for mutating
// endpoints (group updated, item removed, settings saved, ...).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON error body used by the API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SettingsResponse is the payload of GET /api/settings.
type SettingsResponse struct {
	DBPath string `json:"db_path"`
}

// AddItemRequest is the body of POST /groups/items.
type AddItemRequest struct {
	GroupID int64 `json:"group_id"`
	ItemID  int64 `json:"item_id"`
}

// UpdateSettingsRequest is the body of POST /settings. DBPath is a pointer
// so a missing field can be told apart from an explicitly empty one.
type UpdateSettingsRequest struct {
	DBPath *string `json:"db_path"`
}

// NameRequest is the body of POST /groups and PUT /groups/{groupID}.
type NameRequest struct {
	Name string `json:"name"`
}
