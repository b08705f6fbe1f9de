package service

import "errors"

var (
	// ErrNoGroupsFound is returned by the export when there is nothing to
	// render.
	ErrNoGroupsFound = errors.New("no groups found")

	// ErrMissingDBPath is returned when a settings update carries no db_path.
	ErrMissingDBPath = errors.New("missing db_path parameter")
)
