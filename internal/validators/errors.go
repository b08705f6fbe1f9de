package validators

import "errors"

var (
	ErrGroupNameRequired  = errors.New("group name is required")
	ErrGroupNameTooLong   = errors.New("group name is too long")
	ErrMissingGroupOrItem = errors.New("missing group_id or item_id")
)
