// Package validators encodes the input rules enforced ahead of the service
// layer: group names must be present and sane, and item references must
// carry positive identifiers.
package validators

import (
	"context"
	"strings"
	"unicode/utf8"
)

// Validator validates one kind of input value.
type Validator[T any] interface {
	Validate(ctx context.Context, value T) error
}

// maxGroupNameLength bounds group names; the exported document renders them
// as single-line section headers.
const maxGroupNameLength = 255

// GroupName validates group names for create and rename operations.
type GroupName struct{}

func (GroupName) Validate(_ context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrGroupNameRequired
	}
	if utf8.RuneCountInString(name) > maxGroupNameLength {
		return ErrGroupNameTooLong
	}
	return nil
}

// ItemRef validates group/item id pairs for membership operations.
type ItemRef struct{}

// ItemRefValue is the pair checked by ItemRef.
type ItemRefValue struct {
	GroupID int64
	ItemID  int64
}

func (ItemRef) Validate(_ context.Context, ref ItemRefValue) error {
	if ref.GroupID <= 0 || ref.ItemID <= 0 {
		return ErrMissingGroupOrItem
	}
	return nil
}
