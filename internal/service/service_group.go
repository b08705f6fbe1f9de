package service

import (
	"context"
	"fmt"

	"github.com/gchalakovmmi/nap/internal/logger"
	"github.com/gchalakovmmi/nap/internal/store"
	"github.com/gchalakovmmi/nap/internal/validators"
	"github.com/gchalakovmmi/nap/models"
)

// groupService is the concrete implementation of GroupService. It validates
// input and delegates persistence to a GroupRepository; repository sentinel
// errors (store.ErrGroupAlreadyExists, ...) pass through wrapped so the
// transport layer can map them to status codes.
type groupService struct {
	groups store.GroupRepository

	nameValidator    validators.Validator[string]
	itemRefValidator validators.Validator[validators.ItemRefValue]

	logger *logger.Logger
}

// NewGroupService constructs a GroupService wired to the given repository.
func NewGroupService(groups store.GroupRepository, logger *logger.Logger) GroupService {
	return &groupService{
		groups:           groups,
		nameValidator:    validators.GroupName{},
		itemRefValidator: validators.ItemRef{},
		logger:           logger,
	}
}

func (g *groupService) CreateGroup(ctx context.Context, name string) (models.Group, error) {
	log := logger.FromContext(ctx)

	if err := g.nameValidator.Validate(ctx, name); err != nil {
		log.Error().Str("name", name).Msg("invalid group name provided")
		return models.Group{}, err
	}

	group, err := g.groups.CreateGroup(ctx, name)
	if err != nil {
		log.Err(err).Str("name", name).Msg("group creation ended with error")
		return models.Group{}, fmt.Errorf("group creation ended with error: %w", err)
	}

	return group, nil
}

func (g *groupService) GetGroups(ctx context.Context) ([]models.Group, error) {
	log := logger.FromContext(ctx)

	groups, err := g.groups.GetGroups(ctx)
	if err != nil {
		log.Err(err).Msg("listing groups ended with error")
		return nil, fmt.Errorf("listing groups ended with error: %w", err)
	}

	return groups, nil
}

func (g *groupService) GetGroupByID(ctx context.Context, groupID int64) (models.Group, error) {
	log := logger.FromContext(ctx)

	group, err := g.groups.GetGroupByID(ctx, groupID)
	if err != nil {
		log.Err(err).Int64("groupID", groupID).Msg("group lookup ended with error")
		return models.Group{}, fmt.Errorf("group lookup ended with error: %w", err)
	}

	return group, nil
}

func (g *groupService) RenameGroup(ctx context.Context, groupID int64, newName string) error {
	log := logger.FromContext(ctx)

	if err := g.nameValidator.Validate(ctx, newName); err != nil {
		log.Error().Int64("groupID", groupID).Str("newName", newName).Msg("invalid group name provided")
		return err
	}

	if err := g.groups.RenameGroup(ctx, groupID, newName); err != nil {
		log.Err(err).Int64("groupID", groupID).Str("newName", newName).Msg("group rename ended with error")
		return fmt.Errorf("group rename ended with error: %w", err)
	}

	return nil
}

func (g *groupService) DeleteGroup(ctx context.Context, groupID int64) error {
	log := logger.FromContext(ctx)

	if err := g.groups.DeleteGroup(ctx, groupID); err != nil {
		log.Err(err).Int64("groupID", groupID).Msg("group deletion ended with error")
		return fmt.Errorf("group deletion ended with error: %w", err)
	}

	return nil
}

func (g *groupService) AddItem(ctx context.Context, groupID, itemID int64) error {
	log := logger.FromContext(ctx)

	ref := validators.ItemRefValue{GroupID: groupID, ItemID: itemID}
	if err := g.itemRefValidator.Validate(ctx, ref); err != nil {
		log.Error().Int64("groupID", groupID).Int64("itemID", itemID).Msg("invalid item reference provided")
		return err
	}

	if err := g.groups.AddItem(ctx, groupID, itemID); err != nil {
		log.Err(err).Int64("groupID", groupID).Int64("itemID", itemID).Msg("adding item to group ended with error")
		return fmt.Errorf("adding item to group ended with error: %w", err)
	}

	return nil
}

func (g *groupService) RemoveItem(ctx context.Context, groupID, itemID int64) error {
	log := logger.FromContext(ctx)

	if err := g.groups.RemoveItem(ctx, groupID, itemID); err != nil {
		log.Err(err).Int64("groupID", groupID).Int64("itemID", itemID).Msg("removing item from group ended with error")
		return fmt.Errorf("removing item from group ended with error: %w", err)
	}

	return nil
}

func (g *groupService) GetItems(ctx context.Context, groupID int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	itemIDs, err := g.groups.GetItems(ctx, groupID)
	if err != nil {
		log.Err(err).Int64("groupID", groupID).Msg("listing group items ended with error")
		return nil, fmt.Errorf("listing group items ended with error: %w", err)
	}

	return itemIDs, nil
}
