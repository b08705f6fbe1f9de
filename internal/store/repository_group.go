package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gchalakovmmi/nap/internal/logger"
	"github.com/gchalakovmmi/nap/models"
)

// groupRepository is the SQLite-backed implementation of [GroupRepository].
// It manages the "groups" and "group_items" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type groupRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewGroupRepository constructs a [GroupRepository] backed by the provided
// database connection and logger.
func NewGroupRepository(db *DB, logger *logger.Logger) GroupRepository {
	logger.Debug().Msg("creating group repository")
	return &groupRepository{
		db:     db,
		logger: logger,
	}
}

// CreateGroup inserts a new group and returns it with the server-assigned ID.
//
// Error handling:
//   - sqlite unique constraint violation → [ErrGroupAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *groupRepository) CreateGroup(ctx context.Context, name string) (models.Group, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertGroupQuery(name)
	if err != nil {
		log.Err(err).Str("func", "*groupRepository.CreateGroup").Msg("error building query")
		return models.Group{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Group{}, ErrGroupAlreadyExists
		}
		log.Err(err).Str("func", "*groupRepository.CreateGroup").Msg("error executing insert")
		return models.Group{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	groupID, err := res.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*groupRepository.CreateGroup").Msg("error getting last insert id")
		return models.Group{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return models.Group{ID: groupID, Name: name}, nil
}

// GetGroups returns all groups ordered by name.
func (r *groupRepository) GetGroups(ctx context.Context) ([]models.Group, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectGroupsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*groupRepository.GetGroups").Msg("error executing select")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	groups := make([]models.Group, 0)
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			log.Err(err).Str("func", "*groupRepository.GetGroups").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return groups, nil
}

// GetGroupByID returns the group with the given id, or [ErrGroupNotFound].
func (r *groupRepository) GetGroupByID(ctx context.Context, groupID int64) (models.Group, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectGroupByIDQuery(groupID)
	if err != nil {
		return models.Group{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var g models.Group
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&g.ID, &g.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Group{}, ErrGroupNotFound
		}
		log.Err(err).Str("func", "*groupRepository.GetGroupByID").Msg("error scanning row")
		return models.Group{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return g, nil
}

// RenameGroup changes the name of an existing group.
//
// Error handling:
//   - sqlite unique constraint violation → [ErrGroupAlreadyExists].
//   - zero affected rows → [ErrGroupNotFound].
func (r *groupRepository) RenameGroup(ctx context.Context, groupID int64, newName string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRenameGroupQuery(groupID, newName)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrGroupAlreadyExists
		}
		log.Err(err).Str("func", "*groupRepository.RenameGroup").Msg("error executing update")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrGroupNotFound
	}

	return nil
}

// DeleteGroup removes a group and its memberships in one transaction, so a
// crash can never leave orphaned group_items rows behind.
func (r *groupRepository) DeleteGroup(ctx context.Context, groupID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*groupRepository.DeleteGroup").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteGroupMemberships, groupID); err != nil {
		log.Err(err).Str("func", "*groupRepository.DeleteGroup").Msg("error deleting memberships")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err := tx.ExecContext(ctx, deleteGroupByID, groupID); err != nil {
		log.Err(err).Str("func", "*groupRepository.DeleteGroup").Msg("error deleting group")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// AddItem links an item to a group.
//
// Error handling:
//   - sqlite unique constraint violation → [ErrItemAlreadyInGroup].
func (r *groupRepository) AddItem(ctx context.Context, groupID, itemID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertGroupItemQuery(groupID, itemID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrItemAlreadyInGroup
		}
		log.Err(err).Str("func", "*groupRepository.AddItem").Msg("error executing insert")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// RemoveItem unlinks an item from a group. Missing pairs are ignored.
func (r *groupRepository) RemoveItem(ctx context.Context, groupID, itemID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, removeGroupItem, groupID, itemID); err != nil {
		log.Err(err).Str("func", "*groupRepository.RemoveItem").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetItems returns the item IDs linked to a group, in insertion order.
func (r *groupRepository) GetItems(ctx context.Context, groupID int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectGroupItemsQuery(groupID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*groupRepository.GetItems").Msg("error executing select")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	itemIDs := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		itemIDs = append(itemIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return itemIDs, nil
}
