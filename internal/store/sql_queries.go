package store

import (
	sq "github.com/Masterminds/squirrel"
)

// Static statements that never change shape.
const (
	upsertSetting = `INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;`

	selectSetting = `SELECT value FROM settings WHERE key = ?;`

	deleteGroupMemberships = `DELETE FROM group_items WHERE group_id = ?;`

	deleteGroupByID = `DELETE FROM groups WHERE id = ?;`

	removeGroupItem = `DELETE FROM group_items WHERE group_id = ? AND item_id = ?;`
)

// Built statements. SQLite uses ? placeholders, squirrel's default.

func buildSelectGroupsQuery() (string, []any, error) {
	return sq.Select("id", "name").
		From("groups").
		OrderBy("name").
		ToSql()
}

func buildSelectGroupByIDQuery(groupID int64) (string, []any, error) {
	return sq.Select("id", "name").
		From("groups").
		Where(sq.Eq{"id": groupID}).
		ToSql()
}

func buildInsertGroupQuery(name string) (string, []any, error) {
	return sq.Insert("groups").
		Columns("name").
		Values(name).
		ToSql()
}

func buildRenameGroupQuery(groupID int64, newName string) (string, []any, error) {
	return sq.Update("groups").
		Set("name", newName).
		Where(sq.Eq{"id": groupID}).
		ToSql()
}

func buildInsertGroupItemQuery(groupID, itemID int64) (string, []any, error) {
	return sq.Insert("group_items").
		Columns("group_id", "item_id").
		Values(groupID, itemID).
		ToSql()
}

func buildSelectGroupItemsQuery(groupID int64) (string, []any, error) {
	return sq.Select("item_id").
		From("group_items").
		Where(sq.Eq{"group_id": groupID}).
		ToSql()
}
