package models

// Group is a named collection of catalog items assembled by the inspector.
// Groups are persisted in the local SQLite database and drive both the
// group-management pages and the Word export, where each group becomes one
// numbered price table.
type Group struct {
	// ID is the server-assigned identifier of the group.
	ID int64 `json:"id"`

	// Name is the unique, human-readable group title. It is rendered as the
	// section header in the exported document.
	Name string `json:"name"`
}

// GroupItem links one catalog item to one group. The pair is unique: an
// item may appear in a group at most once.
type GroupItem struct {
	GroupID int64 `json:"group_id"`
	ItemID  int64 `json:"item_id"`
}
