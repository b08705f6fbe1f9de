// Package store implements the persistence layer over the application's
// SQLite database: named item groups, group membership, and key/value
// settings. Repositories expose context-aware methods and report well-known
// failure conditions through sentinel errors.
package store
