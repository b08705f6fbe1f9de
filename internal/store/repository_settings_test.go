package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gchalakovmmi/nap/internal/logger"
)

func newTestSettingsRepo(t *testing.T) (*settingsRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &settingsRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSettingsGet_Success(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs("db_path").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("items.DB"))

	value, err := repo.Get(context.Background(), "db_path")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "items.DB" {
		t.Errorf("expected items.DB, got %s", value)
	}
}

func TestSettingsGet_NotFound(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, ErrSettingNotFound) {
		t.Fatalf("expected ErrSettingNotFound, got %v", err)
	}
}

func TestSettingsSet_Upsert(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO settings").
		WithArgs("db_path", "/mnt/share/items.DB").
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Set(context.Background(), "db_path", "/mnt/share/items.DB"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSettingsSet_DBError(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO settings").
		WithArgs("db_path", "x").
		WillReturnError(errors.New("database is locked"))

	err := repo.Set(context.Background(), "db_path", "x")
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
