// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/MKhiriev/go-quran-keeper/migrations"
	"github.com/MKhiriev/go-quran-keeper/models"
)

func newTestBookmarkRepo(t *testing.T) (BookmarkRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := NewBookmarkRepository(&DB{
		DB:                 db,
		dialect:            migrations.Postgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             l,
	}, l)
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestBookmarkRepository_List(t *testing.T) {
	repo, mock := newTestBookmarkRepo(t)
	created := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(bookmarkColumns).
		AddRow("b1", 2, "Al-Baqarah", "البقرة", 255, "text", "arabic", "translation",
			nil, "note", []byte(`["kursi"]`), "#00FF00", nil, created, created.Add(time.Minute)).
		AddRow("b2", 1, "Al-Fatiha", "الفاتحة", 1, "t", "a", "tr",
			"translit", nil, nil, nil, "col", created, created)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, surah")).
		WithArgs("owner-1").
		WillReturnRows(rows)

	list, err := repo.List(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, list, 2)

	first := list[0]
	assert.Equal(t, "b1", first.ID)
	assert.Equal(t, 255, first.Ayah)
	assert.Nil(t, first.Transliteration)
	require.NotNil(t, first.Note)
	assert.Equal(t, "note", *first.Note)
	assert.Equal(t, []string{"kursi"}, first.Tags)
	assert.Equal(t, models.SyncStatusSynced, first.SyncStatus)
	assert.True(t, first.UpdatedAt.Equal(created.Add(time.Minute)))

	second := list[1]
	assert.Nil(t, second.Tags)
	assert.Nil(t, second.Color)
	require.NotNil(t, second.CollectionID)
	assert.Equal(t, "col", *second.CollectionID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookmarkRepository_List_QueryError(t *testing.T) {
	repo, mock := newTestBookmarkRepo(t)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

	_, err := repo.List(context.Background(), "owner-1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestBookmarkRepository_List_ScanError(t *testing.T) {
	repo, mock := newTestBookmarkRepo(t)

	// wrong shape → scan error
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("b1"))

	_, err := repo.List(context.Background(), "owner-1")
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── Upsert ───────────────────────────────────────────────────────────────────

func TestBookmarkRepository_Upsert(t *testing.T) {
	repo, mock := newTestBookmarkRepo(t)
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	a := models.Bookmark{ID: "a", Surah: 1, Ayah: 1, CreatedAt: now, UpdatedAt: now}
	b := models.Bookmark{ID: "b", Surah: 2, Ayah: 5, CreatedAt: now, UpdatedAt: now}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookmarks")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// newer server copy: conflict clause leaves the row alone
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookmarks")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	written, err := repo.Upsert(context.Background(), "owner-1", a, b)
	require.NoError(t, err)
	assert.Equal(t, int64(1), written)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookmarkRepository_Upsert_Empty(t *testing.T) {
	repo, mock := newTestBookmarkRepo(t)

	written, err := repo.Upsert(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Zero(t, written)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookmarkRepository_Upsert_Errors(t *testing.T) {
	tests := []struct {
		name    string
		execErr error
		want    error
	}{
		{name: "check violation", execErr: pgError(pgerrcode.CheckViolation), want: ErrInvalidBookmark},
		{name: "not null violation", execErr: pgError(pgerrcode.NotNullViolation), want: ErrInvalidBookmark},
		{name: "deadlock", execErr: pgError(pgerrcode.DeadlockDetected), want: ErrTransient},
		{name: "connection failure", execErr: pgError(pgerrcode.ConnectionFailure), want: ErrTransient},
		{name: "unknown", execErr: errors.New("boom"), want: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestBookmarkRepo(t)

			mock.ExpectBegin()
			mock.ExpectExec("INSERT INTO bookmarks").WillReturnError(tt.execErr)
			mock.ExpectRollback()

			_, err := repo.Upsert(context.Background(), "owner-1", models.Bookmark{ID: "a", Surah: 1, Ayah: 1})
			assert.ErrorIs(t, err, tt.want)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookmarkRepository_Upsert_BeginError(t *testing.T) {
	repo, mock := newTestBookmarkRepo(t)

	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	_, err := repo.Upsert(context.Background(), "owner-1", models.Bookmark{ID: "a"})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestBookmarkRepository_Upsert_CommitError(t *testing.T) {
	repo, mock := newTestBookmarkRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookmarks").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	_, err := repo.Upsert(context.Background(), "owner-1", models.Bookmark{ID: "a"})
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestBookmarkRepository_Delete(t *testing.T) {
	repo, mock := newTestBookmarkRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookmarks WHERE (owner_id = $1 AND id = $2)")).
		WithArgs("owner-1", "a").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "owner-1", "a"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookmarkRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newTestBookmarkRepo(t)

	mock.ExpectExec("DELETE FROM bookmarks").
		WithArgs("owner-1", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "owner-1", "missing")
	assert.ErrorIs(t, err, ErrBookmarkNotFound)
}

func TestBookmarkRepository_Delete_TransientError(t *testing.T) {
	repo, mock := newTestBookmarkRepo(t)

	mock.ExpectExec("DELETE FROM bookmarks").WillReturnError(pgError(pgerrcode.SerializationFailure))

	err := repo.Delete(context.Background(), "owner-1", "a")
	assert.ErrorIs(t, err, ErrTransient)
}

// ── Ping / classifier ────────────────────────────────────────────────────────

func TestBookmarkRepository_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookmarkRepository(&DB{DB: db, logger: logger.Nop()}, logger.Nop())

	mock.ExpectPing().WillReturnError(errors.New("down"))
	assert.Error(t, repo.Ping(context.Background()))
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.CannotConnectNow)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
}
