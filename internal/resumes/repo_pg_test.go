package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-scorer/internal/resume"
)

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

var draftColumns = []string{"id", "owner_id", "title", "data", "created_at", "updated_at"}

func TestPGRepoCreateEncodesResume(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	d := Draft{
		ID:        "draft-1",
		OwnerID:   "guest-1",
		Title:     "Backend roles",
		Data:      resume.Sample(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	data, err := json.Marshal(d.Data)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO resume_drafts").
		WithArgs(d.ID, d.OwnerID, d.Title, data, now, now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Create(context.Background(), d))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoGetDecodesResume(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, owner_id, title, data, created_at, updated_at FROM resume_drafts").
		WithArgs("guest-1", "draft-1").
		WillReturnRows(sqlmock.NewRows(draftColumns).
			AddRow("draft-1", "guest-1", "Mine", []byte(`{"personal":{"name":"Ada"},"skills":[{"id":"s1","name":"Go"}]}`), now, now))

	d, err := repo.Get(context.Background(), "guest-1", "draft-1")
	require.NoError(t, err)
	assert.Equal(t, "Mine", d.Title)
	assert.Equal(t, "Ada", d.Data.Personal.Name)
	require.Len(t, d.Data.Skills, 1)
	assert.Equal(t, "Go", d.Data.Skills[0].Name)
	assert.NotNil(t, d.Data.Experience)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoGetNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT id, owner_id").
		WithArgs("guest-1", "missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "guest-1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoListClampsLimit(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT id, owner_id").
		WithArgs("guest-1", 100, 0).
		WillReturnRows(sqlmock.NewRows(draftColumns).
			AddRow("a", "guest-1", "A", []byte(`{}`), now, now).
			AddRow("b", "guest-1", "B", []byte(`{}`), now, now))

	drafts, err := repo.List(context.Background(), "guest-1", 500, -3)
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "a", drafts[0].ID)
	assert.Equal(t, "B", drafts[1].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoUpdateMissingRow(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectExec("UPDATE resume_drafts").
		WithArgs("T", sqlmock.AnyArg(), now, "guest-1", "draft-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), Draft{ID: "draft-1", OwnerID: "guest-1", Title: "T", UpdatedAt: now})
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoDelete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM resume_drafts").
		WithArgs("guest-1", "draft-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "guest-1", "draft-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
