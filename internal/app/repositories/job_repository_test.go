package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namalnexus/backend/internal/app/models"
	"github.com/namalnexus/backend/internal/pkg/apperrors"
)

func newJobRepoMock(t *testing.T) (*JobRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewJobRepository(mock), mock
}

func jobJoinColumns() []string {
	return append(append([]string{}, jobColumns...), posterColumns...)
}

func TestJobRepositoryGetByIDWithPoster(t *testing.T) {
	repo, mock := newJobRepoMock(t)
	now := time.Now()

	mock.ExpectQuery("SELECT .* FROM jobs j LEFT JOIN alumni a").
		WithArgs(int64(1), true).
		WillReturnRows(pgxmock.NewRows(jobJoinColumns()).AddRow(
			int64(1), "Backend Engineer", "Systems Limited", "Lahore", "Build Go services.",
			[]string{}, []string{"Go"}, []string{},
			nil, nil, "PKR",
			"Full-time", "Mid Level", "Engineering", int64(3),
			nil, "jobs@systemsltd.com", "",
			true, 7, 0, now, now,
			int64(3), "Ahmed Khan", "ahmed@example.com", "Systems Limited", "Engineer", models.DefaultProfileImage,
		))

	j, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", j.Title)
	assert.Equal(t, 7, j.Views)
	require.NotNil(t, j.Poster)
	assert.Equal(t, "Ahmed Khan", j.Poster.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepositoryGetByIDDanglingPoster(t *testing.T) {
	repo, mock := newJobRepoMock(t)
	now := time.Now()

	mock.ExpectQuery("SELECT .* FROM jobs j LEFT JOIN alumni a").
		WithArgs(int64(2), true).
		WillReturnRows(pgxmock.NewRows(jobJoinColumns()).AddRow(
			int64(2), "Marketing Intern", "Jazz", "Islamabad", "Support campaigns.",
			[]string{}, []string{}, []string{},
			nil, nil, "PKR",
			"Internship", "Entry Level", "Marketing", int64(99),
			nil, "hr@jazz.com.pk", "",
			true, 0, 0, now, now,
			nil, nil, nil, nil, nil, nil,
		))

	j, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, j.Poster)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepositoryGetByIDNotFound(t *testing.T) {
	repo, mock := newJobRepoMock(t)

	mock.ExpectQuery("SELECT .* FROM jobs j LEFT JOIN alumni a").
		WithArgs(int64(8), true).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 8)
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepositoryIncrementViews(t *testing.T) {
	repo, mock := newJobRepoMock(t)

	mock.ExpectExec(`UPDATE jobs SET views = views \+ 1`).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.IncrementViews(context.Background(), 1)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepositoryUpdateNotFound(t *testing.T) {
	repo, mock := newJobRepoMock(t)

	mock.ExpectExec("UPDATE jobs").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), 42, map[string]interface{}{"title": "New Title"})
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
