package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namalnexus/backend/internal/app/models"
	"github.com/namalnexus/backend/internal/app/models/dto"
	"github.com/namalnexus/backend/internal/pkg/apperrors"
)

func newAlumniRepoMock(t *testing.T) (*AlumniRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewAlumniRepository(mock), mock
}

func alumniRow(id int64, name, email string, now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(alumniColumns).AddRow(
		id, name, email, 2018, "Computer Science",
		"Engineer", "Systems Limited", "Lahore", models.DefaultProfileImage, "",
		[]string{"Go"}, "", "", "",
		true, now, now, now,
	)
}

func TestAlumniRepositoryCreate(t *testing.T) {
	repo, mock := newAlumniRepoMock(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO alumni").
		WillReturnRows(pgxmock.NewRows(
			[]string{"id", "is_active", "joined_at", "created_at", "updated_at"}).
			AddRow(int64(1), true, now, now, now))

	a := &models.Alumni{
		Name:           "Ahmed Khan",
		Email:          "ahmed@example.com",
		GraduationYear: 2018,
		Degree:         "Computer Science",
		Skills:         []string{},
	}
	err := repo.Create(context.Background(), a)
	require.NoError(t, err)

	assert.Equal(t, int64(1), a.ID)
	assert.True(t, a.IsActive)
	assert.False(t, a.JoinedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlumniRepositoryCreateDuplicateEmail(t *testing.T) {
	repo, mock := newAlumniRepoMock(t)

	mock.ExpectQuery("INSERT INTO alumni").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &models.Alumni{
		Name:  "Ahmed Khan",
		Email: "ahmed@example.com",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlumniRepositoryGetByIDNotFound(t *testing.T) {
	repo, mock := newAlumniRepoMock(t)

	mock.ExpectQuery("SELECT .* FROM alumni").
		WithArgs(int64(7), true).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, apperrors.ErrAlumniNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlumniRepositoryGetByID(t *testing.T) {
	repo, mock := newAlumniRepoMock(t)
	now := time.Now()

	mock.ExpectQuery("SELECT .* FROM alumni").
		WithArgs(int64(1), true).
		WillReturnRows(alumniRow(1, "Ahmed Khan", "ahmed@example.com", now))

	a, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ahmed Khan", a.Name)
	assert.Equal(t, []string{"Go"}, a.Skills)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlumniRepositoryList(t *testing.T) {
	repo, mock := newAlumniRepoMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM alumni`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(12)))
	mock.ExpectQuery("SELECT .* FROM alumni").
		WillReturnRows(alumniRow(1, "Ahmed Khan", "ahmed@example.com", now).AddRow(
			int64(2), "Fatima Malik", "fatima@example.com", 2020, "Business Administration",
			"", "", "", models.DefaultProfileImage, "",
			[]string{}, "", "", "",
			true, now, now, now,
		))

	alumni, total, err := repo.List(context.Background(), dto.AlumniListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(12), total)
	require.Len(t, alumni, 2)
	assert.Equal(t, "Fatima Malik", alumni[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlumniRepositorySoftDeleteNotFound(t *testing.T) {
	repo, mock := newAlumniRepoMock(t)

	mock.ExpectExec("UPDATE alumni").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.SoftDelete(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrAlumniNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlumniRepositoryExists(t *testing.T) {
	repo, mock := newAlumniRepoMock(t)

	mock.ExpectQuery("SELECT 1 FROM alumni").
		WithArgs(int64(1), true).
		WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.Exists(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery("SELECT 1 FROM alumni").
		WithArgs(int64(2), true).
		WillReturnError(pgx.ErrNoRows)

	exists, err = repo.Exists(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
