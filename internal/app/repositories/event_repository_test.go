package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namalnexus/backend/internal/pkg/apperrors"
)

func newEventRepoMock(t *testing.T) (*EventRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewEventRepository(mock), mock
}

func TestEventRepositoryGetByIDNotFound(t *testing.T) {
	repo, mock := newEventRepoMock(t)

	mock.ExpectQuery("SELECT .* FROM events").
		WithArgs(int64(3), true).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 3)
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryHasAttendee(t *testing.T) {
	repo, mock := newEventRepoMock(t)

	mock.ExpectQuery("SELECT 1 FROM event_attendees").
		WithArgs(int64(5), int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))

	registered, err := repo.HasAttendee(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.True(t, registered)

	mock.ExpectQuery("SELECT 1 FROM event_attendees").
		WithArgs(int64(6), int64(1)).
		WillReturnError(pgx.ErrNoRows)

	registered, err = repo.HasAttendee(context.Background(), 1, 6)
	require.NoError(t, err)
	assert.False(t, registered)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryAddAttendee(t *testing.T) {
	repo, mock := newEventRepoMock(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO event_attendees").
		WillReturnRows(pgxmock.NewRows([]string{"id", "registered_at"}).AddRow(int64(9), now))

	att, err := repo.AddAttendee(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(9), att.ID)
	assert.Equal(t, int64(5), att.AlumniID)
	assert.Equal(t, "registered", att.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryRecountAttendees(t *testing.T) {
	repo, mock := newEventRepoMock(t)

	mock.ExpectQuery("UPDATE events SET current_attendees").
		WillReturnRows(pgxmock.NewRows([]string{"current_attendees"}).AddRow(4))

	count, err := repo.RecountAttendees(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
