package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namalnexus/backend/internal/app/models"
	"github.com/namalnexus/backend/internal/app/models/dto"
	"github.com/namalnexus/backend/internal/pkg/apperrors"
)

type fakeEventRepo struct {
	records      map[int64]*models.Event
	attendees    map[int64][]models.Attendee
	nextID       int64
	lastSet      map[string]interface{}
	addCalls     int
	recountCalls int
	stats        dto.EventStats
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		records:   map[int64]*models.Event{},
		attendees: map[int64][]models.Attendee{},
	}
}

func (f *fakeEventRepo) Create(_ context.Context, e *models.Event) error {
	f.nextID++
	e.ID = f.nextID
	e.IsActive = true
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	f.records[e.ID] = e
	return nil
}

func (f *fakeEventRepo) List(_ context.Context, _ dto.EventListQuery, _ time.Time) ([]models.Event, int64, error) {
	out := make([]models.Event, 0, len(f.records))
	for _, e := range f.records {
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id int64) (*models.Event, error) {
	e, ok := f.records[id]
	if !ok || !e.IsActive {
		return nil, apperrors.ErrEventNotFound
	}
	return e, nil
}

func (f *fakeEventRepo) ListAttendees(_ context.Context, eventID int64) ([]models.Attendee, error) {
	return f.attendees[eventID], nil
}

func (f *fakeEventRepo) HasAttendee(_ context.Context, eventID, alumniID int64) (bool, error) {
	for _, a := range f.attendees[eventID] {
		if a.AlumniID == alumniID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEventRepo) AddAttendee(_ context.Context, eventID, alumniID int64) (*models.Attendee, error) {
	f.addCalls++
	att := models.Attendee{
		ID:           int64(len(f.attendees[eventID]) + 1),
		AlumniID:     alumniID,
		RegisteredAt: time.Now(),
		Status:       models.AttendeeRegistered,
	}
	f.attendees[eventID] = append(f.attendees[eventID], att)
	return &att, nil
}

func (f *fakeEventRepo) RecountAttendees(_ context.Context, eventID int64) (int, error) {
	f.recountCalls++
	count := models.CountActiveAttendees(f.attendees[eventID])
	f.records[eventID].CurrentAttendees = count
	return count, nil
}

func (f *fakeEventRepo) Update(_ context.Context, id int64, set map[string]interface{}) error {
	if _, ok := f.records[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	f.lastSet = set
	return nil
}

func (f *fakeEventRepo) SoftDelete(_ context.Context, id int64) error {
	e, ok := f.records[id]
	if !ok || !e.IsActive {
		return apperrors.ErrEventNotFound
	}
	e.IsActive = false
	return nil
}

func (f *fakeEventRepo) Stats(_ context.Context, _ time.Time) (dto.EventStats, error) {
	return f.stats, nil
}

func validCreateEventRequest() dto.CreateEventRequest {
	return dto.CreateEventRequest{
		Title:        "Annual Alumni Reunion",
		Description:  "A full day of talks and networking on campus.",
		Date:         time.Now().AddDate(0, 1, 0),
		Time:         "14:00",
		Location:     "Namal Knowledge City, Mianwali",
		Category:     "networking",
		MaxAttendees: 100,
		Organizer:    "Alumni Office",
		OrganizerContact: models.OrganizerContact{
			Email: "alumni@namal.edu.pk",
		},
	}
}

func seedEvent(t *testing.T, repo *fakeEventRepo) *models.Event {
	t.Helper()
	svc := NewEventService(repo)
	e, err := svc.Create(context.Background(), validCreateEventRequest())
	require.NoError(t, err)
	return e
}

func TestEventServiceCreateDefaults(t *testing.T) {
	repo := newFakeEventRepo()
	e := seedEvent(t, repo)

	assert.Equal(t, models.DefaultEventImage, e.EventImage)
	assert.Equal(t, "in-person", e.EventType)
	assert.NotNil(t, e.Tags)
	assert.True(t, e.IsActive)
}

func TestEventServiceCreateValidation(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())

	_, err := svc.Create(context.Background(), dto.CreateEventRequest{})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	messages := apperrors.MessagesOf(err)
	assert.Contains(t, messages, "Event title is required")
	assert.Contains(t, messages, "Event date is required")
	assert.Contains(t, messages, "Event time is required")
	assert.Contains(t, messages, "Maximum attendees is required")
	assert.Contains(t, messages, "Organizer email is required")
}

func TestEventServiceCreateFieldRules(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())

	req := validCreateEventRequest()
	req.Date = time.Now().Add(-time.Hour)
	req.Time = "2pm"
	req.MaxAttendees = 20000

	_, err := svc.Create(context.Background(), req)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	messages := apperrors.MessagesOf(err)
	assert.Contains(t, messages, "Event date must be in the future")
	assert.Contains(t, messages, "Please enter time in HH:MM format")
	assert.Contains(t, messages, "Maximum attendees cannot exceed 10,000")
}

func TestEventServiceCreateDeadlineAfterDate(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())

	req := validCreateEventRequest()
	late := req.Date.Add(time.Hour)
	req.RegistrationDeadline = &late

	_, err := svc.Create(context.Background(), req)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, apperrors.MessagesOf(err), "Registration deadline must be before event date")
}

func TestEventServiceRegister(t *testing.T) {
	repo := newFakeEventRepo()
	e := seedEvent(t, repo)

	svc := NewEventService(repo)
	result, err := svc.Register(context.Background(), e.ID, 5)
	require.NoError(t, err)

	assert.Equal(t, e.ID, result.EventID)
	assert.Equal(t, 1, result.CurrentAttendees)
	assert.Equal(t, 99, result.AvailableSpots)
	assert.Equal(t, 1, repo.addCalls)
	assert.Equal(t, 1, repo.recountCalls)
}

func TestEventServiceRegisterMissingAlumniID(t *testing.T) {
	repo := newFakeEventRepo()
	e := seedEvent(t, repo)

	svc := NewEventService(repo)
	_, err := svc.Register(context.Background(), e.ID, 0)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, apperrors.MessagesOf(err), "Alumni ID is required")
	assert.Zero(t, repo.addCalls)
}

func TestEventServiceRegisterDuplicate(t *testing.T) {
	repo := newFakeEventRepo()
	e := seedEvent(t, repo)

	svc := NewEventService(repo)
	_, err := svc.Register(context.Background(), e.ID, 5)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), e.ID, 5)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyRegistered)
	assert.Equal(t, 1, repo.addCalls)
}

func TestEventServiceRegisterClosedByDeadline(t *testing.T) {
	repo := newFakeEventRepo()
	e := seedEvent(t, repo)
	past := time.Now().Add(-time.Hour)
	e.RegistrationDeadline = &past

	svc := NewEventService(repo)
	_, err := svc.Register(context.Background(), e.ID, 5)
	assert.ErrorIs(t, err, apperrors.ErrRegistrationClosed)
	assert.Zero(t, repo.addCalls)
}

func TestEventServiceRegisterFull(t *testing.T) {
	repo := newFakeEventRepo()
	e := seedEvent(t, repo)
	e.MaxAttendees = 1
	e.CurrentAttendees = 1

	svc := NewEventService(repo)
	_, err := svc.Register(context.Background(), e.ID, 5)
	assert.ErrorIs(t, err, apperrors.ErrRegistrationClosed)
	assert.Zero(t, repo.addCalls)
}

func TestEventServiceUpdateDeadlineAgainstFinalDate(t *testing.T) {
	repo := newFakeEventRepo()
	e := seedEvent(t, repo)

	svc := NewEventService(repo)
	deadline := e.Date.Add(time.Hour)
	_, err := svc.Update(context.Background(), e.ID, dto.UpdateEventRequest{
		RegistrationDeadline: &deadline,
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, apperrors.MessagesOf(err), "Registration deadline must be before event date")

	newDate := deadline.Add(24 * time.Hour)
	_, err = svc.Update(context.Background(), e.ID, dto.UpdateEventRequest{
		Date:                 &newDate,
		RegistrationDeadline: &deadline,
	})
	require.NoError(t, err)
	assert.Equal(t, newDate, repo.lastSet["date"])
}

func TestEventServiceGetByIDResolvesAttendees(t *testing.T) {
	repo := newFakeEventRepo()
	e := seedEvent(t, repo)

	svc := NewEventService(repo)
	_, err := svc.Register(context.Background(), e.ID, 5)
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), e.ID)
	require.NoError(t, err)
	require.Len(t, got.Attendees, 1)
	assert.Equal(t, int64(5), got.Attendees[0].AlumniID)
}

func TestEventServiceStatsRounding(t *testing.T) {
	repo := newFakeEventRepo()
	repo.stats = dto.EventStats{
		ByCategory: []dto.EventCategoryStats{
			{Category: "networking", Count: 2, AvgAttendees: 37.7777},
		},
	}
	svc := NewEventService(repo)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 37.8, stats.ByCategory[0].AvgAttendees, 1e-9)
}
