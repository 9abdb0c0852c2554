package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventStatus(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(24 * time.Hour)
	date := now.Add(72 * time.Hour)

	open := Event{Date: date, RegistrationDeadline: &deadline, MaxAttendees: 100, CurrentAttendees: 10}
	assert.Equal(t, EventStatusOpen, open.Status(now))
	assert.True(t, open.IsRegistrationOpen(now))

	full := Event{Date: date, RegistrationDeadline: &deadline, MaxAttendees: 100, CurrentAttendees: 100}
	assert.Equal(t, EventStatusFull, full.Status(now))
	assert.False(t, full.IsRegistrationOpen(now))

	closed := Event{Date: date, RegistrationDeadline: &deadline, MaxAttendees: 100, CurrentAttendees: 10}
	afterDeadline := deadline.Add(time.Hour)
	assert.Equal(t, EventStatusRegistrationClosed, closed.Status(afterDeadline))
	assert.False(t, closed.IsRegistrationOpen(afterDeadline))

	completed := Event{Date: date, MaxAttendees: 100}
	afterDate := date.Add(time.Hour)
	assert.Equal(t, EventStatusCompleted, completed.Status(afterDate))
}

func TestRegistrationCutoffFallsBackToDate(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	e := Event{Date: now.Add(time.Hour), MaxAttendees: 10, CurrentAttendees: 0}

	assert.True(t, e.IsRegistrationOpen(now))
	assert.False(t, e.IsRegistrationOpen(now.Add(2*time.Hour)))
}

func TestAvailableSpots(t *testing.T) {
	e := Event{MaxAttendees: 50, CurrentAttendees: 20}
	assert.Equal(t, 30, e.AvailableSpots())
}

func TestCountActiveAttendees(t *testing.T) {
	attendees := []Attendee{
		{Status: AttendeeRegistered},
		{Status: AttendeeAttended},
		{Status: AttendeeCancelled},
		{Status: AttendeeRegistered},
	}
	assert.Equal(t, 3, CountActiveAttendees(attendees))
	assert.Equal(t, 0, CountActiveAttendees(nil))
}
