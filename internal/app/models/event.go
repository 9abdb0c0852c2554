package models

import "time"

// Closed sets for event fields
var (
	ValidEventCategories = []string{
		"networking", "career", "social", "educational", "sports", "cultural", "other",
	}

	ValidEventTypes = []string{"in-person", "virtual", "hybrid"}
)

// Attendee status values
const (
	AttendeeRegistered = "registered"
	AttendeeAttended   = "attended"
	AttendeeCancelled  = "cancelled"
)

// Event status values reported to clients
const (
	EventStatusCompleted          = "completed"
	EventStatusRegistrationClosed = "registration-closed"
	EventStatusFull               = "full"
	EventStatusOpen               = "open"
)

// DefaultEventImage is used when no event image is supplied
const DefaultEventImage = "https://via.placeholder.com/400x200"

// OrganizerContact holds the organizer's contact details
type OrganizerContact struct {
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Attendee is one registration on an event
type Attendee struct {
	ID           int64     `json:"id"`
	AlumniID     int64     `json:"alumni"`
	RegisteredAt time.Time `json:"registeredAt"`
	Status       string    `json:"status"`

	// Alumni is the lazily resolved reference; nil when the reference
	// no longer resolves.
	Alumni *Alumni `json:"-"`
}

// Event represents an alumni event
type Event struct {
	ID                   int64            `json:"id"`
	Title                string           `json:"title"`
	Description          string           `json:"description"`
	Date                 time.Time        `json:"date"`
	Time                 string           `json:"time"`
	Location             string           `json:"location"`
	Category             string           `json:"category"`
	MaxAttendees         int              `json:"maxAttendees"`
	CurrentAttendees     int              `json:"currentAttendees"`
	Attendees            []Attendee       `json:"-"`
	Organizer            string           `json:"organizer"`
	OrganizerContact     OrganizerContact `json:"organizerContact"`
	RegistrationDeadline *time.Time       `json:"registrationDeadline,omitempty"`
	EventImage           string           `json:"eventImage"`
	Tags                 []string         `json:"tags"`
	IsActive             bool             `json:"isActive"`
	IsFeatured           bool             `json:"isFeatured"`
	EventType            string           `json:"eventType"`
	VirtualLink          string           `json:"virtualLink,omitempty"`
	CreatedAt            time.Time        `json:"createdAt"`
	UpdatedAt            time.Time        `json:"updatedAt"`
}

// AvailableSpots returns the remaining capacity
func (e *Event) AvailableSpots() int {
	return e.MaxAttendees - e.CurrentAttendees
}

// registrationCutoff is the registration deadline, falling back to the
// event date when no deadline is set.
func (e *Event) registrationCutoff() time.Time {
	if e.RegistrationDeadline != nil {
		return *e.RegistrationDeadline
	}
	return e.Date
}

// IsRegistrationOpen reports whether a new registration is accepted now
func (e *Event) IsRegistrationOpen(now time.Time) bool {
	return now.Before(e.registrationCutoff()) && e.CurrentAttendees < e.MaxAttendees
}

// Status returns the event lifecycle status at the given time
func (e *Event) Status(now time.Time) string {
	if now.After(e.Date) {
		return EventStatusCompleted
	}
	if now.After(e.registrationCutoff()) {
		return EventStatusRegistrationClosed
	}
	if e.CurrentAttendees >= e.MaxAttendees {
		return EventStatusFull
	}
	return EventStatusOpen
}

// CountActiveAttendees recomputes the attendee count the way it is stored:
// registered and attended count, cancelled does not.
func CountActiveAttendees(attendees []Attendee) int {
	count := 0
	for _, a := range attendees {
		if a.Status == AttendeeRegistered || a.Status == AttendeeAttended {
			count++
		}
	}
	return count
}
