package dto

import (
	"time"

	"github.com/namalnexus/backend/internal/app/models"
)

// CreateEventRequest is the payload for creating an event
type CreateEventRequest struct {
	Title                string                  `json:"title"`
	Description          string                  `json:"description"`
	Date                 time.Time               `json:"date"`
	Time                 string                  `json:"time"`
	Location             string                  `json:"location"`
	Category             string                  `json:"category"`
	MaxAttendees         int                     `json:"maxAttendees"`
	Organizer            string                  `json:"organizer"`
	OrganizerContact     models.OrganizerContact `json:"organizerContact"`
	RegistrationDeadline *time.Time              `json:"registrationDeadline"`
	EventImage           string                  `json:"eventImage"`
	Tags                 []string                `json:"tags"`
	IsFeatured           bool                    `json:"isFeatured"`
	EventType            string                  `json:"eventType"`
	VirtualLink          string                  `json:"virtualLink"`
}

// UpdateEventRequest is a partial update; only supplied fields change
type UpdateEventRequest struct {
	Title                *string                  `json:"title"`
	Description          *string                  `json:"description"`
	Date                 *time.Time               `json:"date"`
	Time                 *string                  `json:"time"`
	Location             *string                  `json:"location"`
	Category             *string                  `json:"category"`
	MaxAttendees         *int                     `json:"maxAttendees"`
	Organizer            *string                  `json:"organizer"`
	OrganizerContact     *models.OrganizerContact `json:"organizerContact"`
	RegistrationDeadline *time.Time               `json:"registrationDeadline"`
	EventImage           *string                  `json:"eventImage"`
	Tags                 *[]string                `json:"tags"`
	IsFeatured           *bool                    `json:"isFeatured"`
	EventType            *string                  `json:"eventType"`
	VirtualLink          *string                  `json:"virtualLink"`
}

// EventListQuery carries the recognized event list filters
type EventListQuery struct {
	Category  string
	Upcoming  bool
	Featured  bool
	EventType string
	Search    string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// RegisterRequest is the payload for registering an alumni on an event
type RegisterRequest struct {
	AlumniID int64 `json:"alumniId"`
}

// EventResponse is an event record plus its derived display fields;
// the attendee list is omitted on list responses.
type EventResponse struct {
	models.Event
	AvailableSpots     int    `json:"availableSpots"`
	IsRegistrationOpen bool   `json:"isRegistrationOpen"`
	EventStatus        string `json:"eventStatus"`
}

// AttendeeAlumni is the resolved alumni reference on an attendee record
type AttendeeAlumni struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// AttendeeResponse is one registration with its lazily resolved alumni;
// Alumni may be null when the reference no longer resolves.
type AttendeeResponse struct {
	Alumni       *AttendeeAlumni `json:"alumni"`
	RegisteredAt time.Time       `json:"registeredAt"`
	Status       string          `json:"status"`
}

// EventDetailResponse adds the attendee list to an event response
type EventDetailResponse struct {
	EventResponse
	Attendees []AttendeeResponse `json:"attendees"`
}

// FromEvent converts a models.Event to an EventResponse
func FromEvent(e *models.Event, now time.Time) EventResponse {
	return EventResponse{
		Event:              *e,
		AvailableSpots:     e.AvailableSpots(),
		IsRegistrationOpen: e.IsRegistrationOpen(now),
		EventStatus:        e.Status(now),
	}
}

// FromEventList converts a page of event records
func FromEventList(events []models.Event, now time.Time) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for i := range events {
		out = append(out, FromEvent(&events[i], now))
	}
	return out
}

// FromEventDetail converts an event with its resolved attendees
func FromEventDetail(e *models.Event, now time.Time) EventDetailResponse {
	detail := EventDetailResponse{
		EventResponse: FromEvent(e, now),
		Attendees:     make([]AttendeeResponse, 0, len(e.Attendees)),
	}
	for _, a := range e.Attendees {
		att := AttendeeResponse{
			RegisteredAt: a.RegisteredAt,
			Status:       a.Status,
		}
		if a.Alumni != nil {
			att.Alumni = &AttendeeAlumni{
				ID:           a.Alumni.ID,
				Name:         a.Alumni.Name,
				Email:        a.Alumni.Email,
				ProfileImage: a.Alumni.ProfileImage,
			}
		}
		detail.Attendees = append(detail.Attendees, att)
	}
	return detail
}

// RegistrationResult is returned after a successful event registration
type RegistrationResult struct {
	EventID          int64 `json:"eventId"`
	CurrentAttendees int   `json:"currentAttendees"`
	AvailableSpots   int   `json:"availableSpots"`
}

// EventCategoryStats is one category bucket in the event statistics
type EventCategoryStats struct {
	Category       string  `json:"category"`
	Count          int64   `json:"count"`
	AvgAttendees   float64 `json:"avgAttendees"`
	TotalCapacity  int64   `json:"totalCapacity"`
	TotalAttendees int64   `json:"totalAttendees"`
}

// EventStats is the event statistics payload
type EventStats struct {
	ByCategory        []EventCategoryStats `json:"byCategory"`
	UpcomingEvents    int64                `json:"upcomingEvents"`
	FeaturedEvents    int64                `json:"featuredEvents"`
	TotalActiveEvents int64                `json:"totalActiveEvents"`
}
