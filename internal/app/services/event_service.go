package services

import (
	"context"
	"strings"
	"time"

	"github.com/namalnexus/backend/internal/app/models"
	"github.com/namalnexus/backend/internal/app/models/dto"
	"github.com/namalnexus/backend/internal/pkg/apperrors"
	"github.com/namalnexus/backend/internal/pkg/helpers"
	"github.com/namalnexus/backend/internal/pkg/validation"
)

// EventRepository is the persistence surface the event service depends on
type EventRepository interface {
	Create(ctx context.Context, e *models.Event) error
	List(ctx context.Context, q dto.EventListQuery, now time.Time) ([]models.Event, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	ListAttendees(ctx context.Context, eventID int64) ([]models.Attendee, error)
	HasAttendee(ctx context.Context, eventID, alumniID int64) (bool, error)
	AddAttendee(ctx context.Context, eventID, alumniID int64) (*models.Attendee, error)
	RecountAttendees(ctx context.Context, eventID int64) (int, error)
	Update(ctx context.Context, id int64, set map[string]interface{}) error
	SoftDelete(ctx context.Context, id int64) error
	Stats(ctx context.Context, now time.Time) (dto.EventStats, error)
}

// EventService implements the event calendar operations
type EventService struct {
	repo EventRepository
}

// NewEventService creates a new EventService
func NewEventService(repo EventRepository) *EventService {
	return &EventService{repo: repo}
}

// List returns one page of active events matching the query
func (s *EventService) List(ctx context.Context, q dto.EventListQuery) ([]models.Event, int64, error) {
	if q.Page < 1 {
		q.Page = helpers.DefaultPage
	}
	if q.Limit <= 0 {
		q.Limit = helpers.DefaultPageSize
	} else if q.Limit > helpers.MaxPageSize {
		q.Limit = helpers.MaxPageSize
	}
	return s.repo.List(ctx, q, time.Now())
}

// GetByID returns an active event with its attendee list resolved
func (s *EventService) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	attendees, err := s.repo.ListAttendees(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Attendees = attendees
	return e, nil
}

// Create validates and persists a new event
func (s *EventService) Create(ctx context.Context, req dto.CreateEventRequest) (*models.Event, error) {
	if errs := validateEventCreate(req, time.Now()); len(errs) > 0 {
		return nil, apperrors.NewValidationError(errs...)
	}

	e := &models.Event{
		Title:                strings.TrimSpace(req.Title),
		Description:          strings.TrimSpace(req.Description),
		Date:                 req.Date,
		Time:                 req.Time,
		Location:             strings.TrimSpace(req.Location),
		Category:             req.Category,
		MaxAttendees:         req.MaxAttendees,
		Organizer:            strings.TrimSpace(req.Organizer),
		OrganizerContact:     req.OrganizerContact,
		RegistrationDeadline: req.RegistrationDeadline,
		EventImage:           req.EventImage,
		Tags:                 req.Tags,
		IsFeatured:           req.IsFeatured,
		EventType:            req.EventType,
		VirtualLink:          req.VirtualLink,
	}
	if e.EventImage == "" {
		e.EventImage = models.DefaultEventImage
	}
	if e.EventType == "" {
		e.EventType = "in-person"
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Update validates and applies a partial update, then returns the fresh
// record. The existing event is loaded first so the deadline-before-date
// rule is checked against the final field values.
func (s *EventService) Update(ctx context.Context, id int64, req dto.UpdateEventRequest) (*models.Event, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if errs := validateEventUpdate(req, existing, time.Now()); len(errs) > 0 {
		return nil, apperrors.NewValidationError(errs...)
	}

	set := map[string]interface{}{}
	if req.Title != nil {
		set["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		set["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Date != nil {
		set["date"] = *req.Date
	}
	if req.Time != nil {
		set["time"] = *req.Time
	}
	if req.Location != nil {
		set["location"] = strings.TrimSpace(*req.Location)
	}
	if req.Category != nil {
		set["category"] = *req.Category
	}
	if req.MaxAttendees != nil {
		set["max_attendees"] = *req.MaxAttendees
	}
	if req.Organizer != nil {
		set["organizer"] = strings.TrimSpace(*req.Organizer)
	}
	if req.OrganizerContact != nil {
		set["organizer_email"] = req.OrganizerContact.Email
		set["organizer_phone"] = req.OrganizerContact.Phone
	}
	if req.RegistrationDeadline != nil {
		set["registration_deadline"] = *req.RegistrationDeadline
	}
	if req.EventImage != nil {
		set["event_image"] = *req.EventImage
	}
	if req.Tags != nil {
		set["tags"] = *req.Tags
	}
	if req.IsFeatured != nil {
		set["is_featured"] = *req.IsFeatured
	}
	if req.EventType != nil {
		set["event_type"] = *req.EventType
	}
	if req.VirtualLink != nil {
		set["virtual_link"] = *req.VirtualLink
	}

	if len(set) > 0 {
		if err := s.repo.Update(ctx, id, set); err != nil {
			return nil, err
		}
	}
	return s.repo.GetByID(ctx, id)
}

// Delete soft deletes an event
func (s *EventService) Delete(ctx context.Context, id int64) error {
	return s.repo.SoftDelete(ctx, id)
}

// Register appends an alumni registration to an event. The duplicate check
// and the append are separate statements; concurrent registrations for the
// last spot can both succeed.
func (s *EventService) Register(ctx context.Context, eventID, alumniID int64) (dto.RegistrationResult, error) {
	var result dto.RegistrationResult

	if alumniID == 0 {
		return result, apperrors.NewValidationError("Alumni ID is required")
	}

	e, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return result, err
	}
	if !e.IsRegistrationOpen(time.Now()) {
		return result, apperrors.ErrRegistrationClosed
	}

	registered, err := s.repo.HasAttendee(ctx, eventID, alumniID)
	if err != nil {
		return result, err
	}
	if registered {
		return result, apperrors.ErrAlreadyRegistered
	}

	if _, err := s.repo.AddAttendee(ctx, eventID, alumniID); err != nil {
		return result, err
	}
	count, err := s.repo.RecountAttendees(ctx, eventID)
	if err != nil {
		return result, err
	}

	result = dto.RegistrationResult{
		EventID:          e.ID,
		CurrentAttendees: count,
		AvailableSpots:   e.MaxAttendees - count,
	}
	return result, nil
}

// Stats returns the event statistics with display rounding applied
func (s *EventService) Stats(ctx context.Context) (dto.EventStats, error) {
	stats, err := s.repo.Stats(ctx, time.Now())
	if err != nil {
		return stats, err
	}
	for i := range stats.ByCategory {
		stats.ByCategory[i].AvgAttendees = helpers.RoundAvg(stats.ByCategory[i].AvgAttendees)
	}
	return stats, nil
}

func validateEventCreate(req dto.CreateEventRequest, now time.Time) []string {
	var errs []string

	title := strings.TrimSpace(req.Title)
	if title == "" {
		errs = append(errs, "Event title is required")
	} else if len(title) > 200 {
		errs = append(errs, "Event title cannot exceed 200 characters")
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		errs = append(errs, "Event description is required")
	} else if len(description) > 2000 {
		errs = append(errs, "Event description cannot exceed 2000 characters")
	}

	if req.Date.IsZero() {
		errs = append(errs, "Event date is required")
	} else if !req.Date.After(now) {
		errs = append(errs, "Event date must be in the future")
	}

	if req.Time == "" {
		errs = append(errs, "Event time is required")
	} else if !validation.IsValidTime(req.Time) {
		errs = append(errs, "Please enter time in HH:MM format")
	}

	location := strings.TrimSpace(req.Location)
	if location == "" {
		errs = append(errs, "Event location is required")
	} else if len(location) > 200 {
		errs = append(errs, "Location cannot exceed 200 characters")
	}

	if req.Category == "" {
		errs = append(errs, "Event category is required")
	} else if !validation.OneOf(req.Category, models.ValidEventCategories) {
		errs = append(errs, "Please select a valid event category")
	}

	switch {
	case req.MaxAttendees == 0:
		errs = append(errs, "Maximum attendees is required")
	case req.MaxAttendees < 1:
		errs = append(errs, "Maximum attendees must be at least 1")
	case req.MaxAttendees > 10000:
		errs = append(errs, "Maximum attendees cannot exceed 10,000")
	}

	organizer := strings.TrimSpace(req.Organizer)
	if organizer == "" {
		errs = append(errs, "Event organizer is required")
	} else if len(organizer) > 100 {
		errs = append(errs, "Organizer name cannot exceed 100 characters")
	}

	if req.OrganizerContact.Email == "" {
		errs = append(errs, "Organizer email is required")
	} else if !validation.IsValidEmail(req.OrganizerContact.Email) {
		errs = append(errs, "Please enter a valid email")
	}
	if req.OrganizerContact.Phone != "" && !validation.CompiledPatterns.Phone.MatchString(req.OrganizerContact.Phone) {
		errs = append(errs, "Please enter a valid phone number")
	}

	if req.RegistrationDeadline != nil && !req.RegistrationDeadline.Before(req.Date) {
		errs = append(errs, "Registration deadline must be before event date")
	}

	if req.EventType != "" && !validation.OneOf(req.EventType, models.ValidEventTypes) {
		errs = append(errs, "Please select a valid event type")
	}

	if req.VirtualLink != "" && !validation.IsValidURL(req.VirtualLink) {
		errs = append(errs, "Please enter a valid URL for virtual link")
	}

	return errs
}

func validateEventUpdate(req dto.UpdateEventRequest, existing *models.Event, now time.Time) []string {
	var errs []string

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			errs = append(errs, "Event title is required")
		} else if len(title) > 200 {
			errs = append(errs, "Event title cannot exceed 200 characters")
		}
	}

	if req.Description != nil && len(strings.TrimSpace(*req.Description)) > 2000 {
		errs = append(errs, "Event description cannot exceed 2000 characters")
	}

	if req.Date != nil && !req.Date.After(now) {
		errs = append(errs, "Event date must be in the future")
	}

	if req.Time != nil && !validation.IsValidTime(*req.Time) {
		errs = append(errs, "Please enter time in HH:MM format")
	}

	if req.Location != nil && len(strings.TrimSpace(*req.Location)) > 200 {
		errs = append(errs, "Location cannot exceed 200 characters")
	}

	if req.Category != nil && !validation.OneOf(*req.Category, models.ValidEventCategories) {
		errs = append(errs, "Please select a valid event category")
	}

	if req.MaxAttendees != nil {
		if *req.MaxAttendees < 1 {
			errs = append(errs, "Maximum attendees must be at least 1")
		} else if *req.MaxAttendees > 10000 {
			errs = append(errs, "Maximum attendees cannot exceed 10,000")
		}
	}

	if req.Organizer != nil && len(strings.TrimSpace(*req.Organizer)) > 100 {
		errs = append(errs, "Organizer name cannot exceed 100 characters")
	}

	if req.OrganizerContact != nil {
		if req.OrganizerContact.Email == "" {
			errs = append(errs, "Organizer email is required")
		} else if !validation.IsValidEmail(req.OrganizerContact.Email) {
			errs = append(errs, "Please enter a valid email")
		}
		if req.OrganizerContact.Phone != "" && !validation.CompiledPatterns.Phone.MatchString(req.OrganizerContact.Phone) {
			errs = append(errs, "Please enter a valid phone number")
		}
	}

	// Deadline and date are checked against the values the record will
	// hold after the update.
	date := existing.Date
	if req.Date != nil {
		date = *req.Date
	}
	deadline := existing.RegistrationDeadline
	if req.RegistrationDeadline != nil {
		deadline = req.RegistrationDeadline
	}
	if deadline != nil && !deadline.Before(date) {
		errs = append(errs, "Registration deadline must be before event date")
	}

	if req.EventType != nil && !validation.OneOf(*req.EventType, models.ValidEventTypes) {
		errs = append(errs, "Please select a valid event type")
	}

	if req.VirtualLink != nil && *req.VirtualLink != "" && !validation.IsValidURL(*req.VirtualLink) {
		errs = append(errs, "Please enter a valid URL for virtual link")
	}

	return errs
}
