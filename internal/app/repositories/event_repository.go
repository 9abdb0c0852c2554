package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/namalnexus/backend/internal/app/models"
	"github.com/namalnexus/backend/internal/app/models/dto"
	"github.com/namalnexus/backend/internal/db"
	"github.com/namalnexus/backend/internal/pkg/apperrors"
	"github.com/namalnexus/backend/internal/pkg/helpers"
)

var eventColumns = []string{
	"id", "title", "description", "date", "time", "location", "category",
	"max_attendees", "current_attendees",
	"organizer", "organizer_email", "organizer_phone",
	"registration_deadline", "event_image", "tags",
	"is_active", "is_featured", "event_type", "virtual_link",
	"created_at", "updated_at",
}

// eventSortColumns whitelists the sortable event fields
var eventSortColumns = map[string]string{
	"date":             "date",
	"title":            "title",
	"createdAt":        "created_at",
	"currentAttendees": "current_attendees",
}

const eventDefaultOrder = "date ASC"

// EventRepository handles database operations for events and their attendees
type EventRepository struct {
	db db.Querier
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db db.Querier) *EventRepository {
	return &EventRepository{db: db}
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	e := &models.Event{}
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Location, &e.Category,
		&e.MaxAttendees, &e.CurrentAttendees,
		&e.Organizer, &e.OrganizerContact.Email, &e.OrganizerContact.Phone,
		&e.RegistrationDeadline, &e.EventImage, &e.Tags,
		&e.IsActive, &e.IsFeatured, &e.EventType, &e.VirtualLink,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Create inserts a new event and fills in the generated fields
func (r *EventRepository) Create(ctx context.Context, e *models.Event) error {
	query, args, err := psql.Insert("events").
		Columns(
			"title", "description", "date", "time", "location", "category",
			"max_attendees", "organizer", "organizer_email", "organizer_phone",
			"registration_deadline", "event_image", "tags",
			"is_featured", "event_type", "virtual_link",
		).
		Values(
			e.Title, e.Description, e.Date, e.Time, e.Location, e.Category,
			e.MaxAttendees, e.Organizer, e.OrganizerContact.Email, e.OrganizerContact.Phone,
			e.RegistrationDeadline, e.EventImage, e.Tags,
			e.IsFeatured, e.EventType, e.VirtualLink,
		).
		Suffix("RETURNING id, current_attendees, is_active, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("building event insert query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).
		Scan(&e.ID, &e.CurrentAttendees, &e.IsActive, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

// List returns one page of active events matching the filters, together
// with the total number of matches.
func (r *EventRepository) List(ctx context.Context, q dto.EventListQuery, now time.Time) ([]models.Event, int64, error) {
	conditions := squirrel.And{squirrel.Eq{"is_active": true}}
	if q.Category != "" && q.Category != "all" {
		conditions = append(conditions, squirrel.Eq{"category": q.Category})
	}
	if q.EventType != "" {
		conditions = append(conditions, squirrel.Eq{"event_type": q.EventType})
	}
	if q.Upcoming {
		conditions = append(conditions, squirrel.Gt{"date": now})
	}
	if q.Featured {
		conditions = append(conditions, squirrel.Eq{"is_featured": true})
	}
	if q.Search != "" {
		conditions = append(conditions, searchCondition(q.Search,
			"title", "description", "location", "organizer"))
	}

	countQuery, countArgs, err := psql.Select("COUNT(*)").
		From("events").
		Where(conditions).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("building event count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting events: %w", err)
	}

	query, args, err := psql.Select(eventColumns...).
		From("events").
		Where(conditions).
		OrderBy(orderClause(q.SortBy, q.SortOrder, eventSortColumns, eventDefaultOrder)).
		Limit(uint64(q.Limit)).
		Offset(helpers.CalculateOffset(q.Page, q.Limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("building event list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	events := make([]models.Event, 0, q.Limit)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning event row: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading event rows: %w", err)
	}

	return events, total, nil
}

// GetByID returns an active event by ID, without its attendee list
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query, args, err := psql.Select(eventColumns...).
		From("events").
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building event query: %w", err)
	}

	e, err := scanEvent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("getting event by ID: %w", err)
	}
	return e, nil
}

// ListAttendees returns an event's registrations with their alumni resolved.
// The alumni join intentionally skips the is_active filter so registrations
// of since-deactivated alumni still resolve.
func (r *EventRepository) ListAttendees(ctx context.Context, eventID int64) ([]models.Attendee, error) {
	query, args, err := psql.
		Select(
			"att.id", "att.alumni_id", "att.registered_at", "att.status",
			"a.id", "a.name", "a.email", "a.profile_image",
		).
		From("event_attendees att").
		LeftJoin("alumni a ON a.id = att.alumni_id").
		Where(squirrel.Eq{"att.event_id": eventID}).
		OrderBy("att.registered_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building attendees query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying attendees: %w", err)
	}
	defer rows.Close()

	attendees := []models.Attendee{}
	for rows.Next() {
		var (
			att                    models.Attendee
			alumniID               *int64
			alumniName, alumniMail *string
			alumniImage            *string
		)
		err := rows.Scan(&att.ID, &att.AlumniID, &att.RegisteredAt, &att.Status,
			&alumniID, &alumniName, &alumniMail, &alumniImage)
		if err != nil {
			return nil, fmt.Errorf("scanning attendee row: %w", err)
		}
		if alumniID != nil {
			att.Alumni = &models.Alumni{
				ID:           *alumniID,
				Name:         *alumniName,
				Email:        *alumniMail,
				ProfileImage: *alumniImage,
			}
		}
		attendees = append(attendees, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading attendee rows: %w", err)
	}

	return attendees, nil
}

// HasAttendee reports whether the alumni already holds a registration on the
// event, in any status.
func (r *EventRepository) HasAttendee(ctx context.Context, eventID, alumniID int64) (bool, error) {
	query, args, err := psql.Select("1").
		From("event_attendees").
		Where(squirrel.Eq{"event_id": eventID, "alumni_id": alumniID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("building attendee check query: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, query, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("checking attendee: %w", err)
	}
	return true, nil
}

// AddAttendee appends a registration with status registered
func (r *EventRepository) AddAttendee(ctx context.Context, eventID, alumniID int64) (*models.Attendee, error) {
	query, args, err := psql.Insert("event_attendees").
		Columns("event_id", "alumni_id", "status").
		Values(eventID, alumniID, models.AttendeeRegistered).
		Suffix("RETURNING id, registered_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building attendee insert query: %w", err)
	}

	att := &models.Attendee{AlumniID: alumniID, Status: models.AttendeeRegistered}
	err = r.db.QueryRow(ctx, query, args...).Scan(&att.ID, &att.RegisteredAt)
	if err != nil {
		return nil, fmt.Errorf("inserting attendee: %w", err)
	}
	return att, nil
}

// RecountAttendees recomputes current_attendees from the registrations that
// count toward capacity and returns the new value.
func (r *EventRepository) RecountAttendees(ctx context.Context, eventID int64) (int, error) {
	query, args, err := psql.Update("events").
		Set("current_attendees", squirrel.Expr(
			"(SELECT COUNT(*) FROM event_attendees WHERE event_id = ? AND status IN (?, ?))",
			eventID, models.AttendeeRegistered, models.AttendeeAttended,
		)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": eventID}).
		Suffix("RETURNING current_attendees").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building attendee recount query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("recounting attendees: %w", err)
	}
	return count, nil
}

// Update applies the given column changes to an active event
func (r *EventRepository) Update(ctx context.Context, id int64, set map[string]interface{}) error {
	builder := psql.Update("events").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "is_active": true})
	for col, val := range set {
		builder = builder.Set(col, val)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("building event update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// SoftDelete deactivates an event without removing it
func (r *EventRepository) SoftDelete(ctx context.Context, id int64) error {
	query, args, err := psql.Update("events").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building event delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("soft deleting event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// Stats aggregates the active events
func (r *EventRepository) Stats(ctx context.Context, now time.Time) (dto.EventStats, error) {
	stats := dto.EventStats{ByCategory: []dto.EventCategoryStats{}}
	active := squirrel.Eq{"is_active": true}

	query, args, err := psql.
		Select(
			"category",
			"COUNT(*) AS count",
			"COALESCE(AVG(current_attendees), 0)",
			"COALESCE(SUM(max_attendees), 0)",
			"COALESCE(SUM(current_attendees), 0)",
		).
		From("events").
		Where(active).
		GroupBy("category").
		OrderBy("count DESC").
		ToSql()
	if err != nil {
		return stats, fmt.Errorf("building category stats query: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return stats, fmt.Errorf("aggregating events by category: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var bucket dto.EventCategoryStats
		err := rows.Scan(&bucket.Category, &bucket.Count, &bucket.AvgAttendees,
			&bucket.TotalCapacity, &bucket.TotalAttendees)
		if err != nil {
			return stats, fmt.Errorf("scanning category bucket: %w", err)
		}
		stats.ByCategory = append(stats.ByCategory, bucket)
	}
	if err := rows.Err(); err != nil {
		return stats, fmt.Errorf("reading category buckets: %w", err)
	}

	count := func(conditions squirrel.And) (int64, error) {
		query, args, err := psql.Select("COUNT(*)").
			From("events").
			Where(conditions).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("building event count query: %w", err)
		}
		var n int64
		if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
			return 0, fmt.Errorf("counting events: %w", err)
		}
		return n, nil
	}

	if stats.UpcomingEvents, err = count(squirrel.And{active, squirrel.Gt{"date": now}}); err != nil {
		return stats, err
	}
	if stats.FeaturedEvents, err = count(squirrel.And{
		active, squirrel.Eq{"is_featured": true}, squirrel.Gt{"date": now},
	}); err != nil {
		return stats, err
	}
	if stats.TotalActiveEvents, err = count(squirrel.And{active}); err != nil {
		return stats, err
	}

	return stats, nil
}
