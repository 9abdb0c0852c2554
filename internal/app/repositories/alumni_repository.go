package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/namalnexus/backend/internal/app/models"
	"github.com/namalnexus/backend/internal/app/models/dto"
	"github.com/namalnexus/backend/internal/db"
	"github.com/namalnexus/backend/internal/pkg/apperrors"
	"github.com/namalnexus/backend/internal/pkg/helpers"
)

var alumniColumns = []string{
	"id", "name", "email", "graduation_year", "degree",
	"current_position", "company", "location", "profile_image", "bio",
	"skills", "linkedin_url", "twitter_url", "github_url",
	"is_active", "joined_at", "created_at", "updated_at",
}

// alumniSortColumns whitelists the sortable alumni fields
var alumniSortColumns = map[string]string{
	"name":           "name",
	"email":          "email",
	"graduationYear": "graduation_year",
	"createdAt":      "created_at",
	"joinedAt":       "joined_at",
}

const alumniDefaultOrder = "created_at DESC"

// AlumniRepository handles database operations for alumni records
type AlumniRepository struct {
	db db.Querier
}

// NewAlumniRepository creates a new AlumniRepository
func NewAlumniRepository(db db.Querier) *AlumniRepository {
	return &AlumniRepository{db: db}
}

func scanAlumni(row pgx.Row) (*models.Alumni, error) {
	a := &models.Alumni{}
	err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.GraduationYear, &a.Degree,
		&a.CurrentPosition, &a.Company, &a.Location, &a.ProfileImage, &a.Bio,
		&a.Skills, &a.SocialLinks.LinkedIn, &a.SocialLinks.Twitter, &a.SocialLinks.GitHub,
		&a.IsActive, &a.JoinedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a new alumni record and fills in the generated fields
func (r *AlumniRepository) Create(ctx context.Context, a *models.Alumni) error {
	query, args, err := psql.Insert("alumni").
		Columns(
			"name", "email", "graduation_year", "degree",
			"current_position", "company", "location", "profile_image", "bio",
			"skills", "linkedin_url", "twitter_url", "github_url",
		).
		Values(
			a.Name, a.Email, a.GraduationYear, a.Degree,
			a.CurrentPosition, a.Company, a.Location, a.ProfileImage, a.Bio,
			a.Skills, a.SocialLinks.LinkedIn, a.SocialLinks.Twitter, a.SocialLinks.GitHub,
		).
		Suffix("RETURNING id, is_active, joined_at, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("building alumni insert query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).
		Scan(&a.ID, &a.IsActive, &a.JoinedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("inserting alumni: %w", err)
	}
	return nil
}

// List returns one page of active alumni matching the filters, together with
// the total number of matches.
func (r *AlumniRepository) List(ctx context.Context, q dto.AlumniListQuery) ([]models.Alumni, int64, error) {
	conditions := squirrel.And{squirrel.Eq{"is_active": true}}
	if q.GraduationYear != nil {
		conditions = append(conditions, squirrel.Eq{"graduation_year": *q.GraduationYear})
	}
	if q.Degree != "" {
		conditions = append(conditions, squirrel.ILike{"degree": "%" + q.Degree + "%"})
	}
	if q.Location != "" {
		conditions = append(conditions, squirrel.ILike{"location": "%" + q.Location + "%"})
	}
	if q.Company != "" {
		conditions = append(conditions, squirrel.ILike{"company": "%" + q.Company + "%"})
	}
	if q.Search != "" {
		conditions = append(conditions, searchCondition(q.Search,
			"name", "company", "current_position", "location"))
	}

	countQuery, countArgs, err := psql.Select("COUNT(*)").
		From("alumni").
		Where(conditions).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("building alumni count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting alumni: %w", err)
	}

	query, args, err := psql.Select(alumniColumns...).
		From("alumni").
		Where(conditions).
		OrderBy(orderClause(q.SortBy, q.SortOrder, alumniSortColumns, alumniDefaultOrder)).
		Limit(uint64(q.Limit)).
		Offset(helpers.CalculateOffset(q.Page, q.Limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("building alumni list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying alumni: %w", err)
	}
	defer rows.Close()

	alumni := make([]models.Alumni, 0, q.Limit)
	for rows.Next() {
		a, err := scanAlumni(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning alumni row: %w", err)
		}
		alumni = append(alumni, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading alumni rows: %w", err)
	}

	return alumni, total, nil
}

// GetByID returns an active alumni by ID
func (r *AlumniRepository) GetByID(ctx context.Context, id int64) (*models.Alumni, error) {
	query, args, err := psql.Select(alumniColumns...).
		From("alumni").
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building alumni query: %w", err)
	}

	a, err := scanAlumni(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAlumniNotFound
		}
		return nil, fmt.Errorf("getting alumni by ID: %w", err)
	}
	return a, nil
}

// Exists reports whether an active alumni with the given ID exists
func (r *AlumniRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query, args, err := psql.Select("1").
		From("alumni").
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("building alumni exists query: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, query, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("checking alumni existence: %w", err)
	}
	return true, nil
}

// Update applies the given column changes to an active alumni record
func (r *AlumniRepository) Update(ctx context.Context, id int64, set map[string]interface{}) error {
	builder := psql.Update("alumni").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "is_active": true})
	for col, val := range set {
		builder = builder.Set(col, val)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("building alumni update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("updating alumni: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAlumniNotFound
	}
	return nil
}

// SoftDelete deactivates an alumni record without removing it
func (r *AlumniRepository) SoftDelete(ctx context.Context, id int64) error {
	query, args, err := psql.Update("alumni").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building alumni delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("soft deleting alumni: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAlumniNotFound
	}
	return nil
}

// Stats aggregates the active alumni population
func (r *AlumniRepository) Stats(ctx context.Context) (dto.AlumniStats, error) {
	stats := dto.AlumniStats{
		ByDegree: []dto.DegreeCount{},
		ByYear:   []dto.YearCount{},
	}
	active := squirrel.Eq{"is_active": true}

	query, args, err := psql.
		Select("COUNT(*)", "COALESCE(AVG(graduation_year), 0)").
		From("alumni").
		Where(active).
		ToSql()
	if err != nil {
		return stats, fmt.Errorf("building alumni overview query: %w", err)
	}
	err = r.db.QueryRow(ctx, query, args...).
		Scan(&stats.Overview.TotalAlumni, &stats.Overview.AvgGraduationYear)
	if err != nil {
		return stats, fmt.Errorf("aggregating alumni overview: %w", err)
	}

	query, args, err = psql.Select("degree", "COUNT(*) AS count").
		From("alumni").
		Where(active).
		GroupBy("degree").
		OrderBy("count DESC").
		ToSql()
	if err != nil {
		return stats, fmt.Errorf("building degree stats query: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return stats, fmt.Errorf("aggregating alumni by degree: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var bucket dto.DegreeCount
		if err := rows.Scan(&bucket.Degree, &bucket.Count); err != nil {
			return stats, fmt.Errorf("scanning degree bucket: %w", err)
		}
		stats.ByDegree = append(stats.ByDegree, bucket)
	}
	if err := rows.Err(); err != nil {
		return stats, fmt.Errorf("reading degree buckets: %w", err)
	}

	query, args, err = psql.Select("graduation_year", "COUNT(*) AS count").
		From("alumni").
		Where(active).
		GroupBy("graduation_year").
		OrderBy("graduation_year DESC").
		ToSql()
	if err != nil {
		return stats, fmt.Errorf("building year stats query: %w", err)
	}
	rows, err = r.db.Query(ctx, query, args...)
	if err != nil {
		return stats, fmt.Errorf("aggregating alumni by year: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var bucket dto.YearCount
		if err := rows.Scan(&bucket.Year, &bucket.Count); err != nil {
			return stats, fmt.Errorf("scanning year bucket: %w", err)
		}
		stats.ByYear = append(stats.ByYear, bucket)
	}
	if err := rows.Err(); err != nil {
		return stats, fmt.Errorf("reading year buckets: %w", err)
	}

	return stats, nil
}
