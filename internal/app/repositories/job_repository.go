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

// job columns prefixed for the join with alumni
var jobColumns = []string{
	"j.id", "j.title", "j.company", "j.location", "j.description",
	"j.requirements", "j.skills", "j.benefits",
	"j.salary_min", "j.salary_max", "j.salary_currency",
	"j.job_type", "j.experience_level", "j.category", "j.posted_by",
	"j.application_deadline", "j.application_email", "j.application_url",
	"j.is_active", "j.views", "j.applications", "j.created_at", "j.updated_at",
}

// posterColumns resolve the posted_by reference; nullable when the
// reference is dangling.
var posterColumns = []string{
	"a.id", "a.name", "a.email", "a.company", "a.current_position", "a.profile_image",
}

// jobSortColumns whitelists the sortable job fields
var jobSortColumns = map[string]string{
	"title":     "j.title",
	"company":   "j.company",
	"views":     "j.views",
	"deadline":  "j.application_deadline",
	"createdAt": "j.created_at",
}

const jobDefaultOrder = "j.created_at DESC"

// JobRepository handles database operations for job postings
type JobRepository struct {
	db db.Querier
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db db.Querier) *JobRepository {
	return &JobRepository{db: db}
}

func scanJob(row pgx.Row) (*models.Job, error) {
	j := &models.Job{}
	var (
		posterID                      *int64
		posterName, posterEmail       *string
		posterCompany, posterPosition *string
		posterImage                   *string
	)

	err := row.Scan(
		&j.ID, &j.Title, &j.Company, &j.Location, &j.Description,
		&j.Requirements, &j.Skills, &j.Benefits,
		&j.Salary.Min, &j.Salary.Max, &j.Salary.Currency,
		&j.JobType, &j.ExperienceLevel, &j.Category, &j.PostedBy,
		&j.ApplicationDeadline, &j.ApplicationEmail, &j.ApplicationURL,
		&j.IsActive, &j.Views, &j.Applications, &j.CreatedAt, &j.UpdatedAt,
		&posterID, &posterName, &posterEmail, &posterCompany, &posterPosition, &posterImage,
	)
	if err != nil {
		return nil, err
	}

	if posterID != nil {
		j.Poster = &models.Alumni{
			ID:              *posterID,
			Name:            *posterName,
			Email:           *posterEmail,
			Company:         *posterCompany,
			CurrentPosition: *posterPosition,
			ProfileImage:    *posterImage,
		}
	}
	return j, nil
}

func (r *JobRepository) selectJobs() squirrel.SelectBuilder {
	cols := append(append([]string{}, jobColumns...), posterColumns...)
	return psql.Select(cols...).
		From("jobs j").
		LeftJoin("alumni a ON a.id = j.posted_by")
}

// Create inserts a new job posting and fills in the generated fields
func (r *JobRepository) Create(ctx context.Context, j *models.Job) error {
	query, args, err := psql.Insert("jobs").
		Columns(
			"title", "company", "location", "description",
			"requirements", "skills", "benefits",
			"salary_min", "salary_max", "salary_currency",
			"job_type", "experience_level", "category", "posted_by",
			"application_deadline", "application_email", "application_url",
		).
		Values(
			j.Title, j.Company, j.Location, j.Description,
			j.Requirements, j.Skills, j.Benefits,
			j.Salary.Min, j.Salary.Max, j.Salary.Currency,
			j.JobType, j.ExperienceLevel, j.Category, j.PostedBy,
			j.ApplicationDeadline, j.ApplicationEmail, j.ApplicationURL,
		).
		Suffix("RETURNING id, is_active, views, applications, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("building job insert query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).
		Scan(&j.ID, &j.IsActive, &j.Views, &j.Applications, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting job: %w", err)
	}
	return nil
}

// List returns one page of active job postings matching the filters,
// together with the total number of matches.
func (r *JobRepository) List(ctx context.Context, q dto.JobListQuery) ([]models.Job, int64, error) {
	conditions := squirrel.And{squirrel.Eq{"j.is_active": true}}
	if q.Category != "" && q.Category != "all" {
		conditions = append(conditions, squirrel.Eq{"j.category": q.Category})
	}
	if q.JobType != "" {
		conditions = append(conditions, squirrel.Eq{"j.job_type": q.JobType})
	}
	if q.ExperienceLevel != "" {
		conditions = append(conditions, squirrel.Eq{"j.experience_level": q.ExperienceLevel})
	}
	if q.Location != "" {
		conditions = append(conditions, squirrel.ILike{"j.location": "%" + q.Location + "%"})
	}
	if q.Search != "" {
		conditions = append(conditions, searchCondition(q.Search,
			"j.title", "j.company", "j.description", "j.location"))
	}

	countQuery, countArgs, err := psql.Select("COUNT(*)").
		From("jobs j").
		Where(conditions).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("building job count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting jobs: %w", err)
	}

	query, args, err := r.selectJobs().
		Where(conditions).
		OrderBy(orderClause(q.SortBy, q.SortOrder, jobSortColumns, jobDefaultOrder)).
		Limit(uint64(q.Limit)).
		Offset(helpers.CalculateOffset(q.Page, q.Limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("building job list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]models.Job, 0, q.Limit)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning job row: %w", err)
		}
		jobs = append(jobs, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading job rows: %w", err)
	}

	return jobs, total, nil
}

// GetByID returns an active job posting by ID
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	query, args, err := r.selectJobs().
		Where(squirrel.Eq{"j.id": id, "j.is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building job query: %w", err)
	}

	j, err := scanJob(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("getting job by ID: %w", err)
	}
	return j, nil
}

// IncrementViews bumps the view counter of a job posting
func (r *JobRepository) IncrementViews(ctx context.Context, id int64) error {
	query, args, err := psql.Update("jobs").
		Set("views", squirrel.Expr("views + 1")).
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building view increment query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("incrementing job views: %w", err)
	}
	return nil
}

// Update applies the given column changes to an active job posting
func (r *JobRepository) Update(ctx context.Context, id int64, set map[string]interface{}) error {
	builder := psql.Update("jobs").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "is_active": true})
	for col, val := range set {
		builder = builder.Set(col, val)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("building job update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}

// SoftDelete deactivates a job posting without removing it
func (r *JobRepository) SoftDelete(ctx context.Context, id int64) error {
	query, args, err := psql.Update("jobs").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building job delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("soft deleting job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}

// Stats aggregates the active job postings
func (r *JobRepository) Stats(ctx context.Context, now time.Time) (dto.JobStats, error) {
	stats := dto.JobStats{
		ByCategory:   []dto.JobCategoryStats{},
		ByJobType:    []dto.LabelCount{},
		ByExperience: []dto.LabelCount{},
	}
	active := squirrel.Eq{"is_active": true}

	query, args, err := psql.
		Select(
			"category",
			"COUNT(*) AS count",
			"COALESCE(AVG(views), 0)",
			"COALESCE(SUM(applications), 0)",
			"COALESCE(AVG(salary_min), 0)",
			"COALESCE(AVG(salary_max), 0)",
		).
		From("jobs").
		Where(active).
		GroupBy("category").
		OrderBy("count DESC").
		ToSql()
	if err != nil {
		return stats, fmt.Errorf("building category stats query: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return stats, fmt.Errorf("aggregating jobs by category: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var bucket dto.JobCategoryStats
		err := rows.Scan(&bucket.Category, &bucket.Count, &bucket.AvgViews,
			&bucket.TotalApplications, &bucket.AvgMinSalary, &bucket.AvgMaxSalary)
		if err != nil {
			return stats, fmt.Errorf("scanning category bucket: %w", err)
		}
		stats.ByCategory = append(stats.ByCategory, bucket)
	}
	if err := rows.Err(); err != nil {
		return stats, fmt.Errorf("reading category buckets: %w", err)
	}

	byColumn := func(column string) ([]dto.LabelCount, error) {
		query, args, err := psql.Select(column, "COUNT(*) AS count").
			From("jobs").
			Where(active).
			GroupBy(column).
			OrderBy("count DESC").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("building %s stats query: %w", column, err)
		}
		rows, err := r.db.Query(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("aggregating jobs by %s: %w", column, err)
		}
		defer rows.Close()

		buckets := []dto.LabelCount{}
		for rows.Next() {
			var bucket dto.LabelCount
			if err := rows.Scan(&bucket.Label, &bucket.Count); err != nil {
				return nil, fmt.Errorf("scanning %s bucket: %w", column, err)
			}
			buckets = append(buckets, bucket)
		}
		return buckets, rows.Err()
	}

	if stats.ByJobType, err = byColumn("job_type"); err != nil {
		return stats, err
	}
	if stats.ByExperience, err = byColumn("experience_level"); err != nil {
		return stats, err
	}

	query, args, err = psql.Select("COUNT(*)").
		From("jobs").
		Where(squirrel.And{
			active,
			squirrel.Expr("created_at >= ?", now.AddDate(0, 0, -30)),
		}).
		ToSql()
	if err != nil {
		return stats, fmt.Errorf("building recent jobs query: %w", err)
	}
	if err := r.db.QueryRow(ctx, query, args...).Scan(&stats.RecentJobs); err != nil {
		return stats, fmt.Errorf("counting recent jobs: %w", err)
	}

	query, args, err = psql.Select("COUNT(*)").From("jobs").Where(active).ToSql()
	if err != nil {
		return stats, fmt.Errorf("building total jobs query: %w", err)
	}
	if err := r.db.QueryRow(ctx, query, args...).Scan(&stats.TotalActiveJobs); err != nil {
		return stats, fmt.Errorf("counting active jobs: %w", err)
	}

	return stats, nil
}
