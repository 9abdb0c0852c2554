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

// JobRepository is the persistence surface the job service depends on
type JobRepository interface {
	Create(ctx context.Context, j *models.Job) error
	List(ctx context.Context, q dto.JobListQuery) ([]models.Job, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Job, error)
	IncrementViews(ctx context.Context, id int64) error
	Update(ctx context.Context, id int64, set map[string]interface{}) error
	SoftDelete(ctx context.Context, id int64) error
	Stats(ctx context.Context, now time.Time) (dto.JobStats, error)
}

// AlumniChecker verifies soft references against the alumni directory
type AlumniChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// JobService implements the job board operations
type JobService struct {
	repo   JobRepository
	alumni AlumniChecker
}

// NewJobService creates a new JobService
func NewJobService(repo JobRepository, alumni AlumniChecker) *JobService {
	return &JobService{repo: repo, alumni: alumni}
}

// List returns one page of active job postings matching the query
func (s *JobService) List(ctx context.Context, q dto.JobListQuery) ([]models.Job, int64, error) {
	if q.Page < 1 {
		q.Page = helpers.DefaultPage
	}
	if q.Limit <= 0 {
		q.Limit = helpers.DefaultPageSize
	} else if q.Limit > helpers.MaxPageSize {
		q.Limit = helpers.MaxPageSize
	}
	return s.repo.List(ctx, q)
}

// GetByID returns an active job posting and bumps its view counter. The
// returned record carries the view count from before this read, matching
// how the counter has always been reported.
func (s *JobService) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	j, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	return j, nil
}

// Create validates and persists a new job posting
func (s *JobService) Create(ctx context.Context, req dto.CreateJobRequest) (*models.Job, error) {
	if errs := validateJobCreate(req, time.Now()); len(errs) > 0 {
		return nil, apperrors.NewValidationError(errs...)
	}

	exists, err := s.alumni.Exists(ctx, req.PostedBy)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrInvalidPostedBy
	}

	j := &models.Job{
		Title:               strings.TrimSpace(req.Title),
		Company:             strings.TrimSpace(req.Company),
		Location:            strings.TrimSpace(req.Location),
		Description:         strings.TrimSpace(req.Description),
		Requirements:        req.Requirements,
		Salary:              req.Salary,
		JobType:             req.JobType,
		ExperienceLevel:     req.ExperienceLevel,
		Category:            req.Category,
		PostedBy:            req.PostedBy,
		ApplicationDeadline: req.ApplicationDeadline,
		ApplicationEmail:    strings.TrimSpace(req.ApplicationEmail),
		ApplicationURL:      strings.TrimSpace(req.ApplicationURL),
		Skills:              req.Skills,
		Benefits:            req.Benefits,
	}
	if j.Salary.Currency == "" {
		j.Salary.Currency = models.DefaultCurrency
	}
	if j.Requirements == nil {
		j.Requirements = []string{}
	}
	if j.Skills == nil {
		j.Skills = []string{}
	}
	if j.Benefits == nil {
		j.Benefits = []string{}
	}

	if err := s.repo.Create(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

// Update validates and applies a partial update, then returns the fresh record
func (s *JobService) Update(ctx context.Context, id int64, req dto.UpdateJobRequest) (*models.Job, error) {
	if errs := validateJobUpdate(req, time.Now()); len(errs) > 0 {
		return nil, apperrors.NewValidationError(errs...)
	}

	if req.PostedBy != nil {
		exists, err := s.alumni.Exists(ctx, *req.PostedBy)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.ErrInvalidPostedBy
		}
	}

	set := map[string]interface{}{}
	if req.Title != nil {
		set["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Company != nil {
		set["company"] = strings.TrimSpace(*req.Company)
	}
	if req.Location != nil {
		set["location"] = strings.TrimSpace(*req.Location)
	}
	if req.Description != nil {
		set["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Requirements != nil {
		set["requirements"] = *req.Requirements
	}
	if req.Salary != nil {
		currency := req.Salary.Currency
		if currency == "" {
			currency = models.DefaultCurrency
		}
		set["salary_min"] = req.Salary.Min
		set["salary_max"] = req.Salary.Max
		set["salary_currency"] = currency
	}
	if req.JobType != nil {
		set["job_type"] = *req.JobType
	}
	if req.ExperienceLevel != nil {
		set["experience_level"] = *req.ExperienceLevel
	}
	if req.Category != nil {
		set["category"] = *req.Category
	}
	if req.PostedBy != nil {
		set["posted_by"] = *req.PostedBy
	}
	if req.ApplicationDeadline != nil {
		set["application_deadline"] = *req.ApplicationDeadline
	}
	if req.ApplicationEmail != nil {
		set["application_email"] = strings.TrimSpace(*req.ApplicationEmail)
	}
	if req.ApplicationURL != nil {
		set["application_url"] = strings.TrimSpace(*req.ApplicationURL)
	}
	if req.Skills != nil {
		set["skills"] = *req.Skills
	}
	if req.Benefits != nil {
		set["benefits"] = *req.Benefits
	}

	if len(set) > 0 {
		if err := s.repo.Update(ctx, id, set); err != nil {
			return nil, err
		}
	}
	return s.repo.GetByID(ctx, id)
}

// Delete soft deletes a job posting
func (s *JobService) Delete(ctx context.Context, id int64) error {
	return s.repo.SoftDelete(ctx, id)
}

// Stats returns the job statistics with display rounding applied
func (s *JobService) Stats(ctx context.Context) (dto.JobStats, error) {
	stats, err := s.repo.Stats(ctx, time.Now())
	if err != nil {
		return stats, err
	}
	for i := range stats.ByCategory {
		stats.ByCategory[i].AvgViews = helpers.RoundAvg(stats.ByCategory[i].AvgViews)
		stats.ByCategory[i].AvgMinSalary = helpers.RoundAvg(stats.ByCategory[i].AvgMinSalary)
		stats.ByCategory[i].AvgMaxSalary = helpers.RoundAvg(stats.ByCategory[i].AvgMaxSalary)
	}
	return stats, nil
}

func validateJobCreate(req dto.CreateJobRequest, now time.Time) []string {
	var errs []string

	title := strings.TrimSpace(req.Title)
	if title == "" {
		errs = append(errs, "Job title is required")
	} else if len(title) > 200 {
		errs = append(errs, "Job title cannot exceed 200 characters")
	}

	company := strings.TrimSpace(req.Company)
	if company == "" {
		errs = append(errs, "Company name is required")
	} else if len(company) > 100 {
		errs = append(errs, "Company name cannot exceed 100 characters")
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		errs = append(errs, "Job description is required")
	} else if len(description) > 2000 {
		errs = append(errs, "Job description cannot exceed 2000 characters")
	}

	location := strings.TrimSpace(req.Location)
	if location == "" {
		errs = append(errs, "Job location is required")
	} else if len(location) > 100 {
		errs = append(errs, "Location cannot exceed 100 characters")
	}

	errs = append(errs, validateRequirements(req.Requirements)...)

	if req.JobType == "" {
		errs = append(errs, "Job type is required")
	} else if !validation.OneOf(req.JobType, models.ValidJobTypes) {
		errs = append(errs, "Invalid job type")
	}

	if req.ExperienceLevel == "" {
		errs = append(errs, "Experience level is required")
	} else if !validation.OneOf(req.ExperienceLevel, models.ValidExperienceLevels) {
		errs = append(errs, "Invalid experience level")
	}

	if req.Category == "" {
		errs = append(errs, "Job category is required")
	} else if !validation.OneOf(req.Category, models.ValidJobCategories) {
		errs = append(errs, "Invalid job category")
	}

	if req.PostedBy == 0 {
		errs = append(errs, "Posted by alumni ID is required")
	}

	email := strings.TrimSpace(req.ApplicationEmail)
	if email == "" {
		errs = append(errs, "Application email is required")
	} else if !validation.IsValidEmail(email) {
		errs = append(errs, "Invalid application email format")
	}

	errs = append(errs, validateJobOptional(req.ApplicationURL, req.ApplicationDeadline, &req.Salary, now)...)

	return errs
}

func validateJobUpdate(req dto.UpdateJobRequest, now time.Time) []string {
	var errs []string

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			errs = append(errs, "Job title is required")
		} else if len(title) > 200 {
			errs = append(errs, "Job title cannot exceed 200 characters")
		}
	}

	if req.Company != nil && len(strings.TrimSpace(*req.Company)) > 100 {
		errs = append(errs, "Company name cannot exceed 100 characters")
	}
	if req.Description != nil && len(strings.TrimSpace(*req.Description)) > 2000 {
		errs = append(errs, "Job description cannot exceed 2000 characters")
	}
	if req.Location != nil && len(strings.TrimSpace(*req.Location)) > 100 {
		errs = append(errs, "Location cannot exceed 100 characters")
	}

	if req.Requirements != nil {
		errs = append(errs, validateRequirements(*req.Requirements)...)
	}

	if req.JobType != nil && !validation.OneOf(*req.JobType, models.ValidJobTypes) {
		errs = append(errs, "Invalid job type")
	}
	if req.ExperienceLevel != nil && !validation.OneOf(*req.ExperienceLevel, models.ValidExperienceLevels) {
		errs = append(errs, "Invalid experience level")
	}
	if req.Category != nil && !validation.OneOf(*req.Category, models.ValidJobCategories) {
		errs = append(errs, "Invalid job category")
	}

	if req.ApplicationEmail != nil && !validation.IsValidEmail(strings.TrimSpace(*req.ApplicationEmail)) {
		errs = append(errs, "Invalid application email format")
	}

	var url string
	if req.ApplicationURL != nil {
		url = *req.ApplicationURL
	}
	errs = append(errs, validateJobOptional(url, req.ApplicationDeadline, req.Salary, now)...)

	return errs
}

func validateRequirements(requirements []string) []string {
	for _, r := range requirements {
		if len(strings.TrimSpace(r)) > 200 {
			return []string{"Each requirement cannot exceed 200 characters"}
		}
	}
	return nil
}

func validateJobOptional(url string, deadline *time.Time, salary *models.Salary, now time.Time) []string {
	var errs []string

	if url != "" && !validation.IsValidURL(url) {
		errs = append(errs, "Invalid application URL format")
	}

	if deadline != nil && !deadline.After(now) {
		errs = append(errs, "Application deadline must be in the future")
	}

	if salary != nil {
		if salary.Min != nil && *salary.Min < 0 {
			errs = append(errs, "Minimum salary must be a valid positive number")
		}
		if salary.Max != nil && *salary.Max < 0 {
			errs = append(errs, "Maximum salary must be a valid positive number")
		}
		if salary.Min != nil && salary.Max != nil && *salary.Min > *salary.Max {
			errs = append(errs, "Minimum salary cannot be greater than maximum salary")
		}
		if salary.Currency != "" && !validation.OneOf(salary.Currency, models.ValidCurrencies) {
			errs = append(errs, "Invalid salary currency")
		}
	}

	return errs
}
