package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/namalnexus/backend/internal/app/models"
	"github.com/namalnexus/backend/internal/app/models/dto"
	"github.com/namalnexus/backend/internal/pkg/apperrors"
	"github.com/namalnexus/backend/internal/pkg/helpers"
	"github.com/namalnexus/backend/internal/pkg/validation"
)

const minGraduationYear = 2000

// AlumniRepository is the persistence surface the alumni service depends on
type AlumniRepository interface {
	Create(ctx context.Context, a *models.Alumni) error
	List(ctx context.Context, q dto.AlumniListQuery) ([]models.Alumni, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Alumni, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, id int64, set map[string]interface{}) error
	SoftDelete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (dto.AlumniStats, error)
}

// AlumniService implements the alumni directory operations
type AlumniService struct {
	repo AlumniRepository
}

// NewAlumniService creates a new AlumniService
func NewAlumniService(repo AlumniRepository) *AlumniService {
	return &AlumniService{repo: repo}
}

// List returns one page of active alumni matching the query
func (s *AlumniService) List(ctx context.Context, q dto.AlumniListQuery) ([]models.Alumni, int64, error) {
	return s.repo.List(ctx, normalizePage(q))
}

func normalizePage(q dto.AlumniListQuery) dto.AlumniListQuery {
	if q.Page < 1 {
		q.Page = helpers.DefaultPage
	}
	if q.Limit <= 0 {
		q.Limit = helpers.DefaultPageSize
	} else if q.Limit > helpers.MaxPageSize {
		q.Limit = helpers.MaxPageSize
	}
	return q
}

// GetByID returns an active alumni by ID
func (s *AlumniService) GetByID(ctx context.Context, id int64) (*models.Alumni, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates and persists a new alumni record
func (s *AlumniService) Create(ctx context.Context, req dto.CreateAlumniRequest) (*models.Alumni, error) {
	if errs := validateAlumniCreate(req, time.Now()); len(errs) > 0 {
		return nil, apperrors.NewValidationError(errs...)
	}

	a := &models.Alumni{
		Name:            models.NormalizeName(strings.TrimSpace(req.Name)),
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		GraduationYear:  req.GraduationYear,
		Degree:          strings.TrimSpace(req.Degree),
		CurrentPosition: strings.TrimSpace(req.CurrentPosition),
		Company:         strings.TrimSpace(req.Company),
		Location:        strings.TrimSpace(req.Location),
		ProfileImage:    req.ProfileImage,
		Bio:             strings.TrimSpace(req.Bio),
		Skills:          req.Skills,
		SocialLinks:     req.SocialLinks,
	}
	if a.ProfileImage == "" {
		a.ProfileImage = models.DefaultProfileImage
	}
	if a.Skills == nil {
		a.Skills = []string{}
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Update validates and applies a partial update, then returns the fresh record
func (s *AlumniService) Update(ctx context.Context, id int64, req dto.UpdateAlumniRequest) (*models.Alumni, error) {
	if errs := validateAlumniUpdate(req, time.Now()); len(errs) > 0 {
		return nil, apperrors.NewValidationError(errs...)
	}

	set := map[string]interface{}{}
	if req.Name != nil {
		set["name"] = models.NormalizeName(strings.TrimSpace(*req.Name))
	}
	if req.Email != nil {
		set["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.GraduationYear != nil {
		set["graduation_year"] = *req.GraduationYear
	}
	if req.Degree != nil {
		set["degree"] = strings.TrimSpace(*req.Degree)
	}
	if req.CurrentPosition != nil {
		set["current_position"] = strings.TrimSpace(*req.CurrentPosition)
	}
	if req.Company != nil {
		set["company"] = strings.TrimSpace(*req.Company)
	}
	if req.Location != nil {
		set["location"] = strings.TrimSpace(*req.Location)
	}
	if req.ProfileImage != nil {
		set["profile_image"] = *req.ProfileImage
	}
	if req.Bio != nil {
		set["bio"] = strings.TrimSpace(*req.Bio)
	}
	if req.Skills != nil {
		set["skills"] = *req.Skills
	}
	if req.SocialLinks != nil {
		set["linkedin_url"] = req.SocialLinks.LinkedIn
		set["twitter_url"] = req.SocialLinks.Twitter
		set["github_url"] = req.SocialLinks.GitHub
	}

	if len(set) > 0 {
		if err := s.repo.Update(ctx, id, set); err != nil {
			return nil, err
		}
	}
	return s.repo.GetByID(ctx, id)
}

// Delete soft deletes an alumni record
func (s *AlumniService) Delete(ctx context.Context, id int64) error {
	return s.repo.SoftDelete(ctx, id)
}

// Stats returns the alumni statistics with display rounding applied
func (s *AlumniService) Stats(ctx context.Context) (dto.AlumniStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return stats, err
	}
	stats.Overview.AvgGraduationYear = helpers.RoundAvg(stats.Overview.AvgGraduationYear)
	return stats, nil
}

func validateAlumniCreate(req dto.CreateAlumniRequest, now time.Time) []string {
	var errs []string

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs = append(errs, "Name is required")
	} else if len(name) < 2 || len(name) > 100 {
		errs = append(errs, "Name must be between 2 and 100 characters")
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		errs = append(errs, "Email is required")
	} else if !validation.IsValidEmail(email) {
		errs = append(errs, "Invalid email format")
	}

	maxYear := now.Year() + 5
	if req.GraduationYear == 0 {
		errs = append(errs, "Graduation year is required")
	} else if req.GraduationYear < minGraduationYear || req.GraduationYear > maxYear {
		errs = append(errs, fmt.Sprintf("Graduation year must be between %d and %d", minGraduationYear, maxYear))
	}

	degree := strings.TrimSpace(req.Degree)
	if degree == "" {
		errs = append(errs, "Degree is required")
	} else if !validation.OneOf(degree, models.ValidDegrees) {
		errs = append(errs, "Please select a valid degree")
	}

	errs = append(errs, validateAlumniOptional(
		req.CurrentPosition, req.Company, req.Location, req.Bio, req.SocialLinks)...)

	return errs
}

func validateAlumniUpdate(req dto.UpdateAlumniRequest, now time.Time) []string {
	var errs []string

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			errs = append(errs, "Name cannot be empty")
		} else if len(name) < 2 || len(name) > 100 {
			errs = append(errs, "Name must be between 2 and 100 characters")
		}
	}

	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email == "" {
			errs = append(errs, "Email cannot be empty")
		} else if !validation.IsValidEmail(email) {
			errs = append(errs, "Invalid email format")
		}
	}

	if req.GraduationYear != nil {
		maxYear := now.Year() + 5
		if *req.GraduationYear < minGraduationYear || *req.GraduationYear > maxYear {
			errs = append(errs, fmt.Sprintf("Graduation year must be between %d and %d", minGraduationYear, maxYear))
		}
	}

	if req.Degree != nil && !validation.OneOf(strings.TrimSpace(*req.Degree), models.ValidDegrees) {
		errs = append(errs, "Please select a valid degree")
	}

	var position, company, location, bio string
	if req.CurrentPosition != nil {
		position = *req.CurrentPosition
	}
	if req.Company != nil {
		company = *req.Company
	}
	if req.Location != nil {
		location = *req.Location
	}
	if req.Bio != nil {
		bio = *req.Bio
	}
	var links models.SocialLinks
	if req.SocialLinks != nil {
		links = *req.SocialLinks
	}
	errs = append(errs, validateAlumniOptional(position, company, location, bio, links)...)

	return errs
}

func validateAlumniOptional(position, company, location, bio string, links models.SocialLinks) []string {
	var errs []string

	if len(position) > 200 {
		errs = append(errs, "Current position cannot exceed 200 characters")
	}
	if len(company) > 100 {
		errs = append(errs, "Company name cannot exceed 100 characters")
	}
	if len(location) > 100 {
		errs = append(errs, "Location cannot exceed 100 characters")
	}
	if len(bio) > 500 {
		errs = append(errs, "Bio cannot exceed 500 characters")
	}

	if links.LinkedIn != "" && !validation.CompiledPatterns.LinkedIn.MatchString(links.LinkedIn) {
		errs = append(errs, "Invalid LinkedIn URL format")
	}
	if links.Twitter != "" && !validation.CompiledPatterns.Twitter.MatchString(links.Twitter) {
		errs = append(errs, "Invalid Twitter URL format")
	}
	if links.GitHub != "" && !validation.CompiledPatterns.GitHub.MatchString(links.GitHub) {
		errs = append(errs, "Invalid GitHub URL format")
	}

	return errs
}
