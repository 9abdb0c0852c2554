package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namalnexus/backend/internal/app/models"
	"github.com/namalnexus/backend/internal/app/models/dto"
	"github.com/namalnexus/backend/internal/pkg/apperrors"
)

type fakeJobRepo struct {
	records        map[int64]*models.Job
	nextID         int64
	incrementCalls []int64
	lastSet        map[string]interface{}
	stats          dto.JobStats
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{records: map[int64]*models.Job{}}
}

func (f *fakeJobRepo) Create(_ context.Context, j *models.Job) error {
	f.nextID++
	j.ID = f.nextID
	j.IsActive = true
	j.CreatedAt = time.Now()
	j.UpdatedAt = j.CreatedAt
	f.records[j.ID] = j
	return nil
}

func (f *fakeJobRepo) List(_ context.Context, _ dto.JobListQuery) ([]models.Job, int64, error) {
	out := make([]models.Job, 0, len(f.records))
	for _, j := range f.records {
		out = append(out, *j)
	}
	return out, int64(len(out)), nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id int64) (*models.Job, error) {
	j, ok := f.records[id]
	if !ok || !j.IsActive {
		return nil, apperrors.ErrJobNotFound
	}
	return j, nil
}

func (f *fakeJobRepo) IncrementViews(_ context.Context, id int64) error {
	f.incrementCalls = append(f.incrementCalls, id)
	if j, ok := f.records[id]; ok {
		j.Views++
	}
	return nil
}

func (f *fakeJobRepo) Update(_ context.Context, id int64, set map[string]interface{}) error {
	if _, ok := f.records[id]; !ok {
		return apperrors.ErrJobNotFound
	}
	f.lastSet = set
	return nil
}

func (f *fakeJobRepo) SoftDelete(_ context.Context, id int64) error {
	j, ok := f.records[id]
	if !ok || !j.IsActive {
		return apperrors.ErrJobNotFound
	}
	j.IsActive = false
	return nil
}

func (f *fakeJobRepo) Stats(_ context.Context, _ time.Time) (dto.JobStats, error) {
	return f.stats, nil
}

type fakeAlumniChecker struct {
	known map[int64]bool
}

func (f *fakeAlumniChecker) Exists(_ context.Context, id int64) (bool, error) {
	return f.known[id], nil
}

func validCreateJobRequest() dto.CreateJobRequest {
	return dto.CreateJobRequest{
		Title:            "Backend Engineer",
		Company:          "Systems Limited",
		Location:         "Lahore",
		Description:      "Build and operate Go services.",
		JobType:          "Full-time",
		ExperienceLevel:  "Mid Level",
		Category:         "Engineering",
		PostedBy:         1,
		ApplicationEmail: "jobs@systemsltd.com",
	}
}

func newJobService(repo *fakeJobRepo) *JobService {
	return NewJobService(repo, &fakeAlumniChecker{known: map[int64]bool{1: true}})
}

func TestJobServiceCreateDefaults(t *testing.T) {
	svc := newJobService(newFakeJobRepo())

	j, err := svc.Create(context.Background(), validCreateJobRequest())
	require.NoError(t, err)

	assert.Equal(t, models.DefaultCurrency, j.Salary.Currency)
	assert.NotNil(t, j.Requirements)
	assert.NotNil(t, j.Skills)
	assert.NotNil(t, j.Benefits)
	assert.True(t, j.IsActive)
}

func TestJobServiceCreateUnknownPoster(t *testing.T) {
	svc := newJobService(newFakeJobRepo())

	req := validCreateJobRequest()
	req.PostedBy = 99
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPostedBy)
}

func TestJobServiceCreateValidation(t *testing.T) {
	svc := newJobService(newFakeJobRepo())

	_, err := svc.Create(context.Background(), dto.CreateJobRequest{})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	messages := apperrors.MessagesOf(err)
	assert.Contains(t, messages, "Job title is required")
	assert.Contains(t, messages, "Company name is required")
	assert.Contains(t, messages, "Job description is required")
	assert.Contains(t, messages, "Job location is required")
	assert.Contains(t, messages, "Job type is required")
	assert.Contains(t, messages, "Posted by alumni ID is required")
	assert.Contains(t, messages, "Application email is required")
}

func TestJobServiceCreateSalaryRules(t *testing.T) {
	svc := newJobService(newFakeJobRepo())

	min := float64(200000)
	max := float64(100000)
	req := validCreateJobRequest()
	req.Salary = models.Salary{Min: &min, Max: &max, Currency: "BTC"}

	_, err := svc.Create(context.Background(), req)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	messages := apperrors.MessagesOf(err)
	assert.Contains(t, messages, "Minimum salary cannot be greater than maximum salary")
	assert.Contains(t, messages, "Invalid salary currency")
}

func TestJobServiceCreateLongRequirement(t *testing.T) {
	svc := newJobService(newFakeJobRepo())

	req := validCreateJobRequest()
	req.Requirements = []string{"Go", strings.Repeat("x", 201)}

	_, err := svc.Create(context.Background(), req)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, apperrors.MessagesOf(err), "Each requirement cannot exceed 200 characters")
}

func TestJobServiceCreatePastDeadline(t *testing.T) {
	svc := newJobService(newFakeJobRepo())

	past := time.Now().Add(-time.Hour)
	req := validCreateJobRequest()
	req.ApplicationDeadline = &past

	_, err := svc.Create(context.Background(), req)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, apperrors.MessagesOf(err), "Application deadline must be in the future")
}

func TestJobServiceGetByIDBumpsViews(t *testing.T) {
	repo := newFakeJobRepo()
	svc := newJobService(repo)

	created, err := svc.Create(context.Background(), validCreateJobRequest())
	require.NoError(t, err)

	j, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, j.ID)
	assert.Equal(t, []int64{created.ID}, repo.incrementCalls)
}

func TestJobServiceUpdateUnknownPoster(t *testing.T) {
	repo := newFakeJobRepo()
	svc := newJobService(repo)

	created, err := svc.Create(context.Background(), validCreateJobRequest())
	require.NoError(t, err)

	postedBy := int64(99)
	_, err = svc.Update(context.Background(), created.ID, dto.UpdateJobRequest{PostedBy: &postedBy})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPostedBy)
}

func TestJobServiceUpdateSalaryWholesale(t *testing.T) {
	repo := newFakeJobRepo()
	svc := newJobService(repo)

	created, err := svc.Create(context.Background(), validCreateJobRequest())
	require.NoError(t, err)

	min := float64(150000)
	_, err = svc.Update(context.Background(), created.ID, dto.UpdateJobRequest{
		Salary: &models.Salary{Min: &min},
	})
	require.NoError(t, err)

	assert.Equal(t, &min, repo.lastSet["salary_min"])
	assert.Nil(t, repo.lastSet["salary_max"])
	assert.Equal(t, models.DefaultCurrency, repo.lastSet["salary_currency"])
}

func TestJobServiceStatsRounding(t *testing.T) {
	repo := newFakeJobRepo()
	repo.stats = dto.JobStats{
		ByCategory: []dto.JobCategoryStats{
			{Category: "engineering", Count: 4, AvgViews: 12.3456, AvgMinSalary: 98765.4321},
		},
	}
	svc := newJobService(repo)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 12.3, stats.ByCategory[0].AvgViews, 1e-9)
	assert.InDelta(t, 98765.4, stats.ByCategory[0].AvgMinSalary, 1e-9)
}
