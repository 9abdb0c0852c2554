package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/namalnexus/backend/internal/app/models/dto"
	"github.com/namalnexus/backend/internal/app/services"
	"github.com/namalnexus/backend/internal/middleware"
	"github.com/namalnexus/backend/internal/pkg/helpers"
)

// JobController handles job board endpoints
type JobController struct {
	jobService *services.JobService
}

// NewJobController creates a new JobController
func NewJobController(jobService *services.JobService) *JobController {
	return &JobController{jobService: jobService}
}

// GetJobs lists job postings
// @Summary List jobs
// @Description Retrieves a filtered, paginated page of active job postings
// @Tags jobs
// @Accept json
// @Produce json
// @Param category query string false "Job category, 'all' disables the filter"
// @Param jobType query string false "Exact job type"
// @Param experienceLevel query string false "Exact experience level"
// @Param location query string false "Location substring, case-insensitive"
// @Param search query string false "Search over title, company, description and location"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param sortBy query string false "Sort field"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} dto.ListResponse{data=[]dto.JobResponse} "Jobs retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/jobs [get]
func (ctrl *JobController) GetJobs(c *gin.Context) {
	q := dto.JobListQuery{
		Category:        c.Query("category"),
		JobType:         c.Query("jobType"),
		ExperienceLevel: c.Query("experienceLevel"),
		Location:        c.Query("location"),
		Search:          c.Query("search"),
		SortBy:          c.Query("sortBy"),
		SortOrder:       c.Query("sortOrder"),
	}
	q.Page, q.Limit = helpers.ParsePaginationParams(c)

	jobs, total, err := ctrl.jobService.List(c.Request.Context(), q)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	data := dto.FromJobList(jobs, time.Now())
	c.JSON(http.StatusOK, dto.NewListResponse(data, len(data), total,
		helpers.NewPageMeta(total, q.Page, q.Limit)))
}

// GetJobByID retrieves a single job posting and counts the view
// @Summary Get job details
// @Description Retrieves an active job posting; every read increments its view counter
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.JobResponse} "Job retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid job ID format"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/jobs/{id} [get]
func (ctrl *JobController) GetJobByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	job, err := ctrl.jobService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromJob(job, time.Now()), ""))
}

// CreateJob posts a new job
// @Summary Create a job
// @Description Validates and persists a new job posting; postedBy must reference an active alumni
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body dto.CreateJobRequest true "Job information"
// @Success 201 {object} dto.APIResponse{data=dto.JobResponse} "Job created successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed or invalid postedBy"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/jobs [post]
func (ctrl *JobController) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	job, err := ctrl.jobService.Create(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated,
		dto.NewAPIResponse(dto.FromJob(job, time.Now()), "Job created successfully"))
}

// UpdateJob applies a partial update
// @Summary Update a job
// @Description Updates the supplied fields of an active job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID" Format(int64) minimum(1)
// @Param request body dto.UpdateJobRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.JobResponse} "Job updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed or invalid postedBy"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/jobs/{id} [put]
func (ctrl *JobController) UpdateJob(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	job, err := ctrl.jobService.Update(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK,
		dto.NewAPIResponse(dto.FromJob(job, time.Now()), "Job updated successfully"))
}

// DeleteJob soft deletes a job posting
// @Summary Delete a job
// @Description Deactivates a job posting; the record is retained
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Job deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid job ID format"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/jobs/{id} [delete]
func (ctrl *JobController) DeleteJob(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.jobService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Job deleted successfully"))
}

// GetJobStats aggregates the job board
// @Summary Job statistics
// @Description Returns category, type and experience breakdowns over active jobs
// @Tags jobs
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.JobStats} "Statistics retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/jobs/stats [get]
func (ctrl *JobController) GetJobStats(c *gin.Context) {
	stats, err := ctrl.jobService.Stats(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(stats, ""))
}
