package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/namalnexus/backend/internal/app/models/dto"
	"github.com/namalnexus/backend/internal/app/services"
	"github.com/namalnexus/backend/internal/middleware"
	"github.com/namalnexus/backend/internal/pkg/helpers"
)

// AlumniController handles alumni directory endpoints
type AlumniController struct {
	alumniService *services.AlumniService
}

// NewAlumniController creates a new AlumniController
func NewAlumniController(alumniService *services.AlumniService) *AlumniController {
	return &AlumniController{alumniService: alumniService}
}

// GetAlumni lists alumni
// @Summary List alumni
// @Description Retrieves a filtered, paginated page of active alumni
// @Tags alumni
// @Accept json
// @Produce json
// @Param graduationYear query int false "Exact graduation year"
// @Param degree query string false "Degree substring, case-insensitive"
// @Param location query string false "Location substring, case-insensitive"
// @Param company query string false "Company substring, case-insensitive"
// @Param search query string false "Search over name, company, position and location"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param sortBy query string false "Sort field"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} dto.ListResponse{data=[]dto.AlumniResponse} "Alumni retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/alumni [get]
func (ctrl *AlumniController) GetAlumni(c *gin.Context) {
	q := dto.AlumniListQuery{
		Degree:    c.Query("degree"),
		Location:  c.Query("location"),
		Company:   c.Query("company"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
	q.Page, q.Limit = helpers.ParsePaginationParams(c)
	if yearStr := c.Query("graduationYear"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			q.GraduationYear = &year
		}
	}

	alumni, total, err := ctrl.alumniService.List(c.Request.Context(), q)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	data := dto.FromAlumniList(alumni, time.Now())
	c.JSON(http.StatusOK, dto.NewListResponse(data, len(data), total,
		helpers.NewPageMeta(total, q.Page, q.Limit)))
}

// GetAlumniByID retrieves a single alumni
// @Summary Get alumni details
// @Description Retrieves an active alumni by its ID
// @Tags alumni
// @Accept json
// @Produce json
// @Param id path int true "Alumni ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.AlumniResponse} "Alumni retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid alumni ID format"
// @Failure 404 {object} dto.ErrorResponse "Alumni not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/alumni/{id} [get]
func (ctrl *AlumniController) GetAlumniByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	alumni, err := ctrl.alumniService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromAlumni(alumni, time.Now()), ""))
}

// CreateAlumni registers a new alumni
// @Summary Create an alumni
// @Description Validates and persists a new alumni record
// @Tags alumni
// @Accept json
// @Produce json
// @Param request body dto.CreateAlumniRequest true "Alumni information"
// @Success 201 {object} dto.APIResponse{data=dto.AlumniResponse} "Alumni created successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed or duplicate email"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/alumni [post]
func (ctrl *AlumniController) CreateAlumni(c *gin.Context) {
	var req dto.CreateAlumniRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	alumni, err := ctrl.alumniService.Create(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated,
		dto.NewAPIResponse(dto.FromAlumni(alumni, time.Now()), "Alumni created successfully"))
}

// UpdateAlumni applies a partial update
// @Summary Update an alumni
// @Description Updates the supplied fields of an active alumni record
// @Tags alumni
// @Accept json
// @Produce json
// @Param id path int true "Alumni ID" Format(int64) minimum(1)
// @Param request body dto.UpdateAlumniRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.AlumniResponse} "Alumni updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed or duplicate email"
// @Failure 404 {object} dto.ErrorResponse "Alumni not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/alumni/{id} [put]
func (ctrl *AlumniController) UpdateAlumni(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateAlumniRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	alumni, err := ctrl.alumniService.Update(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK,
		dto.NewAPIResponse(dto.FromAlumni(alumni, time.Now()), "Alumni updated successfully"))
}

// DeleteAlumni soft deletes an alumni
// @Summary Delete an alumni
// @Description Deactivates an alumni record; the record is retained
// @Tags alumni
// @Accept json
// @Produce json
// @Param id path int true "Alumni ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Alumni deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid alumni ID format"
// @Failure 404 {object} dto.ErrorResponse "Alumni not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/alumni/{id} [delete]
func (ctrl *AlumniController) DeleteAlumni(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.alumniService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Alumni deleted successfully"))
}

// GetAlumniStats aggregates the alumni directory
// @Summary Alumni statistics
// @Description Returns totals and degree/year breakdowns over active alumni
// @Tags alumni
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.AlumniStats} "Statistics retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/alumni/stats [get]
func (ctrl *AlumniController) GetAlumniStats(c *gin.Context) {
	stats, err := ctrl.alumniService.Stats(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(stats, ""))
}
