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

// EventController handles event calendar endpoints
type EventController struct {
	eventService *services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService *services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// GetEvents lists events
// @Summary List events
// @Description Retrieves a filtered, paginated page of active events
// @Tags events
// @Accept json
// @Produce json
// @Param category query string false "Event category, 'all' disables the filter"
// @Param eventType query string false "Exact event type"
// @Param upcoming query bool false "Only events with a future date"
// @Param featured query bool false "Only featured events"
// @Param search query string false "Search over title, description, location and organizer"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param sortBy query string false "Sort field"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} dto.ListResponse{data=[]dto.EventResponse} "Events retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/events [get]
func (ctrl *EventController) GetEvents(c *gin.Context) {
	q := dto.EventListQuery{
		Category:  c.Query("category"),
		EventType: c.Query("eventType"),
		Upcoming:  c.Query("upcoming") == "true",
		Featured:  c.Query("featured") == "true",
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
	q.Page, q.Limit = helpers.ParsePaginationParams(c)

	events, total, err := ctrl.eventService.List(c.Request.Context(), q)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	data := dto.FromEventList(events, time.Now())
	c.JSON(http.StatusOK, dto.NewListResponse(data, len(data), total,
		helpers.NewPageMeta(total, q.Page, q.Limit)))
}

// GetEventByID retrieves a single event with its attendee list
// @Summary Get event details
// @Description Retrieves an active event by its ID, attendees included
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.EventDetailResponse} "Event retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid event ID format"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/events/{id} [get]
func (ctrl *EventController) GetEventByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	event, err := ctrl.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromEventDetail(event, time.Now()), ""))
}

// CreateEvent schedules a new event
// @Summary Create an event
// @Description Validates and persists a new event
// @Tags events
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event information"
// @Success 201 {object} dto.APIResponse{data=dto.EventResponse} "Event created successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/events [post]
func (ctrl *EventController) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	event, err := ctrl.eventService.Create(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated,
		dto.NewAPIResponse(dto.FromEvent(event, time.Now()), "Event created successfully"))
}

// UpdateEvent applies a partial update
// @Summary Update an event
// @Description Updates the supplied fields of an active event
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID" Format(int64) minimum(1)
// @Param request body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse} "Event updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/events/{id} [put]
func (ctrl *EventController) UpdateEvent(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	event, err := ctrl.eventService.Update(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK,
		dto.NewAPIResponse(dto.FromEvent(event, time.Now()), "Event updated successfully"))
}

// DeleteEvent soft deletes an event
// @Summary Delete an event
// @Description Deactivates an event; the record and its registrations are retained
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Event deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid event ID format"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/events/{id} [delete]
func (ctrl *EventController) DeleteEvent(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.eventService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Event deleted successfully"))
}

// RegisterForEvent adds an alumni registration to an event
// @Summary Register for an event
// @Description Registers an alumni for an event while registration is open
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID" Format(int64) minimum(1)
// @Param request body dto.RegisterRequest true "Registering alumni"
// @Success 200 {object} dto.APIResponse{data=dto.RegistrationResult} "Successfully registered for event"
// @Failure 400 {object} dto.ErrorResponse "Registration closed or already registered"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/events/{id}/register [post]
func (ctrl *EventController) RegisterForEvent(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	result, err := ctrl.eventService.Register(c.Request.Context(), id, req.AlumniID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(result, "Successfully registered for event"))
}

// GetEventStats aggregates the event calendar
// @Summary Event statistics
// @Description Returns category breakdowns and upcoming/featured counts over active events
// @Tags events
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.EventStats} "Statistics retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/events/stats [get]
func (ctrl *EventController) GetEventStats(c *gin.Context) {
	stats, err := ctrl.eventService.Stats(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(stats, ""))
}
