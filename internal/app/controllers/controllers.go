package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/namalnexus/backend/internal/app/services"
	"github.com/namalnexus/backend/internal/pkg/apperrors"
)

// Controllers bundles the resource controllers behind one constructor
type Controllers struct {
	Alumni *AlumniController
	Jobs   *JobController
	Events *EventController
}

// NewControllers wires the controllers over the services
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		Alumni: NewAlumniController(svcs.Alumni),
		Jobs:   NewJobController(svcs.Jobs),
		Events: NewEventController(svcs.Events),
	}
}

// parseIDParam reads the :id path parameter as a positive numeric ID
func parseIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.ErrMalformedIdentifier
	}
	return id, nil
}
