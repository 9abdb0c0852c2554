package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/namalnexus/backend/internal/app/controllers"
	"github.com/namalnexus/backend/internal/app/models/dto"
)

// availableEndpoints is the endpoint directory reported by the health
// check and the catch-all handler.
var availableEndpoints = gin.H{
	"alumni": "/api/alumni",
	"jobs":   "/api/jobs",
	"events": "/api/events",
	"health": "/api/health",
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrls *controllers.Controllers) {
	api := router.Group("/api")

	api.GET("/health", healthCheck)

	alumni := api.Group("/alumni")
	{
		alumni.GET("", ctrls.Alumni.GetAlumni)
		alumni.GET("/stats", ctrls.Alumni.GetAlumniStats)
		alumni.GET("/:id", ctrls.Alumni.GetAlumniByID)
		alumni.POST("", ctrls.Alumni.CreateAlumni)
		alumni.PUT("/:id", ctrls.Alumni.UpdateAlumni)
		alumni.DELETE("/:id", ctrls.Alumni.DeleteAlumni)
	}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", ctrls.Jobs.GetJobs)
		jobs.GET("/stats", ctrls.Jobs.GetJobStats)
		jobs.GET("/:id", ctrls.Jobs.GetJobByID)
		jobs.POST("", ctrls.Jobs.CreateJob)
		jobs.PUT("/:id", ctrls.Jobs.UpdateJob)
		jobs.DELETE("/:id", ctrls.Jobs.DeleteJob)
	}

	events := api.Group("/events")
	{
		events.GET("", ctrls.Events.GetEvents)
		events.GET("/stats", ctrls.Events.GetEventStats)
		events.GET("/:id", ctrls.Events.GetEventByID)
		events.POST("", ctrls.Events.CreateEvent)
		events.PUT("/:id", ctrls.Events.UpdateEvent)
		events.DELETE("/:id", ctrls.Events.DeleteEvent)
		events.POST("/:id/register", ctrls.Events.RegisterForEvent)
	}

	router.NoRoute(notFound)
}

// healthCheck reports service status
// @Summary Health check
// @Description Reports service status and the available resource endpoints
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse "Service is healthy"
// @Router /api/health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{
		"status":    "ok",
		"endpoints": availableEndpoints,
	}, "Namal Nexus API is running"))
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success":            false,
		"message":            "Endpoint not found",
		"availableEndpoints": availableEndpoints,
	})
}
