package routes

import (
	"net/http"

	"beamtime-api/controllers"
	"beamtime-api/monitor"
	"beamtime-api/utils"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	utils.RegisterValidators()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Beamtime Management API is running",
		})
	})

	monitor.RegisterMetricsRoute(router)
	monitor.RegisterLogsRoute(router)

	// Users
	users := router.Group("/users")
	{
		users.POST("/", controllers.CreateUser)
		users.PUT("/:id", controllers.UpdateUser)
		users.GET("/:id/projects", controllers.ListProjectsForPI)
	}

	// Research projects and their beamtime requests
	projects := router.Group("/projects")
	{
		projects.POST("/", controllers.CreateProject)
		projects.PUT("/:id", controllers.UpdateProject)
		projects.DELETE("/:id", controllers.DeleteProject)
		projects.POST("/:id/requests", controllers.CreateBeamtimeRequest) // ?pi_id=
		projects.GET("/:id/requests", controllers.ListProjectRequests)
	}

	router.GET("/managers/:id/requests", controllers.ListManagerRequests)

	// Request review and slot allocation
	requests := router.Group("/requests")
	{
		requests.PATCH("/:id/status", controllers.UpdateRequestStatus)    // ?manager_id=
		requests.POST("/:id/allocations", controllers.CreateAllocation) // ?allocator_id=
	}

	allocations := router.Group("/allocations")
	{
		allocations.GET("/", controllers.ListAllocations)
		allocations.GET("/table", controllers.GetAllocationTable)
		allocations.POST("/:id/approve", controllers.ApproveAllocation)
	}

	router.GET("/reports/monthly", controllers.GetMonthlyReport) // ?year=

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}
