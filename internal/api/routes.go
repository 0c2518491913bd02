package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(handlers *Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(corsMiddleware())
	router.Use(requestIDMiddleware())

	// API routes
	api := router.Group("/api")
	{
		// ClickUp pass-through routes backing the dashboard's pickers
		clickup := api.Group("/clickup")
		{
			clickup.GET("/workspaces", handlers.GetWorkspacesHandler)
			clickup.GET("/members", handlers.GetMembersHandler)
			clickup.GET("/spaces", handlers.GetSpacesHandler)
			clickup.GET("/tasks", handlers.GetTasksHandler)
			clickup.GET("/time-entries", handlers.GetTimeEntriesHandler)
		}

		// Aggregated report routes
		reports := api.Group("/reports")
		{
			reports.GET("/time-tracking", handlers.GetTimeTrackingReportHandler)
		}

		// Export routes
		export := api.Group("/export")
		{
			export.GET("/time-entries.csv", handlers.ExportTimeEntriesCSVHandler)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router
}
