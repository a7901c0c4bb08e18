package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/selim/coursepilot/internal/app/controllers"
	"github.com/selim/coursepilot/internal/app/models/dto"
	"github.com/selim/coursepilot/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	catalogController *controllers.CatalogController,
	scheduleController *controllers.ScheduleController,
	toolController *controllers.ToolController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public catalog routes ---
	// The catalog is read-only reference data, no identity needed.
	courses := v1.Group("/courses")
	{
		courses.GET("", catalogController.SearchCourses)
		courses.GET("/:classNbr", catalogController.GetCourse)
	}
	v1.GET("/sections", catalogController.GetSections)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Schedule routes act on the caller's own schedule
		schedule := authenticated.Group("/schedule")
		{
			schedule.GET("", scheduleController.ViewSchedule)
			schedule.GET("/conflicts", scheduleController.CheckConflicts)
			schedule.POST("/courses",
				middleware.ValidateBody(func() interface{} { return &dto.AddCourseRequest{} }),
				scheduleController.AddCourse)
			schedule.DELETE("/courses",
				middleware.ValidateBody(func() interface{} { return &dto.RemoveCourseRequest{} }),
				scheduleController.RemoveCourse)
		}

		// Catalog refresh jobs authenticate like any other caller
		authenticated.PUT("/courses/:classNbr/status", catalogController.UpdateStatus)

		// Assistant tool surface for the LLM front-end
		tools := authenticated.Group("/tools")
		{
			tools.GET("", toolController.ListTools)
			tools.POST("/:name", toolController.InvokeTool)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
