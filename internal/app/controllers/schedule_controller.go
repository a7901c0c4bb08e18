package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/selim/coursepilot/internal/app/models/dto"
	"github.com/selim/coursepilot/internal/app/services"
	"github.com/selim/coursepilot/internal/middleware"
)

// ScheduleController handles schedule mutations and views
type ScheduleController struct {
	scheduleService *services.ScheduleService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService *services.ScheduleService) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// validatedBody retrieves the request struct stored by middleware.ValidateBody,
// writing a 500 if the middleware was not applied to the route.
func validatedBody[T any](ctx *gin.Context) (*T, bool) {
	value, exists := ctx.Get("validatedBody")
	if !exists {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
		return nil, false
	}

	req, ok := value.(*T)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
		return nil, false
	}

	return req, true
}

// requireUser resolves the authenticated user or writes a 401 response.
func requireUser(ctx *gin.Context) (string, bool) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return "", false
	}
	return userID, true
}

// AddCourse adds a section to the user's schedule
// @Summary Add a course section to the schedule
// @Description Adds the section identified by class number to the authenticated user's schedule. The response reports any time conflicts with already-scheduled courses and any sibling components (discussion, lab) still missing.
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddCourseRequest true "Section to add"
// @Success 200 {object} dto.APIResponse{data=dto.AddCourseResult} "Section added"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule/courses [post]
func (c *ScheduleController) AddCourse(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	req, ok := validatedBody[dto.AddCourseRequest](ctx)
	if !ok {
		return
	}

	result, err := c.scheduleService.AddCourse(ctx, userID, req.ClassNbr, req.Notes)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// RemoveCourse removes all sections of a course from the user's schedule
// @Summary Remove a course from the schedule
// @Description Removes every scheduled section of the given subject and catalog number from the authenticated user's schedule
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RemoveCourseRequest true "Course to remove"
// @Success 200 {object} dto.APIResponse{data=dto.RemoveCourseResult} "Removal result"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule/courses [delete]
func (c *ScheduleController) RemoveCourse(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	req, ok := validatedBody[dto.RemoveCourseRequest](ctx)
	if !ok {
		return
	}

	result, err := c.scheduleService.RemoveCourse(ctx, userID, req.Subject, req.CatalogNbr)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// ViewSchedule returns the user's schedule as text plus a calendar image URL
// @Summary View the weekly schedule
// @Description Returns the authenticated user's schedule grouped by weekday, with a link to a rendered SVG calendar when an image host is configured
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleView} "Current schedule"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule [get]
func (c *ScheduleController) ViewSchedule(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	view, err := c.scheduleService.ViewSchedule(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      view,
		Timestamp: time.Now(),
	})
}

// CheckConflicts reports pairwise time conflicts in the user's schedule
// @Summary Check the schedule for time conflicts
// @Description Compares every pair of scheduled sections and reports overlapping meetings
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ConflictReport} "Conflict report"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule/conflicts [get]
func (c *ScheduleController) CheckConflicts(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	report, err := c.scheduleService.CheckConflicts(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}
