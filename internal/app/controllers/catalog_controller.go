package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/selim/coursepilot/internal/app/models/dto"
	"github.com/selim/coursepilot/internal/app/services"
	"github.com/selim/coursepilot/internal/middleware"
)

// CatalogController handles course catalog operations
type CatalogController struct {
	catalogService *services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// SearchCourses searches the catalog with structured filters and free text
// @Summary Search the course catalog
// @Description Filters courses by subject, catalog number prefix, credits, instructor, meeting days and distribution attributes. A free-text query falls back to the semantic index when no structured filter matches.
// @Tags catalog
// @Accept json
// @Produce json
// @Param subject query string false "Subject code, e.g. CS"
// @Param catalogNbrPrefix query string false "Catalog number prefix, e.g. 21"
// @Param minCredits query int false "Minimum credits"
// @Param maxCredits query int false "Maximum credits"
// @Param instructor query string false "Instructor name substring"
// @Param dayPattern query string false "Meeting day pattern, e.g. MWF"
// @Param distrAttr query string false "Distribution attribute"
// @Param query query string false "Free-text query"
// @Param limit query int false "Maximum results (default 25, cap 100)"
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Matching courses"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CatalogController) SearchCourses(ctx *gin.Context) {
	var req dto.CourseSearchRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid search filters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	courses, err := c.catalogService.SearchCourses(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// GetCourse retrieves a section by class number
// @Summary Get course section by class number
// @Description Retrieves a single catalog section by its five-digit class number
// @Tags catalog
// @Accept json
// @Produce json
// @Param classNbr path int true "Class number"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid class number"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{classNbr} [get]
func (c *CatalogController) GetCourse(ctx *gin.Context) {
	classNbr, err := strconv.Atoi(ctx.Param("classNbr"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid class number")
		errorDetail = errorDetail.WithDetails("Class number must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course, err := c.catalogService.GetCourse(ctx, classNbr)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// UpdateStatus refreshes a section's enrollment status
// @Summary Update enrollment status of a section
// @Description Sets the enrollment status (OPEN, CLOSED, WAITLIST) of the section identified by class number. Used by catalog refresh jobs.
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param classNbr path int true "Class number"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=gin.H} "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid class number or status"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{classNbr}/status [put]
func (c *CatalogController) UpdateStatus(ctx *gin.Context) {
	classNbr, err := strconv.Atoi(ctx.Param("classNbr"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid class number")
		errorDetail = errorDetail.WithDetails("Class number must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.catalogService.SetCourseStatus(ctx, classNbr, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"classNbr": classNbr, "status": req.Status},
		Timestamp: time.Now(),
	})
}

// GetSections lists every section of one course
// @Summary List sections of a course
// @Description Retrieves all lecture, discussion and lab sections under one subject and catalog number
// @Tags catalog
// @Accept json
// @Produce json
// @Param subject query string true "Subject code, e.g. CS"
// @Param catalogNbr query string true "Catalog number, e.g. 2110"
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Sections retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing subject or catalog number"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sections [get]
func (c *CatalogController) GetSections(ctx *gin.Context) {
	subject := ctx.Query("subject")
	catalogNbr := ctx.Query("catalogNbr")
	if subject == "" || catalogNbr == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing course key")
		errorDetail = errorDetail.WithDetails("Both subject and catalogNbr query parameters are required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	sections, err := c.catalogService.GetSections(ctx, subject, catalogNbr)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sections,
		Timestamp: time.Now(),
	})
}
