package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/selim/coursepilot/internal/app/models/dto"
	"github.com/selim/coursepilot/internal/middleware"
	"github.com/selim/coursepilot/internal/tools"
)

// ToolController exposes the assistant tool registry over HTTP. An LLM
// front-end lists the tools, presents them to the model, and posts the
// model's tool calls here.
type ToolController struct {
	registry *tools.Registry
}

// NewToolController creates a new ToolController
func NewToolController(registry *tools.Registry) *ToolController {
	return &ToolController{
		registry: registry,
	}
}

// ListTools lists every registered assistant tool
// @Summary List assistant tools
// @Description Returns the name, description and argument schema of every registered tool, sorted by name
// @Tags tools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]tools.Tool} "Registered tools"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Router /tools [get]
func (c *ToolController) ListTools(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.registry.List(),
		Timestamp: time.Now(),
	})
}

// InvokeTool executes a tool on behalf of the authenticated user
// @Summary Invoke an assistant tool
// @Description Executes the named tool with the given arguments and returns its conversational reply
// @Tags tools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Tool name"
// @Param args body map[string]interface{} false "Tool arguments"
// @Success 200 {object} dto.APIResponse{data=dto.ToolResult} "Tool reply"
// @Failure 400 {object} dto.ErrorResponse "Invalid arguments"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Tool not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tools/{name} [post]
func (c *ToolController) InvokeTool(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	name := ctx.Param("name")

	args := map[string]any{}
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&args); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid tool arguments")
			errorDetail = errorDetail.WithDetails(err.Error())
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
	}

	reply, err := c.registry.Invoke(ctx, name, userID, args)
	if err != nil {
		if errors.Is(err, tools.ErrToolNotFound) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Unknown tool")
			errorDetail = errorDetail.WithDetails(err.Error())
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.ToolResult{Tool: name, Reply: reply},
		Timestamp: time.Now(),
	})
}
