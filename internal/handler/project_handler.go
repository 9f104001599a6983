package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stratoview-taxonomy-api/internal/dto"
	"stratoview-taxonomy-api/internal/middleware"
	"stratoview-taxonomy-api/internal/response"
	"stratoview-taxonomy-api/internal/service"
)

// ProjectHandler serves projects and their content blocks
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// CreateProject godoc
// @Summary      Create a project
// @Description  Creates an empty project for the authenticated user.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateProjectRequest true "Project"
// @Success      201 {object} response.SuccessResponse{data=dto.ProjectResponse}
// @Failure      400 {object} response.ErrorResponse "Invalid fields"
// @Security     BearerAuth
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.projectService.CreateProject(c.Request.Context(), &req, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, result)
}

// GetProject godoc
// @Summary      Get a project
// @Description  Returns a project with its blocks ordered by position.
// @Tags         projects
// @Produce      json
// @Param        id path string true "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.ProjectResponse}
// @Failure      404 {object} response.ErrorResponse "Project not found"
// @Security     BearerAuth
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	result, err := h.projectService.GetProject(c.Request.Context(), projectID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// ListProjects godoc
// @Summary      List the requester's projects
// @Tags         projects
// @Produce      json
// @Param        state query string false "Filter by derived state" Enums(empty, active)
// @Param        layout query string false "Filter by layout mode" Enums(grid, columns)
// @Param        search query string false "Search in name"
// @Success      200 {object} response.SuccessResponse{data=dto.ProjectListResponse}
// @Security     BearerAuth
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	var state, layout *string
	if v := c.Query("state"); v != "" {
		state = &v
	}
	if v := c.Query("layout"); v != "" {
		layout = &v
	}

	result, err := h.projectService.ListProjects(c.Request.Context(), userID, state, layout, c.Query("search"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// UpdateProject godoc
// @Summary      Update a project
// @Description  Updates name, description or layout mode. Derived fields are
// @Description  recomputed from blocks and cannot be set here.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID (UUID)"
// @Param        request body dto.UpdateProjectRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.ProjectResponse}
// @Failure      404 {object} response.ErrorResponse "Project not found"
// @Security     BearerAuth
// @Router       /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.projectService.UpdateProject(c.Request.Context(), projectID, &req, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// DeleteProject godoc
// @Summary      Delete a project
// @Description  Deletes a project and all its content blocks.
// @Tags         projects
// @Param        id path string true "Project ID (UUID)"
// @Success      204 "Deleted"
// @Failure      404 {object} response.ErrorResponse "Project not found"
// @Security     BearerAuth
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), projectID, userID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddContentBlock godoc
// @Summary      Add a content block to a project
// @Description  Adds a block at a free position (1-4). A taken position is
// @Description  rejected with 409, never silently reassigned. Project state
// @Description  and block count are recomputed atomically.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID (UUID)"
// @Param        request body dto.CreateContentBlockRequest true "Content block"
// @Success      201 {object} response.SuccessResponse{data=dto.ContentBlockResponse}
// @Failure      404 {object} response.ErrorResponse "Project or content not found"
// @Failure      409 {object} response.ErrorResponse "Position already taken"
// @Security     BearerAuth
// @Router       /projects/{id}/blocks [post]
func (h *ProjectHandler) AddContentBlock(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	var req dto.CreateContentBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.projectService.AddContentBlock(c.Request.Context(), projectID, &req, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, result)
}

// UpdateContentBlock godoc
// @Summary      Update a content block
// @Description  Updates a block's position, activation or view state. Project
// @Description  state and block count are recomputed atomically.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID (UUID)"
// @Param        blockId path string true "Block ID (UUID)"
// @Param        request body dto.UpdateContentBlockRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.ContentBlockResponse}
// @Failure      404 {object} response.ErrorResponse "Project or block not found"
// @Failure      409 {object} response.ErrorResponse "Position already taken"
// @Security     BearerAuth
// @Router       /projects/{id}/blocks/{blockId} [put]
func (h *ProjectHandler) UpdateContentBlock(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}
	blockID, err := uuid.Parse(c.Param("blockId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid block ID")
		return
	}

	var req dto.UpdateContentBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.projectService.UpdateContentBlock(c.Request.Context(), projectID, blockID, &req, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// RemoveContentBlock godoc
// @Summary      Remove a content block
// @Description  Removes a block from a project. Project state and block count
// @Description  are recomputed atomically.
// @Tags         projects
// @Param        id path string true "Project ID (UUID)"
// @Param        blockId path string true "Block ID (UUID)"
// @Success      204 "Removed"
// @Failure      404 {object} response.ErrorResponse "Project or block not found"
// @Security     BearerAuth
// @Router       /projects/{id}/blocks/{blockId} [delete]
func (h *ProjectHandler) RemoveContentBlock(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}
	blockID, err := uuid.Parse(c.Param("blockId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid block ID")
		return
	}

	if err := h.projectService.RemoveContentBlock(c.Request.Context(), projectID, blockID, userID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
