package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stratoview-taxonomy-api/internal/domain"
	"stratoview-taxonomy-api/internal/dto"
	"stratoview-taxonomy-api/internal/middleware"
	"stratoview-taxonomy-api/internal/repository"
	"stratoview-taxonomy-api/internal/response"
	"stratoview-taxonomy-api/internal/service"
)

// ContentHandler serves content items and their extension records
type ContentHandler struct {
	contentService service.ContentService
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// CreateContent godoc
// @Summary      Create a content item
// @Description  Creates a content item with exactly one extension payload
// @Description  matching contentType. Customer-created content must be private;
// @Description  index content requires the admin role.
// @Tags         contents
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateContentRequest true "Content"
// @Success      201 {object} response.SuccessResponse{data=dto.ContentResponse}
// @Failure      400 {object} response.ErrorResponse "Invalid fields or business rule violation"
// @Security     BearerAuth
// @Router       /contents [post]
func (h *ContentHandler) CreateContent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	var req dto.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.contentService.CreateContent(c.Request.Context(), &req, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, result)
}

// GetContent godoc
// @Summary      Get a content item
// @Description  Returns a content item with its extension. Private content is
// @Description  visible only to its creator and to admins.
// @Tags         contents
// @Produce      json
// @Param        id path string true "Content ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.ContentResponse}
// @Failure      404 {object} response.ErrorResponse "Content not found"
// @Security     BearerAuth
// @Router       /contents/{id} [get]
func (h *ContentHandler) GetContent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	contentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid content ID")
		return
	}

	result, err := h.contentService.GetContent(c.Request.Context(), contentID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// ListContents godoc
// @Summary      List content items
// @Description  Lists content visible to the requester, newest modification
// @Description  first. Supports filtering by type, visibility, source and area.
// @Tags         contents
// @Produce      json
// @Param        contentType query string false "Filter by content type" Enums(index, scenario, trend_radar, participatory_data)
// @Param        visibility query string false "Filter by visibility" Enums(public, private)
// @Param        contentSource query string false "Filter by source" Enums(company, user_created)
// @Param        intelligenceArea query string false "Filter by intelligence area slug"
// @Param        creator query string false "Filter by creator ID (UUID)"
// @Param        search query string false "Search in title and descriptions"
// @Success      200 {object} response.SuccessResponse{data=dto.ContentListResponse}
// @Security     BearerAuth
// @Router       /contents [get]
func (h *ContentHandler) ListContents(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	filters := repository.ContentFilters{
		IntelligenceArea: c.Query("intelligenceArea"),
		Search:           c.Query("search"),
	}
	if v := c.Query("contentType"); v != "" {
		t := domain.ContentType(v)
		if !t.Valid() {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Unknown content type")
			return
		}
		filters.ContentType = &t
	}
	if v := c.Query("visibility"); v != "" {
		vis := domain.Visibility(v)
		if !vis.Valid() {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Unknown visibility")
			return
		}
		filters.Visibility = &vis
	}
	if v := c.Query("contentSource"); v != "" {
		src := domain.ContentSource(v)
		if !src.Valid() {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Unknown content source")
			return
		}
		filters.ContentSource = &src
	}
	if v := c.Query("creator"); v != "" {
		creatorID, err := uuid.Parse(v)
		if err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid creator ID format")
			return
		}
		filters.CreatorID = &creatorID
	}

	result, err := h.contentService.ListContents(c.Request.Context(), filters, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// UpdateContent godoc
// @Summary      Update a content item
// @Description  Updates a content item. The content type is immutable; an
// @Description  extension payload, when present, must match the stored type.
// @Tags         contents
// @Accept       json
// @Produce      json
// @Param        id path string true "Content ID (UUID)"
// @Param        request body dto.UpdateContentRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.ContentResponse}
// @Failure      403 {object} response.ErrorResponse "Not the creator or an admin"
// @Failure      404 {object} response.ErrorResponse "Content not found"
// @Security     BearerAuth
// @Router       /contents/{id} [put]
func (h *ContentHandler) UpdateContent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	contentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid content ID")
		return
	}

	var req dto.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.contentService.UpdateContent(c.Request.Context(), contentID, &req, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// DeleteContent godoc
// @Summary      Delete a content item
// @Description  Deletes a content item, its extension record and stored images.
// @Tags         contents
// @Param        id path string true "Content ID (UUID)"
// @Success      204 "Deleted"
// @Failure      403 {object} response.ErrorResponse "Not the creator or an admin"
// @Failure      404 {object} response.ErrorResponse "Content not found"
// @Security     BearerAuth
// @Router       /contents/{id} [delete]
func (h *ContentHandler) DeleteContent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	contentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid content ID")
		return
	}

	if err := h.contentService.DeleteContent(c.Request.Context(), contentID, userID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage godoc
// @Summary      Upload a standalone image
// @Description  Validates and stores an image, returning the key to reference
// @Description  from a subsequent content create or update. kind selects the
// @Description  allowed formats: scenarios (png/jpg/jpeg), trend_radars and
// @Description  participatory_data (png/jpg/jpeg/svg). Max size 10 MiB.
// @Tags         contents
// @Accept       multipart/form-data
// @Produce      json
// @Param        kind path string true "Image kind" Enums(scenarios, trend_radars, participatory_data)
// @Param        file formData file true "Image file"
// @Success      201 {object} response.SuccessResponse{data=dto.UploadedImageResponse}
// @Failure      400 {object} response.ErrorResponse "File too large or unsupported format"
// @Security     BearerAuth
// @Router       /images/{kind} [post]
func (h *ContentHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Failed to read image file")
		return
	}
	defer file.Close()

	result, err := h.contentService.UploadImage(c.Request.Context(),
		c.Param("kind"), fileHeader.Filename, fileHeader.Size, file,
		fileHeader.Header.Get("Content-Type"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, result)
}

// AttachScenarioImage godoc
// @Summary      Attach an image to a scenario
// @Description  Uploads an image and attaches it to an existing scenario
// @Description  content item. Only png, jpg and jpeg are accepted, max 10 MiB.
// @Tags         contents
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "Content ID (UUID)"
// @Param        file formData file true "Image file"
// @Success      201 {object} response.SuccessResponse{data=dto.ScenarioImageResponse}
// @Failure      400 {object} response.ErrorResponse "Not a scenario, file too large or unsupported format"
// @Failure      404 {object} response.ErrorResponse "Content not found"
// @Security     BearerAuth
// @Router       /contents/{id}/images [post]
func (h *ContentHandler) AttachScenarioImage(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	contentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid content ID")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Failed to read image file")
		return
	}
	defer file.Close()

	result, err := h.contentService.AttachScenarioImage(c.Request.Context(),
		contentID, fileHeader.Filename, fileHeader.Size, file,
		fileHeader.Header.Get("Content-Type"), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, result)
}

// DeleteScenarioImage godoc
// @Summary      Delete a scenario image
// @Description  Marks a scenario image deleted. The stored object is removed
// @Description  by the scheduled purge job.
// @Tags         contents
// @Param        id path string true "Content ID (UUID)"
// @Param        imageId path string true "Image ID (UUID)"
// @Success      204 "Deleted"
// @Failure      404 {object} response.ErrorResponse "Content or image not found"
// @Security     BearerAuth
// @Router       /contents/{id}/images/{imageId} [delete]
func (h *ContentHandler) DeleteScenarioImage(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	contentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid content ID")
		return
	}
	imageID, err := uuid.Parse(c.Param("imageId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid image ID")
		return
	}

	if err := h.contentService.DeleteScenarioImage(c.Request.Context(), contentID, imageID, userID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
