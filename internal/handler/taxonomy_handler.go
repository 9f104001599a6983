package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stratoview-taxonomy-api/internal/dto"
	"stratoview-taxonomy-api/internal/response"
	"stratoview-taxonomy-api/internal/service"
)

// TaxonomyHandler serves the three reference vocabularies
type TaxonomyHandler struct {
	taxonomyService service.TaxonomyService
}

// NewTaxonomyHandler creates a new TaxonomyHandler
func NewTaxonomyHandler(taxonomyService service.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomyService: taxonomyService}
}

// CreateIntelligenceArea godoc
// @Summary      Create an intelligence area
// @Description  Registers a new intelligence area. Admin only.
// @Tags         taxonomy
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateIntelligenceAreaRequest true "Intelligence area"
// @Success      201 {object} response.SuccessResponse{data=dto.IntelligenceAreaResponse}
// @Failure      400 {object} response.ErrorResponse "Invalid fields"
// @Failure      409 {object} response.ErrorResponse "ID already taken"
// @Router       /areas/intelligence [post]
func (h *TaxonomyHandler) CreateIntelligenceArea(c *gin.Context) {
	var req dto.CreateIntelligenceAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.taxonomyService.CreateIntelligenceArea(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, result)
}

// GetIntelligenceArea godoc
// @Summary      Get an intelligence area
// @Tags         taxonomy
// @Produce      json
// @Param        id path string true "Area ID (slug)"
// @Success      200 {object} response.SuccessResponse{data=dto.IntelligenceAreaResponse}
// @Failure      404 {object} response.ErrorResponse "Area not found"
// @Router       /areas/intelligence/{id} [get]
func (h *TaxonomyHandler) GetIntelligenceArea(c *gin.Context) {
	result, err := h.taxonomyService.GetIntelligenceArea(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// ListIntelligenceAreas godoc
// @Summary      List intelligence areas
// @Tags         taxonomy
// @Produce      json
// @Param        isActive query bool false "Filter by active flag"
// @Param        search query string false "Search in name and description"
// @Success      200 {object} response.SuccessResponse{data=[]dto.IntelligenceAreaResponse}
// @Router       /areas/intelligence [get]
func (h *TaxonomyHandler) ListIntelligenceAreas(c *gin.Context) {
	isActive, ok := parseBoolQuery(c, "isActive")
	if !ok {
		return
	}

	result, err := h.taxonomyService.ListIntelligenceAreas(c.Request.Context(), isActive, c.Query("search"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// UpdateIntelligenceArea godoc
// @Summary      Update an intelligence area
// @Description  Updates an intelligence area. The ID is immutable. Admin only.
// @Tags         taxonomy
// @Accept       json
// @Produce      json
// @Param        id path string true "Area ID (slug)"
// @Param        request body dto.UpdateIntelligenceAreaRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.IntelligenceAreaResponse}
// @Failure      404 {object} response.ErrorResponse "Area not found"
// @Router       /areas/intelligence/{id} [put]
func (h *TaxonomyHandler) UpdateIntelligenceArea(c *gin.Context) {
	var req dto.UpdateIntelligenceAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.taxonomyService.UpdateIntelligenceArea(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// DeleteIntelligenceArea godoc
// @Summary      Delete an intelligence area
// @Description  Deletes an intelligence area. Admin only.
// @Tags         taxonomy
// @Param        id path string true "Area ID (slug)"
// @Success      204 "Deleted"
// @Failure      404 {object} response.ErrorResponse "Area not found"
// @Router       /areas/intelligence/{id} [delete]
func (h *TaxonomyHandler) DeleteIntelligenceArea(c *gin.Context) {
	if err := h.taxonomyService.DeleteIntelligenceArea(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateTopicArea godoc
// @Summary      Create a topic area
// @Description  Registers a new topic area. Admin only.
// @Tags         taxonomy
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateTopicAreaRequest true "Topic area"
// @Success      201 {object} response.SuccessResponse{data=dto.TopicAreaResponse}
// @Failure      409 {object} response.ErrorResponse "ID already taken"
// @Router       /areas/topics [post]
func (h *TaxonomyHandler) CreateTopicArea(c *gin.Context) {
	var req dto.CreateTopicAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.taxonomyService.CreateTopicArea(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, result)
}

// GetTopicArea godoc
// @Summary      Get a topic area
// @Tags         taxonomy
// @Produce      json
// @Param        id path string true "Area ID (slug)"
// @Success      200 {object} response.SuccessResponse{data=dto.TopicAreaResponse}
// @Failure      404 {object} response.ErrorResponse "Area not found"
// @Router       /areas/topics/{id} [get]
func (h *TaxonomyHandler) GetTopicArea(c *gin.Context) {
	result, err := h.taxonomyService.GetTopicArea(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// ListTopicAreas godoc
// @Summary      List topic areas
// @Tags         taxonomy
// @Produce      json
// @Param        isActive query bool false "Filter by active flag"
// @Param        search query string false "Search in name"
// @Success      200 {object} response.SuccessResponse{data=[]dto.TopicAreaResponse}
// @Router       /areas/topics [get]
func (h *TaxonomyHandler) ListTopicAreas(c *gin.Context) {
	isActive, ok := parseBoolQuery(c, "isActive")
	if !ok {
		return
	}

	result, err := h.taxonomyService.ListTopicAreas(c.Request.Context(), isActive, c.Query("search"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// UpdateTopicArea godoc
// @Summary      Update a topic area
// @Description  Updates a topic area. The ID is immutable. Admin only.
// @Tags         taxonomy
// @Accept       json
// @Produce      json
// @Param        id path string true "Area ID (slug)"
// @Param        request body dto.UpdateTopicAreaRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.TopicAreaResponse}
// @Failure      404 {object} response.ErrorResponse "Area not found"
// @Router       /areas/topics/{id} [put]
func (h *TaxonomyHandler) UpdateTopicArea(c *gin.Context) {
	var req dto.UpdateTopicAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.taxonomyService.UpdateTopicArea(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// DeleteTopicArea godoc
// @Summary      Delete a topic area
// @Description  Deletes a topic area. Admin only.
// @Tags         taxonomy
// @Param        id path string true "Area ID (slug)"
// @Success      204 "Deleted"
// @Failure      404 {object} response.ErrorResponse "Area not found"
// @Router       /areas/topics/{id} [delete]
func (h *TaxonomyHandler) DeleteTopicArea(c *gin.Context) {
	if err := h.taxonomyService.DeleteTopicArea(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateGeographicArea godoc
// @Summary      Create a geographic area
// @Description  Registers a new geographic area. Admin only.
// @Tags         taxonomy
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateGeographicAreaRequest true "Geographic area"
// @Success      201 {object} response.SuccessResponse{data=dto.GeographicAreaResponse}
// @Failure      409 {object} response.ErrorResponse "ID already taken"
// @Router       /areas/geographic [post]
func (h *TaxonomyHandler) CreateGeographicArea(c *gin.Context) {
	var req dto.CreateGeographicAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.taxonomyService.CreateGeographicArea(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, result)
}

// GetGeographicArea godoc
// @Summary      Get a geographic area
// @Tags         taxonomy
// @Produce      json
// @Param        id path string true "Area ID (slug)"
// @Success      200 {object} response.SuccessResponse{data=dto.GeographicAreaResponse}
// @Failure      404 {object} response.ErrorResponse "Area not found"
// @Router       /areas/geographic/{id} [get]
func (h *TaxonomyHandler) GetGeographicArea(c *gin.Context) {
	result, err := h.taxonomyService.GetGeographicArea(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// ListGeographicAreas godoc
// @Summary      List geographic areas
// @Tags         taxonomy
// @Produce      json
// @Param        type query string false "Filter by area type" Enums(province, region, municipality)
// @Param        search query string false "Search in name"
// @Success      200 {object} response.SuccessResponse{data=[]dto.GeographicAreaResponse}
// @Router       /areas/geographic [get]
func (h *TaxonomyHandler) ListGeographicAreas(c *gin.Context) {
	var areaType *string
	if v := c.Query("type"); v != "" {
		areaType = &v
	}

	result, err := h.taxonomyService.ListGeographicAreas(c.Request.Context(), areaType, c.Query("search"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// UpdateGeographicArea godoc
// @Summary      Update a geographic area
// @Description  Updates a geographic area. The ID is immutable. Admin only.
// @Tags         taxonomy
// @Accept       json
// @Produce      json
// @Param        id path string true "Area ID (slug)"
// @Param        request body dto.UpdateGeographicAreaRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.GeographicAreaResponse}
// @Failure      404 {object} response.ErrorResponse "Area not found"
// @Router       /areas/geographic/{id} [put]
func (h *TaxonomyHandler) UpdateGeographicArea(c *gin.Context) {
	var req dto.UpdateGeographicAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.taxonomyService.UpdateGeographicArea(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// DeleteGeographicArea godoc
// @Summary      Delete a geographic area
// @Description  Deletes a geographic area. Admin only.
// @Tags         taxonomy
// @Param        id path string true "Area ID (slug)"
// @Success      204 "Deleted"
// @Failure      404 {object} response.ErrorResponse "Area not found"
// @Router       /areas/geographic/{id} [delete]
func (h *TaxonomyHandler) DeleteGeographicArea(c *gin.Context) {
	if err := h.taxonomyService.DeleteGeographicArea(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseBoolQuery reads an optional boolean query parameter. A malformed
// value writes a 400 response and returns ok=false.
func parseBoolQuery(c *gin.Context, name string) (*bool, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	switch raw {
	case "true", "1":
		v := true
		return &v, true
	case "false", "0":
		v := false
		return &v, true
	default:
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid boolean value for "+name)
		return nil, false
	}
}
