package dto

import (
	"stratoview-taxonomy-api/internal/domain"
)

// CreateIntelligenceAreaRequest represents the request to create an intelligence area
// @Description Request body for creating an intelligence area. The id is a
// @Description permanent semantic slug and cannot be changed afterwards.
type CreateIntelligenceAreaRequest struct {
	ID          string `json:"id" binding:"required,max=50" example:"economia"`
	Name        string `json:"name" binding:"required,max=100" example:"Economia"`
	Description string `json:"description" binding:"max=500" example:"Indicatori e scenari economici regionali"`
	ColorCode   string `json:"colorCode" binding:"required" example:"#1565C0"`
	IsActive    *bool  `json:"isActive,omitempty" example:"true"`
}

// UpdateIntelligenceAreaRequest represents the request to update an intelligence area
// @Description Request body for updating an intelligence area. All fields are optional.
type UpdateIntelligenceAreaRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100" example:"Economia"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=500"`
	ColorCode   *string `json:"colorCode,omitempty" example:"#0D47A1"`
	IsActive    *bool   `json:"isActive,omitempty" example:"false"`
}

// IntelligenceAreaResponse represents an intelligence area
type IntelligenceAreaResponse struct {
	ID          string `json:"id" example:"economia"`
	Name        string `json:"name" example:"Economia"`
	Description string `json:"description" example:"Indicatori e scenari economici regionali"`
	ColorCode   string `json:"colorCode" example:"#1565C0"`
	IsActive    bool   `json:"isActive" example:"true"`
	CreatedAt   string `json:"createdAt" example:"2025-01-15T10:30:00Z"`
	UpdatedAt   string `json:"updatedAt" example:"2025-01-15T14:20:00Z"`
}

// CreateTopicAreaRequest represents the request to create a topic area
type CreateTopicAreaRequest struct {
	ID           string   `json:"id" binding:"required,max=50" example:"transizione-energetica"`
	Name         string   `json:"name" binding:"required,max=100" example:"Transizione energetica"`
	ParentThemes []string `json:"parentThemes,omitempty" example:"ambiente,energia"`
	IsActive     *bool    `json:"isActive,omitempty" example:"true"`
}

// UpdateTopicAreaRequest represents the request to update a topic area
type UpdateTopicAreaRequest struct {
	Name         *string  `json:"name" binding:"omitempty,max=100"`
	ParentThemes []string `json:"parentThemes,omitempty"`
	IsActive     *bool    `json:"isActive,omitempty"`
}

// TopicAreaResponse represents a topic area
type TopicAreaResponse struct {
	ID           string   `json:"id" example:"transizione-energetica"`
	Name         string   `json:"name" example:"Transizione energetica"`
	ParentThemes []string `json:"parentThemes"`
	IsActive     bool     `json:"isActive" example:"true"`
	CreatedAt    string   `json:"createdAt" example:"2025-01-15T10:30:00Z"`
	UpdatedAt    string   `json:"updatedAt" example:"2025-01-15T14:20:00Z"`
}

// CreateGeographicAreaRequest represents the request to create a geographic area
type CreateGeographicAreaRequest struct {
	ID         string   `json:"id" binding:"required,max=50" example:"brescia"`
	Name       string   `json:"name" binding:"required,max=100" example:"Provincia di Brescia"`
	Type       string   `json:"type" binding:"required,oneof=province region municipality" example:"province"`
	Population *uint    `json:"population,omitempty" example:"1253993"`
	AreaKm2    *float64 `json:"areaKm2,omitempty" example:"4785.62"`
}

// UpdateGeographicAreaRequest represents the request to update a geographic area
type UpdateGeographicAreaRequest struct {
	Name       *string  `json:"name" binding:"omitempty,max=100"`
	Type       *string  `json:"type,omitempty" binding:"omitempty,oneof=province region municipality"`
	Population *uint    `json:"population,omitempty"`
	AreaKm2    *float64 `json:"areaKm2,omitempty"`
}

// GeographicAreaResponse represents a geographic area
type GeographicAreaResponse struct {
	ID          string   `json:"id" example:"brescia"`
	Name        string   `json:"name" example:"Provincia di Brescia"`
	Type        string   `json:"type" example:"province"`
	TypeDisplay string   `json:"typeDisplay" example:"Province"`
	Population  *uint    `json:"population,omitempty" example:"1253993"`
	AreaKm2     *float64 `json:"areaKm2,omitempty" example:"4785.62"`
	CreatedAt   string   `json:"createdAt" example:"2025-01-15T10:30:00Z"`
	UpdatedAt   string   `json:"updatedAt" example:"2025-01-15T14:20:00Z"`
}

// ToIntelligenceAreaResponse converts a domain intelligence area to its response form
func ToIntelligenceAreaResponse(area *domain.IntelligenceArea) IntelligenceAreaResponse {
	return IntelligenceAreaResponse{
		ID:          area.ID,
		Name:        area.Name,
		Description: area.Description,
		ColorCode:   area.ColorCode,
		IsActive:    area.IsActive,
		CreatedAt:   formatTime(area.CreatedAt),
		UpdatedAt:   formatTime(area.UpdatedAt),
	}
}

// ToTopicAreaResponse converts a domain topic area to its response form
func ToTopicAreaResponse(area *domain.TopicArea) TopicAreaResponse {
	themes := []string(area.ParentThemes)
	if themes == nil {
		themes = []string{}
	}
	return TopicAreaResponse{
		ID:           area.ID,
		Name:         area.Name,
		ParentThemes: themes,
		IsActive:     area.IsActive,
		CreatedAt:    formatTime(area.CreatedAt),
		UpdatedAt:    formatTime(area.UpdatedAt),
	}
}

// ToGeographicAreaResponse converts a domain geographic area to its response form
func ToGeographicAreaResponse(area *domain.GeographicArea) GeographicAreaResponse {
	return GeographicAreaResponse{
		ID:          area.ID,
		Name:        area.Name,
		Type:        string(area.Type),
		TypeDisplay: area.Type.Display(),
		Population:  area.Population,
		AreaKm2:     area.AreaKm2,
		CreatedAt:   formatTime(area.CreatedAt),
		UpdatedAt:   formatTime(area.UpdatedAt),
	}
}
