package dto

import (
	"encoding/json"

	"github.com/google/uuid"

	"stratoview-taxonomy-api/internal/domain"
)

// CreateProjectRequest represents the request to create a new project
// @Description Request body for creating a project. Projects start empty;
// @Description content blocks are added through the block endpoints.
type CreateProjectRequest struct {
	Nome            string `json:"nome" binding:"required,max=100" example:"Osservatorio idrico"`
	Descrizione     string `json:"descrizione" binding:"max=500" example:"Monitoraggio degli scenari idrici per il bacino padano"`
	SavedLayoutMode string `json:"savedLayoutMode" binding:"omitempty,oneof=grid columns" example:"grid"`
}

// UpdateProjectRequest represents the request to update a project.
// Derived fields (projectState, contentBlockCount) are never accepted here.
// @Description Request body for updating a project. All fields are optional.
type UpdateProjectRequest struct {
	Nome            *string `json:"nome" binding:"omitempty,max=100" example:"Osservatorio idrico 2026"`
	Descrizione     *string `json:"descrizione,omitempty" binding:"omitempty,max=500"`
	SavedLayoutMode *string `json:"savedLayoutMode,omitempty" binding:"omitempty,oneof=grid columns" example:"columns"`
}

// ProjectResponse represents a project with its derived state
type ProjectResponse struct {
	ID                     uuid.UUID              `json:"projectId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	UserID                 uuid.UUID              `json:"userId"`
	Nome                   string                 `json:"nome" example:"Osservatorio idrico"`
	Descrizione            string                 `json:"descrizione"`
	SavedLayoutMode        string                 `json:"savedLayoutMode" example:"grid"`
	SavedLayoutModeDisplay string                 `json:"savedLayoutModeDisplay" example:"Grid View"`
	ProjectState           string                 `json:"projectState" example:"active"`
	ProjectStateDisplay    string                 `json:"projectStateDisplay" example:"Active"`
	ContentBlockCount      int                    `json:"contentBlockCount" example:"2"`
	ContentBlocks          []ContentBlockResponse `json:"contentBlocks,omitempty"`
	CreatedAt              string                 `json:"createdAt" example:"2025-01-15T10:30:00Z"`
	UpdatedAt              string                 `json:"updatedAt" example:"2025-01-15T14:20:00Z"`
}

// ProjectListResponse represents a project listing
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int               `json:"total" example:"3"`
}

// CreateContentBlockRequest represents the request to add a block to a project
// @Description Request body for adding a content block. position must be 1-4
// @Description and free within the project; a taken position rejects the write.
type CreateContentBlockRequest struct {
	ContentID       uuid.UUID       `json:"contentId" binding:"required" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	Position        int             `json:"position" binding:"required,min=1,max=4" example:"1"`
	CurrentViewMode string          `json:"currentViewMode" binding:"omitempty,oneof=mapview indexview datavizview default" example:"default"`
	BlockState      json.RawMessage `json:"blockState,omitempty" swaggertype:"object"`
}

// UpdateContentBlockRequest represents the request to update a block.
// @Description Request body for updating a content block. All fields are optional.
type UpdateContentBlockRequest struct {
	Position         *int            `json:"position,omitempty" binding:"omitempty,min=1,max=4" example:"2"`
	IsActive         *bool           `json:"isActive,omitempty" example:"false"`
	CurrentViewMode  *string         `json:"currentViewMode,omitempty" binding:"omitempty,oneof=mapview indexview datavizview default"`
	SingleViewActive *bool           `json:"singleViewActive,omitempty" example:"true"`
	BlockState       json.RawMessage `json:"blockState,omitempty" swaggertype:"object"`
}

// ContentBlockResponse represents a content block within a project
type ContentBlockResponse struct {
	ID               uuid.UUID       `json:"blockId" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	ProjectID        uuid.UUID       `json:"projectId"`
	ContentID        uuid.UUID       `json:"contentId"`
	Position         int             `json:"position" example:"1"`
	IsActive         bool            `json:"isActive" example:"true"`
	CurrentViewMode  string          `json:"currentViewMode" example:"default"`
	SingleViewActive bool            `json:"singleViewActive" example:"false"`
	LastInteraction  string          `json:"lastInteraction" example:"2025-01-15T14:20:00Z"`
	BlockState       json.RawMessage `json:"blockState,omitempty" swaggertype:"object"`
	Content          *ContentResponse `json:"content,omitempty"`
}

// ToProjectResponse converts a domain project to its response form
func ToProjectResponse(project *domain.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:                     project.ID,
		UserID:                 project.UserID,
		Nome:                   project.Nome,
		Descrizione:            project.Descrizione,
		SavedLayoutMode:        string(project.SavedLayoutMode),
		SavedLayoutModeDisplay: project.SavedLayoutMode.Display(),
		ProjectState:           string(project.ProjectState),
		ProjectStateDisplay:    project.ProjectState.Display(),
		ContentBlockCount:      project.ContentBlockCount,
		CreatedAt:              formatTime(project.CreatedAt),
		UpdatedAt:              formatTime(project.UpdatedAt),
	}
	for i := range project.ContentBlocks {
		resp.ContentBlocks = append(resp.ContentBlocks, ToContentBlockResponse(&project.ContentBlocks[i]))
	}
	return resp
}

// ToContentBlockResponse converts a domain content block to its response form
func ToContentBlockResponse(block *domain.ContentBlock) ContentBlockResponse {
	resp := ContentBlockResponse{
		ID:               block.ID,
		ProjectID:        block.ProjectID,
		ContentID:        block.ContentID,
		Position:         block.Position,
		IsActive:         block.IsActive,
		CurrentViewMode:  string(block.CurrentViewMode),
		SingleViewActive: block.SingleViewActive,
		LastInteraction:  formatTime(block.LastInteraction),
		BlockState:       json.RawMessage(block.BlockState),
	}
	if block.Content != nil {
		content := ToContentResponse(block.Content, nil)
		resp.Content = &content
	}
	return resp
}
