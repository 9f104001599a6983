package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"stratoview-taxonomy-api/internal/domain"
	"stratoview-taxonomy-api/internal/dto"
	"stratoview-taxonomy-api/internal/metrics"
	"stratoview-taxonomy-api/internal/repository"
	"stratoview-taxonomy-api/internal/response"
)

// ProjectService defines the business logic for projects and their
// content blocks. Project state and block count are derived: every block
// mutation recomputes them atomically, callers never set them directly.
type ProjectService interface {
	CreateProject(ctx context.Context, req *dto.CreateProjectRequest, userID uuid.UUID) (*dto.ProjectResponse, error)
	GetProject(ctx context.Context, id, requesterID uuid.UUID) (*dto.ProjectResponse, error)
	ListProjects(ctx context.Context, requesterID uuid.UUID, state, layout *string, search string) (*dto.ProjectListResponse, error)
	UpdateProject(ctx context.Context, id uuid.UUID, req *dto.UpdateProjectRequest, requesterID uuid.UUID) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, id, requesterID uuid.UUID) error

	AddContentBlock(ctx context.Context, projectID uuid.UUID, req *dto.CreateContentBlockRequest, requesterID uuid.UUID) (*dto.ContentBlockResponse, error)
	UpdateContentBlock(ctx context.Context, projectID, blockID uuid.UUID, req *dto.UpdateContentBlockRequest, requesterID uuid.UUID) (*dto.ContentBlockResponse, error)
	RemoveContentBlock(ctx context.Context, projectID, blockID, requesterID uuid.UUID) error
}

// projectServiceImpl is the implementation of ProjectService
type projectServiceImpl struct {
	projectRepo repository.ProjectRepository
	contentRepo repository.ContentRepository
	userRepo    repository.UserRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, contentRepo repository.ContentRepository, userRepo repository.UserRepository, m *metrics.Metrics, logger *zap.Logger) ProjectService {
	return &projectServiceImpl{
		projectRepo: projectRepo,
		contentRepo: contentRepo,
		userRepo:    userRepo,
		metrics:     m,
		logger:      logger,
	}
}

// CreateProject creates a new empty project
func (s *projectServiceImpl) CreateProject(ctx context.Context, req *dto.CreateProjectRequest, userID uuid.UUID) (*dto.ProjectResponse, error) {
	project := &domain.Project{
		UserID:          userID,
		Nome:            req.Nome,
		Descrizione:     req.Descrizione,
		SavedLayoutMode: domain.LayoutModeGrid,
		ProjectState:    domain.ProjectStateEmpty,
	}
	if req.SavedLayoutMode != "" {
		project.SavedLayoutMode = domain.LayoutMode(req.SavedLayoutMode)
	}

	if errs := project.ValidateFields(); errs.HasErrors() {
		return nil, response.NewFieldValidationError("Invalid project", errs.Fields())
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create project", err.Error())
	}

	s.metrics.IncrementProjectCreated()
	s.logger.Info("Project created",
		zap.String("project_id", project.ID.String()),
		zap.String("user_id", userID.String()))

	resp := dto.ToProjectResponse(project)
	return &resp, nil
}

// GetProject finds a project by ID. Projects are private to their owner;
// admins can read any project.
func (s *projectServiceImpl) GetProject(ctx context.Context, id, requesterID uuid.UUID) (*dto.ProjectResponse, error) {
	project, err := s.findOwnedProject(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToProjectResponse(project)
	return &resp, nil
}

// ListProjects lists the requester's projects with optional filters
func (s *projectServiceImpl) ListProjects(ctx context.Context, requesterID uuid.UUID, state, layout *string, search string) (*dto.ProjectListResponse, error) {
	filters := repository.ProjectFilters{UserID: &requesterID, Search: search}
	if state != nil {
		st := domain.ProjectState(*state)
		if st != domain.ProjectStateEmpty && st != domain.ProjectStateActive {
			return nil, response.NewValidationError("Unknown project state", *state)
		}
		filters.ProjectState = &st
	}
	if layout != nil {
		lm := domain.LayoutMode(*layout)
		if !lm.Valid() {
			return nil, response.NewValidationError("Unknown layout mode", *layout)
		}
		filters.LayoutMode = &lm
	}

	projects, err := s.projectRepo.List(ctx, filters)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list projects", err.Error())
	}

	result := make([]dto.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		result = append(result, dto.ToProjectResponse(project))
	}
	return &dto.ProjectListResponse{Projects: result, Total: len(result)}, nil
}

// UpdateProject updates a project's own fields. Derived fields are not
// touched here.
func (s *projectServiceImpl) UpdateProject(ctx context.Context, id uuid.UUID, req *dto.UpdateProjectRequest, requesterID uuid.UUID) (*dto.ProjectResponse, error) {
	project, err := s.findOwnedProject(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		project.Nome = *req.Nome
	}
	if req.Descrizione != nil {
		project.Descrizione = *req.Descrizione
	}
	if req.SavedLayoutMode != nil {
		project.SavedLayoutMode = domain.LayoutMode(*req.SavedLayoutMode)
	}

	if errs := project.ValidateFields(); errs.HasErrors() {
		return nil, response.NewFieldValidationError("Invalid project", errs.Fields())
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update project", err.Error())
	}

	resp := dto.ToProjectResponse(project)
	return &resp, nil
}

// DeleteProject deletes a project and all its blocks
func (s *projectServiceImpl) DeleteProject(ctx context.Context, id, requesterID uuid.UUID) error {
	if _, err := s.findOwnedProject(ctx, id, requesterID); err != nil {
		return err
	}
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete project", err.Error())
	}
	s.logger.Info("Project deleted", zap.String("project_id", id.String()))
	return nil
}

// AddContentBlock adds a block to a project. The position must be free;
// a taken position rejects the write instead of reassigning.
func (s *projectServiceImpl) AddContentBlock(ctx context.Context, projectID uuid.UUID, req *dto.CreateContentBlockRequest, requesterID uuid.UUID) (*dto.ContentBlockResponse, error) {
	if _, err := s.findOwnedProject(ctx, projectID, requesterID); err != nil {
		return nil, err
	}

	if _, err := s.contentRepo.FindByID(ctx, req.ContentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Content not found", req.ContentID.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve content", err.Error())
	}

	block := &domain.ContentBlock{
		ProjectID:       projectID,
		ContentID:       req.ContentID,
		Position:        req.Position,
		IsActive:        true,
		CurrentViewMode: domain.ViewModeDefault,
		BlockState:      datatypes.JSON(req.BlockState),
	}
	if req.CurrentViewMode != "" {
		block.CurrentViewMode = domain.ViewMode(req.CurrentViewMode)
	}

	if errs := block.ValidateFields(); errs.HasErrors() {
		return nil, response.NewFieldValidationError("Invalid content block", errs.Fields())
	}

	if err := s.projectRepo.CreateBlock(ctx, block); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists,
				"Position already taken",
				fmt.Sprintf("position %d is occupied in this project", req.Position))
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to add content block", err.Error())
	}

	s.logger.Info("Content block added",
		zap.String("project_id", projectID.String()),
		zap.String("block_id", block.ID.String()),
		zap.Int("position", block.Position))

	resp := dto.ToContentBlockResponse(block)
	return &resp, nil
}

// UpdateContentBlock updates a block's position, activation or view state
func (s *projectServiceImpl) UpdateContentBlock(ctx context.Context, projectID, blockID uuid.UUID, req *dto.UpdateContentBlockRequest, requesterID uuid.UUID) (*dto.ContentBlockResponse, error) {
	if _, err := s.findOwnedProject(ctx, projectID, requesterID); err != nil {
		return nil, err
	}

	block, err := s.projectRepo.FindBlockByID(ctx, blockID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Content block not found", blockID.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get content block", err.Error())
	}
	if block.ProjectID != projectID {
		return nil, response.NewNotFoundError("Content block not found", blockID.String())
	}

	if req.Position != nil {
		block.Position = *req.Position
	}
	if req.IsActive != nil {
		block.IsActive = *req.IsActive
	}
	if req.CurrentViewMode != nil {
		block.CurrentViewMode = domain.ViewMode(*req.CurrentViewMode)
	}
	if req.SingleViewActive != nil {
		block.SingleViewActive = *req.SingleViewActive
	}
	if req.BlockState != nil {
		block.BlockState = datatypes.JSON(req.BlockState)
	}

	if errs := block.ValidateFields(); errs.HasErrors() {
		return nil, response.NewFieldValidationError("Invalid content block", errs.Fields())
	}

	if err := s.projectRepo.UpdateBlock(ctx, block); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists,
				"Position already taken",
				fmt.Sprintf("position %d is occupied in this project", block.Position))
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update content block", err.Error())
	}

	resp := dto.ToContentBlockResponse(block)
	return &resp, nil
}

// RemoveContentBlock removes a block from a project
func (s *projectServiceImpl) RemoveContentBlock(ctx context.Context, projectID, blockID, requesterID uuid.UUID) error {
	if _, err := s.findOwnedProject(ctx, projectID, requesterID); err != nil {
		return err
	}

	block, err := s.projectRepo.FindBlockByID(ctx, blockID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Content block not found", blockID.String())
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to get content block", err.Error())
	}
	if block.ProjectID != projectID {
		return response.NewNotFoundError("Content block not found", blockID.String())
	}

	if err := s.projectRepo.DeleteBlock(ctx, blockID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to remove content block", err.Error())
	}

	s.logger.Info("Content block removed",
		zap.String("project_id", projectID.String()),
		zap.String("block_id", blockID.String()))
	return nil
}

// findOwnedProject loads a project and verifies the requester owns it or
// is an admin. Foreign projects read as not found so their existence
// does not leak.
func (s *projectServiceImpl) findOwnedProject(ctx context.Context, id, requesterID uuid.UUID) (*domain.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", id.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get project", err.Error())
	}

	if project.UserID != requesterID {
		requester, err := s.userRepo.FindByID(ctx, requesterID)
		if err != nil || requester.UserType != domain.UserTypeAdmin {
			return nil, response.NewNotFoundError("Project not found", id.String())
		}
	}
	return project, nil
}
