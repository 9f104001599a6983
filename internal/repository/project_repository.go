package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stratoview-taxonomy-api/internal/domain"
)

// ProjectFilters narrows project listings; zero values mean no filter
type ProjectFilters struct {
	UserID       *uuid.UUID
	ProjectState *domain.ProjectState
	LayoutMode   *domain.LayoutMode
	Search       string
}

// ProjectRepository defines data access for projects and their content
// blocks. Every block mutation is a single transaction that also
// recomputes the owning project's derived state, so callers never observe
// a block change with stale project state.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, filters ProjectFilters) ([]*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateBlock(ctx context.Context, block *domain.ContentBlock) error
	FindBlockByID(ctx context.Context, id uuid.UUID) (*domain.ContentBlock, error)
	FindBlocksByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.ContentBlock, error)
	UpdateBlock(ctx context.Context, block *domain.ContentBlock) error
	DeleteBlock(ctx context.Context, id uuid.UUID) error
	CountActiveBlocks(ctx context.Context, projectID uuid.UUID) (int64, error)
}

// projectRepositoryImpl is the GORM implementation of ProjectRepository
type projectRepositoryImpl struct {
	db *gorm.DB
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

// Create creates a new project
func (r *projectRepositoryImpl) Create(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// FindByID finds a project by ID with its blocks ordered by position
func (r *projectRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	err := r.db.WithContext(ctx).
		Preload("ContentBlocks", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// List lists projects ordered by last modification, newest first
func (r *projectRepositoryImpl) List(ctx context.Context, filters ProjectFilters) ([]*domain.Project, error) {
	var projects []*domain.Project
	query := r.db.WithContext(ctx).Order("updated_at DESC")

	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.ProjectState != nil {
		query = query.Where("project_state = ?", *filters.ProjectState)
	}
	if filters.LayoutMode != nil {
		query = query.Where("saved_layout_mode = ?", *filters.LayoutMode)
	}
	if filters.Search != "" {
		query = query.Where("nome LIKE ?", "%"+filters.Search+"%")
	}

	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Update saves a project
func (r *projectRepositoryImpl) Update(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Omit("ContentBlocks").Save(project).Error
}

// Delete removes a project and cascades to its blocks
func (r *projectRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&domain.ContentBlock{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Project{}, "id = ?", id).Error
	})
}

// CreateBlock inserts a block and recomputes the owning project's derived
// state in the same transaction. A duplicate (project, position) pair
// fails the unique index and rolls the whole operation back.
func (r *projectRepositoryImpl) CreateBlock(ctx context.Context, block *domain.ContentBlock) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(block).Error; err != nil {
			return err
		}
		return recomputeProjectState(tx, block.ProjectID)
	})
}

// FindBlockByID finds a content block by ID
func (r *projectRepositoryImpl) FindBlockByID(ctx context.Context, id uuid.UUID) (*domain.ContentBlock, error) {
	var block domain.ContentBlock
	if err := r.db.WithContext(ctx).First(&block, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &block, nil
}

// FindBlocksByProjectID lists a project's blocks ordered by position
func (r *projectRepositoryImpl) FindBlocksByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.ContentBlock, error) {
	var blocks []*domain.ContentBlock
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("position").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// UpdateBlock saves a block and recomputes the owning project's derived
// state in the same transaction
func (r *projectRepositoryImpl) UpdateBlock(ctx context.Context, block *domain.ContentBlock) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Project", "Content").Save(block).Error; err != nil {
			return err
		}
		return recomputeProjectState(tx, block.ProjectID)
	})
}

// DeleteBlock removes a block and recomputes the owning project's derived
// state in the same transaction
func (r *projectRepositoryImpl) DeleteBlock(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var block domain.ContentBlock
		if err := tx.First(&block, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&domain.ContentBlock{}, "id = ?", id).Error; err != nil {
			return err
		}
		return recomputeProjectState(tx, block.ProjectID)
	})
}

// CountActiveBlocks counts a project's active blocks
func (r *projectRepositoryImpl) CountActiveBlocks(ctx context.Context, projectID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.ContentBlock{}).
		Where("project_id = ? AND is_active = ?", projectID, true).
		Count(&count).Error
	return count, err
}

// recomputeProjectState counts the project's live active blocks and
// writes the derived fields. Only the changed columns plus the
// modification timestamp are updated.
func recomputeProjectState(tx *gorm.DB, projectID uuid.UUID) error {
	var count int64
	if err := tx.Model(&domain.ContentBlock{}).
		Where("project_id = ? AND is_active = ?", projectID, true).
		Count(&count).Error; err != nil {
		return err
	}

	state := domain.ProjectStateEmpty
	if count > 0 {
		state = domain.ProjectStateActive
	}

	return tx.Model(&domain.Project{}).
		Where("id = ?", projectID).
		Updates(map[string]interface{}{
			"content_block_count": count,
			"project_state":       state,
			"updated_at":          time.Now().UTC(),
		}).Error
}
