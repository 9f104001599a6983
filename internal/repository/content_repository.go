package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stratoview-taxonomy-api/internal/domain"
)

// ContentFilters narrows content listings; zero values mean no filter
type ContentFilters struct {
	ContentType      *domain.ContentType
	Visibility       *domain.Visibility
	ContentSource    *domain.ContentSource
	IntelligenceArea string
	CreatorID        *uuid.UUID
	Search           string
}

// ContentRepository defines the interface for content data access. The
// extension record travels with the base row: creates insert both in one
// transaction, finds preload the extension matching the content type.
type ContentRepository interface {
	Create(ctx context.Context, content *domain.Content) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Content, error)
	List(ctx context.Context, filters ContentFilters) ([]*domain.Content, error)
	Update(ctx context.Context, content *domain.Content) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateScenarioImage(ctx context.Context, image *domain.ScenarioImage) error
	FindScenarioImage(ctx context.Context, id uuid.UUID) (*domain.ScenarioImage, error)
	MarkScenarioImageDeleted(ctx context.Context, id uuid.UUID) error
	FindDeletedScenarioImages(ctx context.Context) ([]*domain.ScenarioImage, error)
	PurgeScenarioImage(ctx context.Context, id uuid.UUID) error
}

// contentRepositoryImpl is the GORM implementation of ContentRepository
type contentRepositoryImpl struct {
	db *gorm.DB
}

// NewContentRepository creates a new instance of ContentRepository
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepositoryImpl{db: db}
}

// Create inserts the base content row and its extension record in one
// transaction. Either both rows land or neither does.
func (r *contentRepositoryImpl) Create(ctx context.Context, content *domain.Content) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(content).Error
	})
}

// FindByID finds content by ID with its taxonomy references and extension
func (r *contentRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	var content domain.Content
	err := r.db.WithContext(ctx).
		Preload("IntelligenceArea").
		Preload("TopicArea").
		Preload("Index").
		Preload("Scenario").
		Preload("Scenario.Images", "deleted_at IS NULL").
		Preload("TrendRadar").
		Preload("ParticipatoryData").
		First(&content, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// List lists content ordered by last modification, newest first
func (r *contentRepositoryImpl) List(ctx context.Context, filters ContentFilters) ([]*domain.Content, error) {
	var contents []*domain.Content
	query := r.db.WithContext(ctx).
		Preload("IntelligenceArea").
		Preload("TopicArea").
		Order("ultima_modifica DESC")

	if filters.ContentType != nil {
		query = query.Where("content_type = ?", *filters.ContentType)
	}
	if filters.Visibility != nil {
		query = query.Where("visibility = ?", *filters.Visibility)
	}
	if filters.ContentSource != nil {
		query = query.Where("content_source = ?", *filters.ContentSource)
	}
	if filters.IntelligenceArea != "" {
		query = query.Where("intelligence_area_id = ?", filters.IntelligenceArea)
	}
	if filters.CreatorID != nil {
		query = query.Where("creator_id = ?", *filters.CreatorID)
	}
	if filters.Search != "" {
		like := "%" + filters.Search + "%"
		query = query.Where("titolo LIKE ? OR descrizione_breve LIKE ?", like, like)
	}

	if err := query.Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// Update saves the base row and its extension in one transaction
func (r *contentRepositoryImpl) Update(ctx context.Context, content *domain.Content) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Index", "Scenario", "TrendRadar", "ParticipatoryData").Save(content).Error; err != nil {
			return err
		}
		switch {
		case content.Index != nil:
			return tx.Save(content.Index).Error
		case content.Scenario != nil:
			return tx.Omit("Images").Save(content.Scenario).Error
		case content.TrendRadar != nil:
			return tx.Save(content.TrendRadar).Error
		case content.ParticipatoryData != nil:
			return tx.Save(content.ParticipatoryData).Error
		}
		return nil
	})
}

// Delete removes content; extension rows, scenario images and content
// blocks referencing it go with it.
func (r *contentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("scenario_id = ?", id).Delete(&domain.ScenarioImage{}).Error; err != nil {
			return err
		}
		for _, ext := range []interface{}{
			&domain.Index{}, &domain.Scenario{}, &domain.TrendRadar{}, &domain.ParticipatoryData{},
		} {
			if err := tx.Where("content_id = ?", id).Delete(ext).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("content_id = ?", id).Delete(&domain.ContentBlock{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Content{}, "id = ?", id).Error
	})
}

// CreateScenarioImage creates a scenario image row
func (r *contentRepositoryImpl) CreateScenarioImage(ctx context.Context, image *domain.ScenarioImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

// FindScenarioImage finds a live scenario image by ID
func (r *contentRepositoryImpl) FindScenarioImage(ctx context.Context, id uuid.UUID) (*domain.ScenarioImage, error) {
	var image domain.ScenarioImage
	if err := r.db.WithContext(ctx).First(&image, "id = ? AND deleted_at IS NULL", id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// MarkScenarioImageDeleted soft deletes a scenario image. The stored file
// is purged later by the cleanup job.
func (r *contentRepositoryImpl) MarkScenarioImageDeleted(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&domain.ScenarioImage{}).
		Where("id = ?", id).
		Update("deleted_at", gorm.Expr("CURRENT_TIMESTAMP")).Error
}

// FindDeletedScenarioImages finds soft-deleted images awaiting purge
func (r *contentRepositoryImpl) FindDeletedScenarioImages(ctx context.Context) ([]*domain.ScenarioImage, error) {
	var images []*domain.ScenarioImage
	if err := r.db.WithContext(ctx).
		Where("deleted_at IS NOT NULL").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// PurgeScenarioImage hard deletes a scenario image row
func (r *contentRepositoryImpl) PurgeScenarioImage(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&domain.ScenarioImage{}, "id = ?", id).Error
}
