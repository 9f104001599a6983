package repository

import (
	"context"

	"gorm.io/gorm"

	"stratoview-taxonomy-api/internal/domain"
)

// TaxonomyRepository defines data access for the three reference tables:
// intelligence areas, topic areas and geographic areas. They share CRUD
// shape and are always listed ordered by name.
type TaxonomyRepository interface {
	CreateIntelligenceArea(ctx context.Context, area *domain.IntelligenceArea) error
	FindIntelligenceArea(ctx context.Context, id string) (*domain.IntelligenceArea, error)
	ListIntelligenceAreas(ctx context.Context, isActive *bool, search string) ([]*domain.IntelligenceArea, error)
	UpdateIntelligenceArea(ctx context.Context, area *domain.IntelligenceArea) error
	DeleteIntelligenceArea(ctx context.Context, id string) error

	CreateTopicArea(ctx context.Context, area *domain.TopicArea) error
	FindTopicArea(ctx context.Context, id string) (*domain.TopicArea, error)
	ListTopicAreas(ctx context.Context, isActive *bool, search string) ([]*domain.TopicArea, error)
	UpdateTopicArea(ctx context.Context, area *domain.TopicArea) error
	DeleteTopicArea(ctx context.Context, id string) error

	CreateGeographicArea(ctx context.Context, area *domain.GeographicArea) error
	FindGeographicArea(ctx context.Context, id string) (*domain.GeographicArea, error)
	FindGeographicAreas(ctx context.Context, ids []string) ([]*domain.GeographicArea, error)
	ListGeographicAreas(ctx context.Context, areaType *domain.GeographicAreaType, search string) ([]*domain.GeographicArea, error)
	UpdateGeographicArea(ctx context.Context, area *domain.GeographicArea) error
	DeleteGeographicArea(ctx context.Context, id string) error
}

// taxonomyRepositoryImpl is the GORM implementation of TaxonomyRepository
type taxonomyRepositoryImpl struct {
	db *gorm.DB
}

// NewTaxonomyRepository creates a new instance of TaxonomyRepository
func NewTaxonomyRepository(db *gorm.DB) TaxonomyRepository {
	return &taxonomyRepositoryImpl{db: db}
}

// CreateIntelligenceArea creates a new intelligence area
func (r *taxonomyRepositoryImpl) CreateIntelligenceArea(ctx context.Context, area *domain.IntelligenceArea) error {
	return r.db.WithContext(ctx).Create(area).Error
}

// FindIntelligenceArea finds an intelligence area by slug
func (r *taxonomyRepositoryImpl) FindIntelligenceArea(ctx context.Context, id string) (*domain.IntelligenceArea, error) {
	var area domain.IntelligenceArea
	if err := r.db.WithContext(ctx).First(&area, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &area, nil
}

// ListIntelligenceAreas lists intelligence areas with optional filters
func (r *taxonomyRepositoryImpl) ListIntelligenceAreas(ctx context.Context, isActive *bool, search string) ([]*domain.IntelligenceArea, error) {
	var areas []*domain.IntelligenceArea
	query := r.db.WithContext(ctx).Order("name")
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if err := query.Find(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}

// UpdateIntelligenceArea saves an intelligence area
func (r *taxonomyRepositoryImpl) UpdateIntelligenceArea(ctx context.Context, area *domain.IntelligenceArea) error {
	return r.db.WithContext(ctx).Save(area).Error
}

// DeleteIntelligenceArea deletes an intelligence area by slug. Fails with
// a foreign key violation while content still references the area.
func (r *taxonomyRepositoryImpl) DeleteIntelligenceArea(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.IntelligenceArea{}, "id = ?", id).Error
}

// CreateTopicArea creates a new topic area
func (r *taxonomyRepositoryImpl) CreateTopicArea(ctx context.Context, area *domain.TopicArea) error {
	return r.db.WithContext(ctx).Create(area).Error
}

// FindTopicArea finds a topic area by slug
func (r *taxonomyRepositoryImpl) FindTopicArea(ctx context.Context, id string) (*domain.TopicArea, error) {
	var area domain.TopicArea
	if err := r.db.WithContext(ctx).First(&area, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &area, nil
}

// ListTopicAreas lists topic areas with optional filters
func (r *taxonomyRepositoryImpl) ListTopicAreas(ctx context.Context, isActive *bool, search string) ([]*domain.TopicArea, error) {
	var areas []*domain.TopicArea
	query := r.db.WithContext(ctx).Order("name")
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if err := query.Find(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}

// UpdateTopicArea saves a topic area
func (r *taxonomyRepositoryImpl) UpdateTopicArea(ctx context.Context, area *domain.TopicArea) error {
	return r.db.WithContext(ctx).Save(area).Error
}

// DeleteTopicArea deletes a topic area by slug
func (r *taxonomyRepositoryImpl) DeleteTopicArea(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.TopicArea{}, "id = ?", id).Error
}

// CreateGeographicArea creates a new geographic area
func (r *taxonomyRepositoryImpl) CreateGeographicArea(ctx context.Context, area *domain.GeographicArea) error {
	return r.db.WithContext(ctx).Create(area).Error
}

// FindGeographicArea finds a geographic area by slug
func (r *taxonomyRepositoryImpl) FindGeographicArea(ctx context.Context, id string) (*domain.GeographicArea, error) {
	var area domain.GeographicArea
	if err := r.db.WithContext(ctx).First(&area, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &area, nil
}

// FindGeographicAreas finds geographic areas by slugs
func (r *taxonomyRepositoryImpl) FindGeographicAreas(ctx context.Context, ids []string) ([]*domain.GeographicArea, error) {
	if len(ids) == 0 {
		return []*domain.GeographicArea{}, nil
	}

	var areas []*domain.GeographicArea
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}

// ListGeographicAreas lists geographic areas with optional filters
func (r *taxonomyRepositoryImpl) ListGeographicAreas(ctx context.Context, areaType *domain.GeographicAreaType, search string) ([]*domain.GeographicArea, error) {
	var areas []*domain.GeographicArea
	query := r.db.WithContext(ctx).Order("name")
	if areaType != nil {
		query = query.Where("type = ?", *areaType)
	}
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if err := query.Find(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}

// UpdateGeographicArea saves a geographic area
func (r *taxonomyRepositoryImpl) UpdateGeographicArea(ctx context.Context, area *domain.GeographicArea) error {
	return r.db.WithContext(ctx).Save(area).Error
}

// DeleteGeographicArea deletes a geographic area by slug
func (r *taxonomyRepositoryImpl) DeleteGeographicArea(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.GeographicArea{}, "id = ?", id).Error
}
