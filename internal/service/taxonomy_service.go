package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stratoview-taxonomy-api/internal/domain"
	"stratoview-taxonomy-api/internal/dto"
	"stratoview-taxonomy-api/internal/repository"
	"stratoview-taxonomy-api/internal/response"
	"stratoview-taxonomy-api/internal/validation"
)

const taxonomyCacheTTL = 10 * time.Minute

// TaxonomyService defines the business logic for the three reference
// vocabularies. Unfiltered listings are cached in Redis; every write
// invalidates the cache for its vocabulary.
type TaxonomyService interface {
	CreateIntelligenceArea(ctx context.Context, req *dto.CreateIntelligenceAreaRequest) (*dto.IntelligenceAreaResponse, error)
	GetIntelligenceArea(ctx context.Context, id string) (*dto.IntelligenceAreaResponse, error)
	ListIntelligenceAreas(ctx context.Context, isActive *bool, search string) ([]dto.IntelligenceAreaResponse, error)
	UpdateIntelligenceArea(ctx context.Context, id string, req *dto.UpdateIntelligenceAreaRequest) (*dto.IntelligenceAreaResponse, error)
	DeleteIntelligenceArea(ctx context.Context, id string) error

	CreateTopicArea(ctx context.Context, req *dto.CreateTopicAreaRequest) (*dto.TopicAreaResponse, error)
	GetTopicArea(ctx context.Context, id string) (*dto.TopicAreaResponse, error)
	ListTopicAreas(ctx context.Context, isActive *bool, search string) ([]dto.TopicAreaResponse, error)
	UpdateTopicArea(ctx context.Context, id string, req *dto.UpdateTopicAreaRequest) (*dto.TopicAreaResponse, error)
	DeleteTopicArea(ctx context.Context, id string) error

	CreateGeographicArea(ctx context.Context, req *dto.CreateGeographicAreaRequest) (*dto.GeographicAreaResponse, error)
	GetGeographicArea(ctx context.Context, id string) (*dto.GeographicAreaResponse, error)
	ListGeographicAreas(ctx context.Context, areaType *string, search string) ([]dto.GeographicAreaResponse, error)
	UpdateGeographicArea(ctx context.Context, id string, req *dto.UpdateGeographicAreaRequest) (*dto.GeographicAreaResponse, error)
	DeleteGeographicArea(ctx context.Context, id string) error
}

// taxonomyServiceImpl is the implementation of TaxonomyService
type taxonomyServiceImpl struct {
	repo   repository.TaxonomyRepository
	cache  *redis.Client
	logger *zap.Logger
}

// NewTaxonomyService creates a new instance of TaxonomyService.
// cache may be nil; listings then always hit the database.
func NewTaxonomyService(repo repository.TaxonomyRepository, cache *redis.Client, logger *zap.Logger) TaxonomyService {
	return &taxonomyServiceImpl{repo: repo, cache: cache, logger: logger}
}

// CreateIntelligenceArea creates a new intelligence area
func (s *taxonomyServiceImpl) CreateIntelligenceArea(ctx context.Context, req *dto.CreateIntelligenceAreaRequest) (*dto.IntelligenceAreaResponse, error) {
	errs := validation.NewErrors()
	errs.AddIf("id", validation.StringLength(req.ID, 1, 50))
	errs.AddIf("name", validation.StringLength(req.Name, 1, 100))
	errs.AddIf("color_code", validation.HexColor(req.ColorCode))
	if errs.HasErrors() {
		return nil, response.NewFieldValidationError("Invalid intelligence area", errs.Fields())
	}

	area := &domain.IntelligenceArea{
		ID:          strings.ToLower(req.ID),
		Name:        req.Name,
		Description: req.Description,
		ColorCode:   strings.ToUpper(req.ColorCode),
		IsActive:    true,
	}
	if req.IsActive != nil {
		area.IsActive = *req.IsActive
	}

	if err := s.repo.CreateIntelligenceArea(ctx, area); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Intelligence area already exists", area.ID)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create intelligence area", err.Error())
	}

	s.invalidateCache(ctx, "intelligence_areas")
	resp := dto.ToIntelligenceAreaResponse(area)
	return &resp, nil
}

// GetIntelligenceArea finds an intelligence area by ID
func (s *taxonomyServiceImpl) GetIntelligenceArea(ctx context.Context, id string) (*dto.IntelligenceAreaResponse, error) {
	area, err := s.repo.FindIntelligenceArea(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Intelligence area not found", id)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get intelligence area", err.Error())
	}
	resp := dto.ToIntelligenceAreaResponse(area)
	return &resp, nil
}

// ListIntelligenceAreas lists intelligence areas. The unfiltered listing
// is served from cache when available.
func (s *taxonomyServiceImpl) ListIntelligenceAreas(ctx context.Context, isActive *bool, search string) ([]dto.IntelligenceAreaResponse, error) {
	cacheable := isActive == nil && search == ""

	if cacheable {
		var cached []dto.IntelligenceAreaResponse
		if s.cacheGet(ctx, "intelligence_areas", &cached) {
			return cached, nil
		}
	}

	areas, err := s.repo.ListIntelligenceAreas(ctx, isActive, search)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list intelligence areas", err.Error())
	}

	result := make([]dto.IntelligenceAreaResponse, 0, len(areas))
	for _, area := range areas {
		result = append(result, dto.ToIntelligenceAreaResponse(area))
	}

	if cacheable {
		s.cacheSet(ctx, "intelligence_areas", result)
	}
	return result, nil
}

// UpdateIntelligenceArea updates an intelligence area. The ID is immutable.
func (s *taxonomyServiceImpl) UpdateIntelligenceArea(ctx context.Context, id string, req *dto.UpdateIntelligenceAreaRequest) (*dto.IntelligenceAreaResponse, error) {
	area, err := s.repo.FindIntelligenceArea(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Intelligence area not found", id)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get intelligence area", err.Error())
	}

	errs := validation.NewErrors()
	if req.Name != nil {
		errs.AddIf("name", validation.StringLength(*req.Name, 1, 100))
	}
	if req.ColorCode != nil {
		errs.AddIf("color_code", validation.HexColor(*req.ColorCode))
	}
	if errs.HasErrors() {
		return nil, response.NewFieldValidationError("Invalid intelligence area", errs.Fields())
	}

	if req.Name != nil {
		area.Name = *req.Name
	}
	if req.Description != nil {
		area.Description = *req.Description
	}
	if req.ColorCode != nil {
		area.ColorCode = strings.ToUpper(*req.ColorCode)
	}
	if req.IsActive != nil {
		area.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateIntelligenceArea(ctx, area); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update intelligence area", err.Error())
	}

	s.invalidateCache(ctx, "intelligence_areas")
	resp := dto.ToIntelligenceAreaResponse(area)
	return &resp, nil
}

// DeleteIntelligenceArea deletes an intelligence area
func (s *taxonomyServiceImpl) DeleteIntelligenceArea(ctx context.Context, id string) error {
	if _, err := s.repo.FindIntelligenceArea(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Intelligence area not found", id)
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to get intelligence area", err.Error())
	}
	if err := s.repo.DeleteIntelligenceArea(ctx, id); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete intelligence area", err.Error())
	}
	s.invalidateCache(ctx, "intelligence_areas")
	return nil
}

// CreateTopicArea creates a new topic area
func (s *taxonomyServiceImpl) CreateTopicArea(ctx context.Context, req *dto.CreateTopicAreaRequest) (*dto.TopicAreaResponse, error) {
	errs := validation.NewErrors()
	errs.AddIf("id", validation.StringLength(req.ID, 1, 50))
	errs.AddIf("name", validation.StringLength(req.Name, 1, 100))
	if errs.HasErrors() {
		return nil, response.NewFieldValidationError("Invalid topic area", errs.Fields())
	}

	area := &domain.TopicArea{
		ID:           strings.ToLower(req.ID),
		Name:         req.Name,
		ParentThemes: req.ParentThemes,
		IsActive:     true,
	}
	if req.IsActive != nil {
		area.IsActive = *req.IsActive
	}

	if err := s.repo.CreateTopicArea(ctx, area); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Topic area already exists", area.ID)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create topic area", err.Error())
	}

	s.invalidateCache(ctx, "topic_areas")
	resp := dto.ToTopicAreaResponse(area)
	return &resp, nil
}

// GetTopicArea finds a topic area by ID
func (s *taxonomyServiceImpl) GetTopicArea(ctx context.Context, id string) (*dto.TopicAreaResponse, error) {
	area, err := s.repo.FindTopicArea(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Topic area not found", id)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get topic area", err.Error())
	}
	resp := dto.ToTopicAreaResponse(area)
	return &resp, nil
}

// ListTopicAreas lists topic areas. The unfiltered listing is cached.
func (s *taxonomyServiceImpl) ListTopicAreas(ctx context.Context, isActive *bool, search string) ([]dto.TopicAreaResponse, error) {
	cacheable := isActive == nil && search == ""

	if cacheable {
		var cached []dto.TopicAreaResponse
		if s.cacheGet(ctx, "topic_areas", &cached) {
			return cached, nil
		}
	}

	areas, err := s.repo.ListTopicAreas(ctx, isActive, search)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list topic areas", err.Error())
	}

	result := make([]dto.TopicAreaResponse, 0, len(areas))
	for _, area := range areas {
		result = append(result, dto.ToTopicAreaResponse(area))
	}

	if cacheable {
		s.cacheSet(ctx, "topic_areas", result)
	}
	return result, nil
}

// UpdateTopicArea updates a topic area. The ID is immutable.
func (s *taxonomyServiceImpl) UpdateTopicArea(ctx context.Context, id string, req *dto.UpdateTopicAreaRequest) (*dto.TopicAreaResponse, error) {
	area, err := s.repo.FindTopicArea(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Topic area not found", id)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get topic area", err.Error())
	}

	if req.Name != nil {
		if err := validation.StringLength(*req.Name, 1, 100); err != nil {
			return nil, response.NewFieldValidationError("Invalid topic area", map[string][]string{"name": {err.Error()}})
		}
		area.Name = *req.Name
	}
	if req.ParentThemes != nil {
		area.ParentThemes = req.ParentThemes
	}
	if req.IsActive != nil {
		area.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateTopicArea(ctx, area); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update topic area", err.Error())
	}

	s.invalidateCache(ctx, "topic_areas")
	resp := dto.ToTopicAreaResponse(area)
	return &resp, nil
}

// DeleteTopicArea deletes a topic area
func (s *taxonomyServiceImpl) DeleteTopicArea(ctx context.Context, id string) error {
	if _, err := s.repo.FindTopicArea(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Topic area not found", id)
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to get topic area", err.Error())
	}
	if err := s.repo.DeleteTopicArea(ctx, id); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete topic area", err.Error())
	}
	s.invalidateCache(ctx, "topic_areas")
	return nil
}

// CreateGeographicArea creates a new geographic area
func (s *taxonomyServiceImpl) CreateGeographicArea(ctx context.Context, req *dto.CreateGeographicAreaRequest) (*dto.GeographicAreaResponse, error) {
	errs := validation.NewErrors()
	errs.AddIf("id", validation.StringLength(req.ID, 1, 50))
	errs.AddIf("name", validation.StringLength(req.Name, 1, 100))
	if !domain.GeographicAreaType(req.Type).Valid() {
		errs.Add("type", "unknown area type")
	}
	if errs.HasErrors() {
		return nil, response.NewFieldValidationError("Invalid geographic area", errs.Fields())
	}

	area := &domain.GeographicArea{
		ID:         strings.ToLower(req.ID),
		Name:       req.Name,
		Type:       domain.GeographicAreaType(req.Type),
		Population: req.Population,
		AreaKm2:    req.AreaKm2,
	}

	if err := s.repo.CreateGeographicArea(ctx, area); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Geographic area already exists", area.ID)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create geographic area", err.Error())
	}

	s.invalidateCache(ctx, "geographic_areas")
	resp := dto.ToGeographicAreaResponse(area)
	return &resp, nil
}

// GetGeographicArea finds a geographic area by ID
func (s *taxonomyServiceImpl) GetGeographicArea(ctx context.Context, id string) (*dto.GeographicAreaResponse, error) {
	area, err := s.repo.FindGeographicArea(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Geographic area not found", id)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get geographic area", err.Error())
	}
	resp := dto.ToGeographicAreaResponse(area)
	return &resp, nil
}

// ListGeographicAreas lists geographic areas. The unfiltered listing is cached.
func (s *taxonomyServiceImpl) ListGeographicAreas(ctx context.Context, areaType *string, search string) ([]dto.GeographicAreaResponse, error) {
	var typeFilter *domain.GeographicAreaType
	if areaType != nil {
		t := domain.GeographicAreaType(*areaType)
		if !t.Valid() {
			return nil, response.NewValidationError("Unknown area type", *areaType)
		}
		typeFilter = &t
	}

	cacheable := typeFilter == nil && search == ""

	if cacheable {
		var cached []dto.GeographicAreaResponse
		if s.cacheGet(ctx, "geographic_areas", &cached) {
			return cached, nil
		}
	}

	areas, err := s.repo.ListGeographicAreas(ctx, typeFilter, search)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list geographic areas", err.Error())
	}

	result := make([]dto.GeographicAreaResponse, 0, len(areas))
	for _, area := range areas {
		result = append(result, dto.ToGeographicAreaResponse(area))
	}

	if cacheable {
		s.cacheSet(ctx, "geographic_areas", result)
	}
	return result, nil
}

// UpdateGeographicArea updates a geographic area. The ID is immutable.
func (s *taxonomyServiceImpl) UpdateGeographicArea(ctx context.Context, id string, req *dto.UpdateGeographicAreaRequest) (*dto.GeographicAreaResponse, error) {
	area, err := s.repo.FindGeographicArea(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Geographic area not found", id)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get geographic area", err.Error())
	}

	if req.Name != nil {
		if err := validation.StringLength(*req.Name, 1, 100); err != nil {
			return nil, response.NewFieldValidationError("Invalid geographic area", map[string][]string{"name": {err.Error()}})
		}
		area.Name = *req.Name
	}
	if req.Type != nil {
		t := domain.GeographicAreaType(*req.Type)
		if !t.Valid() {
			return nil, response.NewFieldValidationError("Invalid geographic area", map[string][]string{"type": {"unknown area type"}})
		}
		area.Type = t
	}
	if req.Population != nil {
		area.Population = req.Population
	}
	if req.AreaKm2 != nil {
		area.AreaKm2 = req.AreaKm2
	}

	if err := s.repo.UpdateGeographicArea(ctx, area); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update geographic area", err.Error())
	}

	s.invalidateCache(ctx, "geographic_areas")
	resp := dto.ToGeographicAreaResponse(area)
	return &resp, nil
}

// DeleteGeographicArea deletes a geographic area
func (s *taxonomyServiceImpl) DeleteGeographicArea(ctx context.Context, id string) error {
	if _, err := s.repo.FindGeographicArea(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Geographic area not found", id)
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to get geographic area", err.Error())
	}
	if err := s.repo.DeleteGeographicArea(ctx, id); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete geographic area", err.Error())
	}
	s.invalidateCache(ctx, "geographic_areas")
	return nil
}

// cacheGet loads a cached listing. A miss or an unavailable cache
// returns false and the caller falls through to the database.
func (s *taxonomyServiceImpl) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, cacheKey(key)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("Taxonomy cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.logger.Warn("Taxonomy cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// cacheSet stores a listing. Failures are logged, never surfaced.
func (s *taxonomyServiceImpl) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(key), raw, taxonomyCacheTTL).Err(); err != nil {
		s.logger.Warn("Taxonomy cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// invalidateCache drops the cached listing for one vocabulary
func (s *taxonomyServiceImpl) invalidateCache(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cacheKey(key)).Err(); err != nil {
		s.logger.Warn("Taxonomy cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}

func cacheKey(key string) string {
	return "taxonomy:" + key
}
