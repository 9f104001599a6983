package service

import (
	"context"

	"github.com/google/uuid"

	"stratoview-taxonomy-api/internal/domain"
	"stratoview-taxonomy-api/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc          func(ctx context.Context, user *domain.User) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByUsernameFunc  func(ctx context.Context, username string) (*domain.User, error)
	ListFunc            func(ctx context.Context, userType *domain.UserType) ([]*domain.User, error)
	UpdateLastLoginFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *MockUserRepository) List(ctx context.Context, userType *domain.UserType) ([]*domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userType)
	}
	return nil, nil
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	if m.UpdateLastLoginFunc != nil {
		return m.UpdateLastLoginFunc(ctx, id)
	}
	return nil
}

// MockTaxonomyRepository is a mock implementation of TaxonomyRepository
type MockTaxonomyRepository struct {
	CreateIntelligenceAreaFunc func(ctx context.Context, area *domain.IntelligenceArea) error
	FindIntelligenceAreaFunc   func(ctx context.Context, id string) (*domain.IntelligenceArea, error)
	ListIntelligenceAreasFunc  func(ctx context.Context, isActive *bool, search string) ([]*domain.IntelligenceArea, error)
	UpdateIntelligenceAreaFunc func(ctx context.Context, area *domain.IntelligenceArea) error
	DeleteIntelligenceAreaFunc func(ctx context.Context, id string) error

	CreateTopicAreaFunc func(ctx context.Context, area *domain.TopicArea) error
	FindTopicAreaFunc   func(ctx context.Context, id string) (*domain.TopicArea, error)
	ListTopicAreasFunc  func(ctx context.Context, isActive *bool, search string) ([]*domain.TopicArea, error)
	UpdateTopicAreaFunc func(ctx context.Context, area *domain.TopicArea) error
	DeleteTopicAreaFunc func(ctx context.Context, id string) error

	CreateGeographicAreaFunc func(ctx context.Context, area *domain.GeographicArea) error
	FindGeographicAreaFunc   func(ctx context.Context, id string) (*domain.GeographicArea, error)
	FindGeographicAreasFunc  func(ctx context.Context, ids []string) ([]*domain.GeographicArea, error)
	ListGeographicAreasFunc  func(ctx context.Context, areaType *domain.GeographicAreaType, search string) ([]*domain.GeographicArea, error)
	UpdateGeographicAreaFunc func(ctx context.Context, area *domain.GeographicArea) error
	DeleteGeographicAreaFunc func(ctx context.Context, id string) error
}

func (m *MockTaxonomyRepository) CreateIntelligenceArea(ctx context.Context, area *domain.IntelligenceArea) error {
	if m.CreateIntelligenceAreaFunc != nil {
		return m.CreateIntelligenceAreaFunc(ctx, area)
	}
	return nil
}

func (m *MockTaxonomyRepository) FindIntelligenceArea(ctx context.Context, id string) (*domain.IntelligenceArea, error) {
	if m.FindIntelligenceAreaFunc != nil {
		return m.FindIntelligenceAreaFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTaxonomyRepository) ListIntelligenceAreas(ctx context.Context, isActive *bool, search string) ([]*domain.IntelligenceArea, error) {
	if m.ListIntelligenceAreasFunc != nil {
		return m.ListIntelligenceAreasFunc(ctx, isActive, search)
	}
	return nil, nil
}

func (m *MockTaxonomyRepository) UpdateIntelligenceArea(ctx context.Context, area *domain.IntelligenceArea) error {
	if m.UpdateIntelligenceAreaFunc != nil {
		return m.UpdateIntelligenceAreaFunc(ctx, area)
	}
	return nil
}

func (m *MockTaxonomyRepository) DeleteIntelligenceArea(ctx context.Context, id string) error {
	if m.DeleteIntelligenceAreaFunc != nil {
		return m.DeleteIntelligenceAreaFunc(ctx, id)
	}
	return nil
}

func (m *MockTaxonomyRepository) CreateTopicArea(ctx context.Context, area *domain.TopicArea) error {
	if m.CreateTopicAreaFunc != nil {
		return m.CreateTopicAreaFunc(ctx, area)
	}
	return nil
}

func (m *MockTaxonomyRepository) FindTopicArea(ctx context.Context, id string) (*domain.TopicArea, error) {
	if m.FindTopicAreaFunc != nil {
		return m.FindTopicAreaFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTaxonomyRepository) ListTopicAreas(ctx context.Context, isActive *bool, search string) ([]*domain.TopicArea, error) {
	if m.ListTopicAreasFunc != nil {
		return m.ListTopicAreasFunc(ctx, isActive, search)
	}
	return nil, nil
}

func (m *MockTaxonomyRepository) UpdateTopicArea(ctx context.Context, area *domain.TopicArea) error {
	if m.UpdateTopicAreaFunc != nil {
		return m.UpdateTopicAreaFunc(ctx, area)
	}
	return nil
}

func (m *MockTaxonomyRepository) DeleteTopicArea(ctx context.Context, id string) error {
	if m.DeleteTopicAreaFunc != nil {
		return m.DeleteTopicAreaFunc(ctx, id)
	}
	return nil
}

func (m *MockTaxonomyRepository) CreateGeographicArea(ctx context.Context, area *domain.GeographicArea) error {
	if m.CreateGeographicAreaFunc != nil {
		return m.CreateGeographicAreaFunc(ctx, area)
	}
	return nil
}

func (m *MockTaxonomyRepository) FindGeographicArea(ctx context.Context, id string) (*domain.GeographicArea, error) {
	if m.FindGeographicAreaFunc != nil {
		return m.FindGeographicAreaFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTaxonomyRepository) FindGeographicAreas(ctx context.Context, ids []string) ([]*domain.GeographicArea, error) {
	if m.FindGeographicAreasFunc != nil {
		return m.FindGeographicAreasFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockTaxonomyRepository) ListGeographicAreas(ctx context.Context, areaType *domain.GeographicAreaType, search string) ([]*domain.GeographicArea, error) {
	if m.ListGeographicAreasFunc != nil {
		return m.ListGeographicAreasFunc(ctx, areaType, search)
	}
	return nil, nil
}

func (m *MockTaxonomyRepository) UpdateGeographicArea(ctx context.Context, area *domain.GeographicArea) error {
	if m.UpdateGeographicAreaFunc != nil {
		return m.UpdateGeographicAreaFunc(ctx, area)
	}
	return nil
}

func (m *MockTaxonomyRepository) DeleteGeographicArea(ctx context.Context, id string) error {
	if m.DeleteGeographicAreaFunc != nil {
		return m.DeleteGeographicAreaFunc(ctx, id)
	}
	return nil
}

// MockContentRepository is a mock implementation of ContentRepository
type MockContentRepository struct {
	CreateFunc   func(ctx context.Context, content *domain.Content) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Content, error)
	ListFunc     func(ctx context.Context, filters repository.ContentFilters) ([]*domain.Content, error)
	UpdateFunc   func(ctx context.Context, content *domain.Content) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error

	CreateScenarioImageFunc       func(ctx context.Context, image *domain.ScenarioImage) error
	FindScenarioImageFunc         func(ctx context.Context, id uuid.UUID) (*domain.ScenarioImage, error)
	MarkScenarioImageDeletedFunc  func(ctx context.Context, id uuid.UUID) error
	FindDeletedScenarioImagesFunc func(ctx context.Context) ([]*domain.ScenarioImage, error)
	PurgeScenarioImageFunc        func(ctx context.Context, id uuid.UUID) error
}

func (m *MockContentRepository) Create(ctx context.Context, content *domain.Content) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, content)
	}
	return nil
}

func (m *MockContentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockContentRepository) List(ctx context.Context, filters repository.ContentFilters) ([]*domain.Content, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, nil
}

func (m *MockContentRepository) Update(ctx context.Context, content *domain.Content) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, content)
	}
	return nil
}

func (m *MockContentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockContentRepository) CreateScenarioImage(ctx context.Context, image *domain.ScenarioImage) error {
	if m.CreateScenarioImageFunc != nil {
		return m.CreateScenarioImageFunc(ctx, image)
	}
	return nil
}

func (m *MockContentRepository) FindScenarioImage(ctx context.Context, id uuid.UUID) (*domain.ScenarioImage, error) {
	if m.FindScenarioImageFunc != nil {
		return m.FindScenarioImageFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockContentRepository) MarkScenarioImageDeleted(ctx context.Context, id uuid.UUID) error {
	if m.MarkScenarioImageDeletedFunc != nil {
		return m.MarkScenarioImageDeletedFunc(ctx, id)
	}
	return nil
}

func (m *MockContentRepository) FindDeletedScenarioImages(ctx context.Context) ([]*domain.ScenarioImage, error) {
	if m.FindDeletedScenarioImagesFunc != nil {
		return m.FindDeletedScenarioImagesFunc(ctx)
	}
	return nil, nil
}

func (m *MockContentRepository) PurgeScenarioImage(ctx context.Context, id uuid.UUID) error {
	if m.PurgeScenarioImageFunc != nil {
		return m.PurgeScenarioImageFunc(ctx, id)
	}
	return nil
}

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	CreateFunc   func(ctx context.Context, project *domain.Project) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListFunc     func(ctx context.Context, filters repository.ProjectFilters) ([]*domain.Project, error)
	UpdateFunc   func(ctx context.Context, project *domain.Project) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error

	CreateBlockFunc           func(ctx context.Context, block *domain.ContentBlock) error
	FindBlockByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.ContentBlock, error)
	FindBlocksByProjectIDFunc func(ctx context.Context, projectID uuid.UUID) ([]*domain.ContentBlock, error)
	UpdateBlockFunc           func(ctx context.Context, block *domain.ContentBlock) error
	DeleteBlockFunc           func(ctx context.Context, id uuid.UUID) error
	CountActiveBlocksFunc     func(ctx context.Context, projectID uuid.UUID) (int64, error)
}

func (m *MockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProjectRepository) List(ctx context.Context, filters repository.ProjectFilters) ([]*domain.Project, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, nil
}

func (m *MockProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockProjectRepository) CreateBlock(ctx context.Context, block *domain.ContentBlock) error {
	if m.CreateBlockFunc != nil {
		return m.CreateBlockFunc(ctx, block)
	}
	return nil
}

func (m *MockProjectRepository) FindBlockByID(ctx context.Context, id uuid.UUID) (*domain.ContentBlock, error) {
	if m.FindBlockByIDFunc != nil {
		return m.FindBlockByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindBlocksByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.ContentBlock, error) {
	if m.FindBlocksByProjectIDFunc != nil {
		return m.FindBlocksByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockProjectRepository) UpdateBlock(ctx context.Context, block *domain.ContentBlock) error {
	if m.UpdateBlockFunc != nil {
		return m.UpdateBlockFunc(ctx, block)
	}
	return nil
}

func (m *MockProjectRepository) DeleteBlock(ctx context.Context, id uuid.UUID) error {
	if m.DeleteBlockFunc != nil {
		return m.DeleteBlockFunc(ctx, id)
	}
	return nil
}

func (m *MockProjectRepository) CountActiveBlocks(ctx context.Context, projectID uuid.UUID) (int64, error) {
	if m.CountActiveBlocksFunc != nil {
		return m.CountActiveBlocksFunc(ctx, projectID)
	}
	return 0, nil
}
