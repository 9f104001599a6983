package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stratoview-taxonomy-api/internal/domain"
	"stratoview-taxonomy-api/internal/dto"
	"stratoview-taxonomy-api/internal/metrics"
	"stratoview-taxonomy-api/internal/repository"
	"stratoview-taxonomy-api/internal/response"
)

// permissiveTaxonomyRepo resolves every slug so taxonomy references never
// fail in tests that exercise other rules
func permissiveTaxonomyRepo() *MockTaxonomyRepository {
	return &MockTaxonomyRepository{
		FindIntelligenceAreaFunc: func(ctx context.Context, id string) (*domain.IntelligenceArea, error) {
			return &domain.IntelligenceArea{ID: id, Name: "Ambiente", ColorCode: "#2D7D46", IsActive: true}, nil
		},
		FindTopicAreaFunc: func(ctx context.Context, id string) (*domain.TopicArea, error) {
			return &domain.TopicArea{ID: id, Name: "Risorse Idriche", IsActive: true}, nil
		},
		FindGeographicAreasFunc: func(ctx context.Context, ids []string) ([]*domain.GeographicArea, error) {
			areas := make([]*domain.GeographicArea, 0, len(ids))
			for _, id := range ids {
				areas = append(areas, &domain.GeographicArea{ID: id, Name: id, Type: domain.AreaTypeProvince})
			}
			return areas, nil
		},
	}
}

func userRepoReturning(user *domain.User) *MockUserRepository {
	return &MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			if user == nil {
				return nil, gorm.ErrRecordNotFound
			}
			u := *user
			u.ID = id
			return &u, nil
		},
	}
}

// storingContentRepo persists the created content so the service's
// follow-up FindByID returns the stored record
func storingContentRepo() *MockContentRepository {
	var stored *domain.Content
	return &MockContentRepository{
		CreateFunc: func(ctx context.Context, content *domain.Content) error {
			content.ID = uuid.New()
			content.DataCreazione = time.Now()
			content.UltimaModifica = time.Now()
			stored = content
			return nil
		},
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
			if stored == nil || stored.ID != id {
				return nil, gorm.ErrRecordNotFound
			}
			return stored, nil
		},
	}
}

func newTestContentService(contentRepo *MockContentRepository, userRepo *MockUserRepository, taxonomyRepo *MockTaxonomyRepository) *contentServiceImpl {
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), nil)
	svc := NewContentService(contentRepo, userRepo, taxonomyRepo, nil, m, zap.NewNop())
	return svc.(*contentServiceImpl)
}

func validScenarioRequest() *dto.CreateContentRequest {
	return &dto.CreateContentRequest{
		ContentType:        "scenario",
		Titolo:             "Stress idrico estivo 2030",
		DescrizioneBreve:   "Scenario di scarsità idrica per il comparto agricolo",
		Visibility:         "private",
		IntelligenceArea:   "ambiente",
		GeographicCoverage: []string{"provincia-di-brescia"},
		Scenario: &dto.ScenarioPayload{
			Probabilita:  "medium",
			ScenarioText: strings.Repeat("Entro il 2030 la domanda idrica supera la capacità. ", 3),
		},
	}
}

func validTrendRadarRequest(year int) *dto.CreateContentRequest {
	return &dto.CreateContentRequest{
		ContentType:        "trend_radar",
		Titolo:             "Radar tendenze giugno",
		DescrizioneBreve:   "Radar delle tendenze emergenti",
		Visibility:         "public",
		IntelligenceArea:   "ambiente",
		GeographicCoverage: []string{"all-lombardia"},
		TrendRadar: &dto.TrendRadarPayload{
			TimeMonth:        6,
			TimeYear:         year,
			RadarImageKey:    "content/trend_radars/ab/radar.png",
			OriginalFilename: "radar.png",
		},
	}
}

func TestContentService_CreateContent(t *testing.T) {
	admin := &domain.User{Username: "admin", UserType: domain.UserTypeAdmin}
	customer := &domain.User{Username: "rossi", UserType: domain.UserTypeCustomer}

	tests := []struct {
		name        string
		creator     *domain.User
		req         *dto.CreateContentRequest
		wantErrCode string
		wantFields  []string
		check       func(t *testing.T, resp *dto.ContentResponse)
	}{
		{
			name:    "customer creates private scenario",
			creator: customer,
			req:     validScenarioRequest(),
			check: func(t *testing.T, resp *dto.ContentResponse) {
				assert.Equal(t, "user_created", resp.ContentSource)
				assert.False(t, resp.IsCompanyGenerated)
				require.NotNil(t, resp.Scenario)
			},
		},
		{
			name:    "admin content is company sourced",
			creator: admin,
			req: func() *dto.CreateContentRequest {
				r := validScenarioRequest()
				r.Visibility = "public"
				return r
			}(),
			check: func(t *testing.T, resp *dto.ContentResponse) {
				assert.Equal(t, "company", resp.ContentSource)
				assert.True(t, resp.IsCompanyGenerated)
			},
		},
		{
			name:    "customer cannot publish public content",
			creator: customer,
			req: func() *dto.CreateContentRequest {
				r := validScenarioRequest()
				r.Visibility = "public"
				return r
			}(),
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name:    "customer cannot create index content",
			creator: customer,
			req: &dto.CreateContentRequest{
				ContentType:        "index",
				Titolo:             "Indice resilienza turismo",
				DescrizioneBreve:   "Indice composito provinciale",
				Visibility:         "private",
				IntelligenceArea:   "turismo",
				GeographicCoverage: []string{"provincia-di-sondrio"},
				Index: &dto.IndexPayload{
					IndexType:            "analytical",
					DataLevel:            "higher_level",
					GeographicResolution: "province",
				},
			},
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name:    "admin creates index content",
			creator: admin,
			req: &dto.CreateContentRequest{
				ContentType:        "index",
				Titolo:             "Indice resilienza turismo",
				DescrizioneBreve:   "Indice composito provinciale",
				Visibility:         "public",
				IntelligenceArea:   "turismo",
				GeographicCoverage: []string{"provincia-di-sondrio"},
				Index: &dto.IndexPayload{
					IndexType:            "analytical",
					DataLevel:            "higher_level",
					GeographicResolution: "province",
				},
			},
			check: func(t *testing.T, resp *dto.ContentResponse) {
				require.NotNil(t, resp.Index)
				assert.Equal(t, "Analytical", resp.Index.IndexTypeDisplay)
			},
		},
		{
			name:    "two extension payloads rejected",
			creator: customer,
			req: func() *dto.CreateContentRequest {
				r := validScenarioRequest()
				r.Index = &dto.IndexPayload{IndexType: "analytical", DataLevel: "higher_level", GeographicResolution: "province"}
				return r
			}(),
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name:    "payload must match declared type",
			creator: customer,
			req: func() *dto.CreateContentRequest {
				r := validScenarioRequest()
				r.Scenario = nil
				r.ParticipatoryData = &dto.ParticipatoryDataPayload{
					CollectionDate:   "2025-01-10",
					VisualizationKey: "content/participatory_data/ab/viz.png",
					OriginalFilename: "viz.png",
				}
				return r
			}(),
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name:    "scenario text below minimum length",
			creator: customer,
			req: func() *dto.CreateContentRequest {
				r := validScenarioRequest()
				r.Scenario.ScenarioText = strings.Repeat("a", 49)
				return r
			}(),
			wantErrCode: response.ErrCodeValidation,
			wantFields:  []string{"scenario_text"},
		},
		{
			name:    "scenario text at minimum length",
			creator: customer,
			req: func() *dto.CreateContentRequest {
				r := validScenarioRequest()
				r.Scenario.ScenarioText = strings.Repeat("a", 50)
				return r
			}(),
		},
		{
			name:    "too many themes rejected",
			creator: customer,
			req: func() *dto.CreateContentRequest {
				r := validScenarioRequest()
				r.Themes = []string{"a", "b", "c", "d", "e", "f"}
				return r
			}(),
			wantErrCode: response.ErrCodeValidation,
			wantFields:  []string{"themes"},
		},
		{
			name:    "malformed participatory collection date",
			creator: customer,
			req: &dto.CreateContentRequest{
				ContentType:        "participatory_data",
				Titolo:             "Sondaggio Q1",
				DescrizioneBreve:   "Dati partecipativi primo trimestre",
				Visibility:         "private",
				IntelligenceArea:   "societa",
				GeographicCoverage: []string{"milano"},
				ParticipatoryData: &dto.ParticipatoryDataPayload{
					CollectionDate:   "10/01/2025",
					VisualizationKey: "content/participatory_data/ab/viz.png",
					OriginalFilename: "viz.png",
				},
			},
			wantErrCode: response.ErrCodeValidation,
			wantFields:  []string{"collection_date"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestContentService(storingContentRepo(), userRepoReturning(tt.creator), permissiveTaxonomyRepo())

			resp, err := svc.CreateContent(context.Background(), tt.req, uuid.New())

			if tt.wantErrCode != "" {
				require.Error(t, err)
				appErr, ok := err.(*response.AppError)
				require.True(t, ok, "expected AppError, got %T", err)
				assert.Equal(t, tt.wantErrCode, appErr.Code)
				for _, field := range tt.wantFields {
					assert.Contains(t, appErr.FieldErrors, field)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, resp)
			if tt.check != nil {
				tt.check(t, resp)
			}
		})
	}
}

func TestContentService_CreateContent_TrendRadarTimeWindow(t *testing.T) {
	admin := &domain.User{Username: "admin", UserType: domain.UserTypeAdmin}
	currentYear := 2025

	tests := []struct {
		name    string
		year    int
		wantErr bool
	}{
		{name: "current year accepted", year: 2025},
		{name: "two years ahead accepted", year: 2027},
		{name: "three years ahead rejected", year: 2028, wantErr: true},
		{name: "five years back accepted", year: 2020},
		{name: "six years back rejected", year: 2019, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestContentService(storingContentRepo(), userRepoReturning(admin), permissiveTaxonomyRepo())
			svc.now = func() time.Time {
				return time.Date(currentYear, time.June, 15, 12, 0, 0, 0, time.UTC)
			}

			_, err := svc.CreateContent(context.Background(), validTrendRadarRequest(tt.year), uuid.New())

			if tt.wantErr {
				require.Error(t, err)
				appErr, ok := err.(*response.AppError)
				require.True(t, ok)
				assert.Equal(t, response.ErrCodeValidation, appErr.Code)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestContentService_CreateContent_UnknownTaxonomyRefs(t *testing.T) {
	customer := &domain.User{Username: "rossi", UserType: domain.UserTypeCustomer}

	taxonomyRepo := &MockTaxonomyRepository{
		FindIntelligenceAreaFunc: func(ctx context.Context, id string) (*domain.IntelligenceArea, error) {
			return nil, gorm.ErrRecordNotFound
		},
		FindGeographicAreasFunc: func(ctx context.Context, ids []string) ([]*domain.GeographicArea, error) {
			// Resolves none of the requested slugs
			return nil, nil
		},
	}

	svc := newTestContentService(storingContentRepo(), userRepoReturning(customer), taxonomyRepo)

	_, err := svc.CreateContent(context.Background(), validScenarioRequest(), uuid.New())
	require.Error(t, err)
	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, response.ErrCodeValidation, appErr.Code)
	assert.Contains(t, appErr.FieldErrors, "intelligence_area")
	assert.Contains(t, appErr.FieldErrors, "geographic_coverage")
}

func TestContentService_CreateContent_InactiveIntelligenceArea(t *testing.T) {
	customer := &domain.User{Username: "rossi", UserType: domain.UserTypeCustomer}

	taxonomyRepo := permissiveTaxonomyRepo()
	taxonomyRepo.FindIntelligenceAreaFunc = func(ctx context.Context, id string) (*domain.IntelligenceArea, error) {
		return &domain.IntelligenceArea{ID: id, Name: "Ambiente", ColorCode: "#2D7D46", IsActive: false}, nil
	}

	svc := newTestContentService(storingContentRepo(), userRepoReturning(customer), taxonomyRepo)

	_, err := svc.CreateContent(context.Background(), validScenarioRequest(), uuid.New())
	require.Error(t, err)
	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Contains(t, appErr.FieldErrors, "intelligence_area")
}

func TestContentService_GetContent_PrivateVisibility(t *testing.T) {
	ownerID := uuid.New()
	contentID := uuid.New()

	privateContent := &domain.Content{
		ID:                 contentID,
		CreatorID:          ownerID,
		ContentType:        domain.ContentTypeScenario,
		Titolo:             "Scenario riservato",
		DescrizioneBreve:   "Solo per il proprietario",
		Visibility:         domain.VisibilityPrivate,
		ContentSource:      domain.SourceUserCreated,
		IntelligenceAreaID: "ambiente",
		Scenario: &domain.Scenario{
			ContentID:    contentID,
			Probabilita:  domain.ProbabilityMedium,
			ScenarioText: strings.Repeat("x", 60),
		},
	}

	contentRepo := &MockContentRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
			return privateContent, nil
		},
	}

	t.Run("owner reads own private content", func(t *testing.T) {
		svc := newTestContentService(contentRepo, userRepoReturning(nil), permissiveTaxonomyRepo())
		resp, err := svc.GetContent(context.Background(), contentID, ownerID)
		require.NoError(t, err)
		assert.Equal(t, contentID, resp.ID)
	})

	t.Run("admin reads any private content", func(t *testing.T) {
		admin := &domain.User{Username: "admin", UserType: domain.UserTypeAdmin}
		svc := newTestContentService(contentRepo, userRepoReturning(admin), permissiveTaxonomyRepo())
		resp, err := svc.GetContent(context.Background(), contentID, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, contentID, resp.ID)
	})

	t.Run("other customer gets not found", func(t *testing.T) {
		other := &domain.User{Username: "bianchi", UserType: domain.UserTypeCustomer}
		svc := newTestContentService(contentRepo, userRepoReturning(other), permissiveTaxonomyRepo())
		_, err := svc.GetContent(context.Background(), contentID, uuid.New())
		require.Error(t, err)
		appErr, ok := err.(*response.AppError)
		require.True(t, ok)
		assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
	})
}

func TestContentService_ListContents_FiltersPrivateOfOthers(t *testing.T) {
	requesterID := uuid.New()
	otherID := uuid.New()
	customer := &domain.User{Username: "rossi", UserType: domain.UserTypeCustomer}

	makeContent := func(creator uuid.UUID, visibility domain.Visibility) *domain.Content {
		id := uuid.New()
		return &domain.Content{
			ID:               id,
			CreatorID:        creator,
			ContentType:      domain.ContentTypeScenario,
			Titolo:           "t",
			DescrizioneBreve: "d",
			Visibility:       visibility,
			ContentSource:    domain.SourceUserCreated,
			Scenario:         &domain.Scenario{ContentID: id, Probabilita: domain.ProbabilityLow, ScenarioText: strings.Repeat("x", 60)},
		}
	}

	ownPrivate := makeContent(requesterID, domain.VisibilityPrivate)
	foreignPrivate := makeContent(otherID, domain.VisibilityPrivate)
	foreignPublic := makeContent(otherID, domain.VisibilityPublic)

	contentRepo := &MockContentRepository{
		ListFunc: func(ctx context.Context, filters repository.ContentFilters) ([]*domain.Content, error) {
			return []*domain.Content{ownPrivate, foreignPrivate, foreignPublic}, nil
		},
	}

	svc := newTestContentService(contentRepo, userRepoReturning(customer), permissiveTaxonomyRepo())
	// userRepoReturning echoes the requested ID, so the requester resolves
	// as a customer and foreign private items must be filtered out
	resp, err := svc.ListContents(context.Background(), repository.ContentFilters{}, requesterID)
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)

	ids := []uuid.UUID{resp.Contents[0].ID, resp.Contents[1].ID}
	assert.Contains(t, ids, ownPrivate.ID)
	assert.Contains(t, ids, foreignPublic.ID)
	assert.NotContains(t, ids, foreignPrivate.ID)
}
