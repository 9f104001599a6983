package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stratoview-taxonomy-api/internal/domain"
	"stratoview-taxonomy-api/internal/dto"
	"stratoview-taxonomy-api/internal/response"
)

func TestTaxonomyService_CreateIntelligenceArea(t *testing.T) {
	tests := []struct {
		name        string
		req         *dto.CreateIntelligenceAreaRequest
		repoErr     error
		wantErrCode string
		wantFields  []string
		check       func(t *testing.T, resp *dto.IntelligenceAreaResponse)
	}{
		{
			name: "slug lowercased and color uppercased",
			req: &dto.CreateIntelligenceAreaRequest{
				ID:        "Economia",
				Name:      "Economia",
				ColorCode: "#1565c0",
			},
			check: func(t *testing.T, resp *dto.IntelligenceAreaResponse) {
				assert.Equal(t, "economia", resp.ID)
				assert.Equal(t, "#1565C0", resp.ColorCode)
				assert.True(t, resp.IsActive)
			},
		},
		{
			name: "explicit inactive area",
			req: &dto.CreateIntelligenceAreaRequest{
				ID:        "archivio",
				Name:      "Archivio",
				ColorCode: "#777777",
				IsActive:  boolPtr(false),
			},
			check: func(t *testing.T, resp *dto.IntelligenceAreaResponse) {
				assert.False(t, resp.IsActive)
			},
		},
		{
			name: "color without hash rejected",
			req: &dto.CreateIntelligenceAreaRequest{
				ID:        "economia",
				Name:      "Economia",
				ColorCode: "1565C0",
			},
			wantErrCode: response.ErrCodeValidation,
			wantFields:  []string{"color_code"},
		},
		{
			name: "short hex color rejected",
			req: &dto.CreateIntelligenceAreaRequest{
				ID:        "economia",
				Name:      "Economia",
				ColorCode: "#1565C",
			},
			wantErrCode: response.ErrCodeValidation,
			wantFields:  []string{"color_code"},
		},
		{
			name: "duplicate slug rejected",
			req: &dto.CreateIntelligenceAreaRequest{
				ID:        "economia",
				Name:      "Economia",
				ColorCode: "#1565C0",
			},
			repoErr:     gorm.ErrDuplicatedKey,
			wantErrCode: response.ErrCodeAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockTaxonomyRepository{
				CreateIntelligenceAreaFunc: func(ctx context.Context, area *domain.IntelligenceArea) error {
					return tt.repoErr
				},
			}
			svc := NewTaxonomyService(repo, nil, zap.NewNop())

			resp, err := svc.CreateIntelligenceArea(context.Background(), tt.req)

			if tt.wantErrCode != "" {
				require.Error(t, err)
				appErr, ok := err.(*response.AppError)
				require.True(t, ok)
				assert.Equal(t, tt.wantErrCode, appErr.Code)
				for _, field := range tt.wantFields {
					assert.Contains(t, appErr.FieldErrors, field)
				}
				return
			}

			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, resp)
			}
		})
	}
}

func TestTaxonomyService_UpdateIntelligenceArea(t *testing.T) {
	repo := &MockTaxonomyRepository{
		FindIntelligenceAreaFunc: func(ctx context.Context, id string) (*domain.IntelligenceArea, error) {
			if id != "economia" {
				return nil, gorm.ErrRecordNotFound
			}
			return &domain.IntelligenceArea{ID: "economia", Name: "Economia", ColorCode: "#1565C0", IsActive: true}, nil
		},
	}
	svc := NewTaxonomyService(repo, nil, zap.NewNop())

	t.Run("color normalized on update", func(t *testing.T) {
		color := "#ffaa00"
		resp, err := svc.UpdateIntelligenceArea(context.Background(), "economia",
			&dto.UpdateIntelligenceAreaRequest{ColorCode: &color})
		require.NoError(t, err)
		assert.Equal(t, "#FFAA00", resp.ColorCode)
	})

	t.Run("unknown area not found", func(t *testing.T) {
		name := "Altro"
		_, err := svc.UpdateIntelligenceArea(context.Background(), "sconosciuto",
			&dto.UpdateIntelligenceAreaRequest{Name: &name})
		require.Error(t, err)
		appErr, ok := err.(*response.AppError)
		require.True(t, ok)
		assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
	})
}

func TestTaxonomyService_CreateGeographicArea(t *testing.T) {
	repo := &MockTaxonomyRepository{}
	svc := NewTaxonomyService(repo, nil, zap.NewNop())

	t.Run("valid province", func(t *testing.T) {
		population := uint(1253993)
		resp, err := svc.CreateGeographicArea(context.Background(), &dto.CreateGeographicAreaRequest{
			ID:         "Brescia",
			Name:       "Provincia di Brescia",
			Type:       "province",
			Population: &population,
		})
		require.NoError(t, err)
		assert.Equal(t, "brescia", resp.ID)
		assert.Equal(t, "Province", resp.TypeDisplay)
	})

	t.Run("unknown area type rejected", func(t *testing.T) {
		_, err := svc.CreateGeographicArea(context.Background(), &dto.CreateGeographicAreaRequest{
			ID:   "brescia",
			Name: "Provincia di Brescia",
			Type: "district",
		})
		require.Error(t, err)
		appErr, ok := err.(*response.AppError)
		require.True(t, ok)
		assert.Contains(t, appErr.FieldErrors, "type")
	})
}

func TestTaxonomyService_ListIntelligenceAreas_CacheDisabled(t *testing.T) {
	calls := 0
	repo := &MockTaxonomyRepository{
		ListIntelligenceAreasFunc: func(ctx context.Context, isActive *bool, search string) ([]*domain.IntelligenceArea, error) {
			calls++
			return []*domain.IntelligenceArea{
				{ID: "economia", Name: "Economia", ColorCode: "#1565C0", IsActive: true},
			}, nil
		},
	}
	// nil cache client: every listing goes to the repository
	svc := NewTaxonomyService(repo, nil, zap.NewNop())

	for i := 0; i < 2; i++ {
		areas, err := svc.ListIntelligenceAreas(context.Background(), nil, "")
		require.NoError(t, err)
		require.Len(t, areas, 1)
	}
	assert.Equal(t, 2, calls)
}

func boolPtr(b bool) *bool {
	return &b
}
