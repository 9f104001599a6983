package dto

import (
	"encoding/json"

	"github.com/google/uuid"

	"stratoview-taxonomy-api/internal/domain"
)

// IndexPayload carries the index-specific fields of a content item
// @Description Index extension fields. Only admins may create index content.
type IndexPayload struct {
	IndexType            string `json:"indexType" binding:"required,oneof=analytical predictive" example:"analytical"`
	DataLevel            string `json:"dataLevel" binding:"required,oneof=middleware higher_level" example:"higher_level"`
	CalculationFormula   string `json:"calculationFormula" binding:"max=2000" example:"weighted mean of normalized sub-indicators"`
	GeographicResolution string `json:"geographicResolution" binding:"required,oneof=province 5km 1km municipality" example:"province"`
	HasMapView           *bool  `json:"hasMapView,omitempty" example:"true"`
	HasIndexView         *bool  `json:"hasIndexView,omitempty" example:"true"`
	HasDataVizView       *bool  `json:"hasDataVizView,omitempty" example:"true"`
	DefaultViewMode      string `json:"defaultViewMode" binding:"omitempty,oneof=mapview indexview datavizview" example:"mapview"`
}

// ScenarioPayload carries the scenario-specific fields of a content item
type ScenarioPayload struct {
	Probabilita    string `json:"probabilita" binding:"required,oneof=very-low low medium high very-high" example:"medium"`
	ScenarioText   string `json:"scenarioText" binding:"required" example:"Entro il 2030 la domanda idrica del bacino padano supera la capacità di invaso nei mesi estivi, imponendo razionamenti programmati al comparto agricolo."`
	ScenarioFormat string `json:"scenarioFormat" binding:"omitempty,oneof=html markdown plain" example:"html"`
}

// TrendRadarPayload carries the trend-radar-specific fields of a content item
// @Description Trend radar extension fields. The radar image must be uploaded
// @Description first via the image upload endpoint; radarImageKey references it.
type TrendRadarPayload struct {
	TimeMonth        int             `json:"timeMonth" binding:"required,min=1,max=12" example:"6"`
	TimeYear         int             `json:"timeYear" binding:"required" example:"2026"`
	RadarImageKey    string          `json:"radarImageKey" binding:"required" example:"content/trend_radars/539167fb/2025/01/ab12_1705312200.png"`
	OriginalFilename string          `json:"originalFilename" binding:"required,max=255" example:"radar-giugno.png"`
	RadarData        json.RawMessage `json:"radarData,omitempty" swaggertype:"object"`
}

// ParticipatoryDataPayload carries the participatory-data-specific fields
type ParticipatoryDataPayload struct {
	CollectionDate   string `json:"collectionDate" binding:"required" example:"2025-01-10"`
	VisualizationKey string `json:"visualizationKey" binding:"required" example:"content/participatory_data/539167fb/2025/01/cd34_1705312200.png"`
	OriginalFilename string `json:"originalFilename" binding:"required,max=255" example:"sondaggio-q1.png"`
	Methodology      string `json:"methodology" binding:"max=2000" example:"CAWI survey, 1200 respondents, stratified by province"`
}

// CreateContentRequest represents the request to create a content item
// @Description Request body for creating content. contentType selects which
// @Description extension payload is required; exactly one of index, scenario,
// @Description trendRadar or participatoryData must be present and must match
// @Description contentType. contentType is immutable after creation.
type CreateContentRequest struct {
	ContentType        string   `json:"contentType" binding:"required,oneof=index scenario trend_radar participatory_data" example:"scenario"`
	Titolo             string   `json:"titolo" binding:"required,max=100" example:"Stress idrico estivo 2030"`
	DescrizioneBreve   string   `json:"descrizioneBreve" binding:"required,max=200" example:"Scenario di scarsità idrica per il comparto agricolo lombardo"`
	DescrizioneEstesa  string   `json:"descrizioneEstesa" binding:"max=10000"`
	Visibility         string   `json:"visibility" binding:"required,oneof=public private" example:"private"`
	IntelligenceArea   string   `json:"intelligenceArea" binding:"required,max=50" example:"ambiente"`
	TopicArea          *string  `json:"topicArea,omitempty" example:"risorse-idriche"`
	Themes             []string `json:"themes,omitempty" example:"acqua,agricoltura"`
	GeographicCoverage []string `json:"geographicCoverage" binding:"required,min=1,max=6" example:"provincia-di-brescia,provincia-di-cremona"`

	Index             *IndexPayload             `json:"index,omitempty"`
	Scenario          *ScenarioPayload          `json:"scenario,omitempty"`
	TrendRadar        *TrendRadarPayload        `json:"trendRadar,omitempty"`
	ParticipatoryData *ParticipatoryDataPayload `json:"participatoryData,omitempty"`
}

// UpdateContentRequest represents the request to update a content item.
// contentType is absent on purpose: the type is fixed at creation and the
// extension payload, when present, must be the one matching the stored type.
// @Description Request body for updating content. All fields are optional.
type UpdateContentRequest struct {
	Titolo             *string  `json:"titolo" binding:"omitempty,max=100"`
	DescrizioneBreve   *string  `json:"descrizioneBreve" binding:"omitempty,max=200"`
	DescrizioneEstesa  *string  `json:"descrizioneEstesa,omitempty" binding:"omitempty,max=10000"`
	Visibility         *string  `json:"visibility,omitempty" binding:"omitempty,oneof=public private"`
	IntelligenceArea   *string  `json:"intelligenceArea,omitempty" binding:"omitempty,max=50"`
	TopicArea          *string  `json:"topicArea,omitempty"`
	Themes             []string `json:"themes,omitempty"`
	GeographicCoverage []string `json:"geographicCoverage,omitempty" binding:"omitempty,min=1,max=6"`

	Index             *IndexPayload             `json:"index,omitempty"`
	Scenario          *ScenarioPayload          `json:"scenario,omitempty"`
	TrendRadar        *TrendRadarPayload        `json:"trendRadar,omitempty"`
	ParticipatoryData *ParticipatoryDataPayload `json:"participatoryData,omitempty"`
}

// IndexResponse represents the index extension of a content item
type IndexResponse struct {
	IndexType                   string `json:"indexType" example:"analytical"`
	IndexTypeDisplay            string `json:"indexTypeDisplay" example:"Analytical"`
	DataLevel                   string `json:"dataLevel" example:"higher_level"`
	DataLevelDisplay            string `json:"dataLevelDisplay" example:"Higher Level"`
	CalculationFormula          string `json:"calculationFormula,omitempty"`
	GeographicResolution        string `json:"geographicResolution" example:"province"`
	GeographicResolutionDisplay string `json:"geographicResolutionDisplay" example:"Province"`
	HasMapView                  bool   `json:"hasMapView" example:"true"`
	HasIndexView                bool   `json:"hasIndexView" example:"true"`
	HasDataVizView              bool   `json:"hasDataVizView" example:"true"`
	DefaultViewMode             string `json:"defaultViewMode" example:"mapview"`
}

// ScenarioImageResponse represents an image attached to a scenario
type ScenarioImageResponse struct {
	ID           uuid.UUID `json:"imageId" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	FileKey      string    `json:"fileKey"`
	URL          string    `json:"url,omitempty"`
	OriginalName string    `json:"originalName" example:"mappa-bacino.png"`
	FileSize     int64     `json:"fileSize" example:"482133"`
	UploadDate   string    `json:"uploadDate" example:"2025-01-15T10:30:00Z"`
}

// ScenarioResponse represents the scenario extension of a content item
type ScenarioResponse struct {
	Probabilita        string                  `json:"probabilita" example:"medium"`
	ProbabilitaDisplay string                  `json:"probabilitaDisplay" example:"Medium (40-60%)"`
	ScenarioText       string                  `json:"scenarioText"`
	ScenarioFormat     string                  `json:"scenarioFormat" example:"html"`
	Images             []ScenarioImageResponse `json:"images"`
}

// TrendRadarResponse represents the trend radar extension of a content item
type TrendRadarResponse struct {
	TimeMonth        int             `json:"timeMonth" example:"6"`
	TimeYear         int             `json:"timeYear" example:"2026"`
	RadarImageKey    string          `json:"radarImageKey"`
	RadarImageURL    string          `json:"radarImageUrl,omitempty"`
	OriginalFilename string          `json:"originalFilename" example:"radar-giugno.png"`
	RadarFormat      string          `json:"radarFormat" example:"image"`
	RadarData        json.RawMessage `json:"radarData,omitempty" swaggertype:"object"`
}

// ParticipatoryDataResponse represents the participatory data extension
type ParticipatoryDataResponse struct {
	CollectionDate   string `json:"collectionDate" example:"2025-01-10"`
	DataFormat       string `json:"dataFormat" example:"visualization"`
	VisualizationKey string `json:"visualizationKey"`
	VisualizationURL string `json:"visualizationUrl,omitempty"`
	OriginalFilename string `json:"originalFilename" example:"sondaggio-q1.png"`
	Methodology      string `json:"methodology,omitempty"`
}

// ContentResponse represents a content item with its extension
// @Description Content response. Exactly one of index, scenario, trendRadar or
// @Description participatoryData is populated, matching contentType.
type ContentResponse struct {
	ID                   uuid.UUID `json:"contentId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	ContentType          string    `json:"contentType" example:"scenario"`
	ContentTypeDisplay   string    `json:"contentTypeDisplay" example:"Scenario"`
	Titolo               string    `json:"titolo" example:"Stress idrico estivo 2030"`
	DescrizioneBreve     string    `json:"descrizioneBreve"`
	DescrizioneEstesa    string    `json:"descrizioneEstesa,omitempty"`
	Visibility           string    `json:"visibility" example:"private"`
	VisibilityDisplay    string    `json:"visibilityDisplay" example:"Private"`
	ContentSource        string    `json:"contentSource" example:"user_created"`
	ContentSourceDisplay string    `json:"contentSourceDisplay" example:"User Created"`
	IsCompanyGenerated   bool      `json:"isCompanyGenerated" example:"false"`
	CreatorID            uuid.UUID `json:"creatorId"`
	CreatorUsername      string    `json:"creatorUsername,omitempty" example:"m.colombo"`
	IntelligenceArea     string    `json:"intelligenceArea" example:"ambiente"`
	IntelligenceAreaName string    `json:"intelligenceAreaName,omitempty" example:"Ambiente"`
	TopicArea            *string   `json:"topicArea,omitempty" example:"risorse-idriche"`
	TopicAreaName        string    `json:"topicAreaName,omitempty" example:"Risorse idriche"`
	Themes               []string  `json:"themes"`
	GeographicCoverage   []string  `json:"geographicCoverage"`
	DataCreazione        string    `json:"dataCreazione" example:"2025-01-15T10:30:00Z"`
	UltimaModifica       string    `json:"ultimaModifica" example:"2025-01-15T14:20:00Z"`

	Index             *IndexResponse             `json:"index,omitempty"`
	Scenario          *ScenarioResponse          `json:"scenario,omitempty"`
	TrendRadar        *TrendRadarResponse        `json:"trendRadar,omitempty"`
	ParticipatoryData *ParticipatoryDataResponse `json:"participatoryData,omitempty"`
}

// URLResolver maps a storage key to a presentable URL. A nil resolver
// leaves URL fields empty.
type URLResolver func(fileKey string) string

// ToContentResponse converts a domain content item to its response form.
// resolveURL may be nil when no storage backend is configured.
func ToContentResponse(content *domain.Content, resolveURL URLResolver) ContentResponse {
	themes := []string(content.Themes)
	if themes == nil {
		themes = []string{}
	}
	coverage := []string(content.GeographicCoverage)
	if coverage == nil {
		coverage = []string{}
	}

	resp := ContentResponse{
		ID:                   content.ID,
		ContentType:          string(content.ContentType),
		ContentTypeDisplay:   content.ContentType.Display(),
		Titolo:               content.Titolo,
		DescrizioneBreve:     content.DescrizioneBreve,
		DescrizioneEstesa:    content.DescrizioneEstesa,
		Visibility:           string(content.Visibility),
		VisibilityDisplay:    content.Visibility.Display(),
		ContentSource:        string(content.ContentSource),
		ContentSourceDisplay: content.ContentSource.Display(),
		IsCompanyGenerated:   content.IsCompanyGenerated,
		CreatorID:            content.CreatorID,
		IntelligenceArea:     content.IntelligenceAreaID,
		TopicArea:            content.TopicAreaID,
		Themes:               themes,
		GeographicCoverage:   coverage,
		DataCreazione:        formatTime(content.DataCreazione),
		UltimaModifica:       formatTime(content.UltimaModifica),
	}

	if content.Creator != nil {
		resp.CreatorUsername = content.Creator.Username
	}
	if content.IntelligenceArea != nil {
		resp.IntelligenceAreaName = content.IntelligenceArea.Name
	}
	if content.TopicArea != nil {
		resp.TopicAreaName = content.TopicArea.Name
	}

	if content.Index != nil {
		resp.Index = &IndexResponse{
			IndexType:                   string(content.Index.IndexType),
			IndexTypeDisplay:            content.Index.IndexType.Display(),
			DataLevel:                   string(content.Index.DataLevel),
			DataLevelDisplay:            content.Index.DataLevel.Display(),
			CalculationFormula:          content.Index.CalculationFormula,
			GeographicResolution:        string(content.Index.GeographicResolution),
			GeographicResolutionDisplay: content.Index.GeographicResolution.Display(),
			HasMapView:                  content.Index.HasMapView,
			HasIndexView:                content.Index.HasIndexView,
			HasDataVizView:              content.Index.HasDataVizView,
			DefaultViewMode:             string(content.Index.DefaultViewMode),
		}
	}
	if content.Scenario != nil {
		images := make([]ScenarioImageResponse, 0, len(content.Scenario.Images))
		for _, img := range content.Scenario.Images {
			item := ScenarioImageResponse{
				ID:           img.ID,
				FileKey:      img.FileKey,
				OriginalName: img.OriginalName,
				FileSize:     img.FileSize,
				UploadDate:   formatTime(img.UploadDate),
			}
			if resolveURL != nil {
				item.URL = resolveURL(img.FileKey)
			}
			images = append(images, item)
		}
		resp.Scenario = &ScenarioResponse{
			Probabilita:        string(content.Scenario.Probabilita),
			ProbabilitaDisplay: content.Scenario.Probabilita.Display(),
			ScenarioText:       content.Scenario.ScenarioText,
			ScenarioFormat:     content.Scenario.ScenarioFormat,
			Images:             images,
		}
	}
	if content.TrendRadar != nil {
		tr := &TrendRadarResponse{
			TimeMonth:        content.TrendRadar.TimeMonth,
			TimeYear:         content.TrendRadar.TimeYear,
			RadarImageKey:    content.TrendRadar.RadarImageKey,
			OriginalFilename: content.TrendRadar.OriginalFilename,
			RadarFormat:      content.TrendRadar.RadarFormat,
			RadarData:        json.RawMessage(content.TrendRadar.RadarData),
		}
		if resolveURL != nil {
			tr.RadarImageURL = resolveURL(content.TrendRadar.RadarImageKey)
		}
		resp.TrendRadar = tr
	}
	if content.ParticipatoryData != nil {
		pd := &ParticipatoryDataResponse{
			CollectionDate:   content.ParticipatoryData.CollectionDate.Format("2006-01-02"),
			DataFormat:       content.ParticipatoryData.DataFormat,
			VisualizationKey: content.ParticipatoryData.VisualizationKey,
			OriginalFilename: content.ParticipatoryData.OriginalFilename,
			Methodology:      content.ParticipatoryData.Methodology,
		}
		if resolveURL != nil {
			pd.VisualizationURL = resolveURL(content.ParticipatoryData.VisualizationKey)
		}
		resp.ParticipatoryData = pd
	}

	return resp
}

// ContentListResponse represents a content listing
type ContentListResponse struct {
	Contents []ContentResponse `json:"contents"`
	Total    int               `json:"total" example:"12"`
}

// UploadedImageResponse represents the outcome of an image upload
type UploadedImageResponse struct {
	FileKey      string `json:"fileKey" example:"content/scenarios/539167fb/2025/01/ab12_1705312200.png"`
	URL          string `json:"url,omitempty"`
	OriginalName string `json:"originalName" example:"mappa-bacino.png"`
	FileSize     int64  `json:"fileSize" example:"482133"`
	UploadDate   string `json:"uploadDate" example:"2025-01-15T10:30:00Z"`
}
