package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"stratoview-taxonomy-api/internal/validation"
)

// ContentType identifies which extension record a content item carries
type ContentType string

const (
	ContentTypeIndex             ContentType = "index"
	ContentTypeScenario          ContentType = "scenario"
	ContentTypeTrendRadar        ContentType = "trend_radar"
	ContentTypeParticipatoryData ContentType = "participatory_data"
)

// Display returns the human-readable label for the content type
func (t ContentType) Display() string {
	switch t {
	case ContentTypeIndex:
		return "Index"
	case ContentTypeScenario:
		return "Scenario"
	case ContentTypeTrendRadar:
		return "Trend Radar"
	case ContentTypeParticipatoryData:
		return "Participatory Data"
	default:
		return string(t)
	}
}

// Valid reports whether the value is a known content type
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeIndex, ContentTypeScenario, ContentTypeTrendRadar, ContentTypeParticipatoryData:
		return true
	}
	return false
}

// Visibility controls whether content is publicly listed
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Display returns the human-readable label for the visibility
func (v Visibility) Display() string {
	switch v {
	case VisibilityPublic:
		return "Public"
	case VisibilityPrivate:
		return "Private"
	default:
		return string(v)
	}
}

// Valid reports whether the value is a known visibility
func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

// ContentSource records whether content originates from the company or a customer
type ContentSource string

const (
	SourceCompany     ContentSource = "company"
	SourceUserCreated ContentSource = "user_created"
)

// Display returns the human-readable label for the content source
func (s ContentSource) Display() string {
	switch s {
	case SourceCompany:
		return "Company"
	case SourceUserCreated:
		return "User Created"
	default:
		return string(s)
	}
}

// Valid reports whether the value is a known content source
func (s ContentSource) Valid() bool {
	return s == SourceCompany || s == SourceUserCreated
}

// Content is the base record for all publishable units. Exactly one
// extension record (Index, Scenario, TrendRadar or ParticipatoryData)
// exists per content item and must match ContentType; the service layer
// enforces this at construction time. ContentType is immutable after
// creation.
type Content struct {
	ID                 uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatorID          uuid.UUID                   `gorm:"type:uuid;not null;index:idx_contents_creator_type,priority:1" json:"creatorId"`
	ContentType        ContentType                 `gorm:"type:varchar(20);not null;index:idx_contents_creator_type,priority:2;index:idx_contents_type_visibility,priority:1" json:"contentType"`
	Titolo             string                      `gorm:"type:varchar(100);not null" json:"titolo"`
	DescrizioneBreve   string                      `gorm:"type:varchar(200);not null" json:"descrizioneBreve"`
	DescrizioneEstesa  string                      `gorm:"type:text" json:"descrizioneEstesa"`
	IsCompanyGenerated bool                        `gorm:"not null;default:false" json:"isCompanyGenerated"`
	Visibility         Visibility                  `gorm:"type:varchar(10);not null;index:idx_contents_type_visibility,priority:2" json:"visibility"`
	ContentSource      ContentSource               `gorm:"type:varchar(15);not null" json:"contentSource"`
	IntelligenceAreaID string                      `gorm:"type:varchar(50);not null;index:idx_contents_intelligence_area" json:"intelligenceAreaId"`
	TopicAreaID        *string                     `gorm:"type:varchar(50);index:idx_contents_topic_area" json:"topicAreaId,omitempty"`
	Themes             datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"themes"`
	GeographicCoverage datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"geographicCoverage"`
	DataCreazione      time.Time                   `gorm:"not null;autoCreateTime" json:"dataCreazione"`
	UltimaModifica     time.Time                   `gorm:"not null;autoUpdateTime;index:idx_contents_ultima_modifica" json:"ultimaModifica"`

	Creator          *User             `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE" json:"creator,omitempty"`
	IntelligenceArea *IntelligenceArea `gorm:"foreignKey:IntelligenceAreaID;constraint:OnDelete:RESTRICT" json:"intelligenceArea,omitempty"`
	TopicArea        *TopicArea        `gorm:"foreignKey:TopicAreaID;constraint:OnDelete:RESTRICT" json:"topicArea,omitempty"`

	Index             *Index             `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE" json:"index,omitempty"`
	Scenario          *Scenario          `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE" json:"scenario,omitempty"`
	TrendRadar        *TrendRadar        `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE" json:"trendRadar,omitempty"`
	ParticipatoryData *ParticipatoryData `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE" json:"participatoryData,omitempty"`
}

// TableName specifies the table name for Content
func (Content) TableName() string {
	return "contents"
}

// ValidateFields runs all field-level validators and collects every
// violation before the write is attempted.
func (c *Content) ValidateFields() *validation.Errors {
	errs := validation.NewErrors()

	if !c.ContentType.Valid() {
		errs.Add("content_type", "unknown content type")
	}
	if !c.Visibility.Valid() {
		errs.Add("visibility", "unknown visibility")
	}
	if !c.ContentSource.Valid() {
		errs.Add("content_source", "unknown content source")
	}
	errs.AddIf("titolo", validation.StringLength(c.Titolo, 1, 100))
	errs.AddIf("descrizione_breve", validation.StringLength(c.DescrizioneBreve, 1, 200))
	errs.AddIf("descrizione_estesa", validation.StringLength(c.DescrizioneEstesa, 0, 10000))
	if c.IntelligenceAreaID == "" {
		errs.Add("intelligence_area", "intelligence area is required")
	}
	errs.AddIf("themes", validation.MaxTagCount(c.Themes))
	errs.AddIf("geographic_coverage", validation.GeographicCoverage(c.GeographicCoverage))

	return errs
}

// ValidateBusinessRules enforces the cross-field consistency rules.
// Both checks run unconditionally; the first violation found is returned
// as a non-field rejection of the whole write.
func (c *Content) ValidateBusinessRules() error {
	if c.ContentSource == SourceUserCreated && c.Visibility == VisibilityPublic {
		return ErrCustomerContentMustBePrivate
	}
	if c.ContentType == ContentTypeIndex && c.ContentSource == SourceUserCreated {
		return ErrIndexRequiresAdmin
	}
	return nil
}
