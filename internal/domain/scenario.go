package domain

import (
	"time"

	"github.com/google/uuid"

	"stratoview-taxonomy-api/internal/validation"
)

// ProbabilityBucket is a qualitative probability assessment
type ProbabilityBucket string

const (
	ProbabilityVeryLow  ProbabilityBucket = "very-low"
	ProbabilityLow      ProbabilityBucket = "low"
	ProbabilityMedium   ProbabilityBucket = "medium"
	ProbabilityHigh     ProbabilityBucket = "high"
	ProbabilityVeryHigh ProbabilityBucket = "very-high"
)

// Display returns the human-readable label with the percentage range
func (p ProbabilityBucket) Display() string {
	switch p {
	case ProbabilityVeryLow:
		return "Very Low (0-20%)"
	case ProbabilityLow:
		return "Low (20-40%)"
	case ProbabilityMedium:
		return "Medium (40-60%)"
	case ProbabilityHigh:
		return "High (60-80%)"
	case ProbabilityVeryHigh:
		return "Very High (80-100%)"
	default:
		return string(p)
	}
}

// Valid reports whether the value is a known probability bucket
func (p ProbabilityBucket) Valid() bool {
	switch p {
	case ProbabilityVeryLow, ProbabilityLow, ProbabilityMedium, ProbabilityHigh, ProbabilityVeryHigh:
		return true
	}
	return false
}

// AllowedScenarioImageExtensions lists accepted scenario image formats
var AllowedScenarioImageExtensions = []string{"png", "jpg", "jpeg"}

// Scenario is the extension record for strategic scenario content.
// Keyed 1:1 by the parent content ID.
type Scenario struct {
	ContentID      uuid.UUID         `gorm:"type:uuid;primaryKey" json:"contentId"`
	Probabilita    ProbabilityBucket `gorm:"type:varchar(10);not null" json:"probabilita"`
	ScenarioText   string            `gorm:"type:text;not null" json:"scenarioText"`
	ScenarioFormat string            `gorm:"type:varchar(20);not null;default:'html'" json:"scenarioFormat"`

	Images []ScenarioImage `gorm:"foreignKey:ScenarioID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

// TableName specifies the table name for Scenario
func (Scenario) TableName() string {
	return "content_scenarios"
}

// ValidateFields runs field-level validators for the scenario extension
func (s *Scenario) ValidateFields() *validation.Errors {
	errs := validation.NewErrors()
	if !s.Probabilita.Valid() {
		errs.Add("probabilita", "unknown probability bucket")
	}
	errs.AddIf("scenario_text", validation.StringLength(s.ScenarioText, 50, 10000))
	return errs
}

// ScenarioImage is a validated image owned by exactly one scenario and
// cascade-deleted with it. FileKey is the storage reference returned by
// the file-storage collaborator.
type ScenarioImage struct {
	BaseModel
	ScenarioID   uuid.UUID `gorm:"type:uuid;not null;index:idx_scenario_images_scenario_id" json:"scenarioId"`
	FileKey      string    `gorm:"type:text;not null" json:"fileKey"`
	OriginalName string    `gorm:"type:varchar(255);not null" json:"originalName"`
	FileSize     int64     `gorm:"not null" json:"fileSize"`
	UploadDate   time.Time `gorm:"not null;autoCreateTime" json:"uploadDate"`
}

// TableName specifies the table name for ScenarioImage
func (ScenarioImage) TableName() string {
	return "scenario_images"
}
