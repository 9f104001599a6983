package domain

import (
	"time"

	"github.com/google/uuid"

	"stratoview-taxonomy-api/internal/validation"
)

// AllowedVisualizationExtensions lists accepted data visualization formats
var AllowedVisualizationExtensions = []string{"png", "jpg", "jpeg", "svg"}

// ParticipatoryData is the extension record for survey and research
// visualization content. Keyed 1:1 by the parent content ID.
type ParticipatoryData struct {
	ContentID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"contentId"`
	CollectionDate   time.Time `gorm:"type:date;not null" json:"collectionDate"`
	DataFormat       string    `gorm:"type:varchar(50);not null;default:'visualization'" json:"dataFormat"`
	VisualizationKey string    `gorm:"type:text;not null" json:"visualizationKey"`
	OriginalFilename string    `gorm:"type:varchar(255);not null" json:"originalFilename"`
	Methodology      string    `gorm:"type:varchar(2000)" json:"methodology"`
}

// TableName specifies the table name for ParticipatoryData
func (ParticipatoryData) TableName() string {
	return "content_participatory_data"
}

// ValidateFields runs field-level validators for the participatory data
// extension. The reference date is injected so the past-date and ten-year
// window rules are deterministic under test.
func (p *ParticipatoryData) ValidateFields(today time.Time) *validation.Errors {
	errs := validation.NewErrors()
	errs.AddIf("collection_date", validation.PastDate(p.CollectionDate, today))
	errs.AddIf("collection_date", validation.NotTooOld(p.CollectionDate, today))
	if p.VisualizationKey == "" {
		errs.Add("data_visualization", "data visualization image is required")
	}
	errs.AddIf("methodology", validation.StringLength(p.Methodology, 0, 2000))
	return errs
}
