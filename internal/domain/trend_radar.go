package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"stratoview-taxonomy-api/internal/validation"
)

// TrendRadar time-window bounds relative to the current year
const (
	TrendRadarMaxYearsAhead  = 2
	TrendRadarMaxYearsBehind = 5
)

// AllowedRadarImageExtensions lists accepted radar image formats
var AllowedRadarImageExtensions = []string{"png", "jpg", "jpeg", "svg"}

// TrendRadar is the extension record for visual radar content. Keyed 1:1
// by the parent content ID. RadarData holds a structured representation
// of the radar elements for clients that render natively.
type TrendRadar struct {
	ContentID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"contentId"`
	TimeMonth        int            `gorm:"not null" json:"timeMonth"`
	TimeYear         int            `gorm:"not null" json:"timeYear"`
	RadarImageKey    string         `gorm:"type:text;not null" json:"radarImageKey"`
	OriginalFilename string         `gorm:"type:varchar(255);not null" json:"originalFilename"`
	RadarFormat      string         `gorm:"type:varchar(20);not null;default:'image'" json:"radarFormat"`
	RadarData        datatypes.JSON `gorm:"type:jsonb" json:"radarData,omitempty"`
}

// TableName specifies the table name for TrendRadar
func (TrendRadar) TableName() string {
	return "content_trend_radars"
}

// ValidateFields runs field-level validators for the trend radar extension
func (t *TrendRadar) ValidateFields() *validation.Errors {
	errs := validation.NewErrors()
	if t.TimeMonth < 1 || t.TimeMonth > 12 {
		errs.Add("time_month", "month must be between 1 and 12")
	}
	if t.RadarImageKey == "" {
		errs.Add("radar_image", "radar image is required")
	}
	return errs
}

// ValidateTimeReference enforces the radar time window against the
// supplied current year: [currentYear-5, currentYear+2].
func (t *TrendRadar) ValidateTimeReference(currentYear int) error {
	if t.TimeYear > currentYear+TrendRadarMaxYearsAhead {
		return ErrTimeYearTooFarFuture
	}
	if t.TimeYear < currentYear-TrendRadarMaxYearsBehind {
		return ErrTimeYearTooFarPast
	}
	return nil
}
