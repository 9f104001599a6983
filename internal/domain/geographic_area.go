package domain

import "time"

// GeographicAreaType classifies the administrative level of an area
type GeographicAreaType string

const (
	AreaTypeProvince     GeographicAreaType = "province"
	AreaTypeRegion       GeographicAreaType = "region"
	AreaTypeMunicipality GeographicAreaType = "municipality"
)

// Display returns the human-readable label for the area type
func (t GeographicAreaType) Display() string {
	switch t {
	case AreaTypeProvince:
		return "Province"
	case AreaTypeRegion:
		return "Region"
	case AreaTypeMunicipality:
		return "Municipality"
	default:
		return string(t)
	}
}

// Valid reports whether the value is a known area type
func (t GeographicAreaType) Valid() bool {
	switch t {
	case AreaTypeProvince, AreaTypeRegion, AreaTypeMunicipality:
		return true
	}
	return false
}

// GeographicArea is a Lombardia coverage area. The ID is a semantic slug
// like "milano" or "all-lombardia".
type GeographicArea struct {
	ID         string             `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name       string             `gorm:"type:varchar(100);not null" json:"name"`
	Type       GeographicAreaType `gorm:"type:varchar(20);not null;index:idx_geographic_areas_type" json:"type"`
	Population *uint              `gorm:"" json:"population,omitempty"`
	AreaKm2    *float64           `gorm:"" json:"areaKm2,omitempty"`
	CreatedAt  time.Time          `gorm:"not null" json:"createdAt"`
	UpdatedAt  time.Time          `gorm:"not null" json:"updatedAt"`
}

// TableName specifies the table name for GeographicArea
func (GeographicArea) TableName() string {
	return "geographic_areas"
}
