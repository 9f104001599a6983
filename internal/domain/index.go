package domain

import (
	"github.com/google/uuid"

	"stratoview-taxonomy-api/internal/validation"
)

// IndexType classifies an index as analytical or predictive
type IndexType string

const (
	IndexTypeAnalytical IndexType = "analytical"
	IndexTypePredictive IndexType = "predictive"
)

// Display returns the human-readable label for the index type
func (t IndexType) Display() string {
	switch t {
	case IndexTypeAnalytical:
		return "Analytical"
	case IndexTypePredictive:
		return "Predictive"
	default:
		return string(t)
	}
}

// Valid reports whether the value is a known index type
func (t IndexType) Valid() bool {
	return t == IndexTypeAnalytical || t == IndexTypePredictive
}

// DataLevel identifies the processing tier the index data comes from
type DataLevel string

const (
	DataLevelMiddleware  DataLevel = "middleware"
	DataLevelHigherLevel DataLevel = "higher_level"
)

// Display returns the human-readable label for the data level
func (l DataLevel) Display() string {
	switch l {
	case DataLevelMiddleware:
		return "Middleware"
	case DataLevelHigherLevel:
		return "Higher Level"
	default:
		return string(l)
	}
}

// Valid reports whether the value is a known data level
func (l DataLevel) Valid() bool {
	return l == DataLevelMiddleware || l == DataLevelHigherLevel
}

// GeographicResolution is the spatial granularity of index visualization
type GeographicResolution string

const (
	ResolutionProvince     GeographicResolution = "province"
	Resolution5km          GeographicResolution = "5km"
	Resolution1km          GeographicResolution = "1km"
	ResolutionMunicipality GeographicResolution = "municipality"
)

// Display returns the human-readable label for the resolution
func (r GeographicResolution) Display() string {
	switch r {
	case ResolutionProvince:
		return "Province"
	case Resolution5km:
		return "5km Grid"
	case Resolution1km:
		return "1km Grid"
	case ResolutionMunicipality:
		return "Municipality"
	default:
		return string(r)
	}
}

// Valid reports whether the value is a known resolution
func (r GeographicResolution) Valid() bool {
	switch r {
	case ResolutionProvince, Resolution5km, Resolution1km, ResolutionMunicipality:
		return true
	}
	return false
}

// ViewMode is a content visualization mode
type ViewMode string

const (
	ViewModeMap     ViewMode = "mapview"
	ViewModeIndex   ViewMode = "indexview"
	ViewModeDataViz ViewMode = "datavizview"
	ViewModeDefault ViewMode = "default"
)

// Display returns the human-readable label for the view mode
func (m ViewMode) Display() string {
	switch m {
	case ViewModeMap:
		return "Map View"
	case ViewModeIndex:
		return "Index View"
	case ViewModeDataViz:
		return "Data Visualization View"
	case ViewModeDefault:
		return "Default"
	default:
		return string(m)
	}
}

// Index is the extension record for analytics and predictive content
// with visualizations. Keyed 1:1 by the parent content ID.
type Index struct {
	ContentID            uuid.UUID            `gorm:"type:uuid;primaryKey" json:"contentId"`
	IndexType            IndexType            `gorm:"type:varchar(20);not null" json:"indexType"`
	DataLevel            DataLevel            `gorm:"type:varchar(20);not null" json:"dataLevel"`
	CalculationFormula   string               `gorm:"type:varchar(2000)" json:"calculationFormula"`
	GeographicResolution GeographicResolution `gorm:"type:varchar(20);not null" json:"geographicResolution"`
	HasMapView           bool                 `gorm:"not null;default:true" json:"hasMapView"`
	HasIndexView         bool                 `gorm:"not null;default:true" json:"hasIndexView"`
	HasDataVizView       bool                 `gorm:"not null;default:true" json:"hasDataVizView"`
	DefaultViewMode      ViewMode             `gorm:"type:varchar(15);not null;default:'mapview'" json:"defaultViewMode"`
}

// TableName specifies the table name for Index
func (Index) TableName() string {
	return "content_indices"
}

// ValidateFields runs field-level validators for the index extension
func (i *Index) ValidateFields() *validation.Errors {
	errs := validation.NewErrors()
	if !i.IndexType.Valid() {
		errs.Add("index_type", "unknown index type")
	}
	if !i.DataLevel.Valid() {
		errs.Add("data_level", "unknown data level")
	}
	if !i.GeographicResolution.Valid() {
		errs.Add("geographic_resolution", "unknown geographic resolution")
	}
	errs.AddIf("calculation_formula", validation.StringLength(i.CalculationFormula, 0, 2000))
	switch i.DefaultViewMode {
	case ViewModeMap, ViewModeIndex, ViewModeDataViz:
	default:
		errs.Add("default_view_mode", "unknown view mode")
	}
	return errs
}
