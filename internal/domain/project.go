package domain

import (
	"github.com/google/uuid"

	"stratoview-taxonomy-api/internal/validation"
)

// LayoutMode is the saved dashboard layout for a project
type LayoutMode string

const (
	LayoutModeGrid    LayoutMode = "grid"
	LayoutModeColumns LayoutMode = "columns"
)

// Display returns the human-readable label for the layout mode
func (m LayoutMode) Display() string {
	switch m {
	case LayoutModeGrid:
		return "Grid View"
	case LayoutModeColumns:
		return "Columns View"
	default:
		return string(m)
	}
}

// Valid reports whether the value is a known layout mode
func (m LayoutMode) Valid() bool {
	return m == LayoutModeGrid || m == LayoutModeColumns
}

// ProjectState is derived from the number of active content blocks;
// it is never set directly by a caller.
type ProjectState string

const (
	ProjectStateEmpty  ProjectState = "empty"
	ProjectStateActive ProjectState = "active"
)

// Display returns the human-readable label for the project state
func (s ProjectState) Display() string {
	switch s {
	case ProjectStateEmpty:
		return "Empty"
	case ProjectStateActive:
		return "Active"
	default:
		return string(s)
	}
}

// Project is a user-owned container aggregating up to four content
// blocks. ProjectState and ContentBlockCount are derived fields,
// recomputed from live blocks on every block mutation.
type Project struct {
	BaseModel
	UserID            uuid.UUID    `gorm:"type:uuid;not null;index:idx_projects_user_state,priority:1" json:"userId"`
	Nome              string       `gorm:"type:varchar(100);not null" json:"nome"`
	Descrizione       string       `gorm:"type:varchar(500)" json:"descrizione"`
	SavedLayoutMode   LayoutMode   `gorm:"type:varchar(10);not null;default:'grid'" json:"savedLayoutMode"`
	ProjectState      ProjectState `gorm:"type:varchar(10);not null;default:'empty';index:idx_projects_user_state,priority:2" json:"projectState"`
	ContentBlockCount int          `gorm:"not null;default:0" json:"contentBlockCount"`

	User          *User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	ContentBlocks []ContentBlock `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"contentBlocks,omitempty"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}

// ValidateFields runs field-level validators for the project
func (p *Project) ValidateFields() *validation.Errors {
	errs := validation.NewErrors()
	errs.AddIf("nome", validation.StringLength(p.Nome, 1, 100))
	errs.AddIf("descrizione", validation.StringLength(p.Descrizione, 0, 500))
	if !p.SavedLayoutMode.Valid() {
		errs.Add("saved_layout_mode", "unknown layout mode")
	}
	return errs
}
