package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"stratoview-taxonomy-api/internal/validation"
)

// Content block position bounds within a project
const (
	MinBlockPosition = 1
	MaxBlockPosition = 4
)

// ContentBlock is a slot within a project referencing one content item
// and carrying UI view state. Position is unique per project; a duplicate
// position rejects the write, it is never silently reassigned.
type ContentBlock struct {
	BaseModel
	ProjectID        uuid.UUID      `gorm:"type:uuid;not null;index:idx_content_blocks_project_active,priority:1;uniqueIndex:uq_content_blocks_project_position,priority:1" json:"projectId"`
	ContentID        uuid.UUID      `gorm:"type:uuid;not null;index:idx_content_blocks_content_id" json:"contentId"`
	Position         int            `gorm:"not null;uniqueIndex:uq_content_blocks_project_position,priority:2" json:"position"`
	IsActive         bool           `gorm:"not null;default:true;index:idx_content_blocks_project_active,priority:2" json:"isActive"`
	CurrentViewMode  ViewMode       `gorm:"type:varchar(15);not null;default:'default'" json:"currentViewMode"`
	SingleViewActive bool           `gorm:"not null;default:false" json:"singleViewActive"`
	LastInteraction  time.Time      `gorm:"not null;autoUpdateTime" json:"lastInteraction"`
	BlockState       datatypes.JSON `gorm:"type:jsonb" json:"blockState,omitempty"`

	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
	Content *Content `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE" json:"content,omitempty"`
}

// TableName specifies the table name for ContentBlock
func (ContentBlock) TableName() string {
	return "content_blocks"
}

// ValidateFields runs field-level validators for the content block
func (b *ContentBlock) ValidateFields() *validation.Errors {
	errs := validation.NewErrors()
	if b.Position < MinBlockPosition || b.Position > MaxBlockPosition {
		errs.Add("position", "position must be between 1 and 4")
	}
	switch b.CurrentViewMode {
	case ViewModeMap, ViewModeIndex, ViewModeDataViz, ViewModeDefault:
	default:
		errs.Add("current_view_mode", "unknown view mode")
	}
	return errs
}
