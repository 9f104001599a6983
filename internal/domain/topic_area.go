package domain

import (
	"time"

	"gorm.io/datatypes"
)

// TopicArea is a subject area classification. ParentThemes is an ordered,
// informational list of related theme slugs.
type TopicArea struct {
	ID           string                     `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name         string                     `gorm:"type:varchar(100);not null" json:"name"`
	ParentThemes datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"parentThemes"`
	IsActive     bool                       `gorm:"not null;default:true;index:idx_topic_areas_is_active" json:"isActive"`
	CreatedAt    time.Time                  `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time                  `gorm:"not null" json:"updatedAt"`
}

// TableName specifies the table name for TopicArea
func (TopicArea) TableName() string {
	return "topic_areas"
}
