package domain

import "time"

// IntelligenceArea is a research domain classification. The ID is a
// stable semantic slug like "tourism-resilience" and never changes once
// the area is referenced by content.
type IntelligenceArea struct {
	ID          string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description string    `gorm:"type:varchar(500)" json:"description"`
	ColorCode   string    `gorm:"type:varchar(7);not null" json:"colorCode"`
	IsActive    bool      `gorm:"not null;default:true;index:idx_intelligence_areas_is_active" json:"isActive"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}

// TableName specifies the table name for IntelligenceArea
func (IntelligenceArea) TableName() string {
	return "intelligence_areas"
}
