package model

import (
	"time"

	"github.com/google/uuid"
)

// Category is a testimonial campaign. Slug is unique per project, not
// globally.
type Category struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Slug        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_categories_project_slug"`
	Description *string   `gorm:"type:text"`
	IsActive    bool      `gorm:"not null;default:true"`
	ProjectId   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_categories_project_slug;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Category) TableName() string {
	return "categories"
}
