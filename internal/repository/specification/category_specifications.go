package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByProjectID struct {
	ProjectID uuid.UUID
}

func (s ByProjectID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("project_id = ?", s.ProjectID)
}

type BySlug struct {
	Slug string
}

func (s BySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("slug = ?", s.Slug)
}

type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = true")
}
