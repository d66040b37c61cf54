package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByTestimonialID filters on the testimonial's own id. The column is
// table-qualified so the spec stays unambiguous in the project-scoped
// query, which joins categories.
type ByTestimonialID struct {
	ID uuid.UUID
}

func (s ByTestimonialID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("testimonials.id = ?", s.ID)
}

type ByCategoryID struct {
	CategoryID uuid.UUID
}

func (s ByCategoryID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category_id = ?", s.CategoryID)
}

type ByCategoryIDs struct {
	CategoryIDs []uuid.UUID
}

func (s ByCategoryIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category_id IN ?", s.CategoryIDs)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// NewestFirst orders testimonials newest first, with id breaking ties so
// the ordering stays total when timestamps collide.
type NewestFirst struct{}

func (s NewestFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("testimonials.created_at DESC, testimonials.id DESC")
}

// CreatedBefore positions a cursor page strictly after a previously seen
// row in NewestFirst order.
type CreatedBefore struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

func (s CreatedBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("(testimonials.created_at, testimonials.id) < (?, ?)", s.CreatedAt, s.ID)
}
