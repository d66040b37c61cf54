package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Testimonial is one public submission. Data maps question ids to validated
// answer values (string, number or string list).
type Testimonial struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CategoryId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Data        datatypes.JSON `gorm:"type:jsonb;not null"`
	Status      string         `gorm:"type:varchar(20);not null;default:'pending';index"`
	SubmittedBy *string        `gorm:"type:varchar(255)"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}
