package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Question is one typed field of a category's form schema. Options and
// Validation are stored as jsonb; the mapper gives them their typed shape.
type Question struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CategoryId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Label       string         `gorm:"type:varchar(500);not null"`
	Type        string         `gorm:"type:varchar(20);not null"`
	Required    bool           `gorm:"not null;default:false"`
	Order       int            `gorm:"column:order;not null;default:0"`
	Placeholder *string        `gorm:"type:varchar(500)"`
	Options     datatypes.JSON `gorm:"type:jsonb"`
	Validation  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (Question) TableName() string {
	return "questions"
}
