package model

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	OwnerId     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Project) TableName() string {
	return "projects"
}
