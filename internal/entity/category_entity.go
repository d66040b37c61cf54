package entity

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	Id          uuid.UUID
	Name        string
	Slug        string
	Description *string
	IsActive    bool
	ProjectId   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
