package entity

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	Id          uuid.UUID
	Name        string
	Description *string
	OwnerId     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
