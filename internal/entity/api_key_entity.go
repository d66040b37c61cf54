package entity

import (
	"time"

	"github.com/google/uuid"
)

type ApiKey struct {
	Id         uuid.UUID
	ProjectId  uuid.UUID
	UserId     uuid.UUID
	Name       string
	TokenHash  string
	Revoked    bool
	LastUsedAt *time.Time
	CreatedAt  time.Time
}
