package model

import (
	"time"

	"github.com/google/uuid"
)

// ApiKey is a project-scoped bearer secret for the public read API. Only
// the SHA-256 of the token is stored; the plaintext is returned once at
// creation. Revocation is a permanent soft flag so the row stays around
// for audit.
type ApiKey struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId  uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserId     uuid.UUID  `gorm:"type:uuid;not null"`
	Name       string     `gorm:"type:varchar(255);not null"`
	TokenHash  string     `gorm:"type:char(64);not null;index"`
	Revoked    bool       `gorm:"not null;default:false"`
	LastUsedAt *time.Time
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (ApiKey) TableName() string {
	return "api_keys"
}
