package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateApiKeyRequest struct {
	ProjectId uuid.UUID
	Name      string `json:"name" validate:"required"`
}

// CreateApiKeyResponse is the only place the plaintext key ever appears;
// afterwards only its hash exists server-side.
type CreateApiKeyResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Key       string    `json:"key"`
	CreatedAt time.Time `json:"createdAt"`
}

type ApiKeyResponse struct {
	Id         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Revoked    bool       `json:"revoked"`
	LastUsedAt *time.Time `json:"lastUsedAt"`
	CreatedAt  time.Time  `json:"createdAt"`
}
