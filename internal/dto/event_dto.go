package dto

import (
	"time"

	"github.com/google/uuid"
)

// KeyUsedMessage is the payload published whenever an API key
// authenticates a public read, consumed asynchronously to stamp
// last_used_at without blocking the request.
type KeyUsedMessage struct {
	KeyId  uuid.UUID `json:"key_id"`
	UsedAt time.Time `json:"used_at"`
}
