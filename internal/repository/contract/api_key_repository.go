package contract

import (
	"context"
	"time"

	"proofly-be/internal/entity"
	"proofly-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ApiKeyRepository interface {
	Create(ctx context.Context, key *entity.ApiKey) error
	Update(ctx context.Context, key *entity.ApiKey) error
	// TouchLastUsed updates only last_used_at. Best-effort: callers are
	// expected to ignore its error beyond logging.
	TouchLastUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error
	DeleteAllByProjectId(ctx context.Context, projectId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ApiKey, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ApiKey, error)
}
