package contract

import (
	"context"

	"proofly-be/internal/entity"
	"proofly-be/internal/repository/specification"

	"github.com/google/uuid"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	Update(ctx context.Context, question *entity.Question) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByCategoryId(ctx context.Context, categoryId uuid.UUID) error
	// SetOrder assigns an order index to one question scoped by category;
	// a question id outside the category matches no row and is a no-op.
	SetOrder(ctx context.Context, categoryId, questionId uuid.UUID, order int) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Question, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Question, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
