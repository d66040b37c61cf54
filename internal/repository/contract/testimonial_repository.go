package contract

import (
	"context"

	"proofly-be/internal/entity"
	"proofly-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *entity.Testimonial) error
	Update(ctx context.Context, testimonial *entity.Testimonial) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByCategoryId(ctx context.Context, categoryId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Testimonial, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Testimonial, error)
	// FindForProject queries testimonials across all of a project's
	// categories (join through categories), with additional specs applied
	// to the testimonials table.
	FindForProject(ctx context.Context, projectId uuid.UUID, specs ...specification.Specification) ([]*entity.Testimonial, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
