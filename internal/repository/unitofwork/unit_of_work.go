package unitofwork

import (
	"context"

	"proofly-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProjectRepository() contract.ProjectRepository
	CategoryRepository() contract.CategoryRepository
	QuestionRepository() contract.QuestionRepository
	TestimonialRepository() contract.TestimonialRepository
	ApiKeyRepository() contract.ApiKeyRepository
}
