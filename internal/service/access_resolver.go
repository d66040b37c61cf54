package service

import (
	"context"

	"proofly-be/internal/entity"
	"proofly-be/internal/pkg/apperrors"
	"proofly-be/internal/repository/specification"
	"proofly-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Ownership resolution for the project → category → question/testimonial
// chain. Checks always run in the same order: project existence, project
// ownership, then child existence and parent linkage. A child that exists
// but hangs off a different parent is reported as NotFound, never
// Forbidden, so a caller cannot probe for resources across projects.

func resolveProject(ctx context.Context, uow unitofwork.UnitOfWork, userId, projectId uuid.UUID) (*entity.Project, error) {
	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: projectId})
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperrors.NotFound("Project not found")
	}
	if project.OwnerId != userId {
		return nil, apperrors.Forbidden("Forbidden")
	}
	return project, nil
}

func resolveCategory(ctx context.Context, uow unitofwork.UnitOfWork, userId, projectId, categoryId uuid.UUID) (*entity.Category, error) {
	if _, err := resolveProject(ctx, uow, userId, projectId); err != nil {
		return nil, err
	}
	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: categoryId})
	if err != nil {
		return nil, err
	}
	if category == nil || category.ProjectId != projectId {
		return nil, apperrors.NotFound("Category not found")
	}
	return category, nil
}

func resolveQuestion(ctx context.Context, uow unitofwork.UnitOfWork, userId, projectId, categoryId, questionId uuid.UUID) (*entity.Question, error) {
	if _, err := resolveCategory(ctx, uow, userId, projectId, categoryId); err != nil {
		return nil, err
	}
	question, err := uow.QuestionRepository().FindOne(ctx, specification.ByID{ID: questionId})
	if err != nil {
		return nil, err
	}
	if question == nil || question.CategoryId != categoryId {
		return nil, apperrors.NotFound("Question not found")
	}
	return question, nil
}

func resolveTestimonial(ctx context.Context, uow unitofwork.UnitOfWork, userId, projectId, categoryId, testimonialId uuid.UUID) (*entity.Testimonial, error) {
	if _, err := resolveCategory(ctx, uow, userId, projectId, categoryId); err != nil {
		return nil, err
	}
	testimonial, err := uow.TestimonialRepository().FindOne(ctx, specification.ByID{ID: testimonialId})
	if err != nil {
		return nil, err
	}
	if testimonial == nil || testimonial.CategoryId != categoryId {
		return nil, apperrors.NotFound("Testimonial not found")
	}
	return testimonial, nil
}
