package service

import (
	"context"
	"strings"
	"time"

	"proofly-be/internal/dto"
	"proofly-be/internal/entity"
	"proofly-be/internal/pkg/apperrors"
	"proofly-be/internal/repository/specification"
	"proofly-be/internal/repository/unitofwork"
	"proofly-be/pkg/slug"

	"github.com/google/uuid"
)

type ICategoryService interface {
	GetAll(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) ([]*dto.CategoryResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCategoryRequest) (*dto.CreateCategoryResponse, error)
	Show(ctx context.Context, userId uuid.UUID, projectId, id uuid.UUID) (*dto.CategoryResponse, error)
	Update(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.UpdateCategoryResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, projectId, id uuid.UUID) error
}

type categoryService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCategoryService(uowFactory unitofwork.RepositoryFactory) ICategoryService {
	return &categoryService{
		uowFactory: uowFactory,
	}
}

func (s *categoryService) GetAll(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) ([]*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := resolveProject(ctx, uow, userId, projectId); err != nil {
		return nil, err
	}

	categories, err := uow.CategoryRepository().FindAll(ctx,
		specification.ByProjectID{ProjectID: projectId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, toCategoryResponse(category))
	}
	return result, nil
}

func (s *categoryService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCategoryRequest) (*dto.CreateCategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := resolveProject(ctx, uow, userId, req.ProjectId); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Validation("Name is required")
	}

	// The slug derives from the name unless one is supplied explicitly.
	slugSource := name
	if req.Slug != nil && strings.TrimSpace(*req.Slug) != "" {
		slugSource = *req.Slug
	}
	categorySlug := slug.Make(slugSource)

	// Check-then-insert: the unique index on (project_id, slug) still
	// backstops a concurrent create with the same name.
	existing, err := uow.CategoryRepository().FindOne(ctx,
		specification.ByProjectID{ProjectID: req.ProjectId},
		specification.BySlug{Slug: categorySlug},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("A category with this name already exists")
	}

	category := entity.Category{
		Id:          uuid.New(),
		Name:        name,
		Slug:        categorySlug,
		Description: trimmedOrNil(req.Description),
		IsActive:    true,
		ProjectId:   req.ProjectId,
		CreatedAt:   time.Now(),
	}
	if err := uow.CategoryRepository().Create(ctx, &category); err != nil {
		return nil, err
	}

	return &dto.CreateCategoryResponse{Id: category.Id, Slug: category.Slug}, nil
}

func (s *categoryService) Show(ctx context.Context, userId uuid.UUID, projectId, id uuid.UUID) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := resolveCategory(ctx, uow, userId, projectId, id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

func (s *categoryService) Update(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.UpdateCategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := resolveCategory(ctx, uow, userId, projectId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.Validation("Name is required")
		}
		category.Name = name
	}
	// A rename alone never moves the slug; it only changes when one is
	// supplied explicitly.
	if req.Slug != nil {
		newSlug := slug.Make(*req.Slug)
		if newSlug != category.Slug {
			existing, err := uow.CategoryRepository().FindOne(ctx,
				specification.ByProjectID{ProjectID: projectId},
				specification.BySlug{Slug: newSlug},
			)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, apperrors.Conflict("A category with this slug already exists")
			}
		}
		category.Slug = newSlug
	}
	if req.Description != nil {
		category.Description = trimmedOrNil(req.Description)
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	category.UpdatedAt = time.Now()

	if err := uow.CategoryRepository().Update(ctx, category); err != nil {
		return nil, err
	}
	return &dto.UpdateCategoryResponse{Id: category.Id}, nil
}

func (s *categoryService) Delete(ctx context.Context, userId uuid.UUID, projectId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := resolveCategory(ctx, uow, userId, projectId, id); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.QuestionRepository().DeleteAllByCategoryId(ctx, id); err != nil {
		return err
	}
	if err := uow.TestimonialRepository().DeleteAllByCategoryId(ctx, id); err != nil {
		return err
	}
	if err := uow.CategoryRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func toCategoryResponse(category *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		Id:          category.Id,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		IsActive:    category.IsActive,
		ProjectId:   category.ProjectId,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}
