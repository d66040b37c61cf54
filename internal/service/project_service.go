package service

import (
	"context"
	"time"

	"proofly-be/internal/dto"
	"proofly-be/internal/entity"
	"proofly-be/internal/repository/specification"
	"proofly-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IProjectService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ProjectResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateProjectRequest) (*dto.CreateProjectResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ProjectResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateProjectRequest) (*dto.UpdateProjectResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type projectService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProjectService(uowFactory unitofwork.RepositoryFactory) IProjectService {
	return &projectService{
		uowFactory: uowFactory,
	}
}

func (s *projectService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	projects, err := uow.ProjectRepository().FindAll(ctx,
		specification.OwnedBy{OwnerID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		result = append(result, toProjectResponse(project))
	}
	return result, nil
}

func (s *projectService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateProjectRequest) (*dto.CreateProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project := entity.Project{
		Id:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		OwnerId:     userId,
		CreatedAt:   time.Now(),
	}
	if err := uow.ProjectRepository().Create(ctx, &project); err != nil {
		return nil, err
	}

	return &dto.CreateProjectResponse{Id: project.Id}, nil
}

func (s *projectService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := resolveProject(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

func (s *projectService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateProjectRequest) (*dto.UpdateProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := resolveProject(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = req.Description
	}
	project.UpdatedAt = time.Now()

	if err := uow.ProjectRepository().Update(ctx, project); err != nil {
		return nil, err
	}
	return &dto.UpdateProjectResponse{Id: project.Id}, nil
}

func (s *projectService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := resolveProject(ctx, uow, userId, id); err != nil {
		return err
	}

	categories, err := uow.CategoryRepository().FindAll(ctx, specification.ByProjectID{ProjectID: id})
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	for _, category := range categories {
		if err := uow.QuestionRepository().DeleteAllByCategoryId(ctx, category.Id); err != nil {
			return err
		}
		if err := uow.TestimonialRepository().DeleteAllByCategoryId(ctx, category.Id); err != nil {
			return err
		}
	}
	if err := uow.CategoryRepository().DeleteAllByProjectId(ctx, id); err != nil {
		return err
	}
	if err := uow.ApiKeyRepository().DeleteAllByProjectId(ctx, id); err != nil {
		return err
	}
	if err := uow.ProjectRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func toProjectResponse(project *entity.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		Id:          project.Id,
		Name:        project.Name,
		Description: project.Description,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
