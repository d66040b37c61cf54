package service

import (
	"context"

	"proofly-be/internal/dto"
	"proofly-be/internal/entity"
	"proofly-be/internal/pkg/apperrors"
	"proofly-be/internal/repository/specification"
	"proofly-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITestimonialService interface {
	GetAll(ctx context.Context, userId uuid.UUID, projectId, categoryId uuid.UUID, status string) ([]*dto.TestimonialResponse, error)
	Show(ctx context.Context, userId uuid.UUID, projectId, categoryId, id uuid.UUID) (*dto.TestimonialResponse, error)
	UpdateStatus(ctx context.Context, userId uuid.UUID, projectId, categoryId uuid.UUID, req *dto.UpdateTestimonialStatusRequest) (*dto.UpdateTestimonialStatusResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, projectId, categoryId, id uuid.UUID) error
}

type testimonialService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTestimonialService(uowFactory unitofwork.RepositoryFactory) ITestimonialService {
	return &testimonialService{
		uowFactory: uowFactory,
	}
}

func (s *testimonialService) GetAll(ctx context.Context, userId uuid.UUID, projectId, categoryId uuid.UUID, status string) ([]*dto.TestimonialResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := resolveCategory(ctx, uow, userId, projectId, categoryId); err != nil {
		return nil, err
	}

	specs := []specification.Specification{
		specification.ByCategoryID{CategoryID: categoryId},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if status != "" {
		parsed, ok := entity.ParseStatus(status)
		if !ok {
			return nil, apperrors.Validation("Status must be one of: pending, approved, rejected")
		}
		specs = append(specs, specification.ByStatus{Status: string(parsed)})
	}

	testimonials, err := uow.TestimonialRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TestimonialResponse, 0, len(testimonials))
	for _, testimonial := range testimonials {
		result = append(result, toTestimonialResponse(testimonial))
	}
	return result, nil
}

func (s *testimonialService) Show(ctx context.Context, userId uuid.UUID, projectId, categoryId, id uuid.UUID) (*dto.TestimonialResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	testimonial, err := resolveTestimonial(ctx, uow, userId, projectId, categoryId, id)
	if err != nil {
		return nil, err
	}
	return toTestimonialResponse(testimonial), nil
}

func (s *testimonialService) UpdateStatus(ctx context.Context, userId uuid.UUID, projectId, categoryId uuid.UUID, req *dto.UpdateTestimonialStatusRequest) (*dto.UpdateTestimonialStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	testimonial, err := resolveTestimonial(ctx, uow, userId, projectId, categoryId, req.Id)
	if err != nil {
		return nil, err
	}

	status, ok := entity.ParseStatus(req.Status)
	if !ok {
		return nil, apperrors.Validation("Status must be one of: pending, approved, rejected")
	}

	// Any label can move to any other; approving a rejected entry or
	// re-opening an approved one is allowed.
	testimonial.Status = status
	if err := uow.TestimonialRepository().Update(ctx, testimonial); err != nil {
		return nil, err
	}

	return &dto.UpdateTestimonialStatusResponse{
		Id:     testimonial.Id,
		Status: string(testimonial.Status),
	}, nil
}

func (s *testimonialService) Delete(ctx context.Context, userId uuid.UUID, projectId, categoryId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := resolveTestimonial(ctx, uow, userId, projectId, categoryId, id); err != nil {
		return err
	}
	return uow.TestimonialRepository().Delete(ctx, id)
}

func toTestimonialResponse(testimonial *entity.Testimonial) *dto.TestimonialResponse {
	return &dto.TestimonialResponse{
		Id:          testimonial.Id,
		CategoryId:  testimonial.CategoryId,
		Data:        testimonial.Data,
		Status:      string(testimonial.Status),
		SubmittedBy: testimonial.SubmittedBy,
		CreatedAt:   testimonial.CreatedAt,
	}
}
