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
	"proofly-be/pkg/forms"

	"github.com/google/uuid"
)

type ISubmissionService interface {
	GetForm(ctx context.Context, categoryId uuid.UUID) (*dto.PublicFormResponse, error)
	Submit(ctx context.Context, req *dto.SubmitTestimonialRequest) (*dto.SubmitTestimonialResponse, error)
}

type submissionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSubmissionService(uowFactory unitofwork.RepositoryFactory) ISubmissionService {
	return &submissionService{
		uowFactory: uowFactory,
	}
}

// findActiveCategory hides missing and deactivated categories behind the
// same NotFound so a submitter cannot tell the two apart.
func (s *submissionService) findActiveCategory(ctx context.Context, uow unitofwork.UnitOfWork, categoryId uuid.UUID) (*entity.Category, error) {
	category, err := uow.CategoryRepository().FindOne(ctx,
		specification.ByID{ID: categoryId},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperrors.NotFound("Category not found")
	}
	return category, nil
}

func (s *submissionService) GetForm(ctx context.Context, categoryId uuid.UUID) (*dto.PublicFormResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := s.findActiveCategory(ctx, uow, categoryId)
	if err != nil {
		return nil, err
	}

	questions, err := uow.QuestionRepository().FindAll(ctx,
		specification.ByCategoryID{CategoryID: categoryId},
		specification.OrderBy{Field: "order"},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.PublicFormResponse{
		Category: dto.PublicCategoryResponse{
			Id:          category.Id,
			Name:        category.Name,
			Slug:        category.Slug,
			Description: category.Description,
		},
		Questions: make([]*dto.QuestionResponse, 0, len(questions)),
	}
	for _, question := range questions {
		res.Questions = append(res.Questions, toQuestionResponse(question))
	}
	return res, nil
}

func (s *submissionService) Submit(ctx context.Context, req *dto.SubmitTestimonialRequest) (*dto.SubmitTestimonialResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := s.findActiveCategory(ctx, uow, req.CategoryId)
	if err != nil {
		return nil, err
	}

	questions, err := uow.QuestionRepository().FindAll(ctx,
		specification.ByCategoryID{CategoryID: category.Id},
		specification.OrderBy{Field: "order"},
	)
	if err != nil {
		return nil, err
	}

	schema := make([]forms.Question, 0, len(questions))
	for _, question := range questions {
		schema = append(schema, question.Schema())
	}

	answers, fieldErrors := forms.Validate(schema, req.Data)
	if len(fieldErrors) > 0 {
		return nil, apperrors.ValidationFields("Validation failed", fieldErrors)
	}

	testimonial := entity.Testimonial{
		Id:          uuid.New(),
		CategoryId:  category.Id,
		Data:        answers,
		Status:      entity.StatusPending,
		SubmittedBy: trimmedOrNil(req.SubmittedBy),
		CreatedAt:   time.Now(),
	}
	if err := uow.TestimonialRepository().Create(ctx, &testimonial); err != nil {
		return nil, err
	}

	return &dto.SubmitTestimonialResponse{
		Id:     testimonial.Id,
		Status: string(testimonial.Status),
	}, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
