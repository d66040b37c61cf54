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

type IQuestionService interface {
	GetAll(ctx context.Context, userId uuid.UUID, projectId, categoryId uuid.UUID) ([]*dto.QuestionResponse, error)
	Create(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error)
	Update(ctx context.Context, userId uuid.UUID, projectId, categoryId uuid.UUID, req *dto.UpdateQuestionRequest) (*dto.UpdateQuestionResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, projectId, categoryId, id uuid.UUID) error
	Reorder(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, req *dto.ReorderQuestionsRequest) ([]*dto.QuestionResponse, error)
}

type questionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewQuestionService(uowFactory unitofwork.RepositoryFactory) IQuestionService {
	return &questionService{
		uowFactory: uowFactory,
	}
}

func (s *questionService) GetAll(ctx context.Context, userId uuid.UUID, projectId, categoryId uuid.UUID) ([]*dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := resolveCategory(ctx, uow, userId, projectId, categoryId); err != nil {
		return nil, err
	}
	return s.listOrdered(ctx, uow, categoryId)
}

func (s *questionService) Create(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := resolveCategory(ctx, uow, userId, projectId, req.CategoryId); err != nil {
		return nil, err
	}

	questionType, ok := forms.ParseType(req.Type)
	if !ok {
		return nil, apperrors.Validation("Type must be one of: " + forms.TypeList())
	}
	if questionType.NeedsOptions() && len(req.Options) == 0 {
		return nil, apperrors.Validation("Options are required for " + string(questionType) + " questions")
	}

	label := strings.TrimSpace(req.Label)
	if label == "" {
		return nil, apperrors.Validation("Label is required")
	}

	// Without an explicit order the question goes to the end of the form.
	order := 0
	if req.Order != nil {
		order = *req.Order
	} else {
		count, err := uow.QuestionRepository().Count(ctx, specification.ByCategoryID{CategoryID: req.CategoryId})
		if err != nil {
			return nil, err
		}
		order = int(count)
	}

	question := entity.Question{
		Id:          uuid.New(),
		CategoryId:  req.CategoryId,
		Label:       label,
		Type:        questionType,
		Required:    req.Required,
		Order:       order,
		Placeholder: trimmedOrNil(req.Placeholder),
		Options:     optionsFor(questionType, req.Options),
		Validation:  rangeFromPayload(questionType, req.Validation),
		CreatedAt:   time.Now(),
	}
	if err := uow.QuestionRepository().Create(ctx, &question); err != nil {
		return nil, err
	}

	return &dto.CreateQuestionResponse{Id: question.Id}, nil
}

func (s *questionService) Update(ctx context.Context, userId uuid.UUID, projectId, categoryId uuid.UUID, req *dto.UpdateQuestionRequest) (*dto.UpdateQuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	question, err := resolveQuestion(ctx, uow, userId, projectId, categoryId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		questionType, ok := forms.ParseType(*req.Type)
		if !ok {
			return nil, apperrors.Validation("Type must be one of: " + forms.TypeList())
		}
		question.Type = questionType
	}
	if req.Label != nil {
		label := strings.TrimSpace(*req.Label)
		if label == "" {
			return nil, apperrors.Validation("Label is required")
		}
		question.Label = label
	}
	if req.Required != nil {
		question.Required = *req.Required
	}
	if req.Order != nil {
		question.Order = *req.Order
	}
	if req.Placeholder != nil {
		question.Placeholder = trimmedOrNil(req.Placeholder)
	}
	if req.Options != nil {
		question.Options = *req.Options
	}
	if req.Validation != nil {
		question.Validation = &forms.NumericRange{Min: req.Validation.Min, Max: req.Validation.Max}
	}

	// The resulting shape must still be coherent after a partial update.
	if question.Type.NeedsOptions() && len(question.Options) == 0 {
		return nil, apperrors.Validation("Options are required for " + string(question.Type) + " questions")
	}
	if !question.Type.NeedsOptions() {
		question.Options = nil
	}
	if !question.Type.IsNumeric() {
		question.Validation = nil
	}
	question.UpdatedAt = time.Now()

	if err := uow.QuestionRepository().Update(ctx, question); err != nil {
		return nil, err
	}
	return &dto.UpdateQuestionResponse{Id: question.Id}, nil
}

func (s *questionService) Delete(ctx context.Context, userId uuid.UUID, projectId, categoryId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := resolveQuestion(ctx, uow, userId, projectId, categoryId, id); err != nil {
		return err
	}
	return uow.QuestionRepository().Delete(ctx, id)
}

func (s *questionService) Reorder(ctx context.Context, userId uuid.UUID, projectId uuid.UUID, req *dto.ReorderQuestionsRequest) ([]*dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := resolveCategory(ctx, uow, userId, projectId, req.CategoryId); err != nil {
		return nil, err
	}

	// All assignments land or none do. Ids from other categories match no
	// row inside SetOrder and are silently skipped.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	for index, questionId := range req.QuestionIds {
		if err := uow.QuestionRepository().SetOrder(ctx, req.CategoryId, questionId, index); err != nil {
			return nil, err
		}
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return s.listOrdered(ctx, uow, req.CategoryId)
}

func (s *questionService) listOrdered(ctx context.Context, uow unitofwork.UnitOfWork, categoryId uuid.UUID) ([]*dto.QuestionResponse, error) {
	questions, err := uow.QuestionRepository().FindAll(ctx,
		specification.ByCategoryID{CategoryID: categoryId},
		specification.OrderBy{Field: "order"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.QuestionResponse, 0, len(questions))
	for _, question := range questions {
		result = append(result, toQuestionResponse(question))
	}
	return result, nil
}

func optionsFor(t forms.QuestionType, options []string) []string {
	if !t.NeedsOptions() {
		return nil
	}
	return options
}

func rangeFromPayload(t forms.QuestionType, payload *dto.NumericRangePayload) *forms.NumericRange {
	if payload == nil || !t.IsNumeric() {
		return nil
	}
	return &forms.NumericRange{Min: payload.Min, Max: payload.Max}
}

func toQuestionResponse(question *entity.Question) *dto.QuestionResponse {
	res := &dto.QuestionResponse{
		Id:          question.Id,
		Label:       question.Label,
		Type:        string(question.Type),
		Required:    question.Required,
		Order:       question.Order,
		Placeholder: question.Placeholder,
		Options:     question.Options,
		CreatedAt:   question.CreatedAt,
		UpdatedAt:   question.UpdatedAt,
	}
	if question.Validation != nil {
		res.Validation = &dto.NumericRangePayload{Min: question.Validation.Min, Max: question.Validation.Max}
	}
	return res
}
