package service

import (
	"context"
	"testing"

	"proofly-be/internal/dto"
	"proofly-be/internal/entity"
	"proofly-be/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionCreate(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	factory, uow := newFakeFactory()
	project, category := seedProjectAndCategory(uow, owner)

	svc := NewQuestionService(factory)

	t.Run("unknown type is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, owner, project.Id, &dto.CreateQuestionRequest{
			CategoryId: category.Id,
			Label:      "How was it?",
			Type:       "slider",
		})
		assertKind(t, err, apperrors.KindValidation)
	})

	t.Run("choice type without options is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, owner, project.Id, &dto.CreateQuestionRequest{
			CategoryId: category.Id,
			Label:      "Pick one",
			Type:       "dropdown",
		})
		assertKind(t, err, apperrors.KindValidation)
	})

	t.Run("order defaults to current count", func(t *testing.T) {
		first, err := svc.Create(ctx, owner, project.Id, &dto.CreateQuestionRequest{
			CategoryId: category.Id,
			Label:      "Name",
			Type:       "text",
		})
		require.NoError(t, err)

		_, err = svc.Create(ctx, owner, project.Id, &dto.CreateQuestionRequest{
			CategoryId: category.Id,
			Label:      "Rating",
			Type:       "rating",
		})
		require.NoError(t, err)

		list, err := svc.GetAll(ctx, owner, project.Id, category.Id)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, first.Id, list[0].Id)
		assert.Equal(t, 0, list[0].Order)
		assert.Equal(t, 1, list[1].Order)
	})

	t.Run("explicit order wins over the count", func(t *testing.T) {
		order := 7
		res, err := svc.Create(ctx, owner, project.Id, &dto.CreateQuestionRequest{
			CategoryId: category.Id,
			Label:      "Company",
			Type:       "text",
			Order:      &order,
		})
		require.NoError(t, err)
		for _, q := range uow.questions {
			if q.Id == res.Id {
				assert.Equal(t, 7, q.Order)
			}
		}
	})

	t.Run("label is trimmed and must not be blank", func(t *testing.T) {
		res, err := svc.Create(ctx, owner, project.Id, &dto.CreateQuestionRequest{
			CategoryId: category.Id,
			Label:      "  Role  ",
			Type:       "text",
		})
		require.NoError(t, err)
		for _, q := range uow.questions {
			if q.Id == res.Id {
				assert.Equal(t, "Role", q.Label)
			}
		}

		_, err = svc.Create(ctx, owner, project.Id, &dto.CreateQuestionRequest{
			CategoryId: category.Id,
			Label:      "   ",
			Type:       "text",
		})
		assertKind(t, err, apperrors.KindValidation)
	})

	t.Run("options on a non-choice type are dropped", func(t *testing.T) {
		res, err := svc.Create(ctx, owner, project.Id, &dto.CreateQuestionRequest{
			CategoryId: category.Id,
			Label:      "Email",
			Type:       "email",
			Options:    []string{"a", "b"},
		})
		require.NoError(t, err)
		for _, q := range uow.questions {
			if q.Id == res.Id {
				assert.Nil(t, q.Options)
			}
		}
	})
}

func TestQuestionUpdatePartial(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	factory, uow := newFakeFactory()
	project, category := seedProjectAndCategory(uow, owner)

	question := &entity.Question{
		Id:         uuid.New(),
		CategoryId: category.Id,
		Label:      "Pick one",
		Type:       "dropdown",
		Options:    []string{"red", "blue"},
	}
	uow.questions = append(uow.questions, question)

	svc := NewQuestionService(factory)

	t.Run("label only", func(t *testing.T) {
		label := "Pick a color"
		_, err := svc.Update(ctx, owner, project.Id, category.Id, &dto.UpdateQuestionRequest{
			Id:    question.Id,
			Label: &label,
		})
		require.NoError(t, err)
		assert.Equal(t, "Pick a color", uow.questions[0].Label)
		assert.Equal(t, []string{"red", "blue"}, uow.questions[0].Options)
	})

	t.Run("switching to choice type without options is rejected", func(t *testing.T) {
		empty := []string{}
		_, err := svc.Update(ctx, owner, project.Id, category.Id, &dto.UpdateQuestionRequest{
			Id:      question.Id,
			Options: &empty,
		})
		assertKind(t, err, apperrors.KindValidation)
	})

	t.Run("order only", func(t *testing.T) {
		order := 4
		_, err := svc.Update(ctx, owner, project.Id, category.Id, &dto.UpdateQuestionRequest{
			Id:    question.Id,
			Order: &order,
		})
		require.NoError(t, err)
		assert.Equal(t, 4, uow.questions[0].Order)
	})

	t.Run("switching to plain type clears options", func(t *testing.T) {
		newType := "text"
		_, err := svc.Update(ctx, owner, project.Id, category.Id, &dto.UpdateQuestionRequest{
			Id:   question.Id,
			Type: &newType,
		})
		require.NoError(t, err)
		assert.Nil(t, uow.questions[0].Options)
	})
}

func TestQuestionReorder(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	factory, uow := newFakeFactory()
	project, category := seedProjectAndCategory(uow, owner)
	_, otherCategory := seedProjectAndCategory(uow, owner)

	a := &entity.Question{Id: uuid.New(), CategoryId: category.Id, Label: "A", Type: "text", Order: 0}
	b := &entity.Question{Id: uuid.New(), CategoryId: category.Id, Label: "B", Type: "text", Order: 1}
	foreign := &entity.Question{Id: uuid.New(), CategoryId: otherCategory.Id, Label: "X", Type: "text", Order: 0}
	uow.questions = append(uow.questions, a, b, foreign)

	svc := NewQuestionService(factory)

	res, err := svc.Reorder(ctx, owner, project.Id, &dto.ReorderQuestionsRequest{
		CategoryId:  category.Id,
		QuestionIds: []uuid.UUID{b.Id, foreign.Id, a.Id},
	})
	require.NoError(t, err)

	// b takes index 0, a takes index 2; the foreign id is a no-op.
	require.Len(t, res, 2)
	assert.Equal(t, b.Id, res[0].Id)
	assert.Equal(t, 0, res[0].Order)
	assert.Equal(t, a.Id, res[1].Id)
	assert.Equal(t, 2, res[1].Order)

	for _, q := range uow.questions {
		if q.Id == foreign.Id {
			assert.Equal(t, 0, q.Order)
			assert.Equal(t, otherCategory.Id, q.CategoryId)
		}
	}
	assert.Equal(t, 1, uow.committed)
}
