package service

import (
	"context"
	"testing"
	"time"

	"proofly-be/internal/entity"
	"proofly-be/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProjectAndCategory(uow *fakeUow, ownerId uuid.UUID) (*entity.Project, *entity.Category) {
	project := &entity.Project{
		Id:        uuid.New(),
		Name:      "Acme",
		OwnerId:   ownerId,
		CreatedAt: time.Now(),
	}
	category := &entity.Category{
		Id:        uuid.New(),
		Name:      "Customer Reviews",
		Slug:      "customer-reviews",
		IsActive:  true,
		ProjectId: project.Id,
		CreatedAt: time.Now(),
	}
	uow.projects = append(uow.projects, project)
	uow.categories = append(uow.categories, category)
	return project, category
}

func assertKind(t *testing.T, err error, kind apperrors.Kind) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.From(err)
	require.True(t, ok, "expected an application error, got %v", err)
	assert.Equal(t, kind, appErr.Kind)
}

func TestResolveProject(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	_, uow := newFakeFactory()
	project, _ := seedProjectAndCategory(uow, owner)

	t.Run("owner passes", func(t *testing.T) {
		got, err := resolveProject(ctx, uow, owner, project.Id)
		require.NoError(t, err)
		assert.Equal(t, project.Id, got.Id)
	})

	t.Run("missing project is not found", func(t *testing.T) {
		_, err := resolveProject(ctx, uow, owner, uuid.New())
		assertKind(t, err, apperrors.KindNotFound)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		_, err := resolveProject(ctx, uow, uuid.New(), project.Id)
		assertKind(t, err, apperrors.KindForbidden)
	})
}

func TestResolveCategory(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	_, uow := newFakeFactory()
	project, category := seedProjectAndCategory(uow, owner)

	// A second project owned by the same user, to test cross-project reads.
	otherProject, otherCategory := seedProjectAndCategory(uow, owner)

	t.Run("match passes", func(t *testing.T) {
		got, err := resolveCategory(ctx, uow, owner, project.Id, category.Id)
		require.NoError(t, err)
		assert.Equal(t, category.Id, got.Id)
	})

	t.Run("missing category is not found", func(t *testing.T) {
		_, err := resolveCategory(ctx, uow, owner, project.Id, uuid.New())
		assertKind(t, err, apperrors.KindNotFound)
	})

	t.Run("category of another project is not found", func(t *testing.T) {
		_, err := resolveCategory(ctx, uow, owner, project.Id, otherCategory.Id)
		assertKind(t, err, apperrors.KindNotFound)
		_ = otherProject
	})

	t.Run("project check runs before category check", func(t *testing.T) {
		_, err := resolveCategory(ctx, uow, uuid.New(), project.Id, uuid.New())
		assertKind(t, err, apperrors.KindForbidden)
	})
}

func TestResolveQuestionAndTestimonial(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	_, uow := newFakeFactory()
	project, category := seedProjectAndCategory(uow, owner)
	_, otherCategory := seedProjectAndCategory(uow, owner)

	question := &entity.Question{Id: uuid.New(), CategoryId: otherCategory.Id, Label: "Name"}
	uow.questions = append(uow.questions, question)

	testimonial := &entity.Testimonial{Id: uuid.New(), CategoryId: category.Id, Status: entity.StatusPending}
	uow.testimonials = append(uow.testimonials, testimonial)

	t.Run("question under the wrong category is not found", func(t *testing.T) {
		_, err := resolveQuestion(ctx, uow, owner, project.Id, category.Id, question.Id)
		assertKind(t, err, apperrors.KindNotFound)
	})

	t.Run("testimonial under its category passes", func(t *testing.T) {
		got, err := resolveTestimonial(ctx, uow, owner, project.Id, category.Id, testimonial.Id)
		require.NoError(t, err)
		assert.Equal(t, testimonial.Id, got.Id)
	})

	t.Run("testimonial under the wrong category is not found", func(t *testing.T) {
		_, err := resolveTestimonial(ctx, uow, owner, otherCategory.ProjectId, otherCategory.Id, testimonial.Id)
		assertKind(t, err, apperrors.KindNotFound)
	})
}
