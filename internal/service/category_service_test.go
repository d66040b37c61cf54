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

func TestCategoryCreateSlug(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	factory, uow := newFakeFactory()
	project, _ := seedProjectAndCategory(uow, owner)

	svc := NewCategoryService(factory)

	t.Run("slug derived from name", func(t *testing.T) {
		res, err := svc.Create(ctx, owner, &dto.CreateCategoryRequest{
			ProjectId: project.Id,
			Name:      "SaaS Product Feedback!",
		})
		require.NoError(t, err)
		assert.Equal(t, "saas-product-feedback", res.Slug)
	})

	t.Run("duplicate slug in the project conflicts", func(t *testing.T) {
		_, err := svc.Create(ctx, owner, &dto.CreateCategoryRequest{
			ProjectId: project.Id,
			Name:      "SaaS Product Feedback",
		})
		assertKind(t, err, apperrors.KindConflict)
	})

	t.Run("explicit slug sidesteps the name collision", func(t *testing.T) {
		explicit := "saas-product-feedback-v2"
		res, err := svc.Create(ctx, owner, &dto.CreateCategoryRequest{
			ProjectId: project.Id,
			Name:      "SaaS Product Feedback",
			Slug:      &explicit,
		})
		require.NoError(t, err)
		assert.Equal(t, "saas-product-feedback-v2", res.Slug)
	})

	t.Run("name and explicit slug are trimmed", func(t *testing.T) {
		res, err := svc.Create(ctx, owner, &dto.CreateCategoryRequest{
			ProjectId: project.Id,
			Name:      "  Padded Name  ",
		})
		require.NoError(t, err)
		got, err := svc.Show(ctx, owner, project.Id, res.Id)
		require.NoError(t, err)
		assert.Equal(t, "Padded Name", got.Name)
	})

	t.Run("whitespace-only name is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, owner, &dto.CreateCategoryRequest{
			ProjectId: project.Id,
			Name:      "   ",
		})
		assertKind(t, err, apperrors.KindValidation)
	})

	t.Run("same name in another project is fine", func(t *testing.T) {
		otherProject, _ := seedProjectAndCategory(uow, owner)
		_, err := svc.Create(ctx, owner, &dto.CreateCategoryRequest{
			ProjectId: otherProject.Id,
			Name:      "SaaS Product Feedback",
		})
		require.NoError(t, err)
	})

	t.Run("new categories start active", func(t *testing.T) {
		res, err := svc.Create(ctx, owner, &dto.CreateCategoryRequest{
			ProjectId: project.Id,
			Name:      "Another One",
		})
		require.NoError(t, err)
		got, err := svc.Show(ctx, owner, project.Id, res.Id)
		require.NoError(t, err)
		assert.True(t, got.IsActive)
	})
}

func TestCategoryUpdate(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	factory, uow := newFakeFactory()
	project, category := seedProjectAndCategory(uow, owner)

	svc := NewCategoryService(factory)

	t.Run("rename alone keeps the slug", func(t *testing.T) {
		name := "Fresh Reviews"
		_, err := svc.Update(ctx, owner, project.Id, &dto.UpdateCategoryRequest{
			Id:   category.Id,
			Name: &name,
		})
		require.NoError(t, err)
		assert.Equal(t, "Fresh Reviews", uow.categories[0].Name)
		assert.Equal(t, "customer-reviews", uow.categories[0].Slug)
	})

	t.Run("explicit slug moves the category", func(t *testing.T) {
		raw := "Fresh Reviews!"
		_, err := svc.Update(ctx, owner, project.Id, &dto.UpdateCategoryRequest{
			Id:   category.Id,
			Slug: &raw,
		})
		require.NoError(t, err)
		assert.Equal(t, "fresh-reviews", uow.categories[0].Slug)
	})

	t.Run("explicit slug colliding with a sibling conflicts", func(t *testing.T) {
		sibling := &entity.Category{
			Id:        uuid.New(),
			Name:      "Taken",
			Slug:      "taken",
			IsActive:  true,
			ProjectId: project.Id,
		}
		uow.categories = append(uow.categories, sibling)

		taken := "taken"
		_, err := svc.Update(ctx, owner, project.Id, &dto.UpdateCategoryRequest{
			Id:   category.Id,
			Slug: &taken,
		})
		assertKind(t, err, apperrors.KindConflict)
	})

	t.Run("whitespace-only name is rejected", func(t *testing.T) {
		blank := "   "
		_, err := svc.Update(ctx, owner, project.Id, &dto.UpdateCategoryRequest{
			Id:   category.Id,
			Name: &blank,
		})
		assertKind(t, err, apperrors.KindValidation)
	})

	t.Run("deactivation flag is persisted", func(t *testing.T) {
		inactive := false
		_, err := svc.Update(ctx, owner, project.Id, &dto.UpdateCategoryRequest{
			Id:       category.Id,
			IsActive: &inactive,
		})
		require.NoError(t, err)
		assert.False(t, uow.categories[0].IsActive)
	})
}

func TestCategoryDeleteCascades(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	factory, uow := newFakeFactory()
	project, category := seedProjectAndCategory(uow, owner)
	_, surviving := seedProjectAndCategory(uow, owner)

	uow.questions = append(uow.questions,
		&entity.Question{Id: uuid.New(), CategoryId: category.Id, Label: "Q", Type: "text"},
		&entity.Question{Id: uuid.New(), CategoryId: surviving.Id, Label: "Keep", Type: "text"},
	)
	uow.testimonials = append(uow.testimonials,
		&entity.Testimonial{Id: uuid.New(), CategoryId: category.Id, Status: entity.StatusPending},
	)

	svc := NewCategoryService(factory)
	require.NoError(t, svc.Delete(ctx, owner, project.Id, category.Id))

	assert.Len(t, uow.categories, 1)
	require.Len(t, uow.questions, 1)
	assert.Equal(t, surviving.Id, uow.questions[0].CategoryId)
	assert.Empty(t, uow.testimonials)
	assert.Equal(t, 1, uow.committed)
}
