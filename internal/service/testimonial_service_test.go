package service

import (
	"context"
	"testing"
	"time"

	"proofly-be/internal/dto"
	"proofly-be/internal/entity"
	"proofly-be/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestimonialStatusRelabeling(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	factory, uow := newFakeFactory()
	project, category := seedProjectAndCategory(uow, owner)

	row := &entity.Testimonial{Id: uuid.New(), CategoryId: category.Id, Status: entity.StatusPending, CreatedAt: time.Now()}
	uow.testimonials = append(uow.testimonials, row)

	svc := NewTestimonialService(factory)

	t.Run("invalid status is rejected", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, owner, project.Id, category.Id, &dto.UpdateTestimonialStatusRequest{
			Id:     row.Id,
			Status: "archived",
		})
		assertKind(t, err, apperrors.KindValidation)
	})

	t.Run("any transition is allowed", func(t *testing.T) {
		for _, status := range []string{"approved", "rejected", "pending", "approved"} {
			res, err := svc.UpdateStatus(ctx, owner, project.Id, category.Id, &dto.UpdateTestimonialStatusRequest{
				Id:     row.Id,
				Status: status,
			})
			require.NoError(t, err)
			assert.Equal(t, status, res.Status)
		}
		assert.Equal(t, entity.StatusApproved, uow.testimonials[0].Status)
	})
}

func TestTestimonialListAndDelete(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	factory, uow := newFakeFactory()
	project, category := seedProjectAndCategory(uow, owner)
	_, otherCategory := seedProjectAndCategory(uow, owner)

	approved := &entity.Testimonial{Id: uuid.New(), CategoryId: category.Id, Status: entity.StatusApproved, CreatedAt: time.Now()}
	pending := &entity.Testimonial{Id: uuid.New(), CategoryId: category.Id, Status: entity.StatusPending, CreatedAt: time.Now().Add(time.Minute)}
	foreign := &entity.Testimonial{Id: uuid.New(), CategoryId: otherCategory.Id, Status: entity.StatusApproved, CreatedAt: time.Now()}
	uow.testimonials = append(uow.testimonials, approved, pending, foreign)

	svc := NewTestimonialService(factory)

	t.Run("list is scoped to the category", func(t *testing.T) {
		list, err := svc.GetAll(ctx, owner, project.Id, category.Id, "")
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("status filter applies", func(t *testing.T) {
		list, err := svc.GetAll(ctx, owner, project.Id, category.Id, "approved")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, approved.Id, list[0].Id)
	})

	t.Run("invalid status filter is rejected", func(t *testing.T) {
		_, err := svc.GetAll(ctx, owner, project.Id, category.Id, "archived")
		assertKind(t, err, apperrors.KindValidation)
	})

	t.Run("cross-category fetch is not found", func(t *testing.T) {
		_, err := svc.Show(ctx, owner, project.Id, category.Id, foreign.Id)
		assertKind(t, err, apperrors.KindNotFound)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, owner, project.Id, category.Id, pending.Id))
		list, err := svc.GetAll(ctx, owner, project.Id, category.Id, "")
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}
