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

func TestProjectCrud(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	factory, uow := newFakeFactory()

	svc := NewProjectService(factory)

	created, err := svc.Create(ctx, owner, &dto.CreateProjectRequest{Name: "Acme"})
	require.NoError(t, err)

	t.Run("show returns own project", func(t *testing.T) {
		got, err := svc.Show(ctx, owner, created.Id)
		require.NoError(t, err)
		assert.Equal(t, "Acme", got.Name)
	})

	t.Run("update is partial", func(t *testing.T) {
		desc := "B2B widgets"
		_, err := svc.Update(ctx, owner, &dto.UpdateProjectRequest{Id: created.Id, Description: &desc})
		require.NoError(t, err)
		got, err := svc.Show(ctx, owner, created.Id)
		require.NoError(t, err)
		assert.Equal(t, "Acme", got.Name)
		require.NotNil(t, got.Description)
		assert.Equal(t, desc, *got.Description)
	})

	t.Run("list excludes other owners", func(t *testing.T) {
		uow.projects = append(uow.projects, &entity.Project{Id: uuid.New(), Name: "Foreign", OwnerId: uuid.New()})
		list, err := svc.GetAll(ctx, owner)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("stranger cannot show", func(t *testing.T) {
		_, err := svc.Show(ctx, uuid.New(), created.Id)
		assertKind(t, err, apperrors.KindForbidden)
	})
}

func TestProjectDeleteCascades(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	factory, uow := newFakeFactory()
	project, category := seedProjectAndCategory(uow, owner)

	uow.questions = append(uow.questions, &entity.Question{Id: uuid.New(), CategoryId: category.Id, Label: "Q", Type: "text"})
	uow.testimonials = append(uow.testimonials, &entity.Testimonial{Id: uuid.New(), CategoryId: category.Id, Status: entity.StatusPending, CreatedAt: time.Now()})
	uow.keys = append(uow.keys, &entity.ApiKey{Id: uuid.New(), ProjectId: project.Id, Name: "Website", TokenHash: "abc"})

	svc := NewProjectService(factory)
	require.NoError(t, svc.Delete(ctx, owner, project.Id))

	assert.Empty(t, uow.projects)
	assert.Empty(t, uow.categories)
	assert.Empty(t, uow.questions)
	assert.Empty(t, uow.testimonials)
	assert.Empty(t, uow.keys)
	assert.Equal(t, 1, uow.committed)
}
