package mapper

import (
	"proofly-be/internal/entity"
	"proofly-be/internal/model"
)

type CategoryMapper struct{}

func NewCategoryMapper() *CategoryMapper {
	return &CategoryMapper{}
}

func (m *CategoryMapper) ToEntity(c *model.Category) *entity.Category {
	if c == nil {
		return nil
	}
	return &entity.Category{
		Id:          c.Id,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		IsActive:    c.IsActive,
		ProjectId:   c.ProjectId,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *CategoryMapper) ToModel(c *entity.Category) *model.Category {
	if c == nil {
		return nil
	}
	return &model.Category{
		Id:          c.Id,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		IsActive:    c.IsActive,
		ProjectId:   c.ProjectId,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *CategoryMapper) ToEntities(categories []*model.Category) []*entity.Category {
	entities := make([]*entity.Category, len(categories))
	for i, c := range categories {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
