package mapper

import (
	"encoding/json"

	"proofly-be/internal/entity"
	"proofly-be/internal/model"

	"gorm.io/datatypes"
)

type TestimonialMapper struct{}

func NewTestimonialMapper() *TestimonialMapper {
	return &TestimonialMapper{}
}

func (m *TestimonialMapper) ToEntity(t *model.Testimonial) *entity.Testimonial {
	if t == nil {
		return nil
	}

	data := make(map[string]any)
	if len(t.Data) > 0 {
		_ = json.Unmarshal(t.Data, &data)
	}

	return &entity.Testimonial{
		Id:          t.Id,
		CategoryId:  t.CategoryId,
		Data:        data,
		Status:      entity.TestimonialStatus(t.Status),
		SubmittedBy: t.SubmittedBy,
		CreatedAt:   t.CreatedAt,
	}
}

func (m *TestimonialMapper) ToModel(t *entity.Testimonial) *model.Testimonial {
	if t == nil {
		return nil
	}

	raw, _ := json.Marshal(t.Data)

	return &model.Testimonial{
		Id:          t.Id,
		CategoryId:  t.CategoryId,
		Data:        datatypes.JSON(raw),
		Status:      string(t.Status),
		SubmittedBy: t.SubmittedBy,
		CreatedAt:   t.CreatedAt,
	}
}

func (m *TestimonialMapper) ToEntities(testimonials []*model.Testimonial) []*entity.Testimonial {
	entities := make([]*entity.Testimonial, len(testimonials))
	for i, t := range testimonials {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
