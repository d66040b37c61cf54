package mapper

import (
	"encoding/json"

	"proofly-be/internal/entity"
	"proofly-be/internal/model"
	"proofly-be/pkg/forms"

	"gorm.io/datatypes"
)

// QuestionMapper converts between the jsonb persistence shape of options
// and validation and their typed entity form. Malformed stored JSON decays
// to empty rather than failing a read.
type QuestionMapper struct{}

func NewQuestionMapper() *QuestionMapper {
	return &QuestionMapper{}
}

func (m *QuestionMapper) ToEntity(q *model.Question) *entity.Question {
	if q == nil {
		return nil
	}

	var options []string
	if len(q.Options) > 0 {
		_ = json.Unmarshal(q.Options, &options)
	}

	var validation *forms.NumericRange
	if len(q.Validation) > 0 {
		var r forms.NumericRange
		if err := json.Unmarshal(q.Validation, &r); err == nil && (r.Min != nil || r.Max != nil) {
			validation = &r
		}
	}

	return &entity.Question{
		Id:          q.Id,
		CategoryId:  q.CategoryId,
		Label:       q.Label,
		Type:        forms.QuestionType(q.Type),
		Required:    q.Required,
		Order:       q.Order,
		Placeholder: q.Placeholder,
		Options:     options,
		Validation:  validation,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func (m *QuestionMapper) ToModel(q *entity.Question) *model.Question {
	if q == nil {
		return nil
	}

	var options datatypes.JSON
	if q.Options != nil {
		raw, _ := json.Marshal(q.Options)
		options = datatypes.JSON(raw)
	}

	var validation datatypes.JSON
	if q.Validation != nil {
		raw, _ := json.Marshal(q.Validation)
		validation = datatypes.JSON(raw)
	}

	return &model.Question{
		Id:          q.Id,
		CategoryId:  q.CategoryId,
		Label:       q.Label,
		Type:        string(q.Type),
		Required:    q.Required,
		Order:       q.Order,
		Placeholder: q.Placeholder,
		Options:     options,
		Validation:  validation,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func (m *QuestionMapper) ToEntities(questions []*model.Question) []*entity.Question {
	entities := make([]*entity.Question, len(questions))
	for i, q := range questions {
		entities[i] = m.ToEntity(q)
	}
	return entities
}
