package entity

import (
	"time"

	"proofly-be/pkg/forms"

	"github.com/google/uuid"
)

type Question struct {
	Id          uuid.UUID
	CategoryId  uuid.UUID
	Label       string
	Type        forms.QuestionType
	Required    bool
	Order       int
	Placeholder *string
	Options     []string
	Validation  *forms.NumericRange
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Schema projects the entity into the pure form-schema shape the
// submission validator consumes.
func (q *Question) Schema() forms.Question {
	return forms.Question{
		Id:          q.Id,
		Label:       q.Label,
		Type:        q.Type,
		Required:    q.Required,
		Order:       q.Order,
		Placeholder: q.Placeholder,
		Options:     q.Options,
		Validation:  q.Validation,
	}
}
