package dto

import (
	"time"

	"github.com/google/uuid"
)

// NumericRangePayload mirrors the persisted validation rule for numeric
// and rating questions. Either bound may be absent.
type NumericRangePayload struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

type CreateQuestionRequest struct {
	CategoryId  uuid.UUID
	Label       string               `json:"label" validate:"required"`
	Type        string               `json:"type" validate:"required"`
	Required    bool                 `json:"required"`
	Order       *int                 `json:"order"`
	Placeholder *string              `json:"placeholder"`
	Options     []string             `json:"options"`
	Validation  *NumericRangePayload `json:"validation"`
}

type CreateQuestionResponse struct {
	Id uuid.UUID `json:"id"`
}

type QuestionResponse struct {
	Id          uuid.UUID            `json:"id"`
	Label       string               `json:"label"`
	Type        string               `json:"type"`
	Required    bool                 `json:"required"`
	Order       int                  `json:"order"`
	Placeholder *string              `json:"placeholder"`
	Options     []string             `json:"options"`
	Validation  *NumericRangePayload `json:"validation"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

type UpdateQuestionRequest struct {
	Id          uuid.UUID
	Label       *string              `json:"label"`
	Type        *string              `json:"type"`
	Required    *bool                `json:"required"`
	Order       *int                 `json:"order"`
	Placeholder *string              `json:"placeholder"`
	Options     *[]string            `json:"options"`
	Validation  *NumericRangePayload `json:"validation"`
}

type UpdateQuestionResponse struct {
	Id uuid.UUID `json:"id"`
}

type ReorderQuestionsRequest struct {
	CategoryId  uuid.UUID
	QuestionIds []uuid.UUID `json:"questionIds" validate:"required,min=1"`
}
