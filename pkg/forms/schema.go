package forms

import (
	"strings"

	"github.com/google/uuid"
)

// QuestionType is the closed set of field kinds a category form can hold.
type QuestionType string

const (
	TypeText     QuestionType = "text"
	TypeTextarea QuestionType = "textarea"
	TypeEmail    QuestionType = "email"
	TypeNumber   QuestionType = "number"
	TypeRating   QuestionType = "rating"
	TypeDropdown QuestionType = "dropdown"
	TypeCheckbox QuestionType = "checkbox"
	TypeRadio    QuestionType = "radio"
	TypeImage    QuestionType = "image"
	TypeVideo    QuestionType = "video"
)

var questionTypes = []QuestionType{
	TypeText, TypeTextarea, TypeEmail, TypeNumber, TypeRating,
	TypeDropdown, TypeCheckbox, TypeRadio, TypeImage, TypeVideo,
}

// ParseType validates a raw type string against the closed set.
func ParseType(raw string) (QuestionType, bool) {
	t := QuestionType(raw)
	for _, known := range questionTypes {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// TypeList returns the allowed type values joined for error messages.
func TypeList() string {
	parts := make([]string, len(questionTypes))
	for i, t := range questionTypes {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

// NeedsOptions reports whether the type requires a non-empty options list.
func (t QuestionType) NeedsOptions() bool {
	return t == TypeDropdown || t == TypeRadio || t == TypeCheckbox
}

// IsNumeric reports whether min/max constraints apply to the type.
func (t QuestionType) IsNumeric() bool {
	return t == TypeNumber || t == TypeRating
}

// NumericRange is the validation constraint bag for number and rating
// questions. Nil bounds mean unconstrained.
type NumericRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// DefaultRange returns the implicit constraint for a type when the owner
// supplied none. Ratings are 1..5 stars.
func DefaultRange(t QuestionType) *NumericRange {
	if t == TypeRating {
		min, max := 1.0, 5.0
		return &NumericRange{Min: &min, Max: &max}
	}
	return nil
}

// Question is the schema of a single form field, in presentation order.
type Question struct {
	Id          uuid.UUID
	Label       string
	Type        QuestionType
	Required    bool
	Order       int
	Placeholder *string
	Options     []string
	Validation  *NumericRange
}

// Range resolves the effective numeric constraint for the question.
func (q Question) Range() *NumericRange {
	if !q.Type.IsNumeric() {
		return nil
	}
	if q.Validation != nil {
		return q.Validation
	}
	return DefaultRange(q.Type)
}
