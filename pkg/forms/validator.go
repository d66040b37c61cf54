package forms

import (
	"fmt"
	"regexp"
	"strconv"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validation messages shown to the submitter, keyed per field.
const (
	msgRequired     = "This field is required"
	msgInvalidValue = "Invalid value"
	msgInvalidEmail = "Please enter a valid email"
	msgNotANumber   = "Please enter a number"
	msgInvalidOpt   = "Invalid option"
)

// AnswerMap holds validated answers keyed by question id. Values are
// string, float64 or []string depending on the question type.
type AnswerMap map[string]any

// FieldErrors maps question ids to human-readable validation messages.
type FieldErrors map[string]string

// Validate checks an untrusted answer map against the category's question
// schema. The schema is authoritative: only the category's own questions are
// inspected, so unknown submitted keys are dropped rather than stored.
// Validation is not fail-fast; every failing field is reported in one pass,
// and a non-empty error map means nothing should be persisted.
func Validate(questions []Question, data map[string]any) (AnswerMap, FieldErrors) {
	validated := make(AnswerMap)
	errs := make(FieldErrors)

	for _, q := range questions {
		key := q.Id.String()
		value, present := data[key]

		if !present || isEmpty(value) {
			if q.Required {
				errs[key] = msgRequired
			}
			continue
		}

		switch q.Type {
		case TypeText, TypeTextarea:
			s, ok := value.(string)
			if !ok {
				errs[key] = msgInvalidValue
				continue
			}
			validated[key] = s

		case TypeEmail:
			s, ok := value.(string)
			if !ok {
				errs[key] = msgInvalidValue
				continue
			}
			if !emailRe.MatchString(s) {
				errs[key] = msgInvalidEmail
				continue
			}
			validated[key] = s

		case TypeNumber, TypeRating:
			num, ok := toNumber(value)
			if !ok {
				errs[key] = msgNotANumber
				continue
			}
			// Min is checked before max; only one message per field.
			if r := q.Range(); r != nil {
				if r.Min != nil && num < *r.Min {
					errs[key] = fmt.Sprintf("Minimum is %s", formatBound(*r.Min))
					continue
				}
				if r.Max != nil && num > *r.Max {
					errs[key] = fmt.Sprintf("Maximum is %s", formatBound(*r.Max))
					continue
				}
			}
			validated[key] = num

		case TypeDropdown, TypeRadio:
			s, ok := value.(string)
			if !ok || !contains(q.Options, s) {
				errs[key] = msgInvalidOpt
				continue
			}
			validated[key] = s

		case TypeCheckbox:
			list, ok := toStringList(value)
			if !ok {
				errs[key] = msgInvalidOpt
				continue
			}
			valid := true
			for _, item := range list {
				if !contains(q.Options, item) {
					valid = false
					break
				}
			}
			if !valid {
				errs[key] = msgInvalidOpt
				continue
			}
			validated[key] = list

		case TypeImage, TypeVideo:
			// Upload collaborators already produced the URL; only the shape
			// is checked here.
			s, ok := value.(string)
			if !ok {
				errs[key] = msgInvalidValue
				continue
			}
			validated[key] = s

		default:
			// Unknown types are stringified and accepted so new question
			// kinds don't break older submissions.
			validated[key] = fmt.Sprint(value)
		}
	}

	return validated, errs
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	default:
		return false
	}
}

func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		num, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return num, true
	default:
		return 0, false
	}
}

// toStringList accepts a list of strings or a bare string, which is treated
// as a single-element selection.
func toStringList(value any) ([]string, bool) {
	switch v := value.(type) {
	case string:
		return []string{v}, true
	case []string:
		return v, true
	case []any:
		list := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			list = append(list, s)
		}
		return list, true
	default:
		return nil, false
	}
}

func contains(options []string, s string) bool {
	for _, opt := range options {
		if opt == s {
			return true
		}
	}
	return false
}

// formatBound prints whole-number bounds without a decimal point, matching
// how owners type them ("Maximum is 5", not "Maximum is 5.0").
func formatBound(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
