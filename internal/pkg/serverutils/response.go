package serverutils

// Response is the envelope for successful API responses.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// ErrorBody is the envelope for failed API responses. Errors carries the
// per-field detail map for validation failures.
type ErrorBody struct {
	Success bool              `json:"success"`
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func ErrorResponse(code int, message string) ErrorBody {
	return ErrorBody{
		Success: false,
		Code:    code,
		Message: message,
	}
}

func FieldErrorResponse(code int, message string, fields map[string]string) ErrorBody {
	return ErrorBody{
		Success: false,
		Code:    code,
		Message: message,
		Errors:  fields,
	}
}
