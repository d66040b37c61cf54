package dto

import "github.com/google/uuid"

type SendTestimonialRequest struct {
	CategoryId uuid.UUID
	Email      string  `json:"email" validate:"required,email"`
	Message    *string `json:"message"`
}
