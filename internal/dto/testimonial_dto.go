package dto

import (
	"time"

	"github.com/google/uuid"
)

type TestimonialResponse struct {
	Id          uuid.UUID      `json:"id"`
	CategoryId  uuid.UUID      `json:"categoryId"`
	Data        map[string]any `json:"data"`
	Status      string         `json:"status"`
	SubmittedBy *string        `json:"submittedBy"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type UpdateTestimonialStatusRequest struct {
	Id     uuid.UUID
	Status string `json:"status" validate:"required"`
}

type UpdateTestimonialStatusResponse struct {
	Id     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}
