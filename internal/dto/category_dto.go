package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	ProjectId   uuid.UUID
	Name        string  `json:"name" validate:"required"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}

type CreateCategoryResponse struct {
	Id   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
}

type CategoryResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"isActive"`
	ProjectId   uuid.UUID `json:"projectId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type UpdateCategoryRequest struct {
	Id          uuid.UUID
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

type UpdateCategoryResponse struct {
	Id uuid.UUID `json:"id"`
}
