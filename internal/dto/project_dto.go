package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

type CreateProjectResponse struct {
	Id uuid.UUID `json:"id"`
}

type ProjectResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type UpdateProjectRequest struct {
	Id          uuid.UUID
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type UpdateProjectResponse struct {
	Id uuid.UUID `json:"id"`
}
