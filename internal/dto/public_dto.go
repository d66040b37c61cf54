package dto

import (
	"time"

	"github.com/google/uuid"
)

// Public form fetch: the schema a submitter renders.

type PublicCategoryResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
}

type PublicFormResponse struct {
	Category  PublicCategoryResponse `json:"category"`
	Questions []*QuestionResponse    `json:"questions"`
}

// Public submission.

type SubmitTestimonialRequest struct {
	CategoryId  uuid.UUID
	Data        map[string]any `json:"data"`
	SubmittedBy *string        `json:"submittedBy"`
}

type SubmitTestimonialResponse struct {
	Id     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

// Keyed feed.

type FeedQuestion struct {
	Id    uuid.UUID `json:"id"`
	Label string    `json:"label"`
	Type  string    `json:"type"`
	Order int       `json:"order"`
}

type FeedCategory struct {
	Id        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Questions []FeedQuestion `json:"questions"`
}

type FeedItem struct {
	Id          uuid.UUID      `json:"id"`
	ProjectId   uuid.UUID      `json:"projectId"`
	Category    FeedCategory   `json:"category"`
	Status      string         `json:"status"`
	SubmittedBy *string        `json:"submittedBy"`
	CreatedAt   time.Time      `json:"createdAt"`
	Data        map[string]any `json:"data"`
}

type FeedResponse struct {
	Items      []FeedItem `json:"items"`
	NextCursor *uuid.UUID `json:"nextCursor"`
}

// Media upload result.

type UploadResponse struct {
	Url string `json:"url"`
}
