package entity

import (
	"time"

	"github.com/google/uuid"
)

// TestimonialStatus is a freely re-assignable moderation label, not a
// guarded state machine: any status may move to any other.
type TestimonialStatus string

const (
	StatusPending  TestimonialStatus = "pending"
	StatusApproved TestimonialStatus = "approved"
	StatusRejected TestimonialStatus = "rejected"
)

// ParseStatus validates a raw moderation status value.
func ParseStatus(raw string) (TestimonialStatus, bool) {
	switch TestimonialStatus(raw) {
	case StatusPending, StatusApproved, StatusRejected:
		return TestimonialStatus(raw), true
	}
	return "", false
}

type Testimonial struct {
	Id          uuid.UUID
	CategoryId  uuid.UUID
	Data        map[string]any
	Status      TestimonialStatus
	SubmittedBy *string
	CreatedAt   time.Time
}
