package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedBy filters projects by their owning user.
type OwnedBy struct {
	OwnerID uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id = ?", s.OwnerID)
}
