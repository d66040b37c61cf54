package specification

import "gorm.io/gorm"

type ByTokenHash struct {
	TokenHash string
}

func (s ByTokenHash) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("token_hash = ?", s.TokenHash)
}

type NotRevoked struct{}

func (s NotRevoked) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("revoked = false")
}
