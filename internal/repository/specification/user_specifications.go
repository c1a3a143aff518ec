package specification

import "gorm.io/gorm"

// ByEmail filters users by their normalized email
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByResetTokenHash filters users holding an unexpired reset token
type ByResetTokenHash struct {
	TokenHash string
}

func (s ByResetTokenHash) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("reset_token_hash = ? AND reset_token_expires_at > NOW()", s.TokenHash)
}
