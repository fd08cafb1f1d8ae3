package model

import "time"

// PasswordResetModel mirrors the 'password_resets' table. The token value is
// the primary key; email is deliberately not a foreign key, the record
// outlives account removal.
type PasswordResetModel struct {
	Token     string `gorm:"type:varchar(64);primary_key"`
	Email     string `gorm:"type:varchar(255);not null;index"`
	Used      bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PasswordResetModel) TableName() string {
	return "password_resets"
}
