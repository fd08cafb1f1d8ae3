package model

import (
	"time"

	"github.com/google/uuid"
)

// FishModel mirrors the 'fish' table. UserID is a plain column rather than a
// foreign key: anonymous visitors own fish before any user row exists.
type FishModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Artist          string    `gorm:"type:varchar(100)"`
	Image           string    `gorm:"type:text;not null"`
	IsVisible       bool      `gorm:"not null;default:true"`
	Deleted         bool      `gorm:"not null;default:false"`
	Upvotes         int       `gorm:"not null;default:0"`
	Downvotes       int       `gorm:"not null;default:0"`
	Score           int       `gorm:"not null;default:0"`
	HotScore        float64   `gorm:"not null;default:0"`
	NeedsModeration bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (FishModel) TableName() string {
	return "fish"
}

// ReportModel mirrors the 'reports' table.
type ReportModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	FishID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Reason    string    `gorm:"type:text;not null"`
	UserAgent string    `gorm:"type:text"`
	URL       string    `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReportModel) TableName() string {
	return "reports"
}
