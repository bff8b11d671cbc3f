package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PressRelease is the stored representation. Tags and Attachments are
// JSON-encoded text columns.
type PressRelease struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	Title            string    `gorm:"type:varchar(255);not null"`
	Subtitle         *string   `gorm:"type:varchar(255)"`
	Content          string    `gorm:"type:text;not null"`
	Excerpt          string    `gorm:"type:varchar(300);not null"`
	PublishDate      time.Time `gorm:"not null;index"`
	Author           *string   `gorm:"type:varchar(120)"`
	Category         *string   `gorm:"type:varchar(120)"`
	Tags             string    `gorm:"type:text;not null;default:'[]'"`
	FeaturedImageURL *string   `gorm:"type:text"`
	Attachments      string    `gorm:"type:text;not null;default:'[]'"`
	IsPublished      bool      `gorm:"not null;default:false;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}
