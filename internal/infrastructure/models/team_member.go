package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMember is the stored representation. BookLinks and SocialLinks are
// JSON-encoded text columns; the repository converts both ways.
type TeamMember struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(120);not null"`
	Bio          string    `gorm:"type:text;not null"`
	PhotoURL     string    `gorm:"type:text"`
	ConnectEmail *string   `gorm:"type:varchar(255)"`
	BookLinks    string    `gorm:"type:text;not null;default:'[]'"`
	SocialLinks  string    `gorm:"type:text;not null;default:'[]'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
