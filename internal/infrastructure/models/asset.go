package models

import (
	"time"

	"github.com/google/uuid"
)

type Asset struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	Path        string    `gorm:"type:text;not null;uniqueIndex"`
	URL         string    `gorm:"type:text;not null"`
	ContentType string    `gorm:"type:varchar(120);not null"`
	Size        int64     `gorm:"not null"`
	Kind        string    `gorm:"type:varchar(20);not null"`
	UploadedBy  *string   `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
}
