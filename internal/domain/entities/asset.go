package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Asset records one uploaded object. Replaced assets are never deleted from
// the object store; this table is the ledger that makes cleanup possible later.
type Asset struct {
	ID          uuid.UUID      `json:"id"`
	Path        string         `json:"path"`
	URL         string         `json:"url"`
	ContentType string         `json:"contentType"`
	Size        int64          `json:"size"`
	Kind        AttachmentType `json:"kind"`
	UploadedBy  null.String    `json:"uploadedBy,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}
