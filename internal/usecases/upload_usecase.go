package usecases

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
	"press-kit.backend/internal/domain/entities"
	domainerrors "press-kit.backend/internal/domain/errors"
	"press-kit.backend/internal/domain/repositories"
	"press-kit.backend/internal/infrastructure/storage"
	"press-kit.backend/pkg/utils"
)

// UploadInput describes one incoming binary payload.
type UploadInput struct {
	FileName    string
	ContentType string
	Size        int64
	PathHint    string
	UploadedBy  string
	Reader      io.Reader
}

// UploadUsecase validates payloads, stores them in the object store and
// records every stored object in the asset ledger. Replaced assets are not
// deleted; orphans are accepted.
type UploadUsecase struct {
	store              storage.ObjectStore
	assetRepo          repositories.AssetRepository
	maxImageBytes      int64
	maxAttachmentBytes int64
}

func NewUploadUsecase(store storage.ObjectStore, assetRepo repositories.AssetRepository, maxImageBytes, maxAttachmentBytes int64) *UploadUsecase {
	return &UploadUsecase{
		store:              store,
		assetRepo:          assetRepo,
		maxImageBytes:      maxImageBytes,
		maxAttachmentBytes: maxAttachmentBytes,
	}
}

// UploadImage stores an image under the images/ namespace. Only image content
// types are accepted and the payload may not exceed the image ceiling.
func (u *UploadUsecase) UploadImage(ctx context.Context, in *UploadInput) (*entities.Asset, error) {
	if !strings.HasPrefix(in.ContentType, "image/") {
		return nil, domainerrors.UnsupportedMediaType("only image files are allowed")
	}
	if in.Size > u.maxImageBytes {
		return nil, domainerrors.PayloadTooLarge("file size must be less than 5MB")
	}
	return u.put(ctx, in, "images", entities.AttachmentTypeImage)
}

// UploadAttachment stores a press release attachment under the attachments/
// namespace. Any content type is accepted; the kind is classified from the
// filename extension once, here, and stored with the asset.
func (u *UploadUsecase) UploadAttachment(ctx context.Context, in *UploadInput) (*entities.Asset, error) {
	if in.Size > u.maxAttachmentBytes {
		return nil, domainerrors.PayloadTooLarge("attachment exceeds the upload size limit")
	}
	return u.put(ctx, in, "attachments", entities.AttachmentTypeFromFilename(in.FileName))
}

func (u *UploadUsecase) put(ctx context.Context, in *UploadInput, namespace string, kind entities.AttachmentType) (*entities.Asset, error) {
	name := strings.TrimSpace(in.PathHint)
	if name == "" {
		name = fmt.Sprintf("%d-%s", time.Now().UnixMilli(), in.FileName)
	}
	objectPath := namespace + "/" + SanitizeObjectName(name)

	url, err := u.store.Put(ctx, objectPath, in.ContentType, in.Reader)
	if err != nil {
		return nil, err
	}

	asset := &entities.Asset{
		ID:          utils.GenerateUUIDv7(),
		Path:        objectPath,
		URL:         url,
		ContentType: in.ContentType,
		Size:        in.Size,
		Kind:        kind,
		CreatedAt:   time.Now(),
	}
	if in.UploadedBy != "" {
		asset.UploadedBy = null.StringFrom(in.UploadedBy)
	}
	if err := u.assetRepo.Create(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

// SanitizeObjectName restricts a destination name to a safe character set so
// encoding quirks in original filenames cannot produce broken storage paths.
func SanitizeObjectName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" {
		out = "file"
	}
	return out
}
