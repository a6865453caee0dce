package service

import (
	"context"
	"io"
)

// UploadResult is what the media host hands back after storing bytes.
type UploadResult struct {
	SecureURL string
	PublicID  string
}

// Uploader delegates binary image storage to the external media host. The
// application stores only the returned URL and public id.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, uploadPreset string) (*UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}
