package storage

import (
	"context"
	"fmt"

	"proofly-be/internal/pkg/apperrors"
)

// MediaUploader pushes a binary blob to an external storage provider and
// returns its public URL. Size/type constraints are enforced by the caller
// before the upload call via CheckImage/CheckVideo.
type MediaUploader interface {
	Upload(ctx context.Context, data []byte, contentType, folder string) (string, error)
}

const (
	MaxImageBytes = 5 * 1024 * 1024  // 5MB
	MaxVideoBytes = 50 * 1024 * 1024 // 50MB
)

var allowedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

var allowedVideoTypes = map[string]bool{
	"video/mp4":       true,
	"video/webm":      true,
	"video/quicktime": true,
	"video/x-msvideo": true,
}

// CheckImage validates an image upload against the configured limits.
func CheckImage(contentType string, size int) error {
	if _, ok := allowedImageTypes[contentType]; !ok {
		return apperrors.Validation("Only JPEG, PNG, GIF and WebP images are allowed")
	}
	if size > MaxImageBytes {
		return apperrors.Validation("Image must be 5MB or smaller")
	}
	return nil
}

// CheckVideo validates a video upload against the configured limits.
func CheckVideo(contentType string, size int) error {
	if !allowedVideoTypes[contentType] {
		return apperrors.Validation("Only MP4, WebM, MOV, and AVI videos are allowed")
	}
	if size > MaxVideoBytes {
		return apperrors.Validation("Video must be 50MB or smaller")
	}
	return nil
}

// ImageExtension maps an allowed image content type to its file extension.
func ImageExtension(contentType string) string {
	if ext, ok := allowedImageTypes[contentType]; ok {
		return ext
	}
	return "jpg"
}

func notConfigured(vars string) error {
	return apperrors.Upstream(fmt.Sprintf("Storage not configured. Please set %s.", vars), nil)
}
