package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"proofly-be/internal/pkg/apperrors"
)

func TestCheckImage(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int
		wantErr     string
	}{
		{name: "jpeg ok", contentType: "image/jpeg", size: 1024},
		{name: "webp ok", contentType: "image/webp", size: MaxImageBytes},
		{name: "unsupported type", contentType: "image/tiff", size: 1024, wantErr: "Only JPEG, PNG, GIF and WebP images are allowed"},
		{name: "video rejected", contentType: "video/mp4", size: 1024, wantErr: "Only JPEG, PNG, GIF and WebP images are allowed"},
		{name: "over size limit", contentType: "image/png", size: MaxImageBytes + 1, wantErr: "Image must be 5MB or smaller"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckImage(tt.contentType, tt.size)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			appErr, ok := apperrors.From(err)
			assert.True(t, ok)
			assert.Equal(t, apperrors.KindValidation, appErr.Kind)
			assert.Equal(t, tt.wantErr, appErr.Message)
		})
	}
}

func TestCheckVideo(t *testing.T) {
	assert.NoError(t, CheckVideo("video/mp4", 1024))
	assert.NoError(t, CheckVideo("video/quicktime", MaxVideoBytes))

	err := CheckVideo("video/x-matroska", 1024)
	assert.Error(t, err)

	err = CheckVideo("video/webm", MaxVideoBytes+1)
	appErr, ok := apperrors.From(err)
	assert.True(t, ok)
	assert.Equal(t, "Video must be 50MB or smaller", appErr.Message)
}

func TestImageExtension(t *testing.T) {
	assert.Equal(t, "png", ImageExtension("image/png"))
	assert.Equal(t, "jpg", ImageExtension("image/jpeg"))
	assert.Equal(t, "jpg", ImageExtension("application/octet-stream"))
}
