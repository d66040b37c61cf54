package storage

import (
	"bytes"
	"context"
	"fmt"

	"proofly-be/internal/pkg/apperrors"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryUploader stores testimonial videos in Cloudinary.
type CloudinaryUploader struct {
	cloudName string
	apiKey    string
	apiSecret string
}

func NewCloudinaryUploader(cloudName, apiKey, apiSecret string) *CloudinaryUploader {
	return &CloudinaryUploader{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
	}
}

func (u *CloudinaryUploader) Upload(ctx context.Context, data []byte, contentType, folder string) (string, error) {
	if u.cloudName == "" || u.apiKey == "" || u.apiSecret == "" {
		return "", notConfigured("CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY, and CLOUDINARY_API_SECRET")
	}

	cld, err := cloudinary.NewFromParams(u.cloudName, u.apiKey, u.apiSecret)
	if err != nil {
		return "", apperrors.Upstream("Upload failed", err)
	}

	overwrite := false
	res, err := cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		ResourceType: "video",
		Folder:       fmt.Sprintf("testimonials/%s", folder),
		Overwrite:    &overwrite,
	})
	if err != nil {
		return "", apperrors.Upstream("Upload failed", err)
	}
	if res.Error.Message != "" {
		return "", apperrors.Upstream("Upload failed", fmt.Errorf("cloudinary: %s", res.Error.Message))
	}

	return res.SecureURL, nil
}
