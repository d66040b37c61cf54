package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"proofly-be/internal/pkg/apperrors"

	"github.com/google/uuid"
)

// SupabaseUploader stores images in a Supabase Storage bucket through its
// REST API and returns the bucket's public object URL.
type SupabaseUploader struct {
	baseURL    string
	serviceKey string
	bucket     string
	client     *http.Client
}

func NewSupabaseUploader(baseURL, serviceKey, bucket string) *SupabaseUploader {
	return &SupabaseUploader{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		bucket:     bucket,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

func (u *SupabaseUploader) Upload(ctx context.Context, data []byte, contentType, folder string) (string, error) {
	if u.baseURL == "" || u.serviceKey == "" {
		return "", notConfigured("SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY")
	}

	objectPath := fmt.Sprintf("%s/%s.%s", folder, uuid.NewString(), ImageExtension(contentType))
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", u.baseURL, u.bucket, objectPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+u.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")

	res, err := u.client.Do(req)
	if err != nil {
		return "", apperrors.Upstream("Upload failed", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return "", apperrors.Upstream("Upload failed", fmt.Errorf("supabase storage returned %d: %s", res.StatusCode, body))
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s", u.baseURL, u.bucket, objectPath)
	return publicURL, nil
}
