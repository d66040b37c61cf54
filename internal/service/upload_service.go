package service

import (
	"context"

	"proofly-be/internal/dto"
	"proofly-be/internal/pkg/storage"

	"github.com/google/uuid"
)

type IUploadService interface {
	UploadImage(ctx context.Context, categoryId uuid.UUID, data []byte, contentType string) (*dto.UploadResponse, error)
	UploadVideo(ctx context.Context, categoryId uuid.UUID, data []byte, contentType string) (*dto.UploadResponse, error)
}

type uploadService struct {
	imageUploader storage.MediaUploader
	videoUploader storage.MediaUploader
}

func NewUploadService(imageUploader, videoUploader storage.MediaUploader) IUploadService {
	return &uploadService{
		imageUploader: imageUploader,
		videoUploader: videoUploader,
	}
}

func (s *uploadService) UploadImage(ctx context.Context, categoryId uuid.UUID, data []byte, contentType string) (*dto.UploadResponse, error) {
	if err := storage.CheckImage(contentType, len(data)); err != nil {
		return nil, err
	}
	url, err := s.imageUploader.Upload(ctx, data, contentType, categoryId.String())
	if err != nil {
		return nil, err
	}
	return &dto.UploadResponse{Url: url}, nil
}

func (s *uploadService) UploadVideo(ctx context.Context, categoryId uuid.UUID, data []byte, contentType string) (*dto.UploadResponse, error) {
	if err := storage.CheckVideo(contentType, len(data)); err != nil {
		return nil, err
	}
	url, err := s.videoUploader.Upload(ctx, data, contentType, categoryId.String())
	if err != nil {
		return nil, err
	}
	return &dto.UploadResponse{Url: url}, nil
}
