package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"proofly-be/internal/dto"
	"proofly-be/internal/entity"
	"proofly-be/internal/pkg/apperrors"
	"proofly-be/internal/repository/specification"
	"proofly-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IApiKeyService interface {
	GetAll(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) ([]*dto.ApiKeyResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateApiKeyRequest) (*dto.CreateApiKeyResponse, error)
	Revoke(ctx context.Context, userId uuid.UUID, projectId, id uuid.UUID) error
}

type apiKeyService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewApiKeyService(uowFactory unitofwork.RepositoryFactory) IApiKeyService {
	return &apiKeyService{
		uowFactory: uowFactory,
	}
}

// generateToken returns the plaintext key and its stored hash. The token is
// "pk_" plus 32 random bytes in hex; only the sha256 of the whole token is
// persisted, so a leaked database cannot be replayed against the feed.
func generateToken() (plaintext, hash string, err error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", "", err
	}
	plaintext = "pk_" + hex.EncodeToString(raw)
	return plaintext, HashToken(plaintext), nil
}

// HashToken derives the stored lookup hash for a plaintext API key.
func HashToken(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

func (s *apiKeyService) GetAll(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) ([]*dto.ApiKeyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := resolveProject(ctx, uow, userId, projectId); err != nil {
		return nil, err
	}

	keys, err := uow.ApiKeyRepository().FindAll(ctx,
		specification.ByProjectID{ProjectID: projectId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ApiKeyResponse, 0, len(keys))
	for _, key := range keys {
		result = append(result, &dto.ApiKeyResponse{
			Id:         key.Id,
			Name:       key.Name,
			Revoked:    key.Revoked,
			LastUsedAt: key.LastUsedAt,
			CreatedAt:  key.CreatedAt,
		})
	}
	return result, nil
}

func (s *apiKeyService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateApiKeyRequest) (*dto.CreateApiKeyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := resolveProject(ctx, uow, userId, req.ProjectId); err != nil {
		return nil, err
	}

	plaintext, hash, err := generateToken()
	if err != nil {
		return nil, err
	}

	key := entity.ApiKey{
		Id:        uuid.New(),
		ProjectId: req.ProjectId,
		UserId:    userId,
		Name:      req.Name,
		TokenHash: hash,
		CreatedAt: time.Now(),
	}
	if err := uow.ApiKeyRepository().Create(ctx, &key); err != nil {
		return nil, err
	}

	// The plaintext leaves the server exactly once, in this response.
	return &dto.CreateApiKeyResponse{
		Id:        key.Id,
		Name:      key.Name,
		Key:       plaintext,
		CreatedAt: key.CreatedAt,
	}, nil
}

func (s *apiKeyService) Revoke(ctx context.Context, userId uuid.UUID, projectId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := resolveProject(ctx, uow, userId, projectId); err != nil {
		return err
	}

	key, err := uow.ApiKeyRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByProjectID{ProjectID: projectId},
	)
	if err != nil {
		return err
	}
	if key == nil {
		return apperrors.NotFound("API key not found")
	}
	if key.Revoked {
		return nil
	}

	key.Revoked = true
	return uow.ApiKeyRepository().Update(ctx, key)
}
