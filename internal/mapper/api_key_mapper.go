package mapper

import (
	"proofly-be/internal/entity"
	"proofly-be/internal/model"
)

type ApiKeyMapper struct{}

func NewApiKeyMapper() *ApiKeyMapper {
	return &ApiKeyMapper{}
}

func (m *ApiKeyMapper) ToEntity(k *model.ApiKey) *entity.ApiKey {
	if k == nil {
		return nil
	}
	return &entity.ApiKey{
		Id:         k.Id,
		ProjectId:  k.ProjectId,
		UserId:     k.UserId,
		Name:       k.Name,
		TokenHash:  k.TokenHash,
		Revoked:    k.Revoked,
		LastUsedAt: k.LastUsedAt,
		CreatedAt:  k.CreatedAt,
	}
}

func (m *ApiKeyMapper) ToModel(k *entity.ApiKey) *model.ApiKey {
	if k == nil {
		return nil
	}
	return &model.ApiKey{
		Id:         k.Id,
		ProjectId:  k.ProjectId,
		UserId:     k.UserId,
		Name:       k.Name,
		TokenHash:  k.TokenHash,
		Revoked:    k.Revoked,
		LastUsedAt: k.LastUsedAt,
		CreatedAt:  k.CreatedAt,
	}
}

func (m *ApiKeyMapper) ToEntities(keys []*model.ApiKey) []*entity.ApiKey {
	entities := make([]*entity.ApiKey, len(keys))
	for i, k := range keys {
		entities[i] = m.ToEntity(k)
	}
	return entities
}
