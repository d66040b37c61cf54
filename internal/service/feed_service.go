package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"proofly-be/internal/dto"
	"proofly-be/internal/entity"
	"proofly-be/internal/pkg/apperrors"
	"proofly-be/internal/pkg/logger"
	"proofly-be/internal/repository/specification"
	"proofly-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	feedDefaultLimit = 20
	feedMaxLimit     = 50
)

// FeedQuery is the parsed query surface of the public feed endpoint.
type FeedQuery struct {
	Status     string
	CategoryId *uuid.UUID
	Limit      int
	Cursor     *uuid.UUID
}

type IFeedService interface {
	// Authenticate resolves a plaintext API key to its project. Missing,
	// unknown and revoked keys all fail identically.
	Authenticate(ctx context.Context, plaintextKey string) (*entity.ApiKey, error)
	GetFeed(ctx context.Context, key *entity.ApiKey, query *FeedQuery) (*dto.FeedResponse, error)
}

type feedService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	log              logger.ILogger
}

func NewFeedService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IFeedService {
	return &feedService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		log:              log,
	}
}

func (s *feedService) Authenticate(ctx context.Context, plaintextKey string) (*entity.ApiKey, error) {
	if plaintextKey == "" {
		return nil, apperrors.Unauthenticated("Invalid API key")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	key, err := uow.ApiKeyRepository().FindOne(ctx,
		specification.ByTokenHash{TokenHash: HashToken(plaintextKey)},
		specification.NotRevoked{},
	)
	if err != nil {
		return nil, err
	}
	if key == nil {
		return nil, apperrors.Unauthenticated("Invalid API key")
	}

	// Fire-and-forget usage stamp; a publish failure never fails the read.
	payload, _ := json.Marshal(dto.KeyUsedMessage{KeyId: key.Id, UsedAt: time.Now()})
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Warn("feed", "Failed to publish key usage event", map[string]interface{}{
			"key_id": key.Id.String(),
			"error":  err.Error(),
		})
	}

	return key, nil
}

func (s *feedService) GetFeed(ctx context.Context, key *entity.ApiKey, query *FeedQuery) (*dto.FeedResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	status := query.Status
	if status == "" {
		status = string(entity.StatusApproved)
	}
	if _, ok := entity.ParseStatus(status); !ok {
		return nil, apperrors.Validation("Status must be one of: pending, approved, rejected")
	}

	limit := query.Limit
	if limit <= 0 {
		limit = feedDefaultLimit
	}
	if limit > feedMaxLimit {
		limit = feedMaxLimit
	}

	specs := []specification.Specification{
		specification.ByStatus{Status: status},
		specification.NewestFirst{},
		specification.Limit{N: limit + 1},
	}
	if query.CategoryId != nil {
		specs = append(specs, specification.ByCategoryID{CategoryID: *query.CategoryId})
	}
	if query.Cursor != nil {
		// The lookup is scoped through the key's project so a foreign
		// testimonial id is indistinguishable from a bogus cursor.
		cursorRows, err := uow.TestimonialRepository().FindForProject(ctx, key.ProjectId,
			specification.ByTestimonialID{ID: *query.Cursor},
		)
		if err != nil {
			return nil, err
		}
		if len(cursorRows) == 0 {
			return nil, apperrors.Validation("Invalid cursor")
		}
		cursorRow := cursorRows[0]
		specs = append(specs, specification.CreatedBefore{CreatedAt: cursorRow.CreatedAt, ID: cursorRow.Id})
	}

	rows, err := uow.TestimonialRepository().FindForProject(ctx, key.ProjectId, specs...)
	if err != nil {
		return nil, err
	}

	// One extra row only signals that another page exists; the cursor is
	// the id of the last row actually returned.
	var nextCursor *uuid.UUID
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1].Id
		nextCursor = &last
	}

	items, err := s.assembleItems(ctx, uow, key.ProjectId, rows)
	if err != nil {
		return nil, err
	}

	return &dto.FeedResponse{
		Items:      items,
		NextCursor: nextCursor,
	}, nil
}

// assembleItems decorates raw testimonials with their category and the
// question metadata needed to render answers, in two batched lookups.
func (s *feedService) assembleItems(ctx context.Context, uow unitofwork.UnitOfWork, projectId uuid.UUID, rows []*entity.Testimonial) ([]dto.FeedItem, error) {
	items := make([]dto.FeedItem, 0, len(rows))
	if len(rows) == 0 {
		return items, nil
	}

	categoryIds := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]bool)
	for _, row := range rows {
		if !seen[row.CategoryId] {
			seen[row.CategoryId] = true
			categoryIds = append(categoryIds, row.CategoryId)
		}
	}

	categories, err := uow.CategoryRepository().FindAll(ctx, specification.ByIDs{IDs: categoryIds})
	if err != nil {
		return nil, err
	}
	categoryById := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, category := range categories {
		categoryById[category.Id] = category
	}

	questions, err := uow.QuestionRepository().FindAll(ctx,
		specification.ByCategoryIDs{CategoryIDs: categoryIds},
	)
	if err != nil {
		return nil, err
	}
	questionsByCategory := make(map[uuid.UUID][]dto.FeedQuestion)
	for _, question := range questions {
		questionsByCategory[question.CategoryId] = append(questionsByCategory[question.CategoryId], dto.FeedQuestion{
			Id:    question.Id,
			Label: question.Label,
			Type:  string(question.Type),
			Order: question.Order,
		})
	}
	for _, list := range questionsByCategory {
		sort.Slice(list, func(i, j int) bool { return list[i].Order < list[j].Order })
	}

	for _, row := range rows {
		category := categoryById[row.CategoryId]
		if category == nil {
			continue
		}
		items = append(items, dto.FeedItem{
			Id:        row.Id,
			ProjectId: projectId,
			Category: dto.FeedCategory{
				Id:        category.Id,
				Name:      category.Name,
				Questions: questionsByCategory[category.Id],
			},
			Status:      string(row.Status),
			SubmittedBy: row.SubmittedBy,
			CreatedAt:   row.CreatedAt,
			Data:        row.Data,
		})
	}
	return items, nil
}
