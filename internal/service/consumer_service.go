package service

import (
	"context"
	"encoding/json"

	"proofly-be/internal/dto"
	"proofly-be/internal/pkg/logger"
	"proofly-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains key-usage events and stamps last_used_at.
// Failures are logged and acked; a lost touch is acceptable, a stuck
// queue is not.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		log:        log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var payload dto.KeyUsedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("keyusage", "Failed to unmarshal key usage event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ApiKeyRepository().TouchLastUsed(ctx, payload.KeyId, payload.UsedAt); err != nil {
		cs.log.Error("keyusage", "Failed to touch last_used_at", map[string]interface{}{
			"key_id": payload.KeyId.String(),
			"error":  err.Error(),
		})
	}
}
