package service

import (
	"context"
	"encoding/json"

	"merchant-dashboard-be/internal/pkg/logger"
	"merchant-dashboard-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the audit topic and writes each pipeline event to
// the structured log. Keeping the audit trail off the request path means a
// slow log sink never delays an assistant reply.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var event events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("AuditConsumer", "Failed to unmarshal audit event", map[string]interface{}{
			"error":      err,
			"message_id": msg.UUID,
		})
		msg.Ack() // invalid payloads would never succeed on retry
		return
	}

	cs.logger.Info("AuditConsumer", event.EventType(), map[string]interface{}{
		"occurred_at": event.OccurredAt,
		"data":        event.Data,
	})
	msg.Ack()
}
