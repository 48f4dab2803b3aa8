package service

import (
	"context"
	"encoding/json"

	"promptlink-be/internal/pkg/logger"
	"promptlink-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// EventSink receives decoded session events; the websocket hub implements it
// to fan progress out to connected watchers.
type EventSink interface {
	BroadcastToSession(sessionID string, payload []byte)
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the relay session topic, logs milestones and pushes
// every event to the sink. Workers publish fire-and-forget, so a slow sink
// never blocks a session.
type consumerService struct {
	pubSub *gochannel.GoChannel
	sink   EventSink
	logger logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, sink EventSink, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub: pubSub,
		sink:   sink,
		logger: log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, events.SessionTopic)
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
	var evt events.SessionEventMessage
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		cs.logger.Error("Consumer", "Failed to unmarshal session event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.logger.Info("Consumer", "Session event", map[string]interface{}{
		"type":       evt.Type,
		"session_id": evt.SessionID(),
		"data":       evt.Data,
	})

	if cs.sink != nil {
		if sessionID := evt.SessionID(); sessionID != "" {
			cs.sink.BroadcastToSession(sessionID, msg.Payload)
		}
	}

	msg.Ack()
}
