package events

import (
	"encoding/json"
	"time"

	"promptlink-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// SessionTopic is the in-process topic carrying relay session events.
const SessionTopic = "RELAY_SESSION_EVENTS"

// Publisher abstracts event publishing for relay session lifecycle. Publishing
// is best-effort: a failed publish is logged and never blocks a worker.
type Publisher interface {
	PublishSessionStarted(sessionID, mode string, totalSteps int)
	PublishStepCompleted(sessionID, mode string, step, totalSteps int, agents []string, success bool)
	PublishSessionFinished(sessionID, mode, status string, resultCount int)
}

// ChannelPublisher implements Publisher on top of a watermill gochannel bus.
type ChannelPublisher struct {
	pubSub *gochannel.GoChannel
	logger logger.ILogger
}

func NewChannelPublisher(pubSub *gochannel.GoChannel, log logger.ILogger) *ChannelPublisher {
	return &ChannelPublisher{
		pubSub: pubSub,
		logger: log,
	}
}

func (p *ChannelPublisher) PublishSessionStarted(sessionID, mode string, totalSteps int) {
	p.publish(BaseEvent{
		Type: TypeSessionStarted,
		Data: map[string]interface{}{
			"session_id":  sessionID,
			"mode":        mode,
			"total_steps": totalSteps,
		},
		OccurredAt: time.Now().UTC(),
	})
}

func (p *ChannelPublisher) PublishStepCompleted(sessionID, mode string, step, totalSteps int, agents []string, success bool) {
	p.publish(BaseEvent{
		Type: TypeStepCompleted,
		Data: map[string]interface{}{
			"session_id":  sessionID,
			"mode":        mode,
			"step":        step,
			"total_steps": totalSteps,
			"agents":      agents,
			"success":     success,
		},
		OccurredAt: time.Now().UTC(),
	})
}

func (p *ChannelPublisher) PublishSessionFinished(sessionID, mode, status string, resultCount int) {
	p.publish(BaseEvent{
		Type: TypeSessionFinished,
		Data: map[string]interface{}{
			"session_id":   sessionID,
			"mode":         mode,
			"status":       status,
			"result_count": resultCount,
		},
		OccurredAt: time.Now().UTC(),
	})
}

func (p *ChannelPublisher) publish(evt BaseEvent) {
	if p.pubSub == nil {
		return
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		p.logger.Error("Events", "Failed to marshal session event", map[string]interface{}{"type": evt.Type, "error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := p.pubSub.Publish(SessionTopic, msg); err != nil {
		p.logger.Error("Events", "Failed to publish session event", map[string]interface{}{"type": evt.Type, "error": err.Error()})
	}
}
