package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func TestPublishRoundtrip(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	messages, err := pubSub.Subscribe(ctx, SessionTopic)
	require.NoError(t, err)

	p := NewChannelPublisher(pubSub, nopLogger{})
	p.PublishStepCompleted("sid", "expert_panel", 3, 10, []string{"A", "B"}, true)

	select {
	case msg := <-messages:
		var evt BaseEvent
		require.NoError(t, json.Unmarshal(msg.Payload, &evt))
		msg.Ack()

		assert.Equal(t, TypeStepCompleted, evt.Type)
		assert.Equal(t, "sid", evt.Data["session_id"])
		assert.EqualValues(t, 3, evt.Data["step"])
		assert.EqualValues(t, 10, evt.Data["total_steps"])
		assert.Equal(t, true, evt.Data["success"])
		assert.False(t, evt.OccurredAt.IsZero())
	case <-ctx.Done():
		t.Fatal("no event received")
	}
}

func TestPublishWithoutBusIsNoop(t *testing.T) {
	p := NewChannelPublisher(nil, nopLogger{})
	assert.NotPanics(t, func() {
		p.PublishSessionStarted("sid", "expert_panel", 10)
		p.PublishSessionFinished("sid", "expert_panel", "completed", 10)
	})
}
