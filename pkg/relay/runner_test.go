package relay

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"promptlink-be/internal/entity"
	"promptlink-be/pkg/agents"
	"promptlink-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu       sync.Mutex
	started  int
	steps    int
	finished int
}

func (p *recordingPublisher) PublishSessionStarted(sessionID, mode string, totalSteps int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.started++
}

func (p *recordingPublisher) PublishStepCompleted(sessionID, mode string, step, totalSteps int, agents []string, success bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.steps++
}

func (p *recordingPublisher) PublishSessionFinished(sessionID, mode, status string, resultCount int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.finished++
}

func newTestRunner(provider llm.LLMProvider, publisher *recordingPublisher) *Runner {
	gw := NewGateway(provider, nopLogger{}, time.Second)
	return NewRunner(gw, nopLogger{}, publisher, 0)
}

func echoProvider() *fakeProvider {
	calls := 0
	return &fakeProvider{fn: func(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
		calls++
		return fmt.Sprintf("response %d", calls), nil
	}}
}

func TestRunExpertPanelFullRun(t *testing.T) {
	publisher := &recordingPublisher{}
	runner := newTestRunner(echoProvider(), publisher)

	session := entity.NewRelaySession("sid", entity.ModeExpertPanel, "the prompt", entity.Progress{TotalPairs: 10})
	runner.RunExpertPanel(context.Background(), session)

	require.Equal(t, entity.StatusCompleted, session.Status())
	require.NotNil(t, session.CompletedAt())

	results := session.PairResults()
	require.Len(t, results, 10)

	roster := agents.All()
	for i, pr := range results {
		assert.Equal(t, i+1, pr.PairNumber)
		assert.Equal(t, roster[2*i].Name, pr.AgentA.Name)
		assert.Equal(t, roster[2*i+1].Name, pr.AgentB.Name)
		assert.True(t, pr.AgentA.Success)
		assert.True(t, pr.AgentB.Success)
		assert.NotEmpty(t, pr.AgentA.Response)
		assert.NotEmpty(t, pr.AgentB.Response)
	}

	assert.Equal(t, 1, publisher.started)
	assert.Equal(t, 10, publisher.steps)
	assert.Equal(t, 1, publisher.finished)
}

func TestRunExpertPanelStopPreservesPartialResults(t *testing.T) {
	publisher := &recordingPublisher{}

	var session *entity.RelaySession
	calls := 0
	provider := &fakeProvider{fn: func(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
		calls++
		// Two calls per pair; stop after the second pair is underway.
		if calls == 4 {
			session.RequestStop()
		}
		return "ok", nil
	}}
	runner := newTestRunner(provider, publisher)

	session = entity.NewRelaySession("sid", entity.ModeExpertPanel, "p", entity.Progress{TotalPairs: 10})
	runner.RunExpertPanel(context.Background(), session)

	assert.Equal(t, entity.StatusStopped, session.Status())
	assert.Len(t, session.PairResults(), 2)
}

func TestRunConferenceChainStickyContext(t *testing.T) {
	publisher := &recordingPublisher{}

	var messages []string
	calls := 0
	provider := &fakeProvider{fn: func(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
		calls++
		messages = append(messages, history[1].Content)
		return fmt.Sprintf("insight %d", calls), nil
	}}
	runner := newTestRunner(provider, publisher)

	session := entity.NewRelaySession("sid", entity.ModeConferenceChain, "Evaluate renewable energy policy", entity.Progress{TotalAgents: 3})
	runner.RunConferenceChain(context.Background(), session, 3)

	require.Equal(t, entity.StatusCompleted, session.Status())
	results := session.ChainResults()
	require.Len(t, results, 3)

	roster := agents.All()
	for i, cr := range results {
		assert.Equal(t, i+1, cr.AgentNumber)
		assert.Equal(t, roster[i].Name, cr.AgentName)
		assert.True(t, cr.Success)
		assert.NotEmpty(t, cr.Response)
	}

	assert.False(t, results[0].StickyContextUsed)
	assert.True(t, results[1].StickyContextUsed)
	assert.True(t, results[2].StickyContextUsed)

	// Step 1 gets the raw prompt; later steps embed prompt + previous response.
	require.Len(t, messages, 3)
	assert.Equal(t, "Evaluate renewable energy policy", messages[0])
	assert.Contains(t, messages[1], "Evaluate renewable energy policy")
	assert.Contains(t, messages[1], "insight 1")
	assert.Contains(t, messages[2], "insight 2")
	assert.Contains(t, messages[2], "Build upon this insight")
}

func TestRunConferenceChainContinuesPastFailure(t *testing.T) {
	publisher := &recordingPublisher{}

	calls := 0
	provider := &fakeProvider{fn: func(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
		calls++
		if calls == 2 {
			return "", errors.New("model unavailable")
		}
		return fmt.Sprintf("insight %d", calls), nil
	}}
	runner := newTestRunner(provider, publisher)

	session := entity.NewRelaySession("sid", entity.ModeConferenceChain, "p", entity.Progress{TotalAgents: 3})
	runner.RunConferenceChain(context.Background(), session, 3)

	require.Equal(t, entity.StatusCompleted, session.Status())
	results := session.ChainResults()
	require.Len(t, results, 3)

	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.Equal(t, "model unavailable", results[1].Error)
	assert.Contains(t, results[1].Response, results[1].AgentName)
	assert.True(t, results[2].Success)

	// The failed link still feeds the next step as sticky context.
	assert.True(t, results[2].StickyContextUsed)
}

func TestClampAgentCount(t *testing.T) {
	assert.Equal(t, agents.Count(), ClampAgentCount(0))
	assert.Equal(t, agents.Count(), ClampAgentCount(-5))
	assert.Equal(t, agents.Count(), ClampAgentCount(agents.Count()+10))
	assert.Equal(t, 3, ClampAgentCount(3))
}
