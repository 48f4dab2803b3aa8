package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycleTransitions(t *testing.T) {
	s := NewRelaySession("sid", ModeExpertPanel, "p", Progress{TotalPairs: 10})
	assert.Equal(t, StatusStarting, s.Status())
	assert.False(t, s.Terminal())
	assert.Nil(t, s.CompletedAt())

	s.MarkRunning()
	assert.Equal(t, StatusRunning, s.Status())

	s.MarkCompleted()
	assert.Equal(t, StatusCompleted, s.Status())
	assert.True(t, s.Terminal())
	require.NotNil(t, s.CompletedAt())
}

func TestRequestStopWinsOverCompletion(t *testing.T) {
	s := NewRelaySession("sid", ModeExpertPanel, "p", Progress{})
	s.MarkRunning()

	require.True(t, s.RequestStop())
	assert.Equal(t, StatusStopped, s.Status())
	assert.True(t, s.StopRequested())

	// Worker reaching the end must not overwrite the stop.
	s.MarkCompleted()
	assert.Equal(t, StatusStopped, s.Status())
}

func TestRequestStopOnTerminalSessionIsNoop(t *testing.T) {
	s := NewRelaySession("sid", ModeConferenceChain, "p", Progress{})
	s.MarkRunning()
	s.MarkCompleted()
	completedAt := s.CompletedAt()

	assert.False(t, s.RequestStop())
	assert.Equal(t, StatusCompleted, s.Status())
	assert.Equal(t, completedAt, s.CompletedAt())
}

func TestResultSnapshotsAreCopies(t *testing.T) {
	s := NewRelaySession("sid", ModeConferenceChain, "p", Progress{})
	s.AppendChainResult(ChainResult{AgentNumber: 1, Response: "first", Timestamp: time.Now()})

	snapshot := s.ChainResults()
	require.Len(t, snapshot, 1)

	s.AppendChainResult(ChainResult{AgentNumber: 2, Response: "second", Timestamp: time.Now()})
	assert.Len(t, snapshot, 1, "earlier snapshot must not grow")
	assert.Len(t, s.ChainResults(), 2)
	assert.Equal(t, 2, s.ResultCount())

	last, ok := s.LastChainResponse()
	require.True(t, ok)
	assert.Equal(t, "second", last)
}

func TestProgressSnapshotCopiesAgentList(t *testing.T) {
	s := NewRelaySession("sid", ModeExpertPanel, "p", Progress{
		CurrentPair:   1,
		TotalPairs:    10,
		CurrentAgents: []string{"A", "B"},
	})

	snap := s.ProgressSnapshot()
	snap.CurrentAgents[0] = "mutated"

	assert.Equal(t, "A", s.ProgressSnapshot().CurrentAgents[0])
}

func TestResultCountPerMode(t *testing.T) {
	panel := NewRelaySession("a", ModeExpertPanel, "p", Progress{})
	panel.AppendPairResult(PairResult{PairNumber: 1})
	assert.Equal(t, 1, panel.ResultCount())

	chain := NewRelaySession("b", ModeConferenceChain, "p", Progress{})
	assert.Equal(t, 0, chain.ResultCount())
	_, ok := chain.LastChainResponse()
	assert.False(t, ok)
}
