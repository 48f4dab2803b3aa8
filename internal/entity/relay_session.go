package entity

import (
	"sync"
	"time"
)

// Session modes
const (
	ModeExpertPanel     = "expert_panel"
	ModeConferenceChain = "conference_chain"
)

// Session statuses. A session is terminal once it reaches StatusCompleted or
// StatusStopped; after that only the cleanup operation touches it.
const (
	StatusStarting  = "starting"
	StatusRunning   = "running"
	StatusStopped   = "stopped"
	StatusCompleted = "completed"
)

// AgentOutcome is one agent's answer inside a pair. Success is false when the
// gateway degraded to a fallback response.
type AgentOutcome struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Response  string `json:"response"`
	Success   bool   `json:"success"`
}

// PairResult is one Expert Panel step: two independent answers to the same
// prompt.
type PairResult struct {
	PairNumber int          `json:"pair_number"`
	AgentA     AgentOutcome `json:"agent_a"`
	AgentB     AgentOutcome `json:"agent_b"`
	Timestamp  time.Time    `json:"timestamp"`
}

// ChainResult is one Conference Chain step.
type ChainResult struct {
	AgentNumber       int       `json:"agent_number"`
	AgentName         string    `json:"agent_name"`
	AgentSpecialty    string    `json:"agent_specialty"`
	Response          string    `json:"response"`
	StickyContextUsed bool      `json:"sticky_context_used"`
	Success           bool      `json:"success"`
	Timestamp         time.Time `json:"timestamp"`
	Error             string    `json:"error,omitempty"`
}

// Progress is a point-in-time view of how far a session has advanced. The
// mode decides which fields are meaningful.
type Progress struct {
	// expert_panel
	CurrentPair   int
	TotalPairs    int
	CurrentAgents []string

	// conference_chain
	CurrentAgent     int
	TotalAgents      int
	CurrentAgentName string
}

// RelaySession is one orchestration run. Every mutable field is guarded by mu:
// the owning worker is the only writer for progress and results, but status
// can also be flipped to "stopped" by a concurrent stop request, so all access
// goes through the locked accessors. Pollers read copies and may legitimately
// observe fewer results than the final count while the run is in flight.
type RelaySession struct {
	ID        string
	Mode      string
	Prompt    string
	CreatedAt time.Time

	mu           sync.RWMutex
	status       string
	completedAt  *time.Time
	progress     Progress
	pairResults  []PairResult
	chainResults []ChainResult
}

// NewRelaySession creates a session in the starting state.
func NewRelaySession(id, mode, prompt string, progress Progress) *RelaySession {
	return &RelaySession{
		ID:        id,
		Mode:      mode,
		Prompt:    prompt,
		CreatedAt: time.Now().UTC(),
		status:    StatusStarting,
		progress:  progress,
	}
}

func (s *RelaySession) Status() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Terminal reports whether the session reached completed or stopped.
func (s *RelaySession) Terminal() bool {
	st := s.Status()
	return st == StatusCompleted || st == StatusStopped
}

// MarkRunning is called by the worker as its first action.
func (s *RelaySession) MarkRunning() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == StatusStarting {
		s.status = StatusRunning
	}
}

// RequestStop flips a non-terminal session to stopped. The worker observes the
// flag at the next step boundary; an in-flight gateway call is not interrupted.
// Returns false when the session was already terminal.
func (s *RelaySession) RequestStop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == StatusCompleted || s.status == StatusStopped {
		return false
	}
	s.status = StatusStopped
	now := time.Now().UTC()
	s.completedAt = &now
	return true
}

// StopRequested is the worker-side check performed between steps.
func (s *RelaySession) StopRequested() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status == StatusStopped
}

// MarkCompleted ends an uninterrupted run. A stop that won the race is
// preserved, never overwritten.
func (s *RelaySession) MarkCompleted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == StatusStopped {
		return
	}
	s.status = StatusCompleted
	now := time.Now().UTC()
	s.completedAt = &now
}

func (s *RelaySession) CompletedAt() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.completedAt == nil {
		return nil
	}
	t := *s.completedAt
	return &t
}

// SetProgress replaces the progress snapshot. Only the owning worker calls it.
func (s *RelaySession) SetProgress(p Progress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = p
}

func (s *RelaySession) ProgressSnapshot() Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.progress
	p.CurrentAgents = append([]string(nil), s.progress.CurrentAgents...)
	return p
}

func (s *RelaySession) AppendPairResult(r PairResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pairResults = append(s.pairResults, r)
}

func (s *RelaySession) AppendChainResult(r ChainResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chainResults = append(s.chainResults, r)
}

func (s *RelaySession) PairResults() []PairResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]PairResult(nil), s.pairResults...)
}

func (s *RelaySession) ChainResults() []ChainResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ChainResult(nil), s.chainResults...)
}

// LastChainResponse returns the response text of the latest chain step, used
// as the sticky context for the next one.
func (s *RelaySession) LastChainResponse() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.chainResults) == 0 {
		return "", false
	}
	return s.chainResults[len(s.chainResults)-1].Response, true
}

// ResultCount is the number of appended steps, regardless of mode.
func (s *RelaySession) ResultCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Mode == ModeExpertPanel {
		return len(s.pairResults)
	}
	return len(s.chainResults)
}
