package service

import (
	"context"
	"fmt"
	"time"

	"promptlink-be/internal/dto"
	"promptlink-be/internal/entity"
	"promptlink-be/internal/pkg/logger"
	"promptlink-be/internal/pkg/serverutils"
	"promptlink-be/internal/repository/memory"
	"promptlink-be/pkg/agents"
	"promptlink-be/pkg/relay"
	"promptlink-be/pkg/report"

	"github.com/google/uuid"
)

type IRelayService interface {
	StartExpertPanel(prompt string) (*dto.StartSessionResponse, error)
	StartConferenceChain(prompt string, maxAgents int) (*dto.StartSessionResponse, error)
	Stop(sessionID string) (*dto.StopSessionResponse, error)
	Status(sessionID string) (*dto.SessionStatusResponse, error)
	Results(sessionID string) (*dto.SessionResultsResponse, *dto.PendingResultsResponse, error)
	HTMLReport(sessionID string) (*dto.HTMLReportResponse, error)
	Cleanup() (*dto.CleanupResponse, error)
}

type relayService struct {
	sessions   *memory.SessionRepository
	runner     *relay.Runner
	logger     logger.ILogger
	sessionTTL time.Duration
}

func NewRelayService(
	sessions *memory.SessionRepository,
	runner *relay.Runner,
	log logger.ILogger,
	sessionTTL time.Duration,
) IRelayService {
	return &relayService{
		sessions:   sessions,
		runner:     runner,
		logger:     log,
		sessionTTL: sessionTTL,
	}
}

// StartExpertPanel creates the session record, launches the worker goroutine
// and returns immediately; clients follow up through the polling endpoints.
func (s *relayService) StartExpertPanel(prompt string) (*dto.StartSessionResponse, error) {
	if prompt == "" {
		return nil, serverutils.NewInvalidInput("Prompt is required")
	}

	totalPairs := len(agents.Pairs())
	session := entity.NewRelaySession(uuid.NewString(), entity.ModeExpertPanel, prompt, entity.Progress{
		CurrentPair:   0,
		TotalPairs:    totalPairs,
		CurrentAgents: []string{"Initializing...", "Waiting..."},
	})
	s.sessions.Save(session)

	go s.runner.RunExpertPanel(context.Background(), session)

	s.logger.Info("Relay", "Expert panel session started", map[string]interface{}{
		"session_id":  session.ID,
		"total_pairs": totalPairs,
	})

	return &dto.StartSessionResponse{
		Status:     "started",
		SessionID:  session.ID,
		Mode:       entity.ModeExpertPanel,
		TotalPairs: totalPairs,
		Message:    "Expert Panel Mode started - 10 pairs analyzing independently",
	}, nil
}

func (s *relayService) StartConferenceChain(prompt string, maxAgents int) (*dto.StartSessionResponse, error) {
	if prompt == "" {
		return nil, serverutils.NewInvalidInput("Prompt is required")
	}

	totalAgents := relay.ClampAgentCount(maxAgents)
	session := entity.NewRelaySession(uuid.NewString(), entity.ModeConferenceChain, prompt, entity.Progress{
		CurrentAgent:     0,
		TotalAgents:      totalAgents,
		CurrentAgentName: "Initializing...",
	})
	s.sessions.Save(session)

	go s.runner.RunConferenceChain(context.Background(), session, totalAgents)

	s.logger.Info("Relay", "Conference chain session started", map[string]interface{}{
		"session_id":   session.ID,
		"total_agents": totalAgents,
	})

	return &dto.StartSessionResponse{
		Status:      "started",
		SessionID:   session.ID,
		Mode:        entity.ModeConferenceChain,
		TotalAgents: totalAgents,
		Message:     "Conference Chain Mode started - agents building with sticky context",
	}, nil
}

// Stop is cooperative: it flips the status flag, the worker notices at the
// next step boundary. An in-flight gateway call is never interrupted.
func (s *relayService) Stop(sessionID string) (*dto.StopSessionResponse, error) {
	session, found := s.sessions.Get(sessionID)
	if !found {
		return nil, serverutils.NewNotFound("Session not found")
	}

	if session.RequestStop() {
		s.logger.Info("Relay", "Stop requested", map[string]interface{}{"session_id": sessionID})
	}

	return &dto.StopSessionResponse{
		Status:    "success",
		Message:   fmt.Sprintf("%s session stopped", session.Mode),
		SessionID: sessionID,
	}, nil
}

func (s *relayService) Status(sessionID string) (*dto.SessionStatusResponse, error) {
	session, found := s.sessions.Get(sessionID)
	if !found {
		return nil, serverutils.NewNotFound("Session not found")
	}

	progress := session.ProgressSnapshot()
	res := &dto.SessionStatusResponse{
		Status:    session.Status(),
		Mode:      session.Mode,
		CreatedAt: session.CreatedAt,
	}

	if session.Mode == entity.ModeExpertPanel {
		res.CurrentPair = intPtr(progress.CurrentPair)
		res.TotalPairs = intPtr(progress.TotalPairs)
		res.CurrentAgents = progress.CurrentAgents
	} else {
		res.CurrentAgent = intPtr(progress.CurrentAgent)
		res.TotalAgents = intPtr(progress.TotalAgents)
		res.CurrentAgentName = progress.CurrentAgentName
	}

	if session.Terminal() {
		res.CompletedAt = session.CompletedAt()
	}

	if count := session.ResultCount(); count > 0 {
		res.PartialResults = intPtr(count)
	}

	return res, nil
}

// Results returns the full result set for a terminal session, or a pending
// indicator (not an error) while the worker is still running.
func (s *relayService) Results(sessionID string) (*dto.SessionResultsResponse, *dto.PendingResultsResponse, error) {
	session, found := s.sessions.Get(sessionID)
	if !found {
		return nil, nil, serverutils.NewNotFound("Session not found")
	}

	if !session.Terminal() {
		return nil, &dto.PendingResultsResponse{
			Status:   "pending",
			Message:  fmt.Sprintf("Session is still %s", session.Status()),
			Progress: fmt.Sprintf("%d responses so far", session.ResultCount()),
		}, nil
	}

	var results interface{}
	if session.Mode == entity.ModeExpertPanel {
		results = session.PairResults()
	} else {
		results = session.ChainResults()
	}

	return &dto.SessionResultsResponse{
		Completed:   true,
		CompletedAt: session.CompletedAt(),
		CreatedAt:   session.CreatedAt,
		Mode:        session.Mode,
		Prompt:      session.Prompt,
		Results:     results,
	}, nil, nil
}

func (s *relayService) HTMLReport(sessionID string) (*dto.HTMLReportResponse, error) {
	session, found := s.sessions.Get(sessionID)
	if !found {
		return nil, serverutils.NewNotFound("Session not found")
	}

	if !session.Terminal() {
		return nil, serverutils.NewNotReady(
			fmt.Sprintf("Session is still %s. HTML report not available yet.", session.Status()))
	}

	html, err := report.Render(session)
	if err != nil {
		return nil, err
	}

	return &dto.HTMLReportResponse{
		Status: "success",
		HTML:   html,
		Mode:   session.Mode,
	}, nil
}

// Cleanup evicts sessions older than the configured TTL. Nothing triggers it
// automatically; a deployment is expected to schedule it.
func (s *relayService) Cleanup() (*dto.CleanupResponse, error) {
	cutoff := time.Now().UTC().Add(-s.sessionTTL)
	removed := s.sessions.DeleteOlderThan(cutoff)
	remaining := s.sessions.Count()

	s.logger.Info("Relay", "Session cleanup finished", map[string]interface{}{
		"removed":   removed,
		"remaining": remaining,
	})

	return &dto.CleanupResponse{
		Status:            "success",
		SessionsRemoved:   removed,
		RemainingSessions: remaining,
	}, nil
}

func intPtr(v int) *int {
	return &v
}
