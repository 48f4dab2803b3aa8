package relay

import (
	"context"
	"fmt"
	"time"

	"promptlink-be/internal/constant"
	"promptlink-be/internal/entity"
	"promptlink-be/pkg/agents"
)

// ClampAgentCount bounds a requested chain length to the directory size.
// Non-positive requests fall back to the full directory.
func ClampAgentCount(requested int) int {
	if requested <= 0 || requested > agents.Count() {
		return agents.Count()
	}
	return requested
}

// RunConferenceChain executes Conference Chain mode: agents in directory
// order, each step after the first embedding the previous step's response as
// sticky context. The chain never stops because one link failed; a degraded
// call is recorded with success=false and the run continues.
func (r *Runner) RunConferenceChain(ctx context.Context, session *entity.RelaySession, maxAgents int) {
	session.MarkRunning()

	roster := agents.All()
	total := ClampAgentCount(maxAgents)
	r.events.PublishSessionStarted(session.ID, session.Mode, total)

	for i := 0; i < total; i++ {
		if session.StopRequested() {
			r.logger.Info("ConferenceChain", "Stop observed, leaving partial results", map[string]interface{}{
				"session_id": session.ID,
				"completed":  i,
			})
			break
		}

		agent := roster[i]
		session.SetProgress(entity.Progress{
			CurrentAgent:     i + 1,
			TotalAgents:      total,
			CurrentAgentName: agent.Name,
		})

		message := session.Prompt
		stickyUsed := false
		if previous, ok := session.LastChainResponse(); ok && i > 0 {
			message = fmt.Sprintf(constant.StickyContextTemplate, session.Prompt, previous)
			stickyUsed = true
		}

		outcome := r.gateway.Complete(ctx, agent, message)

		result := entity.ChainResult{
			AgentNumber:       i + 1,
			AgentName:         agent.Name,
			AgentSpecialty:    agent.Specialty,
			Response:          outcome.Text,
			StickyContextUsed: stickyUsed,
			Success:           outcome.Success,
			Timestamp:         time.Now().UTC(),
		}
		if !outcome.Success {
			result.Error = outcome.ErrDetail
		}
		session.AppendChainResult(result)

		r.events.PublishStepCompleted(session.ID, session.Mode, i+1, total,
			[]string{agent.Name}, outcome.Success)

		r.pause()
	}

	session.MarkCompleted()
	r.events.PublishSessionFinished(session.ID, session.Mode, session.Status(), session.ResultCount())
	r.logger.Info("ConferenceChain", "Session finished", map[string]interface{}{
		"session_id": session.ID,
		"status":     session.Status(),
		"agents":     session.ResultCount(),
	})
}
