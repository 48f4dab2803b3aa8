package relay

import (
	"context"
	"time"

	"promptlink-be/internal/entity"
	"promptlink-be/pkg/agents"
)

// RunExpertPanel executes Expert Panel mode: consecutive agent pairs answer
// the original prompt independently, one PairResult per pair. A stop request
// is honored at pair boundaries; pairs already recorded stay in place.
func (r *Runner) RunExpertPanel(ctx context.Context, session *entity.RelaySession) {
	session.MarkRunning()

	pairs := agents.Pairs()
	total := len(pairs)
	r.events.PublishSessionStarted(session.ID, session.Mode, total)

	for i, pair := range pairs {
		if session.StopRequested() {
			r.logger.Info("ExpertPanel", "Stop observed, leaving partial results", map[string]interface{}{
				"session_id": session.ID,
				"completed":  i,
			})
			break
		}

		session.SetProgress(entity.Progress{
			CurrentPair:   i + 1,
			TotalPairs:    total,
			CurrentAgents: []string{pair.A.Name, pair.B.Name},
		})

		// Both agents see the same original prompt; no cross-talk inside a pair.
		outcomeA := r.gateway.Complete(ctx, pair.A, session.Prompt)
		outcomeB := r.gateway.Complete(ctx, pair.B, session.Prompt)

		result := entity.PairResult{
			PairNumber: i + 1,
			AgentA: entity.AgentOutcome{
				Name:      pair.A.Name,
				Specialty: pair.A.Specialty,
				Response:  outcomeA.Text,
				Success:   outcomeA.Success,
			},
			AgentB: entity.AgentOutcome{
				Name:      pair.B.Name,
				Specialty: pair.B.Specialty,
				Response:  outcomeB.Text,
				Success:   outcomeB.Success,
			},
			Timestamp: time.Now().UTC(),
		}
		session.AppendPairResult(result)

		r.events.PublishStepCompleted(session.ID, session.Mode, i+1, total,
			[]string{pair.A.Name, pair.B.Name}, outcomeA.Success && outcomeB.Success)

		r.pause()
	}

	session.MarkCompleted()
	r.events.PublishSessionFinished(session.ID, session.Mode, session.Status(), session.ResultCount())
	r.logger.Info("ExpertPanel", "Session finished", map[string]interface{}{
		"session_id": session.ID,
		"status":     session.Status(),
		"pairs":      session.ResultCount(),
	})
}
