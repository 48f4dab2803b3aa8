package relay

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"promptlink-be/internal/constant"
	"promptlink-be/internal/pkg/logger"
	"promptlink-be/pkg/agents"
	"promptlink-be/pkg/llm"
)

// Completion is the gateway's answer for one agent call. Success is false
// when the upstream call degraded and Text carries a fallback response; the
// flag is set here, at the point of failure, never inferred from the text.
type Completion struct {
	Text      string
	Success   bool
	ErrDetail string
}

// Gateway absorbs upstream failure. Workers run fully sequentially, so one
// slow or broken agent must not abort a whole multi-step session: every
// failure becomes a fallback completion, never an error.
type Gateway struct {
	provider llm.LLMProvider
	logger   logger.ILogger
	timeout  time.Duration
}

func NewGateway(provider llm.LLMProvider, log logger.ILogger, timeout time.Duration) *Gateway {
	return &Gateway{
		provider: provider,
		logger:   log,
		timeout:  timeout,
	}
}

// Complete sends one message to one agent. The system message is derived from
// the agent's name and specialty; sampling configuration is fixed.
func (g *Gateway) Complete(ctx context.Context, agent agents.Agent, message string) Completion {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	history := []llm.Message{
		{
			Role:    constant.ChatMessageRoleSystem,
			Content: fmt.Sprintf(constant.AgentSystemPromptTemplate, agent.Name, agent.Specialty),
		},
		{
			Role:    constant.ChatMessageRoleUser,
			Content: message,
		},
	}

	text, err := g.provider.Chat(callCtx, history,
		llm.WithModel(agent.Model),
		llm.WithMaxTokens(constant.RelayMaxTokens),
		llm.WithTemperature(constant.RelayTemperature),
	)
	if err != nil {
		g.logger.Warn("Gateway", "Agent call degraded to fallback", map[string]interface{}{
			"agent": agent.Name,
			"model": agent.Model,
			"error": err.Error(),
		})
		return Completion{
			Text:      FallbackResponse(agent.Name),
			Success:   false,
			ErrDetail: err.Error(),
		}
	}

	return Completion{Text: text, Success: true}
}

// FallbackResponse builds the filler text substituted for a failed agent
// call: a random opener plus a note naming the agent.
func FallbackResponse(agentName string) string {
	intro := constant.FallbackResponses[rand.Intn(len(constant.FallbackResponses))]
	return intro + fmt.Sprintf(constant.FallbackNoteTemplate, agentName)
}
