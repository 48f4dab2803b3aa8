package dto

import "time"

type StartExpertPanelRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type StartConferenceChainRequest struct {
	Prompt    string `json:"prompt" validate:"required"`
	MaxAgents int    `json:"max_agents"`
}

type StartSessionResponse struct {
	Status      string `json:"status"`
	SessionID   string `json:"session_id"`
	Mode        string `json:"mode"`
	TotalPairs  int    `json:"total_pairs,omitempty"`
	TotalAgents int    `json:"total_agents,omitempty"`
	Message     string `json:"message"`
}

type StopSessionResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// SessionStatusResponse is the polling snapshot. The mode decides which of
// the progress field groups is present; pointers keep zero progress values
// visible without leaking the other mode's fields.
type SessionStatusResponse struct {
	Status    string    `json:"status"`
	Mode      string    `json:"mode"`
	CreatedAt time.Time `json:"created_at"`

	// expert_panel
	CurrentPair   *int     `json:"current_pair,omitempty"`
	TotalPairs    *int     `json:"total_pairs,omitempty"`
	CurrentAgents []string `json:"current_agents,omitempty"`

	// conference_chain
	CurrentAgent     *int   `json:"current_agent,omitempty"`
	TotalAgents      *int   `json:"total_agents,omitempty"`
	CurrentAgentName string `json:"current_agent_name,omitempty"`

	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	PartialResults *int       `json:"partial_results,omitempty"`
}

// SessionResultsResponse is returned once a session is terminal. Results holds
// []entity.PairResult or []entity.ChainResult depending on mode.
type SessionResultsResponse struct {
	Completed   bool        `json:"completed"`
	CompletedAt *time.Time  `json:"completed_at"`
	CreatedAt   time.Time   `json:"created_at"`
	Mode        string      `json:"mode"`
	Prompt      string      `json:"prompt"`
	Results     interface{} `json:"results"`
}

// PendingResultsResponse is the non-error answer for a session still running.
type PendingResultsResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Progress string `json:"progress"`
}

type HTMLReportResponse struct {
	Status string `json:"status"`
	HTML   string `json:"html"`
	Mode   string `json:"mode"`
}

type CleanupResponse struct {
	Status            string `json:"status"`
	SessionsRemoved   int    `json:"sessions_removed"`
	RemainingSessions int    `json:"remaining_sessions"`
}
