package constant

const (
	ChatMessageRoleUser   = "user"
	ChatMessageRoleSystem = "system"

	// Fixed sampling configuration for every relay call. Not user-tunable so
	// behavior stays comparable across agents.
	RelayMaxTokens   = 2000
	RelayTemperature = 0.7

	// AgentSystemPromptTemplate frames every agent call. Placeholders: agent
	// name, agent specialty.
	AgentSystemPromptTemplate = "You are %s, specializing in %s. Provide insightful, collaborative responses that build upon previous insights when available."

	// StickyContextTemplate composes the message for chain steps after the
	// first one. Placeholders: original prompt, previous response.
	StickyContextTemplate = "ORIGINAL PROMPT: %s\n\nPREVIOUS INSIGHT: %s\n\nBuild upon this insight with your expertise:"

	// FallbackNoteTemplate is appended to a filler phrase when an agent call
	// degrades. Placeholder: agent name.
	FallbackNoteTemplate = " [Note: %s encountered a technical limitation, so this is a fallback response.]"
)

// FallbackResponses are the filler openers substituted when an upstream call
// fails. Workflow continuity matters more than the missing answer.
var FallbackResponses = []string{
	"Let me approach this from a different angle...",
	"Building on what we know so far...",
	"Contributing an alternative perspective...",
	"Adding to our collective analysis...",
	"Here's my specialized insight on this topic...",
}
