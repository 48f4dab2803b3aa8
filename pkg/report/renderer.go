// Package report renders a finished relay session as a standalone HTML
// document. Rendering is pure: no store or network access, deterministic for
// a given session snapshot. Response text is treated as opaque content and
// rendered whitespace-preserving via pre-wrap.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"promptlink-be/internal/entity"
)

type expertPanelData struct {
	Prompt      string
	GeneratedAt string
	Results     []entity.PairResult
}

type conferenceChainData struct {
	Prompt      string
	GeneratedAt string
	Results     []entity.ChainResult
}

var expertPanelTemplate = template.Must(template.New("expert_panel").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Expert Panel Analysis</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; margin: 0; padding: 20px; color: #333; }
        .container { max-width: 1200px; margin: 0 auto; }
        .header { text-align: center; margin-bottom: 30px; }
        .prompt { background-color: #f5f5f5; padding: 15px; border-radius: 5px; margin-bottom: 20px; }
        .pair { margin-bottom: 30px; border: 1px solid #ddd; border-radius: 5px; overflow: hidden; }
        .pair-header { background-color: #2c3e50; color: white; padding: 10px 15px; display: flex; justify-content: space-between; }
        .agent { padding: 15px; }
        .agent:first-child { border-bottom: 1px solid #ddd; }
        .agent-name { font-weight: bold; color: #2980b9; margin-bottom: 5px; }
        .agent-specialty { font-style: italic; color: #7f8c8d; margin-bottom: 10px; }
        .response { white-space: pre-wrap; }
        .footer { text-align: center; margin-top: 30px; font-size: 0.8em; color: #7f8c8d; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Expert Panel Analysis</h1>
            <p>Generated on {{.GeneratedAt}} UTC</p>
        </div>
        <div class="prompt">
            <h3>Prompt:</h3>
            <p>{{.Prompt}}</p>
        </div>
        <h2>Expert Analysis ({{len .Results}} Pairs)</h2>
{{- range .Results}}
        <div class="pair">
            <div class="pair-header">
                <span>Pair {{.PairNumber}}</span>
                <span>{{.Timestamp.Format "2006-01-02 15:04:05"}}</span>
            </div>
            <div class="agent">
                <div class="agent-name">{{.AgentA.Name}}</div>
                <div class="agent-specialty">Specialty: {{.AgentA.Specialty}}</div>
                <div class="response">{{.AgentA.Response}}</div>
            </div>
            <div class="agent">
                <div class="agent-name">{{.AgentB.Name}}</div>
                <div class="agent-specialty">Specialty: {{.AgentB.Specialty}}</div>
                <div class="response">{{.AgentB.Response}}</div>
            </div>
        </div>
{{- end}}
        <div class="footer">
            <p>Generated by PromptLink AI Orchestration Platform</p>
        </div>
    </div>
</body>
</html>
`))

var conferenceChainTemplate = template.Must(template.New("conference_chain").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Conference Chain Analysis</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; margin: 0; padding: 20px; color: #333; }
        .container { max-width: 1200px; margin: 0 auto; }
        .header { text-align: center; margin-bottom: 30px; }
        .prompt { background-color: #f5f5f5; padding: 15px; border-radius: 5px; margin-bottom: 20px; }
        .agent { margin-bottom: 20px; border: 1px solid #ddd; border-radius: 5px; overflow: hidden; }
        .agent-header { background-color: #27ae60; color: white; padding: 10px 15px; display: flex; justify-content: space-between; }
        .agent-content { padding: 15px; }
        .agent-name { font-weight: bold; color: #2980b9; margin-bottom: 5px; }
        .agent-specialty { font-style: italic; color: #7f8c8d; margin-bottom: 10px; }
        .response { white-space: pre-wrap; }
        .footer { text-align: center; margin-top: 30px; font-size: 0.8em; color: #7f8c8d; }
        .sticky-context { background-color: #fef9e7; padding: 10px; border-left: 3px solid #f39c12; margin-top: 10px; font-size: 0.9em; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Conference Chain Analysis</h1>
            <p>Generated on {{.GeneratedAt}} UTC</p>
        </div>
        <div class="prompt">
            <h3>Prompt:</h3>
            <p>{{.Prompt}}</p>
        </div>
        <h2>Sequential Expert Analysis</h2>
{{- range .Results}}
        <div class="agent">
            <div class="agent-header">
                <span>Agent {{.AgentNumber}}</span>
                <span>{{.Timestamp.Format "2006-01-02 15:04:05"}}</span>
            </div>
            <div class="agent-content">
                <div class="agent-name">{{.AgentName}}</div>
                <div class="agent-specialty">Specialty: {{.AgentSpecialty}}</div>
                <div class="response">{{.Response}}</div>
{{- if .StickyContextUsed}}
                <div class="sticky-context">Building on previous insights</div>
{{- end}}
            </div>
        </div>
{{- end}}
        <div class="footer">
            <p>Generated by PromptLink AI Orchestration Platform</p>
        </div>
    </div>
</body>
</html>
`))

// Render produces the HTML report for a terminal session. The caller enforces
// the terminal-state precondition; Render itself only dispatches on mode.
// The embedded generation timestamp is the session's completion time, so
// repeated renders of the same session are byte-identical.
func Render(session *entity.RelaySession) (string, error) {
	generatedAt := time.Now().UTC()
	if completed := session.CompletedAt(); completed != nil {
		generatedAt = completed.UTC()
	}

	var buf bytes.Buffer
	switch session.Mode {
	case entity.ModeExpertPanel:
		data := expertPanelData{
			Prompt:      session.Prompt,
			GeneratedAt: generatedAt.Format("2006-01-02 15:04:05"),
			Results:     session.PairResults(),
		}
		if err := expertPanelTemplate.Execute(&buf, data); err != nil {
			return "", fmt.Errorf("render expert panel report: %w", err)
		}
	case entity.ModeConferenceChain:
		data := conferenceChainData{
			Prompt:      session.Prompt,
			GeneratedAt: generatedAt.Format("2006-01-02 15:04:05"),
			Results:     session.ChainResults(),
		}
		if err := conferenceChainTemplate.Execute(&buf, data); err != nil {
			return "", fmt.Errorf("render conference chain report: %w", err)
		}
	default:
		return "", fmt.Errorf("unknown session mode: %s", session.Mode)
	}

	return buf.String(), nil
}
