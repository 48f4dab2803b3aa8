package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"promptlink-be/internal/dto"
	"promptlink-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRelayService returns canned responses and records the arguments of the
// last call, so these tests cover only HTTP wiring.
type stubRelayService struct {
	lastPrompt    string
	lastMaxAgents int
	lastSessionID string

	startRes   *dto.StartSessionResponse
	stopRes    *dto.StopSessionResponse
	statusRes  *dto.SessionStatusResponse
	resultsRes *dto.SessionResultsResponse
	pendingRes *dto.PendingResultsResponse
	reportRes  *dto.HTMLReportResponse
	cleanupRes *dto.CleanupResponse
	err        error
}

func (s *stubRelayService) StartExpertPanel(prompt string) (*dto.StartSessionResponse, error) {
	s.lastPrompt = prompt
	return s.startRes, s.err
}

func (s *stubRelayService) StartConferenceChain(prompt string, maxAgents int) (*dto.StartSessionResponse, error) {
	s.lastPrompt = prompt
	s.lastMaxAgents = maxAgents
	return s.startRes, s.err
}

func (s *stubRelayService) Stop(sessionID string) (*dto.StopSessionResponse, error) {
	s.lastSessionID = sessionID
	return s.stopRes, s.err
}

func (s *stubRelayService) Status(sessionID string) (*dto.SessionStatusResponse, error) {
	s.lastSessionID = sessionID
	return s.statusRes, s.err
}

func (s *stubRelayService) Results(sessionID string) (*dto.SessionResultsResponse, *dto.PendingResultsResponse, error) {
	s.lastSessionID = sessionID
	return s.resultsRes, s.pendingRes, s.err
}

func (s *stubRelayService) HTMLReport(sessionID string) (*dto.HTMLReportResponse, error) {
	s.lastSessionID = sessionID
	return s.reportRes, s.err
}

func (s *stubRelayService) Cleanup() (*dto.CleanupResponse, error) {
	return s.cleanupRes, s.err
}

func newTestApp(stub *stubRelayService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewRelayController(stub).RegisterRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&decoded))
	return res, decoded
}

func TestStartExpertPanelEndpoint(t *testing.T) {
	stub := &stubRelayService{startRes: &dto.StartSessionResponse{
		Status:     "started",
		SessionID:  "abc",
		Mode:       "expert_panel",
		TotalPairs: 10,
		Message:    "Expert Panel Mode started - 10 pairs analyzing independently",
	}}
	app := newTestApp(stub)

	res, body := doJSON(t, app, http.MethodPost, "/revolutionary-relay/start-expert-panel",
		dto.StartExpertPanelRequest{Prompt: "analyze this"})

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "analyze this", stub.lastPrompt)
	assert.Equal(t, "started", body["status"])
	assert.Equal(t, "abc", body["session_id"])
	assert.EqualValues(t, 10, body["total_pairs"])
}

func TestStartExpertPanelMissingPromptIs400(t *testing.T) {
	app := newTestApp(&stubRelayService{})

	res, body := doJSON(t, app, http.MethodPost, "/revolutionary-relay/start-expert-panel",
		map[string]string{})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "prompt is required", body["message"])
}

func TestStartConferenceChainPassesMaxAgents(t *testing.T) {
	stub := &stubRelayService{startRes: &dto.StartSessionResponse{
		Status: "started", SessionID: "abc", Mode: "conference_chain", TotalAgents: 5,
	}}
	app := newTestApp(stub)

	res, body := doJSON(t, app, http.MethodPost, "/revolutionary-relay/start-conference-chain",
		dto.StartConferenceChainRequest{Prompt: "q", MaxAgents: 5})

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 5, stub.lastMaxAgents)
	assert.EqualValues(t, 5, body["total_agents"])
}

func TestUnknownSessionIs404(t *testing.T) {
	stub := &stubRelayService{err: serverutils.NewNotFound("Session not found")}
	app := newTestApp(stub)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/revolutionary-relay/stop-session/nope"},
		{http.MethodGet, "/revolutionary-relay/get-session-status/nope"},
		{http.MethodGet, "/revolutionary-relay/get-session-results/nope"},
		{http.MethodGet, "/revolutionary-relay/generate-html-report/nope"},
	} {
		res, body := doJSON(t, app, tc.method, tc.path, nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode, tc.path)
		assert.Equal(t, "error", body["status"], tc.path)
		assert.Equal(t, "Session not found", body["message"], tc.path)
		assert.Equal(t, "nope", stub.lastSessionID, tc.path)
	}
}

func TestGetSessionResultsPendingBody(t *testing.T) {
	stub := &stubRelayService{pendingRes: &dto.PendingResultsResponse{
		Status:   "pending",
		Message:  "Session is still running",
		Progress: "3 responses so far",
	}}
	app := newTestApp(stub)

	res, body := doJSON(t, app, http.MethodGet, "/revolutionary-relay/get-session-results/abc", nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, "3 responses so far", body["progress"])
}

func TestGetSessionResultsCompletedBody(t *testing.T) {
	stub := &stubRelayService{resultsRes: &dto.SessionResultsResponse{
		Completed: true,
		Mode:      "expert_panel",
		Prompt:    "q",
		Results:   []string{"r1"},
	}}
	app := newTestApp(stub)

	res, body := doJSON(t, app, http.MethodGet, "/revolutionary-relay/get-session-results/abc", nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, true, body["completed"])
	assert.Equal(t, "q", body["prompt"])
}

func TestGenerateHTMLReportNotReadyIsPending400(t *testing.T) {
	stub := &stubRelayService{err: serverutils.NewNotReady("Session is still running. HTML report not available yet.")}
	app := newTestApp(stub)

	res, body := doJSON(t, app, http.MethodGet, "/revolutionary-relay/generate-html-report/abc", nil)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "pending", body["status"])
}

func TestCleanupOldSessionsEndpoint(t *testing.T) {
	stub := &stubRelayService{cleanupRes: &dto.CleanupResponse{
		Status: "success", SessionsRemoved: 2, RemainingSessions: 1,
	}}
	app := newTestApp(stub)

	res, body := doJSON(t, app, http.MethodPost, "/revolutionary-relay/cleanup-old-sessions", nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.EqualValues(t, 2, body["sessions_removed"])
	assert.EqualValues(t, 1, body["remaining_sessions"])
}
