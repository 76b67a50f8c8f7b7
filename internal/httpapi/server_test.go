package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/space42/astra/internal/careers"
	"github.com/space42/astra/internal/chat"
	"github.com/space42/astra/internal/config"
	"github.com/space42/astra/internal/intent"
	"github.com/space42/astra/internal/knowledge"
	"github.com/space42/astra/internal/observability"
	"github.com/space42/astra/internal/session"
	"github.com/space42/astra/internal/transcript"
)

var metricsSeq atomic.Int64

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := config.Config{
		SessionInactivityTimeout: 2 * time.Minute,
		AssistantTypingDelay:     0,
	}
	sessions := session.NewManager(cfg.SessionInactivityTimeout)
	store := transcript.NewInMemoryStore()
	kb := knowledge.Default()
	matcher := intent.NewMatcher(kb)
	ns := fmt.Sprintf("test_httpapi_%s_%d", time.Now().Format("150405000000000"), metricsSeq.Add(1))
	metrics := observability.NewMetrics(ns)
	svc := chat.NewService(sessions, store, matcher, metrics, cfg.AssistantTypingDelay)
	t.Cleanup(svc.Close)

	srv := New(cfg, sessions, svc, kb, careers.NewCatalog(), metrics)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func createSession(t *testing.T, ts *httptest.Server) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"user_id": "user-1"})
	res, err := http.Post(ts.URL+"/v1/chat/session", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("create session request error = %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want %d", res.StatusCode, http.StatusCreated)
	}
	var created map[string]any
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	sessionID, _ := created["session_id"].(string)
	if sessionID == "" {
		t.Fatalf("missing session_id in create response: %+v", created)
	}
	welcome, ok := created["welcome"].(map[string]any)
	if !ok {
		t.Fatalf("missing welcome turn in create response: %+v", created)
	}
	if content, _ := welcome["content"].(string); !strings.Contains(content, "Astra") {
		t.Fatalf("welcome content = %q, want introduction", content)
	}
	return sessionID
}

func TestCreateAndEndSession(t *testing.T) {
	ts := newTestServer(t)

	sessionID := createSession(t, ts)

	endRes, err := http.Post(ts.URL+"/v1/chat/session/"+sessionID+"/end", "application/json", bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("end session request error = %v", err)
	}
	defer endRes.Body.Close()
	if endRes.StatusCode != http.StatusOK {
		t.Fatalf("end status = %d, want %d", endRes.StatusCode, http.StatusOK)
	}

	// Messages to an ended session must be rejected.
	msgBody, _ := json.Marshal(map[string]string{"text": "hello"})
	msgRes, err := http.Post(ts.URL+"/v1/chat/session/"+sessionID+"/message", "application/json", bytes.NewReader(msgBody))
	if err != nil {
		t.Fatalf("message request error = %v", err)
	}
	defer msgRes.Body.Close()
	if msgRes.StatusCode != http.StatusConflict {
		t.Fatalf("message after end status = %d, want %d", msgRes.StatusCode, http.StatusConflict)
	}
}

func TestSubmitMessageGrowsTranscript(t *testing.T) {
	ts := newTestServer(t)
	sessionID := createSession(t, ts)

	msgBody, _ := json.Marshal(map[string]string{"text": "what was the merger about?"})
	msgRes, err := http.Post(ts.URL+"/v1/chat/session/"+sessionID+"/message", "application/json", bytes.NewReader(msgBody))
	if err != nil {
		t.Fatalf("message request error = %v", err)
	}
	defer msgRes.Body.Close()
	if msgRes.StatusCode != http.StatusAccepted {
		t.Fatalf("message status = %d, want %d", msgRes.StatusCode, http.StatusAccepted)
	}

	// The assistant reply is appended asynchronously; poll the transcript.
	deadline := time.Now().Add(3 * time.Second)
	var turns []map[string]any
	for time.Now().Before(deadline) {
		res, err := http.Get(ts.URL + "/v1/chat/session/" + sessionID + "/transcript")
		if err != nil {
			t.Fatalf("transcript request error = %v", err)
		}
		var payload struct {
			Turns []map[string]any `json:"turns"`
		}
		err = json.NewDecoder(res.Body).Decode(&payload)
		res.Body.Close()
		if err != nil {
			t.Fatalf("decode transcript: %v", err)
		}
		turns = payload.Turns
		if len(turns) >= 3 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if len(turns) != 3 {
		t.Fatalf("transcript length = %d, want 3 (welcome, user, assistant)", len(turns))
	}
	last := turns[len(turns)-1]
	if role, _ := last["role"].(string); role != "assistant" {
		t.Fatalf("last turn role = %q, want assistant", role)
	}
	if content, _ := last["content"].(string); !strings.Contains(content, "Bayanat") {
		t.Fatalf("merger reply = %q, want mention of Bayanat", content)
	}
}

func TestSubmitWhitespaceIsNoOp(t *testing.T) {
	ts := newTestServer(t)
	sessionID := createSession(t, ts)

	msgBody, _ := json.Marshal(map[string]string{"text": "   "})
	msgRes, err := http.Post(ts.URL+"/v1/chat/session/"+sessionID+"/message", "application/json", bytes.NewReader(msgBody))
	if err != nil {
		t.Fatalf("message request error = %v", err)
	}
	defer msgRes.Body.Close()
	if msgRes.StatusCode != http.StatusNoContent {
		t.Fatalf("whitespace message status = %d, want %d", msgRes.StatusCode, http.StatusNoContent)
	}
}

func TestMessageUnknownSession(t *testing.T) {
	ts := newTestServer(t)

	msgBody, _ := json.Marshal(map[string]string{"text": "hello"})
	res, err := http.Post(ts.URL+"/v1/chat/session/nope/message", "application/json", bytes.NewReader(msgBody))
	if err != nil {
		t.Fatalf("message request error = %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusNotFound)
	}
}

func TestCompanyAndOnboardingEndpoints(t *testing.T) {
	ts := newTestServer(t)

	infoRes, err := http.Get(ts.URL + "/v1/company/info")
	if err != nil {
		t.Fatalf("company info request error = %v", err)
	}
	defer infoRes.Body.Close()
	if infoRes.StatusCode != http.StatusOK {
		t.Fatalf("company info status = %d, want %d", infoRes.StatusCode, http.StatusOK)
	}
	var info map[string]any
	if err := json.NewDecoder(infoRes.Body).Decode(&info); err != nil {
		t.Fatalf("decode company info: %v", err)
	}
	if overview, _ := info["overview"].(string); !strings.Contains(overview, "Space42") {
		t.Fatalf("overview = %q, want Space42 description", overview)
	}

	clRes, err := http.Get(ts.URL + "/v1/onboarding/checklist")
	if err != nil {
		t.Fatalf("checklist request error = %v", err)
	}
	defer clRes.Body.Close()
	var checklist struct {
		Items []map[string]any `json:"items"`
	}
	if err := json.NewDecoder(clRes.Body).Decode(&checklist); err != nil {
		t.Fatalf("decode checklist: %v", err)
	}
	if len(checklist.Items) != 5 {
		t.Fatalf("checklist items = %d, want 5", len(checklist.Items))
	}
}

func TestCareersEndpoints(t *testing.T) {
	ts := newTestServer(t)

	listRes, err := http.Get(ts.URL + "/v1/careers/jobs")
	if err != nil {
		t.Fatalf("jobs request error = %v", err)
	}
	defer listRes.Body.Close()
	var listing struct {
		Jobs []map[string]any `json:"jobs"`
	}
	if err := json.NewDecoder(listRes.Body).Decode(&listing); err != nil {
		t.Fatalf("decode jobs: %v", err)
	}
	if len(listing.Jobs) == 0 {
		t.Fatal("jobs listing is empty")
	}

	jobRes, err := http.Get(ts.URL + "/v1/careers/jobs/geospatial-analyst")
	if err != nil {
		t.Fatalf("job request error = %v", err)
	}
	defer jobRes.Body.Close()
	if jobRes.StatusCode != http.StatusOK {
		t.Fatalf("job status = %d, want %d", jobRes.StatusCode, http.StatusOK)
	}

	missingRes, err := http.Get(ts.URL + "/v1/careers/jobs/starship-captain")
	if err != nil {
		t.Fatalf("missing job request error = %v", err)
	}
	defer missingRes.Body.Close()
	if missingRes.StatusCode != http.StatusNotFound {
		t.Fatalf("missing job status = %d, want %d", missingRes.StatusCode, http.StatusNotFound)
	}
}

func TestUIRoutes(t *testing.T) {
	ts := newTestServer(t)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	rootRes, err := client.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET / error = %v", err)
	}
	defer rootRes.Body.Close()
	if rootRes.StatusCode != http.StatusTemporaryRedirect {
		t.Fatalf("GET / status = %d, want %d", rootRes.StatusCode, http.StatusTemporaryRedirect)
	}
	if got := rootRes.Header.Get("Location"); got != "/ui/" {
		t.Fatalf("GET / location = %q, want %q", got, "/ui/")
	}

	uiRes, err := http.Get(ts.URL + "/ui/")
	if err != nil {
		t.Fatalf("GET /ui/ error = %v", err)
	}
	defer uiRes.Body.Close()
	if uiRes.StatusCode != http.StatusOK {
		t.Fatalf("GET /ui/ status = %d, want %d", uiRes.StatusCode, http.StatusOK)
	}
	var body bytes.Buffer
	if _, err := body.ReadFrom(uiRes.Body); err != nil {
		t.Fatalf("reading /ui/ body failed: %v", err)
	}
	if !strings.Contains(body.String(), "id=\"composer\"") {
		t.Fatalf("GET /ui/ body missing expected content")
	}
}

func TestPerfLatencyEndpoint(t *testing.T) {
	ts := newTestServer(t)

	res, err := http.Get(ts.URL + "/v1/perf/latency")
	if err != nil {
		t.Fatalf("perf request error = %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("perf status = %d, want %d", res.StatusCode, http.StatusOK)
	}
	var snapshot map[string]any
	if err := json.NewDecoder(res.Body).Decode(&snapshot); err != nil {
		t.Fatalf("decode perf snapshot: %v", err)
	}
}

func TestHealthEndpoints(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		res, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s error = %v", path, err)
		}
		res.Body.Close()
		if res.StatusCode != http.StatusOK {
			t.Fatalf("GET %s status = %d, want %d", path, res.StatusCode, http.StatusOK)
		}
	}
}
