package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/definition"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, opts ...Option) *httptest.Server {
	t.Helper()
	sim, err := turing.New()
	require.NoError(t, err)
	srv := httptest.NewServer(NewHandler(sim, opts...))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func postRun(t *testing.T, url, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(url+"/run", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	code, body := get(t, srv.URL+"/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body)
}

func TestGetDefinition(t *testing.T) {
	srv := newTestServer(t)
	code, body := get(t, srv.URL+"/definition")
	require.Equal(t, http.StatusOK, code)

	var doc definition.Document
	require.NoError(t, json.Unmarshal([]byte(body), &doc))
	assert.Equal(t, "q0", doc.InitialState)
	assert.Len(t, doc.States, 17)
	assert.Equal(t, []string{"qaccept"}, doc.AcceptingStates)
}

func TestGetGraph(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		query, contains, contentType string
	}{
		{"", "stateDiagram-v2", "text/plain"},
		{"?format=mermaid", "[*] --> q0", "text/plain"},
		{"?format=dot", "digraph TuringMachine", "text/vnd.graphviz"},
		{"?format=markdown", "```mermaid", "text/markdown"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			resp, err := http.Get(srv.URL + "/graph" + tt.query)
			require.NoError(t, err)
			defer resp.Body.Close()
			body, _ := io.ReadAll(resp.Body)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("Content-Type"), tt.contentType)
			assert.Contains(t, string(body), tt.contains)
		})
	}

	code, _ := get(t, srv.URL+"/graph?format=svg")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRun(t *testing.T) {
	srv := newTestServer(t)

	resp, body := postRun(t, srv.URL, `{"n": 5}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var out domain.Outcome
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "11111", out.Input)
	assert.Equal(t, 312, out.Steps)
	assert.True(t, out.Accepted)
	assert.Equal(t, domain.StatusAccepted, out.Status)
	assert.Equal(t, 5, out.Value)
	assert.Empty(t, out.Snapshots)
}

func TestRun_Trace(t *testing.T) {
	srv := newTestServer(t)

	resp, body := postRun(t, srv.URL, `{"input": "111", "trace": true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var out domain.Outcome
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, 84, out.Steps)
	assert.Equal(t, 2, out.Value)
	require.Len(t, out.Snapshots, 85)
	assert.Equal(t, "q0", out.Snapshots[0].State)
	assert.Equal(t, "qaccept", out.Snapshots[84].State)
}

func TestRun_StepBudget(t *testing.T) {
	srv := newTestServer(t, WithMaxSteps(50))

	// The server cap wins over a larger request.
	resp, body := postRun(t, srv.URL, `{"n": 4, "max_steps": 1000}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out domain.Outcome
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, 50, out.Steps)
	assert.False(t, out.Accepted)
	assert.Equal(t, domain.StatusRunning, out.Status)

	resp, body = postRun(t, srv.URL, `{"n": 4, "max_steps": 7}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, 7, out.Steps)
}

func TestRun_BadRequests(t *testing.T) {
	srv := newTestServer(t)

	tests := map[string]string{
		"malformed":     `{"n": `,
		"empty":         `{}`,
		"both":          `{"n": 1, "input": "1"}`,
		"negative":      `{"n": -1}`,
		"not unary":     `{"input": "1x1"}`,
		"decimal input": `{"input": "12"}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			resp, _ := postRun(t, srv.URL, body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestRun_InputAboveStepCap(t *testing.T) {
	srv := newTestServer(t, WithMaxSteps(50))

	tests := map[string]string{
		"n":         `{"n": 51, "max_steps": 1}`,
		"huge n":    `{"n": 3000000, "max_steps": 1}`,
		"input":     `{"input": "` + strings.Repeat("1", 51) + `"}`,
		"huge body": `{"input": "` + strings.Repeat("1", 10000) + `"}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			resp, data := postRun(t, srv.URL, body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Less(t, len(data), 200, "the input is not echoed back")
		})
	}

	resp, _ := postRun(t, srv.URL, `{"n": 50, "max_steps": 1}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStreamRun(t *testing.T) {
	srv := newTestServer(t)

	code, body := get(t, srv.URL+"/run/stream?n=1")
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, 11, strings.Count(body, "event: step\n"))
	assert.Equal(t, 1, strings.Count(body, "event: halt\n"))
	assert.Contains(t, body, `"state":"q0"`)
	assert.Contains(t, body, `"value":1`)
	assert.Contains(t, body, `"status":"accepted"`)
}

func TestStreamRun_BadInput(t *testing.T) {
	srv := newTestServer(t)

	code, _ := get(t, srv.URL+"/run/stream?input=1x")
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = get(t, srv.URL+"/run/stream?n=abc")
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = get(t, srv.URL+"/run/stream")
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = get(t, srv.URL+"/run/stream?n=1&max_steps=ten")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestStreamRun_InputAboveStepCap(t *testing.T) {
	srv := newTestServer(t, WithMaxSteps(50))

	code, _ := get(t, srv.URL+"/run/stream?n=3000000")
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = get(t, srv.URL+"/run/stream?input="+strings.Repeat("1", 51))
	assert.Equal(t, http.StatusBadRequest, code)

	code, body := get(t, srv.URL+"/run/stream?n=50&max_steps=2")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 3, strings.Count(body, "event: step\n"))
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	sim, err := turing.New(turing.WithLifecycleHooks(metrics.Hooks()))
	require.NoError(t, err)
	srv := httptest.NewServer(NewHandler(sim, WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))))
	defer srv.Close()

	resp, _ := postRun(t, srv.URL, `{"n": 1}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	code, body := get(t, srv.URL+"/metrics")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "turing_steps_total 10")
	assert.Contains(t, body, `turing_halts_total{status="accepted"} 1`)
}

func TestMetricsEndpoint_NotMountedByDefault(t *testing.T) {
	srv := newTestServer(t)
	code, _ := get(t, srv.URL+"/metrics")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRequestLogging(t *testing.T) {
	sim, err := turing.New()
	require.NoError(t, err)
	var buf bytes.Buffer
	h := NewHandler(sim, WithLogger(logging.NewWriter(&buf, logging.Level(true))))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), "path=/healthz")
	assert.Contains(t, buf.String(), "status=200")
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/run", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestGraphMarkdownUsesClock(t *testing.T) {
	sim, err := turing.New()
	require.NoError(t, err)

	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	server := &Server{Engine: sim, Logger: logging.NewNop(), MaxSteps: 10, Now: func() time.Time { return fixed }}

	rec := httptest.NewRecorder()
	server.GetGraph(rec, httptest.NewRequest(http.MethodGet, "/graph?format=markdown", nil))
	assert.Contains(t, rec.Body.String(), "2025-01-02 03:04:05")
}

func TestReports(t *testing.T) {
	store := memory.NewStore()
	report := &domain.Report{
		Machine:      "fib",
		Measurements: []domain.Measurement{{N: 2, Steps: 36, Value: 1, Completed: true}},
	}
	require.NoError(t, store.Save(t.Context(), "analysis_20240101_000000", report))
	srv := newTestServer(t, WithReports(store))

	code, body := get(t, srv.URL+"/reports")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"reports": ["analysis_20240101_000000"]}`, body)

	code, body = get(t, srv.URL+"/reports/analysis_20240101_000000")
	require.Equal(t, http.StatusOK, code)
	var got domain.Report
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, "fib", got.Machine)
	assert.Equal(t, 36, got.Measurements[0].Steps)

	code, _ = get(t, srv.URL+"/reports/missing")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestReports_NotMountedByDefault(t *testing.T) {
	srv := newTestServer(t)
	code, _ := get(t, srv.URL+"/reports")
	assert.Equal(t, http.StatusNotFound, code)
}
