package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/classify"
	"github.com/jonathan/resume-analyzer/internal/history"
	"github.com/jonathan/resume-analyzer/internal/skills"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	reg := classify.NewRegistry()
	require.NoError(t, reg.Load())
	skillExtractor, err := skills.NewExtractor()
	require.NoError(t, err)
	a := analyzer.New(reg, skillExtractor)
	return New(Config{Port: 0}, a, history.NewMemory(), reg, zap.NewNop())
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (bool, map[string]any) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	data := map[string]any{}
	if len(envelope.Data) > 0 {
		require.NoError(t, json.Unmarshal(envelope.Data, &data))
	}
	return envelope.Success, data
}

const resumeBody = `{"resume_text": "Senior engineer with 7 years of experience in Python, Docker and Kubernetes. Built REST APIs and microservices."}`

func TestHandlePredict(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPost, "/predict", resumeBody)
	require.Equal(t, http.StatusOK, rec.Code)

	success, data := decodeEnvelope(t, rec)
	assert.True(t, success)
	assert.NotEmpty(t, data["job_category"])
	assert.NotEmpty(t, data["resume_id"])
	conf, ok := data["confidence"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, conf, 0.0)
	assert.LessOrEqual(t, conf, 1.0)
}

func TestHandleAnalyze(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPost, "/analyze", resumeBody)
	require.Equal(t, http.StatusOK, rec.Code)

	success, data := decodeEnvelope(t, rec)
	assert.True(t, success)
	assert.NotEmpty(t, data["skills"])
	assert.Equal(t, "Senior", data["experience_level"])
	assert.Greater(t, data["word_count"].(float64), 0.0)
	assert.NotEmpty(t, data["summary"])
}

func TestHandlePredict_MissingBody(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPost, "/predict", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePredict_EmptyText(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPost, "/predict", `{"resume_text": "   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	success, _ := decodeEnvelope(t, rec)
	assert.False(t, success)
}

func TestHandleHistory_ReturnsAppendedResults(t *testing.T) {
	s := newTestServer(t)
	for i := 0; i < 3; i++ {
		rec := doRequest(t, s, http.MethodPost, "/analyze", resumeBody)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doRequest(t, s, http.MethodGet, "/history?page=1&page_size=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	_, data := decodeEnvelope(t, rec)
	items, ok := data["items"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 2)
	assert.Equal(t, 3.0, data["total_count"])
}

func TestHandleHistory_OutOfRangePage(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPost, "/analyze", resumeBody)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/history?page=999&page_size=10", "")
	require.Equal(t, http.StatusOK, rec.Code)

	_, data := decodeEnvelope(t, rec)
	items, ok := data["items"].([]any)
	require.True(t, ok)
	assert.Empty(t, items)
	assert.Equal(t, 1.0, data["total_count"])
}

func TestHandleHistory_InvalidParams(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{
		"/history?page=abc",
		"/history?page_size=abc",
		"/history?page=0",
		"/history?page_size=5000",
	} {
		rec := doRequest(t, s, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, "path %s", path)
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	_, data := decodeEnvelope(t, rec)
	assert.Equal(t, "healthy", data["status"])
	assert.Equal(t, true, data["models_loaded"])
}

func TestHandleVersion(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/version", "")
	require.Equal(t, http.StatusOK, rec.Code)

	_, data := decodeEnvelope(t, rec)
	assert.Equal(t, Version, data["version"])
	assert.Equal(t, "resume-analyzer", data["service"])
}

func TestCORSHeaders(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/version", "")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
