package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Default pagination for /history when parameters are omitted.
const (
	defaultPage     = 1
	defaultPageSize = 20
)

// apiResponse is the uniform envelope for every endpoint.
type apiResponse struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data,omitempty"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiResponse{
		Success:   status < http.StatusBadRequest,
		Data:      data,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, nil, message)
}

// handlePredict runs the quick classification path.
func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	s.runAnalysis(w, r, analyzer.ModeQuick)
}

// handleAnalyze runs the full analysis pipeline.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	s.runAnalysis(w, r, analyzer.ModeDeep)
}

func (s *Server) runAnalysis(w http.ResponseWriter, r *http.Request, mode analyzer.Mode) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing resume_text in request body")
		return
	}

	start := time.Now()
	result, err := s.analyzer.Analyze(r.Context(), req.ResumeText, mode)
	if err != nil {
		observability.RecordAnalysisError(string(mode))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	observability.RecordAnalysis(string(mode), result.JobCategory, time.Since(start))

	// Persistence is decoupled from analysis: a failed append is logged and
	// counted but the analysis is still returned.
	message := ""
	if err := s.store.Append(r.Context(), result); err != nil {
		observability.RecordHistoryAppend(false)
		s.log.Error("failed to persist analysis result",
			zap.String("resume_id", result.ResumeID),
			zap.Error(err),
		)
		message = "Analysis succeeded but the result could not be persisted"
	} else {
		observability.RecordHistoryAppend(true)
	}

	s.writeJSON(w, http.StatusOK, result, message)
}

// handleHistory serves paginated past analysis results, most recent first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	req := types.HistoryRequest{Page: defaultPage, PageSize: defaultPageSize}

	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid page parameter")
			return
		}
		req.Page = n
	}
	if v := r.URL.Query().Get("page_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid page_size parameter")
			return
		}
		req.PageSize = n
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid page or page_size parameters")
		return
	}

	page, err := s.store.Query(r.Context(), req.Page, req.PageSize)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	observability.UpdateHistorySize(page.TotalCount)

	s.writeJSON(w, http.StatusOK, page, "")
}

// healthStatus is the /health payload.
type healthStatus struct {
	Status            string `json:"status"`
	DatabaseConnected bool   `json:"database_connected"`
	ModelsLoaded      bool   `json:"models_loaded"`
}

// handleHealth reports service status: store reachability and model load state.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	dbOK := s.store.Ping(r.Context()) == nil
	modelsOK := s.registry.Loaded()

	status := healthStatus{
		Status:            "healthy",
		DatabaseConnected: dbOK,
		ModelsLoaded:      modelsOK,
	}
	code := http.StatusOK
	if !dbOK || !modelsOK {
		status.Status = "unhealthy"
		code = http.StatusServiceUnavailable
	}
	s.writeJSON(w, code, status, "")
}

// handleVersion reports service version information.
func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"service":      "resume-analyzer",
		"version":      Version,
		"model_loaded": s.registry.Loaded(),
	}, "")
}
