// Package web serves the single-page UI and its JSON API.
package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/lexhaven/lexa/internal/agent"
	"github.com/lexhaven/lexa/internal/pipeline"
)

// Assistant is the pipeline surface the server needs.
// *pipeline.Assistant satisfies it.
type Assistant interface {
	Query(ctx context.Context, question string) (pipeline.Answer, error)
	Chat(ctx context.Context, message string, history []agent.Exchange) (string, error)
}

// Server handles the web UI and API requests. It holds no session
// state: chat history is owned by the page and round-tripped on every
// request.
type Server struct {
	assistant Assistant
	questions []string
	log       *slog.Logger
}

// NewServer creates a web server over the given assistant. questions
// populate the predefined-questions panel.
func NewServer(assistant Assistant, questions []string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{assistant: assistant, questions: questions, log: logger}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /api/query", s.handleQuery)
	mux.HandleFunc("POST /api/chat", s.handleChat)
	return s.logRequests(mux)
}

// queryRequest is the body of POST /api/query.
type queryRequest struct {
	Question string `json:"question"`
}

// chatRequest is the body of POST /api/chat. History is the page-owned
// conversation log, oldest first.
type chatRequest struct {
	Message string           `json:"message"`
	History []agent.Exchange `json:"history"`
}

// chatResponse is the body of a chat reply.
type chatResponse struct {
	Answer string `json:"answer"`
}

// errorResponse is the body of any API failure.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, pageData{Questions: s.questions}); err != nil {
		s.log.Error("rendering page", "error", err)
	}
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "question is required"})
		return
	}

	answer, err := s.assistant.Query(r.Context(), req.Question)
	if err != nil {
		// Query-mode completion failures surface as a generic error.
		s.log.Error("query pipeline", "error", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "assistant is unavailable, try again"})
		return
	}

	writeJSON(w, http.StatusOK, answer)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "message is required"})
		return
	}

	reply, err := s.assistant.Chat(r.Context(), req.Message, req.History)
	if err != nil {
		s.log.Error("chat pipeline", "error", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "assistant is unavailable, try again"})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Answer: reply})
}

// logRequests wraps a handler with structured request logging.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
