// Package server exposes the analysis pipeline over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/spacesedan/sentiscope/internal/models"
	"github.com/spacesedan/sentiscope/internal/pipeline"
	"github.com/spacesedan/sentiscope/internal/report"
	"github.com/spacesedan/sentiscope/internal/upload"
)

const (
	multipartMemory = 1 << 20
	uploadFormField = "file"
	// room for the JSON envelope and escaped characters around the text
	jsonOverheadBytes = 4 << 10
)

// Analyzer is the part of pipeline.Analyzer the handlers use.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (models.AnalysisResult, error)
	TranslatorName() string
}

// Server limits submitted text to maxUploadBytes whether it arrives as JSON
// or as a file. A limit of zero or less disables the check.
type Server struct {
	analyzer       Analyzer
	translatorOK   *atomic.Bool
	maxUploadBytes int64
}

func New(analyzer Analyzer, translatorOK *atomic.Bool, maxUploadBytes int64) *Server {
	if translatorOK == nil {
		translatorOK = &atomic.Bool{}
		translatorOK.Store(true)
	}
	return &Server{
		analyzer:       analyzer,
		translatorOK:   translatorOK,
		maxUploadBytes: maxUploadBytes,
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /api/v1/analyze/file", s.handleAnalyzeFile)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return logRequests(mux)
}

type errorResponse struct {
	Error string `json:"error"`
}

type fileResponse struct {
	File   models.UploadedText `json:"file"`
	Report models.Report       `json:"report"`
}

type healthResponse struct {
	Status     string `json:"status"`
	Translator string `json:"translator"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalysisRequest
	body := r.Body
	if s.maxUploadBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, s.maxJSONBodyBytes())
	}
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body is too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if s.maxUploadBytes > 0 && int64(len(req.Text)) > s.maxUploadBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "text is too large")
		return
	}

	rep, ok := s.analyze(r.Context(), w, req.Text)
	if !ok {
		return
	}
	if wantsPlainText(r) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if err := report.Render(w, rep); err != nil {
			slog.Warn("[Server] Failed to write response", slog.String("error", err.Error()))
		}
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// maxJSONBodyBytes allows every byte of the text to be escaped as \uXXXX.
func (s *Server) maxJSONBodyBytes() int64 {
	return 6*s.maxUploadBytes + jsonOverheadBytes
}

func wantsPlainText(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/plain") && !strings.Contains(accept, "application/json")
}

func (s *Server) handleAnalyzeFile(w http.ResponseWriter, r *http.Request) {
	if s.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes+multipartMemory)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, upload.ErrTooLarge.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "expected a multipart form with a file field")
		return
	}

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	up, err := upload.Decode(header.Filename, data, s.maxUploadBytes)
	switch {
	case errors.Is(err, upload.ErrUnsupportedExtension):
		writeError(w, http.StatusUnsupportedMediaType, err.Error())
		return
	case errors.Is(err, upload.ErrTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rep, ok := s.analyze(r.Context(), w, up.Content)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, fileResponse{File: up, Report: rep})
}

func (s *Server) analyze(ctx context.Context, w http.ResponseWriter, text string) (models.Report, bool) {
	result, err := s.analyzer.Analyze(ctx, text)
	if errors.Is(err, pipeline.ErrEmptyInput) {
		writeError(w, http.StatusBadRequest, err.Error())
		return models.Report{}, false
	}
	if err != nil {
		slog.Error("[Server] Analysis failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return models.Report{}, false
	}
	return report.Build(result), true
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	status := "ok"
	if !s.translatorOK.Load() {
		status = "degraded"
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:     status,
		Translator: s.analyzer.TranslatorName(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("[Server] Failed to write response", slog.String("error", err.Error()))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("[Server] Request handled",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("elapsed", time.Since(start)))
	})
}
