// Package http provides the HTTP transport for the FIA documents API.
// It is a thin wrapper: handlers parse query parameters, call the domain
// services, and serialize their results, mapping domain error codes to
// HTTP status codes at the boundary.
package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	fiadoc "github.com/Al3x18/fia-doc-api"
	"github.com/google/uuid"
)

// Server routes API requests to the document service and downloader.
type Server struct {
	Documents fiadoc.DocumentService
	Downloads fiadoc.Downloader

	// Logger for per-request logging. Defaults to slog.Default.
	Logger *slog.Logger
}

// Handler returns the server's route table wrapped with request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /fia-documents", s.handleDocuments)
	mux.HandleFunc("GET /download-fia-doc", s.handleDownload)
	mux.HandleFunc("GET /get-seasons-available", s.handleSeasons)
	mux.HandleFunc("GET /get-championships-available", s.handleChampionships)
	mux.HandleFunc("GET /get-gp-available", s.handleEvents)
	return s.logRequests(mux)
}

type documentsResponse struct {
	Message   string         `json:"message"`
	Count     int            `json:"count"`
	Documents []fiadoc.Entry `json:"documents"`
}

type seasonsResponse struct {
	Message string   `json:"message"`
	Count   int      `json:"count"`
	Seasons []string `json:"seasons"`
}

type championshipsResponse struct {
	Message       string   `json:"message"`
	Season        string   `json:"season"`
	Count         int      `json:"count"`
	Championships []string `json:"championships"`
}

type eventsResponse struct {
	Message string   `json:"message"`
	Season  string   `json:"season"`
	Count   int      `json:"count"`
	Events  []string `json:"events"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleDocuments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := fiadoc.Filter{
		Season:       q.Get("season"),
		Championship: q.Get("championship"),
		Event:        q.Get("event"),
	}

	entries, count, err := s.Documents.Documents(r.Context(), filter)
	if err != nil {
		s.error(w, r, err)
		return
	}
	if entries == nil {
		entries = []fiadoc.Entry{}
	}

	s.json(w, http.StatusOK, documentsResponse{
		Message:   "FIA documents retrieved",
		Count:     count,
		Documents: entries,
	})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	dl, err := s.Downloads.Download(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		s.error(w, r, err)
		return
	}
	defer dl.Body.Close()

	contentType := dl.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", dl.Filename))
	if dl.Length > 0 {
		w.Header().Set("Content-Length", fmt.Sprintf("%d", dl.Length))
	}

	if _, err := io.Copy(w, dl.Body); err != nil {
		// Headers are already written; all we can do is log.
		s.logger().Error("streaming download", "url", r.URL.Query().Get("url"), "err", err)
	}
}

func (s *Server) handleSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := s.Documents.Seasons(r.Context())
	if err != nil {
		s.error(w, r, err)
		return
	}
	if seasons == nil {
		seasons = []string{}
	}

	s.json(w, http.StatusOK, seasonsResponse{
		Message: "Available seasons retrieved",
		Count:   len(seasons),
		Seasons: seasons,
	})
}

func (s *Server) handleChampionships(w http.ResponseWriter, r *http.Request) {
	season := r.URL.Query().Get("season")
	championships, err := s.Documents.Championships(r.Context(), fiadoc.NormalizeSeason(season))
	if err != nil {
		s.error(w, r, err)
		return
	}
	if championships == nil {
		championships = []string{}
	}

	s.json(w, http.StatusOK, championshipsResponse{
		Message:       "Available championships retrieved",
		Season:        seasonOrDefault(season),
		Count:         len(championships),
		Championships: championships,
	})
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	season := r.URL.Query().Get("season")
	events, err := s.Documents.Events(r.Context(), fiadoc.NormalizeSeason(season))
	if err != nil {
		s.error(w, r, err)
		return
	}
	if events == nil {
		events = []string{}
	}

	s.json(w, http.StatusOK, eventsResponse{
		Message: "Available Grand Prix events retrieved",
		Season:  seasonOrDefault(season),
		Count:   len(events),
		Events:  events,
	})
}

// seasonOrDefault echoes the caller's season parameter, or "default" when
// the portal's default view was used.
func seasonOrDefault(season string) string {
	if season == "" {
		return "default"
	}
	return season
}

// error writes the domain error as a JSON body with the mapped status code.
func (s *Server) error(w http.ResponseWriter, r *http.Request, err error) {
	code := fiadoc.ErrorCode(err)
	status := ErrorStatusCode(code)
	if status >= http.StatusInternalServerError {
		s.logger().Error("request failed", "path", r.URL.Path, "code", code, "err", err)
	}
	s.json(w, status, errorResponse{Error: fiadoc.ErrorMessage(err)})
}

func (s *Server) json(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(body); err != nil {
		s.logger().Error("encoding response", "err", err)
	}
}

// codeStatus maps domain error codes to HTTP status codes.
var codeStatus = map[string]int{
	fiadoc.EINVALID:  http.StatusBadRequest,
	fiadoc.ETIMEOUT:  http.StatusGatewayTimeout,
	fiadoc.EUPSTREAM: http.StatusBadGateway,
	fiadoc.EINTERNAL: http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status for a domain error code.
func ErrorStatusCode(code string) int {
	if status, ok := codeStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// logRequests wraps a handler with per-request logging. Each request gets a
// generated id so its log lines can be correlated.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		s.logger().Info("request",
			"id", uuid.NewString(),
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(begin),
		)
	})
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// statusWriter records the status code written to the response.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
