// Package chi maps the record service onto HTTP routes and translates
// domain errors to transport status codes.
package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/strandhq/strand/internal/domain"
	"github.com/strandhq/strand/internal/domain/filter"
	domrec "github.com/strandhq/strand/internal/domain/record"
	healthuc "github.com/strandhq/strand/internal/usecase/health"
	recorduc "github.com/strandhq/strand/internal/usecase/record"
)

// errorCode identifies an error kind on the wire.
type errorCode string

const (
	codeMissingField    errorCode = "missing_field"
	codeInvalidType     errorCode = "invalid_type"
	codeValueTooLarge   errorCode = "value_too_large"
	codeDuplicateValue  errorCode = "duplicate_value"
	codeInvalidFilter   errorCode = "invalid_filter"
	codeMissingQuery    errorCode = "missing_query"
	codeUnparsableQuery errorCode = "unparsable_query"
	codeNotFound        errorCode = "not_found"
	codeBadRequest      errorCode = "bad_request"
	codeUnauthorized    errorCode = "unauthorized"
	codeInternalError   errorCode = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the record and health services over HTTP.
type Server struct {
	records       *recorduc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(records *recorduc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		records: records,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrMissingField, http.StatusBadRequest, codeMissingField),
		sentinelHandler(domain.ErrInvalidType, http.StatusBadRequest, codeInvalidType),
		sentinelHandler(domain.ErrValueTooLarge, http.StatusBadRequest, codeValueTooLarge),
		sentinelHandler(domain.ErrDuplicateValue, http.StatusConflict, codeDuplicateValue),
		sentinelHandler(domain.ErrInvalidFilter, http.StatusBadRequest, codeInvalidFilter),
		sentinelHandler(domain.ErrMissingQuery, http.StatusBadRequest, codeMissingQuery),
		sentinelHandler(domain.ErrUnparsableQuery, http.StatusBadRequest, codeUnparsableQuery),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
	}
	return s
}

// Routes mounts all handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Route("/api/v1/strings", func(r chi.Router) {
		r.Post("/", s.CreateString)
		r.Get("/", s.ListStrings)
		r.Get("/search", s.SearchStrings)
		r.Get("/value/{value}", s.GetString)
		r.Delete("/value/{value}", s.DeleteString)
		r.Get("/id/{id}", s.GetStringByID)
	})
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// CreateString handles POST /api/v1/strings.
func (s *Server) CreateString(w http.ResponseWriter, r *http.Request) {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	value, err := resolveValue(body)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	rec, err := s.records.Create(r.Context(), value)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/strings/id/"+rec.ID())
	writeJSON(w, http.StatusCreated, recordToResponse(rec))
}

// ListStrings handles GET /api/v1/strings with optional structured filters.
func (s *Server) ListStrings(w http.ResponseWriter, r *http.Request) {
	f, err := filtersFromQuery(r.URL.Query())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	recs, err := s.records.List(r.Context(), f)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Items:          recordsToResponse(recs),
		Count:          len(recs),
		FiltersApplied: filterToEcho(f),
	})
}

// SearchStrings handles GET /api/v1/strings/search with a natural-language query.
func (s *Server) SearchStrings(w http.ResponseWriter, r *http.Request) {
	if !r.URL.Query().Has("query") {
		s.handleDomainError(w, domain.ErrMissingQuery)
		return
	}
	text := r.URL.Query().Get("query")

	recs, f, err := s.records.Query(r.Context(), text)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Items: recordsToResponse(recs),
		Count: len(recs),
		InterpretedQuery: interpretedQuery{
			Original: text,
			Filters:  filterToEcho(f),
		},
	})
}

// GetString handles GET /api/v1/strings/value/{value}.
func (s *Server) GetString(w http.ResponseWriter, r *http.Request) {
	rec, err := s.records.Get(r.Context(), valueParam(r))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recordToResponse(rec))
}

// DeleteString handles DELETE /api/v1/strings/value/{value}.
func (s *Server) DeleteString(w http.ResponseWriter, r *http.Request) {
	if err := s.records.Delete(r.Context(), valueParam(r)); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetStringByID handles GET /api/v1/strings/id/{id}.
func (s *Server) GetStringByID(w http.ResponseWriter, r *http.Request) {
	rec, err := s.records.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recordToResponse(rec))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// resolveValue resolves the create-input contract: an absent value key is
// ErrMissingField, a present but non-string value is ErrInvalidType, and a
// present empty string is valid input.
func resolveValue(body map[string]json.RawMessage) (string, error) {
	raw, ok := body["value"]
	if !ok {
		return "", domain.ErrMissingField
	}

	// json.Unmarshal leaves the target untouched for JSON null, so null has
	// to be rejected explicitly.
	if string(raw) == "null" {
		return "", fmt.Errorf("value is null: %w", domain.ErrInvalidType)
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", fmt.Errorf("value is not textual: %w", domain.ErrInvalidType)
	}
	return value, nil
}

// valueParam extracts the record value from the URL path, unescaping it so
// values with spaces and reserved characters round-trip.
func valueParam(r *http.Request) string {
	raw := chi.URLParam(r, "value")
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// filtersFromQuery builds a filter set from structured query parameters.
// Malformed values fail with domain.ErrInvalidFilter.
func filtersFromQuery(q url.Values) (filter.Set, error) {
	var isPalindrome *bool
	if v := q.Get("is_palindrome"); v != "" {
		b, err := parseBoolParam(v)
		if err != nil {
			return filter.Set{}, fmt.Errorf("is_palindrome must be a boolean: %w", domain.ErrInvalidFilter)
		}
		isPalindrome = &b
	}

	minLength, err := intParam(q, "min_length")
	if err != nil {
		return filter.Set{}, err
	}
	maxLength, err := intParam(q, "max_length")
	if err != nil {
		return filter.Set{}, err
	}
	wordCount, err := intParam(q, "word_count")
	if err != nil {
		return filter.Set{}, err
	}

	set, err := filter.New(isPalindrome, minLength, maxLength, wordCount, q.Get("contains_character"))
	if err != nil {
		return filter.Set{}, fmt.Errorf("%v: %w", err, domain.ErrInvalidFilter)
	}
	return set, nil
}

func parseBoolParam(v string) (bool, error) {
	switch v {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", v)
}

func intParam(q url.Values, name string) (*int, error) {
	v := q.Get(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer: %w", name, domain.ErrInvalidFilter)
	}
	return &n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without
// exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrMissingField,
		domain.ErrInvalidType,
		domain.ErrValueTooLarge,
		domain.ErrDuplicateValue,
		domain.ErrInvalidFilter,
		domain.ErrMissingQuery,
		domain.ErrUnparsableQuery,
		domain.ErrNotFound,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

// --- Wire DTOs ---

type recordProperties struct {
	Length                int            `json:"length"`
	IsPalindrome          bool           `json:"is_palindrome"`
	UniqueCharacters      int            `json:"unique_characters"`
	WordCount             int            `json:"word_count"`
	SHA256Hash            string         `json:"sha256_hash"`
	CharacterFrequencyMap map[string]int `json:"character_frequency_map"`
}

type recordResponse struct {
	ID         string           `json:"id"`
	Value      string           `json:"value"`
	Properties recordProperties `json:"properties"`
	CreatedAt  time.Time        `json:"created_at"`
}

type filterEcho struct {
	IsPalindrome      *bool  `json:"is_palindrome,omitempty"`
	MinLength         *int   `json:"min_length,omitempty"`
	MaxLength         *int   `json:"max_length,omitempty"`
	WordCount         *int   `json:"word_count,omitempty"`
	ContainsCharacter string `json:"contains_character,omitempty"`
}

type listResponse struct {
	Items          []recordResponse `json:"items"`
	Count          int              `json:"count"`
	FiltersApplied filterEcho       `json:"filters_applied"`
}

type interpretedQuery struct {
	Original string     `json:"original"`
	Filters  filterEcho `json:"filters"`
}

type searchResponse struct {
	Items            []recordResponse `json:"items"`
	Count            int              `json:"count"`
	InterpretedQuery interpretedQuery `json:"interpreted_query"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

func recordToResponse(rec domrec.Record) recordResponse {
	props := rec.Properties()
	return recordResponse{
		ID:    rec.ID(),
		Value: rec.Value(),
		Properties: recordProperties{
			Length:                props.Length,
			IsPalindrome:          props.IsPalindrome,
			UniqueCharacters:      props.UniqueCharacters,
			WordCount:             props.WordCount,
			SHA256Hash:            props.SHA256Hash,
			CharacterFrequencyMap: props.CharacterFrequency,
		},
		CreatedAt: rec.CreatedAt(),
	}
}

func recordsToResponse(recs []domrec.Record) []recordResponse {
	items := make([]recordResponse, len(recs))
	for i := range recs {
		items[i] = recordToResponse(recs[i])
	}
	return items
}

func filterToEcho(f filter.Set) filterEcho {
	return filterEcho{
		IsPalindrome:      f.IsPalindrome(),
		MinLength:         f.MinLength(),
		MaxLength:         f.MaxLength(),
		WordCount:         f.WordCount(),
		ContainsCharacter: f.ContainsCharacter(),
	}
}
