// Package chi implements the HTTP surface of the catalog: record submission,
// list/get, the four search routes, the two rankings, health and metrics.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/apicatalog/catalogd/internal/domain"
	"github.com/apicatalog/catalogd/internal/domain/record"
	apiuc "github.com/apicatalog/catalogd/internal/usecase/api"
	healthuc "github.com/apicatalog/catalogd/internal/usecase/health"
	mashupuc "github.com/apicatalog/catalogd/internal/usecase/mashup"
	rankinguc "github.com/apicatalog/catalogd/internal/usecase/ranking"
)

// Error response codes.
const (
	codeBadRequest       = "bad_request"
	codeNotFound         = "not_found"
	codeInvalidQuery     = "invalid_query"
	codeInvalidRecord    = "invalid_record"
	codeStoreUnavailable = "store_unavailable"
	codeInternalError    = "internal_error"
)

// errorResponse is the wire shape of every error.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the use case services behind the HTTP handlers.
type Server struct {
	apis          *apiuc.Service
	mashups       *mashupuc.Service
	rankings      *rankinguc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	defaultTopK   int
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	apis *apiuc.Service,
	mashups *mashupuc.Service,
	rankings *rankinguc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		apis:        apis,
		mashups:     mashups,
		rankings:    rankings,
		health:      health,
		logger:      logger,
		defaultTopK: rankinguc.DefaultK,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, codeInvalidQuery),
		sentinelHandler(domain.ErrInvalidRecord, http.StatusBadRequest, codeInvalidRecord),
		sentinelHandler(domain.ErrStoreUnavailable, http.StatusServiceUnavailable, codeStoreUnavailable),
	}
	return s
}

// WithDefaultTopK overrides the ranking size used when ?k= is absent.
func (s *Server) WithDefaultTopK(k int) *Server {
	if k > 0 {
		s.defaultTopK = k
	}
	return s
}

// Routes mounts every handler on the router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/api", s.CreateAPI)
	r.Get("/apis", s.ListAPIs)
	r.Get("/apis/search-by-criteria", s.SearchAPIsByCriteria)
	r.Get("/apis/search-by-keywords", s.SearchAPIsByKeywords)
	r.Get("/apis/top-used", s.TopUsedAPIs)
	r.Get("/apis/{id}", s.GetAPI)
	r.Delete("/apis/{id}", s.DeleteAPI)

	r.Post("/mashup", s.CreateMashup)
	r.Get("/mashups", s.ListMashups)
	r.Get("/mashups/search-by-criteria", s.SearchMashupsByCriteria)
	r.Get("/mashups/search-by-keywords", s.SearchMashupsByKeywords)
	r.Get("/mashups/top-api-rich", s.TopAPIRichMashups)
	r.Get("/mashups/{id}", s.GetMashup)
	r.Delete("/mashups/{id}", s.DeleteMashup)

	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// CreateAPI handles POST /api.
func (s *Server) CreateAPI(w http.ResponseWriter, r *http.Request) {
	var rec record.API
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	stored, err := s.apis.Add(r.Context(), rec)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stored)
}

// ListAPIs handles GET /apis.
func (s *Server) ListAPIs(w http.ResponseWriter, r *http.Request) {
	recs, err := s.apis.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recs)
}

// GetAPI handles GET /apis/{id}.
func (s *Server) GetAPI(w http.ResponseWriter, r *http.Request) {
	rec, err := s.apis.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// DeleteAPI handles DELETE /apis/{id}.
func (s *Server) DeleteAPI(w http.ResponseWriter, r *http.Request) {
	if err := s.apis.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SearchAPIsByCriteria handles GET /apis/search-by-criteria.
func (s *Server) SearchAPIsByCriteria(w http.ResponseWriter, r *http.Request) {
	c, err := apiCriteriaFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidQuery, err.Error())
		return
	}

	refs, err := s.apis.SearchByCriteria(r.Context(), c)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, refs)
}

// SearchAPIsByKeywords handles GET /apis/search-by-keywords.
func (s *Server) SearchAPIsByKeywords(w http.ResponseWriter, r *http.Request) {
	refs, err := s.apis.SearchByKeywords(r.Context(), keywordsFromQuery(r.URL.Query()))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, refs)
}

// TopUsedAPIs handles GET /apis/top-used.
func (s *Server) TopUsedAPIs(w http.ResponseWriter, r *http.Request) {
	k, err := topKFromQuery(r.URL.Query(), s.defaultTopK)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidQuery, err.Error())
		return
	}

	ranking, err := s.rankings.TopUsedAPIs(r.Context(), k)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ranking)
}

// CreateMashup handles POST /mashup.
func (s *Server) CreateMashup(w http.ResponseWriter, r *http.Request) {
	var rec record.Mashup
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	stored, err := s.mashups.Add(r.Context(), rec)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stored)
}

// ListMashups handles GET /mashups.
func (s *Server) ListMashups(w http.ResponseWriter, r *http.Request) {
	recs, err := s.mashups.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recs)
}

// GetMashup handles GET /mashups/{id}.
func (s *Server) GetMashup(w http.ResponseWriter, r *http.Request) {
	rec, err := s.mashups.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// DeleteMashup handles DELETE /mashups/{id}.
func (s *Server) DeleteMashup(w http.ResponseWriter, r *http.Request) {
	if err := s.mashups.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SearchMashupsByCriteria handles GET /mashups/search-by-criteria.
func (s *Server) SearchMashupsByCriteria(w http.ResponseWriter, r *http.Request) {
	c, err := mashupCriteriaFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidQuery, err.Error())
		return
	}

	refs, err := s.mashups.SearchByCriteria(r.Context(), c)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, refs)
}

// SearchMashupsByKeywords handles GET /mashups/search-by-keywords.
func (s *Server) SearchMashupsByKeywords(w http.ResponseWriter, r *http.Request) {
	refs, err := s.mashups.SearchByKeywords(r.Context(), keywordsFromQuery(r.URL.Query()))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, refs)
}

// TopAPIRichMashups handles GET /mashups/top-api-rich.
func (s *Server) TopAPIRichMashups(w http.ResponseWriter, r *http.Request) {
	k, err := topKFromQuery(r.URL.Query(), s.defaultTopK)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidQuery, err.Error())
		return
	}

	ranking, err := s.rankings.TopAPIRichMashups(r.Context(), k)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ranking)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrInvalidQuery,
		domain.ErrInvalidRecord,
		domain.ErrStoreUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
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
