package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/zapponejosh/calendrical/internal/calendar"
	"github.com/zapponejosh/calendrical/internal/config"
	"github.com/zapponejosh/calendrical/internal/database"
	"github.com/zapponejosh/calendrical/internal/geometry"
	"github.com/zapponejosh/calendrical/internal/logger"
	"github.com/zapponejosh/calendrical/internal/metrics"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db      *database.DB
	catalog *calendar.Catalog
	cache   *lru.Cache[string, conversion]
	cfg     *config.Config
	logger  *slog.Logger
}

// conversion is a cached result of converting codes to a form.
type conversion struct {
	Codes      []int          `json:"codes"`
	Successful bool           `json:"successful"`
	Form       *database.Form `json:"form,omitempty"`
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *database.DB, catalog *calendar.Catalog, cfg *config.Config, logger *slog.Logger) (*Handlers, error) {
	cache, err := lru.New[string, conversion](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("create conversion cache: %w", err)
	}
	return &Handlers{
		db:      db,
		catalog: catalog,
		cache:   cache,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Health(ctx); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]any{
		"status":    "healthy",
		"calendars": len(h.catalog.All()),
	})
}

// =============================================================================
// Analyses
// =============================================================================

type codesRequest struct {
	Codes []int `json:"codes" validate:"required,min=1,max=10000,dive,gte=0"`
}

// decodeCodes reads and validates a {"codes": [...]} body. On failure it
// writes the response and returns false.
func decodeCodes(w http.ResponseWriter, r *http.Request) ([]int, bool) {
	var req codesRequest
	if !decodeValid(w, r, &req) {
		return nil, false
	}
	return req.Codes, true
}

// analyze runs the reduction on codes and records it in the metrics.
func analyze(codes []int) (*geometry.Analysis, error) {
	start := time.Now()
	a, err := geometry.Analyze(codes)
	if err != nil {
		return nil, err
	}
	metrics.ObserveAnalysis(a.Successful(), len(a.Steps), time.Since(start))
	return a, nil
}

// CreateAnalysis handles POST /api/v1/analyses
func (h *Handlers) CreateAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	codes, ok := decodeCodes(w, r)
	if !ok {
		return
	}

	a, err := analyze(codes)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	rec := database.NewAnalysis(a)
	created, err := h.db.SaveAnalysis(ctx, rec)
	if err != nil {
		logger.Error(ctx, "failed to save analysis", err)
		WriteInternalError(w, "Failed to save analysis")
		return
	}

	saved, err := h.db.GetAnalysis(ctx, rec.ID)
	if err != nil {
		logger.Error(ctx, "failed to reload analysis", err, slog.Int64("id", rec.ID))
		WriteInternalError(w, "Failed to retrieve analysis")
		return
	}

	if created {
		WriteCreated(w, saved)
		return
	}
	WriteSuccess(w, saved)
}

// ListAnalyses handles GET /api/v1/analyses?limit=N&offset=M
func (h *Handlers) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 50 // default
	offset := 0

	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 && l <= 100 {
		limit = l
	}
	if o, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && o >= 0 {
		offset = o
	}

	analyses, err := h.db.ListAnalyses(ctx, limit, offset)
	if err != nil {
		logger.Error(ctx, "failed to list analyses", err)
		WriteInternalError(w, "Failed to retrieve analyses")
		return
	}

	total, err := h.db.CountAnalyses(ctx)
	if err != nil {
		logger.Error(ctx, "failed to count analyses", err)
		WriteInternalError(w, "Failed to retrieve analyses")
		return
	}

	WriteSuccess(w, map[string]any{
		"analyses": analyses,
		"limit":    limit,
		"offset":   offset,
		"total":    total,
	})
}

// analysisID parses the {id} URL parameter. On failure it writes the
// response and returns false.
func analysisID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		WriteBadRequest(w, "Invalid analysis ID")
		return 0, false
	}
	return id, true
}

// GetAnalysis handles GET /api/v1/analyses/{id}
func (h *Handlers) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := analysisID(w, r)
	if !ok {
		return
	}

	rec, err := h.db.GetAnalysis(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, "Analysis not found")
			return
		}
		logger.Error(ctx, "failed to get analysis", err, slog.Int64("id", id))
		WriteInternalError(w, "Failed to retrieve analysis")
		return
	}

	WriteSuccess(w, rec)
}

// DeleteAnalysis handles DELETE /api/v1/analyses/{id}
func (h *Handlers) DeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := analysisID(w, r)
	if !ok {
		return
	}

	if err := h.db.DeleteAnalysis(ctx, id); err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, "Analysis not found")
			return
		}
		logger.Error(ctx, "failed to delete analysis", err, slog.Int64("id", id))
		WriteInternalError(w, "Failed to delete analysis")
		return
	}

	WriteSuccess(w, map[string]string{"message": "Analysis deleted"})
}

// =============================================================================
// Forms
// =============================================================================

// ConvertCodes handles POST /api/v1/forms/convert
//
// Responds with the form of the sequence, or 422 NOT_SEGMENT. Results are
// kept in an LRU cache keyed by the sequence.
func (h *Handlers) ConvertCodes(w http.ResponseWriter, r *http.Request) {
	codes, ok := decodeCodes(w, r)
	if !ok {
		return
	}

	key, err := database.MarshalCodes(codes)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	conv, hit := h.cache.Get(key)
	metrics.ObserveCache(hit)
	if !hit {
		a, err := analyze(codes)
		if err != nil {
			WriteBadRequest(w, err.Error())
			return
		}
		conv = conversion{Codes: a.Input().Values(), Successful: a.Successful()}
		if f, ok := a.Form(); ok {
			conv.Form = &database.Form{A: f.A(), B: f.B(), R: f.R()}
		}
		h.cache.Add(key, conv)
	}

	if !conv.Successful {
		WriteUnprocessable(w, "codes are not the code of a digital straight line segment", "NOT_SEGMENT")
		return
	}
	WriteSuccess(w, conv)
}

type evaluateRequest struct {
	Form database.Form `json:"form"`
	X    int           `json:"x"`
}

// EvaluateForm handles POST /api/v1/forms/evaluate
func (h *Handlers) EvaluateForm(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if !decodeValid(w, r, &req) {
		return
	}

	f, err := req.Form.QuasiAffineForm()
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	WriteSuccess(w, map[string]any{
		"form":   req.Form,
		"x":      req.X,
		"value":  f.ValueAt(req.X),
		"code":   f.CodeAt(req.X),
		"divide": f.Divide(req.X),
	})
}

// decodeValid decodes the JSON body into v and validates it. On failure it
// writes a 400 response and returns false.
func decodeValid(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := decodeJSON(r, v); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return false
	}
	if err := validate.Struct(v); err != nil {
		WriteError(w, http.StatusBadRequest, validationMessage(err), "VALIDATION_FAILED")
		return false
	}
	return true
}

// decodeJSON decodes JSON request body.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}
	defer r.Body.Close()

	return json.NewDecoder(r.Body).Decode(v)
}
