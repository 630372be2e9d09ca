package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/barrazadevis/evaluacion-dashboard-backend/internal/report"
	"github.com/barrazadevis/evaluacion-dashboard-backend/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const defaultCacheDuration = 10 * time.Minute

type cacheKeyType string

const (
	cacheKeyProfessors  cacheKeyType = "http:profesores"
	cacheKeyAverages    cacheKeyType = "http:promedios"
	cacheKeyDetail      cacheKeyType = "http:detalle"
	cacheKeySuggestions cacheKeyType = "http:mejoras"
	cacheKeyPeriods     cacheKeyType = "http:periodos"
	cacheKeyEvaluators  cacheKeyType = "http:actores"
)

// Handlers serves the dashboard API over the read-only aggregation engine.
type Handlers struct {
	analytics Analytics
	suggester Suggester
	renderer  Renderer
	cache     Cacher
	logger    *zap.Logger
	sfGroup   singleflight.Group
	cacheTTL  time.Duration
}

// NewHandlers initializes the API handlers.
func NewHandlers(analytics Analytics, suggester Suggester, renderer Renderer, cache Cacher, logger *zap.Logger, ttl time.Duration) *Handlers {
	if analytics == nil {
		panic("nil Analytics provided to NewHandlers")
	}
	if suggester == nil {
		panic("nil Suggester provided to NewHandlers")
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		analytics: analytics,
		suggester: suggester,
		renderer:  renderer,
		cache:     cache,
		logger:    logger.Named("api-handler"),
		cacheTTL:  ttl,
	}
}

// normalizeKey builds a professor-scoped cache key; an empty period maps to
// the "todos" bucket.
func normalizeKey(prefix cacheKeyType, professorID, period string) string {
	if period == "" {
		period = "todos"
	}
	return fmt.Sprintf("%s:%s:%s", prefix, professorID, period)
}

// handleError maps engine errors onto transport status codes.
func (h *Handlers) handleError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidPeriod):
		h.logger.Info("invalid period filter", zap.String("op", op), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrProfessorNotFound), errors.Is(err, service.ErrPeriodNotFound):
		h.logger.Info("not found", zap.String("op", op), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno"})
	}
}

// ListProfessors handles GET /profesores.
func (h *Handlers) ListProfessors(c *gin.Context) {
	out, err := FindAndCache(c.Request.Context(), h.cache, &h.sfGroup, string(cacheKeyProfessors), h.cacheTTL, h.logger, func(ctx context.Context) ([]professorItem, error) {
		return toProfessorItems(h.analytics.ListProfessors()), nil
	})
	if err != nil {
		h.handleError(c, "ListProfessors", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetAverages handles GET /profesores/:documento/promedios.
func (h *Handlers) GetAverages(c *gin.Context) {
	documento := c.Param("documento")
	periodo := c.Query("periodo")

	key := normalizeKey(cacheKeyAverages, documento, periodo)
	out, err := FindAndCache(c.Request.Context(), h.cache, &h.sfGroup, key, h.cacheTTL, h.logger, func(ctx context.Context) (averagesResponse, error) {
		rep, err := h.analytics.GetAverages(documento, periodo)
		if err != nil {
			return averagesResponse{}, err
		}
		return toAveragesResponse(rep), nil
	})
	if err != nil {
		h.handleError(c, "GetAverages", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetDetail handles GET /profesores/:documento/detalle.
func (h *Handlers) GetDetail(c *gin.Context) {
	documento := c.Param("documento")
	periodo := c.Query("periodo")

	key := normalizeKey(cacheKeyDetail, documento, periodo)
	out, err := FindAndCache(c.Request.Context(), h.cache, &h.sfGroup, key, h.cacheTTL, h.logger, func(ctx context.Context) (detailResponse, error) {
		det, err := h.analytics.GetDetail(documento, periodo)
		if err != nil {
			return detailResponse{}, err
		}
		return toDetailResponse(det), nil
	})
	if err != nil {
		h.handleError(c, "GetDetail", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetSuggestions handles GET /profesores/:documento/mejoras.
func (h *Handlers) GetSuggestions(c *gin.Context) {
	documento := c.Param("documento")
	periodo := c.Query("periodo")

	key := normalizeKey(cacheKeySuggestions, documento, periodo)
	out, err := FindAndCache(c.Request.Context(), h.cache, &h.sfGroup, key, h.cacheTTL, h.logger, func(ctx context.Context) (suggestionsResponse, error) {
		suggestions, err := h.suggester.Suggest(documento, periodo)
		if err != nil {
			return suggestionsResponse{}, err
		}
		return toSuggestionsResponse(documento, periodo, suggestions), nil
	})
	if err != nil {
		h.handleError(c, "GetSuggestions", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListPeriods handles GET /estadisticas/periodos.
func (h *Handlers) ListPeriods(c *gin.Context) {
	out, err := FindAndCache(c.Request.Context(), h.cache, &h.sfGroup, string(cacheKeyPeriods), h.cacheTTL, h.logger, func(ctx context.Context) ([]periodItem, error) {
		periods := h.analytics.ListPeriods()
		items := make([]periodItem, len(periods))
		for i, p := range periods {
			items[i] = periodItem{Periodo: p.Period, TotalEvaluaciones: p.TotalEvaluations}
		}
		return items, nil
	})
	if err != nil {
		h.handleError(c, "ListPeriods", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListEvaluators handles GET /estadisticas/actores.
func (h *Handlers) ListEvaluators(c *gin.Context) {
	out, err := FindAndCache(c.Request.Context(), h.cache, &h.sfGroup, string(cacheKeyEvaluators), h.cacheTTL, h.logger, func(ctx context.Context) ([]evaluatorSummaryItem, error) {
		evaluators := h.analytics.ListEvaluators()
		items := make([]evaluatorSummaryItem, len(evaluators))
		for i, e := range evaluators {
			items[i] = evaluatorSummaryItem{Actor: e.Evaluator, TotalEvaluaciones: e.TotalEvaluations}
		}
		return items, nil
	})
	if err != nil {
		h.handleError(c, "ListEvaluators", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ExportPDF handles GET /profesores/:documento/reporte.pdf. PDF responses
// bypass the cache; rendering is cheap next to the transfer.
func (h *Handlers) ExportPDF(c *gin.Context) {
	documento := c.Param("documento")
	periodo := c.Query("periodo")

	data, err := h.renderProfessorPDF(documento, periodo)
	if err != nil {
		h.handleError(c, "ExportPDF", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", pdfFilename(documento, periodo)))
	c.Data(http.StatusOK, "application/pdf", data)
}

// ExportAllPDFs handles GET /profesores/reportes.zip: one PDF per professor
// bundled into a zip. Professors without records in the requested period
// are skipped, not fatal.
func (h *Handlers) ExportAllPDFs(c *gin.Context) {
	periodo := c.Query("periodo")

	var files []report.ArchiveFile
	for _, p := range h.analytics.ListProfessors() {
		data, err := h.renderProfessorPDF(p.ID, periodo)
		if err != nil {
			if errors.Is(err, service.ErrProfessorNotFound) || errors.Is(err, service.ErrPeriodNotFound) {
				h.logger.Debug("skipping professor without records in period",
					zap.String("professor", p.ID),
					zap.String("period", periodo))
				continue
			}
			h.handleError(c, "ExportAllPDFs", err)
			return
		}
		files = append(files, report.ArchiveFile{Name: pdfFilename(p.ID, periodo), Data: data})
	}

	if len(files) == 0 {
		h.handleError(c, "ExportAllPDFs", wrapNoReports(periodo))
		return
	}

	var buf bytes.Buffer
	if err := report.WriteArchive(&buf, files); err != nil {
		h.handleError(c, "ExportAllPDFs", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=reportes_%s.zip", periodOrAll(periodo)))
	c.Data(http.StatusOK, "application/zip", buf.Bytes())
}

func (h *Handlers) renderProfessorPDF(documento, periodo string) ([]byte, error) {
	rep, err := h.analytics.GetAverages(documento, periodo)
	if err != nil {
		return nil, err
	}
	suggestions, err := h.suggester.Suggest(documento, periodo)
	if err != nil {
		return nil, err
	}
	return h.renderer.ProfessorReport(rep, suggestions)
}

func periodOrAll(periodo string) string {
	if periodo == "" {
		return "todos"
	}
	return periodo
}

func pdfFilename(documento, periodo string) string {
	return fmt.Sprintf("reporte_%s_%s.pdf", documento, periodOrAll(periodo))
}

func wrapNoReports(periodo string) error {
	return fmt.Errorf("%w: no professors with records in period %s", service.ErrPeriodNotFound, periodOrAll(periodo))
}
