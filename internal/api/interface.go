package api

import (
	"context"
	"time"

	"github.com/barrazadevis/evaluacion-dashboard-backend/internal/service"
)

// Cacher defines the interface for cache operations. A miss surfaces as
// cache.ErrMiss.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// Analytics is the aggregation engine surface the handlers consume.
type Analytics interface {
	ListProfessors() []service.ProfessorSummary
	GetAverages(professorID, period string) (service.AverageReport, error)
	GetDetail(professorID, period string) (service.DetailReport, error)
	ListPeriods() []service.PeriodSummary
	ListEvaluators() []service.EvaluatorSummary
}

// Suggester produces improvement suggestions for one professor.
type Suggester interface {
	Suggest(professorID, period string) ([]service.Suggestion, error)
}

// Renderer turns aggregation output into a PDF document.
type Renderer interface {
	ProfessorReport(report service.AverageReport, suggestions []service.Suggestion) ([]byte, error)
}
