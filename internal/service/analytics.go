package service

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"

	"github.com/barrazadevis/evaluacion-dashboard-backend/internal/domain"
	"go.uber.org/zap"
)

var (
	ErrProfessorNotFound = errors.New("professor not found")
	ErrPeriodNotFound    = errors.New("no evaluations in period")
	ErrInvalidPeriod     = errors.New("invalid period format")
)

// Academic periods look like 2025-1 / 2025-2.
var periodFormat = regexp.MustCompile(`^\d{4}-[12]$`)

// AnalyticsService answers aggregate queries over the immutable record
// store. All methods are pure reads and safe for concurrent use.
type AnalyticsService struct {
	store   RecordStore
	catalog QuestionCatalog
	logger  *zap.Logger
}

// NewAnalyticsService creates an AnalyticsService instance.
func NewAnalyticsService(store RecordStore, catalog QuestionCatalog, logger *zap.Logger) *AnalyticsService {
	if store == nil {
		panic("store must not be nil")
	}
	if catalog == nil {
		panic("catalog must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{
		store:   store,
		catalog: catalog,
		logger:  logger.Named("analytics"),
	}
}

// round2 rounds half-up to two decimals. Scores are non-negative, so
// math.Round's half-away-from-zero is half-up here.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// submissionKey identifies one evaluator submission. Counts of
// "evaluations" are distinct submissions, never raw answer rows.
func submissionKey(r domain.Record) string {
	return r.ProfessorID + "|" + r.Period + "|" + r.Evaluator + "|" + r.SubmissionID
}

func countSubmissions(records []domain.Record) int {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		seen[submissionKey(r)] = struct{}{}
	}
	return len(seen)
}

// validatePeriod accepts an empty filter or a well-formed period label.
func validatePeriod(period string) error {
	if period != "" && !periodFormat.MatchString(period) {
		return fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}
	return nil
}

func wrapProfessorNotFound(professorID string) error {
	return fmt.Errorf("%w: %s", ErrProfessorNotFound, professorID)
}

func wrapPeriodNotFound(professorID, period string) error {
	return fmt.Errorf("%w: %s for professor %s", ErrPeriodNotFound, period, professorID)
}

// ListProfessors returns every evaluated professor in first-seen order with
// their distinct submission count across all periods.
func (s *AnalyticsService) ListProfessors() []ProfessorSummary {
	professors := s.store.Professors()
	out := make([]ProfessorSummary, 0, len(professors))
	for _, p := range professors {
		out = append(out, ProfessorSummary{
			ID:               p.ID,
			Name:             p.Name,
			TotalEvaluations: countSubmissions(s.store.RecordsFor(p.ID, "")),
		})
	}
	return out
}

// weightedMean accumulates a weighted running average plus the distinct
// submissions that fed it.
type weightedMean struct {
	sum    float64
	weight float64
	subs   map[string]struct{}
}

func (m *weightedMean) add(r domain.Record, w float64) {
	if m.subs == nil {
		m.subs = make(map[string]struct{})
	}
	m.sum += r.Score * w
	m.weight += w
	m.subs[submissionKey(r)] = struct{}{}
}

func (m *weightedMean) average() float64 {
	if m.weight == 0 {
		return 0
	}
	return round2(m.sum / m.weight)
}

// GetAverages computes the overall, per-category and per-evaluator averages
// for one professor, optionally scoped to a period. Partitions with zero
// scored answers are never emitted.
func (s *AnalyticsService) GetAverages(professorID, period string) (AverageReport, error) {
	if err := validatePeriod(period); err != nil {
		return AverageReport{}, err
	}

	records, err := s.professorRecords(professorID, period)
	if err != nil {
		return AverageReport{}, err
	}

	overall := &weightedMean{}
	byCategory := make(map[domain.Category]*weightedMean)
	byEvaluator := make(map[string]*weightedMean)
	name := ""

	for _, r := range records {
		if name == "" {
			name = r.ProfessorName
		}
		q, ok := s.catalog.ByCode(r.QuestionCode)
		if !ok || q.Category.IsComment() {
			continue
		}

		overall.add(r, q.Weight)
		if _, ok := byCategory[q.Category]; !ok {
			byCategory[q.Category] = &weightedMean{}
		}
		byCategory[q.Category].add(r, q.Weight)
		if _, ok := byEvaluator[r.Evaluator]; !ok {
			byEvaluator[r.Evaluator] = &weightedMean{}
		}
		byEvaluator[r.Evaluator].add(r, q.Weight)
	}

	if overall.weight == 0 {
		return AverageReport{}, fmt.Errorf("%w: %s has no scored answers", ErrProfessorNotFound, professorID)
	}

	report := AverageReport{
		ProfessorID:      professorID,
		Name:             name,
		Period:           period,
		Overall:          overall.average(),
		TotalEvaluations: len(overall.subs),
	}
	for cat, m := range byCategory {
		report.ByCategory = append(report.ByCategory, CategoryAverage{
			Category:         string(cat),
			ShortLabel:       cat.ShortLabel(),
			Average:          m.average(),
			TotalEvaluations: len(m.subs),
		})
	}
	sort.Slice(report.ByCategory, func(i, j int) bool {
		return report.ByCategory[i].Category < report.ByCategory[j].Category
	})
	for evaluator, m := range byEvaluator {
		report.ByEvaluator = append(report.ByEvaluator, EvaluatorAverage{
			Evaluator:        evaluator,
			Average:          m.average(),
			TotalEvaluations: len(m.subs),
		})
	}
	sort.Slice(report.ByEvaluator, func(i, j int) bool {
		return report.ByEvaluator[i].Evaluator < report.ByEvaluator[j].Evaluator
	})

	s.logger.Info("computed averages",
		zap.String("professor", professorID),
		zap.String("period", period),
		zap.Float64("overall", report.Overall),
		zap.Int("evaluations", report.TotalEvaluations))
	return report, nil
}

// GetDetail lists every scored answer of one professor in ingestion order.
func (s *AnalyticsService) GetDetail(professorID, period string) (DetailReport, error) {
	if err := validatePeriod(period); err != nil {
		return DetailReport{}, err
	}

	records, err := s.professorRecords(professorID, period)
	if err != nil {
		return DetailReport{}, err
	}

	detail := DetailReport{
		ProfessorID:      professorID,
		Period:           period,
		TotalEvaluations: countSubmissions(records),
	}
	for _, r := range records {
		if detail.Name == "" {
			detail.Name = r.ProfessorName
		}
		q, ok := s.catalog.ByCode(r.QuestionCode)
		if !ok {
			continue
		}
		detail.Answers = append(detail.Answers, AnswerDetail{
			QuestionCode: q.Code,
			QuestionText: q.Text,
			Category:     string(q.Category),
			Score:        r.Score,
			Evaluator:    r.Evaluator,
		})
	}
	return detail, nil
}

// ListPeriods returns the distinct periods ascending with their distinct
// submission counts.
func (s *AnalyticsService) ListPeriods() []PeriodSummary {
	periods := s.store.Periods()
	out := make([]PeriodSummary, 0, len(periods))
	for _, p := range periods {
		out = append(out, PeriodSummary{
			Period:           p,
			TotalEvaluations: countSubmissions(s.store.RecordsForPeriod(p)),
		})
	}
	return out
}

// ListEvaluators returns the distinct evaluator types in first-seen order
// with their distinct submission counts.
func (s *AnalyticsService) ListEvaluators() []EvaluatorSummary {
	evaluators := s.store.Evaluators()
	out := make([]EvaluatorSummary, 0, len(evaluators))
	for _, e := range evaluators {
		out = append(out, EvaluatorSummary{
			Evaluator:        e,
			TotalEvaluations: countSubmissions(s.store.RecordsForEvaluator(e)),
		})
	}
	return out
}

// professorRecords fetches and period-filters one professor's records,
// distinguishing an unknown professor from an empty period.
func (s *AnalyticsService) professorRecords(professorID, period string) ([]domain.Record, error) {
	records := s.store.RecordsFor(professorID, period)
	if len(records) > 0 {
		return records, nil
	}
	if period != "" && len(s.store.RecordsFor(professorID, "")) > 0 {
		return nil, wrapPeriodNotFound(professorID, period)
	}
	return nil, wrapProfessorNotFound(professorID)
}
