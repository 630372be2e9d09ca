package service

import "github.com/barrazadevis/evaluacion-dashboard-backend/internal/domain"

// RecordStore is the read-only record index the services query.
type RecordStore interface {
	RecordsFor(professorID, period string) []domain.Record
	RecordsForPeriod(period string) []domain.Record
	RecordsForEvaluator(evaluator string) []domain.Record
	Professors() []domain.Professor
	Periods() []string
	Evaluators() []string
	Len() int
}

// QuestionCatalog resolves question codes to their category, text and
// weight.
type QuestionCatalog interface {
	ByCode(code string) (domain.Question, bool)
	HasWeights() bool
}
