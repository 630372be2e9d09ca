package mocks

import (
	"github.com/barrazadevis/evaluacion-dashboard-backend/internal/domain"
)

// MockRecordStore is a mock implementation of the RecordStore interface for
// testing the service layer. It uses function-based mocking for flexibility.
type MockRecordStore struct {
	RecordsForFunc          func(professorID, period string) []domain.Record
	RecordsForPeriodFunc    func(period string) []domain.Record
	RecordsForEvaluatorFunc func(evaluator string) []domain.Record
	ProfessorsFunc          func() []domain.Professor
	PeriodsFunc             func() []string
	EvaluatorsFunc          func() []string
	LenFunc                 func() int
}

// RecordsFor implements the RecordStore interface
func (m *MockRecordStore) RecordsFor(professorID, period string) []domain.Record {
	if m.RecordsForFunc != nil {
		return m.RecordsForFunc(professorID, period)
	}
	return nil
}

// RecordsForPeriod implements the RecordStore interface
func (m *MockRecordStore) RecordsForPeriod(period string) []domain.Record {
	if m.RecordsForPeriodFunc != nil {
		return m.RecordsForPeriodFunc(period)
	}
	return nil
}

// RecordsForEvaluator implements the RecordStore interface
func (m *MockRecordStore) RecordsForEvaluator(evaluator string) []domain.Record {
	if m.RecordsForEvaluatorFunc != nil {
		return m.RecordsForEvaluatorFunc(evaluator)
	}
	return nil
}

// Professors implements the RecordStore interface
func (m *MockRecordStore) Professors() []domain.Professor {
	if m.ProfessorsFunc != nil {
		return m.ProfessorsFunc()
	}
	return nil
}

// Periods implements the RecordStore interface
func (m *MockRecordStore) Periods() []string {
	if m.PeriodsFunc != nil {
		return m.PeriodsFunc()
	}
	return nil
}

// Evaluators implements the RecordStore interface
func (m *MockRecordStore) Evaluators() []string {
	if m.EvaluatorsFunc != nil {
		return m.EvaluatorsFunc()
	}
	return nil
}

// Len implements the RecordStore interface
func (m *MockRecordStore) Len() int {
	if m.LenFunc != nil {
		return m.LenFunc()
	}
	return 0
}
