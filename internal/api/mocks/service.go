package mocks

import (
	"errors"

	"github.com/barrazadevis/evaluacion-dashboard-backend/internal/service"
)

// MockAnalytics is a mock implementation of the Analytics interface for
// testing the handler layer. It uses function-based mocking for flexibility.
type MockAnalytics struct {
	ListProfessorsFunc func() []service.ProfessorSummary
	GetAveragesFunc    func(professorID, period string) (service.AverageReport, error)
	GetDetailFunc      func(professorID, period string) (service.DetailReport, error)
	ListPeriodsFunc    func() []service.PeriodSummary
	ListEvaluatorsFunc func() []service.EvaluatorSummary
}

func (m *MockAnalytics) ListProfessors() []service.ProfessorSummary {
	if m.ListProfessorsFunc != nil {
		return m.ListProfessorsFunc()
	}
	return nil
}

func (m *MockAnalytics) GetAverages(professorID, period string) (service.AverageReport, error) {
	if m.GetAveragesFunc != nil {
		return m.GetAveragesFunc(professorID, period)
	}
	return service.AverageReport{}, errors.New("GetAveragesFunc not implemented")
}

func (m *MockAnalytics) GetDetail(professorID, period string) (service.DetailReport, error) {
	if m.GetDetailFunc != nil {
		return m.GetDetailFunc(professorID, period)
	}
	return service.DetailReport{}, errors.New("GetDetailFunc not implemented")
}

func (m *MockAnalytics) ListPeriods() []service.PeriodSummary {
	if m.ListPeriodsFunc != nil {
		return m.ListPeriodsFunc()
	}
	return nil
}

func (m *MockAnalytics) ListEvaluators() []service.EvaluatorSummary {
	if m.ListEvaluatorsFunc != nil {
		return m.ListEvaluatorsFunc()
	}
	return nil
}

// MockSuggester is a mock implementation of the Suggester interface.
type MockSuggester struct {
	SuggestFunc func(professorID, period string) ([]service.Suggestion, error)
}

func (m *MockSuggester) Suggest(professorID, period string) ([]service.Suggestion, error) {
	if m.SuggestFunc != nil {
		return m.SuggestFunc(professorID, period)
	}
	return nil, errors.New("SuggestFunc not implemented")
}

// MockRenderer is a mock implementation of the Renderer interface.
type MockRenderer struct {
	ProfessorReportFunc func(report service.AverageReport, suggestions []service.Suggestion) ([]byte, error)
}

func (m *MockRenderer) ProfessorReport(report service.AverageReport, suggestions []service.Suggestion) ([]byte, error) {
	if m.ProfessorReportFunc != nil {
		return m.ProfessorReportFunc(report, suggestions)
	}
	return nil, errors.New("ProfessorReportFunc not implemented")
}
