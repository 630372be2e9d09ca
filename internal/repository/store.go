package repository

import (
	"sort"

	"github.com/barrazadevis/evaluacion-dashboard-backend/internal/domain"
)

// Store is the immutable in-memory record set built once after ingestion.
// Three indexes (professor, period, evaluator) hold record positions in
// insertion order, which keeps every query deterministic. The store is
// never mutated after New, so it is shared lock-free across request
// goroutines.
type Store struct {
	records []domain.Record

	byProfessor map[string][]int
	byPeriod    map[string][]int
	byEvaluator map[string][]int

	professors []domain.Professor // first-seen order
	periods    []string           // lexicographic ascending
	evaluators []string           // first-seen order
}

// New indexes the ingested records.
func New(records []domain.Record) *Store {
	s := &Store{
		records:     records,
		byProfessor: make(map[string][]int),
		byPeriod:    make(map[string][]int),
		byEvaluator: make(map[string][]int),
	}

	names := make(map[string]string)
	for i, r := range records {
		if _, seen := s.byProfessor[r.ProfessorID]; !seen {
			s.professors = append(s.professors, domain.Professor{ID: r.ProfessorID})
		}
		if names[r.ProfessorID] == "" && r.ProfessorName != "" {
			names[r.ProfessorID] = r.ProfessorName
		}
		if _, seen := s.byPeriod[r.Period]; !seen {
			s.periods = append(s.periods, r.Period)
		}
		if _, seen := s.byEvaluator[r.Evaluator]; !seen {
			s.evaluators = append(s.evaluators, r.Evaluator)
		}
		s.byProfessor[r.ProfessorID] = append(s.byProfessor[r.ProfessorID], i)
		s.byPeriod[r.Period] = append(s.byPeriod[r.Period], i)
		s.byEvaluator[r.Evaluator] = append(s.byEvaluator[r.Evaluator], i)
	}

	for i := range s.professors {
		s.professors[i].Name = names[s.professors[i].ID]
	}
	sort.Strings(s.periods)
	return s
}

// RecordsFor returns a professor's records, optionally filtered to one
// period. An empty period means all periods. The returned slice is a copy.
func (s *Store) RecordsFor(professorID, period string) []domain.Record {
	return s.collect(s.byProfessor[professorID], period)
}

// RecordsForPeriod returns every record of one period.
func (s *Store) RecordsForPeriod(period string) []domain.Record {
	return s.collect(s.byPeriod[period], "")
}

// RecordsForEvaluator returns every record of one evaluator type.
func (s *Store) RecordsForEvaluator(evaluator string) []domain.Record {
	return s.collect(s.byEvaluator[evaluator], "")
}

func (s *Store) collect(indices []int, period string) []domain.Record {
	out := make([]domain.Record, 0, len(indices))
	for _, i := range indices {
		if period != "" && s.records[i].Period != period {
			continue
		}
		out = append(out, s.records[i])
	}
	return out
}

// Professors lists distinct professors in first-seen order.
func (s *Store) Professors() []domain.Professor {
	out := make([]domain.Professor, len(s.professors))
	copy(out, s.professors)
	return out
}

// Periods lists distinct period labels in ascending order.
func (s *Store) Periods() []string {
	out := make([]string, len(s.periods))
	copy(out, s.periods)
	return out
}

// Evaluators lists distinct evaluator-type labels in first-seen order.
func (s *Store) Evaluators() []string {
	out := make([]string, len(s.evaluators))
	copy(out, s.evaluators)
	return out
}

// Len returns the total record count.
func (s *Store) Len() int {
	return len(s.records)
}
