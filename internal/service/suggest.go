package service

import (
	"sort"
	"strings"

	"github.com/barrazadevis/evaluacion-dashboard-backend/internal/domain"
)

// SuggestionThreshold flags categories (and questions inside them) whose
// average is strictly below it, on the 1.0-5.0 scale.
const SuggestionThreshold = 4.0

// SuggestionService derives improvement recommendations from aggregation
// output and the static knowledge base. It has no state beyond its inputs;
// identical arguments always produce identical suggestions.
type SuggestionService struct {
	store   RecordStore
	catalog QuestionCatalog
}

// NewSuggestionService creates a SuggestionService instance.
func NewSuggestionService(store RecordStore, catalog QuestionCatalog) *SuggestionService {
	if store == nil {
		panic("store must not be nil")
	}
	if catalog == nil {
		panic("catalog must not be nil")
	}
	return &SuggestionService{store: store, catalog: catalog}
}

// Suggest flags every category of one professor averaging below the
// threshold and maps its lowest-scoring questions to recommendations.
// Ordered by ascending category average, worst first. A professor with all
// categories at or above the threshold gets an empty slice, not an error.
func (s *SuggestionService) Suggest(professorID, period string) ([]Suggestion, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	records := s.store.RecordsFor(professorID, period)
	if len(records) == 0 {
		if period != "" && len(s.store.RecordsFor(professorID, "")) > 0 {
			return nil, wrapPeriodNotFound(professorID, period)
		}
		return nil, wrapProfessorNotFound(professorID)
	}

	type questionMean struct {
		question domain.Question
		mean     *weightedMean
	}
	categoryMeans := make(map[domain.Category]*weightedMean)
	questionMeans := make(map[domain.Category]map[string]*questionMean)

	for _, r := range records {
		q, ok := s.catalog.ByCode(r.QuestionCode)
		if !ok || q.Category.IsComment() {
			continue
		}
		if _, ok := categoryMeans[q.Category]; !ok {
			categoryMeans[q.Category] = &weightedMean{}
			questionMeans[q.Category] = make(map[string]*questionMean)
		}
		categoryMeans[q.Category].add(r, q.Weight)
		qm, ok := questionMeans[q.Category][q.Code]
		if !ok {
			qm = &questionMean{question: q, mean: &weightedMean{}}
			questionMeans[q.Category][q.Code] = qm
		}
		qm.mean.add(r, q.Weight)
	}

	var suggestions []Suggestion
	for cat, m := range categoryMeans {
		avg := m.average()
		if avg >= SuggestionThreshold {
			continue
		}

		var flagged []FlaggedQuestion
		for _, qm := range questionMeans[cat] {
			qAvg := qm.mean.average()
			if qAvg < SuggestionThreshold {
				flagged = append(flagged, FlaggedQuestion{
					Code:    qm.question.Code,
					Text:    qm.question.Text,
					Average: qAvg,
				})
			}
		}
		sort.Slice(flagged, func(i, j int) bool {
			if flagged[i].Average != flagged[j].Average {
				return flagged[i].Average < flagged[j].Average
			}
			return flagged[i].Code < flagged[j].Code
		})

		suggestions = append(suggestions, Suggestion{
			Category:        string(cat),
			ShortLabel:      cat.ShortLabel(),
			Average:         avg,
			Questions:       flagged,
			Recommendations: recommendFor(cat, flagged),
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Average != suggestions[j].Average {
			return suggestions[i].Average < suggestions[j].Average
		}
		return suggestions[i].Category < suggestions[j].Category
	})
	return suggestions, nil
}

// recommendFor matches the flagged questions against the knowledge base.
// Every keyword match contributes, deduplicated in match order; when
// nothing matches the category fallback (or the generic advice) applies.
func recommendFor(cat domain.Category, flagged []FlaggedQuestion) []string {
	advice, known := adviceBase[cat]
	if !known {
		return []string{genericAdvice}
	}

	var out []string
	seen := make(map[string]struct{})
	for _, q := range flagged {
		text := strings.ToLower(q.Text)
		for _, ka := range advice.keywords {
			if strings.Contains(text, ka.keyword) {
				if _, dup := seen[ka.advice]; !dup {
					seen[ka.advice] = struct{}{}
					out = append(out, ka.advice)
				}
			}
		}
	}
	if len(out) == 0 {
		out = append(out, advice.fallback)
	}
	return out
}
