package service

import (
	"testing"

	"github.com/barrazadevis/evaluacion-dashboard-backend/internal/domain"
	"github.com/barrazadevis/evaluacion-dashboard-backend/internal/repository"
	"github.com/stretchr/testify/assert"
)

func suggestCatalog() *domain.Catalog {
	return domain.NewCatalog([]domain.Question{
		{Code: "Q1", Category: domain.CategoryPlanning, Text: "Socializa el programa del módulo al inicio", Weight: 1},
		{Code: "Q2", Category: domain.CategoryPlanning, Text: "Presenta un plan de trabajo coherente", Weight: 1},
		{Code: "Q3", Category: domain.CategoryPersonal, Text: "Trata a los estudiantes con respeto", Weight: 1},
		{Code: "Q4", Category: domain.CategoryVirtualClassroom, Text: "Estructura el aula virtual", Weight: 1},
		{Code: "Q9", Category: domain.CategoryComments, Text: "Comentarios", Weight: 1},
	})
}

func TestNewSuggestionService(t *testing.T) {
	t.Run("panics on nil store", func(t *testing.T) {
		assert.Panics(t, func() { NewSuggestionService(nil, suggestCatalog()) })
	})

	t.Run("panics on nil catalog", func(t *testing.T) {
		assert.Panics(t, func() { NewSuggestionService(repository.New(nil), nil) })
	})
}

func TestSuggest(t *testing.T) {
	t.Run("no suggestions when every category meets the threshold", func(t *testing.T) {
		records := []domain.Record{
			record("a1", "123", "2025-2", "ESTUDIANTE V3", "Q1", 4.0),
			record("a1", "123", "2025-2", "ESTUDIANTE V3", "Q3", 5.0),
		}
		svc := NewSuggestionService(repository.New(records), suggestCatalog())

		suggestions, err := svc.Suggest("123", "")

		assert.NoError(t, err)
		assert.Empty(t, suggestions)
	})

	t.Run("exactly 4.0 is never flagged", func(t *testing.T) {
		records := []domain.Record{
			record("a1", "123", "2025-2", "ESTUDIANTE V3", "Q1", 3.0),
			record("b1", "123", "2025-2", "ESTUDIANTE V3", "Q1", 5.0),
		}
		svc := NewSuggestionService(repository.New(records), suggestCatalog())

		suggestions, err := svc.Suggest("123", "")

		assert.NoError(t, err)
		assert.Empty(t, suggestions)
	})

	t.Run("flags a low category with its low questions", func(t *testing.T) {
		records := []domain.Record{
			record("a1", "123", "2025-2", "ESTUDIANTE V3", "Q1", 3.0),
			record("a1", "123", "2025-2", "ESTUDIANTE V3", "Q2", 3.5),
			record("a1", "123", "2025-2", "ESTUDIANTE V3", "Q3", 5.0),
		}
		svc := NewSuggestionService(repository.New(records), suggestCatalog())

		suggestions, err := svc.Suggest("123", "")

		assert.NoError(t, err)
		assert.Len(t, suggestions, 1)

		s := suggestions[0]
		assert.Equal(t, string(domain.CategoryPlanning), s.Category)
		assert.Equal(t, 3.25, s.Average)
		// Worst question first.
		assert.Equal(t, []FlaggedQuestion{
			{Code: "Q1", Text: "Socializa el programa del módulo al inicio", Average: 3.0},
			{Code: "Q2", Text: "Presenta un plan de trabajo coherente", Average: 3.5},
		}, s.Questions)
	})

	t.Run("keyword matches pick targeted recommendations", func(t *testing.T) {
		records := []domain.Record{
			record("a1", "123", "2025-2", "ESTUDIANTE V3", "Q1", 3.0),
		}
		svc := NewSuggestionService(repository.New(records), suggestCatalog())

		suggestions, err := svc.Suggest("123", "")

		assert.NoError(t, err)
		assert.Len(t, suggestions, 1)
		// "programa" in the question text selects the matching advice.
		assert.Len(t, suggestions[0].Recommendations, 1)
		assert.Contains(t, suggestions[0].Recommendations[0], "Socialice el programa")
	})

	t.Run("one recommendation per advice even with repeated keywords", func(t *testing.T) {
		catalog := domain.NewCatalog([]domain.Question{
			{Code: "Q1", Category: domain.CategoryPlanning, Text: "Explica el programa del módulo", Weight: 1},
			{Code: "Q2", Category: domain.CategoryPlanning, Text: "Entrega el programa a tiempo", Weight: 1},
		})
		records := []domain.Record{
			record("a1", "123", "2025-2", "ESTUDIANTE V3", "Q1", 2.0),
			record("a1", "123", "2025-2", "ESTUDIANTE V3", "Q2", 2.5),
		}
		svc := NewSuggestionService(repository.New(records), catalog)

		suggestions, err := svc.Suggest("123", "")

		assert.NoError(t, err)
		assert.Len(t, suggestions, 1)
		assert.Len(t, suggestions[0].Recommendations, 1)
	})

	t.Run("category fallback when no keyword matches", func(t *testing.T) {
		catalog := domain.NewCatalog([]domain.Question{
			{Code: "Q1", Category: domain.CategoryPersonal, Text: "Mantiene buena actitud en clase", Weight: 1},
		})
		records := []domain.Record{
			record("a1", "123", "2025-2", "ESTUDIANTE V3", "Q1", 2.0),
		}
		svc := NewSuggestionService(repository.New(records), catalog)

		suggestions, err := svc.Suggest("123", "")

		assert.NoError(t, err)
		assert.Len(t, suggestions, 1)
		assert.Equal(t, []string{
			"Fortalezca las relaciones interpersonales en el aula mediante el respeto, la empatía y la comunicación efectiva.",
		}, suggestions[0].Recommendations)
	})

	t.Run("generic advice for categories outside the knowledge base", func(t *testing.T) {
		records := []domain.Record{
			record("a1", "123", "2025-2", "ESTUDIANTE V3", "Q4", 2.0),
		}
		svc := NewSuggestionService(repository.New(records), suggestCatalog())

		suggestions, err := svc.Suggest("123", "")

		assert.NoError(t, err)
		assert.Len(t, suggestions, 1)
		assert.Equal(t, []string{genericAdvice}, suggestions[0].Recommendations)
	})

	t.Run("worst category first", func(t *testing.T) {
		records := []domain.Record{
			record("a1", "123", "2025-2", "ESTUDIANTE V3", "Q1", 3.5),
			record("a1", "123", "2025-2", "ESTUDIANTE V3", "Q3", 2.0),
		}
		svc := NewSuggestionService(repository.New(records), suggestCatalog())

		suggestions, err := svc.Suggest("123", "")

		assert.NoError(t, err)
		assert.Len(t, suggestions, 2)
		assert.Equal(t, string(domain.CategoryPersonal), suggestions[0].Category)
		assert.Equal(t, 2.0, suggestions[0].Average)
		assert.Equal(t, string(domain.CategoryPlanning), suggestions[1].Category)
	})

	t.Run("comment answers never trigger suggestions", func(t *testing.T) {
		records := []domain.Record{
			record("a1", "123", "2025-2", "ESTUDIANTE V3", "Q9", 1.0),
			record("a1", "123", "2025-2", "ESTUDIANTE V3", "Q3", 5.0),
		}
		svc := NewSuggestionService(repository.New(records), suggestCatalog())

		suggestions, err := svc.Suggest("123", "")

		assert.NoError(t, err)
		assert.Empty(t, suggestions)
	})

	t.Run("unknown professor", func(t *testing.T) {
		svc := NewSuggestionService(repository.New(nil), suggestCatalog())

		_, err := svc.Suggest("999", "")

		assert.ErrorIs(t, err, ErrProfessorNotFound)
	})

	t.Run("known professor without records in the period", func(t *testing.T) {
		records := []domain.Record{
			record("a1", "123", "2025-2", "ESTUDIANTE V3", "Q1", 3.0),
		}
		svc := NewSuggestionService(repository.New(records), suggestCatalog())

		_, err := svc.Suggest("123", "2020-1")

		assert.ErrorIs(t, err, ErrPeriodNotFound)
	})

	t.Run("malformed period", func(t *testing.T) {
		svc := NewSuggestionService(repository.New(nil), suggestCatalog())

		_, err := svc.Suggest("123", "periodo")

		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})
}
