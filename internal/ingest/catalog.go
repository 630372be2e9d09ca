package ingest

import (
	"fmt"
	"strconv"

	"github.com/barrazadevis/evaluacion-dashboard-backend/internal/domain"
	"go.uber.org/zap"
)

// Catalog file columns. PESO is optional; when present it declares a
// per-question weight and averages become weighted.
const (
	colQuestionCode     = "IDPREGUNTA"
	colQuestionCategory = "CATEGORIA"
	colQuestionText     = "PREGUNTA"
	colQuestionWeight   = "PESO"
)

// parseCatalog converts the questions file into catalog entries. Rows with
// no code are skipped; unrecognized categories fall back to COMENTARIOS so
// one bad catalog line never loses the rest of the file.
func parseCatalog(raw []byte, logger *zap.Logger) ([]domain.Question, error) {
	t, err := parseTable(decodeText(raw))
	if err != nil {
		return nil, err
	}
	if missing := t.missingColumns(colQuestionCode, colQuestionCategory, colQuestionText); len(missing) > 0 {
		return nil, fmt.Errorf("catalog missing required columns %v", missing)
	}

	var questions []domain.Question
	for _, r := range t.Rows {
		code := r.Fields[colQuestionCode]
		if code == "" {
			logger.Warn("skipping catalog row without question code", zap.Int("line", r.Line))
			continue
		}

		category, ok := domain.ParseCategory(r.Fields[colQuestionCategory])
		if !ok {
			logger.Warn("unrecognized category, assigning to comments",
				zap.String("question", code),
				zap.String("category", r.Fields[colQuestionCategory]))
			category = domain.CategoryComments
		}

		weight := 1.0
		if rawWeight := r.Fields[colQuestionWeight]; rawWeight != "" {
			w, err := strconv.ParseFloat(rawWeight, 64)
			if err != nil || w <= 0 {
				logger.Warn("invalid question weight, using 1",
					zap.String("question", code),
					zap.String("weight", rawWeight))
			} else {
				weight = w
			}
		}

		questions = append(questions, domain.Question{
			Code:     code,
			Category: category,
			Text:     r.Fields[colQuestionText],
			Weight:   weight,
		})
	}
	return questions, nil
}
