package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/barrazadevis/evaluacion-dashboard-backend/internal/domain"
	"go.uber.org/zap"
)

// Evaluation file columns. Question columns are dynamic: any header that
// resolves in the catalog is an answer column; everything else is ignored,
// so the column set may drift between period files.
const (
	colSubmissionID  = "PEGE_ID"
	colProfessorID   = "DOCUMENTO"
	colProfessorName = "NOMBRECOMPLETO"
	colPeriod        = "PERIODO"
	colEvaluator     = "FORMULARIO"
)

// fileStats accumulates per-file skip accounting.
type fileStats struct {
	Rows           int
	Records        int
	SkippedRows    int
	SkippedAnswers int
}

// parseEvaluations flattens one period file into records. One source row is
// one submission; each catalog-resolved answer column yields one record.
// fallbackPeriod applies when the file has no PERIODO column.
func parseEvaluations(raw []byte, catalog *domain.Catalog, fallbackPeriod, source string, logger *zap.Logger) ([]domain.Record, fileStats, error) {
	var stats fileStats

	t, err := parseTable(decodeText(raw))
	if err != nil {
		return nil, stats, err
	}
	if missing := t.missingColumns(colProfessorID, colEvaluator); len(missing) > 0 {
		return nil, stats, fmt.Errorf("evaluation file missing required columns %v", missing)
	}

	hasPeriodColumn := len(t.missingColumns(colPeriod)) == 0
	if !hasPeriodColumn && fallbackPeriod == "" {
		return nil, stats, fmt.Errorf("evaluation file has no %s column and no period in its name", colPeriod)
	}

	// Answer columns in header order keeps output ordering stable.
	var answerColumns []string
	for _, h := range t.Headers {
		if _, ok := catalog.ByCode(h); ok {
			answerColumns = append(answerColumns, h)
		}
	}

	var records []domain.Record
	for _, r := range t.Rows {
		stats.Rows++

		professorID := r.Fields[colProfessorID]
		if professorID == "" {
			stats.SkippedRows++
			logger.Warn("skipping row without professor id",
				zap.String("file", source), zap.Int("line", r.Line))
			continue
		}

		period := fallbackPeriod
		if hasPeriodColumn && r.Fields[colPeriod] != "" {
			period = r.Fields[colPeriod]
		}
		if period == "" {
			stats.SkippedRows++
			logger.Warn("skipping row without period",
				zap.String("file", source), zap.Int("line", r.Line))
			continue
		}

		submissionID := r.Fields[colSubmissionID]
		if submissionID == "" {
			submissionID = fmt.Sprintf("%s:%d", source, r.Line)
		}

		name := r.Fields[colProfessorName]
		evaluator := strings.ToUpper(r.Fields[colEvaluator])

		for _, col := range answerColumns {
			value := r.Fields[col]
			if value == "" {
				continue // unanswered question, not an error
			}
			score, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64)
			if err != nil || !domain.ValidScore(score) {
				stats.SkippedAnswers++
				logger.Warn("dropping invalid score",
					zap.String("file", source),
					zap.Int("line", r.Line),
					zap.String("question", col),
					zap.String("value", value))
				continue
			}
			records = append(records, domain.Record{
				SubmissionID:  submissionID,
				ProfessorID:   professorID,
				ProfessorName: name,
				Period:        period,
				Evaluator:     evaluator,
				QuestionCode:  col,
				Score:         score,
			})
			stats.Records++
		}
	}
	return records, stats, nil
}
