package report

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/barrazadevis/evaluacion-dashboard-backend/internal/service"
	"github.com/stretchr/testify/assert"
)

func sampleReport() service.AverageReport {
	return service.AverageReport{
		ProfessorID:      "123456",
		Name:             "Ana Díaz",
		Period:           "2025-2",
		Overall:          4.64,
		TotalEvaluations: 12,
		ByCategory: []service.CategoryAverage{
			{Category: "ENSEÑANZA-APRENDIZAJE", ShortLabel: "Enseñanza", Average: 4.7, TotalEvaluations: 12},
			{Category: "EVALUACIÓN", ShortLabel: "Evaluación", Average: 4.5, TotalEvaluations: 10},
		},
		ByEvaluator: []service.EvaluatorAverage{
			{Evaluator: "AUTOEVALUACIÓN V2", Average: 5.0, TotalEvaluations: 1},
			{Evaluator: "ESTUDIANTE V3", Average: 4.28, TotalEvaluations: 11},
		},
	}
}

func TestProfessorReport(t *testing.T) {
	gen := NewGenerator()

	t.Run("produces a pdf document", func(t *testing.T) {
		data, err := gen.ProfessorReport(sampleReport(), nil)

		assert.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
		assert.Greater(t, len(data), 1000)
	})

	t.Run("includes the suggestions section", func(t *testing.T) {
		suggestions := []service.Suggestion{
			{
				Category:        "COMPONENTE PERSONAL",
				ShortLabel:      "Personal",
				Average:         3.2,
				Questions:       []service.FlaggedQuestion{{Code: "Q3", Text: "Trata con respeto", Average: 3.2}},
				Recommendations: []string{"Fortalezca la comunicación con los estudiantes."},
			},
		}

		plain, err := gen.ProfessorReport(sampleReport(), nil)
		assert.NoError(t, err)
		withSuggestions, err := gen.ProfessorReport(sampleReport(), suggestions)
		assert.NoError(t, err)

		assert.Greater(t, len(withSuggestions), len(plain))
	})

	t.Run("report without period renders", func(t *testing.T) {
		rep := sampleReport()
		rep.Period = ""

		data, err := gen.ProfessorReport(rep, nil)

		assert.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	})
}

func TestWriteArchive(t *testing.T) {
	t.Run("bundles named files", func(t *testing.T) {
		files := []ArchiveFile{
			{Name: "reporte_123_2025-2.pdf", Data: []byte("uno")},
			{Name: "reporte_456_2025-2.pdf", Data: []byte("dos")},
		}

		var buf bytes.Buffer
		err := WriteArchive(&buf, files)

		assert.NoError(t, err)
		zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
		assert.NoError(t, err)
		assert.Len(t, zr.File, 2)
		assert.Equal(t, "reporte_123_2025-2.pdf", zr.File[0].Name)

		rc, err := zr.File[1].Open()
		assert.NoError(t, err)
		defer rc.Close()
		content, err := io.ReadAll(rc)
		assert.NoError(t, err)
		assert.Equal(t, []byte("dos"), content)
	})

	t.Run("empty archive is still valid", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteArchive(&buf, nil)

		assert.NoError(t, err)
		_, err = zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
		assert.NoError(t, err)
	})
}
