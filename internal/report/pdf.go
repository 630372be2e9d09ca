package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/barrazadevis/evaluacion-dashboard-backend/internal/service"
	"github.com/go-pdf/fpdf"
)

// Institutional palette, matching the dashboard frontend.
var (
	primaryR, primaryG, primaryB       = 0, 69, 137
	secondaryR, secondaryG, secondaryB = 255, 237, 0
)

// Generator renders professor evaluation reports as PDF documents. It is
// stateless; one instance serves all requests.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// ProfessorReport renders the full report for one professor: averages by
// category and evaluator plus the improvement suggestions.
func (g *Generator) ProfessorReport(report service.AverageReport, suggestions []service.Suggestion) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(19, 19, 19)
	pdf.SetAutoPageBreak(true, 19)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Página %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(primaryR, primaryG, primaryB)
	pdf.CellFormat(0, 12, tr("Reporte de Evaluación Docente"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(110, 110, 110)
	periodLabel := report.Period
	if periodLabel == "" {
		periodLabel = "Todos los períodos"
	}
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Generado el %s", time.Now().Format("2006-01-02"))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Professor block
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 7, tr(report.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Documento: %s", report.ProfessorID)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Período: %s", periodLabel)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Total de evaluaciones: %d", report.TotalEvaluations)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Overall score band
	pdf.SetFillColor(secondaryR, secondaryG, secondaryB)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Promedio general: %.2f / 5.00", report.Overall)), "", 1, "C", true, 0, "")
	pdf.Ln(6)

	g.sectionTitle(pdf, tr, "Promedios por categoría")
	g.tableHeader(pdf, tr, []string{"Categoría", "Promedio", "Evaluaciones"}, []float64{100, 38, 38})
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, cat := range report.ByCategory {
		pdf.CellFormat(100, 8, tr(cat.ShortLabel), "1", 0, "L", false, 0, "")
		pdf.CellFormat(38, 8, fmt.Sprintf("%.2f", cat.Average), "1", 0, "C", false, 0, "")
		pdf.CellFormat(38, 8, fmt.Sprintf("%d", cat.TotalEvaluations), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	g.sectionTitle(pdf, tr, "Promedios por actor evaluador")
	g.tableHeader(pdf, tr, []string{"Actor", "Promedio", "Evaluaciones"}, []float64{100, 38, 38})
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, ev := range report.ByEvaluator {
		pdf.CellFormat(100, 8, tr(ev.Evaluator), "1", 0, "L", false, 0, "")
		pdf.CellFormat(38, 8, fmt.Sprintf("%.2f", ev.Average), "1", 0, "C", false, 0, "")
		pdf.CellFormat(38, 8, fmt.Sprintf("%d", ev.TotalEvaluations), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	g.sectionTitle(pdf, tr, "Propuestas de mejora")
	if len(suggestions) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(0, 6, tr("Todas las categorías alcanzan el umbral esperado (4.00). No se generan recomendaciones."), "", "L", false)
	}
	for _, s := range suggestions {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(primaryR, primaryG, primaryB)
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("%s - promedio %.2f", s.ShortLabel, s.Average)), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(90, 90, 90)
		for _, q := range s.Questions {
			pdf.MultiCell(0, 5, tr(fmt.Sprintf("%s (%.2f): %s", q.Code, q.Average, q.Text)), "", "L", false)
		}

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		for _, rec := range s.Recommendations {
			pdf.MultiCell(0, 6, tr("• "+rec), "", "L", false)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *Generator) sectionTitle(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(primaryR, primaryG, primaryB)
	pdf.CellFormat(0, 9, tr(title), "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func (g *Generator) tableHeader(pdf *fpdf.Fpdf, tr func(string) string, titles []string, widths []float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(primaryR, primaryG, primaryB)
	pdf.SetTextColor(255, 255, 255)
	for i, t := range titles {
		ln := 0
		if i == len(titles)-1 {
			ln = 1
		}
		pdf.CellFormat(widths[i], 8, tr(t), "1", ln, "C", true, 0, "")
	}
}
