package api

import "github.com/barrazadevis/evaluacion-dashboard-backend/internal/service"

// JSON field names match the dashboard frontend contract.

type professorItem struct {
	Documento         string `json:"documento"`
	NombreCompleto    string `json:"nombre_completo"`
	TotalEvaluaciones int    `json:"total_evaluaciones"`
}

type categoryItem struct {
	Categoria         string  `json:"categoria"`
	CategoriaCorta    string  `json:"categoria_corta"`
	Promedio          float64 `json:"promedio"`
	TotalEvaluaciones int     `json:"total_evaluaciones"`
}

type evaluatorItem struct {
	Actor             string  `json:"actor"`
	Promedio          float64 `json:"promedio"`
	TotalEvaluaciones int     `json:"total_evaluaciones"`
}

type averagesResponse struct {
	Documento             string          `json:"documento"`
	NombreCompleto        string          `json:"nombre_completo"`
	Periodo               *string         `json:"periodo"`
	PromedioGeneral       float64         `json:"promedio_general"`
	TotalEvaluaciones     int             `json:"total_evaluaciones"`
	PromediosPorCategoria []categoryItem  `json:"promedios_por_categoria"`
	PromediosPorActor     []evaluatorItem `json:"promedios_por_actor"`
}

type answerItem struct {
	CodigoPregunta string  `json:"codigo_pregunta"`
	TextoPregunta  string  `json:"texto_pregunta"`
	Categoria      string  `json:"categoria"`
	Calificacion   float64 `json:"calificacion"`
	TipoFormulario string  `json:"tipo_formulario"`
}

type detailResponse struct {
	Documento         string       `json:"documento"`
	NombreCompleto    string       `json:"nombre_completo"`
	Periodo           *string      `json:"periodo"`
	TotalEvaluaciones int          `json:"total_evaluaciones"`
	Respuestas        []answerItem `json:"respuestas"`
}

type flaggedQuestionItem struct {
	CodigoPregunta       string  `json:"codigo_pregunta"`
	TextoPregunta        string  `json:"texto_pregunta"`
	CalificacionPromedio float64 `json:"calificacion_promedio"`
}

type suggestionItem struct {
	Categoria         string                `json:"categoria"`
	CategoriaCorta    string                `json:"categoria_corta"`
	PromedioCategoria float64               `json:"promedio_categoria"`
	Preguntas         []flaggedQuestionItem `json:"preguntas"`
	Recomendaciones   []string              `json:"recomendaciones"`
}

type suggestionsResponse struct {
	Documento          string           `json:"documento"`
	Periodo            *string          `json:"periodo"`
	CategoriasAMejorar []suggestionItem `json:"categorias_a_mejorar"`
}

type periodItem struct {
	Periodo           string `json:"periodo"`
	TotalEvaluaciones int    `json:"total_evaluaciones"`
}

type evaluatorSummaryItem struct {
	Actor             string `json:"actor"`
	TotalEvaluaciones int    `json:"total_evaluaciones"`
}

// periodOrNil keeps the original API's null for an unfiltered report.
func periodOrNil(period string) *string {
	if period == "" {
		return nil
	}
	return &period
}

func toProfessorItems(in []service.ProfessorSummary) []professorItem {
	out := make([]professorItem, len(in))
	for i, p := range in {
		out[i] = professorItem{
			Documento:         p.ID,
			NombreCompleto:    p.Name,
			TotalEvaluaciones: p.TotalEvaluations,
		}
	}
	return out
}

func toAveragesResponse(r service.AverageReport) averagesResponse {
	resp := averagesResponse{
		Documento:             r.ProfessorID,
		NombreCompleto:        r.Name,
		Periodo:               periodOrNil(r.Period),
		PromedioGeneral:       r.Overall,
		TotalEvaluaciones:     r.TotalEvaluations,
		PromediosPorCategoria: make([]categoryItem, len(r.ByCategory)),
		PromediosPorActor:     make([]evaluatorItem, len(r.ByEvaluator)),
	}
	for i, c := range r.ByCategory {
		resp.PromediosPorCategoria[i] = categoryItem{
			Categoria:         c.Category,
			CategoriaCorta:    c.ShortLabel,
			Promedio:          c.Average,
			TotalEvaluaciones: c.TotalEvaluations,
		}
	}
	for i, e := range r.ByEvaluator {
		resp.PromediosPorActor[i] = evaluatorItem{
			Actor:             e.Evaluator,
			Promedio:          e.Average,
			TotalEvaluaciones: e.TotalEvaluations,
		}
	}
	return resp
}

func toDetailResponse(d service.DetailReport) detailResponse {
	resp := detailResponse{
		Documento:         d.ProfessorID,
		NombreCompleto:    d.Name,
		Periodo:           periodOrNil(d.Period),
		TotalEvaluaciones: d.TotalEvaluations,
		Respuestas:        make([]answerItem, len(d.Answers)),
	}
	for i, a := range d.Answers {
		resp.Respuestas[i] = answerItem{
			CodigoPregunta: a.QuestionCode,
			TextoPregunta:  a.QuestionText,
			Categoria:      a.Category,
			Calificacion:   a.Score,
			TipoFormulario: a.Evaluator,
		}
	}
	return resp
}

func toSuggestionsResponse(professorID, period string, in []service.Suggestion) suggestionsResponse {
	resp := suggestionsResponse{
		Documento:          professorID,
		Periodo:            periodOrNil(period),
		CategoriasAMejorar: make([]suggestionItem, len(in)),
	}
	for i, s := range in {
		item := suggestionItem{
			Categoria:         s.Category,
			CategoriaCorta:    s.ShortLabel,
			PromedioCategoria: s.Average,
			Preguntas:         make([]flaggedQuestionItem, len(s.Questions)),
			Recomendaciones:   s.Recommendations,
		}
		for j, q := range s.Questions {
			item.Preguntas[j] = flaggedQuestionItem{
				CodigoPregunta:       q.Code,
				TextoPregunta:        q.Text,
				CalificacionPromedio: q.Average,
			}
		}
		resp.CategoriasAMejorar[i] = item
	}
	return resp
}
