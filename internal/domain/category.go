package domain

import "strings"

// Category is one of the fixed pedagogical groupings used by the evaluation
// forms. Values match the source catalog verbatim so records serialize with
// the labels the dashboard already knows.
type Category string

const (
	CategoryPlanning           Category = "PLANEACIÓN DEL PROCESO ENSEÑANZA - APRENDIZAJE - EVALUACIÓN"
	CategoryTeachingProcess    Category = "CONDUCCIÓN DEL PROCESO ENSEÑANZA-APRENDIZAJE"
	CategoryLearningAssessment Category = "EVALUACIÓN DEL APRENDIZAJE"
	CategoryPersonal           Category = "COMPONENTE PERSONAL"
	CategoryBehavior           Category = "COMPORTAMIENTO"
	CategoryTeachingLearning   Category = "ENSEÑANZA-APRENDIZAJE"
	CategoryEvaluation         Category = "EVALUACIÓN"
	CategoryPostgraduate       Category = "POSGRADO"
	CategoryVirtualClassroom   Category = "ESTRUCTURA DE AULA VIRTUAL"
	CategoryComments           Category = "COMENTARIOS"
)

// Categories lists every known category in catalog order.
func Categories() []Category {
	return []Category{
		CategoryPlanning,
		CategoryTeachingProcess,
		CategoryLearningAssessment,
		CategoryPersonal,
		CategoryBehavior,
		CategoryTeachingLearning,
		CategoryEvaluation,
		CategoryPostgraduate,
		CategoryVirtualClassroom,
		CategoryComments,
	}
}

// ParseCategory matches a raw catalog value against the known categories,
// tolerating case and surrounding whitespace. The boolean is false when the
// value is not recognized.
func ParseCategory(raw string) (Category, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	for _, c := range Categories() {
		if strings.ToUpper(string(c)) == normalized {
			return c, true
		}
	}
	return "", false
}

// IsComment reports whether the category holds free-text questions that
// never carry a numeric score.
func (c Category) IsComment() bool {
	return c == CategoryComments
}

// ShortLabel returns the compact display name used by tables and charts.
func (c Category) ShortLabel() string {
	switch c {
	case CategoryPlanning:
		return "Planeación"
	case CategoryTeachingProcess:
		return "Conducción"
	case CategoryLearningAssessment:
		return "Eval. Aprendizaje"
	case CategoryPersonal:
		return "Personal"
	case CategoryBehavior:
		return "Comportamiento"
	case CategoryTeachingLearning:
		return "Enseñanza-Aprendizaje"
	case CategoryEvaluation:
		return "Evaluación"
	case CategoryPostgraduate:
		return "Posgrado"
	case CategoryVirtualClassroom:
		return "Aula Virtual"
	case CategoryComments:
		return "Comentarios"
	}
	return string(c)
}
