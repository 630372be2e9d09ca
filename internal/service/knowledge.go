package service

import "github.com/barrazadevis/evaluacion-dashboard-backend/internal/domain"

// keywordAdvice pairs a case-insensitive substring of a question text with
// the recommendation it triggers. Slices keep matching order deterministic.
type keywordAdvice struct {
	keyword string
	advice  string
}

type categoryAdvice struct {
	fallback string
	keywords []keywordAdvice
}

// genericAdvice covers flagged categories absent from the knowledge base,
// so a flagged category never yields an empty recommendation set.
const genericAdvice = "Se recomienda revisar y fortalecer las competencias relacionadas con este aspecto mediante capacitación y reflexión sobre su práctica docente."

// adviceBase is the static keyword-to-recommendation knowledge base, keyed
// by category.
var adviceBase = map[domain.Category]categoryAdvice{
	domain.CategoryPlanning: {
		fallback: "Revise y actualice la planificación de sus clases, asegurándose de incluir objetivos claros, metodologías apropiadas y criterios de evaluación alineados con las competencias del módulo.",
		keywords: []keywordAdvice{
			{"conocimientos actualizados", "Actualice sus conocimientos mediante capacitaciones, lectura de literatura reciente y participación en comunidades académicas de su disciplina."},
			{"programa", "Socialice el programa del módulo desde el inicio del periodo, explicando objetivos, contenidos, metodología y criterios de evaluación."},
			{"plan", "Desarrolle un plan de trabajo detallado que sea coherente con el programa y las necesidades de aprendizaje de los estudiantes."},
		},
	},
	domain.CategoryTeachingProcess: {
		fallback: "Implemente metodologías activas que promuevan la participación estudiantil, el pensamiento crítico y la aplicación práctica del conocimiento.",
		keywords: []keywordAdvice{
			{"proyectos de aula", "Diseñe proyectos de aula que conecten la teoría con situaciones reales y promuevan la investigación y creatividad estudiantil."},
			{"recursos", "Incorpore diversos recursos didácticos (TIC, materiales audiovisuales, laboratorios) para enriquecer el proceso de aprendizaje."},
			{"metodología", "Diversifique las estrategias metodológicas para atender diferentes estilos de aprendizaje y mantener la motivación estudiantil."},
			{"tecnología", "Integre herramientas tecnológicas (aula virtual, aplicaciones, simuladores) de manera efectiva en sus clases."},
		},
	},
	domain.CategoryLearningAssessment: {
		fallback: "Diseñe evaluaciones variadas que midan de forma integral las competencias desarrolladas, proporcionando retroalimentación oportuna y constructiva.",
		keywords: []keywordAdvice{
			{"métodos", "Aplique diferentes métodos de evaluación (pruebas escritas, orales, prácticas, proyectos) según las competencias a valorar."},
			{"retroalimentación", "Proporcione retroalimentación clara, específica y oportuna que oriente la mejora del aprendizaje estudiantil."},
			{"coherente", "Asegúrese de que las evaluaciones estén alineadas con los objetivos de aprendizaje y las actividades realizadas en clase."},
			{"criterios", "Defina y comunique claramente los criterios de evaluación antes de cada actividad evaluativa."},
		},
	},
	domain.CategoryPersonal: {
		fallback: "Fortalezca las relaciones interpersonales en el aula mediante el respeto, la empatía y la comunicación efectiva.",
		keywords: []keywordAdvice{
			{"respeto", "Mantenga una actitud de respeto y tolerancia hacia la diversidad de ideas, creencias y características de los estudiantes."},
			{"disciplina", "Establezca normas claras de convivencia y mantenga un ambiente de aprendizaje ordenado y propicio."},
			{"comunicación", "Desarrolle habilidades de escucha activa y comunicación asertiva para mejorar la interacción con estudiantes."},
			{"puntualidad", "Demuestre responsabilidad y compromiso cumpliendo puntualmente con horarios y compromisos académicos."},
		},
	},
}
