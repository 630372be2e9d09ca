package domain

// Rating scale bounds. Scores outside the bound are dropped at ingestion,
// never clamped.
const (
	MinScore = 1.0
	MaxScore = 5.0
)

// ValidScore reports whether a score falls inside the 1.0-5.0 rating scale.
func ValidScore(v float64) bool {
	return v >= MinScore && v <= MaxScore
}

// Question is one catalog entry. Code is the identity (P147, P148, ...).
// Weight is 1 unless the catalog declares one.
type Question struct {
	Code     string
	Category Category
	Text     string
	Weight   float64
}

// Record is one flattened answer: a single question scored by a single
// evaluator submission. Records are immutable after ingestion.
//
// SubmissionID identifies the source submission the answer belongs to (the
// form row, spanning many question columns). Distinct-submission counts are
// taken over professor+period+evaluator+SubmissionID, never raw row count.
type Record struct {
	SubmissionID  string
	ProfessorID   string
	ProfessorName string
	Period        string
	Evaluator     string
	QuestionCode  string
	Score         float64
}

// Professor is a distinct evaluated professor observed during ingestion.
// Name is the first non-empty name seen for the document id.
type Professor struct {
	ID   string
	Name string
}
