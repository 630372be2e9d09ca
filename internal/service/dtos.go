package service

// ProfessorSummary is one row of the professor listing.
type ProfessorSummary struct {
	ID               string
	Name             string
	TotalEvaluations int
}

// CategoryAverage is one per-category partition of an average report.
// TotalEvaluations counts distinct submissions that scored the category.
type CategoryAverage struct {
	Category         string
	ShortLabel       string
	Average          float64
	TotalEvaluations int
}

// EvaluatorAverage is one per-evaluator-type partition.
type EvaluatorAverage struct {
	Evaluator        string
	Average          float64
	TotalEvaluations int
}

// AverageReport aggregates one professor, optionally scoped to a period.
// Period is empty when the report spans all periods.
type AverageReport struct {
	ProfessorID      string
	Name             string
	Period           string
	Overall          float64
	TotalEvaluations int
	ByCategory       []CategoryAverage
	ByEvaluator      []EvaluatorAverage
}

// AnswerDetail is one scored answer in the per-question detail listing.
type AnswerDetail struct {
	QuestionCode string
	QuestionText string
	Category     string
	Score        float64
	Evaluator    string
}

// DetailReport lists every scored answer of one professor.
type DetailReport struct {
	ProfessorID      string
	Name             string
	Period           string
	TotalEvaluations int
	Answers          []AnswerDetail
}

// PeriodSummary is one row of the period listing.
type PeriodSummary struct {
	Period           string
	TotalEvaluations int
}

// EvaluatorSummary is one row of the evaluator-type listing.
type EvaluatorSummary struct {
	Evaluator        string
	TotalEvaluations int
}

// FlaggedQuestion is a low-scoring question inside a flagged category.
type FlaggedQuestion struct {
	Code    string
	Text    string
	Average float64
}

// Suggestion groups the improvement advice for one underperforming
// category, worst questions first.
type Suggestion struct {
	Category        string
	ShortLabel      string
	Average         float64
	Questions       []FlaggedQuestion
	Recommendations []string
}
