package domain

// Catalog is the immutable question index built once at startup. Lookups by
// code are O(1); the catalog never changes after construction so it is safe
// to share across request goroutines without locking.
type Catalog struct {
	questions  []Question
	byCode     map[string]Question
	byCategory map[Category][]Question
	weighted   bool
}

// NewCatalog builds the code and category indexes over the given questions.
// Later duplicates of a code are ignored.
func NewCatalog(questions []Question) *Catalog {
	c := &Catalog{
		byCode:     make(map[string]Question, len(questions)),
		byCategory: make(map[Category][]Question),
	}
	for _, q := range questions {
		if q.Weight == 0 {
			q.Weight = 1
		}
		if _, exists := c.byCode[q.Code]; exists {
			continue
		}
		c.questions = append(c.questions, q)
		c.byCode[q.Code] = q
		c.byCategory[q.Category] = append(c.byCategory[q.Category], q)
		if q.Weight != 1 {
			c.weighted = true
		}
	}
	return c
}

// ByCode looks up a question by its identifier.
func (c *Catalog) ByCode(code string) (Question, bool) {
	q, ok := c.byCode[code]
	return q, ok
}

// ByCategory returns the questions belonging to one category, in catalog
// order.
func (c *Catalog) ByCategory(cat Category) []Question {
	return c.byCategory[cat]
}

// Questions returns every catalog entry in load order.
func (c *Catalog) Questions() []Question {
	return c.questions
}

// HasWeights reports whether any question declares a weight other than 1.
// When false all averages reduce to plain arithmetic means.
func (c *Catalog) HasWeights() bool {
	return c.weighted
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.questions)
}
