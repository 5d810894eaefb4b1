package corpus

import (
	"regexp"
	"strings"

	"company-research/internal/models"
)

// topResults is how many results per question feed the parsed document.
const topResults = 3

var newlineRuns = regexp.MustCompile(`\n+`)

// ParseFile loads a corpus file and flattens it into one ParsedDocument per
// question, in corpus order.
func ParseFile(store *Store, path string) ([]models.ParsedDocument, error) {
	c, err := store.Load(path)
	if err != nil {
		return nil, err
	}
	return Parse(c), nil
}

// Parse flattens each question's top results into an attributed text block.
// Question IDs are the 1-based corpus position. A question with no results
// yields an empty content block, not an error.
func Parse(c *Corpus) []models.ParsedDocument {
	docs := make([]models.ParsedDocument, 0, len(c.Entries))
	for i, entry := range c.Entries {
		var b strings.Builder
		results := entry.Results
		if len(results) > topResults {
			results = results[:topResults]
		}
		for _, r := range results {
			content := newlineRuns.ReplaceAllString(strings.TrimSpace(r.Content), "\n")
			b.WriteString("### " + r.Title + "\n")
			b.WriteString(content + "\n")
			b.WriteString("(Source: " + r.URL + ")\n\n")
		}
		docs = append(docs, models.ParsedDocument{
			Question:   trimQuestion(entry.Question),
			Content:    b.String(),
			QuestionID: i + 1,
		})
	}
	return docs
}

// trimQuestion drops the bullet decoration LLM-generated question lists
// tend to carry.
func trimQuestion(q string) string {
	return strings.TrimSpace(strings.Trim(q, "* "))
}
