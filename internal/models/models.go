package models

// ParsedDocument is one question's worth of search content, flattened into
// a single attributed text block.
type ParsedDocument struct {
	Question   string
	Content    string
	QuestionID int
}

// Chunk is the unit of indexing: a bounded slice of parsed document text
// with the provenance needed to attribute answers.
type Chunk struct {
	Text       string
	Company    string
	Question   string
	QuestionID int
}
