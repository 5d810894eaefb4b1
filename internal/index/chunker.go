package index

import (
	"strings"

	"github.com/tmc/langchaingo/textsplitter"
)

// Chunker splits parsed document text into overlapping windows sized for
// embedding. Splitting prefers paragraph and sentence boundaries and falls
// back to hard cuts, per the recursive character splitter.
type Chunker struct {
	splitter textsplitter.RecursiveCharacter
}

func NewChunker(size, overlap int) *Chunker {
	return &Chunker{
		splitter: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(size),
			textsplitter.WithChunkOverlap(overlap),
		),
	}
}

// Split never returns an empty chunk, and never returns zero chunks for
// input that has any non-whitespace content.
func (c *Chunker) Split(text string) ([]string, error) {
	parts, err := c.splitter.SplitText(text)
	if err != nil {
		return nil, err
	}

	chunks := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			chunks = append(chunks, p)
		}
	}
	if len(chunks) == 0 {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return []string{trimmed}, nil
		}
		return nil, nil
	}
	return chunks, nil
}
