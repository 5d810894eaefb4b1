// Package report synthesizes a Markdown narrative from the raw corpus.
// Unlike QA, this path bypasses the vector index: the report wants broad
// coverage of everything collected, not on-demand retrieval.
package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"company-research/internal/corpus"
	"company-research/internal/llm"
	"company-research/internal/models"
)

// resultsPerQuestion bounds how much raw material each question contributes
// to the report prompt.
const resultsPerQuestion = 3

// Synthesizer builds the report prompt from a corpus file and delegates the
// narrative to the completer.
type Synthesizer struct {
	store     *corpus.Store
	completer llm.Completer
}

func NewSynthesizer(store *corpus.Store, completer llm.Completer) *Synthesizer {
	return &Synthesizer{store: store, completer: completer}
}

// Synthesize returns the Markdown report for the given corpus file.
func (s *Synthesizer) Synthesize(ctx context.Context, corpusPath string) (string, error) {
	c, err := s.store.Load(corpusPath)
	if err != nil {
		return "", err
	}

	prompt := BuildPrompt(c)
	out, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generating report: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// BuildPrompt lays out each question with up to three labeled source blocks.
// Results with empty bodies (including error markers) contribute nothing.
func BuildPrompt(c *corpus.Corpus) string {
	var b strings.Builder
	b.WriteString(models.ReportPromptHeader)

	for i, entry := range c.Entries {
		results := entry.Results
		if len(results) > resultsPerQuestion {
			results = results[:resultsPerQuestion]
		}
		var content strings.Builder
		for _, r := range results {
			body := strings.TrimSpace(r.Content)
			if body == "" {
				continue
			}
			fmt.Fprintf(&content, "Title: %s\nContent: %s\nSource: %s\n\n", r.Title, body, r.URL)
		}
		fmt.Fprintf(&b, "\nQ%d. %s\n%s\n---\n", i+1, entry.Question, content.String())
	}
	return b.String()
}

// RenderHTML converts the Markdown report into a standalone HTML fragment.
func RenderHTML(markdown string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("rendering report html: %w", err)
	}
	return buf.String(), nil
}
