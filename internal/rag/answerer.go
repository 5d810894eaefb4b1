// Package rag answers questions about a company from its built index.
package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/embeddings"

	"company-research/internal/index"
	"company-research/internal/llm"
	"company-research/internal/models"
)

// Answerer retrieves the top-k chunks for a question and delegates the
// grounded answer to the completer. It is stateless: the index is opened
// read-only per call and nothing is written.
type Answerer struct {
	indexes   *index.Store
	embedder  embeddings.Embedder
	completer llm.Completer
}

func NewAnswerer(indexes *index.Store, embedder embeddings.Embedder, completer llm.Completer) *Answerer {
	return &Answerer{indexes: indexes, embedder: embedder, completer: completer}
}

// Answer fails with index.ErrIndexNotFound before any embedding or LLM call
// when no index exists for the company. Retrieved chunk texts are joined in
// rank order, double-newline separated, as the prompt context.
func (a *Answerer) Answer(ctx context.Context, company, question string, k int) (string, error) {
	handle, err := a.indexes.Open(company)
	if err != nil {
		return "", err
	}

	queryVec, err := a.embedder.EmbedQuery(ctx, question)
	if err != nil {
		return "", fmt.Errorf("embedding question: %w", err)
	}

	scored, err := handle.Search(ctx, queryVec, k)
	if err != nil {
		return "", err
	}
	log.Debug().Str("company", company).Int("retrieved", len(scored)).Msg("retrieved context chunks")

	texts := make([]string, len(scored))
	for i, s := range scored {
		texts[i] = s.Chunk.Text
	}
	context := strings.Join(texts, "\n\n")

	prompt := fmt.Sprintf(models.QAPromptTemplate, context, question)
	answer, err := a.completer.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generating answer: %w", err)
	}
	return strings.TrimSpace(answer), nil
}
