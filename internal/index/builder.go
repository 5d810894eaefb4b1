package index

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/embeddings"

	"company-research/internal/corpus"
	"company-research/internal/models"
)

// Builder turns a persisted corpus into a searchable per-company index:
// parse, chunk, embed, store.
type Builder struct {
	store    *Store
	embedder embeddings.Embedder
	chunker  *Chunker
}

func NewBuilder(store *Store, embedder embeddings.Embedder, chunker *Chunker) *Builder {
	return &Builder{store: store, embedder: embedder, chunker: chunker}
}

// BuildFromCorpus indexes the corpus file for the company and returns the
// number of chunks indexed. Every chunk inherits its source document's
// metadata; chunks never span document boundaries.
func (b *Builder) BuildFromCorpus(ctx context.Context, company string, corpusStore *corpus.Store, corpusPath string) (int, error) {
	docs, err := corpus.ParseFile(corpusStore, corpusPath)
	if err != nil {
		return 0, err
	}

	var chunks []models.Chunk
	for _, doc := range docs {
		parts, err := b.chunker.Split(doc.Content)
		if err != nil {
			return 0, fmt.Errorf("chunking question %d: %w", doc.QuestionID, err)
		}
		for _, text := range parts {
			chunks = append(chunks, models.Chunk{
				Text:       text,
				Company:    company,
				Question:   doc.Question,
				QuestionID: doc.QuestionID,
			})
		}
	}
	log.Info().Int("documents", len(docs)).Int("chunks", len(chunks)).Msg("chunked corpus")

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	var vectors [][]float32
	if len(texts) > 0 {
		vectors, err = b.embedder.EmbedDocuments(ctx, texts)
		if err != nil {
			return 0, fmt.Errorf("embedding chunks: %w", err)
		}
	}

	if err := b.store.Build(ctx, company, chunks, vectors); err != nil {
		return 0, err
	}
	log.Info().Str("company", company).Int("chunks", len(chunks)).Msg("index built")
	return len(chunks), nil
}
