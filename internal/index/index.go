// Package index stores embedded chunks in a per-company persistent vector
// index and retrieves them by similarity.
package index

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/philippgille/chromem-go"

	"company-research/internal/corpus"
	"company-research/internal/models"
)

// ErrIndexNotFound means no index has been built for the requested company.
// Asking before building is a user error, not a corrupted index.
var ErrIndexNotFound = errors.New("no index built for company")

const collectionName = "research"

// Store manages one chromem index directory per normalized company key.
// Rebuilding a company's index replaces its directory: last write wins.
type Store struct {
	baseDir string
}

func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) companyDir(company string) string {
	return filepath.Join(s.baseDir, corpus.NormalizeCompany(company))
}

// Build persists chunks and their vectors under the company key, replacing
// any previous index for the same key.
func (s *Store) Build(ctx context.Context, company string, chunks []models.Chunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("index build: %d chunks but %d vectors", len(chunks), len(vectors))
	}

	dir := s.companyDir(company)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("clearing previous index: %w", err)
	}

	db, err := chromem.NewPersistentDB(dir, false)
	if err != nil {
		return fmt.Errorf("creating index db: %w", err)
	}
	col, err := db.GetOrCreateCollection(collectionName, nil, nil)
	if err != nil {
		return fmt.Errorf("creating collection: %w", err)
	}

	docs := make([]chromem.Document, len(chunks))
	for i, c := range chunks {
		docs[i] = chromem.Document{
			ID:      fmt.Sprintf("%s-%d-%d", corpus.NormalizeCompany(company), c.QuestionID, i),
			Content: c.Text,
			Metadata: map[string]string{
				"company":     c.Company,
				"question":    c.Question,
				"question_id": strconv.Itoa(c.QuestionID),
			},
			Embedding: vectors[i],
		}
	}
	if len(docs) == 0 {
		return nil
	}
	if err := col.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("adding documents: %w", err)
	}
	return nil
}

// Handle is an opened, read-only view of one company's index.
type Handle struct {
	collection *chromem.Collection
}

// Open loads the persisted index for the company. A missing directory or
// collection yields ErrIndexNotFound.
func (s *Store) Open(company string) (*Handle, error) {
	dir := s.companyDir(company)
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, company)
	}

	db, err := chromem.NewPersistentDB(dir, false)
	if err != nil {
		return nil, fmt.Errorf("opening index db: %w", err)
	}
	col := db.GetCollection(collectionName, nil)
	if col == nil {
		return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, company)
	}
	return &Handle{collection: col}, nil
}

func (h *Handle) Count() int {
	return h.collection.Count()
}

// ScoredChunk is a retrieved chunk with its cosine similarity to the query.
type ScoredChunk struct {
	Chunk      models.Chunk
	Similarity float32
}

// Search returns up to k chunks by descending similarity, metadata intact.
// k larger than the collection clamps to the collection size.
func (h *Handle) Search(ctx context.Context, queryVec []float32, k int) ([]ScoredChunk, error) {
	n := h.collection.Count()
	if n == 0 || k <= 0 {
		return nil, nil
	}
	if k > n {
		k = n
	}

	results, err := h.collection.QueryWithOptions(ctx, chromem.QueryOptions{
		QueryEmbedding: queryVec,
		NResults:       k,
	})
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}

	chunks := make([]ScoredChunk, 0, len(results))
	for _, r := range results {
		qid, _ := strconv.Atoi(r.Metadata["question_id"])
		chunks = append(chunks, ScoredChunk{
			Chunk: models.Chunk{
				Text:       r.Content,
				Company:    r.Metadata["company"],
				Question:   r.Metadata["question"],
				QuestionID: qid,
			},
			Similarity: r.Similarity,
		})
	}
	return chunks, nil
}
