package corpus

import (
	"context"

	"github.com/rs/zerolog/log"

	"company-research/internal/search"
)

// Searcher is the slice of the aggregator the runner needs.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]search.Result, error)
}

// Runner executes one search per question, sequentially and in order, and
// persists the collected corpus as a single file at the end.
type Runner struct {
	searcher   Searcher
	store      *Store
	maxResults int
}

func NewRunner(searcher Searcher, store *Store, maxResults int) *Runner {
	return &Runner{searcher: searcher, store: store, maxResults: maxResults}
}

// Run returns the path of the persisted corpus file. A failed question is
// recorded as a single error-marker entry so the corpus always has one entry
// per question; no question is ever dropped and no failure aborts the run.
func (r *Runner) Run(ctx context.Context, company string, questions []string) (string, error) {
	c := &Corpus{}
	for i, question := range questions {
		log.Info().Int("q", i+1).Str("question", question).Msg("searching")
		results, err := r.searcher.Search(ctx, question, r.maxResults)
		if err != nil {
			log.Warn().Err(err).Str("question", question).Msg("search failed, recording error entry")
			c.Add(question, []search.Result{{Error: err.Error()}})
			continue
		}
		c.Add(question, results)
	}

	path, err := r.store.Save(company, c)
	if err != nil {
		return "", err
	}
	log.Info().Str("path", path).Int("questions", len(questions)).Msg("corpus saved")
	return path, nil
}
