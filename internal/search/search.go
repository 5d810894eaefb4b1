// Package search queries external web-search backends and normalizes their
// responses. Providers are tried in a fixed priority order; the first
// non-empty result set wins.
package search

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

// Result is the normalized shape every provider maps its response into.
// Source names the provider that produced the result. Error is only set on
// the marker entry the bulk runner stores when a whole question failed.
type Result struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Source  string `json:"source,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Provider adapts one external search API.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
}

// ErrAllProvidersFailed is returned when every provider in the chain errored.
// An exhausted chain where at least one provider answered cleanly with zero
// hits is a normal empty outcome, not an error.
var ErrAllProvidersFailed = errors.New("all search providers failed")

// Aggregator walks its providers in priority order and returns the first
// non-empty result set verbatim. Per-provider failures are logged and
// swallowed; they never abort the aggregate call.
type Aggregator struct {
	providers []Provider
}

func NewAggregator(providers ...Provider) *Aggregator {
	return &Aggregator{providers: providers}
}

// Search tries each provider sequentially. Results from the winning provider
// are stamped with its name so downstream consumers keep provenance.
func (a *Aggregator) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	failed := 0
	for _, p := range a.providers {
		results, err := p.Search(ctx, query, maxResults)
		if err != nil {
			log.Warn().Err(err).Str("provider", p.Name()).Str("query", query).Msg("provider failed")
			failed++
			continue
		}
		if len(results) > 0 {
			log.Info().Str("provider", p.Name()).Int("results", len(results)).Msg("provider succeeded")
			for i := range results {
				results[i].Source = p.Name()
			}
			return results, nil
		}
	}

	if len(a.providers) > 0 && failed == len(a.providers) {
		log.Error().Str("query", query).Msg("all search providers failed")
		return []Result{}, ErrAllProvidersFailed
	}
	log.Info().Str("query", query).Msg("no provider returned results")
	return []Result{}, nil
}
