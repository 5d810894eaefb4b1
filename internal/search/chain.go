package search

import "company-research/internal/config"

// NewDefaultAggregator builds the production failover chain. Order reflects
// reliability and content quality: paid structured-content APIs first, the
// keyless Wikipedia fallback last. Providers with missing keys stay in the
// chain; their auth failures are swallowed like any other provider failure,
// which keeps precedence deterministic regardless of which keys are set.
func NewDefaultAggregator(cfg config.SearchConfig) *Aggregator {
	return NewAggregator(
		NewTavily(cfg.TavilyKey),
		NewSerpAPI(cfg.SerpAPIKey),
		NewBrave(cfg.BraveKey),
		NewNewsAPI(cfg.NewsAPIKey),
		NewBing(cfg.RapidAPIKey),
		NewWikipedia(),
	)
}
