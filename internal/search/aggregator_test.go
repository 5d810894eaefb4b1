package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	name    string
	results []Result
	err     error
	calls   int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func TestAggregatorFirstNonEmptyWins(t *testing.T) {
	first := &fakeProvider{name: "first", results: []Result{
		{URL: "u1", Title: "t1", Content: "c1"},
		{URL: "u2", Title: "t2", Content: "c2"},
	}}
	second := &fakeProvider{name: "second", results: []Result{{URL: "other", Title: "other"}}}

	agg := NewAggregator(first, second)
	results, err := agg.Search(context.Background(), "acme", 5)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "u1", results[0].URL)
	assert.Equal(t, "t1", results[0].Title)
	assert.Equal(t, "c1", results[0].Content)
	assert.Equal(t, "u2", results[1].URL)
	// winning provider is recorded, lower-priority providers never run
	assert.Equal(t, "first", results[0].Source)
	assert.Equal(t, "first", results[1].Source)
	assert.Equal(t, 0, second.calls)
}

func TestAggregatorFailsOver(t *testing.T) {
	broken := &fakeProvider{name: "broken", err: errors.New("rate limited")}
	empty := &fakeProvider{name: "empty"}
	fallback := &fakeProvider{name: "fallback", results: []Result{{URL: "u", Title: "t"}}}

	agg := NewAggregator(broken, empty, fallback)
	results, err := agg.Search(context.Background(), "acme", 5)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "fallback", results[0].Source)
	assert.Equal(t, 1, broken.calls)
	assert.Equal(t, 1, empty.calls)
}

func TestAggregatorAllProvidersFail(t *testing.T) {
	providers := []Provider{
		&fakeProvider{name: "a", err: errors.New("auth")},
		&fakeProvider{name: "b", err: errors.New("network")},
		&fakeProvider{name: "c", err: errors.New("malformed")},
	}

	agg := NewAggregator(providers...)
	results, err := agg.Search(context.Background(), "xyz123nonsense", 5)

	require.ErrorIs(t, err, ErrAllProvidersFailed)
	assert.Empty(t, results)
	assert.NotNil(t, results)
}

func TestAggregatorAllEmptyIsNotAnError(t *testing.T) {
	agg := NewAggregator(&fakeProvider{name: "a"}, &fakeProvider{name: "b"})

	results, err := agg.Search(context.Background(), "obscure", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestAggregatorOneCleanEmptyMeansNoError(t *testing.T) {
	agg := NewAggregator(
		&fakeProvider{name: "a", err: errors.New("down")},
		&fakeProvider{name: "b"}, // ran cleanly, zero hits
	)

	results, err := agg.Search(context.Background(), "obscure", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}
