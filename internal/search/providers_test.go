package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTavilyMapsResults(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"results":[
		{"url":"u1","title":"t1","content":"c1"},
		{"url":"u2","title":"t2"},
		{"url":"u3","title":"t3","content":"c3"}
	]}`)

	p := NewTavily("key")
	p.BaseURL = srv.URL

	results, err := p.Search(context.Background(), "acme", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, Result{URL: "u1", Title: "t1", Content: "c1"}, results[0])
	// missing content maps to empty string, not a dropped record
	assert.Equal(t, Result{URL: "u2", Title: "t2"}, results[1])
}

func TestTavilyErrorStatus(t *testing.T) {
	srv := jsonServer(t, http.StatusUnauthorized, `{"detail":"bad key"}`)

	p := NewTavily("key")
	p.BaseURL = srv.URL

	_, err := p.Search(context.Background(), "acme", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "bad key")
}

func TestSerpAPIMapsOrganicResults(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"organic_results":[
		{"link":"l1","title":"t1","snippet":"s1"},
		{"link":"l2","title":"t2","snippet":"s2"}
	]}`)

	p := NewSerpAPI("key")
	p.BaseURL = srv.URL

	results, err := p.Search(context.Background(), "acme", 5)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "l1", results[0].URL)
	assert.Equal(t, "s1", results[0].Content)
}

func TestBraveMapsDescriptions(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"web":{"results":[
		{"url":"u1","title":"t1","description":"d1"}
	]}}`)

	p := NewBrave("key")
	p.BaseURL = srv.URL

	results, err := p.Search(context.Background(), "acme", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "d1", results[0].Content)
}

func TestNewsAPIMapsArticles(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"articles":[
		{"url":"u1","title":"t1","description":"d1"},
		{"url":"u2","title":"t2","description":"d2"},
		{"url":"u3","title":"t3","description":"d3"}
	]}`)

	p := NewNewsAPI("key")
	p.BaseURL = srv.URL

	results, err := p.Search(context.Background(), "acme", 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestBingMapsWebPages(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"webPages":{"value":[
		{"url":"u1","name":"n1","snippet":"s1"}
	]}}`)

	p := NewBing("key")
	p.BaseURL = srv.URL

	results, err := p.Search(context.Background(), "acme", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "n1", results[0].Title)
	assert.Equal(t, "s1", results[0].Content)
}

func TestWikipediaBuildsArticleURLs(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"query":{"search":[
		{"title":"Acme Corporation","snippet":"The <span class=\"searchmatch\">Acme</span> Corporation is fictional"},
		{"title":"Acme","snippet":"plain"}
	]}}`)

	p := NewWikipedia()
	p.BaseURL = srv.URL

	results, err := p.Search(context.Background(), "acme", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, srv.URL+"/wiki/Acme_Corporation", results[0].URL)
	assert.Equal(t, "The Acme Corporation is fictional", results[0].Content)
}
