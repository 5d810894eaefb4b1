package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

const wikipediaBaseURL = "https://en.wikipedia.org"

// Wikipedia is the keyless encyclopedic fallback at the bottom of the chain.
// Snippets come back with HTML search-match markup, which is stripped before
// the result leaves the adapter.
type Wikipedia struct {
	BaseURL string
	client  *http.Client
}

func NewWikipedia() *Wikipedia {
	return &Wikipedia{BaseURL: wikipediaBaseURL, client: newHTTPClient()}
}

func (w *Wikipedia) Name() string { return "wikipedia" }

func (w *Wikipedia) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.BaseURL+"/w/api.php?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if err := checkStatus(w.Name(), resp); err != nil {
		return nil, err
	}

	var decoded struct {
		Query struct {
			Search []struct {
				Title   string `json:"title"`
				Snippet string `json:"snippet"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(decoded.Query.Search))
	for _, r := range decoded.Query.Search {
		if len(results) == maxResults {
			break
		}
		results = append(results, Result{
			URL:     w.BaseURL + "/wiki/" + strings.ReplaceAll(r.Title, " ", "_"),
			Title:   r.Title,
			Content: stripMarkup(r.Snippet),
		})
	}
	return results, nil
}

// stripMarkup removes the <span class="searchmatch"> tags Wikipedia wraps
// around matched terms in snippets.
func stripMarkup(s string) string {
	for {
		start := strings.Index(s, "<")
		if start < 0 {
			return s
		}
		end := strings.Index(s[start:], ">")
		if end < 0 {
			return s
		}
		s = s[:start] + s[start+end+1:]
	}
}
