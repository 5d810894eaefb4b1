package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

const braveBaseURL = "https://api.search.brave.com"

// Brave wraps the Brave web search API. Brave only returns descriptions, so
// Content carries the description field.
type Brave struct {
	APIKey  string
	BaseURL string
	client  *http.Client
}

func NewBrave(apiKey string) *Brave {
	return &Brave{APIKey: apiKey, BaseURL: braveBaseURL, client: newHTTPClient()}
}

func (b *Brave) Name() string { return "brave" }

func (b *Brave) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(maxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.BaseURL+"/res/v1/web/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", b.APIKey)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if err := checkStatus(b.Name(), resp); err != nil {
		return nil, err
	}

	var decoded struct {
		Web struct {
			Results []struct {
				URL         string `json:"url"`
				Title       string `json:"title"`
				Description string `json:"description"`
			} `json:"results"`
		} `json:"web"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(decoded.Web.Results))
	for _, r := range decoded.Web.Results {
		if len(results) == maxResults {
			break
		}
		results = append(results, Result{URL: r.URL, Title: r.Title, Content: r.Description})
	}
	return results, nil
}
