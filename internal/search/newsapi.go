package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

const newsAPIBaseURL = "https://newsapi.org"

// NewsAPI wraps newsapi.org article search. Useful for recent coverage the
// general web providers miss.
type NewsAPI struct {
	APIKey  string
	BaseURL string
	client  *http.Client
}

func NewNewsAPI(apiKey string) *NewsAPI {
	return &NewsAPI{APIKey: apiKey, BaseURL: newsAPIBaseURL, client: newHTTPClient()}
}

func (n *NewsAPI) Name() string { return "newsapi" }

func (n *NewsAPI) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("pageSize", strconv.Itoa(maxResults))
	params.Set("apiKey", n.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.BaseURL+"/v2/everything?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if err := checkStatus(n.Name(), resp); err != nil {
		return nil, err
	}

	var decoded struct {
		Articles []struct {
			URL         string `json:"url"`
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"articles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(decoded.Articles))
	for _, a := range decoded.Articles {
		if len(results) == maxResults {
			break
		}
		results = append(results, Result{URL: a.URL, Title: a.Title, Content: a.Description})
	}
	return results, nil
}
