package search

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
)

const tavilyBaseURL = "https://api.tavily.com"

// Tavily is the top-priority provider: a paid API that returns extracted
// page content rather than snippets.
type Tavily struct {
	APIKey  string
	BaseURL string
	client  *http.Client
}

func NewTavily(apiKey string) *Tavily {
	return &Tavily{APIKey: apiKey, BaseURL: tavilyBaseURL, client: newHTTPClient()}
}

func (t *Tavily) Name() string { return "tavily" }

func (t *Tavily) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	payload := struct {
		APIKey        string `json:"api_key"`
		Query         string `json:"query"`
		SearchDepth   string `json:"search_depth"`
		MaxResults    int    `json:"max_results"`
		IncludeAnswer bool   `json:"include_answer"`
		IncludeImages bool   `json:"include_images"`
	}{
		APIKey:      t.APIKey,
		Query:       query,
		SearchDepth: "advanced",
		MaxResults:  maxResults,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.BaseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if err := checkStatus(t.Name(), resp); err != nil {
		return nil, err
	}

	var decoded struct {
		Results []struct {
			URL     string `json:"url"`
			Title   string `json:"title"`
			Content string `json:"content"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		if len(results) == maxResults {
			break
		}
		results = append(results, Result{URL: r.URL, Title: r.Title, Content: r.Content})
	}
	return results, nil
}
