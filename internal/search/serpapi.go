package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

const serpAPIBaseURL = "https://serpapi.com"

// SerpAPI wraps Google organic results via serpapi.com.
type SerpAPI struct {
	APIKey  string
	BaseURL string
	client  *http.Client
}

func NewSerpAPI(apiKey string) *SerpAPI {
	return &SerpAPI{APIKey: apiKey, BaseURL: serpAPIBaseURL, client: newHTTPClient()}
}

func (s *SerpAPI) Name() string { return "serpapi" }

func (s *SerpAPI) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("api_key", s.APIKey)
	params.Set("num", strconv.Itoa(maxResults))
	params.Set("engine", "google")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if err := checkStatus(s.Name(), resp); err != nil {
		return nil, err
	}

	var decoded struct {
		OrganicResults []struct {
			Link    string `json:"link"`
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
		} `json:"organic_results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(decoded.OrganicResults))
	for _, r := range decoded.OrganicResults {
		if len(results) == maxResults {
			break
		}
		results = append(results, Result{URL: r.Link, Title: r.Title, Content: r.Snippet})
	}
	return results, nil
}
