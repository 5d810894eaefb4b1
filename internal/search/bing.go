package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

const (
	bingBaseURL = "https://bing-web-search1.p.rapidapi.com"
	bingHost    = "bing-web-search1.p.rapidapi.com"
)

// Bing wraps Bing web search exposed through the RapidAPI gateway.
type Bing struct {
	APIKey  string
	BaseURL string
	client  *http.Client
}

func NewBing(apiKey string) *Bing {
	return &Bing{APIKey: apiKey, BaseURL: bingBaseURL, client: newHTTPClient()}
}

func (b *Bing) Name() string { return "bing" }

func (b *Bing) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(maxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.BaseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", b.APIKey)
	req.Header.Set("X-RapidAPI-Host", bingHost)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if err := checkStatus(b.Name(), resp); err != nil {
		return nil, err
	}

	var decoded struct {
		WebPages struct {
			Value []struct {
				URL     string `json:"url"`
				Name    string `json:"name"`
				Snippet string `json:"snippet"`
			} `json:"value"`
		} `json:"webPages"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(decoded.WebPages.Value))
	for _, v := range decoded.WebPages.Value {
		if len(results) == maxResults {
			break
		}
		results = append(results, Result{URL: v.URL, Title: v.Name, Content: v.Snippet})
	}
	return results, nil
}
