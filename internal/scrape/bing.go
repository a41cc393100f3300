package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/jonathan/recruiter-blast/internal/config"
	"github.com/jonathan/recruiter-blast/internal/extract"
	"github.com/jonathan/recruiter-blast/internal/logging"
	"github.com/jonathan/recruiter-blast/internal/retry"
)

const defaultBingSearchURL = "https://api.bing.microsoft.com/v7.0/search"

// bingResponse is the slice of the web search answer we consume.
type bingResponse struct {
	WebPages struct {
		Value []struct {
			Snippet string `json:"snippet"`
		} `json:"value"`
	} `json:"webPages"`
}

// BingScraper mines live email addresses for a domain out of web search
// result snippets.
type BingScraper struct {
	c       *client
	apiKey  string
	baseURL string
}

// NewBingScraper builds a scraper; the subscription key is required.
func NewBingScraper(cfg *config.Config) (*BingScraper, error) {
	if cfg.BingSearchAPIKey == "" {
		return nil, fmt.Errorf("bing search API key is required")
	}
	return &BingScraper{
		c:       newClient(cfg),
		apiKey:  cfg.BingSearchAPIKey,
		baseURL: defaultBingSearchURL,
	}, nil
}

// EmailsFromDomain issues a site-restricted search for addresses at the
// domain and extracts every email from the result snippets. The list is
// deduplicated in first-seen order.
func (s *BingScraper) EmailsFromDomain(ctx context.Context, domain string) ([]string, error) {
	query := fmt.Sprintf("site:%s \"@%s\"", domain, domain)
	resp, err := s.search(ctx, query)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var emails []string
	for i, item := range resp.WebPages.Value {
		snippet := extract.StripHTML(item.Snippet)
		for _, email := range extract.EmailsFromText(snippet) {
			if seen[email] {
				continue
			}
			seen[email] = true
			emails = append(emails, email)
			slog.Info("scraped email from snippet", "i", i, "email", email)
		}
	}
	return emails, nil
}

func (s *BingScraper) search(ctx context.Context, query string) (bingResponse, error) {
	searchURL := s.baseURL + "?q=" + url.QueryEscape(query)
	headers := map[string]string{"Ocp-Apim-Subscription-Key": s.apiKey}

	return retry.DoValue(ctx, s.c.policy, "bing search", func() (bingResponse, error) {
		defer logging.Timed("bing search", "query", query)()
		var resp bingResponse
		if err := s.c.get(ctx, searchURL, headers, &resp); err != nil {
			return bingResponse{}, err
		}
		return resp, nil
	})
}
