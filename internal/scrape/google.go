package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	customsearch "google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/jonathan/recruiter-blast/internal/config"
	"github.com/jonathan/recruiter-blast/internal/extract"
	"github.com/jonathan/recruiter-blast/internal/logging"
	"github.com/jonathan/recruiter-blast/internal/retry"
)

// emailFormatMarker identifies the snippet sentence that states a
// company's conventional address pattern.
const emailFormatMarker = "email format typically follows"

// GoogleScraper mines email addresses and suggested email formats from
// Google Custom Search result snippets.
type GoogleScraper struct {
	svc    *customsearch.Service
	cx     string
	policy retry.Policy
}

// NewGoogleScraper builds a scraper over the Custom Search API. Both
// the API key and the search engine ID are required. Extra client
// options are for tests (endpoint override).
func NewGoogleScraper(ctx context.Context, cfg *config.Config, opts ...option.ClientOption) (*GoogleScraper, error) {
	if cfg.GoogleSearchAPIKey == "" || cfg.GoogleSearchEngineID == "" {
		return nil, fmt.Errorf("google search API key and engine ID are required")
	}

	opts = append([]option.ClientOption{option.WithAPIKey(cfg.GoogleSearchAPIKey)}, opts...)
	svc, err := customsearch.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create custom search service: %w", err)
	}

	return &GoogleScraper{
		svc:    svc,
		cx:     cfg.GoogleSearchEngineID,
		policy: retry.DefaultPolicy(),
	}, nil
}

// WithPolicy overrides the retry policy (tests inject a no-delay one).
func (s *GoogleScraper) WithPolicy(p retry.Policy) *GoogleScraper {
	s.policy = p
	return s
}

// EmailsFromDomain issues a site-restricted search for addresses at the
// domain and extracts every email from the result snippets. The list is
// deduplicated in first-seen order.
func (s *GoogleScraper) EmailsFromDomain(ctx context.Context, domain string) ([]string, error) {
	query := fmt.Sprintf("site:%s \"@%s\"", domain, domain)
	results, err := s.search(ctx, query)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var emails []string
	for i, item := range results.Items {
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

// SuggestedEmailFormat searches provider pages for the sentence that
// states the company's conventional address pattern. It returns the
// matching snippet truncated before the result ellipsis, or false when
// no snippet matches.
func (s *GoogleScraper) SuggestedEmailFormat(ctx context.Context, domain string) (string, bool, error) {
	query := fmt.Sprintf("site:rocketreach.co %q email format", domain)
	results, err := s.search(ctx, query)
	if err != nil {
		return "", false, err
	}

	for _, item := range results.Items {
		snippet := extract.StripHTML(item.Snippet)
		if !strings.Contains(strings.ToLower(snippet), emailFormatMarker) {
			continue
		}
		return trimSnippet(snippet), true, nil
	}
	return "", false, nil
}

func (s *GoogleScraper) search(ctx context.Context, query string) (*customsearch.Search, error) {
	return retry.DoValue(ctx, s.policy, "google search", func() (*customsearch.Search, error) {
		defer logging.Timed("google search", "query", query)()
		return s.svc.Cse.List().Q(query).Cx(s.cx).Context(ctx).Do()
	})
}

// trimSnippet drops the trailing ellipsis search providers append to
// truncated snippets.
func trimSnippet(snippet string) string {
	if idx := strings.Index(snippet, "…"); idx >= 0 {
		snippet = snippet[:idx]
	}
	snippet = strings.TrimSuffix(strings.TrimSpace(snippet), "...")
	return strings.TrimSpace(snippet)
}
