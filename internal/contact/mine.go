package contact

import (
	"context"
	"log/slog"

	"github.com/jonathan/recruiter-blast/internal/config"
	"github.com/jonathan/recruiter-blast/internal/extract"
	"github.com/jonathan/recruiter-blast/internal/scrape"
)

// emailMiner is the provider slice used for published-address mining.
type emailMiner interface {
	EmailsFromDomain(ctx context.Context, domain string) ([]string, error)
}

// formatMiner mines provider pages for a stated company email format.
type formatMiner interface {
	SuggestedEmailFormat(ctx context.Context, domain string) (string, bool, error)
}

// Miner queries whichever search providers the configuration enables.
// A provider that is not configured, or that fails mid-lookup, is
// skipped: mined extras enrich a report but never block it.
type Miner struct {
	emails []emailMiner
	format formatMiner
}

// NewMiner wires the Bing and Google scrapers the configuration has
// credentials for. With no credentials at all the miner is inert.
func NewMiner(ctx context.Context, cfg *config.Config) *Miner {
	m := &Miner{}

	if bing, err := scrape.NewBingScraper(cfg); err == nil {
		m.emails = append(m.emails, bing)
	}
	if google, err := scrape.NewGoogleScraper(ctx, cfg); err == nil {
		m.emails = append(m.emails, google)
		m.format = google
	}
	return m
}

// PublishedEmails returns every address the enabled providers surface
// for the domain, deduplicated in first-seen order.
func (m *Miner) PublishedEmails(ctx context.Context, domain string) []string {
	seen := map[string]bool{}
	var emails []string
	for _, miner := range m.emails {
		found, err := miner.EmailsFromDomain(ctx, domain)
		if err != nil {
			slog.Warn("email mining failed", "domain", domain, "error", err)
			continue
		}
		for _, addr := range found {
			if seen[addr] {
				continue
			}
			seen[addr] = true
			emails = append(emails, addr)
		}
	}
	return emails
}

// SuggestedFormat returns the bracket format mined from provider pages,
// or "" when no provider is enabled or no page states one.
func (m *Miner) SuggestedFormat(ctx context.Context, domain string) string {
	if m.format == nil {
		return ""
	}
	snippet, ok, err := m.format.SuggestedEmailFormat(ctx, domain)
	if err != nil {
		slog.Warn("format mining failed", "domain", domain, "error", err)
		return ""
	}
	if !ok {
		return ""
	}
	format, ok := extract.SuggestedEmailFormat(snippet)
	if !ok {
		return ""
	}
	return format
}
