// Package contact assembles recruiter lookup results into a report of
// candidate addresses and compose links.
package contact

import (
	"strings"

	"github.com/jonathan/recruiter-blast/internal/email"
	"github.com/jonathan/recruiter-blast/internal/entity"
	"github.com/jonathan/recruiter-blast/internal/outreach"
)

// Contact pairs a recruiter with the addresses generated for them.
type Contact struct {
	Employee        entity.Employee `json:"employee"`
	CandidateEmails []string        `json:"candidate_emails"`

	// SuggestedEmail is rendered from a mined company-wide format and
	// takes precedence over the permutations when present.
	SuggestedEmail string `json:"suggested_email,omitempty"`
}

// Report is the full output of a lookup.
type Report struct {
	Company    entity.Company `json:"company"`
	Recruiters []Contact      `json:"recruiters"`

	// PublishedEmails are addresses found verbatim on the public web
	// for the company domain.
	PublishedEmails []string `json:"published_emails,omitempty"`

	// SuggestedFormat is the mined bracket format, e.g.
	// "[first].[last]", when a provider page stated one.
	SuggestedFormat string `json:"suggested_format,omitempty"`

	Recipients []string `json:"recipients"`
	MailtoLink string   `json:"mailto_link,omitempty"`
	GmailLink  string   `json:"gmail_link,omitempty"`
}

// BuildReport generates candidate addresses for every recruiter at the
// company domain and builds compose links over the union of all
// addresses. Published addresses come first in the recipient list, then
// rendered suggested addresses, then the permutations. Recruiters whose
// names cannot produce addresses are skipped.
func BuildReport(company entity.Company, recruiters []entity.Employee, published []string, format, subject, body string) Report {
	report := Report{
		Company:         company,
		PublishedEmails: published,
		SuggestedFormat: format,
	}

	seen := map[string]bool{}
	add := func(addr string) {
		if addr == "" || seen[addr] {
			return
		}
		seen[addr] = true
		report.Recipients = append(report.Recipients, addr)
	}

	for _, addr := range published {
		add(addr)
	}

	for _, emp := range recruiters {
		candidates, err := email.ForEmployee(emp, company.Domain)
		if err != nil {
			continue
		}
		c := Contact{Employee: emp, CandidateEmails: candidates}
		if format != "" {
			if local, err := email.RenderBracketFormat(emp, format); err == nil && local != "" {
				c.SuggestedEmail = strings.ToLower(local) + "@" + company.Domain
			}
		}
		report.Recruiters = append(report.Recruiters, c)

		add(c.SuggestedEmail)
		for _, addr := range candidates {
			add(addr)
		}
	}

	if len(report.Recipients) > 0 {
		report.MailtoLink = outreach.MailtoLink(report.Recipients, subject, body)
		report.GmailLink = outreach.GmailComposeLink(report.Recipients, subject, body)
	}
	return report
}
