package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/recruiter-blast/internal/config"
	"github.com/jonathan/recruiter-blast/internal/entity"
	"github.com/jonathan/recruiter-blast/internal/scrape"
)

func TestBuildReportGeneratesContactsAndLinks(t *testing.T) {
	report := BuildReport(scrape.MockCompany(), scrape.MockRecruiters(), nil, "", "Hello", "Hi there")

	assert.Equal(t, "Company ABC", report.Company.Name)
	require.Len(t, report.Recruiters, 2)
	assert.Contains(t, report.Recruiters[0].CandidateEmails, "janedoe@companyabc.com")
	assert.Contains(t, report.Recruiters[1].CandidateEmails, "john.smith@companyabc.com")
	assert.Empty(t, report.Recruiters[0].SuggestedEmail)

	assert.Contains(t, report.Recipients, "janedoe@companyabc.com")
	assert.Contains(t, report.Recipients, "johnsmith@companyabc.com")
	assert.Contains(t, report.MailtoLink, "subject=Hello")
	assert.Contains(t, report.GmailLink, "mail.google.com")
}

func TestBuildReportRendersSuggestedFormat(t *testing.T) {
	report := BuildReport(scrape.MockCompany(), scrape.MockRecruiters(), nil, "[first].[last]", "", "")

	require.Len(t, report.Recruiters, 2)
	assert.Equal(t, "jane.doe@companyabc.com", report.Recruiters[0].SuggestedEmail)
	assert.Equal(t, "john.smith@companyabc.com", report.Recruiters[1].SuggestedEmail)
	assert.Equal(t, "[first].[last]", report.SuggestedFormat)
	assert.Equal(t, "jane.doe@companyabc.com", report.Recipients[0],
		"suggested address leads each recruiter's block")
}

func TestBuildReportPutsPublishedEmailsFirst(t *testing.T) {
	published := []string{"careers@companyabc.com", "careers@companyabc.com"}
	report := BuildReport(scrape.MockCompany(), scrape.MockRecruiters(), published, "", "", "")

	assert.Equal(t, "careers@companyabc.com", report.Recipients[0])
	assert.Equal(t, 1, countOf(report.Recipients, "careers@companyabc.com"))
}

func TestBuildReportSkipsNamelessRecruiters(t *testing.T) {
	recruiters := []entity.Employee{{ID: 7, FullName: "Anonymous"}}
	report := BuildReport(scrape.MockCompany(), recruiters, nil, "", "", "")

	assert.Empty(t, report.Recruiters)
	assert.Empty(t, report.Recipients)
	assert.Empty(t, report.MailtoLink)
}

func countOf(items []string, want string) int {
	n := 0
	for _, item := range items {
		if item == want {
			n++
		}
	}
	return n
}

type fakeEmailMiner struct {
	emails []string
	err    error
}

func (f *fakeEmailMiner) EmailsFromDomain(context.Context, string) ([]string, error) {
	return f.emails, f.err
}

type fakeFormatMiner struct {
	snippet string
	ok      bool
	err     error
}

func (f *fakeFormatMiner) SuggestedEmailFormat(context.Context, string) (string, bool, error) {
	return f.snippet, f.ok, f.err
}

func TestMinerMergesProviderEmails(t *testing.T) {
	m := &Miner{emails: []emailMiner{
		&fakeEmailMiner{emails: []string{"a@x.com", "b@x.com"}},
		&fakeEmailMiner{emails: []string{"b@x.com", "c@x.com"}},
		&fakeEmailMiner{err: errors.New("provider down")},
	}}

	assert.Equal(t, []string{"a@x.com", "b@x.com", "c@x.com"},
		m.PublishedEmails(context.Background(), "x.com"))
}

func TestMinerSuggestedFormat(t *testing.T) {
	m := &Miner{format: &fakeFormatMiner{
		snippet: "The Company ABC email format typically follows the pattern of [first].[last]",
		ok:      true,
	}}
	assert.Equal(t, "[first].[last]", m.SuggestedFormat(context.Background(), "companyabc.com"))

	m = &Miner{format: &fakeFormatMiner{snippet: "no bracket tokens here", ok: true}}
	assert.Empty(t, m.SuggestedFormat(context.Background(), "companyabc.com"))

	m = &Miner{}
	assert.Empty(t, m.SuggestedFormat(context.Background(), "companyabc.com"))
}

func TestNewMinerWithoutCredentialsIsInert(t *testing.T) {
	m := NewMiner(context.Background(), &config.Config{Env: "dev"})

	assert.Empty(t, m.PublishedEmails(context.Background(), "companyabc.com"))
	assert.Empty(t, m.SuggestedFormat(context.Background(), "companyabc.com"))
}
