package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jonathan/recruiter-blast/internal/config"
	"github.com/jonathan/recruiter-blast/internal/entity"
	"github.com/jonathan/recruiter-blast/internal/extract"
	"github.com/jonathan/recruiter-blast/internal/logging"
	"github.com/jonathan/recruiter-blast/internal/parse"
	"github.com/jonathan/recruiter-blast/internal/retry"
)

const defaultLinkedInBaseURL = "https://www.linkedin.com"

// recruiterKeywords are the staff-search passes, pre-encoded the way the
// graphql query string expects them.
var recruiterKeywords = []string{"recruiter", "talent%20acquisition"}

const (
	companyCardURLFmt = "%s/voyager/api/graphql?variables=(" +
		"cardSectionTypes:List(COMPANY_CARD)," +
		"jobPostingUrn:urn%%3Ali%%3Afsd_jobPosting%%3A%d," +
		"includeSecondaryActionsV2:true)" +
		"&queryId=voyagerJobsDashJobPostingDetailSections.0a2eefbfd33e3ff566b3fbe31312c8ed"

	companyEntityURLFmt = "%s/voyager/api/entities/companies/%d"

	employeeSearchURLFmt = "%s/voyager/api/graphql?variables=(" +
		"start:0," +
		"origin:FACETED_SEARCH," +
		"query:(keywords:%s," +
		"flagshipSearchIntent:ORGANIZATIONS_PEOPLE_ALUMNI," +
		"queryParameters:List(" +
		"(key:currentCompany,value:List(%d))," +
		"(key:resultType,value:List(ORGANIZATION_ALUMNI))" +
		")," +
		"includeFiltersInResponse:true)," +
		"count:49" +
		")&queryId=voyagerSearchDashClusters.ff737c692102a8ce842be8f129f834ae"

	jobPostingURLFmt = "%s/voyager/api/jobs/jobPostings/%d"
)

// LinkedInScraper resolves a job post into its company, recruiting
// staff, and posting details. One instance serves one job post URL and
// is not safe for concurrent use (it owns a mutable header set).
type LinkedInScraper struct {
	c       *client
	cfg     *config.Config
	baseURL string
	jobID   int64
	headers map[string]string
}

// NewLinkedInScraper validates the job post URL and builds a scraper for
// it. A URL that does not match the canonical job post shape is rejected
// here, before any network call.
func NewLinkedInScraper(cfg *config.Config, jobPostURL string) (*LinkedInScraper, error) {
	canonical := extract.LinkedInJobURL(jobPostURL)
	if canonical == "" {
		return nil, fmt.Errorf("invalid job post URL %q", jobPostURL)
	}
	jobID, err := strconv.ParseInt(canonical[strings.LastIndex(canonical, "/")+1:], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid job post URL %q: %w", jobPostURL, err)
	}

	return &LinkedInScraper{
		c:       newClient(cfg),
		cfg:     cfg,
		baseURL: defaultLinkedInBaseURL,
		jobID:   jobID,
		headers: map[string]string{
			"accept":                    "application/vnd.linkedin.normalized+json+2.1",
			"accept-language":           "en",
			"x-li-lang":                 "en_US",
			"x-restli-protocol-version": "2.0.0",
			"cookie":                    cfg.LinkedInCookie,
			"csrf-token":                cfg.LinkedInCSRFToken,
		},
	}, nil
}

// JobID returns the numeric job post identifier.
func (s *LinkedInScraper) JobID() int64 {
	return s.jobID
}

// withBaseURL points the scraper at a different API origin (tests).
func (s *LinkedInScraper) withBaseURL(base string) *LinkedInScraper {
	s.baseURL = base
	return s
}

// withTestClient swaps the pacing pieces for test doubles.
func (s *LinkedInScraper) withTestClient(sleeper retry.Sleeper, policy retry.Policy) *LinkedInScraper {
	s.c.sleeper = sleeper
	s.c.policy = policy
	return s
}

// FetchCompanyFromJobPost resolves the company behind the job post. Two
// sequential round trips: the company card for identity fields, then the
// company entity purely to resolve the website domain. Each is retried
// independently.
func (s *LinkedInScraper) FetchCompanyFromJobPost(ctx context.Context) (entity.Company, error) {
	slog.Info("fetching company from job post", "job_id", s.jobID)

	card, err := s.fetchJSON(ctx, "company card",
		fmt.Sprintf(companyCardURLFmt, s.baseURL, s.jobID))
	if err != nil {
		return entity.Company{}, err
	}

	company := entity.Company{
		ID:            parse.CompanyID(card),
		Name:          parse.CompanyName(card),
		Industry:      parse.CompanyIndustry(card),
		Description:   parse.CompanyDescription(card),
		EmployeeCount: parse.CompanyEmployeeCount(card),
	}

	entityDoc, err := s.fetchJSON(ctx, "company entity",
		fmt.Sprintf(companyEntityURLFmt, s.baseURL, company.ID))
	if err != nil {
		return entity.Company{}, err
	}
	company.Domain = parse.RegistrableDomain(parse.CompanyWebsiteURL(entityDoc))

	slog.Info("fetched company", "company", company.Name, "domain", company.Domain)
	return company, nil
}

// FetchRecruitersFromCompany runs one staff search per recruiter keyword
// and merges the rows into an ID-keyed collection, so a person surfacing
// under two keywords appears once, in first-seen order.
func (s *LinkedInScraper) FetchRecruitersFromCompany(ctx context.Context, company entity.Company) ([]entity.Employee, error) {
	slog.Info("fetching recruiters", "company", company.Name, "company_id", company.ID)

	seen := map[int64]bool{}
	var employees []entity.Employee

	for _, keyword := range recruiterKeywords {
		doc, err := s.fetchJSON(ctx, "employee search",
			fmt.Sprintf(employeeSearchURLFmt, s.baseURL, keyword, company.ID))
		if err != nil {
			return nil, err
		}

		for _, row := range searchRows(doc) {
			if !isValidPublicEmployee(row) {
				continue
			}

			id := parse.EmployeeID(row)
			if seen[id] {
				slog.Debug("skipping duplicate employee", "id", id)
				continue
			}
			seen[id] = true

			emp := entity.Employee{
				ID:         id,
				FullName:   parse.EmployeeName(row),
				Headline:   parse.EmployeeHeadline(row),
				Locale:     parse.EmployeeLocale(row),
				ProfileURL: parse.EmployeeProfileURL(row),
			}
			emp.FirstName, emp.LastName = parse.SplitName(emp.FullName)
			employees = append(employees, emp)

			slog.Info("added recruiter", "n", len(employees), "name", emp.FullName)
		}
	}
	return employees, nil
}

// FetchJobPostDetails fetches and parses the posting itself.
func (s *LinkedInScraper) FetchJobPostDetails(ctx context.Context) (entity.JobPost, error) {
	slog.Info("fetching job post details", "job_id", s.jobID)

	doc, err := s.fetchJSON(ctx, "job posting",
		fmt.Sprintf(jobPostingURLFmt, s.baseURL, s.jobID))
	if err != nil {
		return entity.JobPost{}, err
	}

	return entity.JobPost{
		ID:          s.jobID,
		Title:       parse.JobPostTitle(doc),
		Description: parse.JobPostDescription(doc),
		PostDate:    parse.JobPostDate(doc),
		ApplyURL:    parse.JobPostApplyURL(doc),
		IsRemote:    parse.JobPostIsRemote(doc),
		Location:    parse.JobPostLocation(doc),
	}, nil
}

// FetchCompanyAndRecruiterData sequences the company and recruiter
// fetches. With live data disabled it returns the deterministic mock
// pair instead of touching the network.
func (s *LinkedInScraper) FetchCompanyAndRecruiterData(ctx context.Context) (entity.Company, []entity.Employee, error) {
	if !s.cfg.LiveDataEnabled() {
		slog.Info("live data disabled, returning mock company and recruiters")
		return MockCompany(), MockRecruiters(), nil
	}

	company, err := s.FetchCompanyFromJobPost(ctx)
	if err != nil {
		return entity.Company{}, nil, err
	}
	recruiters, err := s.FetchRecruitersFromCompany(ctx, company)
	if err != nil {
		return entity.Company{}, nil, err
	}
	return company, recruiters, nil
}

// fetchJSON is one retried, rate-limited document fetch followed by the
// randomized cooldown.
func (s *LinkedInScraper) fetchJSON(ctx context.Context, name, url string) (map[string]any, error) {
	return retry.DoValue(ctx, s.c.policy, name, func() (map[string]any, error) {
		defer logging.Timed("fetched document", "op", name, "url", url)()
		doc, err := s.c.getJSON(ctx, url, s.headers)
		if err != nil {
			return nil, err
		}
		s.c.cooldown(ctx)
		return doc, nil
	})
}

// searchRows returns the candidate rows of a staff search document.
func searchRows(doc map[string]any) []map[string]any {
	raw, _ := doc["included"].([]any)
	rows := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			rows = append(rows, m)
		}
	}
	return rows
}

// isValidPublicEmployee keeps rows that navigate to a real public
// profile and drops headless (anonymized) members.
func isValidPublicEmployee(row map[string]any) bool {
	if _, ok := row["bserpEntityNavigationalUrl"]; !ok {
		return false
	}
	urn, _ := row["trackingUrn"].(string)
	return !strings.Contains(urn, "headless")
}
