package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jonathan/recruiter-blast/internal/config"
	"github.com/jonathan/recruiter-blast/internal/contact"
	"github.com/jonathan/recruiter-blast/internal/email"
	"github.com/jonathan/recruiter-blast/internal/entity"
	"github.com/jonathan/recruiter-blast/internal/llm"
	"github.com/jonathan/recruiter-blast/internal/scrape"
)

// jobSource is the slice of the LinkedIn scraper the handlers consume.
type jobSource interface {
	FetchCompanyAndRecruiterData(ctx context.Context) (entity.Company, []entity.Employee, error)
	FetchJobPostDetails(ctx context.Context) (entity.JobPost, error)
}

// summarizer is the slice of the Gemini client the handlers consume.
type summarizer interface {
	ParseJobDescriptionInfo(ctx context.Context, description string) (llm.JobInfo, error)
}

// Handler serves the lookup pipeline over HTTP. The constructor fields
// exist so tests can substitute fakes for the network-bound pieces.
type Handler struct {
	cfg           *config.Config
	newSource     func(cfg *config.Config, jobPostURL string) (jobSource, error)
	newSummarizer func(ctx context.Context, cfg *config.Config) (summarizer, error)
	newMiner      func(ctx context.Context, cfg *config.Config) *contact.Miner
}

// NewHandler builds a handler wired to the real scraper and Gemini
// client.
func NewHandler(cfg *config.Config) *Handler {
	return &Handler{
		cfg: cfg,
		newSource: func(cfg *config.Config, jobPostURL string) (jobSource, error) {
			return scrape.NewLinkedInScraper(cfg, jobPostURL)
		},
		newSummarizer: func(ctx context.Context, cfg *config.Config) (summarizer, error) {
			return llm.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		},
		newMiner: contact.NewMiner,
	}
}

type lookupRequest struct {
	JobPostURL string `json:"job_post_url"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
}

// Lookup resolves a job post into its company, recruiters, candidate
// addresses, and one-click compose links over every address.
func (h *Handler) Lookup(c echo.Context) error {
	var req lookupRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(req.JobPostURL) == "" {
		return Error(c, http.StatusBadRequest, "job_post_url is required")
	}

	source, err := h.newSource(h.cfg, req.JobPostURL)
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid job post URL")
	}

	ctx := c.Request().Context()
	company, recruiters, err := source.FetchCompanyAndRecruiterData(ctx)
	if err != nil {
		return err
	}

	miner := h.newMiner(ctx, h.cfg)
	report := contact.BuildReport(company, recruiters,
		miner.PublishedEmails(ctx, company.Domain),
		miner.SuggestedFormat(ctx, company.Domain),
		req.Subject, req.Body)

	return Success(c, http.StatusOK, "lookup complete", report)
}

type jobRequest struct {
	JobPostURL string `json:"job_post_url"`
	Summarize  bool   `json:"summarize"`
}

// Job fetches the job post details, optionally replacing the raw
// description with the structured Gemini summary.
func (h *Handler) Job(c echo.Context) error {
	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(req.JobPostURL) == "" {
		return Error(c, http.StatusBadRequest, "job_post_url is required")
	}

	source, err := h.newSource(h.cfg, req.JobPostURL)
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid job post URL")
	}

	ctx := c.Request().Context()
	post, err := source.FetchJobPostDetails(ctx)
	if err != nil {
		return err
	}

	if req.Summarize && post.Description != "" {
		client, err := h.newSummarizer(ctx, h.cfg)
		if err != nil {
			return err
		}
		info, err := client.ParseJobDescriptionInfo(ctx, post.Description)
		if err != nil {
			return err
		}
		info.Apply(&post)
	}

	return Success(c, http.StatusOK, "job post fetched", map[string]any{"job_post": post})
}

type emailsRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Domain    string `json:"domain"`
}

// Emails generates candidate addresses for one person at one domain.
func (h *Handler) Emails(c echo.Context) error {
	var req emailsRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(req.Domain) == "" {
		return Error(c, http.StatusBadRequest, "domain is required")
	}

	emails, err := email.Permutations(req.FirstName, req.LastName, req.Domain)
	if err != nil {
		return Error(c, http.StatusBadRequest, "first_name and last_name are required")
	}

	return Success(c, http.StatusOK, "emails generated", map[string]any{"emails": emails})
}

// Health reports liveness.
func (h *Handler) Health(c echo.Context) error {
	return Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
}
