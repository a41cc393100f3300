// Package llm summarizes job descriptions into structured hiring
// signals using Google Gemini.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/recruiter-blast/internal/entity"
	"github.com/jonathan/recruiter-blast/internal/retry"
)

// JobInfo is the structured summary extracted from a job description.
type JobInfo struct {
	CoreResponsibilities  []string `json:"core_responsibilities"`
	TechnicalRequirements []string `json:"technical_requirements"`
	SoftSkills            []string `json:"soft_skills"`
	Highlights            []string `json:"highlights"`
}

// Empty reports whether the summary carries no content at all.
func (i JobInfo) Empty() bool {
	return len(i.CoreResponsibilities) == 0 &&
		len(i.TechnicalRequirements) == 0 &&
		len(i.SoftSkills) == 0 &&
		len(i.Highlights) == 0
}

// Apply copies the structured fields onto the job post and clears
// its raw description, which the summary supersedes. An empty summary
// leaves the post untouched.
func (i JobInfo) Apply(post *entity.JobPost) {
	if i.Empty() {
		return
	}
	post.Responsibilities = i.CoreResponsibilities
	post.TechnicalRequirements = i.TechnicalRequirements
	post.SoftSkills = i.SoftSkills
	post.Highlights = i.Highlights
	post.Description = ""
}

// Client wraps a Gemini model behind the scraping retry policy.
type Client struct {
	client *genai.Client
	model  string
	policy retry.Policy
}

// NewClient creates a Gemini-backed client. The API key is required.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	gc, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Client{client: gc, model: model, policy: retry.DefaultPolicy()}, nil
}

// WithPolicy overrides the retry policy (tests inject a no-delay one).
func (c *Client) WithPolicy(p retry.Policy) *Client {
	c.policy = p
	return c
}

// Close releases the underlying client.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// ParseJobDescriptionInfo submits the description to the model and
// returns the structured summary. Transport failures are retried;
// malformed or schema-violating model output yields an empty summary,
// never an error.
func (c *Client) ParseJobDescriptionInfo(ctx context.Context, description string) (JobInfo, error) {
	prompt := jobInfoPrompt + description

	text, err := retry.DoValue(ctx, c.policy, "gemini generate", func() (string, error) {
		return c.generate(ctx, prompt)
	})
	if err != nil {
		return JobInfo{}, fmt.Errorf("gemini request failed: %w", err)
	}

	return DecodeJobInfo(text), nil
}

// generate runs one model call and extracts its text.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return ResponseText(resp), nil
}

// ResponseText extracts the first candidate's concatenated text parts.
// It returns "" when any level of the candidate/content/parts structure
// is absent; a degenerate response is not an error at this layer.
func ResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}
	var parts []string
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	return strings.Join(parts, "")
}

// DecodeJobInfo parses model output into a JobInfo. Markdown fences are
// stripped first; anything that fails schema validation decodes to the
// zero summary.
func DecodeJobInfo(text string) JobInfo {
	cleaned := CleanJSONBlock(text)
	if !validJobInfo(cleaned) {
		slog.Debug("model output failed job info schema", "output_len", len(text))
		return JobInfo{}
	}

	var info JobInfo
	if err := json.Unmarshal([]byte(cleaned), &info); err != nil {
		return JobInfo{}
	}
	return info
}

// CleanJSONBlock removes markdown code fences from model output. Models
// wrap JSON in ```json ... ``` blocks even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
