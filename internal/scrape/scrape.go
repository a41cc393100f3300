// Package scrape issues the outbound HTTP calls that turn provider
// responses into domain entities. Every fetch is retried with backoff,
// paced per host, and followed by a randomized cooldown; parsers do the
// field extraction, scrapers do the assembly and deduplication.
package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/jonathan/recruiter-blast/internal/config"
	"github.com/jonathan/recruiter-blast/internal/retry"
)

// Error describes a failed fetch against an upstream provider.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// client is the shared HTTP core used by the provider scrapers.
type client struct {
	http    *http.Client
	limiter *HostLimiter
	sleeper retry.Sleeper
	policy  retry.Policy

	cooldownMin time.Duration
	cooldownMax time.Duration
}

func newClient(cfg *config.Config) *client {
	return &client{
		http:        &http.Client{Timeout: cfg.RequestTimeout},
		limiter:     NewHostLimiter(cfg.ScrapeRatePerSec, 1),
		sleeper:     retry.RealSleeper{},
		policy:      retry.DefaultPolicy(),
		cooldownMin: time.Duration(cfg.CooldownMinSeconds) * time.Second,
		cooldownMax: time.Duration(cfg.CooldownMaxSeconds) * time.Second,
	}
}

// getJSON performs one rate-limited GET and decodes the body as an
// opaque JSON object. A non-2xx status or an undecodable body is a
// transient failure the caller's retry policy will re-attempt.
func (c *client) getJSON(ctx context.Context, rawURL string, headers map[string]string) (map[string]any, error) {
	doc := map[string]any{}
	if err := c.get(ctx, rawURL, headers, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// get performs one rate-limited GET and decodes the JSON body into out.
func (c *client) get(ctx context.Context, rawURL string, headers map[string]string, out any) error {
	if err := c.limiter.WaitURL(ctx, rawURL); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &Error{URL: rawURL, Message: "failed to create request", Cause: err}
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("user-agent", randomUserAgent())

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{URL: rawURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{URL: rawURL, Message: "failed to read response body", Cause: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{URL: rawURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &Error{URL: rawURL, Message: "malformed JSON body", Cause: err}
	}
	return nil
}

// cooldown sleeps a random duration inside the configured bounds after
// a successful call, lowering the odds of upstream blocking.
func (c *client) cooldown(ctx context.Context) {
	if c.cooldownMax <= 0 {
		return
	}
	d := c.cooldownMin
	if span := c.cooldownMax - c.cooldownMin; span > 0 {
		d += time.Duration(rand.Int63n(int64(span) + 1))
	}
	_ = c.sleeper.Sleep(ctx, d)
}
