// Package upload publishes lint results to the report sharing service.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jeduden/agentlint/internal/config"
	"github.com/jeduden/agentlint/internal/engine"
	"github.com/jeduden/agentlint/internal/log"
	"github.com/jeduden/agentlint/internal/rule"
	"golang.org/x/time/rate"
)

const maxResponseBody = 1 << 20

// Report identifies an uploaded report.
type Report struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// StatusError is returned when the service answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upload failed (%d): %s", e.StatusCode, strings.TrimSpace(e.Body))
}

// Temporary reports whether the request may succeed when retried.
func (e *StatusError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// Client posts reports to Endpoint.
type Client struct {
	Endpoint   string
	HTTP       *http.Client
	MaxRetries int
	// Limiter paces attempts. The first attempt is never delayed.
	Limiter *rate.Limiter
	Log     *log.Logger
	// MachineID defaults to the package-level MachineID.
	MachineID func() string
}

// NewClient returns a client configured from cfg.
func NewClient(cfg config.UploadCfg, logger *log.Logger) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = config.DefaultEndpoint
	}
	return &Client{
		Endpoint:   endpoint,
		HTTP:       &http.Client{Timeout: cfg.Timeout},
		MaxRetries: cfg.Retries(),
		Limiter:    rate.NewLimiter(rate.Every(2*time.Second), 1),
		Log:        logger,
	}
}

// Upload posts res and returns the created report. Rate limited and
// server-side failures are retried up to MaxRetries times with the same
// idempotency key. A negative MaxRetries still makes one attempt.
func (c *Client) Upload(ctx context.Context, res *engine.LintResult) (*Report, error) {
	machineID := MachineID
	if c.MachineID != nil {
		machineID = c.MachineID
	}
	body, err := json.Marshal(BuildPayload(res, machineID(), len(rule.All())))
	if err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}

	limiter := c.Limiter
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	key := uuid.New().String()

	attempts := max(c.MaxRetries, 0) + 1
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if err := limiter.Wait(ctx); err != nil {
			if lastErr != nil {
				return nil, fmt.Errorf("%w (retry aborted: %v)", lastErr, err)
			}
			return nil, fmt.Errorf("waiting to upload: %w", err)
		}

		c.Log.Printf("upload: POST %s attempt %d/%d", c.Endpoint, attempt+1, attempts)
		rep, err := c.post(ctx, key, body)
		if err == nil {
			return rep, nil
		}
		lastErr = err

		var se *StatusError
		if !errors.As(err, &se) || !se.Temporary() {
			return nil, err
		}
		c.Log.Printf("upload: %v", err)
	}
	return nil, lastErr
}

func (c *Client) post(ctx context.Context, key string, body []byte) (*Report, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", key)

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("posting report: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	var rep Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if rep.ID == "" {
		return nil, fmt.Errorf("decoding response: missing report id")
	}
	if rep.URL == "" {
		rep.URL = c.reportURL(rep.ID)
	}
	return &rep, nil
}

// reportURL is the public page of report id on the endpoint's host.
func (c *Client) reportURL(id string) string {
	u, err := url.Parse(c.Endpoint)
	if err != nil || u.Host == "" {
		return "https://agentlinter.com/r/" + url.PathEscape(id)
	}
	return fmt.Sprintf("%s://%s/r/%s", u.Scheme, u.Host, url.PathEscape(id))
}
