package profileapi

// Package profileapi asks the backend whether a principal has completed
// mandatory onboarding. Every failure mode (network error, non-2xx status,
// malformed body) is reported as ProfileUnknown; the controller collapses
// Unknown into "needs onboarding".

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"
	"golang.org/x/sync/singleflight"

	domainsession "github.com/hireloop/webclient-go/internal/domain/session"
	"github.com/hireloop/webclient-go/internal/ports"
)

var _ ports.ProfileChecker = (*Client)(nil)

const defaultResultExpr = "profileCompleted"

// Config captures the subset of endpoint behaviour we need.
type Config struct {
	// Endpoint is the profile-completeness URL.
	Endpoint string

	// ResultExpr is a JMESPath expression selecting the completion flag in
	// the response body. Defaults to "profileCompleted".
	ResultExpr string

	Timeout time.Duration
	Client  *http.Client
}

// Client performs bearer-authenticated completeness checks. Concurrent checks
// for the same token share one in-flight request.
type Client struct {
	endpoint   string
	resultExpr string
	client     *http.Client
	group      singleflight.Group
}

// NewClient builds a profile-completeness client. Callers should pass a
// validated config.
func NewClient(cfg Config) (*Client, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, errors.New("profile endpoint is required")
	}

	expr := strings.TrimSpace(cfg.ResultExpr)
	if expr == "" {
		expr = defaultResultExpr
	}
	if _, err := jmespath.Compile(expr); err != nil {
		return nil, fmt.Errorf("compile result expression: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		endpoint:   endpoint,
		resultExpr: expr,
		client:     hc,
	}, nil
}

// Check returns the principal's profile status. The error accompanies
// ProfileUnknown and is informational; callers must not treat Unknown as
// complete.
func (c *Client) Check(ctx context.Context, token string) (domainsession.ProfileStatus, error) {
	if token == "" {
		return domainsession.ProfileUnknown, errors.New("token is required")
	}

	v, err, _ := c.group.Do(token, func() (any, error) {
		return c.fetch(ctx, token)
	})
	if err != nil {
		return domainsession.ProfileUnknown, err
	}

	status, ok := v.(domainsession.ProfileStatus)
	if !ok {
		return domainsession.ProfileUnknown, errors.New("unexpected check result type")
	}
	return status, nil
}

func (c *Client) fetch(ctx context.Context, token string) (domainsession.ProfileStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return domainsession.ProfileUnknown, fmt.Errorf("create profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domainsession.ProfileUnknown, fmt.Errorf("profile request failed: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domainsession.ProfileUnknown, fmt.Errorf("profile endpoint %s", resp.Status)
	}

	var body any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domainsession.ProfileUnknown, fmt.Errorf("decode profile response: %w", err)
	}

	result, err := jmespath.Search(c.resultExpr, body)
	if err != nil {
		return domainsession.ProfileUnknown, fmt.Errorf("evaluate %q: %w", c.resultExpr, err)
	}

	completed, ok := result.(bool)
	if !ok {
		return domainsession.ProfileUnknown, fmt.Errorf("profile response field %q is not a boolean", c.resultExpr)
	}

	if completed {
		return domainsession.ProfileComplete, nil
	}
	return domainsession.ProfileIncomplete, nil
}
