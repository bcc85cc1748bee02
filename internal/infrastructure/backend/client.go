// Package backend is the REST client for the remote commerce backend. It
// holds no state beyond the HTTP client itself: bearer tokens are supplied
// per call by the session layer, and every non-success response is mapped
// onto the domain failure taxonomy in exactly one place.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/esghir/sales-frontend/internal/api/metrics"
	"github.com/esghir/sales-frontend/internal/core/domain"
	"github.com/esghir/sales-frontend/internal/core/ports"
)

const defaultTimeout = 15 * time.Second

// Config captures the settings for reaching the backend.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client implements all four backend API groups.
type Client struct {
	http   *resty.Client
	logger zerolog.Logger
}

var (
	_ ports.AuthAPI    = (*Client)(nil)
	_ ports.CatalogAPI = (*Client)(nil)
	_ ports.CartAPI    = (*Client)(nil)
	_ ports.OrderAPI   = (*Client)(nil)
)

func NewClient(cfg Config, logger zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	hc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{http: hc, logger: logger}
}

// Ping probes backend reachability for the readiness endpoint.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Get("/api/products")
	return c.check(resp, err, "products", nil)
}

// r builds a request, attaching the bearer token when the endpoint is
// protected. An empty token means a public call.
func (c *Client) r(ctx context.Context, token string) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// errorEnvelope matches the backend's error payload.
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// check maps a completed call onto the failure taxonomy. The 401 branch is
// the single place a backend rejection becomes the session-expiry signal;
// nothing else in the codebase inspects that status.
func (c *Client) check(resp *resty.Response, err error, resource string, notFound error) error {
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(resource, "network_error").Inc()
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	metrics.BackendRequestDuration.WithLabelValues(resource).Observe(resp.Time().Seconds())

	status := resp.StatusCode()
	switch {
	case status < http.StatusMultipleChoices:
		metrics.BackendRequestsTotal.WithLabelValues(resource, "ok").Inc()
		return nil
	case status == http.StatusUnauthorized:
		metrics.BackendRequestsTotal.WithLabelValues(resource, "unauthorized").Inc()
		return domain.ErrSessionExpired
	case status == http.StatusNotFound && notFound != nil:
		metrics.BackendRequestsTotal.WithLabelValues(resource, "client_error").Inc()
		return notFound
	case status < http.StatusInternalServerError:
		metrics.BackendRequestsTotal.WithLabelValues(resource, "client_error").Inc()
		return &domain.ValidationError{Message: errorMessage(resp)}
	default:
		metrics.BackendRequestsTotal.WithLabelValues(resource, "server_error").Inc()
		c.logger.Error().
			Int("status", status).
			Str("url", resp.Request.URL).
			Msg("backend request failed")
		return domain.ErrBackendFailure
	}
}

// errorMessage pulls the backend's plain-text rejection out of the 4xx
// body, falling back to a generic message when the envelope is absent.
func errorMessage(resp *resty.Response) string {
	var envelope errorEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return "request failed"
}
