// Package contentapi implements the upstream content service client.
// Gated endpoints are wrapped with the paywall retry client; every call
// runs through a circuit breaker so a failing upstream sheds load fast.
package contentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"mindmesh-backend/application/ports"
	"mindmesh-backend/domain/graph"
	"mindmesh-backend/infrastructure/paywall"
	pkgerrors "mindmesh-backend/pkg/errors"
	"mindmesh-backend/pkg/observability"
)

// Client talks to the upstream content API and implements
// ports.ContentAPI. FreeAccess switches search to the unauthenticated
// development path, bypassing the paywall entirely.
type Client struct {
	baseURL    string
	freeAccess bool

	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	paywall    *paywall.Client
	metrics    *observability.Collector
	logger     *zap.Logger
}

// Options configures the content API client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	FreeAccess bool
}

// NewClient creates a content API client.
func NewClient(opts Options, pw *paywall.Client, metrics *observability.Collector, logger *zap.Logger) *Client {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "content-api",
		MaxRequests: 5,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// Only trip if we have enough requests to make a decision
			if counts.Requests < 5 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.8
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			// Payment challenges are part of the protocol, not an
			// upstream failure.
			return err == nil || pkgerrors.IsPaymentRequired(err)
		},
	})

	return &Client{
		baseURL:    opts.BaseURL,
		freeAccess: opts.FreeAccess,
		httpClient: &http.Client{Timeout: opts.Timeout},
		breaker:    breaker,
		paywall:    pw,
		metrics:    metrics,
		logger:     logger,
	}
}

// SearchNodes fetches the raw graph payload for a search term. An empty
// term fetches the latest published content over the ungated path.
func (c *Client) SearchNodes(ctx context.Context, term string) (*graph.SearchResponse, error) {
	if term == "" {
		var response graph.SearchResponse
		if err := c.get(ctx, "/prediction/content/latest", "", &response); err != nil {
			return nil, err
		}
		return &response, nil
	}

	if c.freeAccess {
		endpoint := "/v2/searching?word=" + url.QueryEscape(term) + "&free=true"
		var response graph.SearchResponse
		if err := c.get(ctx, endpoint, "", &response); err != nil {
			return nil, err
		}
		return &response, nil
	}

	endpoint := "/v2/search?word=" + url.QueryEscape(term)
	var response graph.SearchResponse
	err := c.paywall.CallGated(ctx, func(ctx context.Context, authorization string) error {
		return c.get(ctx, endpoint, authorization, &response)
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// Trends fetches the currently trending topics.
func (c *Client) Trends(ctx context.Context) (*ports.TrendingResponse, error) {
	var response ports.TrendingResponse
	if err := c.get(ctx, "/get_trends", "", &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Sentiments fetches sentiment analysis through the paywall.
func (c *Client) Sentiments(ctx context.Context, topic, cutoffDate string) (*ports.SentimentResponse, error) {
	endpoint := "/sentiments"
	params := url.Values{}
	if topic != "" {
		params.Set("topic", topic)
	}
	if cutoffDate != "" {
		params.Set("cutoff_date", cutoffDate)
	}
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var response ports.SentimentResponse
	err := c.paywall.CallGated(ctx, func(ctx context.Context, authorization string) error {
		return c.get(ctx, endpoint, authorization, &response)
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// TeachMe submits transcripts for lesson generation.
func (c *Client) TeachMe(ctx context.Context, payload ports.TeachPayload) error {
	return c.paywall.CallGated(ctx, func(ctx context.Context, authorization string) error {
		return c.post(ctx, "/teachme", authorization, payload, nil)
	})
}

// AskQuestion submits a question against transcripts.
func (c *Client) AskQuestion(ctx context.Context, payload ports.QuestionPayload) error {
	return c.paywall.CallGated(ctx, func(ctx context.Context, authorization string) error {
		return c.post(ctx, "/ask_question", authorization, payload, nil)
	})
}

// Instagraph submits transcripts for instant graph generation.
func (c *Client) Instagraph(ctx context.Context, payload ports.TeachPayload) error {
	return c.paywall.CallGated(ctx, func(ctx context.Context, authorization string) error {
		return c.post(ctx, "/instagraph", authorization, payload, nil)
	})
}

// get performs an authorized GET and decodes the JSON response.
func (c *Client) get(ctx context.Context, endpoint, authorization string, out interface{}) error {
	return c.do(ctx, http.MethodGet, endpoint, authorization, nil, out)
}

// post performs an authorized POST with a JSON body.
func (c *Client) post(ctx context.Context, endpoint, authorization string, body, out interface{}) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return pkgerrors.NewInternalError("failed to encode request body").WithCause(err)
	}
	return c.do(ctx, http.MethodPost, endpoint, authorization, encoded, out)
}

// do runs one round-trip through the circuit breaker and shapes the
// error taxonomy: 402 with a challenge header becomes a tagged
// payment-required error, every other non-2xx an external error.
func (c *Client) do(ctx context.Context, method, endpoint, authorization string, body []byte, out interface{}) error {
	start := time.Now()

	_, err := c.breaker.Execute(func() (interface{}, error) {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
		if err != nil {
			return nil, pkgerrors.NewInternalError("failed to build request").WithCause(err)
		}
		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, pkgerrors.NewNetworkError("content API request failed", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, c.shapeError(resp)
		}

		if out != nil {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return nil, pkgerrors.NewExternalError("content-api", err)
			}
		}

		return nil, nil
	})

	c.record(endpoint, start, err)

	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return pkgerrors.NewNetworkError("content API circuit open", err)
	}

	return err
}

// shapeError converts a non-2xx response into the tagged error taxonomy.
func (c *Client) shapeError(resp *http.Response) error {
	if resp.StatusCode == http.StatusPaymentRequired {
		if challenge := resp.Header.Get("Www-Authenticate"); challenge != "" {
			return pkgerrors.NewPaymentRequiredError(challenge)
		}
		// A 402 without a challenge header is not a payable error.
	}

	return pkgerrors.NewExternalError("content-api",
		fmt.Errorf("unexpected status %d", resp.StatusCode),
	).WithDetails(map[string]interface{}{"status": resp.StatusCode})
}

// record updates the upstream request metrics.
func (c *Client) record(endpoint string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}

	status := "ok"
	if err != nil {
		status = "error"
		if pkgerrors.IsPaymentRequired(err) {
			status = "payment_required"
		}
	}

	c.metrics.UpstreamRequests.WithLabelValues(endpoint, status).Inc()
	c.metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
