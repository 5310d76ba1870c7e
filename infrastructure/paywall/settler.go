package paywall

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	pkgerrors "mindmesh-backend/pkg/errors"
)

// HTTPSettler settles payment challenges through a wallet sidecar: the
// invoice is submitted for payment and the returned preimage is paired
// with the challenge macaroon to form the proof.
type HTTPSettler struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPSettler creates a settler against the wallet endpoint.
func NewHTTPSettler(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPSettler {
	return &HTTPSettler{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type payInvoiceRequest struct {
	Invoice string `json:"invoice"`
}

type payInvoiceResponse struct {
	Preimage string `json:"preimage"`
}

// Settle parses the challenge, pays the invoice and returns the
// authorization credential. Called at most once per challenge.
func (s *HTTPSettler) Settle(ctx context.Context, challenge string) (string, error) {
	parsed, err := ParseChallenge(challenge)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(payInvoiceRequest{Invoice: parsed.Invoice})
	if err != nil {
		return "", pkgerrors.NewInternalError("failed to encode payment request").WithCause(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return "", pkgerrors.NewInternalError("failed to build payment request").WithCause(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", pkgerrors.NewNetworkError("wallet request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", pkgerrors.NewExternalError("wallet", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var payment payInvoiceResponse
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return "", pkgerrors.NewExternalError("wallet", err)
	}
	if payment.Preimage == "" {
		return "", pkgerrors.NewExternalError("wallet", fmt.Errorf("payment response missing preimage"))
	}

	s.logger.Debug("Invoice settled")

	return Credential(parsed.Macaroon, payment.Preimage), nil
}

// NoopSettler rejects every challenge. Used in development against the
// free upstream path, where a challenge indicates misconfiguration
// rather than a payable invoice.
type NoopSettler struct{}

// Settle always fails.
func (NoopSettler) Settle(ctx context.Context, challenge string) (string, error) {
	return "", pkgerrors.NewInternalError("payment settlement is not configured")
}
