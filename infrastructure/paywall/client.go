package paywall

import (
	"context"

	"go.uber.org/zap"

	"mindmesh-backend/application/ports"
	pkgerrors "mindmesh-backend/pkg/errors"
	"mindmesh-backend/pkg/observability"
)

// maxAttempts bounds every gated call to one initial attempt plus one
// retry after settling a challenge. A second consecutive payment
// challenge propagates as fatal; no operation ever performs more than
// two network attempts for a single logical call.
const maxAttempts = 2

// RequestFunc performs one network attempt with the given authorization
// credential (empty on the first attempt unless the caller pre-minted one).
type RequestFunc func(ctx context.Context, authorization string) error

// Client wraps gated network calls with the challenge-settle-retry state
// machine. The retry bound is a loop, not recursion, so it is structural
// rather than a property of the call stack.
type Client struct {
	settler ports.PaymentSettler
	metrics *observability.Collector
	logger  *zap.Logger
}

// NewClient creates a paywall client.
func NewClient(settler ports.PaymentSettler, metrics *observability.Collector, logger *zap.Logger) *Client {
	return &Client{
		settler: settler,
		metrics: metrics,
		logger:  logger,
	}
}

// CallGated invokes fn, settling at most one payment challenge.
//
//   - success: the result is returned as-is;
//   - non-payment failure: re-raised unchanged, fatal to the caller;
//   - payment challenge: the proof is minted once and fn re-invoked
//     exactly once more with the proof attached;
//   - a challenge on the retried call is fatal.
//
// Settling performs a real payment, so it is never invoked
// speculatively and never more than once per challenge.
func (c *Client) CallGated(ctx context.Context, fn RequestFunc) error {
	authorization := ""

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := fn(ctx, authorization)
		if err == nil {
			return nil
		}

		challenge, ok := pkgerrors.PaymentChallenge(err)
		if !ok {
			return err
		}

		if c.metrics != nil {
			c.metrics.PaymentChallenges.Inc()
		}

		if attempt == maxAttempts {
			c.logger.Warn("Payment challenge on retried call, giving up")
			return err
		}

		proof, settleErr := c.settle(ctx, challenge)
		if settleErr != nil {
			return settleErr
		}

		authorization = proof
	}

	// unreachable: the loop always returns
	return pkgerrors.NewInternalError("gated call fell through retry loop")
}

// settle mints a payment proof for one challenge. Failures here are
// fatal rather than swallowed: money movement must never be silently
// ignored.
func (c *Client) settle(ctx context.Context, challenge string) (string, error) {
	proof, err := c.settler.Settle(ctx, challenge)
	if err != nil {
		if c.metrics != nil {
			c.metrics.PaymentFailures.Inc()
		}
		c.logger.Error("Payment settlement failed", zap.Error(err))
		return "", pkgerrors.Wrap(err, "payment settlement failed")
	}

	if c.metrics != nil {
		c.metrics.PaymentSettlements.Inc()
	}
	c.logger.Info("Payment challenge settled")

	return proof, nil
}
