package paywall

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	pkgerrors "mindmesh-backend/pkg/errors"
)

const testChallenge = `L402 macaroon="m", invoice="i"`

// recordingSettler counts settlements and returns a fixed proof.
type recordingSettler struct {
	calls int
	proof string
	err   error
}

func (s *recordingSettler) Settle(ctx context.Context, challenge string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.proof, nil
}

func TestCallGated_SuccessWithoutChallenge(t *testing.T) {
	settler := &recordingSettler{proof: "unused"}
	client := NewClient(settler, nil, zap.NewNop())

	attempts := 0
	err := client.CallGated(context.Background(), func(ctx context.Context, authorization string) error {
		attempts++
		assert.Empty(t, authorization)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 0, settler.calls, "settler must never run speculatively")
}

func TestCallGated_SettlesOnceAndRetriesWithProof(t *testing.T) {
	settler := &recordingSettler{proof: "L402 m:preimage"}
	client := NewClient(settler, nil, zap.NewNop())

	var authorizations []string
	err := client.CallGated(context.Background(), func(ctx context.Context, authorization string) error {
		authorizations = append(authorizations, authorization)
		if authorization == "" {
			return pkgerrors.NewPaymentRequiredError(testChallenge)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"", "L402 m:preimage"}, authorizations)
	assert.Equal(t, 1, settler.calls)
}

func TestCallGated_SecondChallengeIsFatal(t *testing.T) {
	settler := &recordingSettler{proof: "L402 m:preimage"}
	client := NewClient(settler, nil, zap.NewNop())

	attempts := 0
	err := client.CallGated(context.Background(), func(ctx context.Context, authorization string) error {
		attempts++
		return pkgerrors.NewPaymentRequiredError(testChallenge)
	})

	require.Error(t, err)
	assert.True(t, pkgerrors.IsPaymentRequired(err))
	// Exactly two attempts and exactly one settlement: the loop is
	// bounded no matter what the upstream does.
	assert.Equal(t, 2, attempts)
	assert.Equal(t, 1, settler.calls)
}

func TestCallGated_NonPaymentErrorPropagatesUnchanged(t *testing.T) {
	settler := &recordingSettler{}
	client := NewClient(settler, nil, zap.NewNop())

	boom := errors.New("connection refused")
	attempts := 0
	err := client.CallGated(context.Background(), func(ctx context.Context, authorization string) error {
		attempts++
		return boom
	})

	assert.Same(t, boom, err)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 0, settler.calls)
}

func TestCallGated_SettlementFailureIsFatal(t *testing.T) {
	settler := &recordingSettler{err: errors.New("wallet unreachable")}
	client := NewClient(settler, nil, zap.NewNop())

	attempts := 0
	err := client.CallGated(context.Background(), func(ctx context.Context, authorization string) error {
		attempts++
		return pkgerrors.NewPaymentRequiredError(testChallenge)
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment settlement failed")
	assert.Equal(t, 1, attempts, "no retry without a minted proof")
	assert.Equal(t, 1, settler.calls)
}

func TestNoopSettler_AlwaysFails(t *testing.T) {
	_, err := NoopSettler{}.Settle(context.Background(), testChallenge)
	assert.Error(t, err)
}
