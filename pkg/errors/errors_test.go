package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidation_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("query validation failed: %w", NewValidationError("style must be one of sphere, split, force"))

	assert.True(t, IsValidation(err))
	assert.False(t, IsPaymentRequired(err))
}

func TestPaymentChallenge_ThroughWrapping(t *testing.T) {
	challenge := `L402 macaroon="m", invoice="i"`
	err := fmt.Errorf("command handler failed: %w", NewPaymentRequiredError(challenge))

	assert.True(t, IsPaymentRequired(err))

	got, ok := PaymentChallenge(err)
	require.True(t, ok)
	assert.Equal(t, challenge, got)
}

func TestPaymentChallenge_PlainError(t *testing.T) {
	_, ok := PaymentChallenge(errors.New("boom"))
	assert.False(t, ok)
}

func TestAppError_UnwrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewExternalError("content-api", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusBadGateway, err.HTTPStatus)
}

func TestWrap_KeepsAppErrorType(t *testing.T) {
	inner := NewValidationError("bad input")
	wrapped := Wrap(inner, "handling request")

	assert.True(t, IsValidation(wrapped))
}

func TestGetAppError_NonAppError(t *testing.T) {
	assert.Nil(t, GetAppError(errors.New("plain")))
	assert.False(t, IsAppError(errors.New("plain")))
}
