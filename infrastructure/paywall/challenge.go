// Package paywall implements transparent handling of a micropayment-gated
// API: challenge parsing, proof minting through a settlement collaborator,
// and a strictly bounded retry around gated calls.
package paywall

import (
	"strings"

	pkgerrors "mindmesh-backend/pkg/errors"
)

// Challenge is a parsed authorization challenge from a payment-required
// response. It is created per failed call, consumed by minting a proof,
// then discarded; never cached or reused across calls.
type Challenge struct {
	// Raw is the unmodified header value.
	Raw string

	// Macaroon is the opaque credential to present alongside the
	// payment preimage.
	Macaroon string

	// Invoice is the payment request to settle.
	Invoice string
}

// Challenge header schemes. L402 is the current name of the protocol,
// LSAT the legacy one; both appear in the wild.
var challengeSchemes = []string{"L402", "LSAT"}

// ParseChallenge parses a WWW-Authenticate style header of the form
//
//	L402 macaroon="<base64>", invoice="<bolt11>"
//
// Absence of this shape means the error was never a payment challenge
// and must propagate unchanged, so parsing failures are validation
// errors, not payment errors.
func ParseChallenge(header string) (*Challenge, error) {
	trimmed := strings.TrimSpace(header)
	if trimmed == "" {
		return nil, pkgerrors.NewValidationError("empty authorization challenge")
	}

	var params string
	for _, scheme := range challengeSchemes {
		if len(trimmed) > len(scheme) && strings.EqualFold(trimmed[:len(scheme)], scheme) {
			params = strings.TrimSpace(trimmed[len(scheme):])
			break
		}
	}
	if params == "" {
		return nil, pkgerrors.NewValidationError("unrecognized authorization challenge scheme")
	}

	challenge := &Challenge{Raw: header}

	for _, part := range strings.Split(params, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		value = strings.Trim(value, `"`)

		switch strings.ToLower(key) {
		case "macaroon":
			challenge.Macaroon = value
		case "invoice":
			challenge.Invoice = value
		}
	}

	if challenge.Macaroon == "" || challenge.Invoice == "" {
		return nil, pkgerrors.NewValidationError("authorization challenge missing macaroon or invoice")
	}

	return challenge, nil
}

// Credential assembles the authorization credential for a settled
// challenge: the macaroon paired with the payment preimage.
func Credential(macaroon, preimage string) string {
	return "L402 " + macaroon + ":" + preimage
}
