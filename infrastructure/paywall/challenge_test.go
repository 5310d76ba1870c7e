package paywall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChallenge_L402(t *testing.T) {
	challenge, err := ParseChallenge(`L402 macaroon="AGIAJE=", invoice="lnbc100n1p"`)

	require.NoError(t, err)
	assert.Equal(t, "AGIAJE=", challenge.Macaroon)
	assert.Equal(t, "lnbc100n1p", challenge.Invoice)
}

func TestParseChallenge_LegacyLSATScheme(t *testing.T) {
	challenge, err := ParseChallenge(`LSAT macaroon="m", invoice="i"`)

	require.NoError(t, err)
	assert.Equal(t, "m", challenge.Macaroon)
	assert.Equal(t, "i", challenge.Invoice)
}

func TestParseChallenge_CaseInsensitiveScheme(t *testing.T) {
	challenge, err := ParseChallenge(`l402 macaroon=m, invoice=i`)

	require.NoError(t, err)
	assert.Equal(t, "m", challenge.Macaroon)
	assert.Equal(t, "i", challenge.Invoice)
}

func TestParseChallenge_Rejections(t *testing.T) {
	cases := map[string]string{
		"empty":            "",
		"unknown scheme":   `Bearer token="x"`,
		"missing invoice":  `L402 macaroon="m"`,
		"missing macaroon": `L402 invoice="i"`,
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseChallenge(header)
			assert.Error(t, err)
		})
	}
}

func TestCredential(t *testing.T) {
	assert.Equal(t, "L402 mac:pre", Credential("mac", "pre"))
}
