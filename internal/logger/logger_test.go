package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	// Must not panic and must not write anywhere.
	l.Info().Str("k", "v").Msg("discarded")
	l.Error().Msg("also discarded")
}

func TestFromContext_RoundTrip(t *testing.T) {
	l := Nop()
	ctx := l.WithContext(context.Background())

	got := FromContext(ctx)
	require.NotNil(t, got)
	assert.Equal(t, l.Logger, got.Logger)
}

func TestFromContext_NoLoggerAttached(t *testing.T) {
	got := FromContext(context.Background())
	require.NotNil(t, got)
}

func TestFromRequest(t *testing.T) {
	l := Nop()
	r := httptest.NewRequest("GET", "/api/entries", nil)
	r = r.WithContext(l.WithContext(r.Context()))

	got := FromRequest(r)
	require.NotNil(t, got)
	assert.Equal(t, l.Logger, got.Logger)
}
