package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)

	// must not panic and must not write anywhere
	log.Info().Str("k", "v").Msg("dropped")
	log.Err(assert.AnError).Msg("dropped too")
}

func TestFromContext_FallsBackToGlobal(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
}

func TestWithContext_RoundTrip(t *testing.T) {
	log := Nop()
	ctx := log.WithContext(context.Background())

	got := FromContext(ctx)
	require.NotNil(t, got)
	assert.Equal(t, log.Logger, got.Logger)
}

func TestFromRequest_UsesRequestContext(t *testing.T) {
	log := Nop()
	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(log.WithContext(r.Context()))

	got := FromRequest(r)
	require.NotNil(t, got)
	assert.Equal(t, log.Logger, got.Logger)
}
