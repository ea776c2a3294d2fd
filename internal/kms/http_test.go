package kms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/clearpath-au/go-remit/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPVerifier_VerifyCachesVerdict(t *testing.T) {
	ctx := context.Background()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.Equal(t, "/v1/verify", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ticket-key-1", req["keyId"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"valid":true}`))
	}))
	defer srv.Close()

	verifier := NewHTTPVerifier(config.KmsConfig{
		Name:    "http",
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
		KeyID:   "ticket-key-1",
	}, nil)

	payload := []byte(`{"periodId":"2025-Q4"}`)
	sig := []byte("sig-bytes")

	ok, err := verifier.Verify(ctx, payload, sig, "")
	require.NoError(t, err)
	assert.True(t, ok)

	// same triple resolves from the verdict cache without a round trip.
	ok, err = verifier.Verify(ctx, payload, sig, "")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int32(1), calls.Load())

	// different payload is a different triple.
	ok, err = verifier.Verify(ctx, []byte(`{"periodId":"2025-Q3"}`), sig, "")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int32(2), calls.Load())
}

func TestHTTPVerifier_VerifyBackendErrors(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	verifier := NewHTTPVerifier(config.KmsConfig{
		Name:    "http",
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
		KeyID:   "ticket-key-1",
	}, nil)

	_, err := verifier.Verify(ctx, []byte("payload"), []byte("sig"), "")
	assert.Error(t, err)
}
