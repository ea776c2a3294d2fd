// Package kms verifies release ticket signatures. The evidence builder only
// needs a yes/no answer plus errors for infrastructure failures; signing
// exists so the local implementation can mint fixtures.
package kms

import (
	"context"
	"fmt"

	"github.com/clearpath-au/go-remit/internal/common/metrics"
	"github.com/clearpath-au/go-remit/internal/config"
)

type Port interface {
	// Verify reports whether sig is a valid signature of payload under keyID.
	// A bad signature is (false, nil); an unreachable verifier is an error.
	Verify(ctx context.Context, payload, sig []byte, keyID string) (bool, error)
	Sign(ctx context.Context, payload []byte, keyID string) ([]byte, error)
}

const (
	ProviderLocal = "local"
	ProviderHTTP  = "http"
)

func New(cfg config.KmsConfig, mtc metrics.Metrics, opts ...HTTPVerifierOption) (Port, error) {
	switch cfg.Name {
	case ProviderLocal, "":
		return NewLocalSigner(cfg.Seed)
	case ProviderHTTP:
		return NewHTTPVerifier(cfg, mtc, opts...), nil
	}
	return nil, fmt.Errorf("unknown kms provider %q", cfg.Name)
}
