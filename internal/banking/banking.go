package banking

import (
	"fmt"

	"github.com/clearpath-au/go-remit/internal/common/metrics"
	"github.com/clearpath-au/go-remit/internal/config"
)

const (
	ProviderMock      = "mock"
	ProviderSimulator = "simulator"
	ProviderMTLS      = "mtls"
)

// New selects the payout provider once at bootstrap.
func New(cfg config.BankProviderConfig, mtc metrics.Metrics) (Port, error) {
	switch cfg.Name {
	case ProviderMock, "":
		return NewMockProvider(), nil
	case ProviderSimulator:
		return NewSimulatorProvider(cfg), nil
	case ProviderMTLS:
		return NewMTLSProvider(cfg, mtc)
	}
	return nil, fmt.Errorf("unknown bank provider %q", cfg.Name)
}
