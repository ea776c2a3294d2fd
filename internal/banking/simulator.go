package banking

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/clearpath-au/go-remit/internal/common"
	"github.com/clearpath-au/go-remit/internal/config"
	"github.com/clearpath-au/go-remit/internal/models"
)

// SimulatorProvider behaves like a bank without one: provider refs are
// derived from the request so a resubmitted payout gets the same ref, and
// every Nth call can be made to fail transiently to exercise the retry path.
type SimulatorProvider struct {
	failEveryN int64
	latency    time.Duration

	calls atomic.Int64
}

func NewSimulatorProvider(cfg config.BankProviderConfig) *SimulatorProvider {
	return &SimulatorProvider{
		failEveryN: int64(cfg.SimFailEveryN),
		latency:    cfg.SimLatency,
	}
}

func (p *SimulatorProvider) Capabilities() Capability {
	return Capability{
		Name:          "simulator",
		MovesMoney:    false,
		SupportsRails: []models.Rail{models.RailEFT, models.RailBPAY, models.RailPayTo},
		StatusPolling: true,
	}
}

func (p *SimulatorProvider) SubmitPayout(ctx context.Context, req models.PayoutRequest) (models.PayoutResult, error) {
	if p.latency > 0 {
		select {
		case <-time.After(p.latency):
		case <-ctx.Done():
			return models.PayoutResult{}, common.Transient(ctx.Err())
		}
	}

	n := p.calls.Add(1)
	if p.failEveryN > 0 && n%p.failEveryN == 0 {
		return models.PayoutResult{}, common.Transient(errors.New("simulated provider outage"))
	}

	// Magic CRN suffix forces a definitive rejection so operators can walk
	// the failure path end to end.
	if strings.HasSuffix(req.Destination.CRN, "00") && req.Rail == models.RailBPAY {
		return models.PayoutResult{
			Status:       models.PayoutStatusRejected,
			ProviderCode: "simulator",
			ProviderRef:  simRef(req),
		}, nil
	}

	return models.PayoutResult{
		Status:       models.PayoutStatusAccepted,
		ProviderCode: "simulator",
		ProviderRef:  simRef(req),
		BankTxnID:    fmt.Sprintf("SIMTXN-%d", n),
	}, nil
}

// simRef is stable per idempotency key, which lets reconciliation tests feed
// statement lines without capturing the live ref first.
func simRef(req models.PayoutRequest) string {
	sum := sha256.Sum256([]byte(req.IdempotencyKey))
	return "SIM-" + strings.ToUpper(hex.EncodeToString(sum[:6]))
}
