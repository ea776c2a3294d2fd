// Package banking abstracts payout submission behind a single provider
// contract. The orchestrator talks to a Port; whether money actually moves is
// a bootstrap decision.
package banking

import (
	"context"

	"github.com/clearpath-au/go-remit/internal/models"
)

// Port is implemented by every payout provider. SubmitPayout returns a
// terminal result or an error; transient errors are wrapped so the retry
// layer can tell them apart from definitive rejections.
type Port interface {
	SubmitPayout(ctx context.Context, req models.PayoutRequest) (models.PayoutResult, error)
	Capabilities() Capability
}

// Capability describes what a provider can actually do. Callers branch on
// this value instead of probing for optional methods.
type Capability struct {
	Name string `json:"name"`
	// MovesMoney is false for the mock and simulator. Receipts they produce
	// are flagged dry-run.
	MovesMoney bool `json:"movesMoney"`
	// SupportsRails lists the settlement channels the provider accepts.
	SupportsRails []models.Rail `json:"supportsRails"`
	// StatusPolling reports whether pending payouts can be re-queried.
	StatusPolling bool `json:"statusPolling"`
}

func (c Capability) SupportsRail(rail models.Rail) bool {
	for _, r := range c.SupportsRails {
		if r == rail {
			return true
		}
	}
	return false
}
