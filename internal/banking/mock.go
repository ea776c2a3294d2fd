package banking

import (
	"context"
	"sync"

	"github.com/clearpath-au/go-remit/internal/common"
	"github.com/clearpath-au/go-remit/internal/common/idgenerator"
	"github.com/clearpath-au/go-remit/internal/models"
)

// MockProvider accepts everything unless scripted otherwise. Used in local
// runs and as the seam for orchestrator tests.
type MockProvider struct {
	mu    sync.Mutex
	idGen idgenerator.Generator

	// script maps idempotency key to a canned response. Unscripted requests
	// are accepted.
	script map[string]scriptedOutcome

	submissions []models.PayoutRequest
}

type scriptedOutcome struct {
	result models.PayoutResult
	err    error
}

func NewMockProvider() *MockProvider {
	return &MockProvider{
		idGen:  idgenerator.New(),
		script: make(map[string]scriptedOutcome),
	}
}

func (p *MockProvider) Capabilities() Capability {
	return Capability{
		Name:          "mock",
		MovesMoney:    false,
		SupportsRails: []models.Rail{models.RailEFT, models.RailBPAY, models.RailPayTo},
		StatusPolling: false,
	}
}

// ScriptResult makes the next submissions for key return the given result.
func (p *MockProvider) ScriptResult(key string, result models.PayoutResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.script[key] = scriptedOutcome{result: result}
}

// ScriptError makes the next submissions for key fail with err.
func (p *MockProvider) ScriptError(key string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.script[key] = scriptedOutcome{err: err}
}

func (p *MockProvider) Submissions() []models.PayoutRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.PayoutRequest, len(p.submissions))
	copy(out, p.submissions)
	return out
}

func (p *MockProvider) SubmitPayout(ctx context.Context, req models.PayoutRequest) (models.PayoutResult, error) {
	if err := ctx.Err(); err != nil {
		return models.PayoutResult{}, common.Transient(err)
	}

	p.mu.Lock()
	p.submissions = append(p.submissions, req)
	outcome, scripted := p.script[req.IdempotencyKey]
	p.mu.Unlock()

	if scripted {
		if outcome.err != nil {
			return models.PayoutResult{}, outcome.err
		}
		return outcome.result, nil
	}

	return models.PayoutResult{
		Status:       models.PayoutStatusAccepted,
		ProviderCode: "mock",
		ProviderRef:  p.idGen.Generate("MOCK"),
		BankTxnID:    p.idGen.Generate("MOCKTXN"),
	}, nil
}
