package banking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clearpath-au/go-remit/internal/common"
	"github.com/clearpath-au/go-remit/internal/config"
	"github.com/clearpath-au/go-remit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eftPayout(key string) models.PayoutRequest {
	return models.PayoutRequest{
		ABN:         "51824753556",
		TaxType:     "GST",
		PeriodID:    "2025-Q4",
		AmountCents: -125000,
		Rail:        models.RailEFT,
		Destination: models.Destination{
			BSB:           "012-345",
			AccountNumber: "123456789",
		},
		IdempotencyKey: key,
	}
}

func TestNew_ProviderSelection(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.BankProviderConfig
		wantName string
		wantErr  bool
	}{
		{name: "defaults to mock", cfg: config.BankProviderConfig{}, wantName: "mock"},
		{name: "simulator", cfg: config.BankProviderConfig{Name: "simulator"}, wantName: "simulator"},
		{name: "unknown provider", cfg: config.BankProviderConfig{Name: "carrier-pigeon"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			port, err := New(tt.cfg, nil)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, port.Capabilities().Name)
			assert.False(t, port.Capabilities().MovesMoney)
		})
	}
}

func TestMockProvider_SubmitPayout(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts unscripted requests", func(t *testing.T) {
		p := NewMockProvider()
		res, err := p.SubmitPayout(ctx, eftPayout("key-1"))
		require.NoError(t, err)
		assert.Equal(t, models.PayoutStatusAccepted, res.Status)
		assert.NotEmpty(t, res.ProviderRef)
		assert.Len(t, p.Submissions(), 1)
	})

	t.Run("returns scripted rejection", func(t *testing.T) {
		p := NewMockProvider()
		p.ScriptResult("key-2", models.PayoutResult{
			Status:       models.PayoutStatusRejected,
			ProviderCode: "ACCOUNT_CLOSED",
		})

		res, err := p.SubmitPayout(ctx, eftPayout("key-2"))
		require.NoError(t, err)
		assert.True(t, res.Terminal())
	})

	t.Run("returns scripted error", func(t *testing.T) {
		p := NewMockProvider()
		p.ScriptError("key-3", common.Transient(errors.New("socket reset")))

		_, err := p.SubmitPayout(ctx, eftPayout("key-3"))
		assert.True(t, common.IsTransient(err))
	})
}

func TestSimulatorProvider_DeterministicRef(t *testing.T) {
	p := NewSimulatorProvider(config.BankProviderConfig{})
	ctx := context.Background()

	first, err := p.SubmitPayout(ctx, eftPayout("same-key"))
	require.NoError(t, err)
	second, err := p.SubmitPayout(ctx, eftPayout("same-key"))
	require.NoError(t, err)

	assert.Equal(t, first.ProviderRef, second.ProviderRef)
	assert.Regexp(t, "^SIM-[0-9A-F]{12}$", first.ProviderRef)

	other, err := p.SubmitPayout(ctx, eftPayout("other-key"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ProviderRef, other.ProviderRef)
}

func TestSimulatorProvider_FailEveryN(t *testing.T) {
	p := NewSimulatorProvider(config.BankProviderConfig{SimFailEveryN: 2})
	ctx := context.Background()

	_, err := p.SubmitPayout(ctx, eftPayout("k1"))
	require.NoError(t, err)

	_, err = p.SubmitPayout(ctx, eftPayout("k2"))
	require.Error(t, err)
	assert.True(t, common.IsTransient(err))

	_, err = p.SubmitPayout(ctx, eftPayout("k3"))
	assert.NoError(t, err)
}

func TestSimulatorProvider_RejectsMagicCRN(t *testing.T) {
	p := NewSimulatorProvider(config.BankProviderConfig{})

	req := eftPayout("bpay-key")
	req.Rail = models.RailBPAY
	req.Destination = models.Destination{BillerCode: "75556", CRN: "20250900"}

	res, err := p.SubmitPayout(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.PayoutStatusRejected, res.Status)
}

func TestSimulatorProvider_LatencyHonorsContext(t *testing.T) {
	p := NewSimulatorProvider(config.BankProviderConfig{SimLatency: time.Second})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.SubmitPayout(ctx, eftPayout("slow"))
	require.Error(t, err)
	assert.True(t, common.IsTransient(err))
}
