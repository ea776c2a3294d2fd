package models

import (
	"encoding/json"
	"time"
)

// Rail is an external settlement channel.
type Rail string

const (
	RailEFT   Rail = "EFT"
	RailBPAY  Rail = "BPAY"
	RailPayTo Rail = "PAYTO"
)

func (r Rail) Valid() bool {
	switch r {
	case RailEFT, RailBPAY, RailPayTo:
		return true
	}
	return false
}

// Destination carries the rail-specific payee coordinates. Exactly the fields
// for the request's rail are set; the rest stay empty.
type Destination struct {
	// EFT
	BSB           string `json:"bsb,omitempty" validate:"omitempty,bsb"`
	AccountNumber string `json:"accountNumber,omitempty" validate:"omitempty,numeric"`

	// BPAY
	BillerCode string `json:"billerCode,omitempty" validate:"omitempty,numeric"`
	CRN        string `json:"crn,omitempty" validate:"omitempty,crn"`

	// PayTo
	MandateID string `json:"mandateId,omitempty"`
}

// ReleaseRequest is immutable once accepted. Amounts are signed cents;
// releases are outflows and therefore negative.
type ReleaseRequest struct {
	ABN            string            `json:"abn" validate:"required,abn"`
	TaxType        string            `json:"taxType" validate:"required,oneof=GST PAYGW PAYGI FBT"`
	PeriodID       string            `json:"periodId" validate:"required"`
	AmountCents    int64             `json:"amountCents" validate:"required,lt=0"`
	Rail           Rail              `json:"rail" validate:"required,oneof=EFT BPAY PAYTO"`
	Destination    Destination       `json:"destination" validate:"required"`
	IdempotencyKey string            `json:"idempotencyKey" validate:"required,max=128"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// ReleaseOutcome is what callers get back, whether the release just executed
// or was replayed from the idempotency store.
type ReleaseOutcome struct {
	Status      PayoutStatus `json:"status"`
	ProviderRef string       `json:"providerRef,omitempty"`
	BankTxnID   string       `json:"bankTxnId,omitempty"`
	Replayed    bool         `json:"replayed"`
	ReleasedAt  time.Time    `json:"releasedAt"`
}

func (o ReleaseOutcome) Marshal() ([]byte, error) {
	return json.Marshal(o)
}

// BankReceipt is created once the provider accepts (or leaves pending) a
// payout. Owned by the orchestrator; reconciliation only reads it.
type BankReceipt struct {
	ID          uint64     `json:"id"`
	ProviderRef string     `json:"providerRef"`
	ABN         string     `json:"abn"`
	TaxType     string     `json:"taxType"`
	PeriodID    string     `json:"periodId"`
	AmountCents int64      `json:"amountCents"`
	Channel     Rail       `json:"channel"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`
	DryRun      bool       `json:"dryRun"`
	ShadowOnly  bool       `json:"shadowOnly"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// LedgerPeriod is one obligation period's running state in the internal
// ledger. BalanceCents goes down by the release amount on settlement.
type LedgerPeriod struct {
	ABN          string    `json:"abn"`
	TaxType      string    `json:"taxType"`
	PeriodID     string    `json:"periodId"`
	BalanceCents int64     `json:"balanceCents"`
	RunningHash  string    `json:"runningHash"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
