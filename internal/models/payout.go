package models

import "encoding/json"

type PayoutStatus string

const (
	PayoutStatusAccepted PayoutStatus = "ACCEPTED"
	PayoutStatusPending  PayoutStatus = "PENDING"
	PayoutStatusRejected PayoutStatus = "REJECTED"
)

// PayoutRequest is the validated wire-agnostic request handed to a bank
// provider. Providers never see the raw HTTP request.
type PayoutRequest struct {
	ABN            string            `json:"abn"`
	TaxType        string            `json:"taxType"`
	PeriodID       string            `json:"periodId"`
	AmountCents    int64             `json:"amountCents"`
	Rail           Rail              `json:"rail"`
	Destination    Destination       `json:"destination"`
	Reference      string            `json:"reference"`
	IdempotencyKey string            `json:"idempotencyKey"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// PayoutResult is what a provider reports for a single submission attempt.
// REJECTED is terminal; the orchestrator never resubmits it.
type PayoutResult struct {
	Status       PayoutStatus    `json:"status"`
	ProviderCode string          `json:"providerCode"`
	ProviderRef  string          `json:"providerRef,omitempty"`
	BankTxnID    string          `json:"bankTxnId,omitempty"`
	Raw          json.RawMessage `json:"raw,omitempty"`
}

func (r PayoutResult) Terminal() bool {
	return r.Status == PayoutStatusRejected
}
