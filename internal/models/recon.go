package models

import (
	"time"
)

// StatementLine is one entry of a bank statement batch as delivered by the
// statements port.
type StatementLine struct {
	BankTxnID    string    `json:"bank_txn_id"`
	ProviderRef  string    `json:"provider_ref" validate:"required"`
	PostedAt     time.Time `json:"posted_at"`
	AmountCents  int64     `json:"amount_cents"`
	Reference    string    `json:"reference,omitempty"`
	ProviderCode string    `json:"provider_code,omitempty"`
	Currency     string    `json:"currency,omitempty"`
}

// BankStatementBatch groups the lines reported by one provider up to a
// cutoff time.
type BankStatementBatch struct {
	Provider string          `json:"provider" validate:"required"`
	Cutoff   time.Time       `json:"cutoff"`
	Entries  []StatementLine `json:"entries" validate:"required,dive"`
	Source   string          `json:"source,omitempty"`
}

// Match states for an ingested statement line.
const (
	StatementLineStatusUnmatched = "UNMATCHED"
	StatementLineStatusLinked    = "LINKED"
	StatementLineStatusMismatch  = "MISMATCH"
	StatementLineStatusExpired   = "EXPIRED"
)

// ReconciliationRecord links a statement line to the release that caused it.
// It references a BankReceipt by provider_ref and never mutates it.
type ReconciliationRecord struct {
	ID                uint64    `json:"id"`
	ProviderRef       string    `json:"providerRef"`
	PostedAmountCents int64     `json:"postedAmountCents"`
	PaidAt            time.Time `json:"paidAt"`
	LinkedPeriodID    string    `json:"linkedPeriodId,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
}

// LinkedRecord is the per-line outcome of one ingestion pass.
type LinkedRecord struct {
	ProviderRef string `json:"providerRef"`
	PeriodID    string `json:"periodId,omitempty"`
	Status      string `json:"status"`
	Detail      string `json:"detail,omitempty"`
}

// UnmatchedFilterOptions narrows the retained-line listing. Zero values mean
// no filter.
type UnmatchedFilterOptions struct {
	Provider    string
	MaxAttempts int
}

// UnmatchedLine is a retained statement line waiting for its receipt.
type UnmatchedLine struct {
	ID          uint64        `json:"id"`
	Provider    string        `json:"provider"`
	Line        StatementLine `json:"line"`
	Attempts    int           `json:"attempts"`
	FirstSeenAt time.Time     `json:"firstSeenAt"`
	LastTriedAt time.Time     `json:"lastTriedAt"`
}

// IngestSummary is returned to the statement producer.
type IngestSummary struct {
	Provider  string         `json:"provider"`
	Received  int            `json:"received"`
	Linked    int            `json:"linked"`
	Mismatch  int            `json:"mismatch"`
	Unmatched int            `json:"unmatched"`
	Results   []LinkedRecord `json:"results"`
}
