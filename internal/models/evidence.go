package models

import "time"

// Approval is one sign-off captured before a release was allowed to run.
type Approval struct {
	Approver   string    `json:"approver"`
	Role       string    `json:"role"`
	ApprovedAt time.Time `json:"approvedAt"`
	TicketRef  string    `json:"ticketRef,omitempty"`
}

// RulesManifest pins the rule set that was in effect when the release was
// decided. Only the hash participates in evidence.
type RulesManifest struct {
	ID   string `json:"id"`
	Hash string `json:"hash"`
}

// ReleaseTicket is an externally issued, signed authorization for a release.
// Verification is delegated to the KMS port.
type ReleaseTicket struct {
	Payload   []byte `json:"payload"`
	Signature []byte `json:"signature"`
	KeyID     string `json:"keyId,omitempty"`
}

// EvidenceSettlement is the settlement view inside a bundle. Amount is the
// absolute value of the ledger outflow.
type EvidenceSettlement struct {
	ProviderRef string     `json:"providerRef"`
	AmountCents int64      `json:"amountCents"`
	Channel     Rail       `json:"channel"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`
}

// EvidenceBundle is a derived, read-only projection. It is recomputed on
// request and never persisted; identical inputs must produce identical bytes.
type EvidenceBundle struct {
	PeriodID           string              `json:"periodId"`
	ABN                string              `json:"abn"`
	TaxType            string              `json:"taxType"`
	BalanceCents       int64               `json:"balanceCents"`
	RunningBalanceHash string              `json:"runningBalanceHash"`
	RulesManifestHash  string              `json:"rulesManifestHash"`
	Settlement         *EvidenceSettlement `json:"settlement,omitempty"`
	Approvals          []Approval          `json:"approvals"`
	AuditTrail         []AuditExportRow    `json:"auditTrail"`
	TicketVerified     *bool               `json:"ticketVerified,omitempty"`
	Narrative          string              `json:"narrative"`
	BundleHash         string              `json:"bundleHash"`
	Signature          string              `json:"signature,omitempty"`
}
