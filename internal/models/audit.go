package models

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"time"
)

// Audit categories. One per meaningful state transition.
const (
	AuditCategoryReleaseAccepted  = "RELEASE_ACCEPTED"
	AuditCategoryReleaseRejected  = "RELEASE_REJECTED"
	AuditCategoryReleaseExhausted = "RELEASE_EXHAUSTED"
	AuditCategoryReleaseBlocked   = "RELEASE_BLOCKED"
	AuditCategoryReconLinked      = "RECON_LINKED"
	AuditCategoryReconMismatch    = "RECON_MISMATCH"
	AuditCategoryEvidenceBuilt    = "EVIDENCE_BUILT"
)

// AuditLogEntry is one link of the hash chain. hash_this is
// SHA256(hash_prev || message) with the genesis entry hashing from an empty
// previous hash. Rows are never updated or deleted.
type AuditLogEntry struct {
	Seq       uint64         `json:"seq"`
	Category  string         `json:"category"`
	Message   string         `json:"message"`
	HashPrev  sql.NullString `json:"hashPrev"`
	HashThis  string         `json:"hashThis"`
	CreatedAt time.Time      `json:"createdAt"`
}

// ChainHash computes the hash for a message given the previous entry's hash
// ("" for genesis).
func ChainHash(hashPrev, message string) string {
	sum := sha256.Sum256([]byte(hashPrev + message))
	return hex.EncodeToString(sum[:])
}

// AppendReceipt is returned by AuditChain.Append so callers can cite the
// entry they produced.
type AppendReceipt struct {
	Seq      uint64 `json:"seq"`
	HashPrev string `json:"hashPrev,omitempty"`
	HashThis string `json:"hashThis"`
}

// AuditExportRow is the externally visible projection of an audit entry.
// The column set is an allowlist; nothing else leaves the boundary.
type AuditExportRow struct {
	Seq       uint64    `json:"seq"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	HashPrev  string    `json:"hash_prev,omitempty"`
	HashThis  string    `json:"hash_this"`
	CreatedAt time.Time `json:"created_at"`
}

func (e AuditLogEntry) ToExportRow() AuditExportRow {
	row := AuditExportRow{
		Seq:       e.Seq,
		Category:  e.Category,
		Message:   e.Message,
		HashThis:  e.HashThis,
		CreatedAt: e.CreatedAt,
	}
	if e.HashPrev.Valid {
		row.HashPrev = e.HashPrev.String
	}
	return row
}
