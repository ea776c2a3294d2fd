package models

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

const (
	IdempotencyStatusPending   = "PENDING"
	IdempotencyStatusCompleted = "COMPLETED"
	IdempotencyStatusFailed    = "FAILED"

	TTLIdempotency = 24 * time.Hour
)

// IdempotencyRecord maps a caller-supplied key to exactly one outcome. The
// row is created PENDING on first sight of a key and flips to a terminal
// status exactly once.
type IdempotencyRecord struct {
	Key           string    `json:"key"`
	Status        string    `json:"status"`
	Fingerprint   string    `json:"fingerprint"`
	ResultPayload []byte    `json:"resultPayload,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (r *IdempotencyRecord) Terminal() bool {
	return r.Status == IdempotencyStatusCompleted || r.Status == IdempotencyStatusFailed
}

// NewIdempotencyRecord fingerprints the request body so the same key cannot
// be reused for a different payload.
func NewIdempotencyRecord(key string, requestBody []byte) *IdempotencyRecord {
	sum := sha256.Sum256(requestBody)
	return &IdempotencyRecord{
		Key:         key,
		Status:      IdempotencyStatusPending,
		Fingerprint: hex.EncodeToString(sum[:]),
	}
}

// BeginResult is what the guard reports for a key: either the caller owns the
// execution (IsNew) or it gets the stored record back.
type BeginResult struct {
	IsNew    bool
	Existing *IdempotencyRecord
}
