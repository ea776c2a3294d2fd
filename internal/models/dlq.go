package models

import (
	"time"
)

// FailedMessage is a consumer message that could not be processed, mirrored
// to the DLQ notification topic.
type FailedMessage struct {
	Payload   []byte    `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error"`
}

// DeadLetterEntry is a payout that exhausted its retry budget. Entries are
// only ever consumed by manual operator replay.
type DeadLetterEntry struct {
	ID        string        `json:"id"`
	Provider  string        `json:"provider"`
	Request   PayoutRequest `json:"request"`
	CauseErr  error         `json:"-"`
	Error     string        `json:"error"`
	Timestamp time.Time     `json:"timestamp"`
}
