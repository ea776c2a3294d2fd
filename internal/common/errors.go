package common

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNoRowsAffected      = errors.New("no rows affected")
	ErrValidation          = errors.New("validation failed")
	ErrDataNotFound        = errors.New("data not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrNoRows              = sql.ErrNoRows

	// Idempotency guard outcomes. Duplicate and in-flight are expected
	// conditions, not failures.
	ErrMissingIdempotencyKey  = errors.New("missing idempotency key. this operation requires idempotency key")
	ErrRequestBeingProcessed  = errors.New("request with same idempotency key is being processed")
	ErrInvalidFingerprint     = errors.New("idempotency key cannot be reused for different request payload")
	ErrIdempotencyUnavailable = errors.New("idempotency store unavailable, refusing to release")

	// Pre-flight gates.
	ErrKillSwitchActive      = errors.New("release blocked by kill switch")
	ErrDestinationNotAllowed = errors.New("destination not on the allow list")

	// Provider outcomes.
	ErrProviderRejected = errors.New("provider rejected the payout")
	ErrRetryExhausted   = errors.New("payout retries exhausted")

	// Audit chain.
	ErrChainIntegrity = errors.New("audit chain integrity violation")

	// Reconciliation.
	ErrReconMismatch    = errors.New("statement line amount outside tolerance")
	ErrReceiptNotFound  = errors.New("no bank receipt for provider reference")
	ErrLedgerPeriodGone = errors.New("ledger period not found")
)

// TransientError marks a provider failure as retryable. Timeouts and
// 5xx-equivalent responses wrap into this; definitive rejections never do.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient provider error: %v", e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &TransientError{Err: err}
}

func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// KillSwitchError carries the operator-supplied reason.
type KillSwitchError struct {
	Reason string
}

func (e *KillSwitchError) Error() string {
	if e.Reason == "" {
		return ErrKillSwitchActive.Error()
	}
	return fmt.Sprintf("%s: %s", ErrKillSwitchActive.Error(), e.Reason)
}

func (e *KillSwitchError) Unwrap() error { return ErrKillSwitchActive }

// ChainIntegrityError pins the first sequence number that failed
// verification. Fatal for anything relying on chain trust.
type ChainIntegrityError struct {
	Seq    uint64
	Detail string
}

func (e *ChainIntegrityError) Error() string {
	return fmt.Sprintf("audit chain integrity violation at seq %d: %s", e.Seq, e.Detail)
}

func (e *ChainIntegrityError) Unwrap() error { return ErrChainIntegrity }

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}

// Unwrap exposes both sides so errors.Is can match either the causer
// sentinel or the root cause.
func (e WrapError) Unwrap() []error {
	out := make([]error, 0, 2)
	if causer, ok := e.Causer.(error); ok {
		out = append(out, causer)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}
