package models

import (
	"errors"
	"fmt"

	"github.com/clearpath-au/go-remit/internal/common"
)

type (
	MapErrs     map[string]ErrorDetail
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

// Unwrap lets errors.Is see through to the sentinel behind the code.
func (e ErrorDetail) Unwrap() error {
	return e.ErrorMessage
}

// Machine-readable error codes surfaced at the API boundary.
const (
	CodeValidation            = "VALIDATION_FAILED"
	CodeMissingIdempotencyKey = "IDEMPOTENCY_KEY_MISSING"
	CodeDuplicateRequest      = "DUPLICATE_REQUEST"
	CodeConcurrentInFlight    = "CONCURRENT_IN_FLIGHT"
	CodeKillSwitchActive      = "KILL_SWITCH_ACTIVE"
	CodeDestinationDenied     = "DESTINATION_NOT_ALLOWED"
	CodeProviderRejected      = "PROVIDER_REJECTED"
	CodeRetryExhausted        = "RETRY_EXHAUSTED"
	CodeChainIntegrity        = "CHAIN_INTEGRITY_ERROR"
	CodeReconMismatch         = "RECONCILIATION_MISMATCH"
	CodeIdempotencyDown       = "IDEMPOTENCY_STORE_UNAVAILABLE"
)

// MapErrors binds each wire code to its sentinel so handlers surface the
// code without losing errors.Is matching on the way out.
var MapErrors = MapErrs{
	CodeValidation:            {Code: CodeValidation, ErrorMessage: common.ErrValidation},
	CodeMissingIdempotencyKey: {Code: CodeMissingIdempotencyKey, ErrorMessage: common.ErrMissingIdempotencyKey},
	CodeDuplicateRequest:      {Code: CodeDuplicateRequest, ErrorMessage: common.ErrInvalidFingerprint},
	CodeConcurrentInFlight:    {Code: CodeConcurrentInFlight, ErrorMessage: common.ErrRequestBeingProcessed},
	CodeKillSwitchActive:      {Code: CodeKillSwitchActive, ErrorMessage: common.ErrKillSwitchActive},
	CodeDestinationDenied:     {Code: CodeDestinationDenied, ErrorMessage: common.ErrDestinationNotAllowed},
	CodeProviderRejected:      {Code: CodeProviderRejected, ErrorMessage: common.ErrProviderRejected},
	CodeRetryExhausted:        {Code: CodeRetryExhausted, ErrorMessage: common.ErrRetryExhausted},
	CodeChainIntegrity:        {Code: CodeChainIntegrity, ErrorMessage: common.ErrChainIntegrity},
	CodeReconMismatch:         {Code: CodeReconMismatch, ErrorMessage: common.ErrReconMismatch},
	CodeIdempotencyDown:       {Code: CodeIdempotencyDown, ErrorMessage: common.ErrIdempotencyUnavailable},
}

func GetErrMap(code string, args ...string) ErrorDetail {
	v, ok := MapErrors[code]
	if !ok {
		return ErrorDetail{
			Code:         code,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(args) > 0 {
		v.ErrorMessage = fmt.Errorf("%w caused by %s", v.ErrorMessage, args[0])
	}

	return v
}
