package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/clearpath-au/go-remit/internal/common"
	"github.com/clearpath-au/go-remit/internal/common/canonicaljson"
	"github.com/clearpath-au/go-remit/internal/common/log"
	"github.com/clearpath-au/go-remit/internal/common/validation"
	"github.com/clearpath-au/go-remit/internal/models"
	"github.com/clearpath-au/go-remit/internal/monitoring"
	"github.com/clearpath-au/go-remit/internal/repositories"
)

// ReleaseService drives a payment release end to end: idempotency claim,
// pre-flight gates, the retried provider submission and the settlement
// bookkeeping that follows. At most one effective release ever happens per
// idempotency key, whatever the callers do.
type ReleaseService interface {
	Release(ctx context.Context, req models.ReleaseRequest) (models.ReleaseOutcome, error)
	GetRelease(ctx context.Context, idempotencyKey string) (models.ReleaseOutcome, error)
}

type releaseService service

var _ ReleaseService = (*releaseService)(nil)

const cacheKeyReleasePrefix = "release:idem:"

func (rs *releaseService) Release(ctx context.Context, req models.ReleaseRequest) (out models.ReleaseOutcome, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	started := time.Now()

	if err = validation.ValidateStruct(req); err != nil {
		return out, err
	}

	// fingerprint over the canonical request body so a reused key with a
	// different payload is caught, not silently replayed.
	body, err := canonicaljson.Marshal(req)
	if err != nil {
		return out, err
	}
	rec := models.NewIdempotencyRecord(req.IdempotencyKey, body)

	if cached, ok := rs.replayFromCache(ctx, req.IdempotencyKey, rec.Fingerprint); ok {
		return cached.outcome, cached.err
	}

	idemRepo := rs.srv.sqlRepo.GetIdempotencyRepository()

	begin, err := idemRepo.Begin(ctx, rec)
	if err != nil {
		// guard store down: fail closed, a duplicate payment is worse than a
		// refused one.
		return out, err
	}

	if !begin.IsNew {
		return rs.replayExisting(ctx, begin.Existing, rec.Fingerprint)
	}

	// this caller owns the execution now. Gates run before anything reaches
	// the provider.
	if gateErr := rs.checkGates(ctx, req); gateErr != nil {
		rs.abandonClaim(ctx, req, gateErr)
		return out, gateErr
	}

	result, submitErr := rs.submitWithRetry(ctx, req)
	switch {
	case submitErr == nil && result.Terminal():
		out, err = rs.recordRejection(ctx, req, result)
	case submitErr == nil:
		out, err = rs.recordAcceptance(ctx, req, result)
	case errors.As(submitErr, new(*common.KillSwitchError)):
		rs.abandonClaim(ctx, req, submitErr)
		return out, submitErr
	default:
		out, err = rs.recordExhaustion(ctx, req, submitErr)
	}

	rs.srv.metrics.GetReleasePrometheus().Record(
		string(req.Rail), string(out.Status), req.AmountCents, req.TaxType, time.Since(started))

	return out, err
}

// GetRelease replays the stored outcome for a key without touching the
// provider.
func (rs *releaseService) GetRelease(ctx context.Context, idempotencyKey string) (out models.ReleaseOutcome, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	rec, err := rs.srv.sqlRepo.GetIdempotencyRepository().Get(ctx, idempotencyKey)
	if err != nil {
		return out, err
	}

	if !rec.Terminal() {
		return out, common.ErrRequestBeingProcessed
	}

	return rs.outcomeFromRecord(rec)
}

type cachedReplay struct {
	outcome models.ReleaseOutcome
	err     error
}

// replayFromCache serves terminal outcomes from redis without a database
// round trip. Anything unexpected in the cache falls through to the
// authoritative store.
func (rs *releaseService) replayFromCache(ctx context.Context, key, fingerprint string) (cachedReplay, bool) {
	raw, err := rs.srv.cacheRepo.Get(ctx, cacheKeyReleasePrefix+key)
	if err != nil {
		if !errors.Is(err, common.ErrDataNotFound) {
			log.Warn(ctx, "[RELEASE.CACHE]", log.String("status", "read failed, falling back to store"), log.Err(err))
		}
		return cachedReplay{}, false
	}

	var rec models.IdempotencyRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil || !rec.Terminal() {
		return cachedReplay{}, false
	}

	if rec.Fingerprint != fingerprint {
		return cachedReplay{err: common.ErrInvalidFingerprint}, true
	}

	outcome, err := rs.outcomeFromRecord(&rec)
	if err != nil {
		return cachedReplay{}, false
	}

	if outcome.Status == models.PayoutStatusRejected {
		return cachedReplay{outcome: outcome, err: common.ErrProviderRejected}, true
	}
	return cachedReplay{outcome: outcome}, true
}

func (rs *releaseService) replayExisting(ctx context.Context, existing *models.IdempotencyRecord, fingerprint string) (models.ReleaseOutcome, error) {
	if existing == nil {
		return models.ReleaseOutcome{}, common.ErrRequestBeingProcessed
	}

	if existing.Fingerprint != fingerprint {
		return models.ReleaseOutcome{}, common.ErrInvalidFingerprint
	}

	if !existing.Terminal() {
		return models.ReleaseOutcome{}, common.ErrRequestBeingProcessed
	}

	outcome, err := rs.outcomeFromRecord(existing)
	if err != nil {
		return outcome, err
	}

	if outcome.Status == models.PayoutStatusRejected {
		return outcome, common.ErrProviderRejected
	}
	return outcome, nil
}

func (rs *releaseService) outcomeFromRecord(rec *models.IdempotencyRecord) (models.ReleaseOutcome, error) {
	var outcome models.ReleaseOutcome
	if err := json.Unmarshal(rec.ResultPayload, &outcome); err != nil {
		return outcome, fmt.Errorf("corrupt stored result for key %s: %w", rec.Key, err)
	}
	outcome.Replayed = true
	return outcome, nil
}

func (rs *releaseService) checkGates(ctx context.Context, req models.ReleaseRequest) error {
	if active, reason := rs.srv.killSwitch.State(ctx); active {
		return &common.KillSwitchError{Reason: reason}
	}

	if err := rs.srv.allowList.Check(req.Rail, req.Destination); err != nil {
		return err
	}

	return nil
}

// submitWithRetry runs the provider call under the backoff budget. The kill
// switch is re-read before every attempt so a switch flipped mid-loop stops
// further submissions.
func (rs *releaseService) submitWithRetry(ctx context.Context, req models.ReleaseRequest) (models.PayoutResult, error) {
	payout := models.PayoutRequest{
		ABN:            req.ABN,
		TaxType:        req.TaxType,
		PeriodID:       req.PeriodID,
		AmountCents:    req.AmountCents,
		Rail:           req.Rail,
		Destination:    req.Destination,
		Reference:      fmt.Sprintf("%s/%s/%s", req.ABN, req.TaxType, req.PeriodID),
		IdempotencyKey: req.IdempotencyKey,
		Metadata:       req.Metadata,
	}

	provider := rs.srv.bankPort.Capabilities().Name

	var result models.PayoutResult
	err := rs.srv.retryer.Retry(ctx, func() error {
		if active, reason := rs.srv.killSwitch.State(ctx); active {
			return rs.srv.retryer.StopRetryWithErr(&common.KillSwitchError{Reason: reason})
		}

		attemptStart := time.Now()
		res, submitErr := rs.srv.bankPort.SubmitPayout(ctx, payout)
		rs.srv.metrics.GetBankPrometheus().Record(
			provider, string(req.Rail), common.IsTransient(submitErr), time.Since(attemptStart))

		if submitErr != nil {
			if common.IsTransient(submitErr) {
				return submitErr
			}
			return rs.srv.retryer.StopRetryWithErr(submitErr)
		}

		result = res
		if res.Terminal() {
			// explicit rejection is final, never resubmitted.
			return rs.srv.retryer.StopRetryWithErr(nil)
		}

		return nil
	})

	return result, err
}

// abandonClaim drops the PENDING row after a pre-flight block so the key can
// be retried once the gate clears. Nothing reached the provider.
func (rs *releaseService) abandonClaim(ctx context.Context, req models.ReleaseRequest, cause error) {
	category := models.AuditCategoryReleaseBlocked
	if _, err := rs.srv.Audit.Append(ctx, category, map[string]interface{}{
		"idempotencyKey": req.IdempotencyKey,
		"abn":            req.ABN,
		"taxType":        req.TaxType,
		"periodId":       req.PeriodID,
		"rail":           req.Rail,
		"reason":         cause.Error(),
	}); err != nil {
		log.Error(ctx, "[RELEASE.AUDIT]", log.String("category", category), log.Err(err))
	}

	if err := rs.srv.sqlRepo.GetIdempotencyRepository().Release(ctx, req.IdempotencyKey); err != nil {
		log.Error(ctx, "[RELEASE.GUARD]",
			log.String("status", "failed to release pending claim"),
			log.String("idempotency_key", req.IdempotencyKey),
			log.Err(err))
	}
}

// recordAcceptance persists the receipt, settles the ledger and appends the
// audit entry in one transaction, then flips the idempotency record.
func (rs *releaseService) recordAcceptance(ctx context.Context, req models.ReleaseRequest, result models.PayoutResult) (models.ReleaseOutcome, error) {
	now := time.Now().UTC()
	outcome := models.ReleaseOutcome{
		Status:      result.Status,
		ProviderRef: result.ProviderRef,
		BankTxnID:   result.BankTxnID,
		ReleasedAt:  now,
	}

	err := rs.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		receipt := models.BankReceipt{
			ProviderRef: result.ProviderRef,
			ABN:         req.ABN,
			TaxType:     req.TaxType,
			PeriodID:    req.PeriodID,
			AmountCents: req.AmountCents,
			Channel:     req.Rail,
			PaidAt:      &now,
		}
		if _, err := r.GetReceiptRepository().Create(ctx, &receipt); err != nil {
			return err
		}

		if _, err := r.GetLedgerRepository().ApplySettlement(ctx,
			req.ABN, req.TaxType, req.PeriodID, req.AmountCents, result.ProviderRef); err != nil {
			return err
		}

		_, err := rs.srv.Audit.appendInTx(ctx, r, models.AuditCategoryReleaseAccepted, map[string]interface{}{
			"idempotencyKey": req.IdempotencyKey,
			"abn":            req.ABN,
			"taxType":        req.TaxType,
			"periodId":       req.PeriodID,
			"amountCents":    req.AmountCents,
			"rail":           req.Rail,
			"providerRef":    result.ProviderRef,
			"status":         result.Status,
		})
		return err
	})
	if err != nil {
		return models.ReleaseOutcome{}, err
	}

	return outcome, rs.finishClaim(ctx, req.IdempotencyKey, outcome, models.IdempotencyStatusCompleted)
}

func (rs *releaseService) recordRejection(ctx context.Context, req models.ReleaseRequest, result models.PayoutResult) (models.ReleaseOutcome, error) {
	outcome := models.ReleaseOutcome{
		Status:      result.Status,
		ProviderRef: result.ProviderRef,
		ReleasedAt:  time.Now().UTC(),
	}

	if _, err := rs.srv.Audit.Append(ctx, models.AuditCategoryReleaseRejected, map[string]interface{}{
		"idempotencyKey": req.IdempotencyKey,
		"abn":            req.ABN,
		"taxType":        req.TaxType,
		"periodId":       req.PeriodID,
		"rail":           req.Rail,
		"providerCode":   result.ProviderCode,
	}); err != nil {
		return models.ReleaseOutcome{}, err
	}

	if err := rs.finishClaim(ctx, req.IdempotencyKey, outcome, models.IdempotencyStatusFailed); err != nil {
		return models.ReleaseOutcome{}, err
	}

	return outcome, common.ErrProviderRejected
}

// recordExhaustion dead-letters the payload and surfaces the original
// provider error. A DLQ write failure is logged and joined but never masks
// what actually went wrong at the rail.
func (rs *releaseService) recordExhaustion(ctx context.Context, req models.ReleaseRequest, cause error) (models.ReleaseOutcome, error) {
	provider := rs.srv.bankPort.Capabilities().Name

	entry := models.DeadLetterEntry{
		Provider: provider,
		Request: models.PayoutRequest{
			ABN:            req.ABN,
			TaxType:        req.TaxType,
			PeriodID:       req.PeriodID,
			AmountCents:    req.AmountCents,
			Rail:           req.Rail,
			Destination:    req.Destination,
			IdempotencyKey: req.IdempotencyKey,
			Metadata:       req.Metadata,
		},
		CauseErr: cause,
	}

	releaseErr := fmt.Errorf("%w: %w", common.ErrRetryExhausted, cause)
	if _, dlqErr := rs.srv.dlqStore.Push(ctx, entry); dlqErr != nil {
		log.Error(ctx, "[RELEASE.DLQ]",
			log.String("status", "push failed, original error still propagates"),
			log.String("idempotency_key", req.IdempotencyKey),
			log.Err(dlqErr))
		releaseErr = errors.Join(releaseErr, dlqErr)
	} else {
		rs.srv.metrics.GetDLQPrometheus().RecordPush(provider)
	}

	if _, err := rs.srv.Audit.Append(ctx, models.AuditCategoryReleaseExhausted, map[string]interface{}{
		"idempotencyKey": req.IdempotencyKey,
		"abn":            req.ABN,
		"taxType":        req.TaxType,
		"periodId":       req.PeriodID,
		"rail":           req.Rail,
		"error":          cause.Error(),
	}); err != nil {
		log.Error(ctx, "[RELEASE.AUDIT]", log.String("category", models.AuditCategoryReleaseExhausted), log.Err(err))
	}

	// the key stays FAILED: an attempt may have landed at the rail even
	// though we never saw the response, so replays must not resubmit.
	outcome := models.ReleaseOutcome{
		Status:     models.PayoutStatusRejected,
		ReleasedAt: time.Now().UTC(),
	}
	if err := rs.finishClaim(ctx, req.IdempotencyKey, outcome, models.IdempotencyStatusFailed); err != nil {
		log.Error(ctx, "[RELEASE.GUARD]",
			log.String("status", "failed to mark claim failed"),
			log.String("idempotency_key", req.IdempotencyKey),
			log.Err(err))
	}

	return models.ReleaseOutcome{}, releaseErr
}

// finishClaim stores the serialized outcome on the idempotency record and
// mirrors the terminal record into redis for replay reads.
func (rs *releaseService) finishClaim(ctx context.Context, key string, outcome models.ReleaseOutcome, status string) error {
	payload, err := outcome.Marshal()
	if err != nil {
		return err
	}

	idemRepo := rs.srv.sqlRepo.GetIdempotencyRepository()
	if status == models.IdempotencyStatusCompleted {
		err = idemRepo.Complete(ctx, key, payload)
	} else {
		err = idemRepo.Fail(ctx, key, payload)
	}
	if err != nil {
		return err
	}

	rec, err := idemRepo.Get(ctx, key)
	if err != nil {
		log.Warn(ctx, "[RELEASE.CACHE]", log.String("status", "skip cache fill"), log.Err(err))
		return nil
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return nil
	}

	ttl := rs.srv.conf.Release.IdempotencyTTL
	if ttl <= 0 {
		ttl = models.TTLIdempotency
	}
	if err := rs.srv.cacheRepo.Set(ctx, cacheKeyReleasePrefix+key, raw, ttl); err != nil {
		log.Warn(ctx, "[RELEASE.CACHE]", log.String("status", "cache fill failed"), log.Err(err))
	}

	return nil
}
