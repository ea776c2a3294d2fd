package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clearpath-au/go-remit/internal/common"
	"github.com/clearpath-au/go-remit/internal/common/log"
	"github.com/clearpath-au/go-remit/internal/common/validation"
	"github.com/clearpath-au/go-remit/internal/models"
	"github.com/clearpath-au/go-remit/internal/monitoring"
	"github.com/clearpath-au/go-remit/internal/repositories"
)

// ReconciliationService links bank-reported statement lines back to the
// releases that caused them. Matching is exact on provider_ref; amounts are
// cross-checked, never corrected.
type ReconciliationService interface {
	Ingest(ctx context.Context, batch models.BankStatementBatch) (models.IngestSummary, error)
	// ListUnmatched returns retained lines still within their attempt budget,
	// optionally narrowed to one provider.
	ListUnmatched(ctx context.Context, provider string) ([]models.UnmatchedLine, error)
}

type reconService service

var _ ReconciliationService = (*reconService)(nil)

func (rc *reconService) Ingest(ctx context.Context, batch models.BankStatementBatch) (out models.IngestSummary, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if err = validation.ValidateStruct(batch); err != nil {
		return out, err
	}

	out.Provider = batch.Provider
	out.Received = len(batch.Entries)

	rc.expireStale(ctx)

	// retained lines from earlier batches get another attempt first; their
	// receipt may have landed since.
	retained, err := rc.retainedLines(ctx)
	if err != nil {
		return out, err
	}

	for _, um := range retained {
		res := rc.matchLine(ctx, um.Provider, um.Line, true)
		if res.Status != models.StatementLineStatusUnmatched {
			out.Results = append(out.Results, res)
			rc.count(&out, res.Status)
		}
	}

	for _, line := range batch.Entries {
		res := rc.matchLine(ctx, batch.Provider, line, false)
		out.Results = append(out.Results, res)
		rc.count(&out, res.Status)
	}

	return out, nil
}

func (rc *reconService) ListUnmatched(ctx context.Context, provider string) (out []models.UnmatchedLine, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	opts := models.UnmatchedFilterOptions{
		Provider:    provider,
		MaxAttempts: rc.maxAttempts(),
	}

	return rc.srv.sqlRepo.GetReconciliationRepository().ListUnmatched(ctx, opts)
}

func (rc *reconService) count(out *models.IngestSummary, status string) {
	switch status {
	case models.StatementLineStatusLinked:
		out.Linked++
	case models.StatementLineStatusMismatch:
		out.Mismatch++
	case models.StatementLineStatusUnmatched:
		out.Unmatched++
	}
	rc.srv.metrics.GetReconPrometheus().RecordLine(status)
}

// matchLine resolves one statement line. retained marks a line that was
// parked by an earlier batch.
func (rc *reconService) matchLine(ctx context.Context, provider string, line models.StatementLine, retained bool) models.LinkedRecord {
	receipt, err := rc.srv.sqlRepo.GetReceiptRepository().GetByProviderRef(ctx, line.ProviderRef)
	if err != nil {
		if errors.Is(err, common.ErrReceiptNotFound) {
			// the release's provider_ref may simply not be durable yet; park
			// the line and try again next batch.
			if saveErr := rc.srv.sqlRepo.GetReconciliationRepository().SaveUnmatched(ctx, provider, line); saveErr != nil {
				log.Error(ctx, "[RECON]", log.String("status", "failed to retain unmatched line"),
					log.String("provider_ref", line.ProviderRef), log.Err(saveErr))
			}
			return models.LinkedRecord{ProviderRef: line.ProviderRef, Status: models.StatementLineStatusUnmatched}
		}

		log.Error(ctx, "[RECON]", log.String("status", "receipt lookup failed"),
			log.String("provider_ref", line.ProviderRef), log.Err(err))
		return models.LinkedRecord{ProviderRef: line.ProviderRef, Status: models.StatementLineStatusUnmatched, Detail: err.Error()}
	}

	if !rc.amountsMatch(line.AmountCents, receipt.AmountCents) {
		return rc.flagMismatch(ctx, line, receipt)
	}

	return rc.link(ctx, line, receipt, retained)
}

// amountsMatch compares magnitudes: releases are stored signed negative,
// statements report positive outflows.
func (rc *reconService) amountsMatch(postedCents, releaseCents int64) bool {
	posted := decimal.NewFromInt(postedCents).Abs()
	released := decimal.NewFromInt(releaseCents).Abs()
	tolerance := decimal.NewFromInt(rc.srv.conf.Reconciliation.AmountToleranceCents)

	return posted.Sub(released).Abs().Cmp(tolerance) <= 0
}

func (rc *reconService) link(ctx context.Context, line models.StatementLine, receipt *models.BankReceipt, retained bool) models.LinkedRecord {
	err := rc.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		rec := models.ReconciliationRecord{
			ProviderRef:       line.ProviderRef,
			PostedAmountCents: line.AmountCents,
			PaidAt:            line.PostedAt,
			LinkedPeriodID:    receipt.PeriodID,
			Status:            models.StatementLineStatusLinked,
		}
		if _, err := r.GetReconciliationRepository().CreateRecord(ctx, &rec); err != nil {
			return err
		}

		if retained {
			if err := r.GetReconciliationRepository().DeleteUnmatched(ctx, line.ProviderRef); err != nil {
				return err
			}
		}

		_, err := rc.srv.Audit.appendInTx(ctx, r, models.AuditCategoryReconLinked, map[string]interface{}{
			"providerRef":       line.ProviderRef,
			"periodId":          receipt.PeriodID,
			"postedAmountCents": line.AmountCents,
			"bankTxnId":         line.BankTxnID,
		})
		return err
	})
	if err != nil {
		log.Error(ctx, "[RECON]", log.String("status", "link failed"),
			log.String("provider_ref", line.ProviderRef), log.Err(err))
		return models.LinkedRecord{ProviderRef: line.ProviderRef, Status: models.StatementLineStatusUnmatched, Detail: err.Error()}
	}

	if receipt.PaidAt != nil {
		rc.srv.metrics.GetReconPrometheus().RecordLinkAge(line.PostedAt.Sub(*receipt.PaidAt).Seconds())
	}

	return models.LinkedRecord{
		ProviderRef: line.ProviderRef,
		PeriodID:    receipt.PeriodID,
		Status:      models.StatementLineStatusLinked,
	}
}

// flagMismatch records the discrepancy for manual review. The line is
// deliberately NOT linked and NOT retained; auto-correcting amounts is how
// reconciliation systems hide fraud.
func (rc *reconService) flagMismatch(ctx context.Context, line models.StatementLine, receipt *models.BankReceipt) models.LinkedRecord {
	err := rc.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		rec := models.ReconciliationRecord{
			ProviderRef:       line.ProviderRef,
			PostedAmountCents: line.AmountCents,
			PaidAt:            line.PostedAt,
			Status:            models.StatementLineStatusMismatch,
		}
		if _, err := r.GetReconciliationRepository().CreateRecord(ctx, &rec); err != nil {
			return err
		}

		_, err := rc.srv.Audit.appendInTx(ctx, r, models.AuditCategoryReconMismatch, map[string]interface{}{
			"code":               models.GetErrMap(models.CodeReconMismatch).Code,
			"providerRef":        line.ProviderRef,
			"periodId":           receipt.PeriodID,
			"postedAmountCents":  line.AmountCents,
			"releaseAmountCents": receipt.AmountCents,
		})
		return err
	})
	if err != nil {
		log.Error(ctx, "[RECON]", log.String("status", "mismatch flagging failed"),
			log.String("provider_ref", line.ProviderRef), log.Err(err))
	}

	return models.LinkedRecord{
		ProviderRef: line.ProviderRef,
		Status:      models.StatementLineStatusMismatch,
		Detail:      common.ErrReconMismatch.Error(),
	}
}

func (rc *reconService) retainedLines(ctx context.Context) ([]models.UnmatchedLine, error) {
	opts := models.UnmatchedFilterOptions{MaxAttempts: rc.maxAttempts()}
	return rc.srv.sqlRepo.GetReconciliationRepository().ListUnmatched(ctx, opts)
}

func (rc *reconService) expireStale(ctx context.Context) {
	days := rc.srv.conf.Reconciliation.UnmatchedRetentionDays
	if days <= 0 {
		return
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	expired, err := rc.srv.sqlRepo.GetReconciliationRepository().ExpireUnmatched(ctx, cutoff)
	if err != nil {
		log.Error(ctx, "[RECON]", log.String("status", "expiry sweep failed"), log.Err(err))
		return
	}
	if expired > 0 {
		log.Info(ctx, "[RECON]", log.String("status", "expired unmatched lines"), log.Int64("count", expired))
	}
}

func (rc *reconService) maxAttempts() int {
	if rc.srv.conf.Reconciliation.MaxMatchAttempts > 0 {
		return rc.srv.conf.Reconciliation.MaxMatchAttempts
	}
	return 5
}
