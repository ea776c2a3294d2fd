package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/clearpath-au/go-remit/internal/common"
	"github.com/clearpath-au/go-remit/internal/common/canonicaljson"
	"github.com/clearpath-au/go-remit/internal/common/log"
	"github.com/clearpath-au/go-remit/internal/models"
	"github.com/clearpath-au/go-remit/internal/monitoring"
)

// EvidenceService assembles the justification bundle for a period's release.
// The bundle is a projection: recomputed on request, never stored, and
// byte-identical for identical inputs.
type EvidenceService interface {
	Build(ctx context.Context, abn, taxType, periodID string) (models.EvidenceBundle, error)
}

type evidenceService service

var _ EvidenceService = (*evidenceService)(nil)

func (es *evidenceService) Build(ctx context.Context, abn, taxType, periodID string) (out models.EvidenceBundle, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	period, err := es.srv.sqlRepo.GetLedgerRepository().GetPeriod(ctx, abn, taxType, periodID)
	if err != nil {
		return out, err
	}

	// a period with no settled release still gets a bundle; Settlement stays
	// empty.
	var settlement *models.EvidenceSettlement
	receipt, err := es.srv.sqlRepo.GetReceiptRepository().GetByPeriod(ctx, abn, taxType, periodID)
	switch {
	case err == nil:
		amount := receipt.AmountCents
		if amount < 0 {
			amount = -amount
		}
		settlement = &models.EvidenceSettlement{
			ProviderRef: receipt.ProviderRef,
			AmountCents: amount,
			Channel:     receipt.Channel,
			PaidAt:      receipt.PaidAt,
		}
	case errors.Is(err, common.ErrReceiptNotFound):
	default:
		return out, err
	}

	approvals, err := es.srv.sqlRepo.GetEvidenceRepository().ListApprovals(ctx, abn, taxType, periodID)
	if err != nil {
		return out, err
	}

	manifest, err := es.srv.sqlRepo.GetEvidenceRepository().GetRulesManifest(ctx, es.srv.conf.Release.RulesManifestID)
	if err != nil {
		return out, err
	}

	trail, err := es.auditTrail(ctx, periodID)
	if err != nil {
		return out, err
	}

	ticketVerified, err := es.verifyTicket(ctx, abn, taxType, periodID)
	if err != nil {
		return out, err
	}

	out, err = buildBundle(period, settlement, approvals, manifest.Hash, trail, ticketVerified)
	if err != nil {
		return out, err
	}

	out, err = es.sign(ctx, out)
	if err != nil {
		return out, err
	}

	// record that a bundle was produced. Failure here never invalidates the
	// bundle itself.
	if _, appendErr := es.srv.Audit.Append(ctx, models.AuditCategoryEvidenceBuilt, map[string]interface{}{
		"abn":        abn,
		"taxType":    taxType,
		"periodId":   periodID,
		"bundleHash": out.BundleHash,
	}); appendErr != nil {
		log.Warn(ctx, "[EVIDENCE]", log.String("status", "bundle build left unrecorded"), log.Err(appendErr))
	}

	return out, nil
}

// trailCategories are the chain entries that justify a release. EVIDENCE_BUILT
// is excluded on purpose: including it would make every rebuild change the
// bundle it documents.
var trailCategories = []string{
	models.AuditCategoryReleaseAccepted,
	models.AuditCategoryReleaseRejected,
	models.AuditCategoryReleaseExhausted,
	models.AuditCategoryReleaseBlocked,
	models.AuditCategoryReconLinked,
	models.AuditCategoryReconMismatch,
}

// auditTrail filters the chain down to the entries concerning the period.
// Messages are canonical JSON, so a substring match on the quoted period id is
// deterministic.
func (es *evidenceService) auditTrail(ctx context.Context, periodID string) ([]models.AuditExportRow, error) {
	needle := fmt.Sprintf("%q", periodID)
	entries, err := es.srv.sqlRepo.GetAuditChainRepository().ListMatching(ctx, needle, trailCategories)
	if err != nil {
		return nil, err
	}

	trail := make([]models.AuditExportRow, 0, len(entries))
	for _, entry := range entries {
		trail = append(trail, entry.ToExportRow())
	}

	return trail, nil
}

// verifyTicket checks the externally issued release ticket through the KMS
// port. No ticket means no verification claim at all; a failed verification
// is surfaced in the bundle, never swallowed.
func (es *evidenceService) verifyTicket(ctx context.Context, abn, taxType, periodID string) (*bool, error) {
	ticket, err := es.srv.sqlRepo.GetEvidenceRepository().GetReleaseTicket(ctx, abn, taxType, periodID)
	if err != nil {
		if errors.Is(err, common.ErrDataNotFound) {
			return nil, nil
		}
		return nil, err
	}

	verified, err := es.srv.kmsPort.Verify(ctx, ticket.Payload, ticket.Signature, ticket.KeyID)
	if err != nil {
		return nil, fmt.Errorf("ticket verification failed: %w", err)
	}

	return &verified, nil
}

// sign attaches a detached signature over the bundle hash. Signing failure is
// non-fatal: an unsigned bundle is still a valid projection.
func (es *evidenceService) sign(ctx context.Context, bundle models.EvidenceBundle) (models.EvidenceBundle, error) {
	sig, err := es.srv.kmsPort.Sign(ctx, []byte(bundle.BundleHash), es.srv.conf.Kms.KeyID)
	if err != nil {
		log.Warn(ctx, "[EVIDENCE]", log.String("status", "bundle left unsigned"), log.Err(err))
		return bundle, nil
	}
	bundle.Signature = base64.StdEncoding.EncodeToString(sig)

	return bundle, nil
}

// buildBundle is the pure assembly step: no clock reads, no I/O. Identical
// inputs produce identical bytes.
func buildBundle(
	period *models.LedgerPeriod,
	settlement *models.EvidenceSettlement,
	approvals []models.Approval,
	manifestHash string,
	trail []models.AuditExportRow,
	ticketVerified *bool,
) (models.EvidenceBundle, error) {
	if approvals == nil {
		approvals = []models.Approval{}
	}

	bundle := models.EvidenceBundle{
		PeriodID:           period.PeriodID,
		ABN:                period.ABN,
		TaxType:            period.TaxType,
		BalanceCents:       period.BalanceCents,
		RunningBalanceHash: period.RunningHash,
		RulesManifestHash:  manifestHash,
		Settlement:         settlement,
		Approvals:          approvals,
		AuditTrail:         trail,
		TicketVerified:     ticketVerified,
		Narrative:          narrative(period, settlement, len(approvals), ticketVerified),
	}

	hash, err := canonicaljson.Hash(bundle)
	if err != nil {
		return models.EvidenceBundle{}, err
	}
	bundle.BundleHash = hash

	return bundle, nil
}

func narrative(period *models.LedgerPeriod, settlement *models.EvidenceSettlement, approvalCount int, ticketVerified *bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Release evidence for ABN %s, %s period %s.", period.ABN, period.TaxType, period.PeriodID)
	if settlement != nil {
		fmt.Fprintf(&b, " Settled %d cents via %s under provider reference %s.",
			settlement.AmountCents, settlement.Channel, settlement.ProviderRef)
	} else {
		b.WriteString(" No settlement recorded for this period.")
	}
	fmt.Fprintf(&b, " Remaining period balance: %d cents. Approvals on file: %d.",
		period.BalanceCents, approvalCount)

	switch {
	case ticketVerified == nil:
		b.WriteString(" No release ticket was supplied.")
	case *ticketVerified:
		b.WriteString(" Release ticket signature verified.")
	default:
		b.WriteString(" WARNING: release ticket signature did NOT verify.")
	}

	return b.String()
}
