package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/clearpath-au/go-remit/internal/common"
	"github.com/clearpath-au/go-remit/internal/models"
	"github.com/clearpath-au/go-remit/internal/monitoring"
)

// EvidenceRepository reads the supporting documents of a period: approvals,
// the rules manifest in effect and the signed release ticket. All read-only;
// these rows are written by the upstream approval workflow.
type EvidenceRepository interface {
	ListApprovals(ctx context.Context, abn, taxType, periodID string) ([]models.Approval, error)
	GetRulesManifest(ctx context.Context, manifestID string) (*models.RulesManifest, error)
	GetReleaseTicket(ctx context.Context, abn, taxType, periodID string) (*models.ReleaseTicket, error)
}

type evidenceRepository sqlRepo

var _ EvidenceRepository = (*evidenceRepository)(nil)

func (er *evidenceRepository) ListApprovals(ctx context.Context, abn, taxType, periodID string) (out []models.Approval, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := er.r.txOrRead(ctx)

	rows, err := db.QueryContext(ctx, listApprovalsQuery, abn, taxType, periodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		a := models.Approval{}
		var ticketRef sql.NullString
		err = rows.Scan(&a.Approver, &a.Role, &a.ApprovedAt, &ticketRef)
		if err != nil {
			return nil, err
		}
		a.TicketRef = ticketRef.String
		out = append(out, a)
	}

	return out, rows.Err()
}

func (er *evidenceRepository) GetRulesManifest(ctx context.Context, manifestID string) (out *models.RulesManifest, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := er.r.txOrRead(ctx)

	manifest := models.RulesManifest{}
	err = db.QueryRowContext(ctx, getRulesManifestQuery, manifestID).Scan(&manifest.ID, &manifest.Hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	return &manifest, nil
}

func (er *evidenceRepository) GetReleaseTicket(ctx context.Context, abn, taxType, periodID string) (out *models.ReleaseTicket, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := er.r.txOrRead(ctx)

	ticket := models.ReleaseTicket{}
	var keyID sql.NullString
	err = db.QueryRowContext(ctx, getReleaseTicketQuery, abn, taxType, periodID).Scan(
		&ticket.Payload,
		&ticket.Signature,
		&keyID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}
	ticket.KeyID = keyID.String

	return &ticket, nil
}
