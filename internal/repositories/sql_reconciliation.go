package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/clearpath-au/go-remit/internal/models"
	"github.com/clearpath-au/go-remit/internal/monitoring"
)

type ReconciliationRepository interface {
	CreateRecord(ctx context.Context, rec *models.ReconciliationRecord) (models.ReconciliationRecord, error)
	// SaveUnmatched upserts a retained line, bumping the attempt counter when
	// the line was already parked.
	SaveUnmatched(ctx context.Context, provider string, line models.StatementLine) error
	ListUnmatched(ctx context.Context, opts models.UnmatchedFilterOptions) ([]models.UnmatchedLine, error)
	DeleteUnmatched(ctx context.Context, providerRef string) error
	// ExpireUnmatched marks lines older than the retention window so they stop
	// being retried and show up for manual review.
	ExpireUnmatched(ctx context.Context, olderThan time.Time) (int64, error)
}

type reconciliationRepository sqlRepo

var _ ReconciliationRepository = (*reconciliationRepository)(nil)

func (rr *reconciliationRepository) CreateRecord(ctx context.Context, rec *models.ReconciliationRecord) (out models.ReconciliationRecord, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rr.r.txOrWrite(ctx)

	out = *rec
	err = db.QueryRowContext(ctx, createReconRecordQuery,
		rec.ProviderRef,
		rec.PostedAmountCents,
		rec.PaidAt,
		sql.NullString{String: rec.LinkedPeriodID, Valid: rec.LinkedPeriodID != ""},
		rec.Status,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return models.ReconciliationRecord{}, err
	}

	return out, nil
}

func (rr *reconciliationRepository) SaveUnmatched(ctx context.Context, provider string, line models.StatementLine) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rr.r.txOrWrite(ctx)

	_, err = db.ExecContext(ctx, saveUnmatchedQuery,
		provider,
		line.ProviderRef,
		line.BankTxnID,
		line.AmountCents,
		line.PostedAt,
		line.Reference,
		line.ProviderCode,
		line.Currency,
	)
	return err
}

func (rr *reconciliationRepository) ListUnmatched(ctx context.Context, opts models.UnmatchedFilterOptions) (out []models.UnmatchedLine, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rr.r.txOrRead(ctx)

	query, args, err := buildListUnmatchedQuery(opts)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		um := models.UnmatchedLine{}
		err = rows.Scan(
			&um.ID,
			&um.Provider,
			&um.Line.ProviderRef,
			&um.Line.BankTxnID,
			&um.Line.AmountCents,
			&um.Line.PostedAt,
			&um.Line.Reference,
			&um.Line.ProviderCode,
			&um.Line.Currency,
			&um.Attempts,
			&um.FirstSeenAt,
			&um.LastTriedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, um)
	}

	return out, rows.Err()
}

func (rr *reconciliationRepository) DeleteUnmatched(ctx context.Context, providerRef string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rr.r.txOrWrite(ctx)
	_, err = db.ExecContext(ctx, deleteUnmatchedQuery, providerRef)
	return err
}

func (rr *reconciliationRepository) ExpireUnmatched(ctx context.Context, olderThan time.Time) (affected int64, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rr.r.txOrWrite(ctx)

	res, err := db.ExecContext(ctx, expireUnmatchedQuery, olderThan)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
