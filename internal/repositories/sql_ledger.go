package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/clearpath-au/go-remit/internal/common"
	"github.com/clearpath-au/go-remit/internal/models"
	"github.com/clearpath-au/go-remit/internal/monitoring"
)

type LedgerRepository interface {
	GetPeriod(ctx context.Context, abn, taxType, periodID string) (*models.LedgerPeriod, error)
	// ApplySettlement reduces the period balance by the released amount and
	// extends the running hash. Caller runs it inside Atomic together with
	// the reconciliation record.
	ApplySettlement(ctx context.Context, abn, taxType, periodID string, amountCents int64, providerRef string) (*models.LedgerPeriod, error)
	UpsertPeriod(ctx context.Context, period *models.LedgerPeriod) error
}

type ledgerRepository sqlRepo

var _ LedgerRepository = (*ledgerRepository)(nil)

func (lr *ledgerRepository) GetPeriod(ctx context.Context, abn, taxType, periodID string) (out *models.LedgerPeriod, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return lr.get(ctx, lr.r.txOrRead(ctx), abn, taxType, periodID, getLedgerPeriodQuery)
}

func (lr *ledgerRepository) get(ctx context.Context, db dbRunner, abn, taxType, periodID, query string) (*models.LedgerPeriod, error) {
	period := models.LedgerPeriod{}

	err := db.QueryRowContext(ctx, query, abn, taxType, periodID).Scan(
		&period.ABN,
		&period.TaxType,
		&period.PeriodID,
		&period.BalanceCents,
		&period.RunningHash,
		&period.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrLedgerPeriodGone
		}
		return nil, err
	}

	return &period, nil
}

func (lr *ledgerRepository) ApplySettlement(ctx context.Context, abn, taxType, periodID string, amountCents int64, providerRef string) (out *models.LedgerPeriod, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := lr.r.txOrWrite(ctx)

	// lock the period row; settlement and hash extension must be atomic.
	period, err := lr.get(ctx, db, abn, taxType, periodID, lockLedgerPeriodQuery)
	if err != nil {
		return nil, err
	}

	if amountCents < 0 {
		amountCents = -amountCents
	}

	newBalance := period.BalanceCents - amountCents
	newHash := models.ChainHash(period.RunningHash,
		fmt.Sprintf("%s|%s|%s|%d|%s", abn, taxType, periodID, amountCents, providerRef))

	err = db.QueryRowContext(ctx, settleLedgerPeriodQuery,
		newBalance,
		newHash,
		abn,
		taxType,
		periodID,
	).Scan(&period.UpdatedAt)
	if err != nil {
		return nil, err
	}

	period.BalanceCents = newBalance
	period.RunningHash = newHash
	return period, nil
}

func (lr *ledgerRepository) UpsertPeriod(ctx context.Context, period *models.LedgerPeriod) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := lr.r.txOrWrite(ctx)

	_, err = db.ExecContext(ctx, upsertLedgerPeriodQuery,
		period.ABN,
		period.TaxType,
		period.PeriodID,
		period.BalanceCents,
		period.RunningHash,
	)
	return err
}
