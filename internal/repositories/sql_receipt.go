package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/clearpath-au/go-remit/internal/common"
	"github.com/clearpath-au/go-remit/internal/models"
	"github.com/clearpath-au/go-remit/internal/monitoring"
)

type ReceiptRepository interface {
	Create(ctx context.Context, receipt *models.BankReceipt) (models.BankReceipt, error)
	GetByProviderRef(ctx context.Context, providerRef string) (*models.BankReceipt, error)
	GetByPeriod(ctx context.Context, abn, taxType, periodID string) (*models.BankReceipt, error)
}

type receiptRepository sqlRepo

var _ ReceiptRepository = (*receiptRepository)(nil)

func (rr *receiptRepository) Create(ctx context.Context, receipt *models.BankReceipt) (out models.BankReceipt, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rr.r.txOrWrite(ctx)

	out = *receipt
	err = db.QueryRowContext(ctx, createReceiptQuery,
		receipt.ProviderRef,
		receipt.ABN,
		receipt.TaxType,
		receipt.PeriodID,
		receipt.AmountCents,
		receipt.Channel,
		receipt.PaidAt,
		receipt.DryRun,
		receipt.ShadowOnly,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return models.BankReceipt{}, err
	}

	return out, nil
}

func (rr *receiptRepository) GetByProviderRef(ctx context.Context, providerRef string) (out *models.BankReceipt, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return rr.get(ctx, getReceiptByProviderRefQuery, providerRef)
}

func (rr *receiptRepository) GetByPeriod(ctx context.Context, abn, taxType, periodID string) (out *models.BankReceipt, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return rr.get(ctx, getReceiptByPeriodQuery, abn, taxType, periodID)
}

func (rr *receiptRepository) get(ctx context.Context, query string, args ...interface{}) (*models.BankReceipt, error) {
	db := rr.r.txOrRead(ctx)

	receipt := models.BankReceipt{}
	err := db.QueryRowContext(ctx, query, args...).Scan(
		&receipt.ID,
		&receipt.ProviderRef,
		&receipt.ABN,
		&receipt.TaxType,
		&receipt.PeriodID,
		&receipt.AmountCents,
		&receipt.Channel,
		&receipt.PaidAt,
		&receipt.DryRun,
		&receipt.ShadowOnly,
		&receipt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrReceiptNotFound
		}
		return nil, err
	}

	return &receipt, nil
}
