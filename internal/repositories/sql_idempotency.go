package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/clearpath-au/go-remit/internal/common"
	"github.com/clearpath-au/go-remit/internal/models"
	"github.com/clearpath-au/go-remit/internal/monitoring"
)

// IdempotencyRepository is the authoritative store behind the release guard.
// The UNIQUE constraint on the key column is what actually enforces
// at-most-one execution; everything above it is convenience.
type IdempotencyRepository interface {
	// Begin claims the key. IsNew is true when this caller inserted the
	// PENDING row; otherwise the stored record comes back untouched.
	Begin(ctx context.Context, rec *models.IdempotencyRecord) (models.BeginResult, error)
	Complete(ctx context.Context, key string, resultPayload []byte) error
	Fail(ctx context.Context, key string, resultPayload []byte) error
	Get(ctx context.Context, key string) (*models.IdempotencyRecord, error)
	// Release drops a PENDING row so the key can be retried. Only used when
	// the failure was transient and nothing was submitted to the provider.
	Release(ctx context.Context, key string) error
}

type idempotencyRepository sqlRepo

var _ IdempotencyRepository = (*idempotencyRepository)(nil)

func (ir *idempotencyRepository) Begin(ctx context.Context, rec *models.IdempotencyRecord) (out models.BeginResult, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ir.r.txOrWrite(ctx)

	res, err := db.ExecContext(ctx, insertIdempotencyQuery, rec.Key, rec.Status, rec.Fingerprint)
	if err != nil {
		return out, common.WrapError{Causer: common.ErrIdempotencyUnavailable, Err: err}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return out, common.WrapError{Causer: common.ErrIdempotencyUnavailable, Err: err}
	}

	if affected == 1 {
		out.IsNew = true
		return out, nil
	}

	existing, err := ir.get(ctx, db, rec.Key)
	if err != nil {
		return out, err
	}

	out.Existing = existing
	return out, nil
}

func (ir *idempotencyRepository) Complete(ctx context.Context, key string, resultPayload []byte) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return ir.finish(ctx, key, models.IdempotencyStatusCompleted, resultPayload)
}

func (ir *idempotencyRepository) Fail(ctx context.Context, key string, resultPayload []byte) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return ir.finish(ctx, key, models.IdempotencyStatusFailed, resultPayload)
}

func (ir *idempotencyRepository) finish(ctx context.Context, key, status string, resultPayload []byte) error {
	db := ir.r.txOrWrite(ctx)

	res, err := db.ExecContext(ctx, finishIdempotencyQuery, status, resultPayload, key)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// the row is gone or already terminal, which means two executions
		// raced past the guard. This must never happen.
		return common.ErrNoRowsAffected
	}

	return nil
}

func (ir *idempotencyRepository) Get(ctx context.Context, key string) (out *models.IdempotencyRecord, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return ir.get(ctx, ir.r.txOrRead(ctx), key)
}

func (ir *idempotencyRepository) get(ctx context.Context, db dbRunner, key string) (*models.IdempotencyRecord, error) {
	rec := models.IdempotencyRecord{}

	err := db.QueryRowContext(ctx, getIdempotencyQuery, key).Scan(
		&rec.Key,
		&rec.Status,
		&rec.Fingerprint,
		&rec.ResultPayload,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrDataNotFound
		}
		return nil, common.WrapError{Causer: common.ErrIdempotencyUnavailable, Err: err}
	}

	return &rec, nil
}

func (ir *idempotencyRepository) Release(ctx context.Context, key string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ir.r.txOrWrite(ctx)
	_, err = db.ExecContext(ctx, releaseIdempotencyQuery, key)
	return err
}
