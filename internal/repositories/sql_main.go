package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/clearpath-au/go-remit/internal/common/log"
	"github.com/clearpath-au/go-remit/internal/config"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	idr *idempotencyRepository
	acr *auditChainRepository
	rcr *receiptRepository
	rr  *reconciliationRepository
	lr  *ledgerRepository
	evr *evidenceRepository
}

func NewSQLRepository(
	dbWrite *sql.DB,
	dbRead *sql.DB,
	cfg config.Config,
) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.idr = (*idempotencyRepository)(&rtx.common)
	rtx.acr = (*auditChainRepository)(&rtx.common)
	rtx.rcr = (*receiptRepository)(&rtx.common)
	rtx.rr = (*reconciliationRepository)(&rtx.common)
	rtx.lr = (*ledgerRepository)(&rtx.common)
	rtx.evr = (*evidenceRepository)(&rtx.common)

	return rtx
}

type SQLRepository interface {
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetIdempotencyRepository() IdempotencyRepository
	GetAuditChainRepository() AuditChainRepository
	GetReceiptRepository() ReceiptRepository
	GetReconciliationRepository() ReconciliationRepository
	GetLedgerRepository() LedgerRepository
	GetEvidenceRepository() EvidenceRepository
}

var _ SQLRepository = (*Repository)(nil)

func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	log.Info(ctx, "[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			log.Panic(ctx, "[DATABASE.TRANSACTION.PANIC]", log.Err(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
			}
			log.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", log.Err(err))
		} else {
			if err = tx.Commit(); err != nil {
				if errors.Is(err, sql.ErrTxDone) {
					log.Warn(ctx, "[DATABASE.TRANSACTION.ALREADY_COMMITTED_OR_ROLLEDBACK]", log.Err(err))
					err = nil
				}
			}

			log.Info(ctx, "[DATABASE.TRANSACTION.COMMIT]")
		}
	}()
	ctx = bindTx(ctx, tx)
	err = steps(ctx, r)
	return
}

func (r *Repository) GetIdempotencyRepository() IdempotencyRepository {
	return r.idr
}

func (r *Repository) GetAuditChainRepository() AuditChainRepository {
	return r.acr
}

func (r *Repository) GetReceiptRepository() ReceiptRepository {
	return r.rcr
}

func (r *Repository) GetReconciliationRepository() ReconciliationRepository {
	return r.rr
}

func (r *Repository) GetLedgerRepository() LedgerRepository {
	return r.lr
}

func (r *Repository) GetEvidenceRepository() EvidenceRepository {
	return r.evr
}

func (r *Repository) SubstitutePlaceholder(data string, startInt int) (res string) {
	placeholderCount := strings.Count(data, "?")
	res = data
	for i := startInt; i < startInt+placeholderCount; i++ {
		res = strings.Replace(res, "?", "$"+strconv.Itoa(i), 1)
	}
	return res
}
