package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/clearpath-au/go-remit/internal/common"
	"github.com/clearpath-au/go-remit/internal/models"
	"github.com/clearpath-au/go-remit/internal/monitoring"
)

// AuditChainRepository owns the append-only hash chain. Append serializes on
// a transaction-scoped advisory lock so sequence numbers and hash links can
// never interleave, even across processes. Append must run inside Atomic; the
// lock is released when that transaction commits or rolls back.
type AuditChainRepository interface {
	Append(ctx context.Context, category, message string) (models.AppendReceipt, error)
	Tail(ctx context.Context) (*models.AuditLogEntry, error)
	ListAll(ctx context.Context) ([]models.AuditLogEntry, error)
	ListRange(ctx context.Context, fromSeq, toSeq uint64) ([]models.AuditLogEntry, error)
	// ListMatching returns entries of the given categories whose message
	// contains the substring. Messages are canonical JSON, so matching on a
	// quoted value is deterministic.
	ListMatching(ctx context.Context, contains string, categories []string) ([]models.AuditLogEntry, error)
}

type auditChainRepository sqlRepo

// auditChainLockKey is the advisory lock key every appender takes before
// reading the tail. One chain, one key.
const auditChainLockKey int64 = 0x617564697443686e

var _ AuditChainRepository = (*auditChainRepository)(nil)

func (ar *auditChainRepository) Append(ctx context.Context, category, message string) (out models.AppendReceipt, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ar.r.txOrWrite(ctx)

	// take the chain lock before reading the tail so concurrent appends
	// queue up and each one re-reads the freshly committed tail.
	if _, err = db.ExecContext(ctx, lockAuditChainQuery, auditChainLockKey); err != nil {
		return out, err
	}

	// a missing row means genesis.
	var hashPrev string
	err = db.QueryRowContext(ctx, getAuditTailHashQuery).Scan(&hashPrev)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return out, err
	}

	hashThis := models.ChainHash(hashPrev, message)

	var seq uint64
	err = db.QueryRowContext(ctx, insertAuditEntryQuery,
		category,
		message,
		sql.NullString{String: hashPrev, Valid: hashPrev != ""},
		hashThis,
	).Scan(&seq)
	if err != nil {
		return out, err
	}

	return models.AppendReceipt{
		Seq:      seq,
		HashPrev: hashPrev,
		HashThis: hashThis,
	}, nil
}

func (ar *auditChainRepository) Tail(ctx context.Context) (out *models.AuditLogEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ar.r.txOrRead(ctx)

	entry := models.AuditLogEntry{}
	err = db.QueryRowContext(ctx, getAuditTailQuery).Scan(
		&entry.Seq,
		&entry.Category,
		&entry.Message,
		&entry.HashPrev,
		&entry.HashThis,
		&entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	return &entry, nil
}

func (ar *auditChainRepository) ListAll(ctx context.Context) ([]models.AuditLogEntry, error) {
	return ar.list(ctx, listAuditAllQuery)
}

func (ar *auditChainRepository) ListRange(ctx context.Context, fromSeq, toSeq uint64) ([]models.AuditLogEntry, error) {
	return ar.list(ctx, listAuditRangeQuery, fromSeq, toSeq)
}

func (ar *auditChainRepository) ListMatching(ctx context.Context, contains string, categories []string) ([]models.AuditLogEntry, error) {
	return ar.list(ctx, listAuditMatchingQuery, "%"+contains+"%", pq.Array(categories))
}

func (ar *auditChainRepository) list(ctx context.Context, query string, args ...interface{}) (out []models.AuditLogEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ar.r.txOrRead(ctx)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		entry := models.AuditLogEntry{}
		err = rows.Scan(
			&entry.Seq,
			&entry.Category,
			&entry.Message,
			&entry.HashPrev,
			&entry.HashThis,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}

	return out, rows.Err()
}
