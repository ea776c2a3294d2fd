package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/clearpath-au/go-remit/internal/common"
	"github.com/clearpath-au/go-remit/internal/common/canonicaljson"
	"github.com/clearpath-au/go-remit/internal/models"
	"github.com/clearpath-au/go-remit/internal/monitoring"
	"github.com/clearpath-au/go-remit/internal/repositories"
)

// AuditService fronts the hash-linked audit chain: appends, offline
// verification and the allowlisted export surface.
type AuditService interface {
	Append(ctx context.Context, category string, payload interface{}) (models.AppendReceipt, error)
	VerifyChain(ctx context.Context) error
	Export(ctx context.Context, fromSeq, toSeq uint64) ([]models.AuditExportRow, error)
	// ExportArchive writes the full chain as a CSV object to cloud storage and
	// returns its URL.
	ExportArchive(ctx context.Context) (url string, err error)
}

type auditService service

var _ AuditService = (*auditService)(nil)

// Append canonicalizes the payload and links it onto the chain. The whole
// read-tail-then-insert runs in one transaction so concurrent appenders
// serialize on the tail lock.
func (a *auditService) Append(ctx context.Context, category string, payload interface{}) (out models.AppendReceipt, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	err = a.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		out, err = a.appendInTx(ctx, r, category, payload)
		return err
	})

	return out, err
}

// appendInTx is Append for callers that already hold a transaction.
func (a *auditService) appendInTx(ctx context.Context, r repositories.SQLRepository, category string, payload interface{}) (models.AppendReceipt, error) {
	message, err := canonicaljson.MarshalString(payload)
	if err != nil {
		return models.AppendReceipt{}, err
	}

	return r.GetAuditChainRepository().Append(ctx, category, message)
}

// VerifyChain replays the whole chain and recomputes every hash. The first
// mismatch is fatal; callers relying on chain trust must halt on it.
func (a *auditService) VerifyChain(ctx context.Context) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	entries, err := a.srv.sqlRepo.GetAuditChainRepository().ListAll(ctx)
	if err != nil {
		return err
	}

	prev := ""
	for _, entry := range entries {
		if entry.HashPrev.String != prev {
			return &common.ChainIntegrityError{
				Seq:    entry.Seq,
				Detail: fmt.Sprintf("hash_prev %q does not match predecessor hash %q", entry.HashPrev.String, prev),
			}
		}

		want := models.ChainHash(prev, entry.Message)
		if entry.HashThis != want {
			return &common.ChainIntegrityError{
				Seq:    entry.Seq,
				Detail: fmt.Sprintf("stored hash_this %q, recomputed %q", entry.HashThis, want),
			}
		}

		prev = entry.HashThis
	}

	return nil
}

// Export returns the allowlisted projection of the chain. fromSeq/toSeq of 0
// means the whole chain.
func (a *auditService) Export(ctx context.Context, fromSeq, toSeq uint64) (out []models.AuditExportRow, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	acr := a.srv.sqlRepo.GetAuditChainRepository()

	var entries []models.AuditLogEntry
	if fromSeq == 0 && toSeq == 0 {
		entries, err = acr.ListAll(ctx)
	} else {
		entries, err = acr.ListRange(ctx, fromSeq, toSeq)
	}
	if err != nil {
		return nil, err
	}

	out = make([]models.AuditExportRow, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.ToExportRow())
	}

	return out, nil
}

func (a *auditService) ExportArchive(ctx context.Context) (url string, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	rows, err := a.Export(ctx, 0, 0)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	// column set mirrors the export allowlist, nothing else leaves.
	if err = w.Write([]string{"seq", "category", "message", "hash_prev", "hash_this", "created_at"}); err != nil {
		return "", err
	}
	for _, row := range rows {
		record := []string{
			strconv.FormatUint(row.Seq, 10),
			row.Category,
			row.Message,
			row.HashPrev,
			row.HashThis,
			row.CreatedAt.UTC().Format(time.RFC3339Nano),
		}
		if err = w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("%s.csv", a.srv.idgenerator.Generate("audit-export"))
	return a.srv.cloudStorage.Upload(ctx, objectName, "text/csv", buf.Bytes())
}
