package services

import (
	"context"

	"github.com/clearpath-au/go-remit/internal/models"
	"github.com/clearpath-au/go-remit/internal/monitoring"
)

// DLQService is the operator surface over the dead letter store. Entries are
// only ever listed and discarded by hand; nothing requeues them automatically.
type DLQService interface {
	ListDeadLetters(ctx context.Context) ([]models.DeadLetterEntry, error)
	Discard(ctx context.Context, id string) error
}

type dlqService service

var _ DLQService = (*dlqService)(nil)

func (ds *dlqService) ListDeadLetters(ctx context.Context) (out []models.DeadLetterEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	out, err = ds.srv.dlqStore.List(ctx)
	if err != nil {
		return nil, err
	}

	ds.srv.metrics.GetDLQPrometheus().SetDepth(len(out))
	return out, nil
}

func (ds *dlqService) Discard(ctx context.Context, id string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return ds.srv.dlqStore.Delete(ctx, id)
}
