package monitoring

import (
	"time"

	"github.com/clearpath-au/go-remit/internal/common/log"
)

var messagePrefix = map[string]string{
	LayerRepository: "[REPOSITORY]",
	LayerService:    "[SERVICE]",
	LayerDelivery:   "[DELIVERY]",
	LayerUnknown:    "[-]",
}

type finishOptions struct {
	err       error
	logFields []log.Field
}

type FinishOption func(*finishOptions)

func WithFinishCheckError(err error) FinishOption {
	return func(o *finishOptions) {
		o.err = err
	}
}

func WithFinishLogFields(fields ...log.Field) FinishOption {
	return func(o *finishOptions) {
		o.logFields = fields
	}
}

func (m *Monitor) Finish(opts ...FinishOption) {
	fOpts := &finishOptions{}
	for _, opt := range opts {
		opt(fOpts)
	}

	fOpts.logFields = append(fOpts.logFields,
		log.Duration("processDuration", time.Since(m.start)))

	if fOpts.err != nil {
		fOpts.logFields = append(
			fOpts.logFields,
			log.String("status", "error"),
			log.Err(fOpts.err))

		log.Warn(m.ctx, messagePrefix[m.layer], fOpts.logFields...)
	} else {
		// only log info from delivery layer & service layer to avoid duplicate log
		if m.layer == LayerDelivery || m.layer == LayerService {
			fOpts.logFields = append(
				fOpts.logFields,
				log.String("status", "success"))

			log.Info(m.ctx, messagePrefix[m.layer], fOpts.logFields...)
		}
	}

	if m.segment != nil {
		m.segment.End()
	}
}
