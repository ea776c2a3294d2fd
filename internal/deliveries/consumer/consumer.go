package consumer

import (
	"context"
	"fmt"

	"github.com/clearpath-au/go-remit/internal/common/dlq"
	"github.com/clearpath-au/go-remit/internal/common/graceful"
	"github.com/clearpath-au/go-remit/internal/common/metrics"
	"github.com/clearpath-au/go-remit/internal/common/publisher"
	"github.com/clearpath-au/go-remit/internal/config"
	"github.com/clearpath-au/go-remit/internal/deliveries/consumer/statements"
	"github.com/clearpath-au/go-remit/internal/services"
)

func NewKafkaConsumer(
	ctx context.Context,
	consumerName string,
	conf config.Config,
	svc *services.Services,
	mtc metrics.Metrics,
) (consumerProcess graceful.ProcessStartStopper, stoppers []graceful.ProcessStopper, err error) {
	switch consumerName {
	case "statements":
		producer, errProducer := publisher.NewKafkaSyncProducer(conf.MessageBroker.KafkaConsumer.Brokers)
		if errProducer != nil {
			err = fmt.Errorf("failed setup kafka dlq publisher : %w", errProducer)
			return
		}

		stoppers = append(stoppers, func(ctx context.Context) error { return producer.Close() })

		notifier := dlq.NewKafkaNotifier(producer, conf.MessageBroker.KafkaConsumer.TopicDLQ)

		consumerProcess, err = statements.New(ctx, conf, svc.Recon, notifier, mtc)
	default:
		err = fmt.Errorf("consumer type name for %s not found", consumerName)
	}

	return
}
