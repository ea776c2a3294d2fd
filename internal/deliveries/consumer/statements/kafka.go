package statements

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clearpath-au/go-remit/internal/common/dlq"
	"github.com/clearpath-au/go-remit/internal/common/graceful"
	"github.com/clearpath-au/go-remit/internal/common/log"
	"github.com/clearpath-au/go-remit/internal/common/messaging"
	"github.com/clearpath-au/go-remit/internal/common/metrics"
	"github.com/clearpath-au/go-remit/internal/config"
	"github.com/clearpath-au/go-remit/internal/services"

	"github.com/Shopify/sarama"
	"golang.org/x/sync/errgroup"
)

const logMessage = "[KAFKA-CONSUMER] [STATEMENTS] "

// Consumer pulls bank statement batches off the statements topic and feeds
// them to the reconciliation matcher.
type Consumer struct {
	ctx context.Context

	clientID    string
	cfg         config.Config
	consumerCfg config.ConsumerConfig

	cg sarama.ConsumerGroup

	StatementsHandler sarama.ConsumerGroupHandler

	notifier dlq.Notifier
	rc       services.ReconciliationService

	metrics         metrics.Metrics
	consumerMetrics *metrics.ConsumerMetrics
}

func New(ctx context.Context, cfg config.Config, rc services.ReconciliationService, notifier dlq.Notifier, metrics metrics.Metrics) (*Consumer, error) {
	c := &Consumer{
		ctx:         ctx,
		cfg:         cfg,
		consumerCfg: cfg.MessageBroker.KafkaConsumer,
		rc:          rc,
		notifier:    notifier,
		metrics:     metrics,
	}

	log.Info(c.ctx, logMessage, log.String("status", "success init kafka consumer"))

	return c, nil
}

func (c *Consumer) preStart() error {
	saramaCfg, err := messaging.CreateSaramaConsumerConfig(c.consumerCfg, logMessage)
	if err != nil {
		log.Error(c.ctx, logMessage, log.Err(err))
		return fmt.Errorf("failed to create consumer config: %w", err)
	}

	if c.consumerCfg.TopicStatements == "" {
		return errors.New("no topics given to be consumed, please set the topic")
	}

	if c.consumerCfg.ConsumerGroup == "" {
		return errors.New("no kafka consumer group defined, please set the group")
	}

	// prometheus metrics
	if c.metrics != nil {
		saramaCfg.MetricRegistry = c.metrics.SaramaRegistry(c.consumerCfg.ConsumerGroup, 1*time.Second)
		c.consumerMetrics = metrics.NewConsumerMetrics(c.consumerCfg.ConsumerGroup, c.cfg.App.Name, 1*time.Second, c.metrics.PrometheusRegisterer())
		c.consumerMetrics.Run()
	}

	c.clientID = saramaCfg.ClientID
	c.StatementsHandler = NewStatementsHandler(c.clientID, c.rc, c.notifier, c.consumerMetrics)

	client, err := sarama.NewConsumerGroup(c.consumerCfg.Brokers, c.consumerCfg.ConsumerGroup, saramaCfg)
	if err != nil {
		return err
	}
	c.cg = client

	return nil
}

func (c *Consumer) Start() graceful.ProcessStarter {
	return func() error {
		err := c.preStart()
		if err != nil {
			return err
		}

		// track errors
		go func() {
			for errCg := range c.cg.Errors() {
				log.Error(c.ctx, logMessage, log.Err(fmt.Errorf("client error: %w", errCg)))
			}
		}()

		eg, ctx := errgroup.WithContext(c.ctx)

		eg.Go(func() error {
			for {
				if err := c.cg.Consume(ctx, []string{c.consumerCfg.TopicStatements}, c.StatementsHandler); err != nil {
					log.Warn(c.ctx, logMessage, log.Err(fmt.Errorf("error start consumer: %w", err)))
				}
				if err := c.ctx.Err(); err != nil {
					return fmt.Errorf("context was canceled: %w", err)
				}
			}
		})

		return eg.Wait()
	}
}

func (c *Consumer) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		if err := c.cg.Close(); err != nil {
			return err
		}

		return nil
	}
}
