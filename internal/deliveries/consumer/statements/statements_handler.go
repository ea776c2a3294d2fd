package statements

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/clearpath-au/go-remit/internal/common/dlq"
	"github.com/clearpath-au/go-remit/internal/common/log"
	"github.com/clearpath-au/go-remit/internal/common/metrics"
	"github.com/clearpath-au/go-remit/internal/models"
	"github.com/clearpath-au/go-remit/internal/services"

	"github.com/Shopify/sarama"
	"github.com/google/uuid"
)

type StatementsHandler struct {
	clientID        string
	rc              services.ReconciliationService
	notifier        dlq.Notifier
	consumerMetrics *metrics.ConsumerMetrics
}

func NewStatementsHandler(
	clientID string,
	rc services.ReconciliationService,
	notifier dlq.Notifier,
	consumerMetrics *metrics.ConsumerMetrics,
) sarama.ConsumerGroupHandler {
	return &StatementsHandler{clientID, rc, notifier, consumerMetrics}
}

// Setup is run at the beginning of a new session, before ConsumeClaim
func (sh StatementsHandler) Setup(_ sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited
func (sh StatementsHandler) Cleanup(_ sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim must start a consumer loop of ConsumerGroupClaim's Messages().
func (sh StatementsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			ctx := log.WithCorrelationID(session.Context(), uuid.New().String())

			start := time.Now()
			logField := createLogField(message)

			err := sh.handler(ctx, message)
			if err != nil {
				logField = append(logField, log.Duration("response-time", time.Since(start)), log.Err(err))
				log.Warn(ctx, logMessage, logField...)

				sh.Nack(ctx, session, message, err)
				continue
			}

			logField = append(logField, log.Duration("response-time", time.Since(start)))
			log.Info(ctx, logMessage, logField...)

			sh.Ack(session, message)
		case <-session.Context().Done():
			return nil
		}
	}
}

func (sh StatementsHandler) processMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	var (
		batch      models.BankStatementBatch
		logMessage = "[PROCESS-MESSAGE]"
	)

	logField := createLogField(message)

	if err := json.Unmarshal(message.Value, &batch); err != nil {
		logField = append(logField, log.Err(err))
		log.Warn(ctx, logMessage, logField...)
		return fmt.Errorf("error unmarshal json: %w", err)
	}

	summary, err := sh.rc.Ingest(ctx, batch)
	if err != nil {
		err = fmt.Errorf("unable to ingest statement batch: %w", err)
		logField = append(logField, log.Err(err))
		log.Warn(ctx, logMessage, logField...)
		return err
	}

	logField = append(logField,
		log.String("provider", summary.Provider),
		log.Int("received", summary.Received),
		log.Int("linked", summary.Linked),
		log.Int("mismatch", summary.Mismatch),
		log.Int("unmatched", summary.Unmatched),
	)
	log.Info(ctx, logMessage, logField...)
	return nil
}

func (sh StatementsHandler) handler(ctx context.Context, message *sarama.ConsumerMessage) (err error) {
	startTime := time.Now() // time when a process consumes a message started
	err = sh.processMessage(ctx, message)

	if sh.consumerMetrics != nil {
		sh.consumerMetrics.GenerateMetrics(startTime, message, err)
	}

	return
}

func (sh StatementsHandler) Ack(session sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) {
	session.MarkMessage(message, "")
}

// Nack publishes the failed message to the DLQ notification topic and marks
// the message as consumed so the partition keeps moving.
func (sh StatementsHandler) Nack(ctx context.Context, session sarama.ConsumerGroupSession, message *sarama.ConsumerMessage, causeErr error) {
	logField := createLogField(message)

	if sh.notifier != nil {
		err := sh.notifier.Notify(ctx, models.FailedMessage{
			Payload:   message.Value,
			Timestamp: message.Timestamp,
			Error:     causeErr.Error(),
		})
		if err != nil {
			logField = append(logField, log.Err(err))
			log.Warn(ctx, logMessage, logField...)
		}
	}

	session.MarkMessage(message, "")
}

func createLogField(msg *sarama.ConsumerMessage) []log.Field {
	return []log.Field{
		log.Time("timestamp", msg.Timestamp),
		log.String("topic", msg.Topic),
		log.String("key", string(msg.Key)),
		log.Int32("partition", msg.Partition),
		log.Int64("offset", msg.Offset),
		log.String("message-claimed", string(msg.Value)),
	}
}
