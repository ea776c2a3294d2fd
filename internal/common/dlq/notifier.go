package dlq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Shopify/sarama"
)

// Notifier mirrors dead-lettered payouts to a topic so ops tooling sees them
// without reading the badger store.
type Notifier interface {
	Notify(ctx context.Context, entry interface{}) error
}

type kafkaNotifier struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaNotifier(producer sarama.SyncProducer, topic string) Notifier {
	return &kafkaNotifier{producer: producer, topic: topic}
}

func (n *kafkaNotifier) Notify(ctx context.Context, entry interface{}) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal dlq notification: %w", err)
	}

	_, _, err = n.producer.SendMessage(&sarama.ProducerMessage{
		Topic: n.topic,
		Value: sarama.ByteEncoder(raw),
	})
	if err != nil {
		return fmt.Errorf("failed to publish dlq notification: %w", err)
	}

	return nil
}
