package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

func NewWriter(brokers string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

// KafkaPublisher writes settlement and override-audit events to one topic,
// keyed by purchase id.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(w *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) PublishSettlement(ctx context.Context, e PurchaseSettled) error {
	e.TsUnixMs = time.Now().UnixMilli()
	return p.write(ctx, e.PurchaseID, e)
}

func (p *KafkaPublisher) PublishForcedTier(ctx context.Context, e ForcedTierSet) error {
	e.TsUnixMs = time.Now().UnixMilli()
	return p.write(ctx, e.PurchaseID, e)
}

func (p *KafkaPublisher) write(ctx context.Context, key string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: b,
		Time:  time.Now(),
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
