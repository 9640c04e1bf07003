package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/IBM/sarama"

	"ecodeli-delivery/internal/domain"
)

var newSyncProducer = sarama.NewSyncProducer

// Producer publishes delivery events keyed by package id, so one package's events stay ordered.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducer creates a new Producer. Returns nil when Kafka is not configured.
func NewProducer(brokers []string, topic string) (*Producer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	// retries are done by the publishing gateway
	cfg.Producer.Retry.Max = 0

	p, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &Producer{producer: p, topic: topic}, nil
}

// Publish sends one event.
func (p *Producer) Publish(ctx context.Context, e domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(FromDomain(e))
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(packageKey(e.PackageID)),
		Value: sarama.ByteEncoder(body),
	})
	return err
}

// Close flushes and closes the producer
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
