// Package producers publishes rejected transaction records to a Kafka
// dead-letter topic. The channel is advisory: the final report never depends
// on it, and it is disabled entirely when no topic is configured.
package producers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/payments-engine/internal/config"
	"github.com/payments-engine/internal/domain/shared"
)

// KafkaWriter wraps the kafka.Writer methods used here, for testing.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// RejectedRecordProducer publishes every per-record processing rejection to
// a dead-letter topic, keyed by client id so one account's rejections stay
// in one partition.
type RejectedRecordProducer struct {
	logger *slog.Logger
	writer KafkaWriter
	topic  string
}

// rejectedRecord is the dead-letter payload.
type rejectedRecord struct {
	Operation string `json:"type"`
	Client    uint16 `json:"client"`
	Tx        uint32 `json:"tx"`
	Amount    string `json:"amount,omitempty"`
	Code      string `json:"code"`
	Reason    string `json:"reason"`
	Timestamp string `json:"timestamp"`
}

// NewRejectedRecordProducer connects the dead-letter channel. It returns a
// nil producer when cfg.RejectedTopic is empty: dead-lettering is disabled,
// not an error.
func NewRejectedRecordProducer(ctx context.Context, logger *slog.Logger, cfg *config.KafkaConfig) (*RejectedRecordProducer, error) {
	if cfg.RejectedTopic == "" {
		logger.Info("rejected-record topic not configured, dead-lettering disabled")
		return nil, nil
	}

	conn, err := kafka.Dial("tcp", cfg.Brokers)
	if err != nil {
		return nil, fmt.Errorf("failed to dial kafka for rejected-record producer: %w", err)
	}
	defer conn.Close()

	if err := ensureTopic(conn, cfg.RejectedTopic, cfg.NumPartitions, cfg.ReplicationFactor, logger); err != nil {
		return nil, fmt.Errorf("failed to ensure rejected-record topic %s exists: %w", cfg.RejectedTopic, err)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers),
		Topic:        cfg.RejectedTopic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &RejectedRecordProducer{
		logger: logger,
		writer: writer,
		topic:  cfg.RejectedTopic,
	}, nil
}

// PublishRejection sends one rejected record with its rejection code and
// human-readable reason.
func (p *RejectedRecordProducer) PublishRejection(ctx context.Context, tx shared.Transaction, code, reason string) error {
	if p == nil || p.writer == nil {
		return fmt.Errorf("rejected-record producer not initialized")
	}

	payload := rejectedRecord{
		Operation: string(tx.Operation),
		Client:    uint16(tx.ClientID),
		Tx:        uint32(tx.ID),
		Code:      code,
		Reason:    reason,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if tx.Amount != nil {
		payload.Amount = tx.Amount.String()
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal rejected record: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%d", tx.ClientID)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "rejection-code", Value: []byte(code)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("failed to publish rejected record",
			"topic", p.topic,
			"client", tx.ClientID,
			"tx", tx.ID,
			"error", err,
		)
		return fmt.Errorf("failed to publish rejected record to %s: %w", p.topic, err)
	}

	p.logger.Debug("published rejected record",
		"topic", p.topic,
		"client", tx.ClientID,
		"tx", tx.ID,
		"code", code,
	)
	return nil
}

// Close flushes and closes the underlying writer.
func (p *RejectedRecordProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	p.logger.Info("closing rejected-record producer", "topic", p.topic)
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer for topic %s: %w", p.topic, err)
	}
	return nil
}
