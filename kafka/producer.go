package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"storefront/models"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// SaleEvent is the message published after every successful checkout.
type SaleEvent struct {
	Event     string      `json:"event"` // "sale.recorded"
	Sale      models.Sale `json:"sale"`
	Timestamp time.Time   `json:"timestamp"`
}

// Producer publishes sale events. With no brokers configured it is disabled
// and every publish is a silent no-op; eventing is best-effort and never
// blocks a checkout.
type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(brokersCSV, topic string) *Producer {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return &Producer{}
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &Producer{writer: writer, topic: topic}
}

func (p *Producer) Enabled() bool {
	return p.writer != nil
}

func (p *Producer) SendSaleEvent(ctx context.Context, sale models.Sale) error {
	if !p.Enabled() {
		return nil
	}

	event := SaleEvent{
		Event:     "sale.recorded",
		Sale:      sale,
		Timestamp: time.Now().UTC(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(sale.UserID),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		zap.L().Warn("Failed to publish sale event", zap.String("sale_id", sale.ID), zap.Error(err))
		return err
	}
	return nil
}

func (p *Producer) Close() {
	if p.writer != nil {
		_ = p.writer.Close()
	}
}
