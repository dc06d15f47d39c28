package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"brasileirao-go/internal/config"
	"brasileirao-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// 新闻事件类型
const (
	EventNewsPublished   = "news.published"
	EventNewsDeleted     = "news.deleted"
	EventNewsInteraction = "news.interaction"
)

// NewsEvent 新闻事件消息体，worker 据此维护搜索索引
type NewsEvent struct {
	Type       string    `json:"type"`
	NewsID     string    `json:"newsId"`
	TeamID     string    `json:"teamId,omitempty"`
	ActorID    string    `json:"actorId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Producer 新闻事件生产者
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer 初始化 Kafka 生产者
func NewProducer(cfg *config.KafkaConfig) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers is empty")
	}
	topic := cfg.NewsEventsTopic()

	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		MaxAttempts:  3,
		WriteTimeout: 2 * time.Second,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
		zap.String("topic", topic),
	)
	return &Producer{writer: w, topic: topic}, nil
}

// PublishNewsEvent 发送新闻事件，以 newsId 为 key 保证同一新闻的事件有序
func (p *Producer) PublishNewsEvent(ctx context.Context, event NewsEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal news event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.NewsID),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send news event: %w", err)
	}

	logger.Debug("News event sent",
		zap.String("type", event.Type),
		zap.String("news_id", event.NewsID),
		zap.String("topic", p.topic),
	)
	return nil
}

// Close 关闭生产者
func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return p.writer.Close()
}
