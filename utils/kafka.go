package utils

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Shree2124/ngostream-backend/config"
)

var (
	auditWriter        *kafka.Writer
	notificationWriter *kafka.Writer
)

const (
	defaultAuditTopic        = "ngostream.audit"
	defaultNotificationTopic = "ngostream.notifications"
)

// InitializeKafka sets up the writers for the audit and notification topics.
// Kafka is optional in development: when no brokers are configured the
// publishers become no-ops.
func InitializeKafka(cfg *config.Config) {
	if cfg.KafkaBrokers == "" {
		log.Println("⚠️ KAFKA_BROKERS not set, event publishing disabled")
		return
	}

	brokers := strings.Split(cfg.KafkaBrokers, ",")

	auditTopic := cfg.KafkaAuditTopic
	if auditTopic == "" {
		auditTopic = defaultAuditTopic
	}
	notificationTopic := cfg.KafkaNotificationTopic
	if notificationTopic == "" {
		notificationTopic = defaultNotificationTopic
	}

	auditWriter = &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        auditTopic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
	}
	notificationWriter = &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        notificationTopic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
	}

	log.Printf("✅ Kafka writers ready (audit=%s notifications=%s)", auditTopic, notificationTopic)
}

// PublishAudit forwards an audit entry to the audit topic, best-effort.
func PublishAudit(ctx context.Context, key string, payload []byte) {
	if auditWriter == nil {
		return
	}
	if err := auditWriter.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: payload}); err != nil {
		log.Printf("⚠️ Failed to publish audit event: %v", err)
	}
}

// PublishNotification enqueues a notification job for the consumer worker.
func PublishNotification(ctx context.Context, key string, payload []byte) error {
	if notificationWriter == nil {
		return nil
	}
	return notificationWriter.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: payload})
}

// NewNotificationReader builds the reader the notification worker consumes from.
func NewNotificationReader(cfg *config.Config) *kafka.Reader {
	if cfg.KafkaBrokers == "" {
		return nil
	}
	topic := cfg.KafkaNotificationTopic
	if topic == "" {
		topic = defaultNotificationTopic
	}
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  strings.Split(cfg.KafkaBrokers, ","),
		GroupID:  "ngostream-notification-worker",
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}
