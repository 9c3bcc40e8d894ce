package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrMarshal ошибка сериализации события
	ErrMarshal = errors.New("events: failed to marshal event")

	// ErrPublish ошибка отправки события в Kafka
	ErrPublish = errors.New("events: failed to publish event")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// messageWriter часть *kafka.Writer, используемая публикатором
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// envelope формат сообщения в топике
type envelope struct {
	EventID    string      `json:"eventId"`
	EventType  string      `json:"eventType"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

// KafkaPublisher публикует доменные события в Kafka
type KafkaPublisher struct {
	writer      messageWriter
	topicPrefix string
	log         Logger
}

// NewKafkaPublisher создает публикатор поверх kafka.Writer
func NewKafkaPublisher(brokers []string, topicPrefix string, writeTimeout time.Duration, log Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		WriteTimeout:           writeTimeout,
		AllowAutoTopicCreation: true,
	}
	return newKafkaPublisher(writer, topicPrefix, log)
}

func newKafkaPublisher(writer messageWriter, topicPrefix string, log Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer:      writer,
		topicPrefix: topicPrefix,
		log:         log,
	}
}

// Publish отправляет событие; топик = <prefix>.<event type>
func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	eventID := uuid.NewString()

	value, err := json.Marshal(envelope{
		EventID:    eventID,
		EventType:  event.Type,
		OccurredAt: event.OccurredAt.UTC(),
		Payload:    event.Payload,
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMarshal, event.Type, err)
	}

	msg := kafka.Message{
		Topic: p.topic(event.Type),
		Key:   []byte(event.Key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(eventID)},
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: %s key=%s: %v", ErrPublish, event.Type, event.Key, err)
	}

	p.log.Info("Events: published %s key=%s id=%s", event.Type, event.Key, eventID)
	return nil
}

// Close закрывает соединения с брокерами
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func (p *KafkaPublisher) topic(eventType string) string {
	if p.topicPrefix == "" {
		return eventType
	}
	return p.topicPrefix + "." + eventType
}

// NopPublisher используется, когда брокеры не настроены
type NopPublisher struct{}

// Publish ничего не делает
func (NopPublisher) Publish(context.Context, Event) error { return nil }

// Close ничего не делает
func (NopPublisher) Close() error { return nil }
