// Package events publishes board domain events to Kafka: job lifecycle
// transitions, submitted applications, registrations, and company
// verification.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var jsonMarshal = json.Marshal

type EventType string

const (
	JobCreated           EventType = "job_created"
	JobUpdated           EventType = "job_updated"
	JobApproved          EventType = "job_approved"
	JobRejected          EventType = "job_rejected"
	JobClosed            EventType = "job_closed"
	ApplicationSubmitted EventType = "application_submitted"
	ApplicationReviewed  EventType = "application_reviewed"
	CompanyVerified      EventType = "company_verified"
	UserRegistered       EventType = "user_registered"
)

// Ref identifies the entities an event concerns. Only the relevant ids are
// set; the first non-empty id keys the Kafka message.
type Ref struct {
	JobID         string `json:"jobId,omitempty"`
	CompanyID     string `json:"companyId,omitempty"`
	ApplicationID string `json:"applicationId,omitempty"`
	UserID        string `json:"userId,omitempty"`
}

type Event struct {
	Type EventType `json:"type"`
	Ref  Ref       `json:"ref"`
	At   time.Time `json:"at"`
}

func (e Event) key() string {
	for _, id := range []string{e.Ref.JobID, e.Ref.CompanyID, e.Ref.ApplicationID, e.Ref.UserID} {
		if id != "" {
			return id
		}
	}
	return string(e.Type)
}

type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	writer    KafkaWriter // Use interface instead of concrete type
	events    chan Event
	logger    *zap.Logger
	closeChan chan struct{}
}

func NewProducer(brokers []string, logger *zap.Logger, topic string) (*Producer, error) {
	// Create topic if it doesn't exist
	conn, err := kafka.Dial("tcp", brokers[0])
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	topicConfigs := []kafka.TopicConfig{
		{
			Topic:             topic,
			NumPartitions:     3,
			ReplicationFactor: 1,
		},
	}

	err = conn.CreateTopics(topicConfigs...)
	if err != nil {
		logger.Warn("failed to create topic (may already exist)", zap.Error(err))
	}
	p := &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
			Topic:    topic,
		},
		events:    make(chan Event, 1000), // Buffered channel
		logger:    logger.Named("kafka_producer"),
		closeChan: make(chan struct{}),
	}

	go p.eventLoop()
	return p, nil
}

func (p *Producer) Produce(eventType EventType, ref Ref) {
	event := Event{Type: eventType, Ref: ref, At: time.Now().UTC()}
	select {
	case p.events <- event:
	default:
		p.logger.Warn("Kafka producer queue full, dropping event",
			zap.String("event_type", string(eventType)),
			zap.String("key", event.key()),
		)
	}
}

func (p *Producer) eventLoop() {
	for {
		select {
		case event := <-p.events:
			p.sendEvent(context.Background(), event)
		case <-p.closeChan:
			return
		}
	}
}

func (p *Producer) sendEvent(ctx context.Context, event Event) {
	value, err := jsonMarshal(event)
	if err != nil {
		p.logger.Error("Failed to serialize event",
			zap.Error(err),
			zap.String("event_type", string(event.Type)),
		)
		return
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.key()),
		Value: value,
	})
	if err != nil {
		p.logger.Error("Failed to produce event",
			zap.Error(err),
			zap.String("event_type", string(event.Type)),
			zap.String("key", event.key()),
		)
		return
	}
}

func (p *Producer) Close() {
	close(p.closeChan)
	if err := p.writer.Close(); err != nil {
		p.logger.Error("Failed to close Kafka writer", zap.Error(err))
	}
}

// Discard is a no-op producer for deployments without Kafka brokers
// configured (the default demo mode).
type Discard struct{}

func (Discard) Produce(EventType, Ref) {}
func (Discard) Close()                 {}
