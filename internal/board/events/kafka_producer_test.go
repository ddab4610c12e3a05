package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// MockKafkaWriter implements KafkaWriter for testing
type MockKafkaWriter struct {
	mock.Mock
}

func (m *MockKafkaWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockKafkaWriter) Close() error {
	args := m.Called()
	return args.Error(0)
}

func newTestProducer(logger *zap.Logger, writer KafkaWriter) *Producer {
	return &Producer{
		writer:    writer,
		events:    make(chan Event, 1000),
		logger:    logger.Named("kafka_producer"),
		closeChan: make(chan struct{}),
	}
}

func TestEventKey(t *testing.T) {
	assert.Equal(t, "job-1", Event{Type: JobCreated, Ref: Ref{JobID: "job-1", CompanyID: "company-1"}}.key())
	assert.Equal(t, "company-1", Event{Type: CompanyVerified, Ref: Ref{CompanyID: "company-1"}}.key())
	assert.Equal(t, "app-1", Event{Type: ApplicationReviewed, Ref: Ref{ApplicationID: "app-1", UserID: "user-1"}}.key())
	assert.Equal(t, "user_registered", Event{Type: UserRegistered}.key(), "events with no ids key by type")
}

func TestProducer_Produce(t *testing.T) {
	t.Run("successful produce", func(t *testing.T) {
		producer := newTestProducer(zaptest.NewLogger(t), new(MockKafkaWriter))

		producer.Produce(JobCreated, Ref{JobID: "job-1"})

		assert.Equal(t, 1, len(producer.events))
	})

	t.Run("dropped event when queue full", func(t *testing.T) {
		core, recorded := observer.New(zap.WarnLevel)
		producer := newTestProducer(zap.New(core), new(MockKafkaWriter))
		producer.events = make(chan Event, 1) // Small buffer for test

		producer.Produce(JobCreated, Ref{JobID: "job-1"})
		producer.Produce(JobCreated, Ref{JobID: "job-2"}) // This should be dropped

		assert.Equal(t, 1, recorded.FilterMessage("Kafka producer queue full, dropping event").Len())
	})
}

func TestProducer_SendEvent(t *testing.T) {
	t.Run("successful send", func(t *testing.T) {
		mockWriter := new(MockKafkaWriter)
		producer := newTestProducer(zaptest.NewLogger(t), mockWriter)
		mockWriter.On("WriteMessages", mock.Anything, mock.Anything).Return(nil)

		event := Event{
			Type: ApplicationSubmitted,
			Ref:  Ref{JobID: "job-1", ApplicationID: "app-1", UserID: "user-1"},
			At:   time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		}
		producer.sendEvent(context.Background(), event)

		value, err := json.Marshal(event)
		require.NoError(t, err)
		mockWriter.AssertCalled(t, "WriteMessages", mock.Anything, []kafka.Message{
			{
				Key:   []byte("job-1"),
				Value: value,
			},
		})
	})

	t.Run("write error is logged", func(t *testing.T) {
		mockWriter := new(MockKafkaWriter)
		core, recorded := observer.New(zap.ErrorLevel)
		producer := newTestProducer(zap.New(core), mockWriter)
		mockWriter.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		producer.sendEvent(context.Background(), Event{Type: JobCreated, Ref: Ref{JobID: "job-1"}})

		assert.Equal(t, 1, recorded.FilterMessage("Failed to produce event").Len())
	})

	t.Run("serialization error is logged", func(t *testing.T) {
		mockWriter := new(MockKafkaWriter)
		core, recorded := observer.New(zap.ErrorLevel)
		producer := newTestProducer(zap.New(core), mockWriter)

		original := jsonMarshal
		jsonMarshal = func(any) ([]byte, error) { return nil, errors.New("marshal failure") }
		defer func() { jsonMarshal = original }()

		producer.sendEvent(context.Background(), Event{Type: JobCreated})

		assert.Equal(t, 1, recorded.FilterMessage("Failed to serialize event").Len())
		mockWriter.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
	})
}

func TestProducer_EventLoopDrains(t *testing.T) {
	mockWriter := new(MockKafkaWriter)
	done := make(chan struct{})
	mockWriter.On("WriteMessages", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		close(done)
	}).Return(nil)
	mockWriter.On("Close").Return(nil)

	producer := newTestProducer(zaptest.NewLogger(t), mockWriter)
	go producer.eventLoop()

	producer.Produce(JobApproved, Ref{JobID: "job-1"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event was not written")
	}
	producer.Close()
}

func TestProducer_Close(t *testing.T) {
	mockWriter := new(MockKafkaWriter)
	mockWriter.On("Close").Return(nil)

	producer := newTestProducer(zaptest.NewLogger(t), mockWriter)
	producer.Close()

	mockWriter.AssertCalled(t, "Close")
}

func TestDiscardIsNoOp(t *testing.T) {
	var d Discard
	d.Produce(JobCreated, Ref{JobID: "job-1"})
	d.Close()
}
