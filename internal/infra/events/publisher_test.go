package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbandepot/parking-service/internal/domain"
	"github.com/urbandepot/parking-service/pkg/logger"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	p := newKafkaPublisher(writer, "parking", logger.NewNop())

	at := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	r := &domain.Reservation{
		ID:          "0b5c8f5e-6d0a-4a53-9d43-3f1e7a1d2c11",
		PlaceID:     "Green_Park",
		UserEmail:   "user@example.com",
		VehicleType: domain.VehicleCar,
		Checkin:     at,
		Checkout:    at.Add(2 * time.Hour),
		TotalAmount: 31.5,
		Status:      domain.StatusActive,
	}

	require.NoError(t, p.Publish(context.Background(), ReservationCreated(r, at)))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, "parking.reservation.created", msg.Topic)
	assert.Equal(t, []byte("Green_Park"), msg.Key)

	var decoded struct {
		EventID   string             `json:"eventId"`
		EventType string             `json:"eventType"`
		Payload   ReservationPayload `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.NotEmpty(t, decoded.EventID)
	assert.Equal(t, TypeReservationCreated, decoded.EventType)
	assert.Equal(t, r.ID, decoded.Payload.ReservationID)
	assert.Equal(t, "car", decoded.Payload.VehicleType)
}

func TestKafkaPublisher_PublishError(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker down")}
	p := newKafkaPublisher(writer, "", logger.NewNop())

	err := p.Publish(context.Background(), PlaceVerified(&domain.Place{ID: "Lot"}, time.Now()))
	assert.ErrorIs(t, err, ErrPublish)
}

func TestKafkaPublisher_TopicWithoutPrefix(t *testing.T) {
	p := newKafkaPublisher(&fakeWriter{}, "", logger.NewNop())
	assert.Equal(t, TypePlaceVerified, p.topic(TypePlaceVerified))
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), Event{}))
}
