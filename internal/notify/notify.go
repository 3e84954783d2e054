package notify

import (
	"context"

	"github.com/Domenick1991/skyward/internal/domain"
	"github.com/Domenick1991/skyward/internal/kafka"
	"github.com/Domenick1991/skyward/pkg/logger"
)

// Publisher is satisfied by kafka.Producer.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

// KafkaNotifier hands confirmations to the notification worker through the
// notifications topic.
type KafkaNotifier struct {
	producer Publisher
	topic    string
}

func NewKafkaNotifier(producer Publisher, topic string) *KafkaNotifier {
	return &KafkaNotifier{producer: producer, topic: topic}
}

func (n *KafkaNotifier) SendConfirmation(ctx context.Context, booking *domain.Booking) error {
	event := kafka.ConfirmationEvent{
		BookingID:        booking.ID,
		UserID:           booking.UserID,
		FlightID:         booking.FlightID,
		Email:            booking.Email,
		FullName:         booking.FullName,
		ConfirmationCode: booking.ConfirmationCode,
		PaymentStatus:    string(booking.PaymentStatus),
		CreatedAt:        booking.CreatedAt,
	}
	return n.producer.Publish(ctx, n.topic, booking.ID, event)
}

// LogNotifier just records the confirmation. Used when no broker is
// configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) SendConfirmation(_ context.Context, booking *domain.Booking) error {
	logger.Info("booking confirmed",
		"booking_id", booking.ID,
		"email", booking.Email,
		"confirmation_code", booking.ConfirmationCode)
	return nil
}
