package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/skyward/internal/kafka"
)

// Sender simulates the outbound confirmation email. There is no real mail
// transport behind it.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.ConfirmationEvent) error {
	fmt.Printf("send email to %s with confirmation code %s for flight %s\n", event.Email, event.ConfirmationCode, event.FlightID)
	return nil
}
