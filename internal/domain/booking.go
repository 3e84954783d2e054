package domain

import (
	"crypto/rand"
	"regexp"
	"time"
)

type PaymentMethod string

const (
	PaymentMethodOnline  PaymentMethod = "online"
	PaymentMethodOffline PaymentMethod = "offline"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

type Booking struct {
	ID               string        `json:"id"`
	UserID           string        `json:"userId"`
	FlightID         string        `json:"flightId"`
	FullName         string        `json:"fullName"`
	Email            string        `json:"email"`
	Phone            string        `json:"phone"`
	DepartureCity    string        `json:"departureCity"`
	DestinationCity  string        `json:"destinationCity"`
	TravelDate       string        `json:"travelDate"`
	Passengers       int           `json:"passengers"`
	PaymentMethod    PaymentMethod `json:"paymentMethod"`
	PaymentStatus    PaymentStatus `json:"paymentStatus"`
	ConfirmationCode string        `json:"confirmationCode"`
	CreatedAt        time.Time     `json:"createdAt"`
}

const confirmationAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var confirmationCodePattern = regexp.MustCompile(`^SKY[A-Z0-9]{6}$`)

// NewConfirmationCode returns a booking reference of the form
// SKY followed by 6 uppercase alphanumeric characters.
func NewConfirmationCode() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	for i, b := range buf {
		buf[i] = confirmationAlphabet[int(b)%len(confirmationAlphabet)]
	}
	return "SKY" + string(buf)
}

func ValidConfirmationCode(code string) bool {
	return confirmationCodePattern.MatchString(code)
}
