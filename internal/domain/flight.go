package domain

import "time"

type Flight struct {
	ID              string    `json:"id"`
	Airline         string    `json:"airline"`
	FlightNumber    string    `json:"flightNumber"`
	DepartureCity   string    `json:"departureCity"`
	DestinationCity string    `json:"destinationCity"`
	DepartureTime   time.Time `json:"departureTime"`
	ArrivalTime     time.Time `json:"arrivalTime"`
	Price           int64     `json:"price"`
	Seats           int       `json:"seats"`
}

// Duration is the scheduled flight time, taken from the flight's own
// timestamps without any timezone conversion.
func (f Flight) Duration() time.Duration {
	return f.ArrivalTime.Sub(f.DepartureTime)
}
