package catalog

import (
	"time"

	"github.com/Domenick1991/skyward/internal/domain"
)

// SampleFlights is the built-in catalog served when no database backend is
// configured. Timestamps are local wall-clock times at the airports.
func SampleFlights() []domain.Flight {
	return []domain.Flight{
		{
			ID:              "1",
			Airline:         "Skyward Airlines",
			FlightNumber:    "SA101",
			DepartureCity:   "New York",
			DestinationCity: "London",
			DepartureTime:   time.Date(2025, 6, 10, 8, 0, 0, 0, time.Local),
			ArrivalTime:     time.Date(2025, 6, 10, 20, 0, 0, 0, time.Local),
			Price:           450,
			Seats:           120,
		},
		{
			ID:              "2",
			Airline:         "Skyward Airlines",
			FlightNumber:    "SA205",
			DepartureCity:   "Los Angeles",
			DestinationCity: "Tokyo",
			DepartureTime:   time.Date(2025, 6, 12, 10, 30, 0, 0, time.Local),
			ArrivalTime:     time.Date(2025, 6, 13, 14, 30, 0, 0, time.Local),
			Price:           850,
			Seats:           200,
		},
		{
			ID:              "3",
			Airline:         "Skyward Express",
			FlightNumber:    "SE311",
			DepartureCity:   "Chicago",
			DestinationCity: "Paris",
			DepartureTime:   time.Date(2025, 6, 15, 14, 15, 0, 0, time.Local),
			ArrivalTime:     time.Date(2025, 6, 16, 7, 45, 0, 0, time.Local),
			Price:           620,
			Seats:           150,
		},
		{
			ID:              "4",
			Airline:         "Skyward Express",
			FlightNumber:    "SE422",
			DepartureCity:   "Miami",
			DestinationCity: "Barcelona",
			DepartureTime:   time.Date(2025, 6, 18, 9, 20, 0, 0, time.Local),
			ArrivalTime:     time.Date(2025, 6, 18, 23, 50, 0, 0, time.Local),
			Price:           580,
			Seats:           180,
		},
		{
			ID:              "5",
			Airline:         "Skyward Connect",
			FlightNumber:    "SC505",
			DepartureCity:   "Boston",
			DestinationCity: "Rome",
			DepartureTime:   time.Date(2025, 6, 20, 11, 45, 0, 0, time.Local),
			ArrivalTime:     time.Date(2025, 6, 21, 3, 30, 0, 0, time.Local),
			Price:           670,
			Seats:           140,
		},
		{
			ID:              "6",
			Airline:         "Skyward Connect",
			FlightNumber:    "SC610",
			DepartureCity:   "Seattle",
			DestinationCity: "Sydney",
			DepartureTime:   time.Date(2025, 6, 22, 16, 10, 0, 0, time.Local),
			ArrivalTime:     time.Date(2025, 6, 24, 6, 45, 0, 0, time.Local),
			Price:           920,
			Seats:           220,
		},
	}
}
