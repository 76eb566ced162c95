package usecase_test

import (
	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

func newTestMetrics() *metrics.Metrics {
	return metrics.NewMetricsWith(prometheus.NewRegistry(), "test")
}

// flight6E213 is a DEL departure with two PNRs, one of them shared by two passengers
func flight6E213(status entity.FlightStatus) *entity.Flight {
	return &entity.Flight{
		ID:          "65f000000000000000000001",
		AirportCode: "DEL",
		FlightID:    "6E-213",
		Airline:     "IndiGo",
		Source:      "DEL",
		Destination: "BOM",
		DepTime:     "10:00",
		ArrivalTime: "12:10",
		Status:      status,
		Passengers: []entity.Passenger{
			{PassengerID: "P1", PNR: "ABC123", Name: "Aarav Sharma", Email: "aarav@example.com"},
			{PassengerID: "P2", PNR: "ABC123", Name: "Isha Sharma", Phone: "+919800000002"},
			{PassengerID: "P3", PNR: "XYZ789", Name: "Diya Patel", Email: "diya@example.com", Phone: "+919800000001"},
		},
	}
}
