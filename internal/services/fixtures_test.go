package services

import (
	"testing"

	"railbook/internal/domain/models"
	"railbook/internal/memstore"
	"railbook/internal/store"
)

const (
	fixtureDate  = "2026-09-10"
	fixtureTrain = "12301"
)

var allDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// newFixtureStore seeds an in-memory store with one train on the
// NDLS -> CNB -> MGS -> HWH route and availability for fixtureDate.
// seats3A controls how many 3A seats are open.
func newFixtureStore(t *testing.T, seats3A int) store.Store {
	t.Helper()
	st := memstore.New()

	err := st.Stations.InsertMany([]models.Station{
		{Code: "NDLS", Name: "New Delhi", City: "Delhi", State: "Delhi", Zone: "NR"},
		{Code: "CNB", Name: "Kanpur Central", City: "Kanpur", State: "Uttar Pradesh", Zone: "NCR"},
		{Code: "MGS", Name: "Mughal Sarai", City: "Mughal Sarai", State: "Uttar Pradesh", Zone: "ECR"},
		{Code: "HWH", Name: "Howrah Junction", City: "Kolkata", State: "West Bengal", Zone: "ER"},
	})
	if err != nil {
		t.Fatalf("station seed failed: %v", err)
	}

	err = st.Trains.InsertMany([]models.Train{{
		Number:             fixtureTrain,
		Name:               "Rajdhani Express",
		Type:               "Rajdhani",
		SourceStation:      "NDLS",
		DestinationStation: "HWH",
		Schedule: []models.TrainStop{
			{StationCode: "NDLS", StationName: "New Delhi", DepartureTime: "16:55", Distance: 0, Day: 1},
			{StationCode: "CNB", StationName: "Kanpur Central", ArrivalTime: "21:40", DepartureTime: "21:45", HaltTime: 5, Distance: 440, Day: 1},
			{StationCode: "MGS", StationName: "Mughal Sarai", ArrivalTime: "01:07", DepartureTime: "01:12", HaltTime: 5, Distance: 786, Day: 2},
			{StationCode: "HWH", StationName: "Howrah Junction", ArrivalTime: "09:55", Distance: 1530, Day: 2},
		},
		Classes: map[string]models.TrainClass{
			"3A": {Seats: seats3A, FarePerKM: 2.0, Name: "AC 3 Tier"},
			"SL": {Seats: 10, FarePerKM: 0.8, Name: "Sleeper"},
		},
		RunsOn:   allDays,
		Distance: 1530,
	}})
	if err != nil {
		t.Fatalf("train seed failed: %v", err)
	}

	for class, seats := range map[string]int{"3A": seats3A, "SL": 10} {
		err := st.Availability.EnsureRow(models.SeatAvailability{
			TrainNumber:    fixtureTrain,
			JourneyDate:    fixtureDate,
			ClassCode:      class,
			TotalSeats:     seats,
			AvailableSeats: seats,
		})
		if err != nil {
			t.Fatalf("availability seed failed: %v", err)
		}
	}
	return st
}

func fixtureRequest(passengers int) CreateBookingRequest {
	pax := make([]models.Passenger, passengers)
	for i := range pax {
		pax[i] = models.Passenger{Name: "Passenger", Age: 30, Gender: "F"}
	}
	return CreateBookingRequest{
		TrainNumber:        fixtureTrain,
		SourceStation:      "NDLS",
		DestinationStation: "HWH",
		JourneyDate:        fixtureDate,
		ClassCode:          "3A",
		Passengers:         pax,
		PaymentMethod:      "upi",
	}
}

func fixtureKey() models.AvailabilityKey {
	return models.AvailabilityKey{TrainNumber: fixtureTrain, JourneyDate: fixtureDate, ClassCode: "3A"}
}
