package models

import "time"

const (
	BookingConfirmed  = "CONFIRMED"
	BookingWaitlisted = "WAITLISTED"
	BookingCancelled  = "CANCELLED"

	PaymentPending = "PENDING"
	PaymentSuccess = "SUCCESS"
	PaymentFailed  = "FAILED"
)

// Passenger is a value object owned by its parent booking.
type Passenger struct {
	Name            string `json:"name"`
	Age             int    `json:"age"`
	Gender          string `json:"gender"`
	BerthPreference string `json:"berth_preference,omitempty"`
	IDType          string `json:"id_type"`
	IDNumber        string `json:"id_number"`
}

// Booking is a ledger record keyed by PNR.
type Booking struct {
	PNR                string      `json:"pnr"`
	TicketNumber       string      `json:"ticket_number"`
	TrainNumber        string      `json:"train_number"`
	TrainName          string      `json:"train_name"`
	SourceStation      string      `json:"source_station"`
	DestinationStation string      `json:"destination_station"`
	JourneyDate        string      `json:"journey_date"` // YYYY-MM-DD
	ClassCode          string      `json:"class_code"`
	ClassName          string      `json:"class_name"`
	Passengers         []Passenger `json:"passengers"`
	TotalFare          float64     `json:"total_fare"`
	FarePerPassenger   float64     `json:"fare_per_passenger"`
	BookingDate        time.Time   `json:"booking_date"`
	Status             string      `json:"status"`
	PaymentStatus      string      `json:"payment_status"`
	PaymentMethod      string      `json:"payment_method"`
	DepartureTime      string      `json:"departure_time"`
	ArrivalTime        string      `json:"arrival_time"`
	Distance           float64     `json:"distance"`
}

func (b Booking) AvailabilityKey() AvailabilityKey {
	return AvailabilityKey{TrainNumber: b.TrainNumber, JourneyDate: b.JourneyDate, ClassCode: b.ClassCode}
}
