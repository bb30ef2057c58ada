package models

// SeatAvailability is the per (train, journey date, class) seat counter row.
// Invariant: AvailableSeats + BookedSeats == TotalSeats and
// AvailableSeats >= 0, at all times.
type SeatAvailability struct {
	TrainNumber    string `json:"train_number"`
	JourneyDate    string `json:"journey_date"` // YYYY-MM-DD
	ClassCode      string `json:"class_code"`
	TotalSeats     int    `json:"total_seats"`
	AvailableSeats int    `json:"available_seats"`
	BookedSeats    int    `json:"booked_seats"`
	WaitingList    int    `json:"waiting_list"`
}

// AvailabilityKey identifies one seat counter row.
type AvailabilityKey struct {
	TrainNumber string
	JourneyDate string
	ClassCode   string
}

func (a SeatAvailability) Key() AvailabilityKey {
	return AvailabilityKey{TrainNumber: a.TrainNumber, JourneyDate: a.JourneyDate, ClassCode: a.ClassCode}
}
