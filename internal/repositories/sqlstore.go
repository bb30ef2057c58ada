package repositories

import (
	"database/sql"

	"railbook/internal/store"
)

// NewStore wires the MySQL repositories into the shared store contract.
func NewStore(db *sql.DB) store.Store {
	return store.Store{
		Stations:     StationRepo{DB: db},
		Trains:       TrainRepo{DB: db},
		Availability: AvailabilityRepo{DB: db},
		Bookings:     BookingRepo{DB: db},
		Payments:     PaymentRepo{DB: db},
	}
}
