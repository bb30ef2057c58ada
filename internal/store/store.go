// Package store defines the persistence contract shared by the MySQL and
// in-memory backends. Handlers and services only ever see these interfaces.
package store

import "railbook/internal/domain/models"

type StationStore interface {
	// Search matches query case-insensitively against name, code and city.
	Search(query string, limit int) ([]models.Station, error)
	Count() (int, error)
	InsertMany(stations []models.Station) error
}

type TrainStore interface {
	GetByNumber(number string) (models.Train, error)
	List() ([]models.Train, error)
	InsertMany(trains []models.Train) error
}

type AvailabilityStore interface {
	Get(key models.AvailabilityKey) (models.SeatAvailability, error)

	// EnsureRow creates the counter row if missing; existing rows are left
	// untouched so re-running initialization never resets live counters.
	EnsureRow(row models.SeatAvailability) error

	// Reserve atomically moves seats from available to booked. It fails
	// with domain.InsufficientSeatsError and no mutation when fewer than
	// seats are available.
	Reserve(key models.AvailabilityKey, seats int) error

	// Release is the inverse of Reserve, used by cancellation and payment
	// compensation. Counters are clamped at their bounds.
	Release(key models.AvailabilityKey, seats int) error

	// JoinWaitlist atomically increments waiting_list by seats unless the
	// result would exceed limit; it reports whether the increment happened.
	JoinWaitlist(key models.AvailabilityKey, seats, limit int) (bool, error)

	// AddWaiting adjusts the waiting_list counter, clamped at zero. Used
	// for decrements (promotion, cancellation, rollback).
	AddWaiting(key models.AvailabilityKey, delta int) error
}

type BookingStore interface {
	// Insert fails with domain.ConflictError when the PNR already exists.
	Insert(b models.Booking) error
	GetByPNR(pnr string) (models.Booking, error)

	// TransitionStatus flips status from one value to another atomically
	// and reports whether the flip happened. Callers gate seat releases on
	// the result so a booking's seats are given back exactly once.
	TransitionStatus(pnr, from, to string) (bool, error)

	UpdatePaymentStatus(pnr, status string) error

	// ListWaitlisted returns WAITLISTED bookings for a key in booking-date
	// order (promotion is FIFO).
	ListWaitlisted(key models.AvailabilityKey) ([]models.Booking, error)

	// ListPendingPayments backs the settlement recovery sweep at startup.
	ListPendingPayments() ([]models.Booking, error)
}

type PaymentStore interface {
	Insert(p models.Payment) error
	GetByPNR(pnr string) (models.Payment, error)
}

// Store aggregates the per-collection interfaces.
type Store struct {
	Stations     StationStore
	Trains       TrainStore
	Availability AvailabilityStore
	Bookings     BookingStore
	Payments     PaymentStore
}
