// Package memstore is the in-memory storage backend used in demo/test mode
// (STORE_DRIVER=memory). It exposes the same contract as the MySQL layer.
package memstore

import (
	"sort"
	"strings"
	"sync"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/store"
)

// New returns a fully wired in-memory store.
func New() store.Store {
	return store.Store{
		Stations:     &stationStore{},
		Trains:       &trainStore{},
		Availability: &availabilityStore{rows: map[models.AvailabilityKey]*models.SeatAvailability{}},
		Bookings:     &bookingStore{byPNR: map[string]*models.Booking{}},
		Payments:     &paymentStore{byPNR: map[string]models.Payment{}},
	}
}

type stationStore struct {
	mu       sync.RWMutex
	stations []models.Station
}

func (s *stationStore) Search(query string, limit int) ([]models.Station, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	out := []models.Station{}
	for _, st := range s.stations {
		if len(out) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(st.Name), q) ||
			strings.Contains(strings.ToLower(st.Code), q) ||
			strings.Contains(strings.ToLower(st.City), q) {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s *stationStore) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.stations), nil
}

func (s *stationStore) InsertMany(stations []models.Station) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stations = append(s.stations, stations...)
	return nil
}

type trainStore struct {
	mu     sync.RWMutex
	trains []models.Train
}

func (s *trainStore) GetByNumber(number string) (models.Train, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.trains {
		if t.Number == number {
			return t, nil
		}
	}
	return models.Train{}, domain.NotFoundError{Resource: "train"}
}

func (s *trainStore) List() ([]models.Train, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Train, len(s.trains))
	copy(out, s.trains)
	return out, nil
}

func (s *trainStore) InsertMany(trains []models.Train) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trains = append(s.trains, trains...)
	return nil
}

type availabilityStore struct {
	mu   sync.Mutex
	rows map[models.AvailabilityKey]*models.SeatAvailability
}

func (s *availabilityStore) Get(key models.AvailabilityKey) (models.SeatAvailability, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[key]
	if !ok {
		return models.SeatAvailability{}, domain.NotFoundError{Resource: "seat availability"}
	}
	return *row, nil
}

func (s *availabilityStore) EnsureRow(row models.SeatAvailability) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := row.Key()
	if _, ok := s.rows[key]; ok {
		return nil
	}
	copied := row
	s.rows[key] = &copied
	return nil
}

func (s *availabilityStore) Reserve(key models.AvailabilityKey, seats int) error {
	if seats <= 0 {
		return domain.ValidationError{Field: "seats", Msg: "must be positive"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[key]
	if !ok {
		return domain.NotFoundError{Resource: "seat availability"}
	}
	if row.AvailableSeats < seats {
		return domain.InsufficientSeatsError{
			TrainNumber: key.TrainNumber,
			ClassCode:   key.ClassCode,
			Requested:   seats,
			Available:   row.AvailableSeats,
		}
	}
	row.AvailableSeats -= seats
	row.BookedSeats += seats
	return nil
}

func (s *availabilityStore) Release(key models.AvailabilityKey, seats int) error {
	if seats <= 0 {
		return domain.ValidationError{Field: "seats", Msg: "must be positive"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[key]
	if !ok {
		return domain.NotFoundError{Resource: "seat availability"}
	}
	if seats > row.BookedSeats {
		seats = row.BookedSeats
	}
	row.AvailableSeats += seats
	row.BookedSeats -= seats
	return nil
}

func (s *availabilityStore) JoinWaitlist(key models.AvailabilityKey, seats, limit int) (bool, error) {
	if seats <= 0 {
		return false, domain.ValidationError{Field: "seats", Msg: "must be positive"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[key]
	if !ok {
		return false, domain.NotFoundError{Resource: "seat availability"}
	}
	if row.WaitingList+seats > limit {
		return false, nil
	}
	row.WaitingList += seats
	return true, nil
}

func (s *availabilityStore) AddWaiting(key models.AvailabilityKey, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[key]
	if !ok {
		return domain.NotFoundError{Resource: "seat availability"}
	}
	row.WaitingList += delta
	if row.WaitingList < 0 {
		row.WaitingList = 0
	}
	return nil
}

type bookingStore struct {
	mu    sync.RWMutex
	byPNR map[string]*models.Booking
}

func (s *bookingStore) Insert(b models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byPNR[b.PNR]; ok {
		return domain.ConflictError{Resource: "booking", Msg: "pnr already exists"}
	}
	copied := b
	copied.Passengers = append([]models.Passenger(nil), b.Passengers...)
	s.byPNR[b.PNR] = &copied
	return nil
}

func (s *bookingStore) GetByPNR(pnr string) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.byPNR[pnr]
	if !ok {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	out := *b
	out.Passengers = append([]models.Passenger(nil), b.Passengers...)
	return out, nil
}

func (s *bookingStore) TransitionStatus(pnr, from, to string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.byPNR[pnr]
	if !ok {
		return false, domain.NotFoundError{Resource: "booking"}
	}
	if b.Status != from {
		return false, nil
	}
	b.Status = to
	return true, nil
}

func (s *bookingStore) UpdatePaymentStatus(pnr, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.byPNR[pnr]
	if !ok {
		return domain.NotFoundError{Resource: "booking"}
	}
	b.PaymentStatus = status
	return nil
}

func (s *bookingStore) ListWaitlisted(key models.AvailabilityKey) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Booking{}
	for _, b := range s.byPNR {
		if b.Status == models.BookingWaitlisted && b.AvailabilityKey() == key {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BookingDate.Before(out[j].BookingDate) })
	return out, nil
}

func (s *bookingStore) ListPendingPayments() ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Booking{}
	for _, b := range s.byPNR {
		if b.PaymentStatus == models.PaymentPending && b.Status == models.BookingConfirmed {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BookingDate.Before(out[j].BookingDate) })
	return out, nil
}

type paymentStore struct {
	mu    sync.RWMutex
	byPNR map[string]models.Payment
}

func (s *paymentStore) Insert(p models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byPNR[p.PNR]; ok {
		return domain.ConflictError{Resource: "payment", Msg: "already settled"}
	}
	s.byPNR[p.PNR] = p
	return nil
}

func (s *paymentStore) GetByPNR(pnr string) (models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byPNR[pnr]
	if !ok {
		return models.Payment{}, domain.NotFoundError{Resource: "payment"}
	}
	return p, nil
}
