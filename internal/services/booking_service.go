package services

import (
	"strings"
	"time"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/store"
	"railbook/internal/utils"
)

const (
	pnrInsertRetries   = 5
	defaultWaitlistCap = 20
)

// CreateBookingRequest is the validated booking payload.
type CreateBookingRequest struct {
	TrainNumber        string             `json:"train_number" binding:"required"`
	SourceStation      string             `json:"source_station" binding:"required"`
	DestinationStation string             `json:"destination_station" binding:"required"`
	JourneyDate        string             `json:"journey_date" binding:"required"`
	ClassCode          string             `json:"class_code" binding:"required"`
	Passengers         []models.Passenger `json:"passengers" binding:"required"`
	PaymentMethod      string             `json:"payment_method" binding:"required"`
	AcceptWaitlist     bool               `json:"accept_waitlist"`
}

// BookingStatus is a ledger record merged with its settlement info.
type BookingStatus struct {
	models.Booking
	TransactionID      string     `json:"transaction_id,omitempty"`
	PaymentProcessedAt *time.Time `json:"payment_processed_at,omitempty"`
}

// BookingService owns the booking ledger: creation, cancellation, PNR
// lookup and waitlist promotion.
type BookingService struct {
	Store       store.Store
	Payments    *PaymentService
	WaitlistCap int
	RequestID   string
}

func (s BookingService) waitlistCap() int {
	if s.WaitlistCap > 0 {
		return s.WaitlistCap
	}
	return defaultWaitlistCap
}

// Create runs the booking preconditions in order, reserves seats
// atomically, persists the booking and hands it to settlement. When the
// insert fails after seats were reserved, the reservation is rolled back.
func (s BookingService) Create(req CreateBookingRequest) (models.Booking, error) {
	if err := validateBookingRequest(&req); err != nil {
		return models.Booking{}, err
	}

	train, err := s.Store.Trains.GetByNumber(req.TrainNumber)
	if err != nil {
		return models.Booking{}, err
	}

	from, to, ok := train.Segment(req.SourceStation, req.DestinationStation)
	if !ok {
		return models.Booking{}, domain.InvalidRouteError{
			TrainNumber: train.Number,
			Source:      req.SourceStation,
			Destination: req.DestinationStation,
		}
	}

	classInfo, ok := train.Classes[req.ClassCode]
	if !ok {
		return models.Booking{}, domain.ValidationError{Field: "class_code", Msg: "train does not carry this class"}
	}

	key := models.AvailabilityKey{
		TrainNumber: req.TrainNumber,
		JourneyDate: req.JourneyDate,
		ClassCode:   req.ClassCode,
	}
	avail, err := s.Store.Availability.Get(key)
	if err != nil {
		return models.Booking{}, err
	}

	seats := len(req.Passengers)
	segmentDistance := to.Distance - from.Distance
	farePerPassenger := utils.CalculateFare(segmentDistance, req.ClassCode, classInfo.FarePerKM)

	arrival := to.ArrivalTime
	if arrival == "" {
		arrival = to.DepartureTime
	}
	booking := models.Booking{
		TrainNumber:        train.Number,
		TrainName:          train.Name,
		SourceStation:      req.SourceStation,
		DestinationStation: req.DestinationStation,
		JourneyDate:        req.JourneyDate,
		ClassCode:          req.ClassCode,
		ClassName:          classInfo.Name,
		Passengers:         req.Passengers,
		TotalFare:          utils.Round2(farePerPassenger * float64(seats)),
		FarePerPassenger:   farePerPassenger,
		BookingDate:        time.Now(),
		Status:             models.BookingConfirmed,
		PaymentStatus:      models.PaymentPending,
		PaymentMethod:      req.PaymentMethod,
		DepartureTime:      from.DepartureTime,
		ArrivalTime:        arrival,
		Distance:           segmentDistance,
	}

	if avail.AvailableSeats < seats {
		return s.tryWaitlist(booking, avail, seats, req.AcceptWaitlist)
	}
	if err := s.Store.Availability.Reserve(key, seats); err != nil {
		// A concurrent booking may have taken the seats after our
		// pre-check; the waitlist opt-in still applies.
		if domain.IsInsufficientSeats(err) {
			current, gerr := s.Store.Availability.Get(key)
			if gerr != nil {
				return models.Booking{}, gerr
			}
			return s.tryWaitlist(booking, current, seats, req.AcceptWaitlist)
		}
		return models.Booking{}, err
	}

	inserted, err := s.insertWithFreshCodes(booking)
	if err != nil {
		_ = s.Store.Availability.Release(key, seats)
		return models.Booking{}, err
	}

	if s.Payments != nil {
		s.Payments.Enqueue(inserted, s.RequestID)
	}
	utils.LogEvent(s.RequestID, "booking", "create", "pnr="+inserted.PNR+" train="+inserted.TrainNumber)
	return inserted, nil
}

// tryWaitlist records the booking as WAITLISTED when the caller opted in
// and the waitlist has room; otherwise the original insufficient-seats
// failure surfaces.
func (s BookingService) tryWaitlist(booking models.Booking, avail models.SeatAvailability, seats int, optIn bool) (models.Booking, error) {
	insufficient := domain.InsufficientSeatsError{
		TrainNumber: booking.TrainNumber,
		ClassCode:   booking.ClassCode,
		Requested:   seats,
		Available:   avail.AvailableSeats,
	}
	if !optIn {
		return models.Booking{}, insufficient
	}

	booking.Status = models.BookingWaitlisted
	joined, err := s.Store.Availability.JoinWaitlist(booking.AvailabilityKey(), seats, s.waitlistCap())
	if err != nil {
		return models.Booking{}, err
	}
	if !joined {
		return models.Booking{}, insufficient
	}
	inserted, err := s.insertWithFreshCodes(booking)
	if err != nil {
		_ = s.Store.Availability.AddWaiting(booking.AvailabilityKey(), -seats)
		return models.Booking{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "waitlist", "pnr="+inserted.PNR+" train="+inserted.TrainNumber)
	return inserted, nil
}

// insertWithFreshCodes retries the ledger insert with new PNR and ticket
// codes when the storage layer reports a collision.
func (s BookingService) insertWithFreshCodes(booking models.Booking) (models.Booking, error) {
	var lastErr error
	for attempt := 0; attempt < pnrInsertRetries; attempt++ {
		booking.PNR = utils.GeneratePNR()
		booking.TicketNumber = utils.GenerateTicketNumber()
		err := s.Store.Bookings.Insert(booking)
		if err == nil {
			return booking, nil
		}
		if !domain.IsConflict(err) {
			return models.Booking{}, err
		}
		lastErr = err
	}
	return models.Booking{}, domain.InternalError{Msg: "could not allocate a unique pnr", Err: lastErr}
}

// GetByPNR returns the ledger record merged with payment transaction
// details when settlement already ran.
func (s BookingService) GetByPNR(pnr string) (BookingStatus, error) {
	pnr = strings.TrimSpace(pnr)
	if pnr == "" {
		return BookingStatus{}, domain.ValidationError{Field: "pnr", Msg: "must not be empty"}
	}
	booking, err := s.Store.Bookings.GetByPNR(pnr)
	if err != nil {
		return BookingStatus{}, err
	}
	status := BookingStatus{Booking: booking}
	if payment, err := s.Store.Payments.GetByPNR(pnr); err == nil {
		status.TransactionID = payment.TransactionID
		processed := payment.ProcessedAt
		status.PaymentProcessedAt = &processed
	}
	return status, nil
}

// Cancel flips a booking to CANCELLED and gives its seats back. Confirmed
// seats go through Release and may promote waitlisted bookings; a
// waitlisted booking only shrinks the waiting counter. The status flip is
// a compare-and-set, so when two cancellations (or a cancellation and a
// failed-payment cleanup) race, only the winner returns the seats.
func (s BookingService) Cancel(pnr string) (models.Booking, error) {
	booking, err := s.Store.Bookings.GetByPNR(strings.TrimSpace(pnr))
	if err != nil {
		return models.Booking{}, err
	}
	if booking.Status == models.BookingCancelled {
		return models.Booking{}, domain.ConflictError{Resource: "booking", Msg: "already cancelled"}
	}

	changed, err := s.Store.Bookings.TransitionStatus(booking.PNR, booking.Status, models.BookingCancelled)
	if err != nil {
		return models.Booking{}, err
	}
	if !changed {
		return models.Booking{}, domain.ConflictError{Resource: "booking", Msg: "status changed concurrently"}
	}
	seats := len(booking.Passengers)
	key := booking.AvailabilityKey()
	switch booking.Status {
	case models.BookingWaitlisted:
		if err := s.Store.Availability.AddWaiting(key, -seats); err != nil {
			return models.Booking{}, err
		}
	default:
		if err := s.Store.Availability.Release(key, seats); err != nil {
			return models.Booking{}, err
		}
		s.PromoteWaitlist(key)
	}
	booking.Status = models.BookingCancelled
	utils.LogEvent(s.RequestID, "booking", "cancel", "pnr="+booking.PNR)
	return booking, nil
}

// CompensateFailedPayment releases the seats of a booking whose
// settlement failed and cancels it, then promotes the waitlist. When the
// booking already left CONFIRMED (a user cancellation during the
// settlement delay) its seats were returned by that path and nothing
// happens here.
func (s BookingService) CompensateFailedPayment(booking models.Booking, requestID string) error {
	changed, err := s.Store.Bookings.TransitionStatus(booking.PNR, models.BookingConfirmed, models.BookingCancelled)
	if err != nil {
		return err
	}
	if !changed {
		utils.LogEvent(requestID, "booking", "compensate", "pnr="+booking.PNR+" skipped, no longer confirmed")
		return nil
	}
	key := booking.AvailabilityKey()
	if err := s.Store.Availability.Release(key, len(booking.Passengers)); err != nil {
		return err
	}
	utils.LogEvent(requestID, "booking", "compensate", "pnr="+booking.PNR+" seats released")
	s.PromoteWaitlist(key)
	return nil
}

// PromoteWaitlist confirms waitlisted bookings in FIFO order for as long
// as released seats fit the head of the queue. Reservation goes through
// the same atomic decrement as direct bookings, so the seat invariants
// hold even when promotion races with new bookings.
func (s BookingService) PromoteWaitlist(key models.AvailabilityKey) {
	waiting, err := s.Store.Bookings.ListWaitlisted(key)
	if err != nil {
		utils.LogEvent(s.RequestID, "booking", "promote", "waitlist scan failed: "+err.Error())
		return
	}
	for _, candidate := range waiting {
		seats := len(candidate.Passengers)
		if err := s.Store.Availability.Reserve(key, seats); err != nil {
			return
		}
		promoted, err := s.Store.Bookings.TransitionStatus(candidate.PNR, models.BookingWaitlisted, models.BookingConfirmed)
		if err != nil {
			_ = s.Store.Availability.Release(key, seats)
			utils.LogEvent(s.RequestID, "booking", "promote", "status update failed: "+err.Error())
			return
		}
		if !promoted {
			// the candidate was cancelled while waiting; its waiting
			// counter share was already removed by that cancellation
			_ = s.Store.Availability.Release(key, seats)
			continue
		}
		_ = s.Store.Availability.AddWaiting(key, -seats)
		candidate.Status = models.BookingConfirmed
		if s.Payments != nil {
			s.Payments.Enqueue(candidate, s.RequestID)
		}
		utils.LogEvent(s.RequestID, "booking", "promote", "pnr="+candidate.PNR)
	}
}

func validateBookingRequest(req *CreateBookingRequest) error {
	req.TrainNumber = strings.TrimSpace(req.TrainNumber)
	req.SourceStation = strings.ToUpper(strings.TrimSpace(req.SourceStation))
	req.DestinationStation = strings.ToUpper(strings.TrimSpace(req.DestinationStation))
	req.JourneyDate = strings.TrimSpace(req.JourneyDate)
	req.ClassCode = strings.TrimSpace(req.ClassCode)
	req.PaymentMethod = strings.ToLower(strings.TrimSpace(req.PaymentMethod))

	if req.TrainNumber == "" {
		return domain.ValidationError{Field: "train_number", Msg: "must not be empty"}
	}
	if req.SourceStation == "" || req.DestinationStation == "" {
		return domain.ValidationError{Field: "source/destination", Msg: "must not be empty"}
	}
	if req.SourceStation == req.DestinationStation {
		return domain.ValidationError{Field: "destination_station", Msg: "must differ from source"}
	}
	if _, err := utils.ParseDate(req.JourneyDate); err != nil {
		return domain.ValidationError{Field: "journey_date", Msg: "must be YYYY-MM-DD", Err: err}
	}
	if req.ClassCode == "" {
		return domain.ValidationError{Field: "class_code", Msg: "must not be empty"}
	}
	if req.PaymentMethod == "" {
		return domain.ValidationError{Field: "payment_method", Msg: "must not be empty"}
	}
	if len(req.Passengers) == 0 {
		return domain.ValidationError{Field: "passengers", Msg: "must not be empty"}
	}
	for i, p := range req.Passengers {
		if strings.TrimSpace(p.Name) == "" {
			return domain.ValidationError{Field: "passengers", Msg: "name missing"}
		}
		if p.Age <= 0 || p.Age > 120 {
			return domain.ValidationError{Field: "passengers", Msg: "invalid age"}
		}
		req.Passengers[i].Name = strings.TrimSpace(p.Name)
	}
	return nil
}
