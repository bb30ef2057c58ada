package services

import (
	"context"
	"math/rand"
	"time"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/store"
	"railbook/internal/utils"
)

// PaymentService simulates asynchronous settlement: after a fixed delay a
// booking's payment resolves to SUCCESS with SuccessRate probability,
// otherwise FAILED. Each settlement writes one immutable payment record.
type PaymentService struct {
	Store       store.Store
	Delay       time.Duration
	Timeout     time.Duration
	SuccessRate float64
	Rand        func() float64

	// Compensate runs after a FAILED settlement so reserved seats do not
	// stay lost. Wired to BookingService.CompensateFailedPayment.
	Compensate func(b models.Booking, requestID string) error
}

func (s *PaymentService) successRate() float64 {
	if s.SuccessRate > 0 {
		return s.SuccessRate
	}
	return 0.9
}

func (s *PaymentService) timeout() time.Duration {
	if s.Timeout > 0 {
		return s.Timeout
	}
	return 30 * time.Second
}

func (s *PaymentService) roll() float64 {
	if s.Rand != nil {
		return s.Rand()
	}
	return rand.Float64()
}

// Enqueue detaches settlement from the request; the caller gets PENDING
// back immediately.
func (s *PaymentService) Enqueue(booking models.Booking, requestID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout())
		defer cancel()
		if err := s.Settle(ctx, booking, requestID); err != nil {
			utils.LogEvent(requestID, "payment", "settle", "pnr="+booking.PNR+" error: "+err.Error())
		}
	}()
}

// Settle performs one settlement synchronously. A payment record that
// already exists means another worker settled this booking first; that is
// not an error (at-most-once per booking). Bookings that left CONFIRMED
// during the delay are skipped: there is nothing to collect for a
// cancelled booking and its seats are already back in the pool.
func (s *PaymentService) Settle(ctx context.Context, booking models.Booking, requestID string) error {
	if s.Delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.Delay):
		}
	}

	current, err := s.Store.Bookings.GetByPNR(booking.PNR)
	if err != nil {
		return err
	}
	if current.Status != models.BookingConfirmed {
		utils.LogEvent(requestID, "payment", "settle", "pnr="+booking.PNR+" skipped, status="+current.Status)
		return nil
	}

	success := s.roll() < s.successRate()
	status := models.PaymentSuccess
	if !success {
		status = models.PaymentFailed
	}

	payment := models.Payment{
		PNR:           booking.PNR,
		Amount:        booking.TotalFare,
		PaymentMethod: booking.PaymentMethod,
		TransactionID: utils.GenerateTransactionID(),
		Status:        status,
		ProcessedAt:   time.Now(),
	}
	if err := s.Store.Payments.Insert(payment); err != nil {
		if domain.IsConflict(err) {
			return nil
		}
		return err
	}
	if err := s.Store.Bookings.UpdatePaymentStatus(booking.PNR, status); err != nil {
		return err
	}
	utils.LogEvent(requestID, "payment", "settle", "pnr="+booking.PNR+" status="+status)

	if !success && s.Compensate != nil {
		return s.Compensate(booking, requestID)
	}
	return nil
}

// RecoverPending re-enqueues settlement for bookings that were still
// PENDING when the process last stopped.
func (s *PaymentService) RecoverPending() error {
	pending, err := s.Store.Bookings.ListPendingPayments()
	if err != nil {
		return err
	}
	for _, booking := range pending {
		s.Enqueue(booking, "")
	}
	if len(pending) > 0 {
		utils.LogEvent("", "payment", "recover", "re-enqueued pending settlements")
	}
	return nil
}
