package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"railbook/internal/domain/models"
)

func TestSettleSuccess(t *testing.T) {
	st := newFixtureStore(t, 4)
	bookings := BookingService{Store: st}
	booking, err := bookings.Create(fixtureRequest(1))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	payments := &PaymentService{Store: st, Rand: func() float64 { return 0.0 }}
	if err := payments.Settle(context.Background(), booking, ""); err != nil {
		t.Fatalf("settle failed: %v", err)
	}

	payment, err := st.Payments.GetByPNR(booking.PNR)
	if err != nil {
		t.Fatalf("payment lookup failed: %v", err)
	}
	if payment.Status != models.PaymentSuccess {
		t.Fatalf("payment status = %q, want SUCCESS", payment.Status)
	}
	if !strings.HasPrefix(payment.TransactionID, "TXN-") {
		t.Fatalf("transaction id = %q", payment.TransactionID)
	}
	if payment.Amount != booking.TotalFare {
		t.Fatalf("amount = %v, want %v", payment.Amount, booking.TotalFare)
	}

	stored, _ := st.Bookings.GetByPNR(booking.PNR)
	if stored.PaymentStatus != models.PaymentSuccess {
		t.Fatalf("booking payment status = %q, want SUCCESS", stored.PaymentStatus)
	}
	if stored.Status != models.BookingConfirmed {
		t.Fatalf("booking status = %q, want CONFIRMED", stored.Status)
	}
}

func TestSettleFailureCompensates(t *testing.T) {
	st := newFixtureStore(t, 2)
	bookings := BookingService{Store: st}
	booking, err := bookings.Create(fixtureRequest(2))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	payments := &PaymentService{Store: st, Rand: func() float64 { return 0.99 }}
	payments.Compensate = bookings.CompensateFailedPayment
	if err := payments.Settle(context.Background(), booking, ""); err != nil {
		t.Fatalf("settle failed: %v", err)
	}

	payment, _ := st.Payments.GetByPNR(booking.PNR)
	if payment.Status != models.PaymentFailed {
		t.Fatalf("payment status = %q, want FAILED", payment.Status)
	}
	stored, _ := st.Bookings.GetByPNR(booking.PNR)
	if stored.Status != models.BookingCancelled {
		t.Fatalf("booking status = %q, want CANCELLED after failed payment", stored.Status)
	}
	avail, _ := st.Availability.Get(fixtureKey())
	if avail.AvailableSeats != 2 || avail.BookedSeats != 0 {
		t.Fatalf("seats not released: %+v", avail)
	}
}

func TestSettleAtMostOncePerBooking(t *testing.T) {
	st := newFixtureStore(t, 4)
	bookings := BookingService{Store: st}
	booking, err := bookings.Create(fixtureRequest(1))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	err = st.Payments.Insert(models.Payment{
		PNR:           booking.PNR,
		TransactionID: "TXN-first",
		Status:        models.PaymentSuccess,
		ProcessedAt:   time.Now(),
	})
	if err != nil {
		t.Fatalf("seed payment failed: %v", err)
	}

	compensated := false
	payments := &PaymentService{
		Store:      st,
		Rand:       func() float64 { return 0.99 },
		Compensate: func(models.Booking, string) error { compensated = true; return nil },
	}
	if err := payments.Settle(context.Background(), booking, ""); err != nil {
		t.Fatalf("second settle errored: %v", err)
	}

	payment, _ := st.Payments.GetByPNR(booking.PNR)
	if payment.TransactionID != "TXN-first" {
		t.Fatalf("original settlement overwritten: %+v", payment)
	}
	if compensated {
		t.Fatal("compensation ran for an already settled booking")
	}
}

func TestSettleAfterCancelReleasesSeatsOnce(t *testing.T) {
	st := newFixtureStore(t, 4)
	bookings := BookingService{Store: st}

	bookingA, err := bookings.Create(fixtureRequest(2))
	if err != nil {
		t.Fatalf("booking A failed: %v", err)
	}
	bookingB, err := bookings.Create(fixtureRequest(2))
	if err != nil {
		t.Fatalf("booking B failed: %v", err)
	}

	// A is cancelled while its settlement is still in flight; the forced
	// FAILED outcome must not release A's seats again.
	if _, err := bookings.Cancel(bookingA.PNR); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	payments := &PaymentService{Store: st, Rand: func() float64 { return 0.99 }}
	payments.Compensate = bookings.CompensateFailedPayment
	if err := payments.Settle(context.Background(), bookingA, ""); err != nil {
		t.Fatalf("settle errored: %v", err)
	}

	avail, _ := st.Availability.Get(fixtureKey())
	if avail.AvailableSeats != 2 || avail.BookedSeats != 2 {
		t.Fatalf("double release: %+v while %s still holds 2 seats", avail, bookingB.PNR)
	}
	if _, err := st.Payments.GetByPNR(bookingA.PNR); err == nil {
		t.Fatal("payment recorded for a cancelled booking")
	}
	stored, _ := st.Bookings.GetByPNR(bookingB.PNR)
	if stored.Status != models.BookingConfirmed {
		t.Fatalf("booking B status = %q, want CONFIRMED", stored.Status)
	}
}

func TestSettleRespectsContext(t *testing.T) {
	st := newFixtureStore(t, 4)
	bookings := BookingService{Store: st}
	booking, err := bookings.Create(fixtureRequest(1))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	payments := &PaymentService{Store: st, Delay: time.Hour}
	if err := payments.Settle(ctx, booking, ""); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := st.Payments.GetByPNR(booking.PNR); err == nil {
		t.Fatal("payment written despite cancelled context")
	}
}

func TestRecoverPendingSettlesBooking(t *testing.T) {
	st := newFixtureStore(t, 4)
	bookings := BookingService{Store: st}
	booking, err := bookings.Create(fixtureRequest(1))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	payments := &PaymentService{Store: st, Rand: func() float64 { return 0.0 }}
	if err := payments.RecoverPending(); err != nil {
		t.Fatalf("recover failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		stored, _ := st.Bookings.GetByPNR(booking.PNR)
		if stored.PaymentStatus == models.PaymentSuccess {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("booking still %q after recovery", stored.PaymentStatus)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
