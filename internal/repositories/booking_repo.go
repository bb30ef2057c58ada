package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"

	intconfig "railbook/internal/config"
	"railbook/internal/domain"
	"railbook/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

type BookingRepo struct {
	DB *sql.DB
}

func (r BookingRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `pnr, ticket_number, train_number, train_name, source_station, destination_station,
		journey_date, class_code, class_name, passengers, total_fare, fare_per_passenger,
		booking_date, status, payment_status, payment_method, departure_time, arrival_time, distance`

func (r BookingRepo) Insert(b models.Booking) error {
	passengers, err := json.Marshal(b.Passengers)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	_, err = r.db().Exec(`
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.PNR, b.TicketNumber, b.TrainNumber, b.TrainName, b.SourceStation, b.DestinationStation,
		b.JourneyDate, b.ClassCode, b.ClassName, string(passengers), b.TotalFare, b.FarePerPassenger,
		b.BookingDate, b.Status, b.PaymentStatus, b.PaymentMethod, b.DepartureTime, b.ArrivalTime, b.Distance)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return domain.ConflictError{Resource: "booking", Msg: "pnr already exists", Err: err}
		}
		return domain.InternalError{Err: err}
	}
	return nil
}

func (r BookingRepo) GetByPNR(pnr string) (models.Booking, error) {
	row := r.db().QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE pnr = ? LIMIT 1`, pnr)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return b, err
}

// TransitionStatus is a compare-and-set on the status column. Zero
// affected rows means the booking either does not exist or already left
// the from status; the lookup distinguishes the two.
func (r BookingRepo) TransitionStatus(pnr, from, to string) (bool, error) {
	res, err := r.db().Exec(`UPDATE bookings SET status = ? WHERE pnr = ? AND status = ?`, to, pnr, from)
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	if affected > 0 {
		return true, nil
	}
	if _, err := r.GetByPNR(pnr); err != nil {
		return false, err
	}
	return false, nil
}

func (r BookingRepo) UpdatePaymentStatus(pnr, status string) error {
	return r.updateField(`UPDATE bookings SET payment_status = ? WHERE pnr = ?`, status, pnr)
}

func (r BookingRepo) updateField(query, value, pnr string) error {
	res, err := r.db().Exec(query, value, pnr)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if affected == 0 {
		if _, err := r.GetByPNR(pnr); err != nil {
			return err
		}
	}
	return nil
}

func (r BookingRepo) ListWaitlisted(key models.AvailabilityKey) ([]models.Booking, error) {
	return r.list(`
		SELECT `+bookingColumns+` FROM bookings
		WHERE status = ? AND train_number = ? AND journey_date = ? AND class_code = ?
		ORDER BY booking_date ASC`,
		models.BookingWaitlisted, key.TrainNumber, key.JourneyDate, key.ClassCode)
}

func (r BookingRepo) ListPendingPayments() ([]models.Booking, error) {
	return r.list(`
		SELECT `+bookingColumns+` FROM bookings
		WHERE payment_status = ? AND status = ?
		ORDER BY booking_date ASC`,
		models.PaymentPending, models.BookingConfirmed)
}

func (r BookingRepo) list(query string, args ...any) ([]models.Booking, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var b models.Booking
	var passengers string
	err := row.Scan(&b.PNR, &b.TicketNumber, &b.TrainNumber, &b.TrainName,
		&b.SourceStation, &b.DestinationStation, &b.JourneyDate, &b.ClassCode, &b.ClassName,
		&passengers, &b.TotalFare, &b.FarePerPassenger, &b.BookingDate,
		&b.Status, &b.PaymentStatus, &b.PaymentMethod, &b.DepartureTime, &b.ArrivalTime, &b.Distance)
	if err != nil {
		return models.Booking{}, err
	}
	if err := json.Unmarshal([]byte(passengers), &b.Passengers); err != nil {
		return models.Booking{}, domain.InternalError{Msg: "corrupt passenger list", Err: err}
	}
	return b, nil
}
