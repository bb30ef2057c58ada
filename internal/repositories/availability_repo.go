package repositories

import (
	"database/sql"
	"errors"

	intconfig "railbook/internal/config"
	"railbook/internal/domain"
	"railbook/internal/domain/models"
)

type AvailabilityRepo struct {
	DB *sql.DB
}

func (r AvailabilityRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r AvailabilityRepo) Get(key models.AvailabilityKey) (models.SeatAvailability, error) {
	var a models.SeatAvailability
	err := r.db().QueryRow(`
		SELECT train_number, journey_date, class_code, total_seats, available_seats, booked_seats, waiting_list
		FROM seat_availability
		WHERE train_number = ? AND journey_date = ? AND class_code = ?
		LIMIT 1`, key.TrainNumber, key.JourneyDate, key.ClassCode).
		Scan(&a.TrainNumber, &a.JourneyDate, &a.ClassCode,
			&a.TotalSeats, &a.AvailableSeats, &a.BookedSeats, &a.WaitingList)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SeatAvailability{}, domain.NotFoundError{Resource: "seat availability"}
	}
	if err != nil {
		return models.SeatAvailability{}, domain.InternalError{Err: err}
	}
	return a, nil
}

func (r AvailabilityRepo) EnsureRow(row models.SeatAvailability) error {
	_, err := r.db().Exec(`
		INSERT IGNORE INTO seat_availability
		(train_number, journey_date, class_code, total_seats, available_seats, booked_seats, waiting_list)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		row.TrainNumber, row.JourneyDate, row.ClassCode,
		row.TotalSeats, row.AvailableSeats, row.BookedSeats, row.WaitingList)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

// Reserve performs the conditional decrement in a single statement so two
// concurrent reservations can never both take the last seat.
func (r AvailabilityRepo) Reserve(key models.AvailabilityKey, seats int) error {
	if seats <= 0 {
		return domain.ValidationError{Field: "seats", Msg: "must be positive"}
	}
	res, err := r.db().Exec(`
		UPDATE seat_availability
		SET available_seats = available_seats - ?, booked_seats = booked_seats + ?
		WHERE train_number = ? AND journey_date = ? AND class_code = ? AND available_seats >= ?`,
		seats, seats, key.TrainNumber, key.JourneyDate, key.ClassCode, seats)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if affected > 0 {
		return nil
	}

	// No row touched: either the key is unknown or the seats ran out.
	current, err := r.Get(key)
	if err != nil {
		return err
	}
	return domain.InsufficientSeatsError{
		TrainNumber: key.TrainNumber,
		ClassCode:   key.ClassCode,
		Requested:   seats,
		Available:   current.AvailableSeats,
	}
}

func (r AvailabilityRepo) Release(key models.AvailabilityKey, seats int) error {
	if seats <= 0 {
		return domain.ValidationError{Field: "seats", Msg: "must be positive"}
	}
	res, err := r.db().Exec(`
		UPDATE seat_availability
		SET available_seats = available_seats + LEAST(?, booked_seats), booked_seats = booked_seats - LEAST(?, booked_seats)
		WHERE train_number = ? AND journey_date = ? AND class_code = ?`,
		seats, seats, key.TrainNumber, key.JourneyDate, key.ClassCode)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if affected == 0 {
		// The driver reports changed rows, so a no-op release on an
		// existing row also lands here.
		if _, err := r.Get(key); err != nil {
			return err
		}
	}
	return nil
}

// JoinWaitlist increments waiting_list only while the result stays within
// limit, in one conditional statement so concurrent opt-ins cannot push
// the counter past the cap.
func (r AvailabilityRepo) JoinWaitlist(key models.AvailabilityKey, seats, limit int) (bool, error) {
	if seats <= 0 {
		return false, domain.ValidationError{Field: "seats", Msg: "must be positive"}
	}
	res, err := r.db().Exec(`
		UPDATE seat_availability
		SET waiting_list = waiting_list + ?
		WHERE train_number = ? AND journey_date = ? AND class_code = ? AND waiting_list + ? <= ?`,
		seats, key.TrainNumber, key.JourneyDate, key.ClassCode, seats, limit)
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
	if _, err := r.Get(key); err != nil {
		return false, err
	}
	return false, nil
}

func (r AvailabilityRepo) AddWaiting(key models.AvailabilityKey, delta int) error {
	res, err := r.db().Exec(`
		UPDATE seat_availability
		SET waiting_list = GREATEST(0, waiting_list + ?)
		WHERE train_number = ? AND journey_date = ? AND class_code = ?`,
		delta, key.TrainNumber, key.JourneyDate, key.ClassCode)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if affected == 0 {
		if _, err := r.Get(key); err != nil {
			return err
		}
	}
	return nil
}
