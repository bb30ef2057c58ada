package repositories

import (
	"database/sql"
	"errors"

	intconfig "railbook/internal/config"
	"railbook/internal/domain"
	"railbook/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

type PaymentRepo struct {
	DB *sql.DB
}

func (r PaymentRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r PaymentRepo) Insert(p models.Payment) error {
	_, err := r.db().Exec(`
		INSERT INTO payments (pnr, amount, payment_method, transaction_id, status, processed_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.PNR, p.Amount, p.PaymentMethod, p.TransactionID, p.Status, p.ProcessedAt)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return domain.ConflictError{Resource: "payment", Msg: "already settled", Err: err}
		}
		return domain.InternalError{Err: err}
	}
	return nil
}

func (r PaymentRepo) GetByPNR(pnr string) (models.Payment, error) {
	var p models.Payment
	err := r.db().QueryRow(`
		SELECT pnr, amount, payment_method, transaction_id, status, processed_at
		FROM payments WHERE pnr = ? LIMIT 1`, pnr).
		Scan(&p.PNR, &p.Amount, &p.PaymentMethod, &p.TransactionID, &p.Status, &p.ProcessedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Payment{}, domain.NotFoundError{Resource: "payment"}
	}
	if err != nil {
		return models.Payment{}, domain.InternalError{Err: err}
	}
	return p, nil
}
