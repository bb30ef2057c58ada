package repositories

import "database/sql"

// EnsureSchema creates the backing tables when they do not exist yet.
// Safe to run on every startup.
func EnsureSchema(db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS stations (
			code VARCHAR(10) PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			city VARCHAR(100) NOT NULL,
			state VARCHAR(100) NOT NULL,
			zone VARCHAR(10) NOT NULL,
			latitude DOUBLE NOT NULL,
			longitude DOUBLE NOT NULL,
			facilities TEXT NOT NULL
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS trains (
			number VARCHAR(10) PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			type VARCHAR(50) NOT NULL,
			source_station VARCHAR(10) NOT NULL,
			destination_station VARCHAR(10) NOT NULL,
			schedule TEXT NOT NULL,
			classes TEXT NOT NULL,
			runs_on TEXT NOT NULL,
			distance DOUBLE NOT NULL,
			duration VARCHAR(10) NOT NULL
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS seat_availability (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			train_number VARCHAR(10) NOT NULL,
			journey_date VARCHAR(10) NOT NULL,
			class_code VARCHAR(5) NOT NULL,
			total_seats INT NOT NULL,
			available_seats INT NOT NULL,
			booked_seats INT NOT NULL DEFAULT 0,
			waiting_list INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_train_date_class (train_number, journey_date, class_code)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			pnr CHAR(10) NOT NULL,
			ticket_number VARCHAR(10) NOT NULL,
			train_number VARCHAR(10) NOT NULL,
			train_name VARCHAR(100) NOT NULL,
			source_station VARCHAR(10) NOT NULL,
			destination_station VARCHAR(10) NOT NULL,
			journey_date VARCHAR(10) NOT NULL,
			class_code VARCHAR(5) NOT NULL,
			class_name VARCHAR(50) NOT NULL,
			passengers TEXT NOT NULL,
			total_fare DOUBLE NOT NULL,
			fare_per_passenger DOUBLE NOT NULL,
			booking_date DATETIME NOT NULL,
			status VARCHAR(20) NOT NULL,
			payment_status VARCHAR(20) NOT NULL,
			payment_method VARCHAR(30) NOT NULL,
			departure_time VARCHAR(5) NOT NULL DEFAULT '',
			arrival_time VARCHAR(5) NOT NULL DEFAULT '',
			distance DOUBLE NOT NULL DEFAULT 0,
			UNIQUE KEY uniq_pnr (pnr),
			KEY idx_waitlist (status, train_number, journey_date, class_code)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS payments (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			pnr CHAR(10) NOT NULL,
			amount DOUBLE NOT NULL,
			payment_method VARCHAR(30) NOT NULL,
			transaction_id VARCHAR(50) NOT NULL,
			status VARCHAR(20) NOT NULL,
			processed_at DATETIME NOT NULL,
			UNIQUE KEY uniq_payment_pnr (pnr)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}
	for _, stmt := range ddl {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
