package repositories

import (
	"database/sql"
	"encoding/json"

	intconfig "railbook/internal/config"
	"railbook/internal/domain"
	"railbook/internal/domain/models"
)

type StationRepo struct {
	DB *sql.DB
}

func (r StationRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r StationRepo) Search(query string, limit int) ([]models.Station, error) {
	pattern := "%" + query + "%"
	rows, err := r.db().Query(`
		SELECT code, name, city, state, zone, latitude, longitude, facilities
		FROM stations
		WHERE name LIKE ? OR code LIKE ? OR city LIKE ?
		LIMIT ?`, pattern, pattern, pattern, limit)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Station{}
	for rows.Next() {
		var st models.Station
		var facilities string
		if err := rows.Scan(&st.Code, &st.Name, &st.City, &st.State, &st.Zone,
			&st.Latitude, &st.Longitude, &facilities); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		if err := json.Unmarshal([]byte(facilities), &st.Facilities); err != nil {
			st.Facilities = []string{}
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (r StationRepo) Count() (int, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM stations`).Scan(&n); err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}

func (r StationRepo) InsertMany(stations []models.Station) error {
	for _, st := range stations {
		facilities, err := json.Marshal(st.Facilities)
		if err != nil {
			return domain.InternalError{Err: err}
		}
		_, err = r.db().Exec(`
			INSERT IGNORE INTO stations (code, name, city, state, zone, latitude, longitude, facilities)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			st.Code, st.Name, st.City, st.State, st.Zone, st.Latitude, st.Longitude, string(facilities))
		if err != nil {
			return domain.InternalError{Err: err}
		}
	}
	return nil
}
