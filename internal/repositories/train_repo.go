package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"

	intconfig "railbook/internal/config"
	"railbook/internal/domain"
	"railbook/internal/domain/models"
)

type TrainRepo struct {
	DB *sql.DB
}

func (r TrainRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const trainColumns = `number, name, type, source_station, destination_station, schedule, classes, runs_on, distance, duration`

func (r TrainRepo) GetByNumber(number string) (models.Train, error) {
	row := r.db().QueryRow(`SELECT `+trainColumns+` FROM trains WHERE number = ? LIMIT 1`, number)
	t, err := scanTrain(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Train{}, domain.NotFoundError{Resource: "train"}
	}
	return t, err
}

func (r TrainRepo) List() ([]models.Train, error) {
	rows, err := r.db().Query(`SELECT ` + trainColumns + ` FROM trains ORDER BY number`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Train{}
	for rows.Next() {
		t, err := scanTrain(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TrainRepo) InsertMany(trains []models.Train) error {
	for _, t := range trains {
		schedule, err := json.Marshal(t.Schedule)
		if err != nil {
			return domain.InternalError{Err: err}
		}
		classes, err := json.Marshal(t.Classes)
		if err != nil {
			return domain.InternalError{Err: err}
		}
		runsOn, err := json.Marshal(t.RunsOn)
		if err != nil {
			return domain.InternalError{Err: err}
		}
		_, err = r.db().Exec(`
			INSERT IGNORE INTO trains (`+trainColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.Number, t.Name, t.Type, t.SourceStation, t.DestinationStation,
			string(schedule), string(classes), string(runsOn), t.Distance, t.Duration)
		if err != nil {
			return domain.InternalError{Err: err}
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrain(row rowScanner) (models.Train, error) {
	var t models.Train
	var schedule, classes, runsOn string
	err := row.Scan(&t.Number, &t.Name, &t.Type, &t.SourceStation, &t.DestinationStation,
		&schedule, &classes, &runsOn, &t.Distance, &t.Duration)
	if err != nil {
		return models.Train{}, err
	}
	if err := json.Unmarshal([]byte(schedule), &t.Schedule); err != nil {
		return models.Train{}, domain.InternalError{Msg: "corrupt train schedule", Err: err}
	}
	if err := json.Unmarshal([]byte(classes), &t.Classes); err != nil {
		return models.Train{}, domain.InternalError{Msg: "corrupt train classes", Err: err}
	}
	if err := json.Unmarshal([]byte(runsOn), &t.RunsOn); err != nil {
		return models.Train{}, domain.InternalError{Msg: "corrupt train runs_on", Err: err}
	}
	return t, nil
}
