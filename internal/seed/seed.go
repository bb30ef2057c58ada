// Package seed loads the immutable reference data and pre-creates seat
// availability rows for the journey horizon.
package seed

import (
	"context"
	"time"

	"railbook/internal/domain/models"
	"railbook/internal/store"
	"railbook/internal/utils"
)

// Initialize loads stations and trains when the directory is empty and
// tops up the availability horizon. Re-running never duplicates rows or
// resets live counters.
func Initialize(st store.Store, horizonDays int) error {
	count, err := st.Stations.Count()
	if err != nil {
		return err
	}
	if count == 0 {
		if err := st.Stations.InsertMany(Stations()); err != nil {
			return err
		}
		if err := st.Trains.InsertMany(Trains()); err != nil {
			return err
		}
		utils.LogEvent("", "seed", "init", "reference data loaded")
	}
	return EnsureAvailability(st, horizonDays)
}

// EnsureAvailability creates one counter row per (train, running date,
// class) inside the horizon, starting today.
func EnsureAvailability(st store.Store, horizonDays int) error {
	trains, err := st.Trains.List()
	if err != nil {
		return err
	}
	today := time.Now()
	for _, train := range trains {
		for i := 0; i < horizonDays; i++ {
			day := today.AddDate(0, 0, i)
			if !train.RunsOnDay(day.Weekday().String()) {
				continue
			}
			date := utils.FormatDate(day)
			for classCode, classInfo := range train.Classes {
				row := models.SeatAvailability{
					TrainNumber:    train.Number,
					JourneyDate:    date,
					ClassCode:      classCode,
					TotalSeats:     classInfo.Seats,
					AvailableSeats: classInfo.Seats,
				}
				if err := st.Availability.EnsureRow(row); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// RefreshLoop extends the horizon once a day until ctx is cancelled.
func RefreshLoop(ctx context.Context, st store.Store, horizonDays int) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := EnsureAvailability(st, horizonDays); err != nil {
				utils.LogEvent("", "seed", "refresh", "horizon refresh failed: "+err.Error())
			}
		}
	}
}
