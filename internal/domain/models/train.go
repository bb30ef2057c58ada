package models

// TrainStop is one entry of a train's ordered schedule. Distance is
// cumulative from the origin; Day is the journey day offset (>= 1).
// The first stop has no arrival time, the last stop no departure time.
type TrainStop struct {
	StationCode   string  `json:"station_code"`
	StationName   string  `json:"station_name"`
	ArrivalTime   string  `json:"arrival_time,omitempty"`
	DepartureTime string  `json:"departure_time,omitempty"`
	HaltTime      int     `json:"halt_time"`
	Distance      float64 `json:"distance"`
	Day           int     `json:"day"`
}

// TrainClass describes one fare class carried by a train.
type TrainClass struct {
	Seats     int     `json:"seats"`
	FarePerKM float64 `json:"fare_per_km"`
	Name      string  `json:"name"`
}

// Train is immutable after seeding. Schedule distances are non-decreasing
// and the first stop sits at distance 0.
type Train struct {
	Number             string                `json:"number"`
	Name               string                `json:"name"`
	Type               string                `json:"type"`
	SourceStation      string                `json:"source_station"`
	DestinationStation string                `json:"destination_station"`
	Schedule           []TrainStop           `json:"schedule"`
	Classes            map[string]TrainClass `json:"classes"`
	RunsOn             []string              `json:"runs_on"`
	Distance           float64               `json:"distance"`
	Duration           string                `json:"duration"`
}

// RunsOnDay reports whether the train operates on the given weekday name
// ("Monday" .. "Sunday").
func (t Train) RunsOnDay(day string) bool {
	for _, d := range t.RunsOn {
		if d == day {
			return true
		}
	}
	return false
}

// Segment finds the first stop matching source and the first stop matching
// destination after it. A destination earlier in the schedule than the
// source does not match.
func (t Train) Segment(source, destination string) (from, to TrainStop, ok bool) {
	foundSource := false
	for _, stop := range t.Schedule {
		if !foundSource {
			if stop.StationCode == source {
				from = stop
				foundSource = true
			}
			continue
		}
		if stop.StationCode == destination {
			return from, stop, true
		}
	}
	return TrainStop{}, TrainStop{}, false
}
