package models

// Station is immutable reference data created at seed time.
type Station struct {
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	City       string   `json:"city"`
	State      string   `json:"state"`
	Zone       string   `json:"zone"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	Facilities []string `json:"facilities"`
}
