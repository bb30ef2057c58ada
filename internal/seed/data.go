package seed

import "railbook/internal/domain/models"

var allWeek = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Stations returns the built-in station directory.
func Stations() []models.Station {
	return []models.Station{
		{Code: "NDLS", Name: "New Delhi", City: "Delhi", State: "Delhi", Zone: "NR", Latitude: 28.6434, Longitude: 77.2197, Facilities: []string{"WiFi", "Waiting Room", "Food Court", "ATM"}},
		{Code: "CST", Name: "Mumbai CST", City: "Mumbai", State: "Maharashtra", Zone: "CR", Latitude: 18.9398, Longitude: 72.8355, Facilities: []string{"WiFi", "Waiting Room", "Food Court", "ATM", "Medical"}},
		{Code: "HWH", Name: "Howrah Junction", City: "Kolkata", State: "West Bengal", Zone: "ER", Latitude: 22.5833, Longitude: 88.3467, Facilities: []string{"WiFi", "Waiting Room", "Food Court", "ATM"}},
		{Code: "MAS", Name: "Chennai Central", City: "Chennai", State: "Tamil Nadu", Zone: "SR", Latitude: 13.0827, Longitude: 80.2707, Facilities: []string{"WiFi", "Waiting Room", "Food Court", "ATM"}},
		{Code: "SBC", Name: "Bangalore City", City: "Bangalore", State: "Karnataka", Zone: "SWR", Latitude: 12.9716, Longitude: 77.5946, Facilities: []string{"WiFi", "Waiting Room", "Food Court", "ATM"}},
		{Code: "PUNE", Name: "Pune Junction", City: "Pune", State: "Maharashtra", Zone: "CR", Latitude: 18.5204, Longitude: 73.8567, Facilities: []string{"WiFi", "Waiting Room", "Food Court", "ATM"}},
		{Code: "JP", Name: "Jaipur Junction", City: "Jaipur", State: "Rajasthan", Zone: "NWR", Latitude: 26.9124, Longitude: 75.7873, Facilities: []string{"WiFi", "Waiting Room", "Food Court", "ATM"}},
		{Code: "LKO", Name: "Lucknow NR", City: "Lucknow", State: "Uttar Pradesh", Zone: "NER", Latitude: 26.8467, Longitude: 80.9462, Facilities: []string{"WiFi", "Waiting Room", "Food Court", "ATM"}},
		{Code: "AGC", Name: "Agra Cantt", City: "Agra", State: "Uttar Pradesh", Zone: "NCR", Latitude: 27.1767, Longitude: 78.0081, Facilities: []string{"WiFi", "Waiting Room", "Food Court", "ATM"}},
		{Code: "VSKP", Name: "Visakhapatnam", City: "Visakhapatnam", State: "Andhra Pradesh", Zone: "ECoR", Latitude: 17.6868, Longitude: 83.2185, Facilities: []string{"WiFi", "Waiting Room", "Food Court", "ATM"}},
	}
}

// Trains returns the built-in timetable.
func Trains() []models.Train {
	return []models.Train{
		{
			Number: "12301", Name: "Rajdhani Express", Type: "Rajdhani",
			SourceStation: "NDLS", DestinationStation: "HWH",
			Schedule: []models.TrainStop{
				{StationCode: "NDLS", StationName: "New Delhi", DepartureTime: "16:55", Distance: 0, Day: 1},
				{StationCode: "CNB", StationName: "Kanpur Central", ArrivalTime: "21:40", DepartureTime: "21:45", HaltTime: 5, Distance: 441, Day: 1},
				{StationCode: "ALD", StationName: "Allahabad Jn", ArrivalTime: "23:28", DepartureTime: "23:33", HaltTime: 5, Distance: 635, Day: 1},
				{StationCode: "HWH", StationName: "Howrah Junction", ArrivalTime: "06:55", Distance: 1441, Day: 2},
			},
			Classes: map[string]models.TrainClass{
				"1A": {Seats: 18, FarePerKM: 4.5, Name: "AC First Class"},
				"2A": {Seats: 46, FarePerKM: 3.2, Name: "AC 2 Tier"},
				"3A": {Seats: 64, FarePerKM: 2.1, Name: "AC 3 Tier"},
			},
			RunsOn: allWeek, Distance: 1441, Duration: "14:00",
		},
		{
			Number: "12002", Name: "Shatabdi Express", Type: "Shatabdi",
			SourceStation: "NDLS", DestinationStation: "AGC",
			Schedule: []models.TrainStop{
				{StationCode: "NDLS", StationName: "New Delhi", DepartureTime: "06:00", Distance: 0, Day: 1},
				{StationCode: "AGC", StationName: "Agra Cantt", ArrivalTime: "08:05", Distance: 199, Day: 1},
			},
			Classes: map[string]models.TrainClass{
				"CC": {Seats: 78, FarePerKM: 2.8, Name: "Chair Car"},
				"EC": {Seats: 20, FarePerKM: 4.2, Name: "Executive Chair Car"},
			},
			RunsOn:   []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
			Distance: 199, Duration: "02:05",
		},
		{
			Number: "12622", Name: "Tamil Nadu Express", Type: "Mail/Express",
			SourceStation: "NDLS", DestinationStation: "MAS",
			Schedule: []models.TrainStop{
				{StationCode: "NDLS", StationName: "New Delhi", DepartureTime: "22:30", Distance: 0, Day: 1},
				{StationCode: "AGC", StationName: "Agra Cantt", ArrivalTime: "01:40", DepartureTime: "01:45", HaltTime: 5, Distance: 199, Day: 2},
				{StationCode: "JHS", StationName: "Jhansi Jn", ArrivalTime: "03:58", DepartureTime: "04:08", HaltTime: 10, Distance: 415, Day: 2},
				{StationCode: "BPL", StationName: "Bhopal Jn", ArrivalTime: "07:00", DepartureTime: "07:10", HaltTime: 10, Distance: 707, Day: 2},
				{StationCode: "ET", StationName: "Itarsi Jn", ArrivalTime: "08:25", DepartureTime: "08:35", HaltTime: 10, Distance: 786, Day: 2},
				{StationCode: "NGP", StationName: "Nagpur", ArrivalTime: "12:15", DepartureTime: "12:25", HaltTime: 10, Distance: 1081, Day: 2},
				{StationCode: "BZA", StationName: "Vijayawada Jn", ArrivalTime: "21:40", DepartureTime: "21:50", HaltTime: 10, Distance: 1568, Day: 2},
				{StationCode: "MAS", StationName: "Chennai Central", ArrivalTime: "06:45", Distance: 2180, Day: 3},
			},
			Classes: map[string]models.TrainClass{
				"SL": {Seats: 72, FarePerKM: 0.8, Name: "Sleeper"},
				"3A": {Seats: 64, FarePerKM: 2.1, Name: "AC 3 Tier"},
				"2A": {Seats: 46, FarePerKM: 3.2, Name: "AC 2 Tier"},
				"1A": {Seats: 18, FarePerKM: 4.5, Name: "AC First Class"},
			},
			RunsOn: allWeek, Distance: 2180, Duration: "32:15",
		},
	}
}
