package services

import (
	"strings"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/store"
	"railbook/internal/utils"
)

const stationSearchLimit = 10

// TimetableService answers station and train search queries. It never
// mutates the store.
type TimetableService struct {
	Store store.Store
}

// ClassOffer is the per-class availability + fare annotation in a search
// result.
type ClassOffer struct {
	Name           string  `json:"name"`
	AvailableSeats int     `json:"available_seats"`
	TotalSeats     int     `json:"total_seats"`
	Fare           float64 `json:"fare"`
	Status         string  `json:"status"`
}

// TrainOffer is one train serving the requested station pair on the
// requested date.
type TrainOffer struct {
	TrainNumber        string                `json:"train_number"`
	TrainName          string                `json:"train_name"`
	TrainType          string                `json:"train_type"`
	SourceStation      string                `json:"source_station"`
	DestinationStation string                `json:"destination_station"`
	DepartureTime      string                `json:"departure_time"`
	ArrivalTime        string                `json:"arrival_time"`
	Duration           string                `json:"duration"`
	Distance           float64               `json:"distance"`
	Classes            map[string]ClassOffer `json:"classes"`
	JourneyDate        string                `json:"journey_date"`
}

// FareQuote is the response of a standalone fare calculation.
type FareQuote struct {
	TrainNumber   string  `json:"train_number"`
	TrainName     string  `json:"train_name"`
	Source        string  `json:"source"`
	Destination   string  `json:"destination"`
	ClassCode     string  `json:"class_code"`
	ClassName     string  `json:"class_name"`
	Distance      float64 `json:"distance"`
	Fare          float64 `json:"fare"`
	BaseFarePerKM float64 `json:"base_fare_per_km"`
}

func (s TimetableService) SearchStations(query string) ([]models.Station, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ValidationError{Field: "query", Msg: "must not be empty"}
	}
	return s.Store.Stations.Search(query, stationSearchLimit)
}

func (s TimetableService) GetTrain(number string) (models.Train, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return models.Train{}, domain.ValidationError{Field: "train_number", Msg: "must not be empty"}
	}
	return s.Store.Trains.GetByNumber(number)
}

// SearchTrains walks the timetable for trains serving source before
// destination on the given date. classFilter narrows the offered classes
// when non-empty. Classes without an availability row (date beyond the
// horizon) are skipped silently; trains with no surviving class are
// dropped from the result.
func (s TimetableService) SearchTrains(source, destination, date, classFilter string) ([]TrainOffer, error) {
	source = strings.ToUpper(strings.TrimSpace(source))
	destination = strings.ToUpper(strings.TrimSpace(destination))
	if source == "" || destination == "" {
		return nil, domain.ValidationError{Field: "source/destination", Msg: "must not be empty"}
	}
	if source == destination {
		return nil, domain.ValidationError{Field: "destination", Msg: "must differ from source"}
	}
	weekday, err := utils.WeekdayName(date)
	if err != nil {
		return nil, domain.ValidationError{Field: "journey_date", Msg: "must be YYYY-MM-DD", Err: err}
	}

	trains, err := s.Store.Trains.List()
	if err != nil {
		return nil, err
	}

	offers := []TrainOffer{}
	for _, train := range trains {
		if !train.RunsOnDay(weekday) {
			continue
		}
		from, to, ok := train.Segment(source, destination)
		if !ok {
			continue
		}
		segmentDistance := to.Distance - from.Distance

		classes := map[string]ClassOffer{}
		for classCode, classInfo := range train.Classes {
			if classFilter != "" && classCode != classFilter {
				continue
			}
			avail, err := s.Store.Availability.Get(models.AvailabilityKey{
				TrainNumber: train.Number,
				JourneyDate: date,
				ClassCode:   classCode,
			})
			if err != nil {
				if domain.IsNotFound(err) {
					continue
				}
				return nil, err
			}
			status := "AVAILABLE"
			if avail.AvailableSeats <= 0 {
				status = "WAITING LIST"
			}
			classes[classCode] = ClassOffer{
				Name:           classInfo.Name,
				AvailableSeats: avail.AvailableSeats,
				TotalSeats:     avail.TotalSeats,
				Fare:           utils.CalculateFare(segmentDistance, classCode, classInfo.FarePerKM),
				Status:         status,
			}
		}
		if len(classes) == 0 {
			continue
		}

		arrival := to.ArrivalTime
		if arrival == "" {
			arrival = to.DepartureTime
		}
		offers = append(offers, TrainOffer{
			TrainNumber:        train.Number,
			TrainName:          train.Name,
			TrainType:          train.Type,
			SourceStation:      source,
			DestinationStation: destination,
			DepartureTime:      from.DepartureTime,
			ArrivalTime:        arrival,
			Duration:           utils.SegmentDuration(from.DepartureTime, from.Day, arrival, to.Day),
			Distance:           segmentDistance,
			Classes:            classes,
			JourneyDate:        date,
		})
	}
	return offers, nil
}

// QuoteFare computes the fare for one passenger over a train segment.
func (s TimetableService) QuoteFare(trainNumber, source, destination, classCode string) (FareQuote, error) {
	train, err := s.GetTrain(trainNumber)
	if err != nil {
		return FareQuote{}, err
	}
	source = strings.ToUpper(strings.TrimSpace(source))
	destination = strings.ToUpper(strings.TrimSpace(destination))
	from, to, ok := train.Segment(source, destination)
	if !ok {
		return FareQuote{}, domain.InvalidRouteError{TrainNumber: train.Number, Source: source, Destination: destination}
	}
	classInfo, ok := train.Classes[classCode]
	if !ok {
		return FareQuote{}, domain.ValidationError{Field: "class_code", Msg: "train does not carry this class"}
	}
	segmentDistance := to.Distance - from.Distance
	return FareQuote{
		TrainNumber:   train.Number,
		TrainName:     train.Name,
		Source:        source,
		Destination:   destination,
		ClassCode:     classCode,
		ClassName:     classInfo.Name,
		Distance:      segmentDistance,
		Fare:          utils.CalculateFare(segmentDistance, classCode, classInfo.FarePerKM),
		BaseFarePerKM: classInfo.FarePerKM,
	}, nil
}
