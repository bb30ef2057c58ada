package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"railbook/internal/domain/models"
	"railbook/internal/http/handlers"
	"railbook/internal/memstore"
	"railbook/internal/store"

	"github.com/gin-gonic/gin"
)

const (
	testDate  = "2026-09-10"
	testTrain = "12301"
)

func seededStore(t *testing.T, seats int) store.Store {
	t.Helper()
	st := memstore.New()

	err := st.Stations.InsertMany([]models.Station{
		{Code: "NDLS", Name: "New Delhi", City: "Delhi"},
		{Code: "HWH", Name: "Howrah Junction", City: "Kolkata"},
	})
	if err != nil {
		t.Fatalf("station seed failed: %v", err)
	}

	err = st.Trains.InsertMany([]models.Train{{
		Number:             testTrain,
		Name:               "Rajdhani Express",
		Type:               "Rajdhani",
		SourceStation:      "NDLS",
		DestinationStation: "HWH",
		Schedule: []models.TrainStop{
			{StationCode: "NDLS", DepartureTime: "16:55", Distance: 0, Day: 1},
			{StationCode: "HWH", ArrivalTime: "09:55", Distance: 1530, Day: 2},
		},
		Classes: map[string]models.TrainClass{
			"3A": {Seats: seats, FarePerKM: 2.0, Name: "AC 3 Tier"},
		},
		RunsOn:   []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
		Distance: 1530,
	}})
	if err != nil {
		t.Fatalf("train seed failed: %v", err)
	}

	err = st.Availability.EnsureRow(models.SeatAvailability{
		TrainNumber:    testTrain,
		JourneyDate:    testDate,
		ClassCode:      "3A",
		TotalSeats:     seats,
		AvailableSeats: seats,
	})
	if err != nil {
		t.Fatalf("availability seed failed: %v", err)
	}
	return st
}

func testRouter(st store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	a := handlers.API{Store: st}

	r := gin.New()
	r.GET("/health", a.Health)
	api := r.Group("/api")
	api.GET("/stations/search", a.SearchStations)
	api.GET("/trains/search", a.SearchTrains)
	api.GET("/trains/:number", a.GetTrain)
	api.GET("/fare/calculate", a.CalculateFare)
	api.POST("/booking/create", a.CreateBooking)
	api.POST("/booking/:pnr/cancel", a.CancelBooking)
	api.GET("/pnr/:pnr", a.GetPNRStatus)
	api.GET("/pnr/:pnr/e-ticket", a.GetETicket)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bookingPayload(passengers int) map[string]any {
	pax := make([]map[string]any, passengers)
	for i := range pax {
		pax[i] = map[string]any{"name": "Passenger", "age": 30, "gender": "F"}
	}
	return map[string]any{
		"train_number":        testTrain,
		"source_station":      "NDLS",
		"destination_station": "HWH",
		"journey_date":        testDate,
		"class_code":          "3A",
		"passengers":          pax,
		"payment_method":      "upi",
	}
}

func TestHealthEndpoint(t *testing.T) {
	r := testRouter(seededStore(t, 4))
	w := doJSON(t, r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestStationSearchEndpoint(t *testing.T) {
	r := testRouter(seededStore(t, 4))

	w := doJSON(t, r, http.MethodGet, "/api/stations/search?query=kolkata", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Stations []models.Station `json:"stations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Stations) != 1 || resp.Stations[0].Code != "HWH" {
		t.Fatalf("stations = %+v", resp.Stations)
	}

	if w := doJSON(t, r, http.MethodGet, "/api/stations/search", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("blank query status = %d, want 400", w.Code)
	}
}

func TestTrainSearchEndpoint(t *testing.T) {
	r := testRouter(seededStore(t, 4))

	path := fmt.Sprintf("/api/trains/search?source=NDLS&destination=HWH&journey_date=%s", testDate)
	w := doJSON(t, r, http.MethodGet, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 1 {
		t.Fatalf("count = %d, want 1", resp.Count)
	}

	reversed := fmt.Sprintf("/api/trains/search?source=HWH&destination=NDLS&journey_date=%s", testDate)
	w = doJSON(t, r, http.MethodGet, reversed, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("reversed status = %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 0 {
		t.Fatalf("reversed count = %d, want 0", resp.Count)
	}
}

func TestTrainDetailEndpoint(t *testing.T) {
	r := testRouter(seededStore(t, 4))

	if w := doJSON(t, r, http.MethodGet, "/api/trains/"+testTrain, nil); w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/trains/99999", nil); w.Code != http.StatusNotFound {
		t.Fatalf("unknown train status = %d, want 404", w.Code)
	}
}

func TestFareEndpoint(t *testing.T) {
	r := testRouter(seededStore(t, 4))

	path := "/api/fare/calculate?train_number=" + testTrain + "&source=NDLS&destination=HWH&class_code=3A"
	w := doJSON(t, r, http.MethodGet, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var quote struct {
		Fare     float64 `json:"fare"`
		Distance float64 `json:"distance"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &quote); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// 1530 * 2.0 * 2.5 * 1.10
	if quote.Fare != 8415.0 || quote.Distance != 1530 {
		t.Fatalf("quote = %+v", quote)
	}

	bad := "/api/fare/calculate?train_number=" + testTrain + "&source=HWH&destination=NDLS&class_code=3A"
	if w := doJSON(t, r, http.MethodGet, bad, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("invalid route status = %d, want 400", w.Code)
	}
}

func TestBookingLifecycleEndpoints(t *testing.T) {
	r := testRouter(seededStore(t, 4))

	w := doJSON(t, r, http.MethodPost, "/api/booking/create", bookingPayload(2))
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	var created struct {
		Booking models.Booking `json:"booking"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Booking.Status != models.BookingConfirmed || len(created.Booking.PNR) != 10 {
		t.Fatalf("booking = %+v", created.Booking)
	}

	w = doJSON(t, r, http.MethodGet, "/api/pnr/"+created.Booking.PNR, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("pnr status = %d, body = %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/pnr/"+created.Booking.PNR+"/e-ticket", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("e-ticket status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("e-ticket content type = %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("e-ticket body is not a PDF")
	}

	w = doJSON(t, r, http.MethodPost, "/api/booking/"+created.Booking.PNR+"/cancel", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cancel status = %d, body = %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPost, "/api/booking/"+created.Booking.PNR+"/cancel", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("second cancel status = %d, want 409", w.Code)
	}
}

func TestBookingEndpointErrorMapping(t *testing.T) {
	r := testRouter(seededStore(t, 1))

	// more passengers than seats
	w := doJSON(t, r, http.MethodPost, "/api/booking/create", bookingPayload(3))
	if w.Code != http.StatusConflict {
		t.Fatalf("insufficient seats status = %d, want 409", w.Code)
	}

	payload := bookingPayload(1)
	payload["journey_date"] = "not-a-date"
	if w := doJSON(t, r, http.MethodPost, "/api/booking/create", payload); w.Code != http.StatusBadRequest {
		t.Fatalf("bad date status = %d, want 400", w.Code)
	}

	if w := doJSON(t, r, http.MethodGet, "/api/pnr/0000000000", nil); w.Code != http.StatusNotFound {
		t.Fatalf("unknown pnr status = %d, want 404", w.Code)
	}

	if w := doJSON(t, r, http.MethodPost, "/api/booking/create", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("empty body status = %d, want 400", w.Code)
	}
}
