// controller/trip_controller_test.go
package controller_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/traveldesk/api/controller"
	travel_errors "github.com/traveldesk/api/errors"
	logger "github.com/traveldesk/api/logging"
	"github.com/traveldesk/api/model"
	test_mock "github.com/traveldesk/api/test/mock"
)

func csvUpload(t *testing.T, contents string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "trips.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestTripController(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	mockTrips := new(test_mock.MockTripService)
	tripController := controller.NewTripController(mockTrips)
	router := setupRouter()
	api := router.Group("/")
	tripController.RegisterRoutes(api)

	t.Run("CreateTrip", func(t *testing.T) {
		created := &model.TripRecord{
			ID:         "T-1001",
			TravelerID: "emp-42",
			Origin:     "SFO",
		}
		mockTrips.On("CreateTrip", mock.Anything, mock.MatchedBy(func(trip model.TripRecord) bool {
			return trip.TravelerID == "emp-42" && trip.ID == "T-1001"
		})).Return(created, nil).Once()

		body := `{
			"id": "T-1001",
			"origin": "SFO",
			"destination": "Chicago",
			"airline": "Delta",
			"cabin_class": "economy",
			"total_cost": 1280.50,
			"trip_date": "2026-03-14T00:00:00Z"
		}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/trips", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("CreateTrip_Conflict", func(t *testing.T) {
		mockTrips.On("CreateTrip", mock.Anything, mock.Anything).
			Return(nil, travel_errors.ErrTripConflict).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/trips", strings.NewReader(`{"id": "T-1001"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("GetTrip_NotFound", func(t *testing.T) {
		mockTrips.On("GetTrip", mock.Anything, "T-MISSING").
			Return(nil, travel_errors.ErrTripNotFound).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/trips/T-MISSING", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ListTrips_InvalidPagination", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/trips?limit=abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("SearchTrips", func(t *testing.T) {
		trips := []model.TripRecord{
			{ID: "T-1001", TravelerID: "emp-42", Airline: "Delta", TripDate: time.Now()},
		}
		mockTrips.On("SearchTrips", mock.Anything, mock.MatchedBy(func(criteria model.TripSearchCriteria) bool {
			return criteria.Airline == "Delta"
		})).Return(trips, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/trips/search", strings.NewReader(`{"airline": "Delta"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "T-1001")
	})

	t.Run("DeleteTrip", func(t *testing.T) {
		mockTrips.On("DeleteTrip", mock.Anything, "T-1001", "emp-42").
			Return(nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/trips/T-1001", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("ImportTrips", func(t *testing.T) {
		mockTrips.On("ImportTripsCSV", mock.Anything, "emp-42", mock.Anything).
			Return(3, nil).Once()

		body, contentType := csvUpload(t, "Trip Code,Origin,Destination,Airline,Hotel,Flight Class,Rental Car,Trip Date,Total Cost\n")
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/trips/import", body)
		req.Header.Set("Content-Type", contentType)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"imported":3`)
	})

	t.Run("ImportTrips_BadRows", func(t *testing.T) {
		mockTrips.On("ImportTripsCSV", mock.Anything, "emp-42", mock.Anything).
			Return(0, fmt.Errorf("%w: row 2: invalid date", travel_errors.ErrInvalidTripData)).Once()

		body, contentType := csvUpload(t, "Trip Code,Origin,Destination,Airline,Hotel,Flight Class,Rental Car,Trip Date,Total Cost\nT-1,SFO,ORD,Delta,Marriott,economy,none,03/14/2026,900\n")
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/trips/import", body)
		req.Header.Set("Content-Type", contentType)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ImportTrips_MissingFile", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/trips/import", strings.NewReader(""))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	mockTrips.AssertExpectations(t)
}
