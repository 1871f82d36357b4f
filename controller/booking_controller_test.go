// controller/booking_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/traveldesk/api/controller"
	travel_errors "github.com/traveldesk/api/errors"
	logger "github.com/traveldesk/api/logging"
	"github.com/traveldesk/api/model"
	test_mock "github.com/traveldesk/api/test/mock"
)

var createBookingBody = `{
	"package": {
		"destination": "Chicago",
		"international": false,
		"flight": {"category": "flight", "vendor": "Delta", "flight": {"price": 420, "cabin_class": "economy"}},
		"hotel": {"category": "hotel", "vendor": "Marriott", "hotel": {"nightly_rate": 180, "nights": 3}}
	},
	"check_in": "2026-03-14",
	"check_out": "2026-03-17"
}`

func TestBookingController(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	mockBooking := new(test_mock.MockBookingService)
	bookingController := controller.NewBookingController(mockBooking)
	router := setupRouter()
	api := router.Group("/")
	bookingController.RegisterRoutes(api)

	t.Run("CreateBooking", func(t *testing.T) {
		booking := &model.Booking{
			ConfirmationCode: "TRV-1A2B3C4D",
			TravelerID:       "emp-42",
			Status:           "confirmed",
			TotalCost:        960,
		}
		mockBooking.On("CreateBooking", mock.Anything, "emp-42", mock.Anything).
			Return(booking, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/bookings", strings.NewReader(createBookingBody))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var got model.Booking
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "TRV-1A2B3C4D", got.ConfirmationCode)
		assert.Equal(t, "confirmed", got.Status)
	})

	t.Run("CreateBooking_ApprovalRequired", func(t *testing.T) {
		mockBooking.On("CreateBooking", mock.Anything, "emp-42", mock.Anything).
			Return(nil, travel_errors.ErrApprovalRequired).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/bookings", strings.NewReader(createBookingBody))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("CreateBooking_BookingInProgress", func(t *testing.T) {
		mockBooking.On("CreateBooking", mock.Anything, "emp-42", mock.Anything).
			Return(nil, travel_errors.ErrBookingInProgress).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/bookings", strings.NewReader(createBookingBody))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("CreateBooking_MalformedOffer", func(t *testing.T) {
		mockBooking.On("CreateBooking", mock.Anything, "emp-42", mock.Anything).
			Return(nil, &travel_errors.MalformedOfferError{Category: "hotel", Field: "nightly_rate"}).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/bookings", strings.NewReader(createBookingBody))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("GetBooking_NotFound", func(t *testing.T) {
		mockBooking.On("GetBooking", mock.Anything, "TRV-MISSING").
			Return(nil, travel_errors.ErrBookingNotFound).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/bookings/TRV-MISSING", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ListBookings", func(t *testing.T) {
		bookings := []model.Booking{
			{ConfirmationCode: "TRV-1A2B3C4D", TravelerID: "emp-42", Status: "confirmed"},
		}
		mockBooking.On("ListBookings", mock.Anything, "emp-42", 10, 0).
			Return(bookings, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/bookings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "TRV-1A2B3C4D")
	})

	t.Run("ApproveBooking", func(t *testing.T) {
		approved := &model.Booking{
			ConfirmationCode: "TRV-1A2B3C4D",
			TravelerID:       "emp-42",
			Status:           "confirmed",
			ApprovedBy:       "mgr-7",
		}
		mockBooking.On("ApproveBooking", mock.Anything, "TRV-1A2B3C4D", "mgr-7").
			Return(approved, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/bookings/TRV-1A2B3C4D/approve",
			strings.NewReader(`{"approved_by": "mgr-7"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "mgr-7")
	})

	t.Run("ApproveBooking_MissingApprover", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/bookings/TRV-1A2B3C4D/approve", strings.NewReader(`{}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	mockBooking.AssertExpectations(t)
}
