// controller/trip_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	travel_errors "github.com/traveldesk/api/errors"
	"github.com/traveldesk/api/model"
	"github.com/traveldesk/api/service"
	"github.com/traveldesk/api/util"
	helper_util "github.com/traveldesk/api/util/helper"
)

type TripController struct {
	tripService service.ITripService
}

func NewTripController(tripService service.ITripService) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// RegisterRoutes registers the API routes
func (tc *TripController) RegisterRoutes(r *gin.RouterGroup) {
	trips := r.Group("/trips")
	{
		trips.POST("", tc.CreateTrip)
		trips.GET("/:id", tc.GetTrip)
		trips.GET("", tc.ListTrips)
		trips.POST("/search", tc.SearchTrips)
		trips.DELETE("/:id", tc.DeleteTrip)
		trips.POST("/import", tc.ImportTrips)
	}
}

// CreateTrip endpoint
func (tc *TripController) CreateTrip(c *gin.Context) {
	travelerID, err := util.GetTravelerIDFromContext(c)
	if err != nil || travelerID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", travel_errors.ErrUnauthorized)
		return
	}

	var trip model.TripRecord
	if err := c.ShouldBindJSON(&trip); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid trip data", travel_errors.ErrInvalidTripData)
		return
	}
	trip.TravelerID = travelerID

	createdTrip, err := tc.tripService.CreateTrip(c, trip)
	if err != nil {
		switch {
		case errors.Is(err, travel_errors.ErrInvalidTripData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid trip data", err)
		case errors.Is(err, travel_errors.ErrTripConflict):
			util.RespondWithError(c, http.StatusConflict, "Trip already exists", err)
		case errors.Is(err, travel_errors.ErrDatabaseOperation):
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create trip", travel_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusCreated, createdTrip)
}

// GetTrip endpoint
func (tc *TripController) GetTrip(c *gin.Context) {
	tripID := c.Param("id")

	trip, err := tc.tripService.GetTrip(c, tripID)
	if err != nil {
		if errors.Is(err, travel_errors.ErrTripNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Trip not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve trip", err)
		}
		return
	}

	c.JSON(http.StatusOK, trip)
}

// ListTrips endpoint
func (tc *TripController) ListTrips(c *gin.Context) {
	travelerID, err := util.GetTravelerIDFromContext(c)
	if err != nil || travelerID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", travel_errors.ErrUnauthorized)
		return
	}

	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", travel_errors.ErrInvalidPagination)
		return
	}

	trips, err := tc.tripService.ListTrips(c, travelerID, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list trips", err)
		return
	}

	c.JSON(http.StatusOK, trips)
}

// SearchTrips endpoint
func (tc *TripController) SearchTrips(c *gin.Context) {
	var criteria model.TripSearchCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid search criteria", travel_errors.ErrInvalidSearchCriteria)
		return
	}

	trips, err := tc.tripService.SearchTrips(c, criteria)
	if err != nil {
		if errors.Is(err, travel_errors.ErrInvalidSearchCriteria) {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid search criteria", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to search trips", err)
		}
		return
	}

	c.JSON(http.StatusOK, trips)
}

// DeleteTrip endpoint
func (tc *TripController) DeleteTrip(c *gin.Context) {
	tripID := c.Param("id")
	travelerID, err := util.GetTravelerIDFromContext(c)
	if err != nil || travelerID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", travel_errors.ErrUnauthorized)
		return
	}

	if err := tc.tripService.DeleteTrip(c, tripID, travelerID); err != nil {
		if errors.Is(err, travel_errors.ErrTripNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Trip not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete trip", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ImportTrips endpoint accepts a CSV file upload of trip history rows
func (tc *TripController) ImportTrips(c *gin.Context) {
	travelerID, err := util.GetTravelerIDFromContext(c)
	if err != nil || travelerID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", travel_errors.ErrUnauthorized)
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Missing CSV file", err)
		return
	}
	defer file.Close()

	count, err := tc.tripService.ImportTripsCSV(c, travelerID, file)
	if err != nil {
		if errors.Is(err, travel_errors.ErrInvalidTripData) {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid trip data", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to import trips", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"imported": count})
}
