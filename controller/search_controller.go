// controller/search_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	travel_errors "github.com/traveldesk/api/errors"
	"github.com/traveldesk/api/service"
	"github.com/traveldesk/api/util"
)

type SearchController struct {
	searchService service.ISearchService
}

func NewSearchController(searchService service.ISearchService) *SearchController {
	return &SearchController{
		searchService: searchService,
	}
}

// RegisterRoutes registers the API routes
func (sc *SearchController) RegisterRoutes(r *gin.RouterGroup) {
	search := r.Group("/search")
	{
		search.GET("/flights", sc.SearchFlights)
		search.GET("/hotels", sc.SearchHotels)
		search.GET("/cars", sc.SearchRentalCars)
	}
}

// SearchFlights endpoint
func (sc *SearchController) SearchFlights(c *gin.Context) {
	travelerID, err := util.GetTravelerIDFromContext(c)
	if err != nil || travelerID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", travel_errors.ErrUnauthorized)
		return
	}

	origin := c.Query("origin")
	destination := c.Query("destination")
	departDate := c.Query("depart_date")
	if origin == "" || destination == "" {
		util.RespondWithError(c, http.StatusBadRequest, "origin and destination are required", travel_errors.ErrInvalidSearchCriteria)
		return
	}

	offers, err := sc.searchService.SearchFlights(c, travelerID, origin, destination, departDate)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Flight search failed", err)
		return
	}

	c.JSON(http.StatusOK, offers)
}

// SearchHotels endpoint
func (sc *SearchController) SearchHotels(c *gin.Context) {
	travelerID, err := util.GetTravelerIDFromContext(c)
	if err != nil || travelerID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", travel_errors.ErrUnauthorized)
		return
	}

	destination := c.Query("destination")
	checkin := c.Query("checkin")
	checkout := c.Query("checkout")
	if destination == "" {
		util.RespondWithError(c, http.StatusBadRequest, "destination is required", travel_errors.ErrInvalidSearchCriteria)
		return
	}

	offers, err := sc.searchService.SearchHotels(c, travelerID, destination, checkin, checkout)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Hotel search failed", err)
		return
	}

	c.JSON(http.StatusOK, offers)
}

// SearchRentalCars endpoint
func (sc *SearchController) SearchRentalCars(c *gin.Context) {
	travelerID, err := util.GetTravelerIDFromContext(c)
	if err != nil || travelerID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", travel_errors.ErrUnauthorized)
		return
	}

	destination := c.Query("destination")
	pickupDate := c.Query("pickup_date")
	dropoffDate := c.Query("dropoff_date")
	if destination == "" {
		util.RespondWithError(c, http.StatusBadRequest, "destination is required", travel_errors.ErrInvalidSearchCriteria)
		return
	}

	offers, err := sc.searchService.SearchRentalCars(c, travelerID, destination, pickupDate, dropoffDate)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Rental car search failed", err)
		return
	}

	c.JSON(http.StatusOK, offers)
}
