// controller/booking_controller.go
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

type BookingController struct {
	bookingService service.IBookingService
}

func NewBookingController(bookingService service.IBookingService) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// RegisterRoutes registers the API routes
func (bc *BookingController) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", bc.CreateBooking)
		bookings.GET("/:code", bc.GetBooking)
		bookings.GET("", bc.ListBookings)
		bookings.POST("/:code/approve", bc.ApproveBooking)
	}
}

// CreateBooking endpoint
func (bc *BookingController) CreateBooking(c *gin.Context) {
	travelerID, err := util.GetTravelerIDFromContext(c)
	if err != nil || travelerID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", travel_errors.ErrUnauthorized)
		return
	}

	var req model.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid booking request", travel_errors.ErrInvalidBookingData)
		return
	}

	booking, err := bc.bookingService.CreateBooking(c, travelerID, req)
	if err != nil {
		var malformed *travel_errors.MalformedOfferError
		switch {
		case errors.Is(err, travel_errors.ErrInvalidBookingData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid booking request", err)
		case errors.As(err, &malformed):
			util.RespondWithError(c, http.StatusUnprocessableEntity, "Malformed offer", err)
		case errors.Is(err, travel_errors.ErrApprovalRequired):
			util.RespondWithError(c, http.StatusConflict, "Package violates policy and requires an approver", err)
		case errors.Is(err, travel_errors.ErrBookingInProgress):
			util.RespondWithError(c, http.StatusConflict, "Another booking is in progress", err)
		case errors.Is(err, travel_errors.ErrDatabaseOperation):
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking", travel_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBooking endpoint
func (bc *BookingController) GetBooking(c *gin.Context) {
	confirmationCode := c.Param("code")

	booking, err := bc.bookingService.GetBooking(c, confirmationCode)
	if err != nil {
		if errors.Is(err, travel_errors.ErrBookingNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Booking not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve booking", err)
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// ListBookings endpoint
func (bc *BookingController) ListBookings(c *gin.Context) {
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

	bookings, err := bc.bookingService.ListBookings(c, travelerID, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list bookings", err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

type approveRequest struct {
	ApprovedBy string `json:"approved_by" binding:"required"`
}

// ApproveBooking endpoint
func (bc *BookingController) ApproveBooking(c *gin.Context) {
	confirmationCode := c.Param("code")

	var req approveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid approval request", travel_errors.ErrInvalidBookingData)
		return
	}

	booking, err := bc.bookingService.ApproveBooking(c, confirmationCode, req.ApprovedBy)
	if err != nil {
		if errors.Is(err, travel_errors.ErrBookingNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Booking not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to approve booking", err)
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}
