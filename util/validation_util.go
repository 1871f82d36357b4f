// util/validation_util.go

package util

import (
	"fmt"

	"github.com/traveldesk/api/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func (v *ValidationUtil) ValidateTripRecord(trip model.TripRecord) error {
	if trip.TravelerID == "" {
		return fmt.Errorf("trip traveler ID cannot be empty")
	}
	if trip.Origin == "" {
		return fmt.Errorf("trip origin cannot be empty")
	}
	if trip.Destination == "" {
		return fmt.Errorf("trip destination cannot be empty")
	}
	if trip.TotalCost < 0 {
		return fmt.Errorf("trip total cost cannot be negative")
	}
	if trip.TripDate.IsZero() {
		return fmt.Errorf("trip date cannot be empty")
	}
	return nil
}

func (v *ValidationUtil) ValidateBookingRequest(req model.BookingRequest) error {
	if req.Package.Flight == nil {
		return fmt.Errorf("booking package must include a flight")
	}
	if req.Package.Hotel == nil {
		return fmt.Errorf("booking package must include a hotel")
	}
	if req.Package.Destination == "" {
		return fmt.Errorf("booking package destination cannot be empty")
	}
	if req.CheckIn == "" {
		return fmt.Errorf("booking check-in date cannot be empty")
	}
	if req.CheckOut == "" {
		return fmt.Errorf("booking check-out date cannot be empty")
	}
	return nil
}

func (v *ValidationUtil) ValidateSearchCriteria(criteria model.TripSearchCriteria) error {
	if criteria.Limit < 0 || criteria.Offset < 0 {
		return fmt.Errorf("pagination parameters cannot be negative")
	}
	if criteria.FromDate != nil && criteria.ToDate != nil && criteria.FromDate.After(*criteria.ToDate) {
		return fmt.Errorf("from date cannot be after to date")
	}
	return nil
}
