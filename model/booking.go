// model/booking.go
package model

import "time"

// Booking is a confirmed (mock) reservation for a validated package.
type Booking struct {
	ConfirmationCode string           `json:"confirmation_code"`
	TravelerID       string           `json:"traveler_id"`
	Package          TripPackage      `json:"package"`
	Report           ComplianceReport `json:"report"`
	TotalCost        float64          `json:"total_cost"`
	Status           string           `json:"status"` // "confirmed" or "pending-approval"
	ApprovedBy       string           `json:"approved_by,omitempty"`
	CheckIn          string           `json:"check_in"`
	CheckOut         string           `json:"check_out"`
	CreatedAt        time.Time        `json:"created_at"`
}

// BookingRequest is the payload a traveler submits to reserve a package.
type BookingRequest struct {
	Package    TripPackage `json:"package"`
	CheckIn    string      `json:"check_in"`
	CheckOut   string      `json:"check_out"`
	ApprovedBy string      `json:"approved_by,omitempty"`
}
