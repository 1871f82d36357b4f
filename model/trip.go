// model/trip.go
package model

import "time"

// TripRecord is a single historical trip taken by a traveler. Records
// are immutable once loaded; the evaluator never mutates them.
type TripRecord struct {
	ID               string    `json:"id"`
	TravelerID       string    `json:"traveler_id"`
	Origin           string    `json:"origin"`
	Destination      string    `json:"destination"`
	Airline          string    `json:"airline,omitempty"`
	HotelBrand       string    `json:"hotel_brand,omitempty"`
	RentalCarCompany string    `json:"rental_car_company,omitempty"` // "none" means no car was rented
	CabinClass       string    `json:"cabin_class"`
	TotalCost        float64   `json:"total_cost"`
	TripDate         time.Time `json:"trip_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type TripSearchCriteria struct {
	TravelerID  string     `json:"traveler_id,omitempty"`
	Origin      string     `json:"origin,omitempty"`
	Destination string     `json:"destination,omitempty"`
	Airline     string     `json:"airline,omitempty"`
	FromDate    *time.Time `json:"from_date,omitempty"`
	ToDate      *time.Time `json:"to_date,omitempty"`
	Limit       int        `json:"limit,omitempty"`
	Offset      int        `json:"offset,omitempty"`
}
