// model/preference.go
package model

import "time"

// VendorCount pairs a vendor with how often it appears in the history.
type VendorCount struct {
	Vendor string `json:"vendor"`
	Count  int    `json:"count"`
}

// PreferenceProfile is derived fresh from a traveler's trip records on
// every evaluation; it is never stored as a source of truth, only cached.
type PreferenceProfile struct {
	TravelerID        string                     `json:"traveler_id"`
	Rankings          map[Category][]VendorCount `json:"rankings"`
	TypicalCabinClass string                     `json:"typical_cabin_class"`
	AverageTripCost   float64                    `json:"average_trip_cost"`
	TotalTrips        int                        `json:"total_trips"`
	GeneratedAt       time.Time                  `json:"generated_at"`
}
