// model/offer.go
package model

// Category identifies which kind of travel inventory an offer belongs to.
type Category string

const (
	CategoryFlight Category = "flight"
	CategoryHotel  Category = "hotel"
	CategoryCar    Category = "car"
)

// Valid reports whether the category is one the evaluator understands.
func (c Category) Valid() bool {
	switch c {
	case CategoryFlight, CategoryHotel, CategoryCar:
		return true
	}
	return false
}

// Offer is a single candidate option produced by a search collaborator.
// Exactly one of Flight, Hotel or Car is set, matching Category.
type Offer struct {
	Category    Category          `json:"category"`
	Vendor      string            `json:"vendor"`
	IsPreferred bool              `json:"is_preferred"`
	Flight      *FlightAttributes `json:"flight,omitempty"`
	Hotel       *HotelAttributes  `json:"hotel,omitempty"`
	Car         *CarAttributes    `json:"car,omitempty"`
}

type FlightAttributes struct {
	FlightNumber    string  `json:"flight_number"`
	Price           float64 `json:"price"`
	Stops           int     `json:"stops"`
	DurationMinutes int     `json:"duration_minutes"`
	CabinClass      string  `json:"cabin_class"`
	DepartTime      string  `json:"depart_time"`
	ArriveTime      string  `json:"arrive_time"`
}

type HotelAttributes struct {
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	NightlyRate   float64 `json:"nightly_rate"`
	Nights        int     `json:"nights"`
	Stars         int     `json:"stars"`
	CorporateRate bool    `json:"corporate_rate"`
	Location      string  `json:"location"`
}

type CarAttributes struct {
	DailyRate    float64 `json:"daily_rate"`
	Days         int     `json:"days"`
	VehicleClass string  `json:"vehicle_class"`
	Model        string  `json:"model"`
	Location     string  `json:"location"`
}

// TripPackage is a selected combination of offers to validate as a
// whole. Flight and hotel are required, the rental car is optional.
// International must be set explicitly by the caller; it is never
// inferred from the destination.
type TripPackage struct {
	Flight        *Offer `json:"flight"`
	Hotel         *Offer `json:"hotel"`
	Car           *Offer `json:"car,omitempty"`
	Destination   string `json:"destination"`
	International bool   `json:"international"`
}
