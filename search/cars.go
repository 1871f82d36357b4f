// search/cars.go
package search

import (
	"sort"

	"github.com/traveldesk/api/model"
)

type carCompany struct {
	name      string
	dailyRate int
}

var carCompanies = []carCompany{
	{"Hertz", 72},
	{"Enterprise", 65},
	{"National", 68},
}

var carClasses = []struct {
	class  string
	models []string
}{
	{"compact", []string{"Toyota Corolla", "Honda Civic", "Nissan Sentra"}},
	{"mid-size", []string{"Toyota Camry", "Honda Accord", "Chevrolet Malibu"}},
}

const maxDailyRate = 75

// RentalCars returns one offer per rental company at the destination
// airport, all compact or mid-size and capped at the policy daily
// rate, sorted by total cost ascending.
func (c *Client) RentalCars(destination, pickupDate, dropoffDate string) []model.Offer {
	days := nightsBetween(pickupDate, dropoffDate)

	offers := make([]model.Offer, 0, len(carCompanies))
	for _, company := range carCompanies {
		vehicle := carClasses[c.intn(len(carClasses))]
		carModel := vehicle.models[c.intn(len(vehicle.models))]

		rate := company.dailyRate - 3 + c.intn(7)
		if rate > maxDailyRate {
			rate = maxDailyRate
		}

		offers = append(offers, model.Offer{
			Category: model.CategoryCar,
			Vendor:   company.name,
			Car: &model.CarAttributes{
				DailyRate:    float64(rate),
				Days:         days,
				VehicleClass: vehicle.class,
				Model:        carModel + " or similar",
				Location:     destination + " Airport",
			},
		})
	}

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].Car.DailyRate*float64(offers[i].Car.Days) <
			offers[j].Car.DailyRate*float64(offers[j].Car.Days)
	})
	return offers
}
