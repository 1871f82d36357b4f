// search/hotels.go
package search

import (
	"fmt"
	"sort"

	"github.com/traveldesk/api/model"
)

type hotelProfile struct {
	brand         string
	nameFormat    string
	stars         int
	rateLow       int
	rateHigh      int
	corporateRate bool
}

var hotelInventory = []hotelProfile{
	{"Marriott", "Courtyard by Marriott %s", 3, 165, 185, true},
	{"Hilton", "Hampton Inn %s Downtown", 3, 170, 195, true},
	{"Marriott", "Marriott %s Downtown", 4, 220, 260, false},
	{"Hilton", "Hilton %s", 4, 230, 270, false},
	{"Hyatt", "Hyatt Regency %s", 4, 280, 320, false},
}

// Hotels returns the destination's synthetic hotel inventory — two
// corporate-rate properties and three at market rates — sorted by
// nightly rate ascending so the discounted options lead.
func (c *Client) Hotels(destination, checkin, checkout string) []model.Offer {
	nights := nightsBetween(checkin, checkout)

	offers := make([]model.Offer, 0, len(hotelInventory))
	for _, h := range hotelInventory {
		rate := h.rateLow + c.intn(h.rateHigh-h.rateLow+1)
		offers = append(offers, model.Offer{
			Category: model.CategoryHotel,
			Vendor:   h.brand,
			Hotel: &model.HotelAttributes{
				Name:          fmt.Sprintf(h.nameFormat, destination),
				Brand:         h.brand,
				NightlyRate:   float64(rate),
				Nights:        nights,
				Stars:         h.stars,
				CorporateRate: h.corporateRate,
				Location:      destination + " Downtown",
			},
		})
	}

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].Hotel.NightlyRate < offers[j].Hotel.NightlyRate
	})
	return offers
}
