// preference/ranker.go
package preference

import (
	"context"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	travel_errors "github.com/traveldesk/api/errors"
	"github.com/traveldesk/api/model"
)

// noneSentinel marks a history field that was deliberately left blank,
// e.g. a trip without a rental car. Matched case-insensitively.
const noneSentinel = "none"

// Rank counts how often each vendor was chosen for the given category
// across the trip history and returns the vendors ordered by count
// descending, ties broken by first appearance in the input. Vendor
// names are matched exactly (case-sensitive); there is no fuzzy
// matching. An empty history produces an empty ranking, not an error.
func Rank(history []model.TripRecord, category model.Category) ([]model.VendorCount, error) {
	if !category.Valid() {
		return nil, &travel_errors.UnknownCategoryError{Category: string(category)}
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, trip := range history {
		vendor := vendorFor(trip, category)
		if vendor == "" || strings.EqualFold(vendor, noneSentinel) {
			continue
		}
		if _, ok := counts[vendor]; !ok {
			firstSeen[vendor] = order
			order++
		}
		counts[vendor]++
	}

	ranking := make([]model.VendorCount, 0, len(counts))
	for vendor, count := range counts {
		ranking = append(ranking, model.VendorCount{Vendor: vendor, Count: count})
	}

	// Descending by count; the secondary key is the first-seen index so
	// ties never depend on map iteration order.
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		return firstSeen[ranking[i].Vendor] < firstSeen[ranking[j].Vendor]
	})

	return ranking, nil
}

// Annotate returns a copy of the offers with IsPreferred set on every
// offer whose vendor is in the top topK of the ranking. The input
// offers are not mutated.
func Annotate(offers []model.Offer, ranking []model.VendorCount, topK int) []model.Offer {
	top := make(map[string]bool, topK)
	for i, vc := range ranking {
		if i >= topK {
			break
		}
		top[vc.Vendor] = true
	}

	annotated := make([]model.Offer, len(offers))
	for i, offer := range offers {
		offer.IsPreferred = top[offer.Vendor]
		annotated[i] = offer
	}
	return annotated
}

// AnnotateAll annotates offers for several categories concurrently, one
// goroutine per category, against the supplied per-category rankings.
// Input offers are not mutated. An unknown category key fails the whole
// call with an UnknownCategoryError.
func AnnotateAll(ctx context.Context, rankings map[model.Category][]model.VendorCount, offersByCategory map[model.Category][]model.Offer, topK int) (map[model.Category][]model.Offer, error) {
	results := make([][]model.Offer, 0, len(offersByCategory))
	categories := make([]model.Category, 0, len(offersByCategory))

	g, _ := errgroup.WithContext(ctx)
	for category, offers := range offersByCategory {
		categories = append(categories, category)
		results = append(results, nil)
		i, category, offers := len(results)-1, category, offers
		g.Go(func() error {
			if !category.Valid() {
				return &travel_errors.UnknownCategoryError{Category: string(category)}
			}
			results[i] = Annotate(offers, rankings[category], topK)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	annotated := make(map[model.Category][]model.Offer, len(categories))
	for i, category := range categories {
		annotated[category] = results[i]
	}
	return annotated, nil
}

// BuildProfile derives the full preference profile for a traveler from
// their trip history: one ranking per category plus the typical cabin
// class and average trip cost.
func BuildProfile(travelerID string, history []model.TripRecord) (model.PreferenceProfile, error) {
	profile := model.PreferenceProfile{
		TravelerID:  travelerID,
		Rankings:    make(map[model.Category][]model.VendorCount, 3),
		TotalTrips:  len(history),
		GeneratedAt: time.Now(),
	}

	for _, category := range []model.Category{model.CategoryFlight, model.CategoryHotel, model.CategoryCar} {
		ranking, err := Rank(history, category)
		if err != nil {
			return model.PreferenceProfile{}, err
		}
		profile.Rankings[category] = ranking
	}

	profile.TypicalCabinClass = typicalCabinClass(history)

	var costSum float64
	var costCount int
	for _, trip := range history {
		if trip.TotalCost > 0 {
			costSum += trip.TotalCost
			costCount++
		}
	}
	if costCount > 0 {
		profile.AverageTripCost = costSum / float64(costCount)
	}

	return profile, nil
}

func vendorFor(trip model.TripRecord, category model.Category) string {
	switch category {
	case model.CategoryFlight:
		return trip.Airline
	case model.CategoryHotel:
		return trip.HotelBrand
	case model.CategoryCar:
		return trip.RentalCarCompany
	}
	return ""
}

func typicalCabinClass(history []model.TripRecord) string {
	counts := make(map[string]int)

	// Ties resolve to the class that reached the count first, since a
	// later class with an equal count never exceeds bestCount.
	best := "economy"
	bestCount := 0
	for _, trip := range history {
		if trip.CabinClass == "" {
			continue
		}
		counts[trip.CabinClass]++
		if counts[trip.CabinClass] > bestCount {
			best = trip.CabinClass
			bestCount = counts[trip.CabinClass]
		}
	}
	return best
}
