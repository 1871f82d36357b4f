package service

import (
	"context"
	"hash/fnv"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	logger "github.com/traveldesk/api/logging"
	"github.com/traveldesk/api/model"
)

type IResearchService interface {
	GetDestinationIntel(ctx context.Context, city string) (*model.DestinationIntel, error)
}

// ResearchService serves destination enrichment data. Everything here
// is synthesized; live weather and advisory upstreams are future work.
// Intel is derived from the city name, so repeat lookups for the same
// destination return the same data.
type ResearchService struct{}

func NewResearchService() *ResearchService {
	return &ResearchService{}
}

var weatherConditions = []string{
	"sunny", "partly cloudy", "overcast", "light rain", "scattered showers", "clear",
}

var advisories = []string{
	"No current travel warnings or advisories. Exercise normal precautions.",
	"Exercise increased caution in crowded tourist areas. Keep valuables secured.",
	"Major convention in town this week; expect higher hotel rates and traffic.",
	"Ongoing transit maintenance may delay airport connections. Allow extra time.",
}

var restaurantPool = []model.Restaurant{
	{Name: "The Capital Grille", Cuisine: "steakhouse", PriceLevel: 4, Rating: 4.6, Neighborhood: "Downtown"},
	{Name: "Nobu", Cuisine: "japanese", PriceLevel: 4, Rating: 4.5, Neighborhood: "Business District"},
	{Name: "Local Bistro", Cuisine: "american", PriceLevel: 3, Rating: 4.4, Neighborhood: "Convention Center"},
	{Name: "Sushi Den", Cuisine: "sushi", PriceLevel: 2, Rating: 4.3, Neighborhood: "Hotel District"},
	{Name: "Italian Kitchen", Cuisine: "italian", PriceLevel: 3, Rating: 4.5, Neighborhood: "Downtown"},
	{Name: "Saffron House", Cuisine: "indian", PriceLevel: 2, Rating: 4.4, Neighborhood: "Midtown"},
	{Name: "Le Petit Jardin", Cuisine: "french", PriceLevel: 4, Rating: 4.7, Neighborhood: "Old Town"},
	{Name: "Taqueria del Sol", Cuisine: "mexican", PriceLevel: 1, Rating: 4.2, Neighborhood: "Market District"},
	{Name: "Harbor Oyster Bar", Cuisine: "seafood", PriceLevel: 3, Rating: 4.5, Neighborhood: "Waterfront"},
	{Name: "Golden Dragon", Cuisine: "chinese", PriceLevel: 2, Rating: 4.3, Neighborhood: "Business District"},
}

var activityPool = []string{
	"Local Museum of Art",
	"Historic District walking tour",
	"Observation deck",
	"Waterfront district",
	"Riverside running trail",
	"Botanical gardens",
	"Farmers market",
	"Science and industry museum",
	"Architecture boat tour",
	"City park bike loop",
}

func (s *ResearchService) GetDestinationIntel(ctx context.Context, city string) (*model.DestinationIntel, error) {
	normalized := strings.TrimSpace(city)
	rng := rand.New(rand.NewSource(citySeed(normalized)))

	low := 40 + rng.Intn(40)
	high := low + 8 + rng.Intn(15)

	intel := &model.DestinationIntel{
		City: normalized,
		Weather: model.WeatherForecast{
			TemperatureLowF:  low,
			TemperatureHighF: high,
			Conditions:       weatherConditions[rng.Intn(len(weatherConditions))],
			PrecipChance:     rng.Intn(80),
		},
		Advisory:        advisories[rng.Intn(len(advisories))],
		Restaurants:     pickRestaurants(rng, 5),
		Activities:      pickActivities(rng, 5),
		GroundTransport: buildTransportOptions(rng),
	}

	logger.Info("Destination intel generated", zap.String("city", normalized))
	return intel, nil
}

// citySeed hashes the city name so intel is stable per destination.
// Case and surrounding whitespace do not change the result.
func citySeed(city string) int64 {
	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(city))))
	return int64(h.Sum64())
}

func pickRestaurants(rng *rand.Rand, n int) []model.Restaurant {
	idx := rng.Perm(len(restaurantPool))
	picked := make([]model.Restaurant, 0, n)
	for _, i := range idx[:n] {
		picked = append(picked, restaurantPool[i])
	}
	return picked
}

func pickActivities(rng *rand.Rand, n int) []string {
	idx := rng.Perm(len(activityPool))
	picked := make([]string, 0, n)
	for _, i := range idx[:n] {
		picked = append(picked, activityPool[i])
	}
	return picked
}

func buildTransportOptions(rng *rand.Rand) []model.TransportOption {
	return []model.TransportOption{
		{Mode: "rideshare", CostUSD: float64(30 + rng.Intn(25)), DurationMin: 20 + rng.Intn(20), Notes: "taxi, Uber or Lyft from the airport"},
		{Mode: "airport shuttle", CostUSD: float64(12 + rng.Intn(12)), DurationMin: 35 + rng.Intn(15), Notes: "shared van"},
		{Mode: "public transit", CostUSD: float64(3 + rng.Intn(5)), DurationMin: 40 + rng.Intn(20), Notes: "train plus short walk"},
		{Mode: "hotel shuttle", CostUSD: 0, DurationMin: 30 + rng.Intn(15), Notes: "availability varies by hotel"},
	}
}
