// model/research.go
package model

// DestinationIntel bundles the enrichment data shown alongside a trip
// plan. All of it is synthesized locally; there are no live upstreams.
type DestinationIntel struct {
	City            string            `json:"city"`
	Weather         WeatherForecast   `json:"weather"`
	Advisory        string            `json:"advisory"`
	Restaurants     []Restaurant      `json:"restaurants"`
	Activities      []string          `json:"activities"`
	GroundTransport []TransportOption `json:"ground_transport"`
}

type WeatherForecast struct {
	TemperatureLowF  int    `json:"temperature_low_f"`
	TemperatureHighF int    `json:"temperature_high_f"`
	Conditions       string `json:"conditions"`
	PrecipChance     int    `json:"precip_chance"`
}

type Restaurant struct {
	Name         string  `json:"name"`
	Cuisine      string  `json:"cuisine"`
	PriceLevel   int     `json:"price_level"` // 1-4
	Rating       float64 `json:"rating"`
	Neighborhood string  `json:"neighborhood"`
}

type TransportOption struct {
	Mode        string  `json:"mode"`
	CostUSD     float64 `json:"cost_usd"`
	DurationMin int     `json:"duration_min"`
	Notes       string  `json:"notes,omitempty"`
}
