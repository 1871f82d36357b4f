// policy/rules.go
package policy

import (
	"github.com/traveldesk/api/config"
	travel_errors "github.com/traveldesk/api/errors"
)

// Tier is a hotel cost-cap bucket assigned to a destination city.
// Tier-1 carries the highest nightly cap, tier-3 the lowest.
type Tier string

const (
	Tier1 Tier = "tier-1"
	Tier2 Tier = "tier-2"
	Tier3 Tier = "tier-3"
)

// RuleSet is the fixed travel policy rule table. It is loaded once at
// startup and treated as immutable afterwards; validators receive it
// by value and never modify it, so concurrent evaluations are safe.
type RuleSet struct {
	Flight   FlightRule   `json:"flight"`
	Hotel    HotelRule    `json:"hotel"`
	Car      CarRule      `json:"car"`
	Approval ApprovalRule `json:"approval"`
}

type FlightRule struct {
	MaxDomestic      float64  `json:"max_domestic"`
	MaxInternational float64  `json:"max_international"`
	AllowedCabins    []string `json:"allowed_cabins"`
}

type HotelRule struct {
	TierCaps   map[Tier]float64 `json:"tier_caps"`
	TierCities map[string]Tier  `json:"tier_cities"` // lowercase city name -> tier
}

type CarRule struct {
	MaxDailyRate   float64  `json:"max_daily_rate"`
	AllowedClasses []string `json:"allowed_classes"`
}

// ApprovalRule holds the total-cost thresholds separating the approval
// tiers. Both bounds are inclusive: a package costing exactly AutoLimit
// is auto-approved, exactly ManagerLimit needs only a manager.
type ApprovalRule struct {
	AutoLimit    float64 `json:"auto_limit"`
	ManagerLimit float64 `json:"manager_limit"`
}

// LoadRules builds the rule table from the loaded configuration. It
// returns ErrEmptyRuleSet when the table is missing or incoherent;
// callers must abort rather than evaluate against a defaulted table.
func LoadRules() (RuleSet, error) {
	rules := RuleSet{
		Flight: FlightRule{
			MaxDomestic:      config.GetFloat64("policy.flight.maxDomestic"),
			MaxInternational: config.GetFloat64("policy.flight.maxInternational"),
			AllowedCabins:    config.GetStringSlice("policy.flight.allowedCabins"),
		},
		Hotel: HotelRule{
			TierCaps: map[Tier]float64{
				Tier1: config.GetFloat64("policy.hotel.tier1Cap"),
				Tier2: config.GetFloat64("policy.hotel.tier2Cap"),
				Tier3: config.GetFloat64("policy.hotel.tier3Cap"),
			},
			TierCities: make(map[string]Tier),
		},
		Car: CarRule{
			MaxDailyRate:   config.GetFloat64("policy.car.maxDailyRate"),
			AllowedClasses: config.GetStringSlice("policy.car.allowedClasses"),
		},
		Approval: ApprovalRule{
			AutoLimit:    config.GetFloat64("policy.approval.autoLimit"),
			ManagerLimit: config.GetFloat64("policy.approval.managerLimit"),
		},
	}

	for _, city := range config.GetStringSlice("policy.hotel.tier1Cities") {
		rules.Hotel.TierCities[city] = Tier1
	}
	for _, city := range config.GetStringSlice("policy.hotel.tier2Cities") {
		rules.Hotel.TierCities[city] = Tier2
	}

	if err := rules.Check(); err != nil {
		return RuleSet{}, err
	}
	return rules, nil
}

// Check verifies the rule table is coherent enough to evaluate against.
func (r RuleSet) Check() error {
	if r.Flight.MaxDomestic <= 0 || r.Flight.MaxInternational <= 0 {
		return travel_errors.ErrEmptyRuleSet
	}
	if len(r.Flight.AllowedCabins) == 0 {
		return travel_errors.ErrEmptyRuleSet
	}
	if len(r.Hotel.TierCaps) == 0 {
		return travel_errors.ErrEmptyRuleSet
	}
	for _, c := range r.Hotel.TierCaps {
		if c <= 0 {
			return travel_errors.ErrEmptyRuleSet
		}
	}
	if r.Car.MaxDailyRate <= 0 || len(r.Car.AllowedClasses) == 0 {
		return travel_errors.ErrEmptyRuleSet
	}
	if r.Approval.AutoLimit <= 0 || r.Approval.ManagerLimit < r.Approval.AutoLimit {
		return travel_errors.ErrEmptyRuleSet
	}
	return nil
}
