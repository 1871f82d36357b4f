// policy/validator.go
package policy

import (
	"fmt"
	"strings"

	travel_errors "github.com/traveldesk/api/errors"
	"github.com/traveldesk/api/model"
)

// Validator checks trip packages against the fixed rule table. It is
// stateless apart from the immutable rules, so a single instance can
// serve concurrent requests.
type Validator struct {
	rules RuleSet
}

func NewValidator(rules RuleSet) (*Validator, error) {
	if err := rules.Check(); err != nil {
		return nil, err
	}
	return &Validator{rules: rules}, nil
}

func (v *Validator) Rules() RuleSet {
	return v.rules
}

// Validate compares every applicable rule against the package and
// returns a fresh report. Rules are never short-circuited: a package
// can carry several simultaneous violations, but each rule contributes
// at most one entry. A missing required attribute aborts validation
// with a MalformedOfferError instead of passing silently.
func (v *Validator) Validate(pkg model.TripPackage) (model.ComplianceReport, error) {
	if err := checkPackageShape(pkg); err != nil {
		return model.ComplianceReport{}, err
	}

	var violations []string

	// Flight: cost bound selected by the explicit international flag.
	flightCap := v.rules.Flight.MaxDomestic
	bound := "domestic"
	if pkg.International {
		flightCap = v.rules.Flight.MaxInternational
		bound = "international"
	}
	flight := pkg.Flight.Flight
	if flight.Price > flightCap {
		violations = append(violations, fmt.Sprintf(
			"flight cost %g exceeds %s cap %g", flight.Price, bound, flightCap))
	}
	if !containsFold(v.rules.Flight.AllowedCabins, flight.CabinClass) {
		violations = append(violations, fmt.Sprintf(
			"flight cabin class %q is not allowed (allowed: %s)",
			flight.CabinClass, strings.Join(v.rules.Flight.AllowedCabins, ", ")))
	}

	// Hotel: nightly cap resolved from the destination tier.
	tier := v.rules.ResolveTier(pkg.Destination)
	hotelCap := v.rules.Hotel.TierCaps[tier]
	hotel := pkg.Hotel.Hotel
	if hotel.NightlyRate > hotelCap {
		violations = append(violations, fmt.Sprintf(
			"hotel nightly rate %g exceeds %s cap %g", hotel.NightlyRate, tier, hotelCap))
	}

	totalCost := flight.Price + hotel.NightlyRate*float64(hotel.Nights)

	// Car rules only apply when the package includes a rental.
	if pkg.Car != nil {
		car := pkg.Car.Car
		if car.DailyRate > v.rules.Car.MaxDailyRate {
			violations = append(violations, fmt.Sprintf(
				"car daily rate %g exceeds cap %g", car.DailyRate, v.rules.Car.MaxDailyRate))
		}
		if !containsFold(v.rules.Car.AllowedClasses, car.VehicleClass) {
			violations = append(violations, fmt.Sprintf(
				"car vehicle class %q is not allowed (allowed: %s)",
				car.VehicleClass, strings.Join(v.rules.Car.AllowedClasses, ", ")))
		}
		totalCost += car.DailyRate * float64(car.Days)
	}

	return model.ComplianceReport{
		Compliant:    len(violations) == 0,
		Violations:   violations,
		ApprovalTier: v.ApprovalTier(totalCost),
		TotalCost:    totalCost,
	}, nil
}

// ApprovalTier resolves the sign-off level for a total package cost.
// Both thresholds are inclusive-below: a cost exactly at a threshold
// falls in the lower tier.
func (v *Validator) ApprovalTier(totalCost float64) model.ApprovalTier {
	switch {
	case totalCost <= v.rules.Approval.AutoLimit:
		return model.ApprovalAuto
	case totalCost <= v.rules.Approval.ManagerLimit:
		return model.ApprovalManager
	default:
		return model.ApprovalVP
	}
}

func checkPackageShape(pkg model.TripPackage) error {
	if pkg.Flight == nil || pkg.Flight.Flight == nil {
		return &travel_errors.MalformedOfferError{Category: "flight", Field: "flight attributes"}
	}
	if pkg.Flight.Flight.Price <= 0 {
		return &travel_errors.MalformedOfferError{Category: "flight", Field: "price"}
	}
	if pkg.Flight.Flight.CabinClass == "" {
		return &travel_errors.MalformedOfferError{Category: "flight", Field: "cabin_class"}
	}
	if pkg.Hotel == nil || pkg.Hotel.Hotel == nil {
		return &travel_errors.MalformedOfferError{Category: "hotel", Field: "hotel attributes"}
	}
	if pkg.Hotel.Hotel.NightlyRate <= 0 {
		return &travel_errors.MalformedOfferError{Category: "hotel", Field: "nightly_rate"}
	}
	if pkg.Hotel.Hotel.Nights <= 0 {
		return &travel_errors.MalformedOfferError{Category: "hotel", Field: "nights"}
	}
	if pkg.Car != nil {
		if pkg.Car.Car == nil {
			return &travel_errors.MalformedOfferError{Category: "car", Field: "car attributes"}
		}
		if pkg.Car.Car.DailyRate <= 0 {
			return &travel_errors.MalformedOfferError{Category: "car", Field: "daily_rate"}
		}
		if pkg.Car.Car.Days <= 0 {
			return &travel_errors.MalformedOfferError{Category: "car", Field: "days"}
		}
		if pkg.Car.Car.VehicleClass == "" {
			return &travel_errors.MalformedOfferError{Category: "car", Field: "vehicle_class"}
		}
	}
	return nil
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}
