package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	travel_errors "github.com/traveldesk/api/errors"
	"github.com/traveldesk/api/model"
)

func testRules() RuleSet {
	return RuleSet{
		Flight: FlightRule{
			MaxDomestic:      600,
			MaxInternational: 1800,
			AllowedCabins:    []string{"economy"},
		},
		Hotel: HotelRule{
			TierCaps: map[Tier]float64{Tier1: 250, Tier2: 200, Tier3: 150},
			TierCities: map[string]Tier{
				"new york": Tier1,
				"chicago":  Tier2,
			},
		},
		Car: CarRule{
			MaxDailyRate:   75,
			AllowedClasses: []string{"compact", "mid-size"},
		},
		Approval: ApprovalRule{AutoLimit: 1500, ManagerLimit: 2500},
	}
}

func compliantPackage() model.TripPackage {
	return model.TripPackage{
		Destination: "Chicago",
		Flight: &model.Offer{
			Category: model.CategoryFlight,
			Vendor:   "Delta",
			Flight:   &model.FlightAttributes{Price: 420, CabinClass: "economy"},
		},
		Hotel: &model.Offer{
			Category: model.CategoryHotel,
			Vendor:   "Marriott",
			Hotel:    &model.HotelAttributes{NightlyRate: 180, Nights: 3},
		},
	}
}

func TestValidateCompliantPackage(t *testing.T) {
	v, err := NewValidator(testRules())
	require.NoError(t, err)

	report, err := v.Validate(compliantPackage())
	require.NoError(t, err)

	assert.True(t, report.Compliant)
	assert.Empty(t, report.Violations)
	assert.Equal(t, model.ApprovalAuto, report.ApprovalTier)
	assert.InDelta(t, 960.0, report.TotalCost, 0.001)
}

func TestValidateAccumulatesAllViolations(t *testing.T) {
	v, err := NewValidator(testRules())
	require.NoError(t, err)

	pkg := model.TripPackage{
		Destination: "New York",
		Flight: &model.Offer{
			Category: model.CategoryFlight,
			Vendor:   "Delta",
			Flight:   &model.FlightAttributes{Price: 750, CabinClass: "business"},
		},
		Hotel: &model.Offer{
			Category: model.CategoryHotel,
			Vendor:   "Marriott",
			Hotel:    &model.HotelAttributes{NightlyRate: 300, Nights: 2},
		},
		Car: &model.Offer{
			Category: model.CategoryCar,
			Vendor:   "Hertz",
			Car:      &model.CarAttributes{DailyRate: 90, Days: 2, VehicleClass: "luxury"},
		},
	}

	report, err := v.Validate(pkg)
	require.NoError(t, err)

	assert.False(t, report.Compliant)
	assert.Len(t, report.Violations, 5)

	// Each rule contributes at most once.
	seen := make(map[string]bool)
	for _, violation := range report.Violations {
		assert.False(t, seen[violation], "duplicate violation: %s", violation)
		seen[violation] = true
	}
}

func TestValidateHotelTierCaps(t *testing.T) {
	v, err := NewValidator(testRules())
	require.NoError(t, err)

	t.Run("unknown city falls to the lowest cap", func(t *testing.T) {
		pkg := compliantPackage()
		pkg.Destination = "Boise"
		pkg.Hotel.Hotel.NightlyRate = 180

		report, err := v.Validate(pkg)
		require.NoError(t, err)

		require.Len(t, report.Violations, 1)
		assert.Equal(t, "hotel nightly rate 180 exceeds tier-3 cap 150", report.Violations[0])
	})

	t.Run("tier-1 city allows a higher rate", func(t *testing.T) {
		pkg := compliantPackage()
		pkg.Destination = "New York"
		pkg.Hotel.Hotel.NightlyRate = 240

		report, err := v.Validate(pkg)
		require.NoError(t, err)
		assert.True(t, report.Compliant)
	})

	t.Run("city match ignores case and whitespace", func(t *testing.T) {
		pkg := compliantPackage()
		pkg.Destination = "  NEW YORK  "
		pkg.Hotel.Hotel.NightlyRate = 240

		report, err := v.Validate(pkg)
		require.NoError(t, err)
		assert.True(t, report.Compliant)
	})
}

func TestValidateFlightBounds(t *testing.T) {
	v, err := NewValidator(testRules())
	require.NoError(t, err)

	t.Run("international flag raises the cap", func(t *testing.T) {
		pkg := compliantPackage()
		pkg.Flight.Flight.Price = 1200
		pkg.International = true

		report, err := v.Validate(pkg)
		require.NoError(t, err)
		assert.True(t, report.Compliant)
	})

	t.Run("same price violates domestically", func(t *testing.T) {
		pkg := compliantPackage()
		pkg.Flight.Flight.Price = 1200
		pkg.International = false

		report, err := v.Validate(pkg)
		require.NoError(t, err)
		assert.False(t, report.Compliant)
		require.Len(t, report.Violations, 1)
		assert.Contains(t, report.Violations[0], "domestic cap")
	})

	t.Run("cabin class check is case-insensitive", func(t *testing.T) {
		pkg := compliantPackage()
		pkg.Flight.Flight.CabinClass = "Economy"

		report, err := v.Validate(pkg)
		require.NoError(t, err)
		assert.True(t, report.Compliant)
	})
}

func TestValidateCarRules(t *testing.T) {
	v, err := NewValidator(testRules())
	require.NoError(t, err)

	t.Run("car is optional", func(t *testing.T) {
		report, err := v.Validate(compliantPackage())
		require.NoError(t, err)
		assert.True(t, report.Compliant)
	})

	t.Run("car adds to the package total", func(t *testing.T) {
		pkg := compliantPackage()
		pkg.Car = &model.Offer{
			Category: model.CategoryCar,
			Vendor:   "Hertz",
			Car:      &model.CarAttributes{DailyRate: 70, Days: 3, VehicleClass: "compact"},
		}

		report, err := v.Validate(pkg)
		require.NoError(t, err)
		assert.True(t, report.Compliant)
		assert.InDelta(t, 1170.0, report.TotalCost, 0.001)
	})
}

func TestApprovalTierBoundaries(t *testing.T) {
	v, err := NewValidator(testRules())
	require.NoError(t, err)

	cases := []struct {
		name      string
		totalCost float64
		want      model.ApprovalTier
	}{
		{"well under auto limit", 960, model.ApprovalAuto},
		{"exactly at auto limit", 1500, model.ApprovalAuto},
		{"just over auto limit", 1500.01, model.ApprovalManager},
		{"exactly at manager limit", 2500, model.ApprovalManager},
		{"over manager limit", 2500.01, model.ApprovalVP},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, v.ApprovalTier(tc.totalCost))
		})
	}
}

func TestValidateIdempotent(t *testing.T) {
	v, err := NewValidator(testRules())
	require.NoError(t, err)

	pkg := compliantPackage()
	pkg.Hotel.Hotel.NightlyRate = 300

	first, err := v.Validate(pkg)
	require.NoError(t, err)
	second, err := v.Validate(pkg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestValidateMalformedOffers(t *testing.T) {
	v, err := NewValidator(testRules())
	require.NoError(t, err)

	cases := []struct {
		name   string
		mutate func(*model.TripPackage)
		field  string
	}{
		{"missing flight", func(p *model.TripPackage) { p.Flight = nil }, "flight attributes"},
		{"missing flight price", func(p *model.TripPackage) { p.Flight.Flight.Price = 0 }, "price"},
		{"missing cabin class", func(p *model.TripPackage) { p.Flight.Flight.CabinClass = "" }, "cabin_class"},
		{"missing hotel", func(p *model.TripPackage) { p.Hotel = nil }, "hotel attributes"},
		{"missing nightly rate", func(p *model.TripPackage) { p.Hotel.Hotel.NightlyRate = 0 }, "nightly_rate"},
		{"missing nights", func(p *model.TripPackage) { p.Hotel.Hotel.Nights = 0 }, "nights"},
		{"car without attributes", func(p *model.TripPackage) {
			p.Car = &model.Offer{Category: model.CategoryCar, Vendor: "Hertz"}
		}, "car attributes"},
		{"car without vehicle class", func(p *model.TripPackage) {
			p.Car = &model.Offer{
				Category: model.CategoryCar,
				Vendor:   "Hertz",
				Car:      &model.CarAttributes{DailyRate: 70, Days: 3},
			}
		}, "vehicle_class"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pkg := compliantPackage()
			tc.mutate(&pkg)

			_, err := v.Validate(pkg)
			require.Error(t, err)

			var malformed *travel_errors.MalformedOfferError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tc.field, malformed.Field)
		})
	}
}

func TestNewValidatorRejectsBrokenRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RuleSet)
	}{
		{"zero flight cap", func(r *RuleSet) { r.Flight.MaxDomestic = 0 }},
		{"no allowed cabins", func(r *RuleSet) { r.Flight.AllowedCabins = nil }},
		{"no tier caps", func(r *RuleSet) { r.Hotel.TierCaps = nil }},
		{"negative tier cap", func(r *RuleSet) { r.Hotel.TierCaps[Tier3] = -1 }},
		{"zero car cap", func(r *RuleSet) { r.Car.MaxDailyRate = 0 }},
		{"inverted approval limits", func(r *RuleSet) { r.Approval.ManagerLimit = 1000 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rules := testRules()
			tc.mutate(&rules)

			_, err := NewValidator(rules)
			assert.ErrorIs(t, err, travel_errors.ErrEmptyRuleSet)
		})
	}
}
