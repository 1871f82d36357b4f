// policy/tiers.go
package policy

import "strings"

// ResolveTier maps a destination city to its hotel cost-cap tier.
// Matching is case-insensitive and ignores surrounding whitespace.
// Unknown destinations resolve to tier-3, the lowest nightly cap:
// an unrecognized city fails closed instead of getting a generous cap.
func (r RuleSet) ResolveTier(destination string) Tier {
	city := strings.ToLower(strings.TrimSpace(destination))
	if tier, ok := r.Hotel.TierCities[city]; ok {
		return tier
	}
	return Tier3
}
