package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTier(t *testing.T) {
	rules := testRules()

	cases := []struct {
		destination string
		want        Tier
	}{
		{"new york", Tier1},
		{"New York", Tier1},
		{"  NEW YORK ", Tier1},
		{"chicago", Tier2},
		{"Boise", Tier3},
		{"", Tier3},
		{"unknown city", Tier3},
	}

	for _, tc := range cases {
		t.Run(tc.destination, func(t *testing.T) {
			assert.Equal(t, tc.want, rules.ResolveTier(tc.destination))
		})
	}
}
