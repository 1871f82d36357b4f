// dao/trip_dao_test.go
package dao

import (
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traveldesk/api/model"
)

func TestBuildTripSearchQuery(t *testing.T) {
	t.Run("empty criteria", func(t *testing.T) {
		query, params := buildTripSearchQuery(model.TripSearchCriteria{})

		assert.Equal(t, "MATCH (t:TRIP) WHERE 1=1 RETURN t ORDER BY t.tripDate DESC", query)
		assert.Empty(t, params)
	})

	t.Run("filters become AND clauses", func(t *testing.T) {
		from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		query, params := buildTripSearchQuery(model.TripSearchCriteria{
			TravelerID: "emp-42",
			Airline:    "Delta",
			FromDate:   &from,
		})

		assert.Contains(t, query, "t.travelerId = $travelerId")
		assert.Contains(t, query, "t.airline = $airline")
		assert.Contains(t, query, "t.tripDate >= $fromDate")
		assert.NotContains(t, query, "$destination")

		assert.Equal(t, "emp-42", params["travelerId"])
		assert.Equal(t, "Delta", params["airline"])
		assert.Equal(t, "2026-01-01T00:00:00Z", params["fromDate"])
	})

	t.Run("offset and limit paginate", func(t *testing.T) {
		query, params := buildTripSearchQuery(model.TripSearchCriteria{
			TravelerID: "emp-42",
			Limit:      10,
			Offset:     20,
		})

		assert.Contains(t, query, " SKIP $offset LIMIT $limit")
		assert.Equal(t, 20, params["offset"])
		assert.Equal(t, 10, params["limit"])
	})

	t.Run("offset without limit", func(t *testing.T) {
		query, params := buildTripSearchQuery(model.TripSearchCriteria{Offset: 5})

		assert.Contains(t, query, " SKIP $offset")
		assert.NotContains(t, query, "LIMIT")
		assert.Equal(t, 5, params["offset"])
	})

	t.Run("limit without offset", func(t *testing.T) {
		query, params := buildTripSearchQuery(model.TripSearchCriteria{Limit: 25})

		assert.Contains(t, query, " LIMIT $limit")
		assert.NotContains(t, query, "SKIP")
		assert.Equal(t, 25, params["limit"])
	})
}

func TestMapNodeToTrip(t *testing.T) {
	t.Run("maps string temporal props", func(t *testing.T) {
		node := neo4j.Node{Props: map[string]interface{}{
			"id":          "T-1001",
			"travelerId":  "emp-42",
			"origin":      "SFO",
			"destination": "Chicago",
			"airline":     "Delta",
			"cabinClass":  "economy",
			"totalCost":   1280.50,
			"tripDate":    "2026-03-14T00:00:00Z",
			"createdAt":   "2026-03-15T09:30:00Z",
		}}

		trip, err := mapNodeToTrip(node)
		require.NoError(t, err)

		assert.Equal(t, "T-1001", trip.ID)
		assert.Equal(t, "emp-42", trip.TravelerID)
		assert.Equal(t, 1280.50, trip.TotalCost)
		assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), trip.TripDate)
		assert.Equal(t, 9, trip.CreatedAt.Hour())
	})

	t.Run("maps native temporal props", func(t *testing.T) {
		tripDate := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
		node := neo4j.Node{Props: map[string]interface{}{
			"id":         "T-1002",
			"travelerId": "emp-42",
			"tripDate":   tripDate,
		}}

		trip, err := mapNodeToTrip(node)
		require.NoError(t, err)
		assert.True(t, trip.TripDate.Equal(tripDate))
	})

	t.Run("missing id fails", func(t *testing.T) {
		node := neo4j.Node{Props: map[string]interface{}{
			"travelerId": "emp-42",
		}}

		_, err := mapNodeToTrip(node)
		assert.Error(t, err)
	})
}
