package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCSVHeader(t *testing.T) {
	t.Run("accepts the canonical header", func(t *testing.T) {
		header := []string{
			"Trip Code", "Origin", "Destination", "Airline", "Hotel",
			"Flight Class", "Rental Car", "Trip Date", "Total Cost",
		}
		assert.NoError(t, checkCSVHeader(header))
	})

	t.Run("accepts case and whitespace variants", func(t *testing.T) {
		header := []string{
			"trip code", " ORIGIN", "Destination ", "airline", "Hotel",
			"flight class", "rental car", "trip date", "total cost",
		}
		assert.NoError(t, checkCSVHeader(header))
	})

	t.Run("rejects missing columns", func(t *testing.T) {
		assert.Error(t, checkCSVHeader([]string{"Trip Code", "Origin"}))
	})

	t.Run("rejects reordered columns", func(t *testing.T) {
		header := []string{
			"Origin", "Trip Code", "Destination", "Airline", "Hotel",
			"Flight Class", "Rental Car", "Trip Date", "Total Cost",
		}
		assert.Error(t, checkCSVHeader(header))
	})
}

func TestParseTripRow(t *testing.T) {
	t.Run("parses a full row", func(t *testing.T) {
		row := []string{"T-1001", "Chicago", "New York", "Delta", "Marriott", "economy", "none", "2026-03-14", "1280.50"}

		trip, err := parseTripRow("emp-42", row)
		require.NoError(t, err)

		assert.Equal(t, "T-1001", trip.ID)
		assert.Equal(t, "emp-42", trip.TravelerID)
		assert.Equal(t, "Chicago", trip.Origin)
		assert.Equal(t, "New York", trip.Destination)
		assert.Equal(t, "Delta", trip.Airline)
		assert.Equal(t, "Marriott", trip.HotelBrand)
		assert.Equal(t, "economy", trip.CabinClass)
		assert.Equal(t, "none", trip.RentalCarCompany)
		assert.Equal(t, "2026-03-14", trip.TripDate.Format("2006-01-02"))
		assert.InDelta(t, 1280.50, trip.TotalCost, 0.001)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		row := []string{"T-1001", "Chicago", "New York", "Delta", "Marriott", "economy", "none", "03/14/2026", "1280.50"}
		_, err := parseTripRow("emp-42", row)
		assert.Error(t, err)
	})

	t.Run("rejects a non-numeric cost", func(t *testing.T) {
		row := []string{"T-1001", "Chicago", "New York", "Delta", "Marriott", "economy", "none", "2026-03-14", "expensive"}
		_, err := parseTripRow("emp-42", row)
		assert.Error(t, err)
	})

	t.Run("rejects short rows", func(t *testing.T) {
		_, err := parseTripRow("emp-42", []string{"T-1001", "Chicago"})
		assert.Error(t, err)
	})
}
