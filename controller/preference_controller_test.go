// controller/preference_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/traveldesk/api/controller"
	travel_errors "github.com/traveldesk/api/errors"
	logger "github.com/traveldesk/api/logging"
	"github.com/traveldesk/api/model"
	test_mock "github.com/traveldesk/api/test/mock"
)

func TestPreferenceController(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	mockEvaluation := new(test_mock.MockEvaluationService)
	preferenceController := controller.NewPreferenceController(mockEvaluation)
	router := setupRouter()
	api := router.Group("/")
	preferenceController.RegisterRoutes(api)

	t.Run("GetProfile", func(t *testing.T) {
		profile := &model.PreferenceProfile{
			TravelerID: "emp-42",
			Rankings: map[model.Category][]model.VendorCount{
				model.CategoryFlight: {{Vendor: "Delta", Count: 3}},
			},
			TypicalCabinClass: "economy",
			AverageTripCost:   1600,
			TotalTrips:        3,
			GeneratedAt:       time.Now().UTC(),
		}
		mockEvaluation.On("GetPreferenceProfile", mock.Anything, "emp-42").
			Return(profile, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/preferences/profile", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got model.PreferenceProfile
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "emp-42", got.TravelerID)
		assert.Equal(t, 3, got.TotalTrips)
	})

	t.Run("RankVendors", func(t *testing.T) {
		ranking := []model.VendorCount{
			{Vendor: "Delta", Count: 3},
			{Vendor: "United", Count: 1},
		}
		mockEvaluation.On("RankVendors", mock.Anything, "emp-42", model.CategoryFlight).
			Return(ranking, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/preferences/rankings/flight", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Delta")
	})

	t.Run("RankVendors_UnknownCategory", func(t *testing.T) {
		mockEvaluation.On("RankVendors", mock.Anything, "emp-42", model.Category("train")).
			Return(nil, &travel_errors.UnknownCategoryError{Category: "train"}).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/preferences/rankings/train", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("AnnotateOffers", func(t *testing.T) {
		annotated := []model.Offer{
			{Category: model.CategoryFlight, Vendor: "Delta", IsPreferred: true},
			{Category: model.CategoryFlight, Vendor: "Spirit"},
		}
		mockEvaluation.On("AnnotateOffers", mock.Anything, "emp-42", model.CategoryFlight, mock.Anything).
			Return(annotated, nil).Once()

		body := `{
			"category": "flight",
			"offers": [
				{"category": "flight", "vendor": "Delta"},
				{"category": "flight", "vendor": "Spirit"}
			]
		}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/preferences/annotate", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"is_preferred":true`)
	})

	t.Run("AnnotateAllOffers", func(t *testing.T) {
		annotated := map[model.Category][]model.Offer{
			model.CategoryFlight: {{Category: model.CategoryFlight, Vendor: "Delta", IsPreferred: true}},
			model.CategoryHotel:  {{Category: model.CategoryHotel, Vendor: "Motel 6"}},
		}
		mockEvaluation.On("AnnotateAll", mock.Anything, "emp-42", mock.Anything).
			Return(annotated, nil).Once()

		body := `{
			"offers": {
				"flight": [{"category": "flight", "vendor": "Delta"}],
				"hotel": [{"category": "hotel", "vendor": "Motel 6"}]
			}
		}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/preferences/annotate-all", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"is_preferred":true`)
	})

	t.Run("AnnotateAllOffers_UnknownCategory", func(t *testing.T) {
		mockEvaluation.On("AnnotateAll", mock.Anything, "emp-42", mock.Anything).
			Return(nil, &travel_errors.UnknownCategoryError{Category: "train"}).Once()

		body := `{"offers": {"train": [{"vendor": "Amtrak"}]}}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/preferences/annotate-all", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("AnnotateOffers_MissingCategory", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/preferences/annotate", strings.NewReader(`{"offers": []}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	mockEvaluation.AssertExpectations(t)
}

func TestPreferenceControllerUnauthorized(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	preferenceController := controller.NewPreferenceController(new(test_mock.MockEvaluationService))
	preferenceController.RegisterRoutes(router.Group("/"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/preferences/profile", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
