// controller/policy_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/traveldesk/api/controller"
	travel_errors "github.com/traveldesk/api/errors"
	logger "github.com/traveldesk/api/logging"
	"github.com/traveldesk/api/model"
	"github.com/traveldesk/api/policy"
	test_mock "github.com/traveldesk/api/test/mock"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("travelerID", "emp-42")
		c.Next()
	})
	return r
}

var validatePackageBody = `{
	"destination": "Boise",
	"international": false,
	"flight": {"category": "flight", "vendor": "Delta", "flight": {"price": 420, "cabin_class": "economy"}},
	"hotel": {"category": "hotel", "vendor": "Marriott", "hotel": {"nightly_rate": 180, "nights": 3}}
}`

func TestPolicyController(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	mockEvaluation := new(test_mock.MockEvaluationService)
	policyController := controller.NewPolicyController(mockEvaluation)
	router := setupRouter()
	api := router.Group("/")
	policyController.RegisterRoutes(api)

	t.Run("ValidatePackage_Violation", func(t *testing.T) {
		report := &model.ComplianceReport{
			Compliant:    false,
			Violations:   []string{"hotel nightly rate 180 exceeds tier-3 cap 150"},
			ApprovalTier: model.ApprovalAuto,
			TotalCost:    960,
		}
		mockEvaluation.On("ValidatePackage", mock.Anything, "emp-42", mock.Anything).
			Return(report, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/policy/validate", strings.NewReader(validatePackageBody))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got model.ComplianceReport
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.False(t, got.Compliant)
		assert.Len(t, got.Violations, 1)
	})

	t.Run("ValidatePackage_MalformedOffer", func(t *testing.T) {
		mockEvaluation.On("ValidatePackage", mock.Anything, "emp-42", mock.Anything).
			Return(nil, &travel_errors.MalformedOfferError{Category: "flight", Field: "price"}).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/policy/validate", strings.NewReader(validatePackageBody))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("ValidatePackage_BadJSON", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/policy/validate", strings.NewReader("{not json"))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ResolveTier_UnknownCity", func(t *testing.T) {
		rules := policy.RuleSet{
			Hotel: policy.HotelRule{
				TierCaps:   map[policy.Tier]float64{policy.Tier3: 150},
				TierCities: map[string]policy.Tier{},
			},
		}
		mockEvaluation.On("Rules").Return(rules).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/policy/tiers/Boise", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "tier-3")
	})

	mockEvaluation.AssertExpectations(t)
}
