// controller/policy_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	travel_errors "github.com/traveldesk/api/errors"
	"github.com/traveldesk/api/model"
	"github.com/traveldesk/api/service"
	"github.com/traveldesk/api/util"
)

type PolicyController struct {
	evaluationService service.IEvaluationService
}

func NewPolicyController(evaluationService service.IEvaluationService) *PolicyController {
	return &PolicyController{
		evaluationService: evaluationService,
	}
}

// RegisterRoutes registers the API routes
func (pc *PolicyController) RegisterRoutes(r *gin.RouterGroup) {
	policy := r.Group("/policy")
	{
		policy.POST("/validate", pc.ValidatePackage)
		policy.GET("/rules", pc.GetRules)
		policy.GET("/tiers/:city", pc.ResolveTier)
	}
}

// ValidatePackage endpoint
func (pc *PolicyController) ValidatePackage(c *gin.Context) {
	travelerID, err := util.GetTravelerIDFromContext(c)
	if err != nil || travelerID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", travel_errors.ErrUnauthorized)
		return
	}

	var pkg model.TripPackage
	if err := c.ShouldBindJSON(&pkg); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid trip package", err)
		return
	}

	report, err := pc.evaluationService.ValidatePackage(c, travelerID, pkg)
	if err != nil {
		var malformed *travel_errors.MalformedOfferError
		switch {
		case errors.As(err, &malformed):
			util.RespondWithError(c, http.StatusUnprocessableEntity, "Malformed offer", err)
		case errors.Is(err, travel_errors.ErrEmptyRuleSet):
			util.RespondWithError(c, http.StatusInternalServerError, "Policy rules unavailable", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to validate package", err)
		}
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetRules endpoint exposes the active rule table
func (pc *PolicyController) GetRules(c *gin.Context) {
	c.JSON(http.StatusOK, pc.evaluationService.Rules())
}

// ResolveTier endpoint
func (pc *PolicyController) ResolveTier(c *gin.Context) {
	city := c.Param("city")
	rules := pc.evaluationService.Rules()
	tier := rules.ResolveTier(city)

	c.JSON(http.StatusOK, gin.H{
		"city":       city,
		"tier":       tier,
		"nightlyCap": rules.Hotel.TierCaps[tier],
	})
}
