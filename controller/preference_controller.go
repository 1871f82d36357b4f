// controller/preference_controller.go
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

type PreferenceController struct {
	evaluationService service.IEvaluationService
}

func NewPreferenceController(evaluationService service.IEvaluationService) *PreferenceController {
	return &PreferenceController{
		evaluationService: evaluationService,
	}
}

// RegisterRoutes registers the API routes
func (pc *PreferenceController) RegisterRoutes(r *gin.RouterGroup) {
	preferences := r.Group("/preferences")
	{
		preferences.GET("/profile", pc.GetProfile)
		preferences.GET("/rankings/:category", pc.RankVendors)
		preferences.POST("/annotate", pc.AnnotateOffers)
		preferences.POST("/annotate-all", pc.AnnotateAllOffers)
	}
}

// GetProfile endpoint
func (pc *PreferenceController) GetProfile(c *gin.Context) {
	travelerID, err := util.GetTravelerIDFromContext(c)
	if err != nil || travelerID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", travel_errors.ErrUnauthorized)
		return
	}

	profile, err := pc.evaluationService.GetPreferenceProfile(c, travelerID)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to build preference profile", err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// RankVendors endpoint
func (pc *PreferenceController) RankVendors(c *gin.Context) {
	travelerID, err := util.GetTravelerIDFromContext(c)
	if err != nil || travelerID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", travel_errors.ErrUnauthorized)
		return
	}

	category := model.Category(c.Param("category"))
	ranking, err := pc.evaluationService.RankVendors(c, travelerID, category)
	if err != nil {
		var unknownCategory *travel_errors.UnknownCategoryError
		if errors.As(err, &unknownCategory) {
			util.RespondWithError(c, http.StatusBadRequest, "Unknown category", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to rank vendors", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"ranking":  ranking,
	})
}

type annotateRequest struct {
	Category model.Category `json:"category" binding:"required"`
	Offers   []model.Offer  `json:"offers" binding:"required"`
}

// AnnotateOffers endpoint
func (pc *PreferenceController) AnnotateOffers(c *gin.Context) {
	travelerID, err := util.GetTravelerIDFromContext(c)
	if err != nil || travelerID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", travel_errors.ErrUnauthorized)
		return
	}

	var req annotateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid annotation request", err)
		return
	}

	annotated, err := pc.evaluationService.AnnotateOffers(c, travelerID, req.Category, req.Offers)
	if err != nil {
		var unknownCategory *travel_errors.UnknownCategoryError
		if errors.As(err, &unknownCategory) {
			util.RespondWithError(c, http.StatusBadRequest, "Unknown category", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to annotate offers", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": req.Category,
		"offers":   annotated,
	})
}

type annotateAllRequest struct {
	Offers map[model.Category][]model.Offer `json:"offers" binding:"required"`
}

// AnnotateAllOffers endpoint annotates offers for several categories in
// one request, e.g. a full flight+hotel+car result page.
func (pc *PreferenceController) AnnotateAllOffers(c *gin.Context) {
	travelerID, err := util.GetTravelerIDFromContext(c)
	if err != nil || travelerID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", travel_errors.ErrUnauthorized)
		return
	}

	var req annotateAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid annotation request", err)
		return
	}

	annotated, err := pc.evaluationService.AnnotateAll(c, travelerID, req.Offers)
	if err != nil {
		var unknownCategory *travel_errors.UnknownCategoryError
		if errors.As(err, &unknownCategory) {
			util.RespondWithError(c, http.StatusBadRequest, "Unknown category", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to annotate offers", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"offers": annotated})
}
