// controller/research_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	travel_errors "github.com/traveldesk/api/errors"
	"github.com/traveldesk/api/service"
	"github.com/traveldesk/api/util"
)

type ResearchController struct {
	researchService service.IResearchService
}

func NewResearchController(researchService service.IResearchService) *ResearchController {
	return &ResearchController{
		researchService: researchService,
	}
}

// RegisterRoutes registers the API routes
func (rc *ResearchController) RegisterRoutes(r *gin.RouterGroup) {
	research := r.Group("/research")
	{
		research.GET("/:city", rc.GetDestinationIntel)
	}
}

// GetDestinationIntel endpoint
func (rc *ResearchController) GetDestinationIntel(c *gin.Context) {
	city := c.Param("city")
	if city == "" {
		util.RespondWithError(c, http.StatusBadRequest, "city is required", travel_errors.ErrInvalidSearchCriteria)
		return
	}

	intel, err := rc.researchService.GetDestinationIntel(c, city)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to research destination", err)
		return
	}

	c.JSON(http.StatusOK, intel)
}
