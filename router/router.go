// router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/traveldesk/api/controller"
	"github.com/traveldesk/api/middleware"
)

func SetupRouter(
	controllers *controller.Controllers,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))
	router.Use(middleware.TravelerAuth())

	api := router.Group("/api/v1")

	controllers.Preference.RegisterRoutes(api)
	controllers.Policy.RegisterRoutes(api)
	controllers.Trip.RegisterRoutes(api)
	controllers.Search.RegisterRoutes(api)
	controllers.Booking.RegisterRoutes(api)
	controllers.Research.RegisterRoutes(api)

	return router
}
