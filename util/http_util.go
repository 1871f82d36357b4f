// util/http_util.go
package util

import (
	"github.com/gin-gonic/gin"
	logger "github.com/traveldesk/api/logging"
	"go.uber.org/zap"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

func GetTravelerIDFromContext(c *gin.Context) (string, error) {
	travelerID, exists := c.Get("travelerID")
	if !exists {
		return "", nil
	}
	return travelerID.(string), nil
}
