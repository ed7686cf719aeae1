package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rgehrsitz/mcfolio/internal/api/models"
)

// ErrorHandler middleware turns panics into a JSON 500 response
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		message := "An unexpected error occurred"
		if err, ok := recovered.(string); ok {
			message = err
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: message,
			},
		})
	})
}
