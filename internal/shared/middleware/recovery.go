package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"giftlist-backend/internal/shared/apperror"
	"giftlist-backend/internal/shared/response"
	"giftlist-backend/pkg/logger"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered", fmt.Errorf("%v", rec), map[string]interface{}{
					"request_id": RequestIDFrom(c),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorEnvelope{
					Error: response.ErrorBody{
						Code:    string(apperror.CodeInternal),
						Message: "Internal server error",
					},
				})
			}
		}()

		c.Next()
	}
}
