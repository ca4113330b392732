package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"giftlist-backend/internal/shared/apperror"
	"giftlist-backend/pkg/logger"
)

// ErrorBody is the uniform error envelope: {"error":{"code","message"}}.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// JSON writes a success payload as-is.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error is the single boundary that turns a domain failure into the wire
// envelope. Anything that is not an *apperror.Error is an internal fault:
// the detail is logged, the client gets a generic message.
func Error(c *gin.Context, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		logger.Error("unhandled error", err)
		appErr = apperror.ErrInternal
	}

	c.AbortWithStatusJSON(appErr.Status, ErrorEnvelope{
		Error: ErrorBody{
			Code:    string(appErr.Code),
			Message: appErr.Message,
		},
	})
}
