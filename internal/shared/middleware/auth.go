package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"giftlist-backend/internal/shared/apperror"
	"giftlist-backend/internal/shared/response"
	"giftlist-backend/pkg/jwt"
)

// AuthMiddleware resolves the celebrant channel: a Bearer access token in
// the Authorization header. On success a CelebrantIdentity lands in the
// request context; on failure the request is aborted with the uniform
// envelope and no handler runs.
func AuthMiddleware(tokens *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, apperror.ErrUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, apperror.ErrUnauthorized)
			return
		}

		claims, err := tokens.ValidateAccessToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.Error(c, apperror.ErrTokenExpired)
				return
			}
			response.Error(c, apperror.ErrUnauthorized)
			return
		}

		celebrantID, err := uuid.Parse(claims.CelebrantID)
		if err != nil {
			response.Error(c, apperror.ErrUnauthorized)
			return
		}

		setCelebrant(c, CelebrantIdentity{ID: celebrantID, Email: claims.Email})
		c.Next()
	}
}
