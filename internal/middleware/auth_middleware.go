package middleware

import (
	"context"
	"strings"

	"relay-chat/internal/services"
	"relay-chat/internal/transport/httpdto"
	relay_errors "relay-chat/pkg/errors"
	"relay-chat/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and threads the resulting
// AuthContext into the request. Handlers behind it can assume the context
// carries claims; the services re-check regardless.
func AuthMiddleware(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c)
		if token == "" {
			writeAuthError(c, relay_errors.ErrUnauthenticated)
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			writeAuthError(c, err)
			return
		}

		ctx := services.WithAuthContext(c.Request.Context(), claims)
		ctx = context.WithValue(ctx, logger.UserIdKey, claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func writeAuthError(c *gin.Context, err error) {
	c.JSON(services.HTTPStatus(err), httpdto.NewErrorResponse(err.Error(), services.ErrorCode(err)))
	c.Abort()
}

func extractBearer(c *gin.Context) string {
	value := c.GetHeader("Authorization")
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
