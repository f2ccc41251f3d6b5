package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recipegenie/backend/internal/models"
	"github.com/recipegenie/backend/internal/types"
)

// ContextUserKey is the gin context key holding the resolved user
const ContextUserKey = "user"

// ContextUserIDKey is the gin context key holding the resolved user id (hex)
const ContextUserIDKey = "user_id"

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// UserResolver resolves a token's user id to the stored identity
type UserResolver interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// AuthMiddleware validates the bearer credential and attaches the resolved
// identity to the request context. Requests without a valid credential are
// rejected with 401, and every rejection is logged with its reason.
func AuthMiddleware(validator TokenValidator, users UserResolver, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, logger, "missing Authorization header", nil)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, logger, "malformed Authorization header", nil)
			return
		}

		claims, err := validator.ValidateToken(parts[1])
		if err != nil {
			unauthorized(c, logger, "invalid token", err)
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			unauthorized(c, logger, "token user not found", err)
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

func unauthorized(c *gin.Context, logger *zap.Logger, reason string, err error) {
	fields := []zap.Field{
		zap.String("reason", reason),
		zap.String("path", c.Request.URL.Path),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	logger.Warn("request not authorized", fields...)

	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "Not authorized to access this route",
	})
}
