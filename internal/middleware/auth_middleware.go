package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/certivo/certivo/internal/app/models/dto"
	"github.com/certivo/certivo/internal/pkg/auth"
)

// Context keys set by the auth middleware
const (
	ContextAdminID  = "adminID"
	ContextUsername = "username"
)

// JWTAuthMiddleware validates the Bearer token and stores the admin identity
// in the request context.
func JWTAuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authorization required")))
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			code := dto.ErrorCodeInvalidToken
			message := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				code = dto.ErrorCodeExpiredToken
				message = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
			return
		}

		c.Set(ContextAdminID, claims.AdminID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}

// GetAdminID reads the authenticated admin id from the context.
func GetAdminID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(ContextAdminID)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}
