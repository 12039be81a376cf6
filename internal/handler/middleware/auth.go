package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/pkg/cookie"
	"studio-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxUserIDKey = "user_id"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts the access token cookie or a bearer header. Tokens are
// issued by the account service; this service only verifies them.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortUnauthorized(c, "Access token required")
			return
		}

		userID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func abortUnauthorized(c *gin.Context, msg string) {
	resp := httperr.Response{Status: http.StatusUnauthorized}
	resp.Error.Message = msg
	c.AbortWithStatusJSON(http.StatusUnauthorized, resp)
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}
