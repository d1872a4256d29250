package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"anitrack/internal/api/repository"

	"github.com/gin-gonic/gin"
)

const CtxUserIDKey = "user_id"
const CtxUsernameKey = "username"

// RequireSession gates protected routes. The raw token is the literal
// Authorization header value (no Bearer scheme). The token is decoded
// first; only then is it checked against the session store, so a stale
// client sees 401 for an expired token and 403 once its session is gone.
func RequireSession(secret []byte, sessions repository.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "No credentials sent!"})
			return
		}

		claims, err := Parse(secret, token)
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token expired!"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Auth failed."})
			return
		}

		userID, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			slog.Error("session lookup failed", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if userID == "" || userID != claims.UserID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Please login!"})
			return
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUsernameKey, claims.Username)
		c.Next()
	}
}
