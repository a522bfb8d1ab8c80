package middleware

import (
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/rix-app/rix-backend/internal/auth"
	"github.com/rix-app/rix-backend/internal/users"
)

// RequireUser validates the caller's Firebase ID token, upserts their profile
// row and stores the owner uid in the context. The X-User-Id header-trust
// path needs both a nil auth client and devFallback; without the explicit
// opt-in a missing client rejects every request rather than running with
// auth off.
func RequireUser(authClient *fbauth.Client, userRepo *users.Repo, devFallback bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authClient == nil && !devFallback {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "authentication is not configured"})
			c.Abort()
			return
		}

		var u users.UpsertUser

		if authClient != nil {
			token := extractToken(c)
			if token == "" {
				c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing authorization token"})
				c.Abort()
				return
			}

			decoded, err := authClient.VerifyIDToken(c.Request.Context(), token)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
				c.Abort()
				return
			}

			u.UID = decoded.UID
			if email, ok := decoded.Claims["email"].(string); ok {
				u.Email = email
			}
			if name, ok := decoded.Claims["name"].(string); ok {
				u.DisplayName = name
			}
		} else {
			u.UID = strings.TrimSpace(c.GetHeader("X-User-Id"))
			if u.UID == "" {
				u.UID = "demo-user"
			}
			u.Email = c.GetHeader("X-User-Email")
			u.DisplayName = c.GetHeader("X-User-Name")
		}

		if userRepo != nil {
			if _, err := userRepo.EnsureUser(c.Request.Context(), u); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "ensure user: " + err.Error()})
				c.Abort()
				return
			}
		}

		c.Set(auth.CtxOwnerUID, u.UID)
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header.
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
