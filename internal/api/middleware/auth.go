package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leadgrid/leadgrid-backend/internal/repository"
	"github.com/leadgrid/leadgrid-backend/internal/service"
	"github.com/leadgrid/leadgrid-backend/internal/types"
)

const userContextKey = "user"

// SessionMiddleware resolves the calling user from the session cookie and
// stores it in the request context. Resolution failure is not an error:
// public routes tolerate an anonymous caller, protected ones reject it via
// RequireUser.
func SessionMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(types.SessionCookieName)
		if err != nil {
			c.Next()
			return
		}

		user, err := authService.ResolveUser(c.Request.Context(), token)
		if err != nil {
			log.Printf("❌ [Auth] Failed to resolve session - Path: %s, Error: %v", c.Request.URL.Path, err)
			c.Next()
			return
		}
		if user != nil {
			c.Set(userContextKey, user)
		}
		c.Next()
	}
}

// RequireAuth rejects requests that did not resolve to a user.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUser(c); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUser extracts the resolved user from gin context.
func GetUser(c *gin.Context) (*repository.User, bool) {
	v, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*repository.User)
	return user, ok
}

// RequireUser returns the resolved user or writes a 401 response.
func RequireUser(c *gin.Context) (*repository.User, bool) {
	user, ok := GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login"})
		return nil, false
	}
	return user, true
}

// IsSecureRequest reports whether the inbound request was made over an
// encrypted transport, either directly or via a trusted forwarded-protocol
// header. Controls the Secure attribute on the session cookie.
func IsSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	forwarded := r.Header.Get("X-Forwarded-Proto")
	if forwarded == "" {
		return false
	}
	for _, proto := range strings.Split(forwarded, ",") {
		if p := strings.ToLower(strings.TrimSpace(proto)); p != "" {
			return p == "https"
		}
	}
	return false
}

// RequestLogger logs all incoming requests with details
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		statusEmoji := "✅"
		if status >= 400 && status < 500 {
			statusEmoji = "⚠️"
		} else if status >= 500 {
			statusEmoji = "❌"
		}

		log.Printf("%s [%s] %s %d - %v", statusEmoji, method, path, status, duration)
	}
}
