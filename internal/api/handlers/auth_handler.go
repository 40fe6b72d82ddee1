package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leadgrid/leadgrid-backend/internal/api/middleware"
	"github.com/leadgrid/leadgrid-backend/internal/models"
	"github.com/leadgrid/leadgrid-backend/internal/service"
	"github.com/leadgrid/leadgrid-backend/internal/types"
)

// ============================================
// Auth Handler
// ============================================

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Me - Return the authenticated user, or null for anonymous callers
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// Callback - Exchange the OAuth portal code for a session cookie
// POST /api/auth/callback
func (h *AuthHandler) Callback(c *gin.Context) {
	var req models.CallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authService.ExchangeCode(c.Request.Context(), req.Code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login failed"})
		return
	}

	h.setSessionCookie(c, token, int(h.authService.SessionTTL().Seconds()))
	c.JSON(http.StatusOK, toUserResponse(user))
}

// Logout - Clear the session cookie
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// setSessionCookie writes the session cookie with the same attributes at
// login and logout: HTTP-only, root path, cross-site eligible, Secure when
// the request arrived over https (directly or via X-Forwarded-Proto).
func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(types.SessionCookieName, value, maxAge, "/", "", middleware.IsSecureRequest(c.Request), true)
}
