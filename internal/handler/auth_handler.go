package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/4pillsAday/dive-globe/internal/client"
	"github.com/4pillsAday/dive-globe/internal/middleware"
)

// authCookieChunks is how many numbered chunk cookies a session may be split into
const authCookieChunks = 10

type AuthHandler struct {
	identity   client.IdentityProvider
	cookieName string
	logger     *zap.Logger
}

func NewAuthHandler(identity client.IdentityProvider, cookieName string, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{
		identity:   identity,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Logout godoc
// @Summary      Sign out
// @Description  Ends the session with the identity provider and clears the auth cookies,
// @Description  including chunked variants. Succeeds even when no session exists.
// @Tags         auth
// @Produce      json
// @Success      200 {object} map[string]bool "{\"success\": true}"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := middleware.TokenFromRequest(c, h.cookieName); token != "" && h.identity != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		if err := h.identity.SignOut(ctx, token); err != nil {
			h.logger.Warn("Identity provider sign out failed", zap.Error(err))
		}
	}

	for _, name := range AuthCookieNames(h.cookieName) {
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AuthCookieNames lists the session cookie, its code verifier and their
// numbered chunks
func AuthCookieNames(base string) []string {
	if base == "" {
		return nil
	}
	roots := []string{base, base + "-code-verifier"}
	names := make([]string, 0, len(roots)*(authCookieChunks+1))
	for _, root := range roots {
		names = append(names, root)
		for i := 0; i < authCookieChunks; i++ {
			names = append(names, fmt.Sprintf("%s.%d", root, i))
		}
	}
	return names
}
