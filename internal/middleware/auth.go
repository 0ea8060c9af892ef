package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/4pillsAday/dive-globe/internal/response"
	"github.com/4pillsAday/dive-globe/internal/util"
)

// Context keys set by the auth middleware
const (
	UserIDKey = util.UserIDKey
	TokenKey  = util.TokenKey
)

const validateTimeout = 5 * time.Second

var errInvalidSubject = errors.New("token has no user id")

// TokenValidator resolves a bearer token to the caller's user id
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenStr string) (uuid.UUID, error)
}

// RequireAuth rejects requests without a valid token. Missing, malformed
// and expired tokens all produce the same 401.
func RequireAuth(validator TokenValidator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c, cookieName)
		if token == "" {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		userID, err := validate(c, validator, token)
		if err != nil {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(TokenKey, token)
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present. An
// invalid token degrades to an anonymous request.
func OptionalAuth(validator TokenValidator, cookieName string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c, cookieName)
		if token != "" {
			userID, err := validate(c, validator, token)
			if err == nil {
				c.Set(UserIDKey, userID)
				c.Set(TokenKey, token)
			} else if logger != nil {
				logger.Debug("Ignoring invalid token on optional auth route",
					zap.String("path", c.Request.URL.Path),
					zap.Error(err),
				)
			}
		}
		c.Next()
	}
}

// TokenFromRequest returns the bearer token, falling back to the auth cookie
func TokenFromRequest(c *gin.Context, cookieName string) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	if cookieName == "" {
		return ""
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return strings.TrimSpace(cookie)
	}
	return ""
}

func validate(c *gin.Context, validator TokenValidator, token string) (uuid.UUID, error) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), validateTimeout)
	defer cancel()

	userID, err := validator.ValidateToken(ctx, token)
	if err != nil {
		return uuid.Nil, err
	}
	if userID == uuid.Nil {
		return uuid.Nil, errInvalidSubject
	}
	return userID, nil
}
