package util

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys shared with the auth middleware
const (
	UserIDKey = "user_id"
	TokenKey  = "jwtToken"
)

// AuthData holds the extracted user ID and token string.
type AuthData struct {
	UserID uuid.UUID
	Token  string
}

// ExtractAuthData returns the caller set by the auth middleware. ok is false
// for anonymous requests.
func ExtractAuthData(c *gin.Context) (AuthData, bool) {
	userID, ok := ViewerID(c)
	if !ok {
		return AuthData{}, false
	}
	return AuthData{
		UserID: userID,
		Token:  c.GetString(TokenKey),
	}, true
}

// ViewerID returns the authenticated user id, if any
func ViewerID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// ViewerIDPtr returns the authenticated user id or nil for anonymous callers
func ViewerIDPtr(c *gin.Context) *uuid.UUID {
	id, ok := ViewerID(c)
	if !ok {
		return nil
	}
	return &id
}
