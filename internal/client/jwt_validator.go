package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// LocalJWTValidator checks HMAC signed tokens without a network call.
// It cannot see revoked sessions, so SignOut only clears cookies.
type LocalJWTValidator struct {
	secret []byte
}

// NewLocalJWTValidator creates a validator for tokens signed with secret
func NewLocalJWTValidator(secret string) *LocalJWTValidator {
	return &LocalJWTValidator{secret: []byte(secret)}
}

func (v *LocalJWTValidator) ValidateToken(_ context.Context, tokenStr string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return uuid.Nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid token claims")
	}

	// user_id is ours, sub is the OAuth convention, uid is legacy
	var userIDStr string
	for _, key := range []string{"user_id", "sub", "uid"} {
		if s, ok := claims[key].(string); ok && s != "" {
			userIDStr = s
			break
		}
	}
	if userIDStr == "" {
		return uuid.Nil, errors.New("user ID not found in token")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user ID format: %w", err)
	}
	return userID, nil
}

func (v *LocalJWTValidator) SignOut(context.Context, string) error {
	return nil
}
