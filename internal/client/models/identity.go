package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated user's credential state held by the client.
type Identity struct {
	Username string
	Token    string
	// Claims holds every field of the login payload, including the ones
	// mapped to Username and Token.
	Claims map[string]any
	// ExpiresAt is read from the token's "exp" claim; nil when the token is
	// not a JWT or carries no expiry.
	ExpiresAt *time.Time
}

// Expired reports whether the token expiry is known and not after now.
func (i *Identity) Expired(now time.Time) bool {
	if i == nil || i.ExpiresAt == nil {
		return false
	}
	return !now.Before(*i.ExpiresAt)
}

// ParseIdentity builds an Identity from a raw login response payload.
// The token is taken from "token" or, failing that, "accessToken".
func ParseIdentity(payload []byte) (*Identity, error) {
	var claims map[string]any
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("decode identity: %w", err)
	}

	id := &Identity{Claims: claims}
	id.Username, _ = claims["username"].(string)

	for _, key := range []string{"token", "accessToken"} {
		if s, ok := claims[key].(string); ok && s != "" {
			id.Token = s
			break
		}
	}
	if id.Token == "" {
		return nil, common.ErrTokenMissing
	}

	id.ExpiresAt = tokenExpiry(id.Token)
	if id.Username == "" {
		id.Username = tokenSubject(id.Token)
	}

	return id, nil
}

func parseUnverified(token string) jwt.MapClaims {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	return claims
}

// tokenExpiry reads "exp" without verifying the signature: the client only
// uses it to avoid sending a token the server will reject anyway.
func tokenExpiry(token string) *time.Time {
	claims := parseUnverified(token)
	if claims == nil {
		return nil
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	t := exp.Time
	return &t
}

func tokenSubject(token string) string {
	claims := parseUnverified(token)
	if claims == nil {
		return ""
	}
	sub, _ := claims.GetSubject()
	return sub
}
