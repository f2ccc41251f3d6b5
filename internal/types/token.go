package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents the claims in a JWT token. UserID is the hex form of
// the user document's storage identifier.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}
