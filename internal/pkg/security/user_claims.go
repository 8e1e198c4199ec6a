package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// DefaultSecret used when no jwt secret is configured
const DefaultSecret = "viewy-dev-secret"

// UserClaims identity carried by the session token
type UserClaims struct {
	UserID uint64   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}
