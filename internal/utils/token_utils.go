package utils

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PortalClaims are the JWT claims issued by the portal. Subject carries the
// citizen email or admin username; Role distinguishes the two token kinds.
type PortalClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

const (
	// RoleCitizen marks tokens issued to citizen accounts.
	RoleCitizen = "CITIZEN"
	// RoleAdmin marks tokens issued to administrator accounts.
	RoleAdmin = "ADMIN"
)

// GenerateJWT generates a signed token for the given subject and role.
func GenerateJWT(subject string, accountID int64, role string, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := PortalClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        strconv.FormatInt(accountID, 10),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
