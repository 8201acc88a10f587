package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// TokenTTL is how long an auth token stays valid after issuance
const TokenTTL = time.Hour

// AuthClaims is the claim set carried by auth tokens
type AuthClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// MakeAuthToken issues a signed HS256 token for the given user
func MakeAuthToken(userID string) (string, error) {
	now := time.Now()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		UserID: userID,
	})

	return t.SignedString([]byte(viper.GetString("jwt.secret")))
}

// ParseAuthToken verifies the signature and expiry of a token and returns
// its claims. Any malformed, mis-signed or expired token is rejected
func ParseAuthToken(tokenStr string) (*AuthClaims, error) {
	claims := &AuthClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}

		return []byte(viper.GetString("jwt.secret")), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.UserID == "" {
		return nil, errors.New("missing user_id claim")
	}

	return claims, nil
}
