package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "token-test-secret"

func TestAuthTokenRoundTrip(t *testing.T) {
	viper.Set("jwt.secret", testSecret)

	token, err := MakeAuthToken("user-1")
	require.NoError(t, err)

	claims, err := ParseAuthToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestExpiredTokenRejected(t *testing.T) {
	viper.Set("jwt.secret", testSecret)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		UserID: "user-1",
	})
	tokenStr, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseAuthToken(tokenStr)
	assert.Error(t, err)
}

func TestMisSignedTokenRejected(t *testing.T) {
	viper.Set("jwt.secret", testSecret)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, &AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "user-1",
	})
	tokenStr, err := forged.SignedString([]byte("somebody-elses-secret"))
	require.NoError(t, err)

	_, err = ParseAuthToken(tokenStr)
	assert.Error(t, err)
}

func TestWrongAlgorithmRejected(t *testing.T) {
	viper.Set("jwt.secret", testSecret)

	// Correct secret but HS512, the parser only accepts HS256
	other := jwt.NewWithClaims(jwt.SigningMethodHS512, &AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "user-1",
	})
	tokenStr, err := other.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseAuthToken(tokenStr)
	assert.Error(t, err)
}

func TestMalformedTokenRejected(t *testing.T) {
	viper.Set("jwt.secret", testSecret)

	for _, garbage := range []string{"", "garbage", "a.b.c"} {
		_, err := ParseAuthToken(garbage)
		assert.Error(t, err)
	}
}

func TestMissingUserIDRejected(t *testing.T) {
	viper.Set("jwt.secret", testSecret)

	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, &AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenStr, err := anonymous.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseAuthToken(tokenStr)
	assert.Error(t, err)
}
