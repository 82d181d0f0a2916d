package authsession

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiry decodes the expiry claim of a bearer token WITHOUT verifying
// its signature — the client never holds the signing key, and the check
// only exists to avoid sending requests with a token the backend would
// reject anyway. Tokens with no expiry claim are treated as invalid.
func tokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, ErrMissingExpiryClaim
	}
	return exp.Time, nil
}
