package nakama

import (
	"errors"
	"time"

	jwt "github.com/form3tech-oss/jwt-go"
)

// ErrNoExpiry is returned when a session token carries no exp claim.
var ErrNoExpiry = errors.New("session token has no exp claim")

// SessionExpiry reads the expiry from a Nakama session token. The token
// is a JWT; the client has no signing key, so the claims are read without
// verification — the server remains the authority on validity.
func SessionExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, ErrNoExpiry
	}
	return time.Unix(int64(exp), 0), nil
}

// SessionExpired reports whether the token is already past its expiry.
func SessionExpired(token string, now time.Time) bool {
	expiry, err := SessionExpiry(token)
	if err != nil {
		return true
	}
	return now.After(expiry)
}
