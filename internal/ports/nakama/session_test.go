package nakama

import (
	"testing"
	"time"

	jwt "github.com/form3tech-oss/jwt-go"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestSessionExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"exp": float64(exp.Unix()), "uid": "p1"})

	got, err := SessionExpiry(token)
	if err != nil {
		t.Fatalf("expiry: %v", err)
	}
	if !got.Equal(exp) {
		t.Fatalf("expiry = %v, want %v", got, exp)
	}
	if SessionExpired(token, time.Now()) {
		t.Fatalf("token should not be expired yet")
	}
	if !SessionExpired(token, exp.Add(time.Minute)) {
		t.Fatalf("token should be expired after exp")
	}
}

func TestSessionExpiryMissingClaim(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"uid": "p1"})
	if _, err := SessionExpiry(token); err != ErrNoExpiry {
		t.Fatalf("err = %v, want ErrNoExpiry", err)
	}
	if !SessionExpired(token, time.Now()) {
		t.Fatalf("unreadable expiry must count as expired")
	}
}

func TestSessionExpiryGarbageToken(t *testing.T) {
	if _, err := SessionExpiry("not-a-jwt"); err == nil {
		t.Fatalf("expected an error for a malformed token")
	}
}
