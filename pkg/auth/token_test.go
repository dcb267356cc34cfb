package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestCreateSessionToken_RoundTrip(t *testing.T) {
	secret := SessionSecretBytes("test-secret")

	token, expiry, err := CreateSessionToken("admin-id", "admin", secret)
	if err != nil {
		t.Fatalf("CreateSessionToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	wantExpiry := time.Now().Add(TokenTTL)
	if d := expiry.Sub(wantExpiry); d < -5*time.Second || d > 5*time.Second {
		t.Errorf("expected expiry ~now+7d, got %v (off by %v)", expiry, d)
	}

	claims, err := VerifySessionToken(token, secret)
	if err != nil {
		t.Fatalf("VerifySessionToken failed: %v", err)
	}
	if claims.UserID != "admin-id" {
		t.Errorf("expected user_id=admin-id, got %q", claims.UserID)
	}
	if claims.Username != "admin" {
		t.Errorf("expected username=admin, got %q", claims.Username)
	}
	if claims.LoginTime == 0 {
		t.Error("expected login_time to be set")
	}
}

func TestVerifySessionToken_WrongSecret(t *testing.T) {
	token, _, err := CreateSessionToken("admin-id", "admin", SessionSecretBytes("secret-a"))
	if err != nil {
		t.Fatalf("CreateSessionToken failed: %v", err)
	}

	if _, err := VerifySessionToken(token, SessionSecretBytes("secret-b")); err == nil {
		t.Error("expected verification to fail with a different secret")
	}
}

func TestVerifySessionToken_Expired(t *testing.T) {
	secret := SessionSecretBytes("test-secret")
	claims := &Claims{
		UserID:   "admin-id",
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-8 * 24 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := VerifySessionToken(token, secret); err == nil {
		t.Error("expected verification of an expired token to fail")
	}
}

func TestVerifySessionToken_Garbage(t *testing.T) {
	if _, err := VerifySessionToken("not-a-jwt", SessionSecretBytes("test-secret")); err == nil {
		t.Error("expected verification of a malformed token to fail")
	}
}

func TestVerifySessionToken_RejectsUnsignedAlg(t *testing.T) {
	secret := SessionSecretBytes("test-secret")
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "x"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := VerifySessionToken(token, secret); err == nil {
		t.Error("expected alg=none token to be rejected")
	}
}

func TestSessionSecretBytes_PadsShortSecrets(t *testing.T) {
	b := SessionSecretBytes("short")
	if len(b) != 32 {
		t.Errorf("expected 32 bytes, got %d", len(b))
	}

	long := strings.Repeat("x", 40)
	if got := SessionSecretBytes(long); len(got) != 40 {
		t.Errorf("expected long secret to pass through, got %d bytes", len(got))
	}
}

func TestPreview_Truncates(t *testing.T) {
	long := strings.Repeat("a", 30)
	got := Preview(long)
	if got != strings.Repeat("a", 20)+"..." {
		t.Errorf("expected 20-char prefix with ellipsis, got %q", got)
	}

	if got := Preview("short"); got != "short..." {
		t.Errorf("expected short token to keep its full value, got %q", got)
	}
}
