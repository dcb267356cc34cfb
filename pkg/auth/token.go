package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = 7 * 24 * time.Hour

const minSecretLen = 32

// Claims is the payload carried by a session token.
type Claims struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	LoginTime int64  `json:"login_time"`
	jwt.RegisteredClaims
}

// CreateSessionToken issues a signed HS256 session token for the given admin
// identity, valid for TokenTTL from now. It returns the token and its expiry.
func CreateSessionToken(userID, username string, secret []byte) (string, time.Time, error) {
	now := time.Now()
	expiry := now.Add(TokenTTL)
	claims := &Claims{
		UserID:    userID,
		Username:  username,
		LoginTime: now.UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiry, nil
}

// VerifySessionToken validates signature and expiry and returns the claims.
func VerifySessionToken(token string, secret []byte) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// SessionSecretBytes derives the signing key from a secret string,
// zero-padding to a 32-byte minimum.
func SessionSecretBytes(s string) []byte {
	b := []byte(s)
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}

// Preview returns a truncated form of a token safe to echo in responses:
// the first 20 characters followed by an ellipsis.
func Preview(token string) string {
	if len(token) > 20 {
		return token[:20] + "..."
	}
	return token + "..."
}
