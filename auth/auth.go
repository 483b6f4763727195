package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// GenAccessToken signs a short-lived HS256 token for the given user id.
// Session issuance itself lives in the identity service; this mirrors its
// token format so local tooling and the test suites can mint valid
// credentials.
func GenAccessToken(secret []byte, sub string) (string, error) {
	// HS256 for symmetric signature, sign and verify in server
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: time.Now().Add(2 * time.Hour).Unix(),
		IssuedAt:  time.Now().Unix(),
		Issuer:    "https://vmatch.app",
		Subject:   sub,
	})
	return token.SignedString(secret)
}

// ParseAccessToken verifies an HS256 access token and returns its subject,
// the caller's user id.
func ParseAccessToken(secret []byte, raw string) (string, error) {
	t, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return "", fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok || !t.Valid {
		return "", errors.New("invalid token")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.New("token missing subject")
	}
	return sub, nil
}
