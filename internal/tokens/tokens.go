package tokens

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAccessToken creates a signed JWT carrying the subject and its
// content role (viewer, editor or admin).
func GenerateAccessToken(secret, sub, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(ttl).Unix(),
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString([]byte(secret))
}
