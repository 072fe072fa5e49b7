package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The current-session pointer is persisted as a signed token so a tampered or
// corrupt stored value is detectable on rehydration and can be purged instead
// of trusted.

type SessionClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SignSession produces the persisted form of the current-session record.
// Local sessions carry no expiry; they last until logout.
func SignSession(secret []byte, name, email string) (string, error) {
	claims := &SessionClaims{
		Name:  name,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseSession(secret []byte, tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
