package utils

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

// GenerateJWT mints the session token handed out at signup/login.
// Tokens carry the user id and email claim and live for 7 days.
func GenerateJWT(userID uint, email, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseJWT(tokenStr, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if token != nil && token.Valid {
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			return claims, nil
		}
	}
	return nil, err
}

// TokenTTL reports how long the token stays valid, used to expire
// blacklist entries at logout. Zero if the token has no exp claim.
func TokenTTL(claims jwt.MapClaims) time.Duration {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return 0
	}
	ttl := time.Until(time.Unix(int64(exp), 0))
	if ttl < 0 {
		return 0
	}
	return ttl
}
