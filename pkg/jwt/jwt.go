package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	KindCustomer = "customer"
	KindAdmin    = "admin"
)

type Claims struct {
	UserID    string `json:"user_id"`
	Kind      string `json:"kind"` // customer / admin
	Privilege int    `json:"privilege"`
	jwt.RegisteredClaims
}

func GenerateToken(secret []byte, userID string, kind string, privilege int, expire time.Duration) (string, error) {
	claims := Claims{
		UserID:    userID,
		Kind:      kind,
		Privilege: privilege,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseToken(secret []byte, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	if claims.Kind != KindCustomer && claims.Kind != KindAdmin {
		return nil, errors.New("invalid token kind")
	}

	return claims, nil
}
