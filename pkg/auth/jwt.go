package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	RoleReseller = "reseller"
	RoleAdmin    = "admin"
)

type JWTServiceInterface interface {
	GenerateJWT(resellerID int, role string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var secretKey = []byte("change-me")

// SetSecret overrides the signing key from configuration. Call before the
// server starts accepting requests.
func SetSecret(key string) {
	if key != "" {
		secretKey = []byte(key)
	}
}

type Claims struct {
	ResellerID int    `json:"reseller_id"`
	Role       string `json:"role"`
	jwt.StandardClaims
}

type JWTService struct{}

func (s *JWTService) GenerateJWT(resellerID int, role string, expirationTime time.Time) (string, error) {
	claims := Claims{
		ResellerID: resellerID,
		Role:       role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    "panelmart",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ResellerID == 0 || claims.Issuer != "panelmart" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
