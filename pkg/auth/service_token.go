package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("token inválido")
	ErrExpiredToken = errors.New("token expirado")
)

// ServiceClaims são as claims do token de serviço usado pelas rotas
// operacionais. Não há usuários finais: o token identifica o sistema
// chamador (dashboard interno, pipeline de deploy, operador)
type ServiceClaims struct {
	Caller string `json:"caller"`
	jwt.RegisteredClaims
}

// Validator valida tokens de serviço das requisições da API
type Validator interface {
	ValidateToken(tokenString string) (*ServiceClaims, error)
}

type service struct {
	secret []byte
}

func NewService(secret string) Validator {
	return &service{secret: []byte(secret)}
}

func (s *service) ValidateToken(tokenString string) (*ServiceClaims, error) {
	claims := &ServiceClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GenerateServiceToken emite um token de serviço assinado. Usado pelo
// script de provisionamento e pelos testes
func GenerateServiceToken(secret, caller string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := &ServiceClaims{
		Caller: caller,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
