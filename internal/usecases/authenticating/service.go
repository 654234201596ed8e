package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/config"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/domain"
	"github.com/vfg2006/newsbreak-ads-mcp/pkg/apiErrors"
)

const issuer = "newsbreak-ads-mcp"

// Authenticator emite e valida os tokens HS256 aceitos pelo transporte HTTP
type Authenticator interface {
	GenerateToken(clientName string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret []byte
	now    func() time.Time
}

func NewService(cfg *config.Config) (Authenticator, error) {
	secret := strings.TrimSpace(cfg.Auth.Secret)
	if secret == "" {
		return nil, ErrMissingSecret
	}

	return &Service{secret: []byte(secret), now: time.Now}, nil
}

func (s *Service) GenerateToken(clientName string, ttl time.Duration) (string, error) {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return "", ErrInvalidClient
	}

	now := s.now()
	claims := domain.Claims{
		ClientName: clientName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  clientName,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("erro ao assinar token: %w", err)
	}
	return signed, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}
	return claims, nil
}
