package services

import (
	"fmt"
	"time"

	"github.com/diego410711/mbf-backend/internal/config"
	"github.com/diego410711/mbf-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// Claims son las reclamaciones del token de acceso
type Claims struct {
	Email    string `json:"email"`
	Role     string `json:"role"`
	Lastname string `json:"lastname"`
	jwt.RegisteredClaims
}

// AuthService emite y valida tokens de acceso
type AuthService struct {
	config *config.JWTConfig
	logger *logrus.Logger
}

// NewAuthService crea una nueva instancia del servicio de autenticación
func NewAuthService(cfg *config.JWTConfig, logger *logrus.Logger) *AuthService {
	return &AuthService{
		config: cfg,
		logger: logger,
	}
}

// GenerateToken emite un token firmado para el usuario
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:    user.Username,
		Role:     user.Role,
		Lastname: user.Lastname,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	return signed, nil
}

// ValidateToken verifica firma y vigencia de un token y retorna sus claims
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("error parsing token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
