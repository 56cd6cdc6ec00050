package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenUseAccess  = "access"
	TokenUseRefresh = "refresh"

	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

var ErrWrongTokenUse = errors.New("token cannot be used for this purpose")

// Claims identify the caller only. Authorization is decided from stored user state.
type Claims struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	TokenUse string `json:"use"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewService(secretKey string) *Service {
	return NewServiceWithTTL(secretKey, defaultAccessTTL, defaultRefreshTTL)
}

func NewServiceWithTTL(secretKey string, accessTTL, refreshTTL time.Duration) *Service {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &Service{
		secretKey:  []byte(secretKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *Service) AccessTTL() time.Duration  { return s.accessTTL }
func (s *Service) RefreshTTL() time.Duration { return s.refreshTTL }

func (s *Service) GenerateToken(userID, email string) (string, error) {
	return s.sign(userID, email, TokenUseAccess, s.accessTTL)
}

func (s *Service) GenerateRefreshToken(userID, email string) (string, error) {
	return s.sign(userID, email, TokenUseRefresh, s.refreshTTL)
}

// ValidateToken accepts access tokens only.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	return s.validate(tokenString, TokenUseAccess)
}

func (s *Service) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return s.validate(tokenString, TokenUseRefresh)
}

func (s *Service) sign(userID, email, use string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   userID,
		Email:    email,
		TokenUse: use,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *Service) validate(tokenString, use string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.TokenUse != use {
		return nil, ErrWrongTokenUse
	}
	return claims, nil
}
