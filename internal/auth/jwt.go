// Package auth holds the JWT token service and password hashing helpers
// behind the login flow.
package auth

import (
	"errors"
	"time"

	"clicknova_admin/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

type claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService signs HS256 access tokens. The jti claim carries the token id
// used for revocation lookups.
type JWTService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

var _ interfaces.ITokenService = (*JWTService)(nil)

func NewJWTService(secret, issuer string, ttl time.Duration) *JWTService {
	return &JWTService{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

func (s *JWTService) Issue(userID, email, role string) (string, interfaces.TokenClaims, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.ttl)
	tokenID := uuid.NewString()

	c := claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   userID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", interfaces.TokenClaims{}, err
	}
	return signed, interfaces.TokenClaims{
		TokenID:   tokenID,
		UserID:    userID,
		Email:     email,
		Role:      role,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *JWTService) Parse(token string) (interfaces.TokenClaims, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return interfaces.TokenClaims{}, ErrTokenExpired
		}
		return interfaces.TokenClaims{}, ErrInvalidToken
	}
	if !parsed.Valid || c.ID == "" || c.Subject == "" {
		return interfaces.TokenClaims{}, ErrInvalidToken
	}

	return interfaces.TokenClaims{
		TokenID:   c.ID,
		UserID:    c.Subject,
		Email:     c.Email,
		Role:      c.Role,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}
