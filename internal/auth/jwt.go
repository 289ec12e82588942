package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/profilkantor/profile-api/internal/config"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims is the payload of an access token. The id, email and name claims
// identify the user; exp, iat and iss come from the registered claims.
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HS256 signed bearer tokens
type TokenManager struct {
	secret    []byte
	expiresIn time.Duration
	issuer    string
	now       func() time.Time
}

// NewTokenManager creates a token manager from JWT configuration
func NewTokenManager(cfg *config.JWTConfig) *TokenManager {
	return &TokenManager{
		secret:    []byte(cfg.Secret),
		expiresIn: cfg.ExpiresInDuration(),
		issuer:    cfg.Issuer,
		now:       time.Now,
	}
}

// ExpiresIn returns the lifetime of issued tokens
func (m *TokenManager) ExpiresIn() time.Duration {
	return m.expiresIn
}

// Issue signs a token for the given user
func (m *TokenManager) Issue(userID uuid.UUID, email, name string) (string, error) {
	now := m.now()
	claims := Claims{
		ID:    userID.String(),
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiresIn)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies signature, algorithm, expiry and issuer and returns
// the identity carried by the token
func (m *TokenManager) ValidateToken(tokenString string) (*UserContext, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad id claim", ErrInvalidToken)
	}

	return &UserContext{
		UserID: userID,
		Email:  claims.Email,
		Name:   claims.Name,
	}, nil
}
