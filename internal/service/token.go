package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrTokenInvalid covers every verification failure: malformed, bad
// signature, wrong algorithm, expired or wrong purpose. The wrapped cause is
// for logs only.
var ErrTokenInvalid = errors.New("invalid or expired token")

// Purpose separates bearer tokens from account activation tokens.
type Purpose string

const (
	PurposeAuth       Purpose = "auth"
	PurposeActivation Purpose = "activation"
)

// Identity is the claim a token carries about its user.
type Identity struct {
	ID    int
	Email string
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID  int     `json:"id"`
	Email   string  `json:"email"`
	Purpose Purpose `json:"purpose"`
}

// TokenService issues and verifies HS256-signed, time-limited tokens. It
// keeps no server-side state.
type TokenService struct {
	key []byte
	now func() time.Time
}

func NewTokenService(signingKey string) *TokenService {
	return &TokenService{key: []byte(signingKey), now: time.Now}
}

// Issue signs a token for id that expires after ttl.
func (s *TokenService) Issue(id Identity, purpose Purpose, ttl time.Duration) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:  id.ID,
		Email:   id.Email,
		Purpose: purpose,
	})
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, expiry and purpose and returns the identity
// claim. Callers must still resolve the identity against the user store.
func (s *TokenService) Verify(accessToken string, purpose Purpose) (Identity, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.key, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(s.now))
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("%w: unexpected claims", ErrTokenInvalid)
	}
	if claims.Purpose != purpose {
		return Identity{}, fmt.Errorf("%w: purpose %q, want %q", ErrTokenInvalid, claims.Purpose, purpose)
	}
	if claims.UserID <= 0 || claims.Email == "" {
		return Identity{}, fmt.Errorf("%w: empty identity claim", ErrTokenInvalid)
	}
	return Identity{ID: claims.UserID, Email: claims.Email}, nil
}
