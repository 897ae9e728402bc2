package auth

import (
	"errors"
	"fmt"
	"time"

	"skillswap/internal/biddingerrors"
	"skillswap/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "skillswap"

// Claims carried by an access token
type Claims struct {
	UserID string      `json:"user_id"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 access tokens
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("auth: empty signing secret")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("auth: token ttl must be positive, got %s", ttl)
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue returns a signed token for actor
func (i *TokenIssuer) Issue(actor models.Actor) (string, error) {
	if actor.UserID == "" {
		return "", fmt.Errorf("auth: %w: user id is required", biddingerrors.ErrValidation)
	}
	now := i.now()
	claims := &Claims{
		UserID: actor.UserID,
		Role:   actor.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Validate parses token and returns the actor it was issued to
func (i *TokenIssuer) Validate(token string) (models.Actor, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return models.Actor{}, fmt.Errorf("auth: %w: %v", biddingerrors.ErrAuth, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.UserID == "" {
		return models.Actor{}, fmt.Errorf("auth: %w: invalid claims", biddingerrors.ErrAuth)
	}
	switch claims.Role {
	case models.RoleClient, models.RoleFreelancer, models.RoleAdmin:
	default:
		return models.Actor{}, fmt.Errorf("auth: %w: unknown role %q", biddingerrors.ErrAuth, claims.Role)
	}
	return models.Actor{UserID: claims.UserID, Role: claims.Role}, nil
}
