package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Audience values keep the two token classes disjoint: a token signed
// for one audience never verifies against the issuer of the other, even
// if the secrets were ever confused.
const (
	AudienceUser  = "user"
	AudienceAdmin = "admin"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carried by both token classes.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies bearer tokens for one identity class.
// Two instances exist at runtime: users (7-day TTL) and admins (12-hour
// TTL), each with its own secret.
type TokenIssuer struct {
	secret   []byte
	ttl      time.Duration
	audience string
}

// NewTokenIssuer fails on an empty secret so that a misconfigured
// deployment stops at startup instead of running unauthenticated.
func NewTokenIssuer(secret, audience string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("token secret must not be empty")
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	return &TokenIssuer{
		secret:   []byte(secret),
		ttl:      ttl,
		audience: audience,
	}, nil
}

// Issue signs a token for the given identity.
func (i *TokenIssuer) Issue(id, email, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			Audience:  jwt.ClaimStrings{i.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify parses and validates a token. It fails closed: signature
// mismatch, expiry, wrong audience, wrong algorithm or a malformed
// token all yield ErrInvalidToken and no claims.
func (i *TokenIssuer) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	}, jwt.WithAudience(i.audience), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
