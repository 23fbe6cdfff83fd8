// Package token issues and verifies the API's bearer tokens
package token

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	perrs "roster/internal/platform/errors"
	"roster/internal/platform/net/middleware"
)

// Options configure the signer
type Options struct {
	// Secret is the HMAC signing key, required
	Secret string
	// Issuer and Audience are stamped into and checked on every token
	Issuer   string
	Audience string
	// TTL is the token lifetime, 60 minutes when zero
	TTL time.Duration
}

// Signer signs and verifies HS256 tokens carrying the account identity
type Signer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// New constructs a Signer
func New(opt Options) *Signer {
	if opt.Secret == "" {
		panic("token.Signer requires a non empty secret")
	}
	ttl := opt.TTL
	if ttl == 0 {
		ttl = 60 * time.Minute
	}
	return &Signer{
		secret:   []byte(opt.Secret),
		issuer:   opt.Issuer,
		audience: opt.Audience,
		ttl:      ttl,
	}
}

type claims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Sign mints a token for the account. Subject carries the email; uid and
// role ride as private claims, jti is a fresh uuid
func (s *Signer) Sign(userID int64, email, role string) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(s.ttl)

	c := claims{
		UserID: strconv.FormatInt(userID, 10),
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return raw, exp, nil
}

// Verify parses and validates a raw token and returns the principal it
// carries. Any defect collapses to an unauthorized error so the transport
// never leaks parser details
func (s *Signer) Verify(raw string) (middleware.Principal, error) {
	var c claims
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	if s.audience != "" {
		opts = append(opts, jwt.WithAudience(s.audience))
	}

	_, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return middleware.Principal{}, perrs.Unauthorizedf("invalid bearer token")
	}
	if c.UserID == "" || c.Role == "" {
		return middleware.Principal{}, perrs.Unauthorizedf("invalid bearer token")
	}

	return middleware.Principal{
		UserID: c.UserID,
		Email:  c.Subject,
		Role:   c.Role,
	}, nil
}
