// Package jwtauth verifies HS256 bearer tokens.
package jwtauth

import (
	"context"
	"errors"
	"strings"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "Bearer "

var _ ports.AuthGate = (*Verifier)(nil)

var ErrSecretIsRequired = errs.NewValueIsRequiredError("jwt secret")

// tokenClaims is the token body. The caller's identity is its email; sub is
// accepted when email is absent.
type tokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Verifier implements ports.AuthGate.
type Verifier struct {
	secret []byte
	issuer string
	clock  kernel.Clock
}

// New returns a verifier for tokens signed with secret. When issuer is not
// empty the iss claim must equal it.
func New(secret, issuer string, clock kernel.Clock) (*Verifier, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}
	return &Verifier{secret: []byte(secret), issuer: issuer, clock: clock}, nil
}

// Verify checks an Authorization header value. A missing header or one that
// is not a bearer credential is errs.ErrUnauthorized; a token that fails
// signature, expiry or issuer checks is errs.ErrForbidden.
func (v *Verifier) Verify(_ context.Context, bearer string) (ports.Claims, error) {
	bearer = strings.TrimSpace(bearer)
	if bearer == "" {
		return ports.Claims{}, errs.NewUnauthorizedError("missing bearer token")
	}
	if len(bearer) < len(bearerPrefix) || !strings.EqualFold(bearer[:len(bearerPrefix)], bearerPrefix) {
		return ports.Claims{}, errs.NewUnauthorizedError("authorization is not a bearer token")
	}
	raw := strings.TrimSpace(bearer[len(bearerPrefix):])
	if raw == "" {
		return ports.Claims{}, errs.NewUnauthorizedError("missing bearer token")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.clock.Now),
		jwt.WithIssuedAt(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		reason := "invalid token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			reason = "token has expired"
		}
		return ports.Claims{}, errs.NewForbiddenErrorWithCause(reason, err)
	}

	subject := claims.Email
	if subject == "" {
		subject = claims.Subject
	}
	if subject == "" {
		return ports.Claims{}, errs.NewForbiddenError("token has no subject")
	}

	role := claims.Role
	if role == "" {
		role = ports.RoleUser
	}

	var issuedAt time.Time
	if claims.IssuedAt != nil {
		issuedAt = claims.IssuedAt.Time
	}

	return ports.Claims{Subject: strings.ToLower(subject), Role: role, IssuedAt: issuedAt}, nil
}

// Issue signs a token for email with role, valid for ttl. It is used by tests
// and local tooling; production tokens come from the identity provider.
func (v *Verifier) Issue(email, role string, ttl time.Duration) (string, error) {
	now := v.clock.Now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
		Role:  role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
