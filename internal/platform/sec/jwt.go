// Copyright (c) 2026 FB-API. All rights reserved.

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via the TokenProvider interface.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// # Verification Failures
//
// Verification is all-or-nothing: the first failing check wins and no partial
// identity is ever produced. The categories below exist for server-side
// diagnostics; the transport layer collapses all of them into a uniform 401.
var (
	// ErrBadSignature indicates the token was malformed or its signature does
	// not match the configured signing key.
	ErrBadSignature = errors.New("sec: token signature invalid")

	// ErrWrongIssuer indicates the 'iss' claim does not match the configured issuer.
	ErrWrongIssuer = errors.New("sec: token issuer mismatch")

	// ErrWrongAudience indicates the 'aud' claim does not include the configured audience.
	ErrWrongAudience = errors.New("sec: token audience mismatch")

	// ErrTokenExpired indicates the token was valid once but its lifetime has passed.
	ErrTokenExpired = errors.New("sec: token expired")
)

// AuthClaims represents the payload embedded inside a JWT access token.
//
// # Why custom claims?
//
// By embedding the UserID, Username, and Roles directly inside the JWT,
// the authentication middleware can reconstruct the active user identity
// WITHOUT querying the database on every single API request. Validity is
// fully determined by signature and expiry — there is no server-side
// session store and no revocation list.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	UserID   string   `json:"uid"`
	Username string   `json:"unm"`
	Roles    []string `json:"rol,omitempty"`
}

// HasRole reports whether the identity holds the given role.
//
// Membership is flat: there is no role hierarchy, only set membership.
func (claims *AuthClaims) HasRole(role string) bool {
	for _, held := range claims.Roles {
		if held == role {
			return true
		}
	}
	return false
}

// TokenService handles generation and verification of JWT tokens using HS256.
//
// The signing secret, issuer, and audience are fixed at construction time and
// never mutated afterwards, so a single instance is safe for concurrent use
// across all requests.
type TokenService struct {
	secret   []byte
	issuer   string
	audience string
}

// NewTokenService creates a new TokenService from the configured symmetric secret.
//
// An empty secret is a configuration error: it is reported here, once, at
// process start — never as a per-request failure.
func NewTokenService(secret, issuer, audience string) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: signing secret must not be empty")
	}
	if issuer == "" {
		return nil, errors.New("sec: token issuer must not be empty")
	}
	if audience == "" {
		return nil, errors.New("sec: token audience must not be empty")
	}

	return &TokenService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
	}, nil
}

// GenerateAccessToken creates a new signed JWT access token for a user.
//
// # Claim Set
//   - sub/uid: stable user identifier
//   - unm:     display username
//   - rol:     one entry per role held (zero or more)
//   - jti:     per-token nonce for traceability (not revocation)
//   - iss/aud: fixed configuration strings, checked again on verification
//   - iat/exp: issuance time and issuance time + timeToLive
//
// The function is pure given the configured secret and the clock: it performs
// no I/O and records nothing server-side.
func (service *TokenService) GenerateAccessToken(userID, username string, roles []string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    service.issuer,
			Audience:  jwt.ClaimStrings{service.audience},
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		UserID:   userID,
		Username: username,
		Roles:    roles,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity of a JWT string.
//
// # Check Order
//
//	1. Signature against the configured key (and HS256 method pinning).
//	2. Issuer matches the configured issuer.
//	3. Audience includes the configured audience.
//	4. Expiry is still in the future.
//
// The first failing check determines the returned error category. Claim
// validation is performed manually (not by the JWT library) so that the
// order above is guaranteed and each failure maps to exactly one category.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&AuthClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
			}
			return service.secret, nil
		},
		jwt.WithoutClaimsValidation(),
	)

	// Any parse failure at this stage means the bytes cannot be trusted:
	// bad signature, wrong algorithm, or a mangled token.
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSignature, err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrBadSignature
	}

	if claims.Issuer != service.issuer {
		return nil, fmt.Errorf("%w: got %q", ErrWrongIssuer, claims.Issuer)
	}

	if !containsAudience(claims.Audience, service.audience) {
		return nil, ErrWrongAudience
	}

	if claims.ExpiresAt == nil || !time.Now().Before(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}

	return claims, nil
}

// containsAudience reports whether the 'aud' claim includes the expected audience.
func containsAudience(audiences jwt.ClaimStrings, expected string) bool {
	for _, audience := range audiences {
		if audience == expected {
			return true
		}
	}
	return false
}
