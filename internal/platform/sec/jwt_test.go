// Copyright (c) 2026 FB-API. All rights reserved.

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itstee2k3/fb-api/internal/platform/sec"
)

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testIssuer   = "fb-api"
	testAudience = "fb-api-clients"
)

func newTestService(t *testing.T) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService(testSecret, testIssuer, testAudience)
	require.NoError(t, err)
	return service
}

/*
TestNewTokenService_Configuration verifies that missing configuration is
rejected at construction time, not at request time.
*/
func TestNewTokenService_Configuration(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		issuer   string
		audience string
		wantErr  bool
	}{
		{"valid", testSecret, testIssuer, testAudience, false},
		{"empty_secret", "", testIssuer, testAudience, true},
		{"empty_issuer", testSecret, "", testAudience, true},
		{"empty_audience", testSecret, testIssuer, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sec.NewTokenService(tt.secret, tt.issuer, tt.audience)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

/*
TestTokenService_Roundtrip verifies that issue followed by verify yields the
same identity: user ID, username, and full role set.
*/
func TestTokenService_Roundtrip(t *testing.T) {
	service := newTestService(t)

	token, err := service.GenerateAccessToken("u1", "alice", []string{"user", "admin"}, time.Hour)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, []string{"user", "admin"}, claims.Roles)
	assert.NotEmpty(t, claims.ID, "jti nonce must be set")
}

/*
TestTokenService_RoundtripNoRoles verifies an identity with zero roles still
issues and verifies cleanly.
*/
func TestTokenService_RoundtripNoRoles(t *testing.T) {
	service := newTestService(t)

	token, err := service.GenerateAccessToken("u2", "bob", nil, time.Hour)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Empty(t, claims.Roles)
	assert.False(t, claims.HasRole("admin"))
}

/*
TestTokenService_Expired verifies that a token past its lifetime fails with
the Expired category.
*/
func TestTokenService_Expired(t *testing.T) {
	service := newTestService(t)

	token, err := service.GenerateAccessToken("u1", "alice", []string{"user"}, -time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrTokenExpired)
}

/*
TestTokenService_TamperedSignature verifies that altering a single byte of
the signature invalidates the whole token.
*/
func TestTokenService_TamperedSignature(t *testing.T) {
	service := newTestService(t)

	token, err := service.GenerateAccessToken("u1", "alice", []string{"user"}, time.Hour)
	require.NoError(t, err)

	// Flip the last character of the base64url signature segment.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = service.VerifyToken(string(tampered))
	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrBadSignature)
}

/*
TestTokenService_Garbage verifies that structurally invalid tokens are
rejected as bad signatures, never as partial successes.
*/
func TestTokenService_Garbage(t *testing.T) {
	service := newTestService(t)

	for _, token := range []string{"", "not-a-jwt", "a.b", "a.b.c"} {
		_, err := service.VerifyToken(token)
		assert.ErrorIs(t, err, sec.ErrBadSignature, "token %q", token)
	}
}

/*
TestTokenService_WrongIssuer verifies tokens issued under a different issuer
configuration are rejected with the WrongIssuer category.
*/
func TestTokenService_WrongIssuer(t *testing.T) {
	issuerA := newTestService(t)
	issuerB, err := sec.NewTokenService(testSecret, "other-issuer", testAudience)
	require.NoError(t, err)

	token, err := issuerB.GenerateAccessToken("u1", "alice", nil, time.Hour)
	require.NoError(t, err)

	_, err = issuerA.VerifyToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrWrongIssuer)
}

/*
TestTokenService_WrongAudience verifies tokens minted for a different
audience are rejected with the WrongAudience category.
*/
func TestTokenService_WrongAudience(t *testing.T) {
	verifier := newTestService(t)
	other, err := sec.NewTokenService(testSecret, testIssuer, "some-other-app")
	require.NoError(t, err)

	token, err := other.GenerateAccessToken("u1", "alice", nil, time.Hour)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrWrongAudience)
}

/*
TestTokenService_CheckOrder verifies that issuer is checked before audience
and audience before expiry, so the first failing check determines the error.
*/
func TestTokenService_CheckOrder(t *testing.T) {
	verifier := newTestService(t)

	// Wrong issuer AND wrong audience AND expired: issuer must win.
	foreign, err := sec.NewTokenService(testSecret, "foreign", "foreign-clients")
	require.NoError(t, err)

	token, err := foreign.GenerateAccessToken("u1", "alice", nil, -time.Minute)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, sec.ErrWrongIssuer)

	// Right issuer, wrong audience, expired: audience must win.
	halfForeign, err := sec.NewTokenService(testSecret, testIssuer, "foreign-clients")
	require.NoError(t, err)

	token, err = halfForeign.GenerateAccessToken("u1", "alice", nil, -time.Minute)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, sec.ErrWrongAudience)
}

/*
TestTokenService_DistinctNonces verifies that two tokens for the same identity
issued back-to-back carry different jti nonces while holding identical
identity claims, and that both verify independently.
*/
func TestTokenService_DistinctNonces(t *testing.T) {
	service := newTestService(t)

	first, err := service.GenerateAccessToken("u1", "alice", []string{"user"}, time.Hour)
	require.NoError(t, err)
	second, err := service.GenerateAccessToken("u1", "alice", []string{"user"}, time.Hour)
	require.NoError(t, err)

	firstClaims, err := service.VerifyToken(first)
	require.NoError(t, err)
	secondClaims, err := service.VerifyToken(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
	assert.Equal(t, firstClaims.UserID, secondClaims.UserID)
	assert.Equal(t, firstClaims.Username, secondClaims.Username)
	assert.Equal(t, firstClaims.Roles, secondClaims.Roles)
}

/*
TestAuthClaims_HasRole tests flat role membership.
*/
func TestAuthClaims_HasRole(t *testing.T) {
	claims := &sec.AuthClaims{Roles: []string{"user", "editor"}}

	assert.True(t, claims.HasRole("user"))
	assert.True(t, claims.HasRole("editor"))
	assert.False(t, claims.HasRole("admin"))

	// Membership is flat: no role implies another.
	adminOnly := &sec.AuthClaims{Roles: []string{"admin"}}
	assert.False(t, adminOnly.HasRole("user"))
}
