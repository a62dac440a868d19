// Copyright (c) 2026 FB-API. All rights reserved.

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itstee2k3/fb-api/internal/platform/ctxutil"
	"github.com/itstee2k3/fb-api/internal/platform/middleware"
	"github.com/itstee2k3/fb-api/internal/platform/sec"
)

// fakeVerifier accepts exactly one token string and returns canned claims.
type fakeVerifier struct {
	token  string
	claims *sec.AuthClaims
}

func (verifier *fakeVerifier) VerifyToken(tokenString string) (*sec.AuthClaims, error) {
	if tokenString != verifier.token {
		return nil, errors.New("verification failed")
	}
	return verifier.claims, nil
}

func okHandler(captured **sec.AuthClaims) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if captured != nil {
			*captured = ctxutil.GetAuthUser(request.Context())
		}
		writer.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_AnonymousPassesThrough(t *testing.T) {
	var seen *sec.AuthClaims
	handler := middleware.Authenticate(&fakeVerifier{token: "good"})(okHandler(&seen))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Nil(t, seen, "anonymous request should carry no claims")
}

func TestAuthenticate_ValidToken(t *testing.T) {
	claims := &sec.AuthClaims{UserID: "u1", Username: "alice", Roles: []string{sec.RoleUser}}
	var seen *sec.AuthClaims
	handler := middleware.Authenticate(&fakeVerifier{token: "good", claims: claims})(okHandler(&seen))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer good")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "u1", seen.UserID)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	handler := middleware.Authenticate(&fakeVerifier{token: "good"})(okHandler(nil))

	for _, header := range []string{"good", "Basic abc", "Bearer a b"} {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", header)

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code, "header %q", header)
	}
}

func TestAuthenticate_BadToken(t *testing.T) {
	handler := middleware.Authenticate(&fakeVerifier{token: "good"})(okHandler(nil))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer forged")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuth(t *testing.T) {
	handler := middleware.RequireAuth(okHandler(nil))

	// Anonymous request is rejected.
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// Authenticated request passes.
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: "u1"})
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request.WithContext(ctx))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequireRole(t *testing.T) {
	handler := middleware.RequireRole(sec.RoleAdmin)(okHandler(nil))

	tests := []struct {
		name   string
		claims *sec.AuthClaims
		want   int
	}{
		{name: "anonymous", claims: nil, want: http.StatusUnauthorized},
		{name: "no roles", claims: &sec.AuthClaims{UserID: "u1"}, want: http.StatusForbidden},
		{name: "wrong role", claims: &sec.AuthClaims{UserID: "u1", Roles: []string{sec.RoleUser}}, want: http.StatusForbidden},
		{name: "exact role", claims: &sec.AuthClaims{UserID: "u1", Roles: []string{sec.RoleAdmin}}, want: http.StatusOK},
		{name: "role among many", claims: &sec.AuthClaims{UserID: "u1", Roles: []string{sec.RoleUser, sec.RoleAdmin}}, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodDelete, "/products/p1", nil)
			if tt.claims != nil {
				request = request.WithContext(ctxutil.WithAuthUser(request.Context(), tt.claims))
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.want, recorder.Code)
		})
	}
}
