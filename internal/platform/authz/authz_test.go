// Copyright (c) 2026 FB-API. All rights reserved.

package authz_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itstee2k3/fb-api/internal/platform/apperr"
	"github.com/itstee2k3/fb-api/internal/platform/authz"
)

/*
TestDecide covers the full decision table: absent resources deny with
NotFound regardless of recorded owner, owner mismatches deny with Forbidden,
and matches allow.
*/
func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		callerID string
		resource authz.Resource
		want     authz.Decision
	}{
		{"absent_resource", "u1", authz.Resource{Exists: false}, authz.DenyNotFound},
		{"absent_resource_with_stale_owner", "u1", authz.Resource{Exists: false, OwnerID: "u1"}, authz.DenyNotFound},
		{"absent_resource_other_owner", "u1", authz.Resource{Exists: false, OwnerID: "u2"}, authz.DenyNotFound},
		{"owned_by_caller", "u1", authz.Resource{Exists: true, OwnerID: "u1"}, authz.Allow},
		{"owned_by_other", "u1", authz.Resource{Exists: true, OwnerID: "u2"}, authz.DenyForbidden},
		{"empty_owner_field", "u1", authz.Resource{Exists: true, OwnerID: ""}, authz.DenyForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := authz.Decide(tt.callerID, tt.resource)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want == authz.Allow, got.Allowed())
		})
	}
}

/*
TestDecide_ExistenceBeforeOwnership pins the check order: a deleted resource
must surface as NotFound even to a caller who used to own it, so Forbidden
never leaks existence information.
*/
func TestDecide_ExistenceBeforeOwnership(t *testing.T) {
	deleted := authz.Resource{Exists: false, OwnerID: "u1"}

	assert.Equal(t, authz.DenyNotFound, authz.Decide("u1", deleted))
	assert.Equal(t, authz.DenyNotFound, authz.Decide("u2", deleted))
}

/*
TestDecision_Err verifies the mapping from decisions to the stable
machine-readable API errors.
*/
func TestDecision_Err(t *testing.T) {
	assert.NoError(t, authz.Allow.Err("Post"))

	notFound := apperr.As(authz.DenyNotFound.Err("Post"))
	require.NotNil(t, notFound)
	assert.Equal(t, "NOT_FOUND", notFound.Code)
	assert.Equal(t, http.StatusNotFound, notFound.HTTPStatus)

	forbidden := apperr.As(authz.DenyForbidden.Err("Post"))
	require.NotNil(t, forbidden)
	assert.Equal(t, "FORBIDDEN", forbidden.Code)
	assert.Equal(t, http.StatusForbidden, forbidden.HTTPStatus)
}

/*
TestDecision_String verifies the diagnostic names.
*/
func TestDecision_String(t *testing.T) {
	assert.Equal(t, "ALLOW", authz.Allow.String())
	assert.Equal(t, "DENY_NOT_FOUND", authz.DenyNotFound.String())
	assert.Equal(t, "DENY_FORBIDDEN", authz.DenyForbidden.String())
}
