// Copyright (c) 2026 FB-API. All rights reserved.

/*
Package authz implements the ownership authorization decision for mutating
operations on user-owned resources.

# Architecture

The decision function is pure: it performs no I/O and holds no state. The
storage layer supplies a single consistent snapshot of the resource
(existence + recorded owner) and this package decides Allow or Deny. Handlers
translate the decision into transport-level responses via [Decision.Err].

# Decision Order

Existence is checked before ownership. A caller therefore learns whether a
resource exists, but never who owns it: a missing resource yields NotFound
while an existing resource owned by someone else yields Forbidden. This is a
deliberate information-disclosure trade-off.

Creation is asymmetric: on create there is no prior owner to compare against,
so ownership is assigned from the authenticated identity, not checked. That
assignment happens in the domain services, never from client input.
*/
package authz

import "github.com/itstee2k3/fb-api/internal/platform/apperr"

// Resource is a snapshot of the authorization-relevant state of a stored
// entity, as read by the resource repository in a single lookup.
type Resource struct {
	// Exists reports whether a row with the requested ID is present.
	Exists bool

	// OwnerID is the identity that created the resource. Set exactly once at
	// creation and immutable thereafter. Meaningless when Exists is false.
	OwnerID string
}

// Decision is the tagged outcome of an ownership check.
//
// Using an explicit enum (rather than error types for "not found" vs
// "forbidden") keeps the two deny outcomes statically distinguishable.
type Decision int

const (
	// Allow permits the mutation: the resource exists and the caller owns it.
	Allow Decision = iota

	// DenyNotFound rejects the mutation because the resource does not exist.
	DenyNotFound

	// DenyForbidden rejects the mutation because the resource exists but is
	// owned by a different identity.
	DenyForbidden
)

// String returns the stable machine-readable name of the decision.
func (decision Decision) String() string {
	switch decision {
	case Allow:
		return "ALLOW"
	case DenyNotFound:
		return "DENY_NOT_FOUND"
	case DenyForbidden:
		return "DENY_FORBIDDEN"
	default:
		return "UNKNOWN"
	}
}

// Allowed reports whether the decision permits the mutation.
func (decision Decision) Allowed() bool {
	return decision == Allow
}

// Decide gates a mutating operation on an owned resource.
//
// # Algorithm
//
//  1. Resource absent        -> DenyNotFound (existence before ownership).
//  2. Owner differs          -> DenyForbidden.
//  3. Otherwise              -> Allow.
//
// The function is deterministic given its inputs: denials must never be
// retried without new input.
func Decide(callerID string, resource Resource) Decision {
	if !resource.Exists {
		return DenyNotFound
	}
	if resource.OwnerID != callerID {
		return DenyForbidden
	}
	return Allow
}

// Err maps a deny decision to the canonical [*apperr.AppError] for the named
// resource, giving every denial a stable machine-readable code (NOT_FOUND or
// FORBIDDEN) instead of an ad hoc message string. It returns nil for Allow.
func (decision Decision) Err(resource string) error {
	switch decision {
	case Allow:
		return nil
	case DenyNotFound:
		return apperr.NotFound(resource)
	case DenyForbidden:
		return apperr.Forbidden("You do not own this " + resource)
	default:
		return apperr.Forbidden("You do not own this " + resource)
	}
}
