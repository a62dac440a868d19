// Copyright (c) 2026 FB-API. All rights reserved.

package sec

// # User Roles

// Well-known role names. Roles are plain names with flat membership —
// holding "admin" implies nothing about "user" and vice versa.
const (
	// Unrestricted access to catalog management
	RoleAdmin = "admin"

	// Default role assigned to every registered account
	RoleUser = "user"
)

// BaselineRoles is the fixed role set guaranteed to exist at process start.
// Additional roles are created lazily the first time a registration names them.
var BaselineRoles = []string{RoleAdmin, RoleUser}
