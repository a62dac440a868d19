// Copyright (c) 2026 FB-API. All rights reserved.

/*
Package role implements the role registry for the FB-API platform.

It manages the catalogue of named roles and their flat assignment to user
accounts. Roles carry no hierarchy: holding "admin" says nothing about
"user", and every authorization check elsewhere is an exact membership test.

# Architecture

  - Registry: Orchestrates idempotent role creation and assignment.
  - Repository: Abstracted persistence over Postgres (users.role, users.account_role).
*/
package role

import "time"

// # Domain Entities

// Role represents a named grant that can be attached to any number of accounts.
type Role struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// # Field Identifiers

const (
	FieldName = "name"
)
