// Copyright (c) 2026 FB-API. All rights reserved.

package role

import "context"

// # Role Data Access

// Repository defines the data access contract for roles and their memberships.
type Repository interface {

	/*
		FindByName returns the role with the given name.

		Parameters:
		  - context: context.Context
		  - name: string

		Returns:
		  - *Role: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByName(context context.Context, name string) (*Role, error)

	/*
		Create persists a brand-new role.

		Parameters:
		  - context: context.Context
		  - role: *Role

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, role *Role) error

	/*
		Assign attaches a role to a user account. The operation is idempotent:
		assigning an already-held role succeeds without effect.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - roleID: string

		Returns:
		  - error: Persistence failures
	*/
	Assign(context context.Context, userID, roleID string) error

	/*
		NamesByUserID lists the role names held by a user account.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []string: Role names, possibly empty
		  - error: Retrieval failures
	*/
	NamesByUserID(context context.Context, userID string) ([]string, error)
}
