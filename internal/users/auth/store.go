// Copyright (c) 2026 FB-API. All rights reserved.

package auth

import "context"

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByEmail returns the account with the given email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		FindByUsername returns the account with the given username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*User, error)

	/*
		Create persists a brand-new user account to the storage.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, user *User) error

	/*
		Update persists changes to mutable profile fields.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, user *User) error

	/*
		UpdatePassword replaces only the user's password hash.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - newHash: string

		Returns:
		  - error: Persistence failures
	*/
	UpdatePassword(context context.Context, userID, newHash string) error
}

// # Role Directory

// RoleDirectory defines the contract the auth flow needs from the role registry.
type RoleDirectory interface {

	/*
		Assign grants the named role to a user, creating the role if absent.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - name: string

		Returns:
		  - error: Persistence failures
	*/
	Assign(context context.Context, userID, name string) error

	/*
		NamesOf lists the role names held by a user account.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []string: Flat list of role names
		  - error: Retrieval failures
	*/
	NamesOf(context context.Context, userID string) ([]string, error)
}

// # Volatile Data Access

// LoginThrottleRepository defines the contract for counting failed login
// attempts in volatile storage.
type LoginThrottleRepository interface {

	/*
		Hit records one failed attempt for a login identifier and returns the
		running total inside the current window.

		Parameters:
		  - context: context.Context
		  - login: string

		Returns:
		  - int64: Attempt count including this one
		  - error: Storage failures
	*/
	Hit(context context.Context, login string) (int64, error)

	/*
		Reset clears the attempt counter after a successful login.

		Parameters:
		  - context: context.Context
		  - login: string

		Returns:
		  - error: Storage failures
	*/
	Reset(context context.Context, login string) error
}
