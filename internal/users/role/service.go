// Copyright (c) 2026 FB-API. All rights reserved.

package role

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/itstee2k3/fb-api/internal/platform/apperr"
	"github.com/itstee2k3/fb-api/internal/platform/sec"
	"github.com/itstee2k3/fb-api/pkg/uuidv7"
)

// # Registry Service

// Registry orchestrates idempotent role creation and flat assignment.
//
// Every operation here can be retried safely. Ensuring an existing role or
// re-assigning a held role never fails, which lets the bootstrap sequence
// and the registration flow call into the registry without existence checks.
type Registry struct {
	repository Repository
	logger     *slog.Logger
}

// NewRegistry constructs a new [Registry] with its repository dependency.
func NewRegistry(repository Repository, logger *slog.Logger) *Registry {
	return &Registry{
		repository: repository,
		logger:     logger,
	}
}

/*
Ensure returns the role with the given name, creating it if absent.

Description: Idempotent get-or-create. A concurrent create by another
instance is tolerated by re-reading after a unique-constraint conflict.

Parameters:
  - context: context.Context
  - name: string

Returns:
  - *Role: The existing or freshly created role
  - error: Storage failures
*/
func (registry *Registry) Ensure(context context.Context, name string) (*Role, error) {

	// Fast path: the role already exists.
	existing, err := registry.repository.FindByName(context, name)
	if err == nil {
		return existing, nil
	}
	if !apperr.IsNotFound(err) {
		return nil, fmt.Errorf("role_registry_ensure_lookup_failed: %w", err)
	}

	// Slow path: create it. Time-sortable ID to prevent PG index fragmentation.
	created := &Role{
		ID:   uuidv7.New(),
		Name: name,
	}

	if err := registry.repository.Create(context, created); err != nil {
		// Lost a race against a concurrent Ensure. The row exists now, re-read it.
		if apperr.IsConflict(err) {
			return registry.repository.FindByName(context, name)
		}
		return nil, fmt.Errorf("role_registry_ensure_create_failed: %w", err)
	}

	registry.logger.Info("role_created", slog.String("role", name))

	return created, nil
}

/*
Assign grants the named role to a user, creating the role first if needed.

Description: Idempotent on both axes. The role is ensured, then membership
is recorded; granting an already-held role succeeds without effect.

Parameters:
  - context: context.Context
  - userID: string
  - name: string

Returns:
  - error: Storage failures
*/
func (registry *Registry) Assign(context context.Context, userID, name string) error {
	grantedRole, err := registry.Ensure(context, name)
	if err != nil {
		return err
	}

	if err := registry.repository.Assign(context, userID, grantedRole.ID); err != nil {
		return fmt.Errorf("role_registry_assign_failed: %w", err)
	}

	return nil
}

/*
NamesOf lists the role names held by a user account.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []string: Flat list of role names, possibly empty
  - error: Retrieval failures
*/
func (registry *Registry) NamesOf(context context.Context, userID string) ([]string, error) {
	names, err := registry.repository.NamesByUserID(context, userID)
	if err != nil {
		return nil, fmt.Errorf("role_registry_names_of_failed: %w", err)
	}
	return names, nil
}

/*
EnsureBaseline creates the platform's built-in roles if they are absent.

Description: Called once at startup so that registration and admin gating
never race against missing rows. Safe to run on every boot.

Parameters:
  - context: context.Context

Returns:
  - error: Storage failures
*/
func (registry *Registry) EnsureBaseline(context context.Context) error {
	for _, name := range sec.BaselineRoles {
		if _, err := registry.Ensure(context, name); err != nil {
			return fmt.Errorf("role_registry_baseline_failed for %q: %w", name, err)
		}
	}

	registry.logger.Info("baseline_roles_ensured", slog.Int("count", len(sec.BaselineRoles)))

	return nil
}
