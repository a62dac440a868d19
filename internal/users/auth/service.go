// Copyright (c) 2026 FB-API. All rights reserved.

/*
Package auth implements the core identity and access management (IAM) system.

It handles user registration, secure password hashing, and stateless
authentication via signed JWTs. Failed login attempts are throttled through
Redis to blunt brute-force attacks.

Architecture:

  - Service: Orchestrates business logic (Register, Login).
  - Repository: Abstracted interfaces for Postgres (Users) and Redis (Throttle).
  - Security: Leverages Bcrypt hashing and HMAC-signed JWTs.

The package ensures that identity data remains consistent and secure throughout
the platform's lifecycle.
*/
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/itstee2k3/fb-api/internal/platform/apperr"
	"github.com/itstee2k3/fb-api/internal/platform/sec"
	"github.com/itstee2k3/fb-api/pkg/uuidv7"
)

// # Contracts & Types

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	//
	// # Parameters
	//   - userID: The ID of the account.
	//   - username: The username of the account.
	//   - roles: The flat list of role names held by the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an err if signing fails.
	GenerateAccessToken(userID, username string, roles []string, timeToLive time.Duration) (string, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed by the security team.
type Service struct {
	userRepository     UserRepository
	roleDirectory      RoleDirectory
	throttleRepository LoginThrottleRepository
	tokenProvider      TokenProvider
	tokenTTL           time.Duration
	logger             *slog.Logger
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(
	userRepo UserRepository,
	roleDir RoleDirectory,
	throttleRepo LoginThrottleRepository,
	tokenProv TokenProvider,
	tokenTTL time.Duration,
	logger *slog.Logger,
) *Service {
	return &Service{
		userRepository:     userRepo,
		roleDirectory:      roleDir,
		throttleRepository: throttleRepo,
		tokenProvider:      tokenProv,
		tokenTTL:           tokenTTL,
		logger:             logger,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	DisplayName string
	Role        string // Optional extra role requested at sign-up.
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Deep-enrollment of a new member. Every account is granted the
baseline "user" role; an optional extra role named in the input is created
lazily by the role registry before assignment.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - err: Conflict (if identity exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Verify email uniqueness. Return a client-safe Conflict err.
	_, err := service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// Verify username uniqueness. Return a client-safe Conflict err.
	_, err = service.userRepository.FindByUsername(context, input.Username)
	if err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuidv7.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		DisplayName:  input.DisplayName,
	}

	// Persist the user to the database
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	// Every member holds the baseline role.
	if err := service.roleDirectory.Assign(context, user.ID, sec.RoleUser); err != nil {
		return nil, fmt.Errorf("auth_service_baseline_role_failed: %w", err)
	}

	// An extra role requested at sign-up is ensured lazily by the registry.
	if input.Role != "" && input.Role != sec.RoleUser {
		if err := service.roleDirectory.Assign(context, user.ID, input.Role); err != nil {
			return nil, fmt.Errorf("auth_service_requested_role_failed: %w", err)
		}
	}

	service.logger.Info("user_registered", slog.String("user_id", user.ID))

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Login    string // Can be Username or Email
	Password string
}

// LoginSession represents a successfully issued stateless session.
type LoginSession struct {
	AccessToken string
	ExpiresIn   time.Duration
	Roles       []string
	User        *User
}

/*
Login validates user credentials and issues a signed access token.

Description: Verifies identity, performs constant-time password comparison,
and mints a stateless JWT carrying the user's flat role set. Failed attempts
feed the Redis throttle; the attempt counter resets on success.

The failure message never distinguishes an unknown account from a wrong
password, to prevent user enumeration.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session identifiers
  - err: Unauthorized, RateLimited, or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {

	// Count this attempt before any credential work so that probing a locked
	// identifier keeps extending the window.
	attempts, err := service.throttleRepository.Hit(context, input.Login)
	if err != nil {
		return nil, fmt.Errorf("auth_service_throttle_failed: %w", err)
	}
	if attempts > LoginAttemptLimit {
		return nil, apperr.RateLimited(int(LoginAttemptWindow.Seconds()))
	}

	// Flexible login: look up by Email or Username
	user, err := service.userRepository.FindByEmail(context, input.Login)
	if err != nil {
		user, err = service.userRepository.FindByUsername(context, input.Login)
	}

	// If (err != nil) the user does not exist. Generic message to prevent enumeration.
	if err != nil {
		return nil, apperr.Unauthorized(InvalidCredentialsMessage)
	}

	// Verify password hash using constant-time comparison in bcrypt to prevent timing attacks
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized(InvalidCredentialsMessage)
	}

	// A genuine login clears the brute-force counter.
	_ = service.throttleRepository.Reset(context, input.Login)

	// Snapshot the user's flat role set into the token claims.
	roles, err := service.roleDirectory.NamesOf(context, user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth_service_roles_lookup_failed: %w", err)
	}

	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Username, roles, service.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	service.logger.Info("user_logged_in", slog.String("user_id", user.ID))

	return &LoginSession{
		AccessToken: accessToken,
		ExpiresIn:   service.tokenTTL,
		Roles:       roles,
		User:        user,
	}, nil
}

/*
Logout acknowledges a client-side sign-out.

Description: Tokens are stateless and the server keeps no session records,
so there is nothing to revoke. An issued token simply remains valid until
its expiry; clients discard it locally.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - err: Always nil
*/
func (service *Service) Logout(context context.Context, userID string) error {
	service.logger.Info("user_logged_out", slog.String("user_id", userID))
	return nil
}
