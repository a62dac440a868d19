// Copyright (c) 2026 FB-API. All rights reserved.

package auth_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itstee2k3/fb-api/internal/platform/apperr"
	"github.com/itstee2k3/fb-api/internal/platform/sec"
	"github.com/itstee2k3/fb-api/internal/users/auth"
)

// # Test Doubles

type fakeUserRepository struct {
	byEmail    map[string]*auth.User
	byUsername map[string]*auth.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		byEmail:    make(map[string]*auth.User),
		byUsername: make(map[string]*auth.User),
	}
}

func (repository *fakeUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	for _, user := range repository.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repository *fakeUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	if user, ok := repository.byEmail[email]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (repository *fakeUserRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	if user, ok := repository.byUsername[username]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (repository *fakeUserRepository) Create(_ context.Context, user *auth.User) error {
	repository.byEmail[user.Email] = user
	repository.byUsername[user.Username] = user
	return nil
}

func (repository *fakeUserRepository) Update(_ context.Context, _ *auth.User) error { return nil }

func (repository *fakeUserRepository) UpdatePassword(_ context.Context, _, _ string) error {
	return nil
}

type fakeRoleDirectory struct {
	assigned map[string][]string // userID -> role names
}

func newFakeRoleDirectory() *fakeRoleDirectory {
	return &fakeRoleDirectory{assigned: make(map[string][]string)}
}

func (directory *fakeRoleDirectory) Assign(_ context.Context, userID, name string) error {
	for _, held := range directory.assigned[userID] {
		if held == name {
			return nil
		}
	}
	directory.assigned[userID] = append(directory.assigned[userID], name)
	return nil
}

func (directory *fakeRoleDirectory) NamesOf(_ context.Context, userID string) ([]string, error) {
	return directory.assigned[userID], nil
}

type fakeThrottle struct {
	counts map[string]int64
	resets int
}

func newFakeThrottle() *fakeThrottle {
	return &fakeThrottle{counts: make(map[string]int64)}
}

func (throttle *fakeThrottle) Hit(_ context.Context, login string) (int64, error) {
	throttle.counts[login]++
	return throttle.counts[login], nil
}

func (throttle *fakeThrottle) Reset(_ context.Context, login string) error {
	delete(throttle.counts, login)
	throttle.resets++
	return nil
}

type fakeTokenProvider struct{}

func (fakeTokenProvider) GenerateAccessToken(userID, username string, roles []string, timeToLive time.Duration) (string, error) {
	return fmt.Sprintf("token-for-%s-%d", userID, len(roles)), nil
}

// # Harness

type serviceFixture struct {
	service  *auth.Service
	users    *fakeUserRepository
	roles    *fakeRoleDirectory
	throttle *fakeThrottle
}

func newServiceFixture() *serviceFixture {
	users := newFakeUserRepository()
	roles := newFakeRoleDirectory()
	throttle := newFakeThrottle()

	service := auth.NewService(users, roles, throttle, fakeTokenProvider{}, 24*time.Hour, slog.Default())

	return &serviceFixture{service: service, users: users, roles: roles, throttle: throttle}
}

func (fixture *serviceFixture) mustRegister(t *testing.T, input auth.RegisterInput) *auth.User {
	t.Helper()
	user, err := fixture.service.Register(context.Background(), input)
	require.NoError(t, err)
	return user
}

// # Registration

func TestService_Register(t *testing.T) {
	fixture := newServiceFixture()

	user := fixture.mustRegister(t, auth.RegisterInput{
		Username:    "alice",
		Email:       "alice@example.com",
		Password:    "correct horse battery",
		DisplayName: "Alice",
	})

	require.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)

	// The stored hash must verify against the original password and must
	// never equal the plaintext.
	stored := fixture.users.byUsername["alice"]
	assert.NotEqual(t, "correct horse battery", stored.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("correct horse battery", stored.PasswordHash))

	// Every new account holds exactly the baseline role.
	assert.Equal(t, []string{sec.RoleUser}, fixture.roles.assigned[user.ID])
}

func TestService_Register_OptionalRole(t *testing.T) {
	fixture := newServiceFixture()

	user := fixture.mustRegister(t, auth.RegisterInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "hunter2hunter2",
		Role:     "admin",
	})

	assert.ElementsMatch(t, []string{sec.RoleUser, "admin"}, fixture.roles.assigned[user.ID])
}

func TestService_Register_Conflicts(t *testing.T) {
	fixture := newServiceFixture()
	fixture.mustRegister(t, auth.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "password-one",
	})

	_, err := fixture.service.Register(context.Background(), auth.RegisterInput{
		Username: "other", Email: "alice@example.com", Password: "password-two",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	_, err = fixture.service.Register(context.Background(), auth.RegisterInput{
		Username: "alice", Email: "fresh@example.com", Password: "password-two",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

// # Authentication

func TestService_Login(t *testing.T) {
	fixture := newServiceFixture()
	user := fixture.mustRegister(t, auth.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "correct horse battery",
	})

	session, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Login:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, session.AccessToken)
	assert.Equal(t, 24*time.Hour, session.ExpiresIn)
	assert.Equal(t, user.ID, session.User.ID)
	assert.Equal(t, []string{sec.RoleUser}, session.Roles)

	// A successful login clears the brute-force counter.
	assert.Equal(t, 1, fixture.throttle.resets)
}

func TestService_Login_ByUsername(t *testing.T) {
	fixture := newServiceFixture()
	fixture.mustRegister(t, auth.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "correct horse battery",
	})

	_, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Login:    "alice",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
}

// TestService_Login_UniformFailure pins the anti-enumeration behavior: an
// unknown account and a wrong password must be indistinguishable to clients.
func TestService_Login_UniformFailure(t *testing.T) {
	fixture := newServiceFixture()
	fixture.mustRegister(t, auth.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "correct horse battery",
	})

	_, ghostErr := fixture.service.Login(context.Background(), auth.LoginInput{
		Login: "ghost@example.com", Password: "whatever",
	})
	_, wrongErr := fixture.service.Login(context.Background(), auth.LoginInput{
		Login: "alice@example.com", Password: "not the password",
	})

	require.Error(t, ghostErr)
	require.Error(t, wrongErr)

	ghostApp := apperr.As(ghostErr)
	wrongApp := apperr.As(wrongErr)
	require.NotNil(t, ghostApp)
	require.NotNil(t, wrongApp)

	assert.Equal(t, ghostApp.Code, wrongApp.Code)
	assert.Equal(t, ghostApp.Message, wrongApp.Message)
	assert.Equal(t, ghostApp.HTTPStatus, wrongApp.HTTPStatus)
	assert.Equal(t, auth.InvalidCredentialsMessage, ghostApp.Message)
}

func TestService_Login_Throttled(t *testing.T) {
	fixture := newServiceFixture()
	fixture.mustRegister(t, auth.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "correct horse battery",
	})

	// Burn through the allowed attempts with a wrong password.
	for i := 0; i < auth.LoginAttemptLimit; i++ {
		_, err := fixture.service.Login(context.Background(), auth.LoginInput{
			Login: "alice@example.com", Password: "wrong",
		})
		require.Error(t, err)
	}

	// Even the correct password is rejected once the limit is exceeded.
	_, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Login: "alice@example.com", Password: "correct horse battery",
	})
	require.Error(t, err)

	throttled := apperr.As(err)
	require.NotNil(t, throttled)
	assert.Equal(t, "RATE_LIMITED", throttled.Code)
}

func TestService_Logout_Stateless(t *testing.T) {
	fixture := newServiceFixture()
	assert.NoError(t, fixture.service.Logout(context.Background(), "u1"))
}
