// Copyright (c) 2026 FB-API. All rights reserved.

package auth

import "time"

// # Authentication Constraints

const (
	// InvalidCredentialsMessage is the single client-facing message for every
	// failed login. Unknown accounts and wrong passwords must be
	// indistinguishable to prevent user enumeration.
	InvalidCredentialsMessage = "Invalid username or password"

	// LoginAttemptLimit is the number of failed attempts per login identifier
	// before the account is temporarily throttled.
	LoginAttemptLimit = 10

	// LoginAttemptWindow is the sliding window over which failed attempts
	// are counted in Redis.
	LoginAttemptWindow = 15 * time.Minute
)
