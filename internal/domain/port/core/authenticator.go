package core

import "context"

// Principal identifies an authenticated library operator
type Principal struct {
	Username string
}

// Authenticator verifies operator credentials
type Authenticator interface {
	// Authenticate returns the principal for valid credentials
	//
	// Possible errors:
	// - ErrUnauthorized: If the username is unknown or the secret does not match
	Authenticate(ctx context.Context, username, secret string) (*Principal, error)
}
