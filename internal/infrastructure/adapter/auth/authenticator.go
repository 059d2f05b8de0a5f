package auth

import (
	"context"
	"strings"

	errs "github.com/amirhossein-jamali/library-lending/internal/domain/error"
	"github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"golang.org/x/crypto/bcrypt"
)

// AllowListAuthenticator checks operator credentials against a static map of bcrypt hashes
type AllowListAuthenticator struct {
	users map[string][]byte
	// compared against for unknown usernames so both paths cost one bcrypt round
	decoy  []byte
	logger core.Logger
}

var _ core.Authenticator = (*AllowListAuthenticator)(nil)

// NewAllowListAuthenticator creates an authenticator from username -> bcrypt hash pairs
func NewAllowListAuthenticator(users map[string]string, logger core.Logger) *AllowListAuthenticator {
	hashes := make(map[string][]byte, len(users))
	var decoy []byte
	for username, hash := range users {
		username = strings.TrimSpace(username)
		if username == "" || hash == "" {
			continue
		}
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			logger.Warn("Ignoring allow-list entry with malformed hash", map[string]any{
				"username": username,
				"error":    err.Error(),
			})
			continue
		}
		hashes[username] = []byte(hash)
		decoy = hashes[username]
	}

	return &AllowListAuthenticator{
		users:  hashes,
		decoy:  decoy,
		logger: logger,
	}
}

// Authenticate returns the principal for valid credentials
func (a *AllowListAuthenticator) Authenticate(ctx context.Context, username, secret string) (*core.Principal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	username = strings.TrimSpace(username)
	hash, ok := a.users[username]
	if !ok {
		if a.decoy != nil {
			_ = bcrypt.CompareHashAndPassword(a.decoy, []byte(secret))
		}
		a.logger.Info("Login rejected", map[string]any{"username": username, "reason": "unknown user"})
		return nil, errs.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(secret)); err != nil {
		a.logger.Info("Login rejected", map[string]any{"username": username, "reason": "password mismatch"})
		return nil, errs.ErrUnauthorized
	}

	return &core.Principal{Username: username}, nil
}

// Users returns the number of accepted operators
func (a *AllowListAuthenticator) Users() int {
	return len(a.users)
}
