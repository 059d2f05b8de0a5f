package auth

import (
	"errors"
	"net/http"

	"github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"github.com/gorilla/sessions"
)

const (
	// SessionName is the cookie name of the operator session
	SessionName = "library_session"

	usernameKey = "username"
)

// SessionManager stores the logged-in operator in a signed cookie
type SessionManager struct {
	store *sessions.CookieStore
}

// NewSessionManager creates a cookie session store signed with secret
func NewSessionManager(secret string, maxAge int, secure bool) (*SessionManager, error) {
	if len(secret) < 32 {
		return nil, errors.New("session secret must be at least 32 bytes")
	}

	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &SessionManager{store: store}, nil
}

// Login writes the principal into the session cookie
func (m *SessionManager) Login(w http.ResponseWriter, r *http.Request, principal *core.Principal) error {
	// A stale or tampered cookie yields a fresh session, which is overwritten here
	session, _ := m.store.Get(r, SessionName)
	session.Values[usernameKey] = principal.Username
	return session.Save(r, w)
}

// Logout expires the session cookie
func (m *SessionManager) Logout(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, SessionName)
	delete(session.Values, usernameKey)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// Current returns the logged-in principal, if any
func (m *SessionManager) Current(r *http.Request) (*core.Principal, bool) {
	session, err := m.store.Get(r, SessionName)
	if err != nil {
		return nil, false
	}

	username, ok := session.Values[usernameKey].(string)
	if !ok || username == "" {
		return nil, false
	}
	return &core.Principal{Username: username}, true
}
