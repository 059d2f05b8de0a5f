package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	errs "github.com/amirhossein-jamali/library-lending/internal/domain/error"
	"github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAllowListAuthenticator(t *testing.T) {
	log := logger.NewRecordingLogger()
	authenticator := NewAllowListAuthenticator(map[string]string{
		"librarian": hash(t, "shelf-42"),
		" admin ":   hash(t, "root-pass"),
		"broken":    "not-a-bcrypt-hash",
		"empty":     "",
	}, log)

	assert.Equal(t, 2, authenticator.Users())
	_, found := log.Find("Ignoring allow-list entry with malformed hash")
	assert.True(t, found)

	tests := []struct {
		name     string
		username string
		secret   string
		wantErr  bool
	}{
		{"Valid credentials", "librarian", "shelf-42", false},
		{"Username is trimmed", " admin", "root-pass", false},
		{"Wrong password", "librarian", "shelf-43", true},
		{"Unknown user", "visitor", "shelf-42", true},
		{"Malformed entry is rejected", "broken", "not-a-bcrypt-hash", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal, err := authenticator.Authenticate(context.Background(), tt.username, tt.secret)
			if tt.wantErr {
				assert.Nil(t, principal)
				assert.Equal(t, errs.ErrUnauthorized, err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, principal.Username)
		})
	}

	t.Run("Canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := authenticator.Authenticate(ctx, "librarian", "shelf-42")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSessionManager(t *testing.T) {
	t.Run("Short secret", func(t *testing.T) {
		_, err := NewSessionManager("short", 3600, false)
		assert.Error(t, err)
	})

	manager, err := NewSessionManager(testSecret, 3600, false)
	require.NoError(t, err)

	t.Run("No cookie", func(t *testing.T) {
		_, ok := manager.Current(httptest.NewRequest(http.MethodGet, "/books", nil))
		assert.False(t, ok)
	})

	t.Run("Login then logout", func(t *testing.T) {
		rec := httptest.NewRecorder()
		require.NoError(t, manager.Login(rec, httptest.NewRequest(http.MethodPost, "/login", nil), &core.Principal{Username: "librarian"}))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, SessionName, cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)

		req := httptest.NewRequest(http.MethodGet, "/books", nil)
		req.AddCookie(cookies[0])
		principal, ok := manager.Current(req)
		require.True(t, ok)
		assert.Equal(t, "librarian", principal.Username)

		rec = httptest.NewRecorder()
		require.NoError(t, manager.Logout(rec, req))
		expired := rec.Result().Cookies()
		require.Len(t, expired, 1)
		assert.True(t, expired[0].MaxAge < 0)
	})

	t.Run("Cookie signed with another secret", func(t *testing.T) {
		other, err := NewSessionManager("fedcba9876543210fedcba9876543210", 3600, false)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		require.NoError(t, other.Login(rec, httptest.NewRequest(http.MethodPost, "/login", nil), &core.Principal{Username: "intruder"}))

		req := httptest.NewRequest(http.MethodGet, "/books", nil)
		req.AddCookie(rec.Result().Cookies()[0])
		_, ok := manager.Current(req)
		assert.False(t, ok)
	})
}
