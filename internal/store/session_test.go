package store

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-shop-client/internal/api"
	"golang-shop-client/internal/devserver"
	"golang-shop-client/internal/models"
	"golang-shop-client/internal/storage"
)

func newSessionFixture(t *testing.T) (*Session, *memStore, *api.Client) {
	t.Helper()
	server := httptest.NewServer(devserver.New("test-secret", 1).Handler())
	t.Cleanup(server.Close)

	mem := newMemStore()
	client := api.NewClient(server.URL+"/api", 0)
	session := NewSession(mem, api.NewAuthClient(client))
	client.TokenSource = session.Token
	client.OnUnauthorized = session.HandleUnauthorized
	return session, mem, client
}

func TestSessionLoginSuccess(t *testing.T) {
	session, mem, _ := newSessionFixture(t)

	err := session.Login(context.Background(), &models.LoginRequest{
		Email:    "admin@shop.local",
		Password: "admin123",
	})
	require.NoError(t, err)

	assert.True(t, session.IsAuthenticated())
	assert.True(t, session.IsAdmin())
	assert.Empty(t, session.Error())
	require.NotNil(t, session.User())
	assert.Equal(t, "admin@shop.local", session.User().Email)

	var token string
	require.NoError(t, mem.Get(storage.KeyToken, &token))
	assert.NotEmpty(t, token)
	var user models.UserSummary
	require.NoError(t, mem.Get(storage.KeyUser, &user))
	assert.Contains(t, user.Roles, models.RoleAdmin)
}

func TestSessionLoginFailureLeavesUnauthenticated(t *testing.T) {
	session, mem, _ := newSessionFixture(t)

	err := session.Login(context.Background(), &models.LoginRequest{
		Email:    "admin@shop.local",
		Password: "wrong",
	})
	require.Error(t, err)

	assert.False(t, session.IsAuthenticated())
	assert.False(t, session.IsAdmin())
	assert.Equal(t, "Invalid email or password", session.Error())

	var token string
	assert.ErrorIs(t, mem.Get(storage.KeyToken, &token), storage.ErrNotFound)
}

func TestSessionNonAdminRole(t *testing.T) {
	session, _, _ := newSessionFixture(t)

	require.NoError(t, session.Login(context.Background(), &models.LoginRequest{
		Email:    "user@shop.local",
		Password: "user123",
	}))
	assert.True(t, session.IsAuthenticated())
	assert.False(t, session.IsAdmin())
}

func TestSessionRegisterDoesNotAuthenticate(t *testing.T) {
	session, mem, _ := newSessionFixture(t)

	err := session.Register(context.Background(), &models.RegisterRequest{
		Email:     "new@shop.local",
		Password:  "secret1",
		FirstName: "New",
		LastName:  "Person",
	})
	require.NoError(t, err)

	assert.False(t, session.IsAuthenticated())
	var token string
	assert.ErrorIs(t, mem.Get(storage.KeyToken, &token), storage.ErrNotFound)

	// The account works on a subsequent explicit login.
	require.NoError(t, session.Login(context.Background(), &models.LoginRequest{
		Email:    "new@shop.local",
		Password: "secret1",
	}))
	assert.True(t, session.IsAuthenticated())
}

func TestSessionRegisterDuplicateEmail(t *testing.T) {
	session, _, _ := newSessionFixture(t)

	err := session.Register(context.Background(), &models.RegisterRequest{
		Email:     "user@shop.local",
		Password:  "secret1",
		FirstName: "Dup",
		LastName:  "Licate",
	})
	require.Error(t, err)
	assert.Equal(t, "Email is already registered", session.Error())
}

func TestSessionLogoutClearsStateAndStorage(t *testing.T) {
	session, mem, _ := newSessionFixture(t)

	require.NoError(t, session.Login(context.Background(), &models.LoginRequest{
		Email:    "user@shop.local",
		Password: "user123",
	}))
	session.Logout()

	assert.False(t, session.IsAuthenticated())
	assert.Nil(t, session.User())
	var token string
	assert.ErrorIs(t, mem.Get(storage.KeyToken, &token), storage.ErrNotFound)
	var user models.UserSummary
	assert.ErrorIs(t, mem.Get(storage.KeyUser, &user), storage.ErrNotFound)
}

func TestSessionHydratesFromStorage(t *testing.T) {
	server := httptest.NewServer(devserver.New("test-secret", 1).Handler())
	t.Cleanup(server.Close)

	mem := newMemStore()
	require.NoError(t, mem.Set(storage.KeyToken, "stored-token"))
	require.NoError(t, mem.Set(storage.KeyUser, models.UserSummary{
		ID: 7, Email: "stored@shop.local", Roles: []string{models.RoleUser},
	}))

	client := api.NewClient(server.URL+"/api", 0)
	session := NewSession(mem, api.NewAuthClient(client))

	assert.True(t, session.IsAuthenticated())
	assert.Equal(t, "stored-token", session.Token())
	require.NotNil(t, session.User())
	assert.Equal(t, "stored@shop.local", session.User().Email)
}

func TestSessionExpiredTokenTearsDownOnAnyRemoteCall(t *testing.T) {
	session, mem, client := newSessionFixture(t)

	// A stale token from a previous run: hydrated state says
	// authenticated, but the backend rejects it.
	require.NoError(t, mem.Set(storage.KeyToken, "stale-token"))
	expired := false
	session.OnExpired = func() { expired = true }
	session.token = "stale-token"

	users := api.NewUserClient(client)
	_, err := users.Me(context.Background())
	require.Error(t, err)
	assert.True(t, api.IsStatus(err, 401))

	assert.True(t, expired)
	assert.False(t, session.IsAuthenticated())
	var token string
	assert.ErrorIs(t, mem.Get(storage.KeyToken, &token), storage.ErrNotFound)
}

func TestSessionClearError(t *testing.T) {
	session, _, _ := newSessionFixture(t)

	_ = session.Login(context.Background(), &models.LoginRequest{
		Email:    "admin@shop.local",
		Password: "wrong",
	})
	require.NotEmpty(t, session.Error())

	session.ClearError()
	assert.Empty(t, session.Error())
	assert.False(t, session.IsAuthenticated())
}
