package store

import (
	"context"
	"log"
	"sync"

	"golang-shop-client/internal/api"
	"golang-shop-client/internal/models"
	"golang-shop-client/internal/storage"
)

// Session holds the authenticated user's identity and role flags, backed
// by a bearer token persisted in local storage. It is the only component
// allowed to write the token and user keys.
type Session struct {
	mu    sync.Mutex
	store storage.Store
	auth  *api.AuthClient

	// OnExpired is invoked after an authentication-rejected remote
	// response has torn the session down, so the caller can force
	// navigation to the login view. Optional.
	OnExpired func()

	token   string
	user    *models.UserSummary
	loading bool
	lastErr string
}

// NewSession hydrates token and user summary from storage. Absent or
// unreadable entries leave the session unauthenticated.
func NewSession(store storage.Store, auth *api.AuthClient) *Session {
	s := &Session{store: store, auth: auth}

	var token string
	if err := store.Get(storage.KeyToken, &token); err == nil {
		s.token = token
	}
	var user models.UserSummary
	if err := store.Get(storage.KeyUser, &user); err == nil && s.token != "" {
		s.user = &user
	}
	return s
}

// Token returns the current bearer token, or "" when unauthenticated.
// Wire this as the api.Client's TokenSource.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.user.HasRole(models.RoleAdmin)
}

func (s *Session) User() *models.UserSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Session) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// ClearError drops the last error message without other side effects.
func (s *Session) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}

// Login authenticates against the backend. On success the token and user
// summary are persisted and the session becomes authenticated; on failure
// the error message is recorded and the session stays unauthenticated
// with nothing persisted.
func (s *Session) Login(ctx context.Context, req *models.LoginRequest) error {
	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.auth.Login(ctx, req)
	if err != nil {
		s.mu.Lock()
		s.lastErr = err.Error()
		s.mu.Unlock()
		return err
	}

	summary := resp.Summary()

	s.mu.Lock()
	s.token = resp.Token
	s.user = &summary
	s.lastErr = ""
	s.mu.Unlock()

	if err := s.store.Set(storage.KeyToken, resp.Token); err != nil {
		log.Printf("Failed to persist token: %v", err)
	}
	if err := s.store.Set(storage.KeyUser, summary); err != nil {
		log.Printf("Failed to persist user summary: %v", err)
	}
	return nil
}

// Register creates an account. It never authenticates the caller; the
// caller navigates to the login view on success.
func (s *Session) Register(ctx context.Context, req *models.RegisterRequest) error {
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.auth.Register(ctx, req); err != nil {
		s.mu.Lock()
		s.lastErr = err.Error()
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
	return nil
}

// Logout clears the persisted token and user summary and the in-memory
// state.
func (s *Session) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.lastErr = ""
	s.mu.Unlock()

	if err := s.store.Delete(storage.KeyToken); err != nil {
		log.Printf("Failed to clear token: %v", err)
	}
	if err := s.store.Delete(storage.KeyUser); err != nil {
		log.Printf("Failed to clear user summary: %v", err)
	}
}

// HandleUnauthorized is the global 401 contract: any remote call that is
// rejected for authentication tears the session down, regardless of which
// resource made the call. Wire this as the api.Client's OnUnauthorized
// callback.
func (s *Session) HandleUnauthorized() {
	s.Logout()
	if s.OnExpired != nil {
		s.OnExpired()
	}
}

func (s *Session) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
