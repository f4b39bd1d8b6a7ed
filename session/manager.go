package session

import (
	"context"
	"errors"
	"sync"

	"gymdesk/gymapi"
	"gymdesk/models"

	"go.uber.org/zap"
)

// Manager owns the process-wide staff session. A token is never persisted
// without also being attached to the API client, and never attached without
// being persisted; the only exception is the transient window inside
// CheckAuth before the token has been confirmed or rejected.
type Manager struct {
	api    *gymapi.Client
	tokens TokenStore
	logger *zap.Logger

	mu      sync.Mutex
	token   string
	profile *models.Profile
	ready   bool
}

// NewManager constructs a session manager. The manager starts logged out and
// not ready; CheckAuth establishes the definite initial state.
func NewManager(api *gymapi.Client, tokens TokenStore, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		api:    api,
		tokens: tokens,
		logger: logger,
	}
}

// CheckAuth restores a persisted session if one exists. A stored token is
// attached and traded for a fresh identity; on any failure the token is
// discarded, detached and the session ends logged out. Ready reports true
// afterwards regardless of outcome.
func (m *Manager) CheckAuth(ctx context.Context) error {
	defer m.finishLoading()

	token, err := m.tokens.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoToken) {
			m.logger.Warn("Failed to read persisted session token", zap.Error(err))
		}
		return nil
	}

	// Transient attach: confirmed or rolled back below.
	m.api.SetDecorator(gymapi.BearerDecorator(token))

	raw, err := m.api.Me(ctx)
	if err != nil {
		m.logger.Warn("Persisted session token rejected", zap.Error(err))
		m.discard(ctx)
		return err
	}

	profile := models.NormalizeProfile(raw)
	m.mu.Lock()
	m.token = token
	m.profile = &profile
	m.mu.Unlock()

	m.logger.Info("Session restored", zap.Int("user_id", profile.ID))
	return nil
}

// Login exchanges credentials for a session. On failure nothing about the
// session changes and the error carries the server's message for the caller
// to render.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.Profile, error) {
	res, err := m.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := m.tokens.Save(ctx, res.Token); err != nil {
		// Do not attach a token that could not be persisted.
		return nil, err
	}
	m.api.SetDecorator(gymapi.BearerDecorator(res.Token))

	profile := models.NormalizeProfile(res.User)
	m.mu.Lock()
	m.token = res.Token
	m.profile = &profile
	m.mu.Unlock()

	m.logger.Info("Login succeeded", zap.Int("user_id", profile.ID))
	return &profile, nil
}

// Logout discards the persisted token, detaches it from the API client and
// clears the profile. It succeeds without any network call.
func (m *Manager) Logout(ctx context.Context) {
	m.discard(ctx)
	m.logger.Info("Logged out")
}

// Invalidate is the failure path for an authentication rejection discovered
// mid-session (expired or revoked token). State-wise it is a logout.
func (m *Manager) Invalidate(ctx context.Context) {
	m.discard(ctx)
	m.logger.Warn("Session invalidated by the gym service")
}

// Token returns the current bearer token, or "" when logged out.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Authenticated reports whether a token is present. It never touches the
// network; token presence is all the route guard checks.
func (m *Manager) Authenticated() bool {
	return m.Token() != ""
}

// Profile returns the normalized identity when one has been confirmed.
func (m *Manager) Profile() (*models.Profile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile == nil {
		return nil, false
	}
	p := *m.profile
	return &p, true
}

// Ready reports whether the startup auth check has finished.
func (m *Manager) Ready() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ready
}

// Dispose tears down in-memory session state without touching the persisted
// token, so the next process start can restore the login.
func (m *Manager) Dispose() {
	m.mu.Lock()
	m.token = ""
	m.profile = nil
	m.ready = false
	m.mu.Unlock()
	m.api.ClearDecorator()
}

func (m *Manager) discard(ctx context.Context) {
	if err := m.tokens.Delete(ctx); err != nil {
		m.logger.Warn("Failed to delete persisted session token", zap.Error(err))
	}
	m.api.ClearDecorator()
	m.mu.Lock()
	m.token = ""
	m.profile = nil
	m.mu.Unlock()
}

func (m *Manager) finishLoading() {
	m.mu.Lock()
	m.ready = true
	m.mu.Unlock()
}
