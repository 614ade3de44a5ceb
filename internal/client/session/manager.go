// Package session owns the client's authentication state: the bearer token,
// the role flags derived from it and the views those roles unlock.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
	"github.com/dmitrijs2005/creatorpilot/internal/common"
	"github.com/dmitrijs2005/creatorpilot/internal/logging"
)

// TokenStore persists the session token across restarts.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

// Authenticator is the part of the API client the session needs.
type Authenticator interface {
	Login(ctx context.Context, email string, password []byte) (string, error)
	Register(ctx context.Context, email string, password []byte) (string, error)
}

// Manager is the single source of truth for who is logged in. It is safe
// for concurrent use; listeners run synchronously after the state changes.
type Manager struct {
	mu        sync.RWMutex
	current   models.Session
	listeners []func(models.Session)

	auth  Authenticator
	store TokenStore
	log   logging.Logger
}

func NewManager(auth Authenticator, store TokenStore, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Nop{}
	}
	return &Manager{auth: auth, store: store, log: log.With("component", "session")}
}

// Restore loads a previously stored token. No request is made: a present
// token counts as logged in until the server says otherwise.
func (m *Manager) Restore(ctx context.Context) error {
	token, err := m.store.Token(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	m.assign(ctx, token)
	return nil
}

// Authenticate logs in or registers. The token is persisted before it
// becomes current. On any failure the session is unchanged.
func (m *Manager) Authenticate(ctx context.Context, email string, password []byte, mode models.AuthMode) error {
	email = strings.TrimSpace(email)
	if email == "" || len(password) == 0 {
		return common.ErrEmptyCredentials
	}

	var (
		token string
		err   error
	)
	switch mode {
	case models.ModeRegister:
		token, err = m.auth.Register(ctx, email, password)
	default:
		token, err = m.auth.Login(ctx, email, password)
	}
	if err != nil {
		m.log.Warn(ctx, "authentication failed", "mode", string(mode), "error", err)
		return err
	}

	if err := m.store.SetToken(ctx, token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	m.assign(ctx, token)
	m.log.Info(ctx, "authenticated", "mode", string(mode))
	return nil
}

// Logout forgets the token locally and in storage.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.store.ClearToken(ctx)
	m.assign(ctx, "")
	if err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// OnChange registers fn to be called with every new session state.
func (m *Manager) OnChange(fn func(models.Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

func (m *Manager) Current() models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Token returns the bearer credential, or "" when logged out.
func (m *Manager) Token() string {
	return m.Current().Token
}

func (m *Manager) IsAuthenticated() bool {
	return m.Current().Authenticated()
}

func (m *Manager) IsPrivileged() bool {
	return m.Current().Privileged()
}

// Views lists the surfaces the current session may show.
func (m *Manager) Views() []models.View {
	s := m.Current()
	if !s.Authenticated() {
		return []models.View{models.ViewLogin}
	}
	v := []models.View{models.ViewDashboard, models.ViewTitles, models.ViewHistory, models.ViewProfile}
	if s.Privileged() {
		v = append(v, models.ViewAdmin)
	}
	return v
}

// CanView reports whether v is among Views.
func (m *Manager) CanView(v models.View) bool {
	for _, x := range m.Views() {
		if x == v {
			return true
		}
	}
	return false
}

// assign is the only place the session changes. Roles always come from the
// token being assigned.
func (m *Manager) assign(ctx context.Context, token string) {
	roles, err := DeriveRoles(token)
	if err != nil {
		m.log.Warn(ctx, "session token claims unreadable, continuing without privileges", "error", err)
		roles = models.Roles{}
	}

	next := models.Session{Token: token, Roles: roles}

	m.mu.Lock()
	m.current = next
	listeners := append([]func(models.Session){}, m.listeners...)
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
}
