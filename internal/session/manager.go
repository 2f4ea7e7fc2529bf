// Package session tracks the single currently-authenticated user and lets
// interested components re-render on sign-in/out via subscribe/notify.
//
// The persisted representation is an HS256-signed token carrying the user ID;
// an invalid or expired token restores to the signed-out state.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/drishya/internal/kvstore"
	"github.com/dmitrijs2005/drishya/internal/models"
)

// AuthState is the snapshot delivered to subscribers on every change.
type AuthState struct {
	Authenticated bool
	User          *models.User
}

// Manager owns the current-user pointer. It assumes a single interactive
// writer, matching the one-user one-session model of the application.
type Manager struct {
	store    kvstore.Store
	secret   []byte
	validity time.Duration

	current   *models.User
	listeners map[int]func(AuthState)
	nextID    int
}

func NewManager(store kvstore.Store, secret string, validity time.Duration) *Manager {
	return &Manager{
		store:     store,
		secret:    []byte(secret),
		validity:  validity,
		listeners: make(map[int]func(AuthState)),
	}
}

// Current returns the authenticated user, or nil.
func (m *Manager) Current() *models.User {
	return m.current
}

func (m *Manager) IsAuthenticated() bool {
	return m.current != nil
}

// Subscribe registers fn to be called synchronously on every auth change.
// The returned function removes the subscription.
func (m *Manager) Subscribe(fn func(AuthState)) func() {
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	return func() { delete(m.listeners, id) }
}

// SetUser makes u the current user, persists the signed session token and
// notifies subscribers.
func (m *Manager) SetUser(ctx context.Context, u *models.User) error {
	token, err := generateToken(u.ID, m.secret, m.validity)
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}
	if err := m.store.Set(ctx, kvstore.KeySession, []byte(token)); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	m.current = u
	m.notify()
	return nil
}

// ClearUser signs the user out: clears the pointer, removes the persisted
// token and notifies subscribers.
func (m *Manager) ClearUser(ctx context.Context) error {
	if err := m.store.Delete(ctx, kvstore.KeySession); err != nil {
		return fmt.Errorf("clear persisted session: %w", err)
	}

	m.current = nil
	m.notify()
	return nil
}

// RestoreUserID reads the persisted session token and returns the user ID it
// carries. Returns "" (no error) when there is no token or it fails
// verification; a broken session is indistinguishable from signed-out.
func (m *Manager) RestoreUserID(ctx context.Context) (string, error) {
	raw, err := m.store.Get(ctx, kvstore.KeySession)
	if err != nil {
		return "", fmt.Errorf("read persisted session: %w", err)
	}
	if raw == nil {
		return "", nil
	}

	userID, err := userIDFromToken(string(raw), m.secret)
	if err != nil {
		return "", nil
	}
	return userID, nil
}

// SetRestored installs a user resolved from a restored session without
// re-persisting the token.
func (m *Manager) SetRestored(u *models.User) {
	m.current = u
	m.notify()
}

func (m *Manager) notify() {
	state := AuthState{Authenticated: m.IsAuthenticated(), User: m.current}
	for _, fn := range m.listeners {
		fn(state)
	}
}
