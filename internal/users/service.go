// Package users implements the account registry: sign-up, sign-in, sign-out
// and the read-only reporting operations behind the admin view.
//
// The registry is an in-memory list mirrored whole to the persistent store on
// every mutation. Passwords are length-checked only and never stored; this is
// a deliberate simplification, not an oversight.
package users

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/drishya/internal/common"
	"github.com/dmitrijs2005/drishya/internal/kvstore"
	"github.com/dmitrijs2005/drishya/internal/logging"
	"github.com/dmitrijs2005/drishya/internal/models"
	"github.com/dmitrijs2005/drishya/internal/session"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

const registrySchemaVersion = 1

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// registryBlob is the persisted representation of the whole registry.
type registryBlob struct {
	SchemaVersion int           `json:"schema_version"`
	Users         []models.User `json:"users"`
}

type Service struct {
	store   kvstore.Store
	session *session.Manager
	clock   clockwork.Clock
	logger  logging.Logger

	users []models.User
}

func NewService(store kvstore.Store, sess *session.Manager, clock clockwork.Clock, logger logging.Logger) *Service {
	return &Service{
		store:   store,
		session: sess,
		clock:   clock,
		logger:  logger.With("module", "users"),
	}
}

// Restore loads the persisted registry and, if a valid session token is
// present, reinstates the current user. Call once at application start.
func (s *Service) Restore(ctx context.Context) error {
	raw, err := s.store.Get(ctx, kvstore.KeyUsers)
	if err != nil {
		return fmt.Errorf("load registry: %w", err)
	}
	if raw != nil {
		var blob registryBlob
		if err := json.Unmarshal(raw, &blob); err != nil {
			return fmt.Errorf("decode registry: %w", err)
		}
		if blob.SchemaVersion != registrySchemaVersion {
			s.logger.Warn(ctx, "ignoring registry blob with unknown schema", "version", blob.SchemaVersion)
		} else {
			s.users = blob.Users
		}
	}

	userID, err := s.session.RestoreUserID(ctx)
	if err != nil {
		return err
	}
	if userID == "" {
		return nil
	}
	for i := range s.users {
		if s.users[i].ID == userID {
			s.session.SetRestored(&s.users[i])
			s.logger.Info(ctx, "session restored", "user_id", userID)
			return nil
		}
	}
	return nil
}

// SignUp creates a new verified account, persists the registry and signs the
// user in. Fails with common.ErrDuplicateEmail, common.ErrInvalidEmail or
// common.ErrWeakPassword.
func (s *Service) SignUp(ctx context.Context, email, name, password string) (*models.User, error) {
	if s.findByEmail(email) != nil {
		return nil, common.ErrDuplicateEmail
	}

	if !emailPattern.MatchString(email) {
		return nil, common.ErrInvalidEmail
	}

	if len(password) < minPasswordLength {
		return nil, common.ErrWeakPassword
	}

	now := s.clock.Now()
	user := models.User{
		ID:          uuid.NewString(),
		Email:       strings.ToLower(email),
		Name:        strings.TrimSpace(name),
		CreatedAt:   now,
		LastLoginAt: now,
		IsVerified:  true, // no real verification flow
	}

	s.users = append(s.users, user)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	stored := &s.users[len(s.users)-1]
	if err := s.session.SetUser(ctx, stored); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user signed up", "user_id", user.ID)
	return stored, nil
}

// SignIn authenticates an existing account. The password is required but its
// content is not verified. Fails with common.ErrUserNotFound or
// common.ErrMissingPassword.
func (s *Service) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	user := s.findByEmail(email)
	if user == nil {
		return nil, common.ErrUserNotFound
	}

	if password == "" {
		return nil, common.ErrMissingPassword
	}

	user.LastLoginAt = s.clock.Now()
	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	if err := s.session.SetUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user signed in", "user_id", user.ID)
	return user, nil
}

// SignOut clears the session and its persisted representation.
func (s *Service) SignOut(ctx context.Context) error {
	return s.session.ClearUser(ctx)
}

// ListAll returns a copy of the registry to prevent direct modification.
func (s *Service) ListAll() []models.User {
	return append([]models.User(nil), s.users...)
}

func (s *Service) Count() int {
	return len(s.users)
}

// RecentSignUps returns users created within the last `days` days.
func (s *Service) RecentSignUps(days int) []models.User {
	cutoff := s.clock.Now().AddDate(0, 0, -days)
	var result []models.User
	for _, u := range s.users {
		if !u.CreatedAt.Before(cutoff) {
			result = append(result, u)
		}
	}
	return result
}

// ExportEmails returns every registered email address.
func (s *Service) ExportEmails() []string {
	emails := make([]string, 0, len(s.users))
	for _, u := range s.users {
		emails = append(emails, u.Email)
	}
	return emails
}

func (s *Service) findByEmail(email string) *models.User {
	needle := strings.ToLower(email)
	for i := range s.users {
		if s.users[i].Email == needle {
			return &s.users[i]
		}
	}
	return nil
}

// persist rewrites the entire registry blob.
func (s *Service) persist(ctx context.Context) error {
	blob := registryBlob{SchemaVersion: registrySchemaVersion, Users: s.users}
	raw, err := json.Marshal(blob)
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}
	if err := s.store.Set(ctx, kvstore.KeyUsers, raw); err != nil {
		return fmt.Errorf("persist registry: %w", err)
	}
	return nil
}
