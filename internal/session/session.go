// Package session tracks who is logged in for the lifetime of the process.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/dogfinder/internal/models"
)

var (
	ErrAuthFailed    = errors.New("login failed")
	ErrNameRequired  = errors.New("name is required")
	ErrEmailRequired = errors.New("email is required")
	ErrEmailInvalid  = errors.New("email is not valid")
)

type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Authenticator is the part of the API client the session needs.
type Authenticator interface {
	Login(ctx context.Context, name, email string) error
	Logout(ctx context.Context) error
}

type credentials struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

// Session holds the current user. There is one per process; it is created on
// start and emptied on logout. Nothing is written to disk.
type Session struct {
	api      Authenticator
	logger   *zap.Logger
	validate *validator.Validate

	mu   sync.RWMutex
	user *models.User
}

func New(api Authenticator, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		api:      api,
		logger:   logger,
		validate: validator.New(),
	}
}

// Login validates the credentials, calls the service and records the user on
// success. A rejected login leaves the session anonymous and is not retried.
func (s *Session) Login(ctx context.Context, name, email string) error {
	creds := credentials{Name: strings.TrimSpace(name), Email: strings.TrimSpace(email)}
	if err := s.check(creds); err != nil {
		return err
	}

	if err := s.api.Login(ctx, creds.Name, creds.Email); err != nil {
		s.logger.Warn("login rejected", zap.String("email", creds.Email), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}

	s.mu.Lock()
	s.user = &models.User{Name: creds.Name, Email: creds.Email}
	s.mu.Unlock()

	s.logger.Info("logged in", zap.String("email", creds.Email))
	return nil
}

// Logout ends the session on the service and always clears the local user,
// even when the service call fails, so a network problem never leaves a stale
// logged-in screen behind. The service error is still returned for display.
func (s *Session) Logout(ctx context.Context) error {
	err := s.api.Logout(ctx)

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("logout failed on the service, local session cleared", zap.Error(err))
		return err
	}
	s.logger.Info("logged out")
	return nil
}

func (s *Session) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *Session) State() State {
	if s.Authenticated() {
		return Authenticated
	}
	return Anonymous
}

func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Session) check(c credentials) error {
	err := s.validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	// first failing field wins, in declaration order
	for _, fe := range verrs {
		switch {
		case fe.Field() == "Name":
			return ErrNameRequired
		case fe.Field() == "Email" && fe.Tag() == "required":
			return ErrEmailRequired
		case fe.Field() == "Email":
			return ErrEmailInvalid
		}
	}
	return err
}
