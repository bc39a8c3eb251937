package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Session сессия администратора: Anonymous -> Authenticated через Login
type Session struct {
	mu        sync.RWMutex
	auth      Authenticator
	logger    Logger
	state     State
	principal Principal
}

// New создает анонимную сессию
func New(auth Authenticator, logger Logger) *Session {
	return &Session{
		auth:   auth,
		logger: logger,
		state:  StateAnonymous,
	}
}

// Login проверяет учетные данные и переводит сессию в Authenticated
// При ошибке сессия остается в прежнем состоянии
func (s *Session) Login(ctx context.Context, creds Credentials) (Principal, error) {
	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" || creds.Password == "" {
		return Principal{}, fmt.Errorf("%w: Login - empty username or password", ErrInvalidCredentials)
	}

	principal, err := s.auth.Authenticate(ctx, creds)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			s.logger.Warn("Login: rejected credentials for username=%s", creds.Username)
			return Principal{}, err
		}
		s.logger.Error("Login: authenticator failed for username=%s: %v", creds.Username, err)
		if errors.Is(err, ErrAuthUnavailable) {
			return Principal{}, err
		}
		return Principal{}, fmt.Errorf("%w: Login - %v", ErrAuthUnavailable, err)
	}
	if principal.Username == "" {
		principal.Username = creds.Username
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.principal = principal
	s.mu.Unlock()

	s.logger.Info("Login: authenticated username=%s", principal.Username)
	return principal, nil
}

// Logout возвращает сессию в Anonymous
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateAnonymous
	s.principal = Principal{}
}

// State текущее состояние
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// Principal возвращает администратора аутентифицированной сессии
func (s *Session) Principal() (Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != StateAuthenticated {
		return Principal{}, ErrNotAuthenticated
	}
	return s.principal, nil
}
