package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const workspaceIDKey = "workspace_id"

var (
	// ErrNoSession возвращается, когда в cookie нет рабочего пространства
	ErrNoSession = errors.New("middleware: no session")
)

// SessionOptions параметры cookie сессии
type SessionOptions struct {
	CookieName string
	Secret     []byte
	MaxAge     int // секунды
	Secure     bool
}

// SessionManager хранит ID рабочего пространства в подписанной cookie
type SessionManager struct {
	store *sessions.CookieStore
	name  string
}

// NewSessionManager создает менеджер сессий поверх gorilla/sessions
func NewSessionManager(opts SessionOptions) *SessionManager {
	store := sessions.NewCookieStore(opts.Secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   opts.MaxAge,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionManager{store: store, name: opts.CookieName}
}

// Start сохраняет ID рабочего пространства в cookie
func (m *SessionManager) Start(w http.ResponseWriter, r *http.Request, workspaceID uuid.UUID) error {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		// испорченная или чужая cookie: начинаем новую сессию
		sess, err = m.store.New(r, m.name)
		if sess == nil {
			return fmt.Errorf("middleware: new session: %v", err)
		}
	}
	sess.Values[workspaceIDKey] = workspaceID.String()
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("middleware: save session: %v", err)
	}
	return nil
}

// End удаляет cookie сессии
func (m *SessionManager) End(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, m.name)
	if sess == nil {
		return nil
	}
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("middleware: delete session: %v", err)
	}
	return nil
}

// WorkspaceID читает ID рабочего пространства из cookie
func (m *SessionManager) WorkspaceID(r *http.Request) (uuid.UUID, error) {
	sess, err := m.store.Get(r, m.name)
	if err != nil || sess.IsNew {
		return uuid.Nil, ErrNoSession
	}
	raw, ok := sess.Values[workspaceIDKey].(string)
	if !ok {
		return uuid.Nil, ErrNoSession
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid workspace id: %v", ErrNoSession, err)
	}
	return id, nil
}
