package workspace

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AdminPanel/internal/domain"
	"github.com/m04kA/SMC-AdminPanel/internal/service/session"
	"github.com/m04kA/SMC-AdminPanel/internal/usecase/crud"
)

// Workspace состояние админ-панели одного аутентифицированного администратора:
// по одному контроллеру на семейство записей
type Workspace struct {
	ID        uuid.UUID
	Session   *session.Session
	CreatedAt time.Time

	username string

	controllers map[domain.FamilyName]*crud.Controller
	order       []domain.FamilyName

	mu       sync.Mutex
	lastSeen time.Time
}

func newWorkspace(
	id uuid.UUID,
	sess *session.Session,
	principal session.Principal,
	catalog *domain.Catalog,
	backend Backend,
	audit AuditRecorder,
	logger Logger,
	now time.Time,
) (*Workspace, error) {
	ws := &Workspace{
		ID:          id,
		Session:     sess,
		username:    principal.Username,
		CreatedAt:   now,
		controllers: map[domain.FamilyName]*crud.Controller{},
		lastSeen:    now,
	}

	for _, family := range catalog.All() {
		ctrl, err := crud.NewController(family, principal.Username, backend, audit, logger)
		if err != nil {
			return nil, fmt.Errorf("%w: newWorkspace - family=%s: %v", ErrInternal, family.Name, err)
		}
		if len(family.References) > 0 {
			ctrl.WithResolver(ws)
		}
		ws.controllers[family.Name] = ctrl
		ws.order = append(ws.order, family.Name)
	}

	return ws, nil
}

// Controller контроллер семейства name
func (w *Workspace) Controller(name domain.FamilyName) (*crud.Controller, error) {
	ctrl, ok := w.controllers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFamily, name)
	}
	return ctrl, nil
}

// Resolve ищет запись семейства family по id, при необходимости загружая коллекцию
func (w *Workspace) Resolve(ctx context.Context, family domain.FamilyName, id string) (domain.Record, error) {
	ctrl, err := w.Controller(family)
	if err != nil {
		return domain.Record{}, err
	}
	if _, err := ctrl.EnsureLoaded(ctx); err != nil {
		return domain.Record{}, err
	}

	rec, ok := ctrl.Get(id)
	if !ok {
		return domain.Record{}, fmt.Errorf("%w: %s id=%s", crud.ErrReferenceNotFound, family, id)
	}
	return rec, nil
}

// Families семейства рабочего пространства в порядке меню
func (w *Workspace) Families() []domain.Family {
	out := make([]domain.Family, 0, len(w.order))
	for _, name := range w.order {
		out = append(out, w.controllers[name].Family())
	}
	return out
}

// Username имя администратора, открывшего пространство
// Остается доступным и после Logout для журналов
func (w *Workspace) Username() string {
	return w.username
}

// Authenticated проверяет, что сессия пространства еще не завершена
func (w *Workspace) Authenticated() bool {
	return w.Session.State() == session.StateAuthenticated
}

func (w *Workspace) touch(now time.Time) {
	w.mu.Lock()
	w.lastSeen = now
	w.mu.Unlock()
}

func (w *Workspace) idleSince(now time.Time) time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return now.Sub(w.lastSeen)
}
