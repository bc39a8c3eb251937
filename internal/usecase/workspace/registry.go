package workspace

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AdminPanel/internal/domain"
	"github.com/m04kA/SMC-AdminPanel/internal/service/session"
)

// Registry рабочие пространства аутентифицированных администраторов по ID
type Registry struct {
	mu         sync.RWMutex
	workspaces map[uuid.UUID]*Workspace

	catalog *domain.Catalog
	backend Backend
	audit   AuditRecorder
	logger  Logger

	idleTTL time.Duration
	now     func() time.Time
}

// NewRegistry создает реестр
// idleTTL <= 0 отключает вытеснение неактивных пространств
func NewRegistry(catalog *domain.Catalog, backend Backend, audit AuditRecorder, idleTTL time.Duration, logger Logger) *Registry {
	return &Registry{
		workspaces: map[uuid.UUID]*Workspace{},
		catalog:    catalog,
		backend:    backend,
		audit:      audit,
		logger:     logger,
		idleTTL:    idleTTL,
		now:        time.Now,
	}
}

// Open создает рабочее пространство для аутентифицированной сессии
// Сессия хранится в пространстве: ее Logout делает пространство недействительным
func (r *Registry) Open(sess *session.Session) (*Workspace, error) {
	principal, err := sess.Principal()
	if err != nil {
		return nil, fmt.Errorf("%w: Open - %v", ErrNotAuthenticated, err)
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("%w: Open - generate id: %v", ErrInternal, err)
	}

	ws, err := newWorkspace(id, sess, principal, r.catalog, r.backend, r.audit, r.logger, r.now())
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.workspaces[id] = ws
	r.mu.Unlock()

	r.logger.Info("Open: workspace id=%s opened for username=%s", id, principal.Username)
	return ws, nil
}

// Get возвращает рабочее пространство и отмечает его активность
func (r *Registry) Get(id uuid.UUID) (*Workspace, error) {
	r.mu.RLock()
	ws, ok := r.workspaces[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrWorkspaceNotFound, id)
	}

	if !ws.Authenticated() {
		r.Close(id)
		return nil, fmt.Errorf("%w: id=%s logged out", ErrWorkspaceNotFound, id)
	}

	now := r.now()
	if r.idleTTL > 0 && ws.idleSince(now) > r.idleTTL {
		r.Close(id)
		return nil, fmt.Errorf("%w: id=%s expired", ErrWorkspaceNotFound, id)
	}

	ws.touch(now)
	return ws, nil
}

// Close удаляет рабочее пространство
func (r *Registry) Close(id uuid.UUID) {
	r.mu.Lock()
	_, ok := r.workspaces[id]
	delete(r.workspaces, id)
	r.mu.Unlock()

	if ok {
		r.logger.Info("Close: workspace id=%s closed", id)
	}
}

// Len количество открытых рабочих пространств
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.workspaces)
}

// Sweep удаляет пространства, неактивные дольше idleTTL, и возвращает их количество
func (r *Registry) Sweep() int {
	if r.idleTTL <= 0 {
		return 0
	}

	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, ws := range r.workspaces {
		if ws.idleSince(now) > r.idleTTL {
			delete(r.workspaces, id)
			removed++
		}
	}
	if removed > 0 {
		r.logger.Info("Sweep: removed %d idle workspaces", removed)
	}
	return removed
}

// Run периодически вызывает Sweep до отмены ctx
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if r.idleTTL <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}
