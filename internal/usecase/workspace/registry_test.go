package workspace

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdminPanel/internal/domain"
	"github.com/m04kA/SMC-AdminPanel/internal/service/formsession"
	"github.com/m04kA/SMC-AdminPanel/internal/service/session"
	"github.com/m04kA/SMC-AdminPanel/internal/usecase/crud"
	"github.com/m04kA/SMC-AdminPanel/pkg/logger"
)

type nopBackend struct{}

func (nopBackend) List(context.Context, domain.Family) ([]domain.Record, error) { return nil, nil }
func (nopBackend) Create(context.Context, domain.Family, domain.Fields) (domain.Record, error) {
	return domain.Record{}, nil
}
func (nopBackend) Update(context.Context, domain.Family, string, domain.Fields) (domain.Record, error) {
	return domain.Record{}, nil
}
func (nopBackend) Delete(context.Context, domain.Family, string) error { return nil }

type principalAuth struct{}

func (principalAuth) Authenticate(_ context.Context, creds session.Credentials) (session.Principal, error) {
	return session.Principal{Username: creds.Username}, nil
}

func loggedIn(t *testing.T, username string) *session.Session {
	t.Helper()
	sess := session.New(principalAuth{}, logger.NewNop())
	_, err := sess.Login(context.Background(), session.Credentials{Username: username, Password: "x"})
	require.NoError(t, err)
	return sess
}

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func newRegistry(t *testing.T, ttl time.Duration) (*Registry, *clock) {
	t.Helper()
	catalog, err := domain.NewCatalog(nil)
	require.NoError(t, err)

	clk := &clock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	r := NewRegistry(catalog, nopBackend{}, nil, ttl, logger.NewNop())
	r.now = clk.Now
	return r, clk
}

func TestRegistry_OpenAndGet(t *testing.T) {
	r, _ := newRegistry(t, 0)

	ws, err := r.Open(loggedIn(t, "admin"))
	require.NoError(t, err)
	assert.Equal(t, "admin", ws.Username())
	assert.Equal(t, 1, r.Len())

	got, err := r.Get(ws.ID)
	require.NoError(t, err)
	assert.Same(t, ws, got)

	families := ws.Families()
	require.Len(t, families, len(domain.DefaultFamilies()))
	assert.Equal(t, domain.FamilyProfessional, families[0].Name)

	ctrl, err := ws.Controller(domain.FamilyService)
	require.NoError(t, err)
	assert.Equal(t, domain.FamilyService, ctrl.Family().Name)

	_, err = ws.Controller("unknown")
	assert.ErrorIs(t, err, ErrUnknownFamily)
}

func TestRegistry_WorkspacesAreIsolated(t *testing.T) {
	r, _ := newRegistry(t, 0)

	a, err := r.Open(loggedIn(t, "a"))
	require.NoError(t, err)
	b, err := r.Open(loggedIn(t, "b"))
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	ca, _ := a.Controller(domain.FamilyService)
	cb, _ := b.Controller(domain.FamilyService)
	assert.NotSame(t, ca, cb)
}

func TestRegistry_Close(t *testing.T) {
	r, _ := newRegistry(t, 0)

	ws, err := r.Open(loggedIn(t, "admin"))
	require.NoError(t, err)
	r.Close(ws.ID)

	_, err = r.Get(ws.ID)
	assert.ErrorIs(t, err, ErrWorkspaceNotFound)

	_, err = r.Get(uuid.New())
	assert.ErrorIs(t, err, ErrWorkspaceNotFound)
}

func TestRegistry_IdleExpiry(t *testing.T) {
	r, clk := newRegistry(t, time.Hour)

	idle, err := r.Open(loggedIn(t, "idle"))
	require.NoError(t, err)
	active, err := r.Open(loggedIn(t, "active"))
	require.NoError(t, err)

	clk.now = clk.now.Add(50 * time.Minute)
	_, err = r.Get(active.ID)
	require.NoError(t, err)

	clk.now = clk.now.Add(20 * time.Minute)
	assert.Equal(t, 1, r.Sweep())
	assert.Equal(t, 1, r.Len())

	_, err = r.Get(idle.ID)
	assert.ErrorIs(t, err, ErrWorkspaceNotFound)
	_, err = r.Get(active.ID)
	assert.NoError(t, err)
}

func TestRegistry_OpenRequiresAuthenticatedSession(t *testing.T) {
	r, _ := newRegistry(t, 0)

	_, err := r.Open(session.New(principalAuth{}, logger.NewNop()))
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_LogoutInvalidatesWorkspace(t *testing.T) {
	r, _ := newRegistry(t, 0)

	ws, err := r.Open(loggedIn(t, "admin"))
	require.NoError(t, err)
	assert.True(t, ws.Authenticated())

	ws.Session.Logout()
	assert.False(t, ws.Authenticated())
	assert.Equal(t, "admin", ws.Username())

	_, err = r.Get(ws.ID)
	assert.ErrorIs(t, err, ErrWorkspaceNotFound)
	assert.Equal(t, 0, r.Len())
}

func TestWorkspace_InquiryReferencesProfessionals(t *testing.T) {
	r, _ := newRegistry(t, 0)

	ws, err := r.Open(loggedIn(t, "admin"))
	require.NoError(t, err)

	_, err = ws.Resolve(context.Background(), domain.FamilyProfessional, "no-such-pro")
	assert.ErrorIs(t, err, crud.ErrReferenceNotFound)

	inquiries, err := ws.Controller(domain.FamilyInquiry)
	require.NoError(t, err)
	require.NoError(t, inquiries.Begin(formsession.Create(), domain.Fields{
		"professional": "no-such-pro",
		"manualBookingDetails": map[string]interface{}{
			"date": "2024-05-01", "startTime": "10:00", "endTime": "11:00",
		},
	}))

	_, err = inquiries.Submit(context.Background())
	assert.ErrorIs(t, err, crud.ErrReferenceNotFound)
}
