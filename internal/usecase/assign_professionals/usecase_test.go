package assign_professionals

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdminPanel/internal/domain"
	"github.com/m04kA/SMC-AdminPanel/internal/integrations/backend"
	"github.com/m04kA/SMC-AdminPanel/internal/service/formsession"
	"github.com/m04kA/SMC-AdminPanel/internal/usecase/crud"
	"github.com/m04kA/SMC-AdminPanel/pkg/logger"
)

type fakeBackend struct {
	collections map[domain.FamilyName][]domain.Record
	updates     []domain.Fields
	updateErr   error
}

func (b *fakeBackend) List(_ context.Context, family domain.Family) ([]domain.Record, error) {
	return domain.CloneRecords(b.collections[family.Name]), nil
}

func (b *fakeBackend) Create(context.Context, domain.Family, domain.Fields) (domain.Record, error) {
	return domain.Record{}, fmt.Errorf("unexpected create")
}

func (b *fakeBackend) Update(_ context.Context, _ domain.Family, id string, fields domain.Fields) (domain.Record, error) {
	if b.updateErr != nil {
		return domain.Record{}, b.updateErr
	}
	b.updates = append(b.updates, fields.Clone())
	return domain.Record{ID: id, Fields: fields.Clone()}, nil
}

func (b *fakeBackend) Delete(context.Context, domain.Family, string) error { return nil }

type workspaceStub map[domain.FamilyName]*crud.Controller

func (w workspaceStub) Controller(name domain.FamilyName) (*crud.Controller, error) {
	c, ok := w[name]
	if !ok {
		return nil, fmt.Errorf("unknown family %s", name)
	}
	return c, nil
}

func setup(t *testing.T) (*fakeBackend, workspaceStub) {
	t.Helper()
	b := &fakeBackend{collections: map[domain.FamilyName][]domain.Record{
		domain.FamilyService: {
			{ID: "s1", Fields: domain.Fields{"title": "Cut", "time": "30", "price": float64(30)}},
		},
		domain.FamilyProfessional: {
			{ID: "p1", Fields: domain.Fields{"name": "Anna"}},
			{ID: "p2", Fields: domain.Fields{"name": "Oleg"}},
		},
	}}

	catalog, err := domain.NewCatalog(nil)
	require.NoError(t, err)
	ws := workspaceStub{}
	for _, name := range []domain.FamilyName{domain.FamilyService, domain.FamilyProfessional} {
		f, err := catalog.Lookup(name)
		require.NoError(t, err)
		c, err := crud.NewController(f, "admin", b, nil, logger.NewNop())
		require.NoError(t, err)
		ws[name] = c
	}
	return b, ws
}

func TestUseCase_Assign(t *testing.T) {
	b, ws := setup(t)
	uc := NewUseCase(logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{
		Workspace:       ws,
		ServiceID:       "s1",
		ProfessionalIDs: []string{"p2", "p1", "p2"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"p2", "p1"}, resp.ProfessionalIDs)

	require.Len(t, b.updates, 1)
	assert.Equal(t, []interface{}{"p2", "p1"}, b.updates[0][domain.AssignedProfessionalsField])
	assert.Equal(t, "Cut", b.updates[0]["title"])

	stored, ok := ws[domain.FamilyService].Get("s1")
	require.True(t, ok)
	assert.Equal(t, []string{"p2", "p1"}, domain.AssignedProfessionalIDs(stored))
}

func TestUseCase_UnknownProfessional(t *testing.T) {
	b, ws := setup(t)
	uc := NewUseCase(logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Workspace: ws, ServiceID: "s1", ProfessionalIDs: []string{"p9"}})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
	assert.Empty(t, b.updates)
}

func TestUseCase_UnknownService(t *testing.T) {
	_, ws := setup(t)
	uc := NewUseCase(logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Workspace: ws, ServiceID: "s9"})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_InvalidInput(t *testing.T) {
	_, ws := setup(t)
	uc := NewUseCase(logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Workspace: ws, ServiceID: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = uc.Execute(context.Background(), &Request{Workspace: ws, ServiceID: "s1", ProfessionalIDs: []string{""}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_BackendFailureLeavesServiceUntouched(t *testing.T) {
	b, ws := setup(t)
	b.updateErr = &backend.ServerError{StatusCode: 500, Message: "db down"}
	uc := NewUseCase(logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Workspace: ws, ServiceID: "s1", ProfessionalIDs: []string{"p1"}})
	assert.ErrorIs(t, err, crud.ErrServer)

	stored, _ := ws[domain.FamilyService].Get("s1")
	assert.False(t, stored.Fields.Has(domain.AssignedProfessionalsField))
	assert.Nil(t, ws[domain.FamilyService].Snapshot().Draft)
}

func TestUseCase_OpenServiceDraftIsKept(t *testing.T) {
	b, ws := setup(t)
	uc := NewUseCase(logger.NewNop())

	services := ws[domain.FamilyService]
	_, err := services.EnsureLoaded(context.Background())
	require.NoError(t, err)
	require.NoError(t, services.Begin(formsession.Edit("s1"), nil))
	require.NoError(t, services.SetField("title", "Cut and wash"))

	_, err = uc.Execute(context.Background(), &Request{Workspace: ws, ServiceID: "s1", ProfessionalIDs: []string{"p1"}})
	assert.ErrorIs(t, err, crud.ErrDraftAlreadyOpen)
	assert.Empty(t, b.updates)

	draft := services.Snapshot().Draft
	require.NotNil(t, draft)
	assert.Equal(t, "Cut and wash", draft.Fields["title"])
}
