package formsession

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdminPanel/internal/domain"
)

func newServiceForm() *Session {
	return New(domain.DefaultIDField, domain.Fields{"title": "", "time": "", "price": ""})
}

func TestSession_BeginEditCopiesSeed(t *testing.T) {
	s := newServiceForm()
	seed := domain.Record{ID: "abc", Fields: domain.Fields{"title": "Cut", "price": float64(30)}}

	require.NoError(t, s.Begin(Edit("abc"), seed))

	draft, ok := s.Draft()
	require.True(t, ok)
	assert.Equal(t, domain.Fields{"title": "Cut", "price": float64(30)}, draft.Fields)

	require.NoError(t, s.SetField("price", float64(35)))
	assert.Equal(t, float64(30), seed.Fields["price"], "seed must not be mutated by the draft")

	intent, err := s.CommitTarget()
	require.NoError(t, err)
	assert.Equal(t, Intent{Kind: IntentUpdate, ID: "abc"}, intent)
}

func TestSession_BeginCreateUsesDefaultsAndSeed(t *testing.T) {
	s := newServiceForm()

	require.NoError(t, s.Begin(Create(), domain.Record{Fields: domain.Fields{"title": "Beard", "_id": "ignored"}}))

	draft, ok := s.Draft()
	require.True(t, ok)
	assert.Equal(t, domain.Fields{"title": "Beard", "time": "", "price": ""}, draft.Fields)

	intent, err := s.CommitTarget()
	require.NoError(t, err)
	assert.Equal(t, IntentCreate, intent.Kind)
	assert.Empty(t, intent.ID)
}

func TestSession_DefaultsAreNotShared(t *testing.T) {
	s := newServiceForm()

	require.NoError(t, s.Begin(Create(), domain.Record{}))
	require.NoError(t, s.SetField("title", "Cut"))
	s.Close()

	require.NoError(t, s.Begin(Create(), domain.Record{}))
	draft, _ := s.Draft()
	assert.Equal(t, "", draft.Fields["title"])
}

func TestSession_OneDraftAtATime(t *testing.T) {
	s := newServiceForm()
	require.NoError(t, s.Begin(Create(), domain.Record{}))

	err := s.Begin(Edit("abc"), domain.Record{ID: "abc"})
	assert.ErrorIs(t, err, ErrAlreadyOpen)

	require.NoError(t, s.Reopen(Edit("abc"), domain.Record{ID: "abc", Fields: domain.Fields{"title": "Cut"}}))
	draft, _ := s.Draft()
	assert.Equal(t, ModeEdit, draft.Mode.Kind)
	assert.Equal(t, "abc", draft.Mode.TargetID)
}

func TestSession_EditTargetMismatch(t *testing.T) {
	s := newServiceForm()

	err := s.Begin(Edit("abc"), domain.Record{ID: "other"})
	assert.ErrorIs(t, err, ErrTargetMismatch)
	assert.False(t, s.IsOpen())

	err = s.Begin(Edit(""), domain.Record{})
	assert.ErrorIs(t, err, ErrTargetMismatch)
}

func TestSession_InvalidMode(t *testing.T) {
	s := newServiceForm()
	assert.ErrorIs(t, s.Begin(Mode{Kind: "clone"}, domain.Record{}), ErrInvalidMode)
}

func TestSession_ClosedDraft(t *testing.T) {
	s := newServiceForm()

	assert.ErrorIs(t, s.SetField("title", "Cut"), ErrNotOpen)
	_, err := s.CommitTarget()
	assert.ErrorIs(t, err, ErrNotOpen)
	_, ok := s.Draft()
	assert.False(t, ok)

	s.Close()
	assert.False(t, s.IsOpen())
}

func TestSession_SetFieldRejectsIDAndEmptyName(t *testing.T) {
	s := newServiceForm()
	require.NoError(t, s.Begin(Create(), domain.Record{}))

	assert.ErrorIs(t, s.SetField("_id", "x"), ErrInvalidField)
	assert.ErrorIs(t, s.SetField("", "x"), ErrInvalidField)
}

func TestSession_DraftReadIsCopy(t *testing.T) {
	s := newServiceForm()
	require.NoError(t, s.Begin(Create(), domain.Record{}))

	draft, _ := s.Draft()
	draft.Fields["title"] = "mutated"

	again, _ := s.Draft()
	assert.Equal(t, "", again.Fields["title"])
}
