package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-AdminPanel/pkg/logger"
)

type authFunc func(ctx context.Context, creds Credentials) (Principal, error)

func (f authFunc) Authenticate(ctx context.Context, creds Credentials) (Principal, error) {
	return f(ctx, creds)
}

func staticAuth(t *testing.T) *StaticAuthenticator {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	auth, err := NewStaticAuthenticator("admin", string(hash))
	require.NoError(t, err)
	return auth
}

func TestSession_LoginSuccess(t *testing.T) {
	s := New(staticAuth(t), logger.NewNop())
	assert.Equal(t, StateAnonymous, s.State())

	principal, err := s.Login(context.Background(), Credentials{Username: " admin ", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "admin", principal.Username)
	assert.Equal(t, StateAuthenticated, s.State())

	got, err := s.Principal()
	require.NoError(t, err)
	assert.Equal(t, principal, got)
}

func TestSession_LoginInvalidCredentials(t *testing.T) {
	s := New(staticAuth(t), logger.NewNop())

	for _, creds := range []Credentials{
		{Username: "admin", Password: "wrong"},
		{Username: "root", Password: "s3cret"},
		{Username: "", Password: "s3cret"},
		{Username: "admin", Password: ""},
	} {
		_, err := s.Login(context.Background(), creds)
		assert.ErrorIs(t, err, ErrInvalidCredentials, "creds=%+v", creds)
	}
	assert.Equal(t, StateAnonymous, s.State())

	_, err := s.Principal()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestSession_LoginAuthenticatorFailure(t *testing.T) {
	s := New(authFunc(func(context.Context, Credentials) (Principal, error) {
		return Principal{}, errors.New("connection refused")
	}), logger.NewNop())

	_, err := s.Login(context.Background(), Credentials{Username: "admin", Password: "x"})
	assert.ErrorIs(t, err, ErrAuthUnavailable)
	assert.Equal(t, StateAnonymous, s.State())
}

func TestSession_Logout(t *testing.T) {
	s := New(staticAuth(t), logger.NewNop())
	_, err := s.Login(context.Background(), Credentials{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)

	s.Logout()
	assert.Equal(t, StateAnonymous, s.State())
}

func TestNewStaticAuthenticator_InvalidHash(t *testing.T) {
	_, err := NewStaticAuthenticator("admin", "plain-text")
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pw")))
}
