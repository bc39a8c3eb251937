package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdminPanel/internal/integrations/authservice"
)

type remoteClientStub struct {
	resp *authservice.LoginResponse
	err  error
}

func (s remoteClientStub) Login(context.Context, string, string) (*authservice.LoginResponse, error) {
	return s.resp, s.err
}

func TestRemoteAuthenticator(t *testing.T) {
	auth := NewRemoteAuthenticator(remoteClientStub{resp: &authservice.LoginResponse{Username: "admin", Token: "t"}})
	principal, err := auth.Authenticate(context.Background(), Credentials{Username: "admin", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, Principal{Username: "admin", Token: "t"}, principal)

	auth = NewRemoteAuthenticator(remoteClientStub{err: authservice.ErrUnauthorized})
	_, err = auth.Authenticate(context.Background(), Credentials{Username: "admin", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	auth = NewRemoteAuthenticator(remoteClientStub{err: fmt.Errorf("%w: dial", authservice.ErrUnavailable)})
	_, err = auth.Authenticate(context.Background(), Credentials{Username: "admin", Password: "pw"})
	assert.ErrorIs(t, err, ErrAuthUnavailable)
}
