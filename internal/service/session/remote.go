package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AdminPanel/internal/integrations/authservice"
)

// RemoteClient клиент внешнего сервиса авторизации
type RemoteClient interface {
	Login(ctx context.Context, username, password string) (*authservice.LoginResponse, error)
}

// RemoteAuthenticator проверяет учетные данные через сервис авторизации
type RemoteAuthenticator struct {
	client RemoteClient
}

// NewRemoteAuthenticator создает аутентификатор поверх клиента сервиса авторизации
func NewRemoteAuthenticator(client RemoteClient) *RemoteAuthenticator {
	return &RemoteAuthenticator{client: client}
}

// Authenticate проверяет учетные данные во внешнем сервисе
func (a *RemoteAuthenticator) Authenticate(ctx context.Context, creds Credentials) (Principal, error) {
	resp, err := a.client.Login(ctx, creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrUnauthorized) {
			return Principal{}, ErrInvalidCredentials
		}
		return Principal{}, fmt.Errorf("%w: Authenticate - %v", ErrAuthUnavailable, err)
	}
	return Principal{Username: resp.Username, Token: resp.Token}, nil
}
