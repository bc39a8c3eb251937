package session

import (
	"context"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// StaticAuthenticator проверяет логин и bcrypt-хеш пароля из конфигурации
type StaticAuthenticator struct {
	username     string
	passwordHash []byte
}

// NewStaticAuthenticator создает аутентификатор с одной учетной записью
func NewStaticAuthenticator(username, passwordHash string) (*StaticAuthenticator, error) {
	if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
		return nil, fmt.Errorf("session: invalid password hash: %v", err)
	}
	return &StaticAuthenticator{
		username:     username,
		passwordHash: []byte(passwordHash),
	}, nil
}

// Authenticate сравнивает учетные данные с сохраненными
func (a *StaticAuthenticator) Authenticate(_ context.Context, creds Credentials) (Principal, error) {
	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(a.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(creds.Password))
	if !userOK || passErr != nil {
		return Principal{}, ErrInvalidCredentials
	}
	return Principal{Username: a.username}, nil
}

// HashPassword возвращает bcrypt-хеш пароля для конфигурации
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("session: hash password: %v", err)
	}
	return string(hash), nil
}
