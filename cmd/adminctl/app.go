package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AdminPanel/internal/config"
	"github.com/m04kA/SMC-AdminPanel/internal/domain"
	auditRepo "github.com/m04kA/SMC-AdminPanel/internal/infra/storage/audit"
	"github.com/m04kA/SMC-AdminPanel/internal/integrations/authservice"
	"github.com/m04kA/SMC-AdminPanel/internal/integrations/backend"
	"github.com/m04kA/SMC-AdminPanel/internal/service/session"
	"github.com/m04kA/SMC-AdminPanel/internal/usecase/workspace"
	"github.com/m04kA/SMC-AdminPanel/pkg/logger"
)

var errMissingCredentials = errors.New("--username and --password are required")

// openWorkspace читает конфигурацию, выполняет вход и открывает рабочее пространство администратора
func openWorkspace(ctx context.Context, opts *rootOptions) (*workspace.Workspace, error) {
	if strings.TrimSpace(opts.Username) == "" || opts.Password == "" {
		return nil, errMissingCredentials
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	log := logger.NewNop()
	if opts.Verbose {
		if log, err = logger.New("", cfg.Logs.Level); err != nil {
			return nil, err
		}
	}

	authenticator, err := newAuthenticator(cfg, log)
	if err != nil {
		return nil, err
	}

	sess := session.New(authenticator, log)
	if _, err := sess.Login(ctx, session.Credentials{Username: opts.Username, Password: opts.Password}); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	catalog, err := domain.NewCatalog(cfg.Pagination.PageSizes)
	if err != nil {
		return nil, err
	}

	client := backend.NewClient(cfg.Backend.URL, time.Duration(cfg.Backend.Timeout)*time.Second, log)
	registry := workspace.NewRegistry(catalog, client, auditRepo.NoopRepository{}, 0, log)

	return registry.Open(sess)
}

func newAuthenticator(cfg *config.Config, log *logger.Logger) (session.Authenticator, error) {
	if cfg.Auth.Mode == config.AuthModeRemote {
		client := authservice.NewClient(cfg.Auth.ServiceURL, time.Duration(cfg.Auth.ServiceTimeout)*time.Second, log)
		return session.NewRemoteAuthenticator(client), nil
	}
	return session.NewStaticAuthenticator(cfg.Auth.Username, cfg.Auth.PasswordHash)
}
