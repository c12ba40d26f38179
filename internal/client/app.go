// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-camp-sync/internal/config"
	"github.com/MKhiriev/go-camp-sync/internal/logger"
	"github.com/MKhiriev/go-camp-sync/internal/service"
	"github.com/MKhiriev/go-camp-sync/internal/store"
	"github.com/MKhiriev/go-camp-sync/internal/workers"
	"github.com/MKhiriev/go-camp-sync/models"
)

var _ Client = (*App)(nil)

type App struct {
	services *service.ClientServices
	workers  *workers.Workers
	user     config.ClientUser

	// closers are released after the camp managers, in order.
	closers []io.Closer

	logger *logger.Logger
}

// NewApp wires the client runtime. closers (the server adapter, the local
// storages) are closed when Run returns.
func NewApp(services *service.ClientServices, cfg *config.ClientConfig, logger *logger.Logger, closers ...io.Closer) (*App, error) {
	if cfg.User.Login == "" || cfg.User.Password == "" {
		return nil, errNoCredentials
	}

	logger.Debug().Str("login", cfg.User.Login).Msg("creating client app")
	return &App{
		services: services,
		workers:  workers.NewWorkers(workers.NewSyncWorker(services.CampService, cfg.Workers, logger)),
		user:     cfg.User,
		closers:  closers,
		logger:   logger,
	}, nil
}

// Run keeps the camps in sync until SIGTERM, SIGINT or SIGQUIT.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.close()

	user, err := a.authenticate(ctx)
	if err != nil {
		return err
	}
	a.logger.Info().Int64("user_id", user.UserID).Str("login", user.Login).Msg("signed in")

	restored, err := a.services.CampService.Restore(ctx)
	if err != nil {
		return fmt.Errorf("restore local camps: %w", err)
	}
	a.logger.Info().Int("camps", len(restored)).Msg("local camps restored")

	// The server may be unreachable; local camps keep working offline.
	if err = a.openServerCamps(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("server camps were not opened")
	}

	a.workers.Run()
	<-ctx.Done()
	a.workers.Stop()

	return nil
}

// authenticate registers the configured account when asked to, falling back
// to a login when the account already exists.
func (a *App) authenticate(ctx context.Context) (models.User, error) {
	auth := a.services.AuthService
	user := models.User{Login: a.user.Login, Name: a.user.Name, Password: a.user.Password}

	if a.user.Register {
		registered, err := auth.Register(ctx, user)
		if err == nil {
			return registered, nil
		}
		if !errors.Is(err, store.ErrLoginAlreadyExists) {
			return models.User{}, fmt.Errorf("register %q: %w", user.Login, err)
		}
		a.logger.Info().Str("login", user.Login).Msg("account exists, logging in")
	}

	loggedIn, err := auth.Login(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("login %q: %w", user.Login, err)
	}
	return loggedIn, nil
}

// openServerCamps opens every camp of the account that is not open yet.
func (a *App) openServerCamps(ctx context.Context) error {
	summaries, err := a.services.CampService.ListServerCamps(ctx)
	if err != nil {
		return err
	}

	var errs []error
	for _, summary := range summaries {
		if _, ok := a.services.CampService.Camp(summary.ID); ok {
			continue
		}
		if _, err = a.services.CampService.OpenCamp(ctx, summary.ID); err != nil {
			errs = append(errs, fmt.Errorf("open camp %s: %w", summary.ID, err))
		}
	}
	return errors.Join(errs...)
}

func (a *App) close() {
	a.services.CampService.Close()
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Err(err).Msg("close client resource")
		}
	}
	a.logger.Info().Msg("client stopped")
}
