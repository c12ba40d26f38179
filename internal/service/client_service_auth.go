// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-camp-sync/internal/adapter"
	"github.com/MKhiriev/go-camp-sync/internal/logger"
	"github.com/MKhiriev/go-camp-sync/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	userID  atomic.Int64
	logger  *logger.Logger
}

// NewClientAuthService constructs a [ClientAuthService] talking to the server
// through serverAdapter.
func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	logger.Debug().Msg("creating client auth service")
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.User, error) {
	registered, err := a.adapter.Register(ctx, user)
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Register").Str("login", user.Login).Msg("registration failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	a.userID.Store(registered.UserID)
	a.logger.Info().Str("login", registered.Login).Int64("user_id", registered.UserID).Msg("registered")
	return registered, nil
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	loggedIn, err := a.adapter.Login(ctx, user)
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Login").Str("login", user.Login).Msg("login failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	a.userID.Store(loggedIn.UserID)
	a.logger.Info().Str("login", loggedIn.Login).Int64("user_id", loggedIn.UserID).Msg("logged in")
	return loggedIn, nil
}

func (a *clientAuthService) UserID() int64 {
	return a.userID.Load()
}

func (a *clientAuthService) Logout() {
	a.adapter.SetToken("")
	a.userID.Store(0)
}
