// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-camp-sync/internal/adapter"
	msg "github.com/MKhiriev/go-camp-sync/internal/app"
	"github.com/MKhiriev/go-camp-sync/internal/config"
	"github.com/MKhiriev/go-camp-sync/internal/logger"
	"github.com/MKhiriev/go-camp-sync/internal/mock"
	"github.com/MKhiriev/go-camp-sync/internal/service"
	"github.com/MKhiriev/go-camp-sync/internal/store"
	"github.com/MKhiriev/go-camp-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	adapter  *mock.MockServerAdapter
	services *service.ClientServices
	cfg      *config.ClientConfig
}

func newTestEnv(t *testing.T, user config.ClientUser) *testEnv {
	t.Helper()

	serverAdapter := mock.NewMockServerAdapter(gomock.NewController(t))

	cfg := &config.ClientConfig{
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "client.db")}},
		Workers: config.ClientWorkers{SyncInterval: time.Hour},
		Sync:    config.ClientSync{DebounceDelay: time.Hour},
		User:    user,
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	return &testEnv{
		adapter:  serverAdapter,
		services: service.NewClientServices(storages, serverAdapter, cfg, logger.Nop()),
		cfg:      cfg,
	}
}

func (e *testEnv) start(t *testing.T) (cancel func() error) {
	t.Helper()

	a, err := NewApp(e.services, e.cfg, logger.Nop(), e.adapter)
	require.NoError(t, err)

	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.run(ctx) }()

	return func() error {
		stop()
		select {
		case err := <-done:
			return err
		case <-time.After(5 * time.Second):
			t.Fatal("client did not stop")
			return nil
		}
	}
}

func TestNewApp_RequiresCredentials(t *testing.T) {
	env := newTestEnv(t, config.ClientUser{Login: "alice"})

	_, err := NewApp(env.services, env.cfg, logger.Nop())
	assert.ErrorIs(t, err, errNoCredentials)
}

func TestApp_RegisterFallsBackToLoginAndOpensServerCamps(t *testing.T) {
	env := newTestEnv(t, config.ClientUser{Login: "alice", Password: "secret", Name: "Alice", Register: true})

	gomock.InOrder(
		env.adapter.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(models.User{}, fmt.Errorf("%w: %s", adapter.ErrConflict, msg.MsgLoginAlreadyExists)),
		env.adapter.EXPECT().Login(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "secret", u.Password)
				return models.User{UserID: 7, Login: u.Login}, nil
			}),
		env.adapter.EXPECT().ListCamps(gomock.Any()).
			Return([]models.CampSummary{{ID: "camp-1", Name: "Lake trip", Revision: 2}}, nil),
		env.adapter.EXPECT().GetCamp(gomock.Any(), "camp-1").
			Return(&models.Camp{ID: "camp-1", Name: "Lake trip", Revision: 2}, nil),
	)
	env.adapter.EXPECT().Close().Return(nil).Times(1)

	stop := env.start(t)

	require.Eventually(t, func() bool {
		_, ok := env.services.CampService.Camp("camp-1")
		return ok
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(7), env.services.AuthService.UserID())

	require.NoError(t, stop())
	assert.Empty(t, env.services.CampService.Camps())
}

func TestApp_OfflineServerKeepsRunning(t *testing.T) {
	env := newTestEnv(t, config.ClientUser{Login: "alice", Password: "secret"})

	env.adapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{UserID: 7, Login: "alice"}, nil)
	listed := make(chan struct{})
	env.adapter.EXPECT().ListCamps(gomock.Any()).DoAndReturn(func(context.Context) ([]models.CampSummary, error) {
		close(listed)
		return nil, errors.New("connection refused")
	})
	env.adapter.EXPECT().Close().Return(nil)

	stop := env.start(t)
	<-listed
	assert.NoError(t, stop())
}

func TestApp_LoginFailureStops(t *testing.T) {
	env := newTestEnv(t, config.ClientUser{Login: "alice", Password: "wrong"})

	env.adapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, msg.MsgInvalidLoginPassword))
	env.adapter.EXPECT().Close().Return(nil)

	a, err := NewApp(env.services, env.cfg, logger.Nop(), env.adapter)
	require.NoError(t, err)

	err = a.run(context.Background())
	assert.ErrorIs(t, err, service.ErrWrongPassword)
}
