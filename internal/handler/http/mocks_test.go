// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-camp-sync/internal/logger"
	"github.com/MKhiriev/go-camp-sync/internal/service"
	"github.com/MKhiriev/go-camp-sync/internal/utils"
	"github.com/MKhiriev/go-camp-sync/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn    func(ctx context.Context, user models.User) (models.User, error)
	loginFn       func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, user)
	}
	return models.User{UserID: 1, Login: user.Login}, nil
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, user)
	}
	return models.User{UserID: 1, Login: user.Login}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed-token", UserID: user.UserID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	if tokenString != "valid-token" {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{UserID: 7}, nil
}

type mockSyncService struct {
	syncFn func(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error)
}

func (m *mockSyncService) SyncCamp(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	if m.syncFn != nil {
		return m.syncFn(ctx, req)
	}
	return models.SyncResponse{Status: models.SyncAllGood, CampID: req.CampID}, nil
}

type mockCampService struct {
	getCampFn   func(ctx context.Context, userID int64, campID string) (*models.Camp, error)
	listCampsFn func(ctx context.Context, userID int64) ([]models.CampSummary, error)
}

func (m *mockCampService) GetCamp(ctx context.Context, userID int64, campID string) (*models.Camp, error) {
	if m.getCampFn != nil {
		return m.getCampFn(ctx, userID, campID)
	}
	return &models.Camp{ID: campID}, nil
}

func (m *mockCampService) ListCamps(ctx context.Context, userID int64) ([]models.CampSummary, error) {
	if m.listCampsFn != nil {
		return m.listCampsFn(ctx, userID)
	}
	return nil, nil
}

type mockAppInfoService struct {
	buildInfo models.AppBuildInfo
}

func (m *mockAppInfoService) GetAppBuildInfo(context.Context) models.AppBuildInfo {
	return m.buildInfo
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestServices() *service.Services {
	return &service.Services{
		AuthService:    &mockAuthService{},
		SyncService:    &mockSyncService{},
		CampService:    &mockCampService{},
		AppInfoService: &mockAppInfoService{buildInfo: models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc123")},
	}
}

func newTestHandler(t *testing.T, services *service.Services, hashKey string) *Handler {
	t.Helper()
	if services == nil {
		services = newTestServices()
	}
	return NewHandler(services, hashKey, logger.Nop())
}

// asUser attaches userID the way the auth middleware does.
func asUser(r *http.Request, userID int64) *http.Request {
	return r.WithContext(utils.WithUserID(r.Context(), userID))
}
