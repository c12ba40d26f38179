// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-camp-sync/models"
)

// SyncService commits a client's operations into a camp's log.
type SyncService interface {
	// SyncCamp creates a camp when the batch starts with CREATE_CAMP, and
	// otherwise rebases the batch over the operations the client missed and
	// commits it. The caller is req.UserID.
	SyncCamp(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error)
}

// CampService is the directory of camps a user has access to.
type CampService interface {
	// GetCamp returns the latest stored snapshot of campID and attaches the
	// camp to userID, so that sharing a camp is sharing its id.
	GetCamp(ctx context.Context, userID int64, campID string) (*models.Camp, error)

	// ListCamps returns the camps attached to userID.
	ListCamps(ctx context.Context, userID int64) ([]models.CampSummary, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppBuildInfo(ctx context.Context) models.AppBuildInfo
}

// SyncServiceWrapper defines middleware composition for SyncService.
// Implementations wrap an existing SyncService to add behavior such as
// logging or validating.
type SyncServiceWrapper interface {
	Wrap(SyncService) SyncService // returns a decorated SyncService applying additional behavior
}
