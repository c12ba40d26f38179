// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-camp-sync/models"
)

// Session exposes the identity of the logged-in user. Camp managers compare
// it before and after a round trip to drop answers meant for someone else.
type Session interface {
	// UserID returns the id of the logged-in user, or 0 when nobody is.
	UserID() int64
}

// ClientAuthService defines the client-side authentication flow against the
// server.
type ClientAuthService interface {
	Session

	// Register creates an account on the server and logs in as it.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates with login and password. The token is kept by
	// the server adapter for subsequent requests.
	Login(ctx context.Context, user models.User) (models.User, error)

	// Logout forgets the token and the user id.
	Logout()
}

// ClientCampService is the registry of the camps open on this device. Each
// open camp is driven by its own [CampManager].
type ClientCampService interface {
	// CreateCamp creates a camp offline. It gets its server id on the first
	// successful sync.
	CreateCamp(ctx context.Context, name string) (*CampManager, error)

	// OpenCamp returns the manager of campID, restoring it from local state
	// or fetching the snapshot from the server.
	OpenCamp(ctx context.Context, campID string) (*CampManager, error)

	// Restore reopens every camp of the logged-in user found in local state
	// and starts syncing those with pending operations.
	Restore(ctx context.Context) ([]*CampManager, error)

	// Camp returns the open manager of campID.
	Camp(campID string) (*CampManager, bool)

	// Camps returns every open manager.
	Camps() []*CampManager

	// SynchronizeAll starts a round trip for every open camp.
	SynchronizeAll()

	// ListServerCamps lists the camps the logged-in user can open.
	ListServerCamps(ctx context.Context) ([]models.CampSummary, error)

	// CloseCamp stops the manager of campID. Its state stays on disk.
	CloseCamp(campID string) error

	// Close stops every manager.
	Close()
}
