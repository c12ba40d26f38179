// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-camp-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CampRepository is the server-side Storage Engine: camp snapshots plus
// the append-only operation log, chunked OpChunkSize operations per row.
type CampRepository interface {
	// WriteCamp atomically stores camp as the new snapshot and appends ops
	// to the log, provided the stored revision still equals
	// expectedRevision. A fresh camp (expectedRevision 0 and a leading
	// CREATE_CAMP) gets a generated id. A lost race is reported with
	// Succeeded=false and a nil error.
	WriteCamp(ctx context.Context, camp *models.Camp, ops []models.Operation, expectedRevision int64) (models.WriteResult, error)

	// GetCampWithOps returns the snapshot and the log entries
	// [fromRevision, snapshot.Revision). Returns ErrCampNotFound for an
	// unknown id.
	GetCampWithOps(ctx context.Context, id string, fromRevision int64) (*models.Camp, []models.Operation, error)

	// GetCamp returns the snapshot only.
	GetCamp(ctx context.Context, id string) (*models.Camp, error)

	// FindCampByCreateOperation returns the id of the camp created by the
	// CREATE_CAMP operation operationID, or ErrCampNotFound.
	FindCampByCreateOperation(ctx context.Context, operationID string) (string, error)
}

// UserRepository stores accounts and camp membership.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	AddCampToUser(ctx context.Context, userID int64, campID string) error
	GetUserCamps(ctx context.Context, userID int64) ([]models.CampSummary, error)
}

// LocalCampRepository is the client's on-device store of camp sync state.
type LocalCampRepository interface {
	SaveCampState(ctx context.Context, state models.CampState) error
	GetCampState(ctx context.Context, campID string) (models.CampState, error)
	DeleteCampState(ctx context.Context, campID string) error
	ListCampStates(ctx context.Context, userID int64) ([]models.CampState, error)
}

// IDGenerator issues ids for newly created camps.
type IDGenerator interface {
	Generate() string
}
