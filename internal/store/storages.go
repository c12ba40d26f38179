// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-camp-sync/internal/config"
	"github.com/MKhiriev/go-camp-sync/internal/logger"
	"github.com/MKhiriev/go-camp-sync/internal/utils"
	"github.com/MKhiriev/go-camp-sync/migrations"
)

// Storages groups the server repositories.
type Storages struct {
	CampRepository CampRepository
	UserRepository UserRepository

	db *DB
}

// NewStorages connects to the database chosen by cfg.DB.Driver, applies
// the matching migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	dir := migrations.DirPostgres
	if cfg.DB.Driver == config.DriverSQLite {
		dir = migrations.DirSQLite
	}
	if err := db.Migrate(dir); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		CampRepository: NewCampRepository(db, utils.NewUUIDGenerator(), logger),
		UserRepository: NewUserRepository(db, logger),
		db:             db,
	}, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
