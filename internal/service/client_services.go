// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-camp-sync/internal/adapter"
	"github.com/MKhiriev/go-camp-sync/internal/config"
	"github.com/MKhiriev/go-camp-sync/internal/logger"
	"github.com/MKhiriev/go-camp-sync/internal/store"
	"github.com/MKhiriev/go-camp-sync/internal/utils"
)

// ClientServices groups the services of the client application.
type ClientServices struct {
	AuthService ClientAuthService
	CampService ClientCampService
}

// NewClientServices wires the client services on top of the local storages
// and the server adapter.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	authService := NewClientAuthService(serverAdapter, logger)

	return &ClientServices{
		AuthService: authService,
		CampService: NewClientCampService(storages.CampStateRepository, serverAdapter, authService, utils.NewUUIDGenerator(), cfg.Sync, logger),
	}
}
