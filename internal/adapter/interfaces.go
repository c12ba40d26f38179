// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the camp sync server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. Two implementations ship: HTTP/REST
// ([NewHTTPServerAdapter]) and gRPC ([NewGRPCServerAdapter]).
//
// Transport failures are mapped to the sentinel values in errors.go so that
// callers can use [errors.Is] regardless of protocol (e.g. [ErrNotFound]
// for 404 / codes.NotFound, [ErrUnauthorized] for 401 / codes.Unauthenticated).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-camp-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the camp sync
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. On success the issued token is stored via
	// SetToken and the returned user carries the server-assigned UserID.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates with login and password. On success the issued
	// token is stored via SetToken and the returned user carries UserID.
	Login(ctx context.Context, user models.User) (models.User, error)

	// Synchronize sends one sync round trip. A server that asks the client
	// to come back later yields a response with status RETRY and a nil error.
	Synchronize(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error)

	// GetCamp fetches the latest stored snapshot of a camp and joins the
	// caller to it.
	GetCamp(ctx context.Context, campID string) (*models.Camp, error)

	// ListCamps fetches the camps the caller has access to.
	ListCamps(ctx context.Context) ([]models.CampSummary, error)

	// Close releases the underlying connection. It is safe to call once
	// after the last request.
	Close() error
}
