// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-camp-sync/internal/config"
	"github.com/MKhiriev/go-camp-sync/internal/logger"
	"github.com/MKhiriev/go-camp-sync/internal/rpc"
	"github.com/MKhiriev/go-camp-sync/internal/utils"
	"github.com/MKhiriev/go-camp-sync/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

type grpcServerAdapter struct {
	conn    *grpc.ClientConn
	client  rpc.CampSyncClient
	timeout time.Duration

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewGRPCServerAdapter constructs a gRPC implementation of [ServerAdapter]
// dialing adapterCfg.GRPCAddress. The connection is established lazily on
// the first call.
func NewGRPCServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger, opts ...grpc.DialOption) (ServerAdapter, error) {
	address := strings.TrimSpace(adapterCfg.GRPCAddress)
	if address == "" {
		return nil, fmt.Errorf("%w: empty grpc address", ErrInvalidAddress)
	}

	logger.Debug().Str("address", address).Msg("creating grpc server adapter")

	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &grpcServerAdapter{
		conn:    conn,
		client:  rpc.NewCampSyncClient(conn),
		timeout: adapterCfg.RequestTimeout,
		logger:  logger,
	}, nil
}

// SetToken implements [ServerAdapter].
func (g *grpcServerAdapter) SetToken(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (g *grpcServerAdapter) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

// Register implements [ServerAdapter].
func (g *grpcServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	resp, err := g.client.Register(ctx, &rpc.RegisterRequest{Login: user.Login, Name: user.Name, Password: user.Password})
	if err != nil {
		return models.User{}, mapGRPCError(err)
	}

	return g.acceptToken(resp, models.User{Login: user.Login, Name: user.Name})
}

// Login implements [ServerAdapter].
func (g *grpcServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	resp, err := g.client.Login(ctx, &rpc.LoginRequest{Login: user.Login, Password: user.Password})
	if err != nil {
		return models.User{}, mapGRPCError(err)
	}

	return g.acceptToken(resp, models.User{Login: user.Login})
}

func (g *grpcServerAdapter) acceptToken(resp *rpc.AuthResponse, user models.User) (models.User, error) {
	if resp.Token == "" {
		return models.User{}, errors.New("server returned an empty token")
	}

	user.UserID = resp.UserID
	if user.UserID == 0 {
		userID, err := utils.ParseUserIDFromJWT(resp.Token)
		if err != nil {
			return models.User{}, fmt.Errorf("parse user id: %w", err)
		}
		user.UserID = userID
	}

	g.SetToken(resp.Token)
	return user, nil
}

// Synchronize implements [ServerAdapter]. codes.Unavailable is the server's
// RETRY answer.
func (g *grpcServerAdapter) Synchronize(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	ctx, cancel := g.withTimeout(g.authorize(ctx))
	defer cancel()

	resp, err := g.client.Synchronize(ctx, &req)
	if err != nil {
		mapped := mapGRPCError(err)
		if errors.Is(mapped, ErrServiceUnavailable) {
			g.logger.Debug().Str("func", "*grpcServerAdapter.Synchronize").Str("camp_id", req.CampID).Msg("server asked to retry")
			return models.SyncResponse{Status: models.SyncRetry}, nil
		}
		return models.SyncResponse{}, mapped
	}

	return *resp, nil
}

// GetCamp implements [ServerAdapter].
func (g *grpcServerAdapter) GetCamp(ctx context.Context, campID string) (*models.Camp, error) {
	ctx, cancel := g.withTimeout(g.authorize(ctx))
	defer cancel()

	snapshot, err := g.client.GetCamp(ctx, &rpc.GetCampRequest{CampID: campID})
	if err != nil {
		return nil, mapGRPCError(err)
	}
	return snapshot, nil
}

// ListCamps implements [ServerAdapter].
func (g *grpcServerAdapter) ListCamps(ctx context.Context) ([]models.CampSummary, error) {
	ctx, cancel := g.withTimeout(g.authorize(ctx))
	defer cancel()

	resp, err := g.client.ListCamps(ctx, &rpc.ListCampsRequest{})
	if err != nil {
		return nil, mapGRPCError(err)
	}
	return resp.Camps, nil
}

// Close implements [ServerAdapter].
func (g *grpcServerAdapter) Close() error {
	return g.conn.Close()
}

func (g *grpcServerAdapter) authorize(ctx context.Context) context.Context {
	if token := g.Token(); token != "" {
		return metadata.AppendToOutgoingContext(ctx, rpc.AuthorizationKey, "Bearer "+token)
	}
	return ctx
}

func (g *grpcServerAdapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout > 0 {
		return context.WithTimeout(ctx, g.timeout)
	}
	return context.WithCancel(ctx)
}
