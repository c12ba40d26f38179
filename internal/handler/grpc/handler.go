// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-camp-sync/internal/app"
	"github.com/MKhiriev/go-camp-sync/internal/logger"
	"github.com/MKhiriev/go-camp-sync/internal/rpc"
	"github.com/MKhiriev/go-camp-sync/internal/service"
	"github.com/MKhiriev/go-camp-sync/internal/store"
	"github.com/MKhiriev/go-camp-sync/internal/utils"
	"github.com/MKhiriev/go-camp-sync/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Handler is the root gRPC transport handler. It implements
// [rpc.CampSyncServer] and is shared by the whole gRPC server.
type Handler struct {
	rpc.UnimplementedCampSyncServer

	// services provides access to all application business operations.
	services *service.Services

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] over services.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register creates an account and answers with a bearer token.
func (h *Handler) Register(ctx context.Context, in *rpc.RegisterRequest) (*rpc.AuthResponse, error) {
	log := logger.FromContext(ctx)

	user, err := h.services.AuthService.RegisterUser(ctx, models.User{
		Login:    in.Login,
		Name:     in.Name,
		Password: in.Password,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.Register").Msg("registration failed")
		if errors.Is(err, service.ErrInvalidDataProvided) || errors.Is(err, store.ErrLoginAlreadyExists) {
			return nil, statusFromError(err)
		}
		return nil, status.Error(codes.Internal, app.MsgRegistrationFailed)
	}

	return h.issueToken(ctx, user)
}

// Login authenticates an existing account and answers with a bearer token.
// Unknown logins and wrong passwords are indistinguishable to the caller.
func (h *Handler) Login(ctx context.Context, in *rpc.LoginRequest) (*rpc.AuthResponse, error) {
	log := logger.FromContext(ctx)

	user, err := h.services.AuthService.Login(ctx, models.User{Login: in.Login, Password: in.Password})
	if err != nil {
		log.Err(err).Str("func", "*Handler.Login").Msg("login failed")
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			return nil, statusFromError(err)
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			return nil, status.Error(codes.Unauthenticated, app.MsgInvalidLoginPassword)
		default:
			return nil, status.Error(codes.Internal, app.MsgLoginFailed)
		}
	}

	return h.issueToken(ctx, user)
}

// Synchronize commits a batch of operations. A batch that could not be
// committed in time answers codes.Unavailable, the gRPC form of RETRY.
func (h *Handler) Synchronize(ctx context.Context, in *models.SyncRequest) (*models.SyncResponse, error) {
	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		return nil, status.Error(codes.Unauthenticated, app.MsgNoUserIDProvided)
	}

	req := *in
	req.UserID = userID

	resp, err := h.services.SyncService.SyncCamp(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Handler.Synchronize").
			Str("camp_id", req.CampID).
			Int64("op_index", req.OpIndex).
			Msg("sync failed")
		return nil, statusFromError(err)
	}

	return &resp, nil
}

// GetCamp returns the latest snapshot of a camp.
func (h *Handler) GetCamp(ctx context.Context, in *rpc.GetCampRequest) (*models.Camp, error) {
	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		return nil, status.Error(codes.Unauthenticated, app.MsgNoUserIDProvided)
	}

	camp, err := h.services.CampService.GetCamp(ctx, userID, in.CampID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Handler.GetCamp").Str("camp_id", in.CampID).Msg("error getting camp")
		return nil, statusFromError(err)
	}

	return camp, nil
}

// ListCamps returns the camps of the caller.
func (h *Handler) ListCamps(ctx context.Context, _ *rpc.ListCampsRequest) (*rpc.ListCampsResponse, error) {
	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		return nil, status.Error(codes.Unauthenticated, app.MsgNoUserIDProvided)
	}

	camps, err := h.services.CampService.ListCamps(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Handler.ListCamps").Msg("error listing user camps")
		return nil, statusFromError(err)
	}

	return &rpc.ListCampsResponse{Camps: camps}, nil
}

// issueToken signs a token for user and returns it both in the response and
// in the authorization response header.
func (h *Handler) issueToken(ctx context.Context, user models.User) (*rpc.AuthResponse, error) {
	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", user.UserID).Msg("creation of token failed")
		return nil, status.Error(codes.Internal, app.MsgInternalServerError)
	}

	bearer := "Bearer " + token.SignedString
	if err = grpc.SetHeader(ctx, metadata.Pairs(rpc.AuthorizationKey, bearer)); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("authorization header was not set")
	}

	return &rpc.AuthResponse{Token: token.SignedString, UserID: user.UserID}, nil
}
