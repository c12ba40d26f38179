// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-camp-sync/internal/app"
	"github.com/MKhiriev/go-camp-sync/internal/rpc"
	"github.com/MKhiriev/go-camp-sync/internal/utils"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// traceIDKey is the metadata key of the request trace id.
const traceIDKey = "x-trace-id"

// publicMethods are served without a token.
var publicMethods = map[string]bool{
	rpc.FullMethodRegister: true,
	rpc.FullMethodLogin:    true,
}

// Interceptors returns the unary interceptor chain in the order it must be
// installed: logging first, then authentication.
func (h *Handler) Interceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{h.withLogging, h.auth}
}

// withLogging attaches a logger tagged with trace_id and writes one access
// log entry per call.
func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := firstMetadataValue(ctx, traceIDKey)
	if traceID == "" {
		traceID = uuid.NewString()
	}

	l := h.logger.With().Str("trace_id", traceID).Logger()
	ctx = l.WithContext(ctx)

	start := time.Now()
	resp, err := handler(ctx, req)
	code := status.Code(err)

	event := l.Info()
	if code == codes.Internal || code == codes.Unavailable || code == codes.Unknown {
		event = l.Error()
	}
	event.
		Str("method", info.FullMethod).
		Str("code", code.String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

// auth validates the bearer token from the authorization metadata and
// stores the caller's user id in the context.
func (h *Handler) auth(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	tokenString, err := utils.ParseBearerToken(firstMetadataValue(ctx, rpc.AuthorizationKey))
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid)
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid)
	}

	return handler(utils.WithUserID(ctx, token.UserID), req)
}

func firstMetadataValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}
