// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"errors"

	"github.com/MKhiriev/go-camp-sync/internal/app"
	"github.com/MKhiriev/go-camp-sync/internal/service"
	"github.com/MKhiriev/go-camp-sync/internal/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type errorStatus struct {
	target  error
	code    codes.Code
	message string
}

// errorStatuses is ordered: the specific sync errors come before
// ErrInvalidDataProvided, which some of them are wrapped with.
var errorStatuses = []errorStatus{
	{service.ErrInvalidSyncArguments, codes.InvalidArgument, app.MsgInvalidSyncArguments},
	{service.ErrOpIndexAhead, codes.InvalidArgument, app.MsgOpIndexAhead},
	{service.ErrInvalidDataProvided, codes.InvalidArgument, app.MsgInvalidDataProvided},

	{service.ErrWrongPassword, codes.Unauthenticated, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid},

	{service.ErrCampNotFound, codes.NotFound, app.MsgCampNotFound},
	{store.ErrCampNotFound, codes.NotFound, app.MsgCampNotFound},

	{store.ErrLoginAlreadyExists, codes.AlreadyExists, app.MsgLoginAlreadyExists},

	{service.ErrSyncContention, codes.Unavailable, app.MsgRetryLater},
	{store.ErrTransient, codes.Unavailable, app.MsgRetryLater},
}

// statusFromError converts a service error into a gRPC status error.
// Unknown errors become codes.Internal without their text.
func statusFromError(err error) error {
	for _, s := range errorStatuses {
		if errors.Is(err, s.target) {
			return status.Error(s.code, s.message)
		}
	}
	return status.Error(codes.Internal, app.MsgInternalServerError)
}
